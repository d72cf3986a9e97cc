package todosvc

import (
	"context"
	"errors"
	"time"
)

type Todo struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      uint64    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Page is one slice of a caller's todos, newest first.
type Page struct {
	Todos []Todo `json:"todos"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

func (p Page) TotalPages() int {
	if p.Limit <= 0 || p.Total <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

// TodoRepository runs one statement per call. A zero userID leaves the
// statement unscoped; any other value restricts it to that owner.
type TodoRepository interface {
	Create(ctx context.Context, t Todo) (Todo, error)
	Find(ctx context.Context, userID, id uint64) (Todo, error)
	FindPage(ctx context.Context, userID uint64, limit, offset int) ([]Todo, int64, error)
	Update(ctx context.Context, t Todo) (Todo, error)
	Complete(ctx context.Context, userID, id uint64) (Todo, error)
	Delete(ctx context.Context, userID, id uint64) (Todo, error)
}

// Auth identifies the caller. UserID is zero when authentication is off.
type Auth struct {
	SessionID string
	UserID    uint64
}

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
	MaxPageLimit         = 100
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)
