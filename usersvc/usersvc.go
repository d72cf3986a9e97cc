package usersvc

import (
	"context"
	"errors"
	"time"
)

type User struct {
	ID           uint64    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session records the latest login of a user. There is at most one per user.
type Session struct {
	UserID       uint64
	SessionToken string
	JWTToken     string
	ExpiresAt    time.Time
}

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u User) (User, error)
	UpsertSession(ctx context.Context, s Session) error
}

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountExists      = errors.New("an account with this username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
