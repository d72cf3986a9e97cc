package gorm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ichigozero/todogrpc/store"
	"github.com/ichigozero/todogrpc/todosvc"
)

// todoModel describes the todos table for migrations.
type todoModel struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:1000;not null;default:''"`
	Completed   bool      `gorm:"not null;default:false"`
	UserID      *uint64   `gorm:"index:idx_todos_user_created,priority:1"`
	CreatedAt   time.Time `gorm:"not null;index:idx_todos_user_created,priority:2"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (todoModel) TableName() string { return "todos" }

// Migrate creates the todos table.
func Migrate(s *store.Store) error {
	return s.Migrate(&todoModel{})
}

type todoRow struct {
	ID          uint64
	Title       string
	Description string
	Completed   bool
	UserID      *uint64
	CreatedAt   timestamp
	UpdatedAt   timestamp
}

func (r todoRow) todo() todosvc.Todo {
	t := todosvc.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt.Time,
		UpdatedAt:   r.UpdatedAt.Time,
	}
	if r.UserID != nil {
		t.UserID = *r.UserID
	}
	return t
}

// pageRow is one row of the page query. The todo columns are NULL when the
// requested page is empty.
type pageRow struct {
	Total       int64
	ID          *uint64
	Title       *string
	Description *string
	Completed   *bool
	UserID      *uint64
	CreatedAt   timestamp
	UpdatedAt   timestamp
}

const columns = "id, title, description, completed, user_id, created_at, updated_at"

type todoRepository struct {
	db store.Querier
}

func NewTodoRepository(db store.Querier) todosvc.TodoRepository {
	return &todoRepository{db}
}

func (r *todoRepository) Create(ctx context.Context, t todosvc.Todo) (todosvc.Todo, error) {
	var rows []todoRow
	err := r.db.Query(ctx, &rows,
		"INSERT INTO todos (title, description, completed, user_id, created_at, updated_at) "+
			"VALUES (?, ?, false, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP) RETURNING "+columns,
		t.Title, t.Description, owner(t.UserID),
	)
	if err != nil {
		return todosvc.Todo{}, err
	}
	if len(rows) == 0 {
		return todosvc.Todo{}, fmt.Errorf("%w: insert returned no row", store.ErrQuery)
	}
	return rows[0].todo(), nil
}

func (r *todoRepository) Find(ctx context.Context, userID, id uint64) (todosvc.Todo, error) {
	where, args := scoped(userID, id)

	var rows []todoRow
	err := r.db.Query(ctx, &rows, "SELECT "+columns+" FROM todos WHERE "+where, args...)
	return one(rows, id, err)
}

func (r *todoRepository) FindPage(ctx context.Context, userID uint64, limit, offset int) ([]todosvc.Todo, int64, error) {
	var (
		filter string
		args   []interface{}
	)
	if userID != 0 {
		filter = " WHERE user_id = ?"
		args = append(args, userID, userID)
	}
	args = append(args, limit, offset)

	statement := "SELECT c.total, t.id, t.title, t.description, t.completed, t.user_id, t.created_at, t.updated_at " +
		"FROM (SELECT COUNT(*) AS total FROM todos" + filter + ") AS c " +
		"LEFT JOIN (SELECT " + columns + " FROM todos" + filter +
		" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?) AS t ON 1 = 1 " +
		"ORDER BY t.created_at DESC, t.id DESC"

	var rows []pageRow
	if err := r.db.Query(ctx, &rows, statement, args...); err != nil {
		return nil, 0, err
	}

	var (
		total int64
		todos = make([]todosvc.Todo, 0, len(rows))
	)
	for _, row := range rows {
		total = row.Total
		if row.ID == nil {
			continue
		}
		todos = append(todos, row.todo())
	}
	return todos, total, nil
}

func (row pageRow) todo() todosvc.Todo {
	t := todosvc.Todo{
		ID:        *row.ID,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.Title != nil {
		t.Title = *row.Title
	}
	if row.Description != nil {
		t.Description = *row.Description
	}
	if row.Completed != nil {
		t.Completed = *row.Completed
	}
	if row.UserID != nil {
		t.UserID = *row.UserID
	}
	return t
}

func (r *todoRepository) Update(ctx context.Context, t todosvc.Todo) (todosvc.Todo, error) {
	where, args := scoped(t.UserID, t.ID)

	var rows []todoRow
	err := r.db.Query(ctx, &rows,
		"UPDATE todos SET title = ?, description = ?, completed = ?, updated_at = CURRENT_TIMESTAMP "+
			"WHERE "+where+" RETURNING "+columns,
		append([]interface{}{t.Title, t.Description, t.Completed}, args...)...,
	)
	return one(rows, t.ID, err)
}

func (r *todoRepository) Complete(ctx context.Context, userID, id uint64) (todosvc.Todo, error) {
	where, args := scoped(userID, id)

	var rows []todoRow
	err := r.db.Query(ctx, &rows,
		"UPDATE todos SET completed = true, updated_at = CURRENT_TIMESTAMP WHERE "+where+" RETURNING "+columns,
		args...,
	)
	return one(rows, id, err)
}

func (r *todoRepository) Delete(ctx context.Context, userID, id uint64) (todosvc.Todo, error) {
	where, args := scoped(userID, id)

	var rows []todoRow
	err := r.db.Query(ctx, &rows, "DELETE FROM todos WHERE "+where+" RETURNING "+columns, args...)
	return one(rows, id, err)
}

func scoped(userID, id uint64) (string, []interface{}) {
	clauses := []string{"id = ?"}
	args := []interface{}{id}
	if userID != 0 {
		clauses = append(clauses, "user_id = ?")
		args = append(args, userID)
	}
	return strings.Join(clauses, " AND "), args
}

func one(rows []todoRow, id uint64, err error) (todosvc.Todo, error) {
	if err != nil {
		return todosvc.Todo{}, err
	}
	if len(rows) == 0 {
		return todosvc.Todo{}, fmt.Errorf("todo with ID %d %w", id, todosvc.ErrNotFound)
	}
	return rows[0].todo(), nil
}

func owner(userID uint64) interface{} {
	if userID == 0 {
		return nil
	}
	return userID
}
