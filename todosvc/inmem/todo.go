// Package inmem keeps todos in process memory. It backs the "memory"
// database driver and the transport tests.
package inmem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ichigozero/todogrpc/todosvc"
)

type todoRepository struct {
	mtx    sync.RWMutex
	nextID uint64
	todos  map[uint64]todosvc.Todo
	now    func() time.Time
}

func NewTodoRepository() todosvc.TodoRepository {
	return &todoRepository{
		todos: make(map[uint64]todosvc.Todo),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *todoRepository) Create(_ context.Context, t todosvc.Todo) (todosvc.Todo, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.nextID++
	now := r.now()
	t.ID = r.nextID
	t.Completed = false
	t.CreatedAt = now
	t.UpdatedAt = now
	r.todos[t.ID] = t

	return t, nil
}

func (r *todoRepository) Find(_ context.Context, userID, id uint64) (todosvc.Todo, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.owned(userID, id)
}

func (r *todoRepository) FindPage(_ context.Context, userID uint64, limit, offset int) ([]todosvc.Todo, int64, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var todos []todosvc.Todo
	for _, t := range r.todos {
		if userID == 0 || t.UserID == userID {
			todos = append(todos, t)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		return todos[i].ID > todos[j].ID
	})

	total := int64(len(todos))
	if offset >= len(todos) {
		return []todosvc.Todo{}, total, nil
	}
	end := offset + limit
	if end > len(todos) {
		end = len(todos)
	}

	return todos[offset:end], total, nil
}

func (r *todoRepository) Update(_ context.Context, t todosvc.Todo) (todosvc.Todo, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	stored, err := r.owned(t.UserID, t.ID)
	if err != nil {
		return todosvc.Todo{}, err
	}
	stored.Title = t.Title
	stored.Description = t.Description
	stored.Completed = t.Completed
	stored.UpdatedAt = r.now()
	r.todos[stored.ID] = stored

	return stored, nil
}

func (r *todoRepository) Complete(_ context.Context, userID, id uint64) (todosvc.Todo, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	stored, err := r.owned(userID, id)
	if err != nil {
		return todosvc.Todo{}, err
	}
	stored.Completed = true
	stored.UpdatedAt = r.now()
	r.todos[id] = stored

	return stored, nil
}

func (r *todoRepository) Delete(_ context.Context, userID, id uint64) (todosvc.Todo, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	stored, err := r.owned(userID, id)
	if err != nil {
		return todosvc.Todo{}, err
	}
	delete(r.todos, id)

	return stored, nil
}

func (r *todoRepository) owned(userID, id uint64) (todosvc.Todo, error) {
	t, ok := r.todos[id]
	if !ok || (userID != 0 && t.UserID != userID) {
		return todosvc.Todo{}, fmt.Errorf("todo with ID %d %w", id, todosvc.ErrNotFound)
	}
	return t, nil
}
