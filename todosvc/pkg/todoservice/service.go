package todoservice

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-kit/kit/log"
	"github.com/ichigozero/todogrpc/todosvc"
)

type Service interface {
	CreateTodo(ctx context.Context, a todosvc.Auth, title, description string) (todosvc.Todo, error)
	GetTodo(ctx context.Context, a todosvc.Auth, id uint64) (todosvc.Todo, error)
	GetAllTodos(ctx context.Context, a todosvc.Auth, page, limit int) (todosvc.Page, error)
	UpdateTodo(ctx context.Context, a todosvc.Auth, t todosvc.Todo) (todosvc.Todo, error)
	DeleteTodo(ctx context.Context, a todosvc.Auth, id uint64) (todosvc.Todo, error)
	CompleteTodo(ctx context.Context, a todosvc.Auth, id uint64) (todosvc.Todo, error)
}

func New(t todosvc.TodoRepository, logger log.Logger) Service {
	var svc Service
	{
		svc = NewBasicService(t)
		svc = LoggingMiddleware(logger)(svc)
	}
	return svc
}

type basicService struct {
	todos todosvc.TodoRepository
}

func NewBasicService(t todosvc.TodoRepository) Service {
	return basicService{todos: t}
}

func (s basicService) CreateTodo(ctx context.Context, a todosvc.Auth, title, description string) (todosvc.Todo, error) {
	title, err := validTitle(title)
	if err != nil {
		return todosvc.Todo{}, err
	}
	if err := validDescription(description); err != nil {
		return todosvc.Todo{}, err
	}

	return s.todos.Create(ctx, todosvc.Todo{
		Title:       title,
		Description: description,
		UserID:      a.UserID,
	})
}

func (s basicService) GetTodo(ctx context.Context, a todosvc.Auth, id uint64) (todosvc.Todo, error) {
	if err := validID(id); err != nil {
		return todosvc.Todo{}, err
	}
	return s.todos.Find(ctx, a.UserID, id)
}

func (s basicService) GetAllTodos(ctx context.Context, a todosvc.Auth, page, limit int) (todosvc.Page, error) {
	if page < 1 || limit < 1 {
		return todosvc.Page{}, fmt.Errorf("%w: page and limit must be positive integers", todosvc.ErrInvalidArgument)
	}
	if limit > todosvc.MaxPageLimit {
		return todosvc.Page{}, fmt.Errorf("%w: limit cannot exceed %d todos per page", todosvc.ErrInvalidArgument, todosvc.MaxPageLimit)
	}

	todos, total, err := s.todos.FindPage(ctx, a.UserID, limit, (page-1)*limit)
	if err != nil {
		return todosvc.Page{}, err
	}
	if todos == nil {
		todos = []todosvc.Todo{}
	}

	return todosvc.Page{Todos: todos, Total: total, Page: page, Limit: limit}, nil
}

func (s basicService) UpdateTodo(ctx context.Context, a todosvc.Auth, t todosvc.Todo) (todosvc.Todo, error) {
	if err := validID(t.ID); err != nil {
		return todosvc.Todo{}, err
	}
	title, err := validTitle(t.Title)
	if err != nil {
		return todosvc.Todo{}, err
	}
	if err := validDescription(t.Description); err != nil {
		return todosvc.Todo{}, err
	}

	t.Title = title
	t.UserID = a.UserID
	return s.todos.Update(ctx, t)
}

func (s basicService) DeleteTodo(ctx context.Context, a todosvc.Auth, id uint64) (todosvc.Todo, error) {
	if err := validID(id); err != nil {
		return todosvc.Todo{}, err
	}
	return s.todos.Delete(ctx, a.UserID, id)
}

func (s basicService) CompleteTodo(ctx context.Context, a todosvc.Auth, id uint64) (todosvc.Todo, error) {
	if err := validID(id); err != nil {
		return todosvc.Todo{}, err
	}
	return s.todos.Complete(ctx, a.UserID, id)
}

func validID(id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: valid todo ID is required", todosvc.ErrInvalidArgument)
	}
	return nil
}

func validTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: todo title is required and cannot be empty", todosvc.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(title) > todosvc.MaxTitleLength {
		return "", fmt.Errorf("%w: todo title must be at most %d characters long", todosvc.ErrInvalidArgument, todosvc.MaxTitleLength)
	}
	return title, nil
}

func validDescription(description string) error {
	if utf8.RuneCountInString(description) > todosvc.MaxDescriptionLength {
		return fmt.Errorf("%w: todo description must be at most %d characters long", todosvc.ErrInvalidArgument, todosvc.MaxDescriptionLength)
	}
	return nil
}
