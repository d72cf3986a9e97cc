package todoendpoint

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
	"github.com/ichigozero/todogrpc/authsvc"
	"github.com/ichigozero/todogrpc/authsvc/pkg/authservice"
	"github.com/ichigozero/todogrpc/todosvc"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoservice"
)

type Set struct {
	CreateTodoEndpoint   endpoint.Endpoint
	GetTodoEndpoint      endpoint.Endpoint
	GetAllTodosEndpoint  endpoint.Endpoint
	UpdateTodoEndpoint   endpoint.Endpoint
	DeleteTodoEndpoint   endpoint.Endpoint
	CompleteTodoEndpoint endpoint.Endpoint
}

// New wraps every endpoint with instrumentation and logging. When verifier is
// non-nil each endpoint also requires a valid bearer token.
func New(svc todoservice.Service, verifier authservice.Verifier, logger log.Logger, duration metrics.Histogram) Set {
	authenticate := func(e endpoint.Endpoint) endpoint.Endpoint { return e }
	if verifier != nil {
		authenticate = authservice.NewAuthenticator(verifier)
	}

	var createTodoEndpoint endpoint.Endpoint
	{
		createTodoEndpoint = MakeCreateTodoEndpoint(svc)
		createTodoEndpoint = authenticate(createTodoEndpoint)
		createTodoEndpoint = InstrumentingMiddleware(duration.With("method", "CreateTodo"))(createTodoEndpoint)
		createTodoEndpoint = LoggingMiddleware(log.With(logger, "method", "CreateTodo"))(createTodoEndpoint)
	}
	var getTodoEndpoint endpoint.Endpoint
	{
		getTodoEndpoint = MakeGetTodoEndpoint(svc)
		getTodoEndpoint = authenticate(getTodoEndpoint)
		getTodoEndpoint = InstrumentingMiddleware(duration.With("method", "GetTodo"))(getTodoEndpoint)
		getTodoEndpoint = LoggingMiddleware(log.With(logger, "method", "GetTodo"))(getTodoEndpoint)
	}
	var getAllTodosEndpoint endpoint.Endpoint
	{
		getAllTodosEndpoint = MakeGetAllTodosEndpoint(svc)
		getAllTodosEndpoint = authenticate(getAllTodosEndpoint)
		getAllTodosEndpoint = InstrumentingMiddleware(duration.With("method", "GetAllTodos"))(getAllTodosEndpoint)
		getAllTodosEndpoint = LoggingMiddleware(log.With(logger, "method", "GetAllTodos"))(getAllTodosEndpoint)
	}
	var updateTodoEndpoint endpoint.Endpoint
	{
		updateTodoEndpoint = MakeUpdateTodoEndpoint(svc)
		updateTodoEndpoint = authenticate(updateTodoEndpoint)
		updateTodoEndpoint = InstrumentingMiddleware(duration.With("method", "UpdateTodo"))(updateTodoEndpoint)
		updateTodoEndpoint = LoggingMiddleware(log.With(logger, "method", "UpdateTodo"))(updateTodoEndpoint)
	}
	var deleteTodoEndpoint endpoint.Endpoint
	{
		deleteTodoEndpoint = MakeDeleteTodoEndpoint(svc)
		deleteTodoEndpoint = authenticate(deleteTodoEndpoint)
		deleteTodoEndpoint = InstrumentingMiddleware(duration.With("method", "DeleteTodo"))(deleteTodoEndpoint)
		deleteTodoEndpoint = LoggingMiddleware(log.With(logger, "method", "DeleteTodo"))(deleteTodoEndpoint)
	}
	var completeTodoEndpoint endpoint.Endpoint
	{
		completeTodoEndpoint = MakeCompleteTodoEndpoint(svc)
		completeTodoEndpoint = authenticate(completeTodoEndpoint)
		completeTodoEndpoint = InstrumentingMiddleware(duration.With("method", "CompleteTodo"))(completeTodoEndpoint)
		completeTodoEndpoint = LoggingMiddleware(log.With(logger, "method", "CompleteTodo"))(completeTodoEndpoint)
	}

	return Set{
		CreateTodoEndpoint:   createTodoEndpoint,
		GetTodoEndpoint:      getTodoEndpoint,
		GetAllTodosEndpoint:  getAllTodosEndpoint,
		UpdateTodoEndpoint:   updateTodoEndpoint,
		DeleteTodoEndpoint:   deleteTodoEndpoint,
		CompleteTodoEndpoint: completeTodoEndpoint,
	}
}

// The Set methods let a remote Set stand in for todoservice.Service. The
// caller's bearer token travels in the context, so the Auth argument is
// ignored.

func (s Set) CreateTodo(ctx context.Context, _ todosvc.Auth, title, description string) (todosvc.Todo, error) {
	resp, err := s.CreateTodoEndpoint(ctx, CreateTodoRequest{Title: title, Description: description})
	if err != nil {
		return todosvc.Todo{}, err
	}
	response := resp.(TodoResponse)
	return response.Todo, response.Err
}

func (s Set) GetTodo(ctx context.Context, _ todosvc.Auth, id uint64) (todosvc.Todo, error) {
	resp, err := s.GetTodoEndpoint(ctx, GetTodoRequest{ID: id})
	if err != nil {
		return todosvc.Todo{}, err
	}
	response := resp.(TodoResponse)
	return response.Todo, response.Err
}

func (s Set) GetAllTodos(ctx context.Context, _ todosvc.Auth, page, limit int) (todosvc.Page, error) {
	resp, err := s.GetAllTodosEndpoint(ctx, GetAllTodosRequest{Page: page, Limit: limit})
	if err != nil {
		return todosvc.Page{}, err
	}
	response := resp.(GetAllTodosResponse)
	return response.Page(), response.Err
}

func (s Set) UpdateTodo(ctx context.Context, _ todosvc.Auth, t todosvc.Todo) (todosvc.Todo, error) {
	resp, err := s.UpdateTodoEndpoint(ctx, UpdateTodoRequest{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	})
	if err != nil {
		return todosvc.Todo{}, err
	}
	response := resp.(TodoResponse)
	return response.Todo, response.Err
}

func (s Set) DeleteTodo(ctx context.Context, _ todosvc.Auth, id uint64) (todosvc.Todo, error) {
	resp, err := s.DeleteTodoEndpoint(ctx, DeleteTodoRequest{ID: id})
	if err != nil {
		return todosvc.Todo{}, err
	}
	response := resp.(DeleteTodoResponse)
	return response.Todo, response.Err
}

func (s Set) CompleteTodo(ctx context.Context, _ todosvc.Auth, id uint64) (todosvc.Todo, error) {
	resp, err := s.CompleteTodoEndpoint(ctx, CompleteTodoRequest{ID: id})
	if err != nil {
		return todosvc.Todo{}, err
	}
	response := resp.(TodoResponse)
	return response.Todo, response.Err
}

func MakeCreateTodoEndpoint(s todoservice.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(CreateTodoRequest)
		t, err := s.CreateTodo(ctx, caller(ctx), req.Title, req.Description)
		if err != nil {
			return TodoResponse{Err: err}, nil
		}
		return succeeded(t, fmt.Sprintf("Todo %q created successfully!", t.Title)), nil
	}
}

func MakeGetTodoEndpoint(s todoservice.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(GetTodoRequest)
		t, err := s.GetTodo(ctx, caller(ctx), req.ID)
		if err != nil {
			return TodoResponse{Err: err}, nil
		}
		return succeeded(t, fmt.Sprintf("Todo %q retrieved successfully!", t.Title)), nil
	}
}

func MakeGetAllTodosEndpoint(s todoservice.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(GetAllTodosRequest)
		p, err := s.GetAllTodos(ctx, caller(ctx), req.Page, req.Limit)
		if err != nil {
			return GetAllTodosResponse{Err: err}, nil
		}
		return GetAllTodosResponse{
			Success:    true,
			Message:    pageMessage(p),
			Todos:      p.Todos,
			Total:      p.Total,
			PageNumber: p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages(),
		}, nil
	}
}

func MakeUpdateTodoEndpoint(s todoservice.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(UpdateTodoRequest)
		t, err := s.UpdateTodo(ctx, caller(ctx), todosvc.Todo{
			ID:          req.ID,
			Title:       req.Title,
			Description: req.Description,
			Completed:   req.Completed,
		})
		if err != nil {
			return TodoResponse{Err: err}, nil
		}
		return succeeded(t, fmt.Sprintf("Todo %q updated successfully!", t.Title)), nil
	}
}

func MakeDeleteTodoEndpoint(s todoservice.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(DeleteTodoRequest)
		t, err := s.DeleteTodo(ctx, caller(ctx), req.ID)
		if err != nil {
			return DeleteTodoResponse{Err: err}, nil
		}
		return DeleteTodoResponse{
			Success: true,
			Message: fmt.Sprintf("Todo %q deleted successfully!", t.Title),
			Todo:    t,
		}, nil
	}
}

func MakeCompleteTodoEndpoint(s todoservice.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(CompleteTodoRequest)
		t, err := s.CompleteTodo(ctx, caller(ctx), req.ID)
		if err != nil {
			return TodoResponse{Err: err}, nil
		}
		return succeeded(t, fmt.Sprintf("Great job! Todo %q marked as completed!", t.Title)), nil
	}
}

// caller returns the identity stored by the authenticator, or the anonymous
// caller when authentication is disabled.
func caller(ctx context.Context) todosvc.Auth {
	id, ok := authsvc.FromContext(ctx)
	if !ok {
		return todosvc.Auth{}
	}
	return todosvc.Auth{SessionID: id.SessionID, UserID: id.UserID}
}

func succeeded(t todosvc.Todo, message string) TodoResponse {
	return TodoResponse{Success: true, Message: message, Todo: t}
}

func pageMessage(p todosvc.Page) string {
	if p.Total == 0 {
		return "No todos found. Create your first todo to get started!"
	}
	return fmt.Sprintf("Found %d todo(s). Showing page %d of %d.", p.Total, p.Page, p.TotalPages())
}

var (
	_ endpoint.Failer = TodoResponse{}
	_ endpoint.Failer = GetAllTodosResponse{}
	_ endpoint.Failer = DeleteTodoResponse{}
)

type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GetTodoRequest struct {
	ID uint64
}

type GetAllTodosRequest struct {
	Page  int
	Limit int
}

type UpdateTodoRequest struct {
	ID          uint64 `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type DeleteTodoRequest struct {
	ID uint64
}

type CompleteTodoRequest struct {
	ID uint64
}

type TodoResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Todo    todosvc.Todo `json:"todo"`
	Err     error        `json:"-"`
}

func (r TodoResponse) Failed() error { return r.Err }

type GetAllTodosResponse struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Todos      []todosvc.Todo `json:"todos"`
	Total      int64          `json:"total"`
	PageNumber int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Err        error          `json:"-"`
}

func (r GetAllTodosResponse) Failed() error { return r.Err }

func (r GetAllTodosResponse) Page() todosvc.Page {
	return todosvc.Page{Todos: r.Todos, Total: r.Total, Page: r.PageNumber, Limit: r.Limit}
}

type DeleteTodoResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Todo    todosvc.Todo `json:"todo"`
	Err     error        `json:"-"`
}

func (r DeleteTodoResponse) Failed() error { return r.Err }
