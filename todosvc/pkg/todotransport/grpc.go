package todotransport

import (
	"context"
	"errors"
	"strings"
	"time"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/circuitbreaker"
	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/ratelimit"
	"github.com/go-kit/kit/transport"
	grpctransport "github.com/go-kit/kit/transport/grpc"
	"github.com/ichigozero/todogrpc/authsvc"
	"github.com/ichigozero/todogrpc/todosvc"
	"github.com/ichigozero/todogrpc/todosvc/pb"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoendpoint"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoservice"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userendpoint"
	"github.com/ichigozero/todogrpc/usersvc/pkg/usertransport"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "todo.TodoService"

// UnauthenticatedMessage is returned for every rejected bearer token.
const UnauthenticatedMessage = "Authentication required. Please provide a valid bearer token."

type grpcServer struct {
	register     grpctransport.Handler
	login        grpctransport.Handler
	createTodo   grpctransport.Handler
	getTodo      grpctransport.Handler
	getAllTodos  grpctransport.Handler
	updateTodo   grpctransport.Handler
	deleteTodo   grpctransport.Handler
	completeTodo grpctransport.Handler
	pb.UnimplementedTodoServiceServer
}

func NewGRPCServer(todos todoendpoint.Set, users userendpoint.Set, logger log.Logger) pb.TodoServiceServer {
	options := []grpctransport.ServerOption{
		grpctransport.ServerErrorHandler(transport.NewLogErrorHandler(logger)),
		grpctransport.ServerBefore(kitjwt.GRPCToContext()),
	}

	accounts := usertransport.NewGRPCHandlers(users, options...)

	return &grpcServer{
		register: accounts.Register,
		login:    accounts.Login,
		createTodo: grpctransport.NewServer(
			todos.CreateTodoEndpoint,
			decodeGRPCCreateTodoRequest,
			encodeGRPCTodoResponse,
			options...,
		),
		getTodo: grpctransport.NewServer(
			todos.GetTodoEndpoint,
			decodeGRPCGetTodoRequest,
			encodeGRPCTodoResponse,
			options...,
		),
		getAllTodos: grpctransport.NewServer(
			todos.GetAllTodosEndpoint,
			decodeGRPCGetAllTodosRequest,
			encodeGRPCGetAllTodosResponse,
			options...,
		),
		updateTodo: grpctransport.NewServer(
			todos.UpdateTodoEndpoint,
			decodeGRPCUpdateTodoRequest,
			encodeGRPCTodoResponse,
			options...,
		),
		deleteTodo: grpctransport.NewServer(
			todos.DeleteTodoEndpoint,
			decodeGRPCDeleteTodoRequest,
			encodeGRPCDeleteTodoResponse,
			options...,
		),
		completeTodo: grpctransport.NewServer(
			todos.CompleteTodoEndpoint,
			decodeGRPCCompleteTodoRequest,
			encodeGRPCTodoResponse,
			options...,
		),
	}
}

func (s *grpcServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterReply, error) {
	_, rep, err := s.register.ServeGRPC(ctx, req)
	if err != nil {
		return nil, grpcError(err, "register")
	}
	return rep.(*pb.RegisterReply), nil
}

func (s *grpcServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginReply, error) {
	_, rep, err := s.login.ServeGRPC(ctx, req)
	if err != nil {
		return nil, grpcError(err, "log in")
	}
	return rep.(*pb.LoginReply), nil
}

func (s *grpcServer) CreateTodo(ctx context.Context, req *pb.CreateTodoRequest) (*pb.TodoReply, error) {
	_, rep, err := s.createTodo.ServeGRPC(ctx, req)
	if err != nil {
		return nil, grpcError(err, "create todo")
	}
	return rep.(*pb.TodoReply), nil
}

func (s *grpcServer) GetTodo(ctx context.Context, req *pb.GetTodoRequest) (*pb.TodoReply, error) {
	_, rep, err := s.getTodo.ServeGRPC(ctx, req)
	if err != nil {
		return nil, grpcError(err, "retrieve todo")
	}
	return rep.(*pb.TodoReply), nil
}

func (s *grpcServer) GetAllTodos(ctx context.Context, req *pb.GetAllTodosRequest) (*pb.GetAllTodosReply, error) {
	_, rep, err := s.getAllTodos.ServeGRPC(ctx, req)
	if err != nil {
		return nil, grpcError(err, "retrieve todos")
	}
	return rep.(*pb.GetAllTodosReply), nil
}

func (s *grpcServer) UpdateTodo(ctx context.Context, req *pb.UpdateTodoRequest) (*pb.TodoReply, error) {
	_, rep, err := s.updateTodo.ServeGRPC(ctx, req)
	if err != nil {
		return nil, grpcError(err, "update todo")
	}
	return rep.(*pb.TodoReply), nil
}

func (s *grpcServer) DeleteTodo(ctx context.Context, req *pb.DeleteTodoRequest) (*pb.DeleteTodoReply, error) {
	_, rep, err := s.deleteTodo.ServeGRPC(ctx, req)
	if err != nil {
		return nil, grpcError(err, "delete todo")
	}
	return rep.(*pb.DeleteTodoReply), nil
}

func (s *grpcServer) CompleteTodo(ctx context.Context, req *pb.CompleteTodoRequest) (*pb.TodoReply, error) {
	_, rep, err := s.completeTodo.ServeGRPC(ctx, req)
	if err != nil {
		return nil, grpcError(err, "complete todo")
	}
	return rep.(*pb.TodoReply), nil
}

// errorStatus translates any error into exactly one status. Store and other
// unexpected errors never leak their cause to the caller.
func errorStatus(err error, action string) *status.Status {
	switch {
	case errors.Is(err, todosvc.ErrInvalidArgument):
		return status.New(codes.InvalidArgument, detail(err, todosvc.ErrInvalidArgument))
	case errors.Is(err, todosvc.ErrNotFound):
		return status.New(codes.NotFound, err.Error())
	case errors.Is(err, authsvc.ErrMissingCredentials),
		errors.Is(err, authsvc.ErrInvalidCredentials),
		errors.Is(err, authsvc.ErrMalformedClaims):
		return status.New(codes.Unauthenticated, UnauthenticatedMessage)
	}
	if s, ok := usertransport.ErrorStatus(err); ok {
		return s
	}
	return status.New(codes.Internal, "Failed to "+action+" due to a server error. Please try again later.")
}

func grpcError(err error, action string) error {
	return errorStatus(err, action).Err()
}

func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// statusError carries the server message while matching a domain sentinel.
type statusError struct {
	kind    error
	message string
}

func (e statusError) Error() string { return e.message }
func (e statusError) Unwrap() error { return e.kind }

func errorFromStatus(err error) (error, bool) {
	s, ok := status.FromError(err)
	if !ok {
		return nil, false
	}

	var kind error
	switch s.Code() {
	case codes.InvalidArgument:
		kind = todosvc.ErrInvalidArgument
	case codes.NotFound:
		kind = todosvc.ErrNotFound
	case codes.Unauthenticated:
		kind = authsvc.ErrInvalidCredentials
	default:
		return nil, false
	}
	return statusError{kind: kind, message: s.Message()}, true
}

// inBand turns domain failures reported as gRPC statuses into failed
// responses, so they reach the caller without tripping the circuit breaker.
func inBand(failed func(error) interface{}) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			response, err := next(ctx, request)
			if err == nil {
				return response, nil
			}
			if domainErr, ok := errorFromStatus(err); ok {
				return failed(domainErr), nil
			}
			return nil, err
		}
	}
}

// NewGRPCClient returns a Service backed by a remote server. The bearer
// token is read from the context under kitjwt.JWTTokenContextKey.
func NewGRPCClient(conn *grpc.ClientConn, logger log.Logger) todoservice.Service {
	limiter := ratelimit.NewErroringLimiter(rate.NewLimiter(rate.Every(time.Second), 100))

	options := []grpctransport.ClientOption{
		grpctransport.ClientBefore(kitjwt.ContextToGRPC()),
	}

	todoFailed := func(err error) interface{} { return todoendpoint.TodoResponse{Err: err} }

	var createTodoEndpoint endpoint.Endpoint
	{
		createTodoEndpoint = grpctransport.NewClient(
			conn,
			serviceName,
			"CreateTodo",
			encodeGRPCCreateTodoRequest,
			decodeGRPCTodoResponse,
			&pb.TodoReply{},
			options...,
		).Endpoint()
		createTodoEndpoint = inBand(todoFailed)(createTodoEndpoint)
		createTodoEndpoint = limiter(createTodoEndpoint)
		createTodoEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "CreateTodo",
			Timeout: 30 * time.Second,
		}))(createTodoEndpoint)
	}

	var getTodoEndpoint endpoint.Endpoint
	{
		getTodoEndpoint = grpctransport.NewClient(
			conn,
			serviceName,
			"GetTodo",
			encodeGRPCGetTodoRequest,
			decodeGRPCTodoResponse,
			&pb.TodoReply{},
			options...,
		).Endpoint()
		getTodoEndpoint = inBand(todoFailed)(getTodoEndpoint)
		getTodoEndpoint = limiter(getTodoEndpoint)
		getTodoEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "GetTodo",
			Timeout: 30 * time.Second,
		}))(getTodoEndpoint)
	}

	var getAllTodosEndpoint endpoint.Endpoint
	{
		getAllTodosEndpoint = grpctransport.NewClient(
			conn,
			serviceName,
			"GetAllTodos",
			encodeGRPCGetAllTodosRequest,
			decodeGRPCGetAllTodosResponse,
			&pb.GetAllTodosReply{},
			options...,
		).Endpoint()
		getAllTodosEndpoint = inBand(func(err error) interface{} {
			return todoendpoint.GetAllTodosResponse{Err: err}
		})(getAllTodosEndpoint)
		getAllTodosEndpoint = limiter(getAllTodosEndpoint)
		getAllTodosEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "GetAllTodos",
			Timeout: 30 * time.Second,
		}))(getAllTodosEndpoint)
	}

	var updateTodoEndpoint endpoint.Endpoint
	{
		updateTodoEndpoint = grpctransport.NewClient(
			conn,
			serviceName,
			"UpdateTodo",
			encodeGRPCUpdateTodoRequest,
			decodeGRPCTodoResponse,
			&pb.TodoReply{},
			options...,
		).Endpoint()
		updateTodoEndpoint = inBand(todoFailed)(updateTodoEndpoint)
		updateTodoEndpoint = limiter(updateTodoEndpoint)
		updateTodoEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "UpdateTodo",
			Timeout: 30 * time.Second,
		}))(updateTodoEndpoint)
	}

	var deleteTodoEndpoint endpoint.Endpoint
	{
		deleteTodoEndpoint = grpctransport.NewClient(
			conn,
			serviceName,
			"DeleteTodo",
			encodeGRPCDeleteTodoRequest,
			decodeGRPCDeleteTodoResponse,
			&pb.DeleteTodoReply{},
			options...,
		).Endpoint()
		deleteTodoEndpoint = inBand(func(err error) interface{} {
			return todoendpoint.DeleteTodoResponse{Err: err}
		})(deleteTodoEndpoint)
		deleteTodoEndpoint = limiter(deleteTodoEndpoint)
		deleteTodoEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "DeleteTodo",
			Timeout: 30 * time.Second,
		}))(deleteTodoEndpoint)
	}

	var completeTodoEndpoint endpoint.Endpoint
	{
		completeTodoEndpoint = grpctransport.NewClient(
			conn,
			serviceName,
			"CompleteTodo",
			encodeGRPCCompleteTodoRequest,
			decodeGRPCTodoResponse,
			&pb.TodoReply{},
			options...,
		).Endpoint()
		completeTodoEndpoint = inBand(todoFailed)(completeTodoEndpoint)
		completeTodoEndpoint = limiter(completeTodoEndpoint)
		completeTodoEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "CompleteTodo",
			Timeout: 30 * time.Second,
		}))(completeTodoEndpoint)
	}

	return todoendpoint.Set{
		CreateTodoEndpoint:   createTodoEndpoint,
		GetTodoEndpoint:      getTodoEndpoint,
		GetAllTodosEndpoint:  getAllTodosEndpoint,
		UpdateTodoEndpoint:   updateTodoEndpoint,
		DeleteTodoEndpoint:   deleteTodoEndpoint,
		CompleteTodoEndpoint: completeTodoEndpoint,
	}
}

// isoTime renders timestamps with millisecond precision in UTC.
const isoTime = "2006-01-02T15:04:05.000Z07:00"

func todoToPB(t todosvc.Todo) *pb.Todo {
	return &pb.Todo{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserId:      t.UserID,
		CreatedAt:   t.CreatedAt.UTC().Format(isoTime),
		UpdatedAt:   t.UpdatedAt.UTC().Format(isoTime),
	}
}

func todoFromPB(t *pb.Todo) todosvc.Todo {
	if t == nil {
		return todosvc.Todo{}
	}
	created, _ := time.Parse(time.RFC3339, t.CreatedAt)
	updated, _ := time.Parse(time.RFC3339, t.UpdatedAt)
	return todosvc.Todo{
		ID:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.UserId,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

func decodeGRPCCreateTodoRequest(_ context.Context, grpcReq interface{}) (interface{}, error) {
	req := grpcReq.(*pb.CreateTodoRequest)
	return todoendpoint.CreateTodoRequest{
		Title:       req.Title,
		Description: req.Description,
	}, nil
}

func encodeGRPCCreateTodoRequest(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(todoendpoint.CreateTodoRequest)
	return &pb.CreateTodoRequest{
		Title:       req.Title,
		Description: req.Description,
	}, nil
}

func decodeGRPCGetTodoRequest(_ context.Context, grpcReq interface{}) (interface{}, error) {
	req := grpcReq.(*pb.GetTodoRequest)
	return todoendpoint.GetTodoRequest{ID: req.Id}, nil
}

func encodeGRPCGetTodoRequest(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(todoendpoint.GetTodoRequest)
	return &pb.GetTodoRequest{Id: req.ID}, nil
}

func decodeGRPCGetAllTodosRequest(_ context.Context, grpcReq interface{}) (interface{}, error) {
	req := grpcReq.(*pb.GetAllTodosRequest)
	return todoendpoint.GetAllTodosRequest{
		Page:  int(req.Page),
		Limit: int(req.Limit),
	}, nil
}

func encodeGRPCGetAllTodosRequest(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(todoendpoint.GetAllTodosRequest)
	return &pb.GetAllTodosRequest{
		Page:  int32(req.Page),
		Limit: int32(req.Limit),
	}, nil
}

func encodeGRPCGetAllTodosResponse(_ context.Context, response interface{}) (interface{}, error) {
	resp := response.(todoendpoint.GetAllTodosResponse)
	if resp.Err != nil {
		return nil, resp.Err
	}

	todos := make([]*pb.Todo, 0, len(resp.Todos))
	for _, t := range resp.Todos {
		todos = append(todos, todoToPB(t))
	}

	return &pb.GetAllTodosReply{
		Success:    resp.Success,
		Message:    resp.Message,
		Todos:      todos,
		Total:      resp.Total,
		Page:       int32(resp.PageNumber),
		Limit:      int32(resp.Limit),
		TotalPages: int32(resp.TotalPages),
	}, nil
}

func decodeGRPCGetAllTodosResponse(_ context.Context, grpcReply interface{}) (interface{}, error) {
	reply := grpcReply.(*pb.GetAllTodosReply)

	todos := make([]todosvc.Todo, 0, len(reply.Todos))
	for _, t := range reply.Todos {
		todos = append(todos, todoFromPB(t))
	}

	return todoendpoint.GetAllTodosResponse{
		Success:    reply.Success,
		Message:    reply.Message,
		Todos:      todos,
		Total:      reply.Total,
		PageNumber: int(reply.Page),
		Limit:      int(reply.Limit),
		TotalPages: int(reply.TotalPages),
	}, nil
}

func decodeGRPCUpdateTodoRequest(_ context.Context, grpcReq interface{}) (interface{}, error) {
	req := grpcReq.(*pb.UpdateTodoRequest)
	return todoendpoint.UpdateTodoRequest{
		ID:          req.Id,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}, nil
}

func encodeGRPCUpdateTodoRequest(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(todoendpoint.UpdateTodoRequest)
	return &pb.UpdateTodoRequest{
		Id:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}, nil
}

func decodeGRPCDeleteTodoRequest(_ context.Context, grpcReq interface{}) (interface{}, error) {
	req := grpcReq.(*pb.DeleteTodoRequest)
	return todoendpoint.DeleteTodoRequest{ID: req.Id}, nil
}

func encodeGRPCDeleteTodoRequest(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(todoendpoint.DeleteTodoRequest)
	return &pb.DeleteTodoRequest{Id: req.ID}, nil
}

func encodeGRPCDeleteTodoResponse(_ context.Context, response interface{}) (interface{}, error) {
	resp := response.(todoendpoint.DeleteTodoResponse)
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &pb.DeleteTodoReply{Success: resp.Success, Message: resp.Message, Todo: todoToPB(resp.Todo)}, nil
}

func decodeGRPCDeleteTodoResponse(_ context.Context, grpcReply interface{}) (interface{}, error) {
	reply := grpcReply.(*pb.DeleteTodoReply)
	return todoendpoint.DeleteTodoResponse{Success: reply.Success, Message: reply.Message, Todo: todoFromPB(reply.Todo)}, nil
}

func decodeGRPCCompleteTodoRequest(_ context.Context, grpcReq interface{}) (interface{}, error) {
	req := grpcReq.(*pb.CompleteTodoRequest)
	return todoendpoint.CompleteTodoRequest{ID: req.Id}, nil
}

func encodeGRPCCompleteTodoRequest(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(todoendpoint.CompleteTodoRequest)
	return &pb.CompleteTodoRequest{Id: req.ID}, nil
}

func encodeGRPCTodoResponse(_ context.Context, response interface{}) (interface{}, error) {
	resp := response.(todoendpoint.TodoResponse)
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &pb.TodoReply{
		Success: resp.Success,
		Message: resp.Message,
		Todo:    todoToPB(resp.Todo),
	}, nil
}

func decodeGRPCTodoResponse(_ context.Context, grpcReply interface{}) (interface{}, error) {
	reply := grpcReply.(*pb.TodoReply)
	return todoendpoint.TodoResponse{
		Success: reply.Success,
		Message: reply.Message,
		Todo:    todoFromPB(reply.Todo),
	}, nil
}
