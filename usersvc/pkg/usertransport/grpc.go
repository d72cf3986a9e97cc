package usertransport

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-kit/kit/circuitbreaker"
	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/ratelimit"
	grpctransport "github.com/go-kit/kit/transport/grpc"
	"github.com/ichigozero/todogrpc/todosvc/pb"
	"github.com/ichigozero/todogrpc/usersvc"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userendpoint"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userservice"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "todo.TodoService"

// InvalidCredentialsMessage is returned for every failed login, whatever the
// reason.
const InvalidCredentialsMessage = "Invalid username or password. Please check your credentials and try again."

// Handlers serve the account RPCs of the todo service.
type Handlers struct {
	Register grpctransport.Handler
	Login    grpctransport.Handler
}

func NewGRPCHandlers(endpoints userendpoint.Set, options ...grpctransport.ServerOption) Handlers {
	return Handlers{
		Register: grpctransport.NewServer(
			endpoints.RegisterEndpoint,
			decodeGRPCRegisterRequest,
			encodeGRPCRegisterResponse,
			options...,
		),
		Login: grpctransport.NewServer(
			endpoints.LoginEndpoint,
			decodeGRPCLoginRequest,
			encodeGRPCLoginResponse,
			options...,
		),
	}
}

func NewGRPCClient(conn *grpc.ClientConn, logger log.Logger) userservice.Service {
	limiter := ratelimit.NewErroringLimiter(rate.NewLimiter(rate.Every(time.Second), 100))

	var registerEndpoint endpoint.Endpoint
	{
		registerEndpoint = grpctransport.NewClient(
			conn,
			serviceName,
			"Register",
			encodeGRPCRegisterRequest,
			decodeGRPCRegisterResponse,
			&pb.RegisterReply{},
		).Endpoint()
		registerEndpoint = inBand(func(err error) interface{} {
			return userendpoint.RegisterResponse{Err: err}
		})(registerEndpoint)
		registerEndpoint = limiter(registerEndpoint)
		registerEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "Register",
			Timeout: 30 * time.Second,
		}))(registerEndpoint)
	}

	var loginEndpoint endpoint.Endpoint
	{
		loginEndpoint = grpctransport.NewClient(
			conn,
			serviceName,
			"Login",
			encodeGRPCLoginRequest,
			decodeGRPCLoginResponse,
			&pb.LoginReply{},
		).Endpoint()
		loginEndpoint = inBand(func(err error) interface{} {
			return userendpoint.LoginResponse{Err: err}
		})(loginEndpoint)
		loginEndpoint = limiter(loginEndpoint)
		loginEndpoint = circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "Login",
			Timeout: 30 * time.Second,
		}))(loginEndpoint)
	}

	return userendpoint.Set{
		RegisterEndpoint: registerEndpoint,
		LoginEndpoint:    loginEndpoint,
	}
}

// ErrorStatus maps account errors to a gRPC status. ok is false for errors
// this package does not own.
func ErrorStatus(err error) (s *status.Status, ok bool) {
	switch {
	case errors.Is(err, usersvc.ErrInvalidArgument):
		return status.New(codes.InvalidArgument, detail(err, usersvc.ErrInvalidArgument)), true
	case errors.Is(err, usersvc.ErrUsernameTaken):
		return status.New(codes.AlreadyExists, detail(err, usersvc.ErrUsernameTaken)), true
	case errors.Is(err, usersvc.ErrEmailTaken):
		return status.New(codes.AlreadyExists, detail(err, usersvc.ErrEmailTaken)), true
	case errors.Is(err, usersvc.ErrAccountExists):
		var relayed statusError
		if errors.As(err, &relayed) {
			return status.New(codes.AlreadyExists, relayed.message), true
		}
		return status.New(codes.AlreadyExists, "An account with this username or email already exists."), true
	case errors.Is(err, usersvc.ErrInvalidCredentials):
		return status.New(codes.Unauthenticated, InvalidCredentialsMessage), true
	case errors.Is(err, userservice.ErrLoginDisabled):
		return status.New(codes.Unimplemented, userservice.ErrLoginDisabled.Error()), true
	}
	return nil, false
}

// detail strips the sentinel prefix added by fmt.Errorf("%w: ...").
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
		kind = usersvc.ErrInvalidArgument
	case codes.AlreadyExists:
		kind = usersvc.ErrAccountExists
	case codes.Unauthenticated:
		kind = usersvc.ErrInvalidCredentials
	case codes.Unimplemented:
		kind = userservice.ErrLoginDisabled
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

func decodeGRPCRegisterRequest(_ context.Context, grpcReq interface{}) (interface{}, error) {
	req := grpcReq.(*pb.RegisterRequest)
	return userendpoint.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}, nil
}

func encodeGRPCRegisterResponse(_ context.Context, response interface{}) (interface{}, error) {
	resp := response.(userendpoint.RegisterResponse)
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &pb.RegisterReply{
		Success: resp.Success,
		Message: resp.Message,
		UserId:  resp.UserID,
	}, nil
}

func encodeGRPCRegisterRequest(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(userendpoint.RegisterRequest)
	return &pb.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}, nil
}

func decodeGRPCRegisterResponse(_ context.Context, grpcReply interface{}) (interface{}, error) {
	reply := grpcReply.(*pb.RegisterReply)
	return userendpoint.RegisterResponse{
		Success: reply.Success,
		Message: reply.Message,
		UserID:  reply.UserId,
	}, nil
}

func decodeGRPCLoginRequest(_ context.Context, grpcReq interface{}) (interface{}, error) {
	req := grpcReq.(*pb.LoginRequest)
	return userendpoint.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	}, nil
}

func encodeGRPCLoginResponse(_ context.Context, response interface{}) (interface{}, error) {
	resp := response.(userendpoint.LoginResponse)
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &pb.LoginReply{
		Success: resp.Success,
		Message: resp.Message,
		Token:   resp.Token,
		UserId:  resp.UserID,
		User: &pb.User{
			Id:       resp.User.ID,
			Username: resp.User.Username,
			Email:    resp.User.Email,
		},
	}, nil
}

func encodeGRPCLoginRequest(_ context.Context, request interface{}) (interface{}, error) {
	req := request.(userendpoint.LoginRequest)
	return &pb.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	}, nil
}

func decodeGRPCLoginResponse(_ context.Context, grpcReply interface{}) (interface{}, error) {
	reply := grpcReply.(*pb.LoginReply)
	return userendpoint.LoginResponse{
		Success: reply.Success,
		Message: reply.Message,
		Token:   reply.Token,
		UserID:  reply.UserId,
		User: usersvc.User{
			ID:       reply.GetUser().GetId(),
			Username: reply.GetUser().GetUsername(),
			Email:    reply.GetUser().GetEmail(),
		},
	}, nil
}
