package userendpoint

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/ichigozero/todogrpc/usersvc"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userservice"
)

type Set struct {
	RegisterEndpoint endpoint.Endpoint
	LoginEndpoint    endpoint.Endpoint
}

func New(svc userservice.Service, logger log.Logger) Set {
	var registerEndpoint endpoint.Endpoint
	{
		registerEndpoint = MakeRegisterEndpoint(svc)
		registerEndpoint = LoggingMiddleware(log.With(logger, "method", "Register"))(registerEndpoint)
	}
	var loginEndpoint endpoint.Endpoint
	{
		loginEndpoint = MakeLoginEndpoint(svc)
		loginEndpoint = LoggingMiddleware(log.With(logger, "method", "Login"))(loginEndpoint)
	}
	return Set{
		RegisterEndpoint: registerEndpoint,
		LoginEndpoint:    loginEndpoint,
	}
}

func (s Set) Register(ctx context.Context, username, password, email string) (usersvc.User, error) {
	resp, err := s.RegisterEndpoint(ctx, RegisterRequest{Username: username, Password: password, Email: email})
	if err != nil {
		return usersvc.User{}, err
	}
	response := resp.(RegisterResponse)
	return usersvc.User{ID: response.UserID, Username: username, Email: email}, response.Err
}

func (s Set) Login(ctx context.Context, username, password string) (usersvc.User, string, error) {
	resp, err := s.LoginEndpoint(ctx, LoginRequest{Username: username, Password: password})
	if err != nil {
		return usersvc.User{}, "", err
	}
	response := resp.(LoginResponse)
	return response.User, response.Token, response.Err
}

func MakeRegisterEndpoint(s userservice.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(RegisterRequest)
		u, err := s.Register(ctx, req.Username, req.Password, req.Email)
		if err != nil {
			return RegisterResponse{Err: err}, nil
		}
		return RegisterResponse{
			Success: true,
			Message: fmt.Sprintf("Welcome %s, your account has been created!", u.Username),
			UserID:  u.ID,
		}, nil
	}
}

func MakeLoginEndpoint(s userservice.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(LoginRequest)
		u, token, err := s.Login(ctx, req.Username, req.Password)
		if err != nil {
			return LoginResponse{Err: err}, nil
		}
		return LoginResponse{
			Success: true,
			Message: fmt.Sprintf("Welcome back, %s! Login successful.", u.Username),
			Token:   token,
			UserID:  u.ID,
			User:    u,
		}, nil
	}
}

var (
	_ endpoint.Failer = RegisterResponse{}
	_ endpoint.Failer = LoginResponse{}
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint64 `json:"user_id"`
	Err     error  `json:"-"`
}

func (r RegisterResponse) Failed() error { return r.Err }

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	UserID  uint64       `json:"user_id"`
	User    usersvc.User `json:"user"`
	Err     error        `json:"-"`
}

func (r LoginResponse) Failed() error { return r.Err }
