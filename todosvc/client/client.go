// Package client builds todo service endpoints for callers, either from
// consul discovery or from a single known address.
package client

import (
	"io"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/sd"
	consulsd "github.com/go-kit/kit/sd/consul"
	"github.com/go-kit/kit/sd/lb"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoendpoint"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoservice"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todotransport"
	"google.golang.org/grpc"
)

// ServiceName is the name instances register under in consul.
const ServiceName = "todosvc"

func New(apiclient consulsd.Client, logger log.Logger, retryMax int, retryTimeout time.Duration) (todoendpoint.Set, error) {
	var (
		tags        = []string{}
		passingOnly = true
		endpoints   = todoendpoint.Set{}
		instancer   = consulsd.NewInstancer(apiclient, logger, ServiceName, tags, passingOnly)
	)
	balanced := func(makeEndpoint func(todoservice.Service) endpoint.Endpoint) endpoint.Endpoint {
		factory := factoryFor(makeEndpoint, logger)
		endpointer := sd.NewEndpointer(instancer, factory, logger)
		balancer := lb.NewRoundRobin(endpointer)
		return lb.Retry(retryMax, retryTimeout, balancer)
	}

	endpoints.CreateTodoEndpoint = balanced(todoendpoint.MakeCreateTodoEndpoint)
	endpoints.GetTodoEndpoint = balanced(todoendpoint.MakeGetTodoEndpoint)
	endpoints.GetAllTodosEndpoint = balanced(todoendpoint.MakeGetAllTodosEndpoint)
	endpoints.UpdateTodoEndpoint = balanced(todoendpoint.MakeUpdateTodoEndpoint)
	endpoints.DeleteTodoEndpoint = balanced(todoendpoint.MakeDeleteTodoEndpoint)
	endpoints.CompleteTodoEndpoint = balanced(todoendpoint.MakeCompleteTodoEndpoint)

	return endpoints, nil
}

// NewEndpoints exposes a single service, typically one returned by Dial, as
// an endpoint set.
func NewEndpoints(svc todoservice.Service) todoendpoint.Set {
	return todoendpoint.Set{
		CreateTodoEndpoint:   todoendpoint.MakeCreateTodoEndpoint(svc),
		GetTodoEndpoint:      todoendpoint.MakeGetTodoEndpoint(svc),
		GetAllTodosEndpoint:  todoendpoint.MakeGetAllTodosEndpoint(svc),
		UpdateTodoEndpoint:   todoendpoint.MakeUpdateTodoEndpoint(svc),
		DeleteTodoEndpoint:   todoendpoint.MakeDeleteTodoEndpoint(svc),
		CompleteTodoEndpoint: todoendpoint.MakeCompleteTodoEndpoint(svc),
	}
}

// Dial connects to a single instance. The returned closer releases the
// connection.
func Dial(addr string, logger log.Logger) (todoservice.Service, io.Closer, error) {
	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		return nil, nil, err
	}
	return todotransport.NewGRPCClient(conn, logger), conn, nil
}

func factoryFor(makeEndpoint func(todoservice.Service) endpoint.Endpoint, logger log.Logger) sd.Factory {
	return func(instance string) (endpoint.Endpoint, io.Closer, error) {
		service, conn, err := Dial(instance, logger)
		if err != nil {
			return nil, nil, err
		}
		return makeEndpoint(service), conn, nil
	}
}
