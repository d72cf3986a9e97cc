package client

import (
	"io"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/sd"
	consulsd "github.com/go-kit/kit/sd/consul"
	"github.com/go-kit/kit/sd/lb"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userendpoint"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userservice"
	"github.com/ichigozero/todogrpc/usersvc/pkg/usertransport"
	"google.golang.org/grpc"
)

// New discovers account endpoints through consul. Accounts are served by the
// todo service instances.
func New(apiclient consulsd.Client, serviceName string, logger log.Logger, retryMax int, retryTimeout time.Duration) (userendpoint.Set, error) {
	var (
		tags        = []string{}
		passingOnly = true
		endpoints   = userendpoint.Set{}
		instancer   = consulsd.NewInstancer(apiclient, logger, serviceName, tags, passingOnly)
	)
	{
		factory := factoryFor(userendpoint.MakeRegisterEndpoint, logger)
		endpointer := sd.NewEndpointer(instancer, factory, logger)
		balancer := lb.NewRoundRobin(endpointer)
		retry := lb.Retry(retryMax, retryTimeout, balancer)
		endpoints.RegisterEndpoint = retry
	}
	{
		factory := factoryFor(userendpoint.MakeLoginEndpoint, logger)
		endpointer := sd.NewEndpointer(instancer, factory, logger)
		balancer := lb.NewRoundRobin(endpointer)
		retry := lb.Retry(retryMax, retryTimeout, balancer)
		endpoints.LoginEndpoint = retry
	}

	return endpoints, nil
}

// NewEndpoints exposes a single service as an endpoint set.
func NewEndpoints(svc userservice.Service) userendpoint.Set {
	return userendpoint.Set{
		RegisterEndpoint: userendpoint.MakeRegisterEndpoint(svc),
		LoginEndpoint:    userendpoint.MakeLoginEndpoint(svc),
	}
}

// Dial connects to a single instance.
func Dial(addr string, logger log.Logger) (userservice.Service, io.Closer, error) {
	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		return nil, nil, err
	}
	return usertransport.NewGRPCClient(conn, logger), conn, nil
}

func factoryFor(makeEndpoint func(userservice.Service) endpoint.Endpoint, logger log.Logger) sd.Factory {
	return func(instance string) (endpoint.Endpoint, io.Closer, error) {
		service, conn, err := Dial(instance, logger)
		if err != nil {
			return nil, nil, err
		}
		return makeEndpoint(service), conn, nil
	}
}
