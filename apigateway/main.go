// Command apigateway serves the JSON API in front of todo service instances,
// either discovered through consul or dialed at a fixed address.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	consulsd "github.com/go-kit/kit/sd/consul"
	"github.com/gorilla/mux"
	"github.com/hashicorp/consul/api"
	todoclient "github.com/ichigozero/todogrpc/todosvc/client"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoendpoint"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todotransport"
	userclient "github.com/ichigozero/todogrpc/usersvc/client"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userendpoint"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var (
		httpAddr     = flag.String("http.addr", envOr("GATEWAY_HTTP_ADDR", ":8000"), "Address for HTTP (JSON) server")
		consulAddr   = flag.String("consul.addr", envOr("CONSUL_ADDR", ""), "Consul agent address")
		todosvcAddr  = flag.String("todosvc.addr", envOr("TODOSVC_ADDR", ""), "Fixed todo service gRPC address, bypasses consul")
		prefix       = flag.String("prefix", "/api/v1", "Path prefix the API is mounted under")
		retryMax     = flag.Int("retry.max", 3, "per-request retries to different instances")
		retryTimeout = flag.Duration("retry.timeout", 500*time.Millisecond, "per-request timeout, including retries")
	)
	flag.Parse()

	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(os.Stderr)
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
	}

	var (
		todos todoendpoint.Set
		users userendpoint.Set
	)
	if *todosvcAddr != "" {
		todoService, todoConn, err := todoclient.Dial(*todosvcAddr, logger)
		if err != nil {
			level.Error(logger).Log("during", "dial", "addr", *todosvcAddr, "err", err)
			os.Exit(1)
		}
		defer todoConn.Close()

		userService, userConn, err := userclient.Dial(*todosvcAddr, logger)
		if err != nil {
			level.Error(logger).Log("during", "dial", "addr", *todosvcAddr, "err", err)
			os.Exit(1)
		}
		defer userConn.Close()

		todos = todoclient.NewEndpoints(todoService)
		users = userclient.NewEndpoints(userService)
	} else {
		consulConfig := api.DefaultConfig()
		if len(*consulAddr) > 0 {
			consulConfig.Address = *consulAddr
		}

		consulClient, err := api.NewClient(consulConfig)
		if err != nil {
			level.Error(logger).Log("during", "consul", "err", err)
			os.Exit(1)
		}

		client := consulsd.NewClient(consulClient)
		todos, _ = todoclient.New(client, logger, *retryMax, *retryTimeout)
		users, _ = userclient.New(client, todoclient.ServiceName, logger, *retryMax, *retryTimeout)
	}

	r := newRouter(*prefix, todos, users, logger)

	// Interrupt handler.
	errc := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errc <- fmt.Errorf("%s", <-c)
	}()

	// HTTP transport.
	go func() {
		level.Info(logger).Log("transport", "HTTP", "addr", *httpAddr, "prefix", *prefix)
		errc <- http.ListenAndServe(*httpAddr, r)
	}()

	// Run!
	logger.Log("exit", <-errc)
}

func newRouter(prefix string, todos todoendpoint.Set, users userendpoint.Set, logger log.Logger) http.Handler {
	r := mux.NewRouter()
	handler := todotransport.NewHTTPHandler(todos, users, nil, logger)
	r.PathPrefix(prefix).Handler(http.StripPrefix(prefix, handler))
	return r
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
