package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	consulsd "github.com/go-kit/kit/sd/consul"
	kitgrpc "github.com/go-kit/kit/transport/grpc"
	"github.com/hashicorp/consul/api"
	"github.com/ichigozero/todogrpc/authsvc/pkg/authservice"
	"github.com/ichigozero/todogrpc/store"
	"github.com/ichigozero/todogrpc/todosvc"
	todoclient "github.com/ichigozero/todogrpc/todosvc/client"
	todogorm "github.com/ichigozero/todogrpc/todosvc/db/gorm"
	todoinmem "github.com/ichigozero/todogrpc/todosvc/inmem"
	"github.com/ichigozero/todogrpc/todosvc/pb"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoendpoint"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoservice"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todotransport"
	"github.com/ichigozero/todogrpc/usersvc"
	usergorm "github.com/ichigozero/todogrpc/usersvc/db/gorm"
	userinmem "github.com/ichigozero/todogrpc/usersvc/inmem"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userendpoint"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userservice"
	"github.com/joho/godotenv"
	"github.com/oklog/oklog/pkg/group"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/twinj/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	defaults := store.DefaultConfig()

	fs := flag.NewFlagSet("todosvc", flag.ExitOnError)
	var (
		host       = fs.String("host", getEnv("HOST", "0.0.0.0"), "gRPC listen host")
		port       = fs.Int("port", getEnvAsInt("PORT", 50051), "gRPC listen port")
		httpAddr   = fs.String("http.addr", getEnv("HTTP_ADDR", ":8080"), "HTTP gateway listen address, empty disables it")
		consulAddr = fs.String("consul.addr", getEnv("CONSUL_ADDR", ""), "Consul agent address, empty disables registration")
		logLevel   = fs.String("log.level", getEnv("LOG_LEVEL", "info"), "debug, info, warn or error")

		dbDriver           = fs.String("db.driver", getEnv("DB_DRIVER", defaults.Driver), "postgres, sqlite or memory")
		databaseURL        = fs.String("database.url", getEnv("DATABASE_URL", ""), "Database URL, overrides the db.* connection flags")
		dbHost             = fs.String("db.host", getEnv("DB_HOST", defaults.Host), "Database host")
		dbPort             = fs.Int("db.port", getEnvAsInt("DB_PORT", defaults.Port), "Database port")
		dbName             = fs.String("db.name", getEnv("DB_NAME", defaults.Name), "Database name")
		dbUser             = fs.String("db.user", getEnv("DB_USER", defaults.User), "Database user")
		dbPassword         = fs.String("db.password", getEnv("DB_PASSWORD", defaults.Password), "Database password")
		dbSSL              = fs.Bool("db.ssl", getEnvAsBool("DB_SSL", defaults.SSL), "Require TLS to the database")
		dbPath             = fs.String("db.path", getEnv("DB_PATH", defaults.Path), "SQLite database file")
		dbMaxConns         = fs.Int("db.max-conns", getEnvAsInt("DB_MAX_CONNS", defaults.MaxConns), "Maximum pooled connections")
		dbIdleTimeout      = fs.Duration("db.idle-timeout", getEnvAsDuration("DB_IDLE_TIMEOUT", defaults.IdleTimeout), "Idle connection lifetime")
		dbAcquireTimeout   = fs.Duration("db.acquire-timeout", getEnvAsDuration("DB_ACQUIRE_TIMEOUT", defaults.AcquireTimeout), "Maximum wait for a pooled connection")
		dbStatementTimeout = fs.Duration("db.statement-timeout", getEnvAsDuration("DB_STATEMENT_TIMEOUT", defaults.StatementTimeout), "Maximum statement duration")

		authMode         = fs.String("auth.mode", getEnv("AUTH_MODE", ""), "hmac, rsa or none; defaults to hmac when a secret is set")
		jwtSecret        = fs.String("jwt.secret", getEnv("JWT_SECRET", ""), "HS256 signing secret")
		jwtPublicKeyFile = fs.String("jwt.public-key-file", getEnv("JWT_PUBLIC_KEY_FILE", ""), "PEM public key or certificate for rsa mode")
		jwtIssuer        = fs.String("jwt.issuer", getEnv("JWT_ISSUER", "todo-app-issuer"), "Expected and issued token issuer")
		jwtAudience      = fs.String("jwt.audience", getEnv("JWT_AUDIENCE", ""), "Expected and issued token audience")
		jwtSkipExpiry    = fs.Bool("jwt.insecure-skip-expiry", getEnvAsBool("JWT_INSECURE_SKIP_EXPIRY", false), "Accept expired tokens (never in production)")
	)

	fs.Usage = usageFor(fs, os.Args[0]+" [flags]")
	fs.Parse(os.Args[1:])

	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(os.Stderr)
		logger = level.NewFilter(logger, levelOption(*logLevel))
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
	}

	var (
		todoRepository todosvc.TodoRepository
		userRepository usersvc.UserRepository
		healthCheck    func(context.Context) error
	)
	if *dbDriver == "memory" {
		level.Warn(logger).Log("msg", "using in-memory storage, data is lost on exit")
		todoRepository = todoinmem.NewTodoRepository()
		userRepository = userinmem.NewUserRepository()
	} else {
		cfg := store.Config{
			Driver:           *dbDriver,
			URL:              *databaseURL,
			Host:             *dbHost,
			Port:             *dbPort,
			Name:             *dbName,
			User:             *dbUser,
			Password:         *dbPassword,
			SSL:              *dbSSL,
			Path:             *dbPath,
			MaxConns:         *dbMaxConns,
			IdleTimeout:      *dbIdleTimeout,
			AcquireTimeout:   *dbAcquireTimeout,
			StatementTimeout: *dbStatementTimeout,
		}
		db, err := store.Open(cfg, log.With(logger, "component", "store"))
		if err != nil {
			level.Error(logger).Log("during", "store.Open", "err", err)
			return 1
		}
		defer db.Close()

		verifyTimeout := cfg.AcquireTimeout + cfg.StatementTimeout
		if verifyTimeout <= 0 {
			verifyTimeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
		err = db.Verify(ctx)
		cancel()
		if err != nil {
			level.Error(logger).Log("during", "store.Verify", "err", err)
			return 1
		}
		if err := todogorm.Migrate(db); err != nil {
			level.Error(logger).Log("during", "migrate", "table", "todos", "err", err)
			return 1
		}
		if err := usergorm.Migrate(db); err != nil {
			level.Error(logger).Log("during", "migrate", "table", "users", "err", err)
			return 1
		}

		todoRepository = todogorm.NewTodoRepository(db)
		userRepository = usergorm.NewUserRepository(db)
		healthCheck = db.Ping
	}

	mode := resolveAuthMode(*authMode, *jwtSecret)
	verifier, err := newVerifier(mode, *jwtSecret, *jwtPublicKeyFile, *jwtIssuer, *jwtAudience, *jwtSkipExpiry, logger)
	if err != nil {
		level.Error(logger).Log("during", "auth", "err", err)
		return 1
	}

	tokenizer := newTokenizer(mode, *jwtSecret, *jwtIssuer, *jwtAudience, logger)

	var (
		fieldKeys = []string{"method", "error"}
		duration  = kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: "todo",
			Subsystem: "todosvc",
			Name:      "request_duration_seconds",
			Help:      "Request duration in seconds.",
		}, []string{"method", "success"})
	)

	var todoService todoservice.Service
	{
		todoService = todoservice.New(todoRepository, logger)
		todoService = todoservice.InstrumentingMiddleware(
			kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
				Namespace: "todo",
				Subsystem: "todo_service",
				Name:      "request_count",
				Help:      "Number of requests received.",
			}, fieldKeys),
			kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
				Namespace: "todo",
				Subsystem: "todo_service",
				Name:      "request_latency_seconds",
				Help:      "Total duration of requests in seconds.",
			}, fieldKeys),
		)(todoService)
	}

	var userService userservice.Service
	{
		userService = userservice.New(userRepository, tokenizer, logger)
		userService = userservice.InstrumentingMiddleware(
			kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
				Namespace: "todo",
				Subsystem: "user_service",
				Name:      "request_count",
				Help:      "Number of requests received.",
			}, fieldKeys),
			kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
				Namespace: "todo",
				Subsystem: "user_service",
				Name:      "request_latency_seconds",
				Help:      "Total duration of requests in seconds.",
			}, fieldKeys),
		)(userService)
	}

	var (
		todoEndpoints = todoendpoint.New(todoService, verifier, logger, duration)
		userEndpoints = userendpoint.New(userService, logger)
		grpcServer    = todotransport.NewGRPCServer(todoEndpoints, userEndpoints, logger)
		httpHandler   = todotransport.NewHTTPHandler(todoEndpoints, userEndpoints, healthCheck, logger)
		grpcAddr      = net.JoinHostPort(*host, strconv.Itoa(*port))
	)

	if *consulAddr != "" {
		consulConfig := api.DefaultConfig()
		consulConfig.Address = *consulAddr
		consulClient, err := api.NewClient(consulConfig)
		if err != nil {
			level.Error(logger).Log("during", "consul", "err", err)
			return 1
		}

		advertise := *host
		if advertise == "" || advertise == "0.0.0.0" {
			advertise = "localhost"
		}

		asr := &api.AgentServiceRegistration{
			ID:      uuid.NewV4().String(),
			Name:    todoclient.ServiceName,
			Address: advertise,
			Port:    *port,
		}

		registrar := consulsd.NewRegistrar(consulsd.NewClient(consulClient), asr, logger)
		registrar.Register()
		defer registrar.Deregister()
	}

	var g group.Group
	{
		// The gRPC listener mounts the Go kit gRPC server we created.
		grpcListener, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			level.Error(logger).Log("transport", "gRPC", "during", "Listen", "err", err)
			return 1
		}
		baseServer := grpc.NewServer(grpc.UnaryInterceptor(kitgrpc.Interceptor))
		pb.RegisterTodoServiceServer(baseServer, grpcServer)
		healthpb.RegisterHealthServer(baseServer, health.NewServer())
		reflection.Register(baseServer)
		g.Add(func() error {
			level.Info(logger).Log("transport", "gRPC", "addr", grpcAddr)
			return baseServer.Serve(grpcListener)
		}, func(error) {
			baseServer.GracefulStop()
		})
	}
	if *httpAddr != "" {
		httpListener, err := net.Listen("tcp", *httpAddr)
		if err != nil {
			level.Error(logger).Log("transport", "HTTP", "during", "Listen", "err", err)
			return 1
		}
		g.Add(func() error {
			level.Info(logger).Log("transport", "HTTP", "addr", *httpAddr)
			return http.Serve(httpListener, httpHandler)
		}, func(error) {
			httpListener.Close()
		})
	}
	{
		// This function just sits and waits for ctrl-C.
		cancelInterrupt := make(chan struct{})
		g.Add(func() error {
			c := make(chan os.Signal, 1)
			signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-c:
				return interrupted{sig}
			case <-cancelInterrupt:
				return nil
			}
		}, func(error) {
			close(cancelInterrupt)
		})
	}

	err = g.Run()
	logger.Log("exit", err)

	var sig interrupted
	if errors.As(err, &sig) {
		return 0
	}
	return 1
}

type interrupted struct {
	sig os.Signal
}

func (i interrupted) Error() string {
	return fmt.Sprintf("received signal %s", i.sig)
}

// resolveAuthMode picks hmac when a secret is set and no mode was given.
func resolveAuthMode(mode, secret string) string {
	if mode != "" {
		return mode
	}
	if secret != "" {
		return "hmac"
	}
	return "none"
}

// newTokenizer returns nil, disabling Login, when tokens could not be
// verified by this server: without a secret, or in rsa mode where issued
// HS256 tokens would be rejected.
func newTokenizer(mode, secret, issuer, audience string, logger log.Logger) authservice.Tokenizer {
	switch {
	case secret == "":
		level.Warn(logger).Log("msg", "no JWT secret configured, Login is disabled")
		return nil
	case mode == "rsa":
		level.Warn(logger).Log("msg", "auth mode rsa verifies tokens from an external issuer, Login is disabled")
		return nil
	}
	return authservice.NewTokenizer([]byte(secret), issuer, audience)
}

func newVerifier(mode, secret, publicKeyFile, issuer, audience string, skipExpiry bool, logger log.Logger) (authservice.Verifier, error) {
	options := []authservice.VerifierOption{authservice.WithIssuer(issuer)}
	if audience != "" {
		options = append(options, authservice.WithAudience(audience))
	}
	if skipExpiry && mode != "none" {
		level.Warn(logger).Log("msg", "JWT expiry checks are DISABLED, expired tokens will be accepted")
		options = append(options, authservice.InsecureSkipExpiry())
	}

	var verifier authservice.Verifier
	switch mode {
	case "none":
		level.Warn(logger).Log("msg", "authentication is disabled, todos are not scoped to an owner")
		return nil, nil
	case "hmac":
		if secret == "" {
			return nil, errors.New("auth mode hmac requires a JWT secret")
		}
		verifier = authservice.NewHMACVerifier([]byte(secret), options...)
	case "rsa":
		if publicKeyFile == "" {
			return nil, errors.New("auth mode rsa requires a public key file")
		}
		pem, err := ioutil.ReadFile(publicKeyFile)
		if err != nil {
			return nil, err
		}
		verifier, err = authservice.NewRSAVerifierFromPEM(pem, options...)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown auth mode %q", mode)
	}

	verifier = authservice.LoggingMiddleware(log.With(logger, "component", "auth"))(verifier)
	verifier = authservice.InstrumentingMiddleware(
		kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: "todo",
			Subsystem: "auth",
			Name:      "verify_count",
			Help:      "Number of bearer tokens verified.",
		}, []string{"method", "result"}),
		kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: "todo",
			Subsystem: "auth",
			Name:      "verify_latency_seconds",
			Help:      "Duration of token verification in seconds.",
		}, []string{"method", "result"}),
	)(verifier)

	return verifier, nil
}

func levelOption(name string) level.Option {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	}
	return level.AllowInfo()
}

func usageFor(fs *flag.FlagSet, short string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "USAGE\n")
		fmt.Fprintf(os.Stderr, "  %s\n", short)
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "FLAGS\n")
		w := tabwriter.NewWriter(os.Stderr, 0, 2, 2, ' ', 0)
		fs.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(w, "\t-%s %s\t%s\n", f.Name, f.DefValue, f.Usage)
		})
		w.Flush()
		fmt.Fprintf(os.Stderr, "\n")
	}
}

func getEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	if v, err := strconv.ParseBool(value); err == nil {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	if v, err := time.ParseDuration(value); err == nil {
		return v
	}
	return fallback
}
