// Package store wraps a pooled relational database handle. Every statement
// runs on a connection checked out of a bounded pool and returned before the
// call completes.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/jackc/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	// ErrConnection is returned when no pooled connection could be acquired.
	ErrConnection = errors.New("store connection error")
	// ErrQuery is returned when a statement fails to execute.
	ErrQuery = errors.New("store query error")
	// ErrConstraint is returned when a statement violates a unique constraint.
	ErrConstraint = errors.New("store constraint violation")
)

// Querier runs a single parameterized statement and scans the resulting rows
// into dest. Placeholders are written as ? and rebound for the dialect.
type Querier interface {
	Query(ctx context.Context, dest interface{}, statement string, args ...interface{}) error
}

type Config struct {
	Driver   string
	URL      string
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSL      bool
	Path     string

	MaxConns         int
	IdleTimeout      time.Duration
	AcquireTimeout   time.Duration
	StatementTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Driver:           "postgres",
		Host:             "localhost",
		Port:             5432,
		Name:             "todoapp",
		User:             "postgres",
		Password:         "password",
		Path:             "todo.db",
		MaxConns:         20,
		IdleTimeout:      30 * time.Second,
		AcquireTimeout:   2 * time.Second,
		StatementTimeout: 5 * time.Second,
	}
}

// DSN returns the postgres connection string. URL takes precedence over the
// individual settings.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	sslmode := "disable"
	if c.SSL {
		sslmode = "require"
	}

	q := url.Values{}
	q.Set("sslmode", sslmode)
	if c.AcquireTimeout > 0 {
		secs := int(c.AcquireTimeout.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		q.Set("connect_timeout", strconv.Itoa(secs))
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (c Config) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case "", "postgres":
		return postgres.Open(c.DSN()), nil
	case "sqlite":
		return sqlite.Open(c.Path), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
}

type Store struct {
	db               *gorm.DB
	pool             *sql.DB
	acquireTimeout   time.Duration
	statementTimeout time.Duration
	logger           log.Logger
}

var _ Querier = (*Store)(nil)

// Open builds the connection pool. It does not touch the database; call
// Verify before serving traffic.
func Open(cfg Config, logger log.Logger) (*Store, error) {
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if cfg.MaxConns > 0 {
		pool.SetMaxOpenConns(cfg.MaxConns)
		pool.SetMaxIdleConns(cfg.MaxConns)
	}
	if cfg.IdleTimeout > 0 {
		pool.SetConnMaxIdleTime(cfg.IdleTimeout)
	}

	return &Store{
		db:               db,
		pool:             pool,
		acquireTimeout:   cfg.AcquireTimeout,
		statementTimeout: cfg.StatementTimeout,
		logger:           logger,
	}, nil
}

func (s *Store) Query(ctx context.Context, dest interface{}, statement string, args ...interface{}) error {
	conn, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if s.statementTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.statementTimeout)
		defer cancel()
	}

	tx := s.db.WithContext(ctx)
	tx.Statement.ConnPool = conn
	if err := tx.Raw(statement, args...).Scan(dest).Error; err != nil {
		return classify(err)
	}
	return nil
}

func (s *Store) acquire(ctx context.Context) (*sql.Conn, error) {
	if s.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.acquireTimeout)
		defer cancel()
	}

	conn, err := s.pool.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return conn, nil
}

// Ping runs a no-op statement on a pooled connection.
func (s *Store) Ping(ctx context.Context) error {
	var one int
	return s.Query(ctx, &one, "SELECT 1")
}

// Verify proves the database is reachable before traffic is served.
func (s *Store) Verify(ctx context.Context) error {
	if err := s.Ping(ctx); err != nil {
		return err
	}
	level.Info(s.logger).Log("msg", "database connection verified")
	return nil
}

// Migrate creates or updates the tables backing the given models.
func (s *Store) Migrate(models ...interface{}) error {
	return s.db.AutoMigrate(models...)
}

func (s *Store) Close() error {
	return s.pool.Close()
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) &&
		(liteErr.ExtendedCode == sqlite3.ErrConstraintUnique || liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return fmt.Errorf("%w: %v", ErrQuery, err)
}
