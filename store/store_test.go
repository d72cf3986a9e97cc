package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/jackc/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := DefaultConfig()
	u, err := url.Parse(cfg.DSN())
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "localhost:5432", u.Host)
	assert.Equal(t, "/todoapp", u.Path)
	assert.Equal(t, "postgres", u.User.Username())
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "2", u.Query().Get("connect_timeout"))

	cfg.SSL = true
	cfg.Password = "p@ss word"
	cfg.AcquireTimeout = 100 * time.Millisecond
	u, err = url.Parse(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Equal(t, "1", u.Query().Get("connect_timeout"))
	password, _ := u.User.Password()
	assert.Equal(t, "p@ss word", password)
}

func TestDSNPrefersURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "postgres://app@db.internal/todos"
	assert.Equal(t, cfg.URL, cfg.DSN())
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Driver = "oracle"
	_, err := Open(cfg, log.NewNopLogger())
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"postgres unique", &pgconn.PgError{Code: "23505"}, ErrConstraint},
		{"postgres other", &pgconn.PgError{Code: "42P01"}, ErrQuery},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ErrConstraint},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, ErrConstraint},
		{"deadline", fmt.Errorf("scan: %w", context.DeadlineExceeded), ErrConnection},
		{"canceled", context.Canceled, ErrConnection},
		{"anything else", errors.New("syntax error"), ErrQuery},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tc.err), tc.want)
		})
	}
}

func openSQLite(t *testing.T) *Store {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Driver = "sqlite"
	cfg.Path = "file:" + t.Name() + "?mode=memory&cache=shared"
	cfg.MaxConns = 1

	s, err := Open(cfg, log.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	if err := s.Verify(context.Background()); err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	return s
}

func TestQuerySQLite(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()

	var none []struct{}
	require.NoError(t, s.Query(ctx, &none, "CREATE TABLE things (id INTEGER PRIMARY KEY, name TEXT UNIQUE)"))

	var ids []uint64
	require.NoError(t, s.Query(ctx, &ids, "INSERT INTO things (name) VALUES (?) RETURNING id", "first"))
	require.Len(t, ids, 1)

	err := s.Query(ctx, &ids, "INSERT INTO things (name) VALUES (?) RETURNING id", "first")
	assert.ErrorIs(t, err, ErrConstraint)

	err = s.Query(ctx, &ids, "SELECT id FROM missing")
	assert.ErrorIs(t, err, ErrQuery)
}

func TestQueryCanceledContext(t *testing.T) {
	s := openSQLite(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var one int
	assert.ErrorIs(t, s.Query(ctx, &one, "SELECT 1"), ErrConnection)
}
