package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"testing"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/generic"
	kitgrpc "github.com/go-kit/kit/transport/grpc"
	"github.com/ichigozero/todogrpc/authsvc"
	"github.com/ichigozero/todogrpc/authsvc/pkg/authservice"
	"github.com/ichigozero/todogrpc/todosvc"
	todoinmem "github.com/ichigozero/todogrpc/todosvc/inmem"
	"github.com/ichigozero/todogrpc/todosvc/pb"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoendpoint"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoservice"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todotransport"
	userinmem "github.com/ichigozero/todogrpc/usersvc/inmem"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userendpoint"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

var secret = []byte("todoctl-secret")

func startServer(t *testing.T) string {
	t.Helper()
	logger := log.NewNopLogger()

	todos := todoendpoint.New(
		todoservice.NewBasicService(todoinmem.NewTodoRepository()),
		authservice.NewHMACVerifier(secret),
		logger,
		generic.NewHistogram("duration", 10),
	)
	users := userendpoint.New(
		userservice.NewBasicService(userinmem.NewUserRepository(), authservice.NewTokenizer(secret, "todo-app-issuer", ""), logger),
		logger,
	)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	server := grpc.NewServer(grpc.UnaryInterceptor(kitgrpc.Interceptor))
	pb.RegisterTodoServiceServer(server, todotransport.NewGRPCServer(todos, users, logger))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	return lis.Addr().String()
}

func runJSON(t *testing.T, ctx context.Context, addr, command string, v interface{}, args ...string) {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(ctx, addr, command, args, log.NewNopLogger(), &out))
	require.NoError(t, json.Unmarshal(out.Bytes(), v), out.String())
}

func TestCommands(t *testing.T) {
	addr := startServer(t)
	ctx := context.Background()

	var user struct {
		Username string `json:"username"`
	}
	runJSON(t, ctx, addr, "register", &user, "alice", "secret1", "alice@example.com")
	assert.Equal(t, "alice", user.Username)

	var login struct {
		Token string `json:"token"`
	}
	runJSON(t, ctx, addr, "login", &login, "alice", "secret1")
	require.NotEmpty(t, login.Token)

	ctx = context.WithValue(ctx, kitjwt.JWTTokenContextKey, login.Token)

	var created todosvc.Todo
	runJSON(t, ctx, addr, "create", &created, "Buy milk", "2 litres")
	require.NotZero(t, created.ID)
	id := fmt.Sprint(created.ID)

	var out bytes.Buffer
	require.NoError(t, run(ctx, addr, "list", nil, log.NewNopLogger(), &out))
	assert.Contains(t, out.String(), "Buy milk")
	assert.Contains(t, out.String(), "page 1 of 1, 1 total")

	var updated todosvc.Todo
	runJSON(t, ctx, addr, "update", &updated, id, "Buy oat milk", "1 litre", "false")
	assert.Equal(t, "Buy oat milk", updated.Title)

	var completed todosvc.Todo
	runJSON(t, ctx, addr, "complete", &completed, id)
	assert.True(t, completed.Completed)

	var fetched todosvc.Todo
	runJSON(t, ctx, addr, "get", &fetched, id)
	assert.Equal(t, "1 litre", fetched.Description)

	var deleted todosvc.Todo
	runJSON(t, ctx, addr, "delete", &deleted, id)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Buy oat milk", deleted.Title)

	err := run(ctx, addr, "get", []string{id}, log.NewNopLogger(), &bytes.Buffer{})
	assert.ErrorIs(t, err, todosvc.ErrNotFound)
}

func TestCommandErrors(t *testing.T) {
	addr := startServer(t)

	for name, tc := range map[string]struct {
		command string
		args    []string
		usage   bool
		message string
	}{
		"register missing email": {"register", []string{"alice", "secret1"}, true, "register <username>"},
		"login missing password": {"login", []string{"alice"}, true, "login <username>"},
		"create without title":   {"create", nil, true, "create <title>"},
		"get with two ids":       {"get", []string{"1", "2"}, true, "get <id>"},
		"list with extra args":   {"list", []string{"1", "10", "x"}, true, "list [page]"},
		"update missing flag":    {"update", []string{"1", "t", "d"}, true, "update <id>"},
		"invalid id":             {"complete", []string{"abc"}, false, `invalid todo id "abc"`},
		"invalid page":           {"list", []string{"one"}, false, `invalid page "one"`},
		"invalid completed flag": {"update", []string{"1", "t", "d", "maybe"}, false, `invalid completed flag "maybe"`},
		"unknown command":        {"archive", []string{"1"}, false, `unknown command "archive"`},
	} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), addr, tc.command, tc.args, log.NewNopLogger(), &out)
			require.Error(t, err)
			if tc.usage {
				assert.ErrorIs(t, err, errUsage)
			} else {
				assert.NotErrorIs(t, err, errUsage)
			}
			assert.Contains(t, err.Error(), tc.message)
			assert.Empty(t, out.String())
		})
	}
}

func TestTodoCommandsRequireToken(t *testing.T) {
	addr := startServer(t)

	err := run(context.Background(), addr, "create", []string{"Buy milk"}, log.NewNopLogger(), &bytes.Buffer{})
	assert.ErrorIs(t, err, authsvc.ErrInvalidCredentials)
}
