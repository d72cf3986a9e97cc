package todotransport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/generic"
	kitgrpc "github.com/go-kit/kit/transport/grpc"
	"github.com/ichigozero/todogrpc/authsvc"
	"github.com/ichigozero/todogrpc/authsvc/pkg/authservice"
	"github.com/ichigozero/todogrpc/store"
	"github.com/ichigozero/todogrpc/todosvc"
	todoinmem "github.com/ichigozero/todogrpc/todosvc/inmem"
	"github.com/ichigozero/todogrpc/todosvc/pb"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoendpoint"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoservice"
	userinmem "github.com/ichigozero/todogrpc/usersvc/inmem"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userendpoint"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userservice"
	"github.com/ichigozero/todogrpc/usersvc/pkg/usertransport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

var secret = []byte("transport-secret")

const issuer = "todo-app-issuer"

type fixture struct {
	conn   *grpc.ClientConn
	client pb.TodoServiceClient
	todos  todoendpoint.Set
	users  userendpoint.Set
}

func newEndpoints(repo todosvc.TodoRepository, verifier authservice.Verifier) (todoendpoint.Set, userendpoint.Set) {
	logger := log.NewNopLogger()
	todos := todoendpoint.New(
		todoservice.NewBasicService(repo),
		verifier,
		logger,
		generic.NewHistogram("duration", 10),
	)
	users := userendpoint.New(
		userservice.NewBasicService(userinmem.NewUserRepository(), authservice.NewTokenizer(secret, issuer, ""), logger),
		logger,
	)
	return todos, users
}

func newFixture(t *testing.T, repo todosvc.TodoRepository, verifier authservice.Verifier) *fixture {
	t.Helper()

	todos, users := newEndpoints(repo, verifier)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.UnaryInterceptor(kitgrpc.Interceptor))
	pb.RegisterTodoServiceServer(server, NewGRPCServer(todos, users, log.NewNopLogger()))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithInsecure(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &fixture{conn: conn, client: pb.NewTodoServiceClient(conn), todos: todos, users: users}
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func (f *fixture) login(t *testing.T, username string) string {
	t.Helper()
	ctx := context.Background()

	_, err := f.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: "secret1", Email: username + "@example.com"})
	require.NoError(t, err)
	rep, err := f.client.Login(ctx, &pb.LoginRequest{Username: username, Password: "secret1"})
	require.NoError(t, err)
	return rep.Token
}

func requireCode(t *testing.T, err error, code codes.Code) *status.Status {
	t.Helper()
	s, ok := status.FromError(err)
	require.True(t, ok, "not a status error: %v", err)
	require.Equal(t, code, s.Code(), s.Message())
	return s
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))
	ctx := context.Background()

	reg, err := f.client.Register(ctx, &pb.RegisterRequest{Username: "alice", Password: "secret1", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.True(t, reg.Success)
	assert.Equal(t, "Welcome alice, your account has been created!", reg.Message)
	assert.NotZero(t, reg.UserId)

	rep, err := f.client.Login(ctx, &pb.LoginRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome back, alice! Login successful.", rep.Message)
	assert.Equal(t, reg.UserId, rep.UserId)
	assert.Equal(t, "alice@example.com", rep.User.GetEmail())
	assert.NotEmpty(t, rep.Token)

	_, err = f.client.Register(ctx, &pb.RegisterRequest{Username: "alice", Password: "secret1", Email: "other@example.com"})
	s := requireCode(t, err, codes.AlreadyExists)
	assert.Equal(t, "The username 'alice' is already taken.", s.Message())

	_, err = f.client.Register(ctx, &pb.RegisterRequest{Username: "al", Password: "secret1", Email: "al@example.com"})
	requireCode(t, err, codes.InvalidArgument)
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))
	f.login(t, "alice")
	ctx := context.Background()

	_, err := f.client.Login(ctx, &pb.LoginRequest{Username: "alice", Password: "wrong-password"})
	wrong := requireCode(t, err, codes.Unauthenticated)
	_, err = f.client.Login(ctx, &pb.LoginRequest{Username: "mallory", Password: "secret1"})
	unknown := requireCode(t, err, codes.Unauthenticated)

	assert.Equal(t, usertransport.InvalidCredentialsMessage, wrong.Message())
	assert.Equal(t, wrong.Message(), unknown.Message())
}

func TestTodoLifecycle(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret, authservice.WithIssuer(issuer)))
	ctx := withToken(f.login(t, "alice"))

	created, err := f.client.CreateTodo(ctx, &pb.CreateTodoRequest{Title: "  Buy milk ", Description: "2 litres"})
	require.NoError(t, err)
	assert.Equal(t, `Todo "Buy milk" created successfully!`, created.Message)
	assert.Equal(t, "Buy milk", created.Todo.Title)
	assert.False(t, created.Todo.Completed)
	assert.NotEmpty(t, created.Todo.CreatedAt)
	id := created.Todo.Id

	got, err := f.client.GetTodo(ctx, &pb.GetTodoRequest{Id: id})
	require.NoError(t, err)
	assert.Equal(t, `Todo "Buy milk" retrieved successfully!`, got.Message)
	assert.Equal(t, created.Todo.UserId, got.Todo.UserId)

	updated, err := f.client.UpdateTodo(ctx, &pb.UpdateTodoRequest{Id: id, Title: "Buy oat milk", Description: "1 litre"})
	require.NoError(t, err)
	assert.Equal(t, `Todo "Buy oat milk" updated successfully!`, updated.Message)

	completed, err := f.client.CompleteTodo(ctx, &pb.CompleteTodoRequest{Id: id})
	require.NoError(t, err)
	assert.Equal(t, `Great job! Todo "Buy oat milk" marked as completed!`, completed.Message)
	assert.True(t, completed.Todo.Completed)

	again, err := f.client.CompleteTodo(ctx, &pb.CompleteTodoRequest{Id: id})
	require.NoError(t, err)
	assert.True(t, again.Todo.Completed)

	deleted, err := f.client.DeleteTodo(ctx, &pb.DeleteTodoRequest{Id: id})
	require.NoError(t, err)
	assert.Equal(t, `Todo "Buy oat milk" deleted successfully!`, deleted.Message)
	assert.Equal(t, "Buy oat milk", deleted.Todo.GetTitle())
	assert.Equal(t, id, deleted.Todo.GetId())

	_, err = f.client.GetTodo(ctx, &pb.GetTodoRequest{Id: id})
	s := requireCode(t, err, codes.NotFound)
	assert.Equal(t, fmt.Sprintf("todo with ID %d not found", id), s.Message())
}

func TestGetAllTodos(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))
	ctx := withToken(f.login(t, "alice"))

	empty, err := f.client.GetAllTodos(ctx, &pb.GetAllTodosRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "No todos found. Create your first todo to get started!", empty.Message)
	assert.Zero(t, empty.TotalPages)

	for i := 0; i < 12; i++ {
		_, err := f.client.CreateTodo(ctx, &pb.CreateTodoRequest{Title: fmt.Sprintf("todo %d", i)})
		require.NoError(t, err)
	}

	page, err := f.client.GetAllTodos(ctx, &pb.GetAllTodosRequest{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, "Found 12 todo(s). Showing page 2 of 3.", page.Message)
	assert.Len(t, page.Todos, 5)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, int32(3), page.TotalPages)

	_, err = f.client.GetAllTodos(ctx, &pb.GetAllTodosRequest{Page: 0, Limit: 5})
	requireCode(t, err, codes.InvalidArgument)
	_, err = f.client.GetAllTodos(ctx, &pb.GetAllTodosRequest{Page: 1, Limit: 101})
	s := requireCode(t, err, codes.InvalidArgument)
	assert.Equal(t, "limit cannot exceed 100 todos per page", s.Message())
}

func TestValidationErrors(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))
	ctx := withToken(f.login(t, "alice"))

	_, err := f.client.CreateTodo(ctx, &pb.CreateTodoRequest{Title: "   "})
	s := requireCode(t, err, codes.InvalidArgument)
	assert.Equal(t, "todo title is required and cannot be empty", s.Message())

	_, err = f.client.GetTodo(ctx, &pb.GetTodoRequest{Id: 0})
	requireCode(t, err, codes.InvalidArgument)
}

func TestAuthenticationRequired(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))

	for name, ctx := range map[string]context.Context{
		"no token":      context.Background(),
		"garbage token": withToken("not.a.jwt"),
		"wrong scheme":  metadata.AppendToOutgoingContext(context.Background(), "authorization", "Basic abc"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.client.CreateTodo(ctx, &pb.CreateTodoRequest{Title: "x"})
			s := requireCode(t, err, codes.Unauthenticated)
			assert.Equal(t, UnauthenticatedMessage, s.Message())
		})
	}
}

func TestOwnershipIsolation(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))
	alice := withToken(f.login(t, "alice"))
	bob := withToken(f.login(t, "bob"))

	created, err := f.client.CreateTodo(alice, &pb.CreateTodoRequest{Title: "private"})
	require.NoError(t, err)

	_, err = f.client.GetTodo(bob, &pb.GetTodoRequest{Id: created.Todo.Id})
	requireCode(t, err, codes.NotFound)
	_, err = f.client.DeleteTodo(bob, &pb.DeleteTodoRequest{Id: created.Todo.Id})
	requireCode(t, err, codes.NotFound)

	page, err := f.client.GetAllTodos(bob, &pb.GetAllTodosRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestAuthenticationDisabled(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), nil)

	created, err := f.client.CreateTodo(context.Background(), &pb.CreateTodoRequest{Title: "anonymous"})
	require.NoError(t, err)
	assert.Zero(t, created.Todo.UserId)

	_, err = f.client.GetTodo(context.Background(), &pb.GetTodoRequest{Id: created.Todo.Id})
	assert.NoError(t, err)
}

type brokenRepository struct {
	todosvc.TodoRepository
}

func (brokenRepository) Find(context.Context, uint64, uint64) (todosvc.Todo, error) {
	return todosvc.Todo{}, fmt.Errorf("%w: relation \"todos\" does not exist", store.ErrQuery)
}

func TestStoreErrorsAreInternal(t *testing.T) {
	f := newFixture(t, brokenRepository{}, nil)

	_, err := f.client.GetTodo(context.Background(), &pb.GetTodoRequest{Id: 1})
	s := requireCode(t, err, codes.Internal)
	assert.Equal(t, "Failed to retrieve todo due to a server error. Please try again later.", s.Message())
	assert.NotContains(t, s.Message(), "relation")
}

func TestGRPCClient(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))
	token := f.login(t, "alice")

	users := usertransport.NewGRPCClient(f.conn, log.NewNopLogger())
	_, _, err := users.Login(context.Background(), "alice", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, usertransport.InvalidCredentialsMessage, err.Error())

	svc := NewGRPCClient(f.conn, log.NewNopLogger())
	ctx := context.WithValue(context.Background(), kitjwt.JWTTokenContextKey, token)

	todo, err := svc.CreateTodo(ctx, todosvc.Auth{}, "remote", "via client")
	require.NoError(t, err)
	assert.Equal(t, "remote", todo.Title)
	assert.False(t, todo.CreatedAt.IsZero())

	page, err := svc.GetAllTodos(ctx, todosvc.Auth{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, todo.ID, page.Todos[0].ID)

	_, err = svc.GetTodo(ctx, todosvc.Auth{}, todo.ID+100)
	assert.True(t, errors.Is(err, todosvc.ErrNotFound), "%v", err)

	_, err = svc.CreateTodo(ctx, todosvc.Auth{}, "", "")
	assert.True(t, errors.Is(err, todosvc.ErrInvalidArgument), "%v", err)

	_, err = svc.GetTodo(context.Background(), todosvc.Auth{}, todo.ID)
	assert.True(t, errors.Is(err, authsvc.ErrInvalidCredentials), "%v", err)

	deleted, err := svc.DeleteTodo(ctx, todosvc.Auth{}, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.ID, deleted.ID)
	assert.Equal(t, "remote", deleted.Title)
	assert.Equal(t, "via client", deleted.Description)
}

func TestDeleteEndpointOverGRPCClient(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))
	token := f.login(t, "alice")
	ctx := context.WithValue(context.Background(), kitjwt.JWTTokenContextKey, token)

	svc := NewGRPCClient(f.conn, log.NewNopLogger())
	todo, err := svc.CreateTodo(ctx, todosvc.Auth{}, "Buy milk", "")
	require.NoError(t, err)

	resp, err := todoendpoint.MakeDeleteTodoEndpoint(svc)(ctx, todoendpoint.DeleteTodoRequest{ID: todo.ID})
	require.NoError(t, err)
	deleted := resp.(todoendpoint.DeleteTodoResponse)
	require.NoError(t, deleted.Failed())
	assert.Equal(t, `Todo "Buy milk" deleted successfully!`, deleted.Message)
	assert.Equal(t, "Buy milk", deleted.Todo.Title)
}

func TestAccountConflictMessageSurvivesRelay(t *testing.T) {
	f := newFixture(t, todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))
	f.login(t, "alice")

	users := usertransport.NewGRPCClient(f.conn, log.NewNopLogger())
	_, err := users.Register(context.Background(), "alice", "secret1", "new@example.com")
	require.Error(t, err)

	s := errorStatus(err, "register")
	assert.Equal(t, codes.AlreadyExists, s.Code())
	assert.Equal(t, "The username 'alice' is already taken.", s.Message())
}
