package todoservice

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
	"github.com/ichigozero/todogrpc/todosvc"
	"github.com/ichigozero/todogrpc/todosvc/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = todosvc.Auth{SessionID: "s-alice", UserID: 1}
	bob   = todosvc.Auth{SessionID: "s-bob", UserID: 2}
)

func newService() Service {
	return NewBasicService(inmem.NewTodoRepository())
}

func TestCreateTodo(t *testing.T) {
	svc := newService()

	todo, err := svc.CreateTodo(context.Background(), alice, "  Buy milk  ", "2 litres")
	require.NoError(t, err)
	assert.NotZero(t, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "2 litres", todo.Description)
	assert.False(t, todo.Completed)
	assert.Equal(t, alice.UserID, todo.UserID)
	assert.False(t, todo.CreatedAt.IsZero())
}

func TestCreateTodoValidation(t *testing.T) {
	svc := newService()

	for name, tc := range map[string]struct {
		title, description string
	}{
		"empty title":      {"", ""},
		"blank title":      {" \t\n ", ""},
		"long title":       {strings.Repeat("a", todosvc.MaxTitleLength+1), ""},
		"long description": {"ok", strings.Repeat("d", todosvc.MaxDescriptionLength+1)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateTodo(context.Background(), alice, tc.title, tc.description)
			assert.ErrorIs(t, err, todosvc.ErrInvalidArgument)
		})
	}
}

func TestTitleLengthCountsCharacters(t *testing.T) {
	svc := newService()

	todo, err := svc.CreateTodo(context.Background(), alice, strings.Repeat("é", todosvc.MaxTitleLength), "")
	require.NoError(t, err)
	assert.Equal(t, todosvc.MaxTitleLength, len([]rune(todo.Title)))
}

func TestZeroIDIsInvalid(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.GetTodo(ctx, alice, 0)
	assert.ErrorIs(t, err, todosvc.ErrInvalidArgument)
	_, err = svc.UpdateTodo(ctx, alice, todosvc.Todo{Title: "x"})
	assert.ErrorIs(t, err, todosvc.ErrInvalidArgument)
	_, err = svc.DeleteTodo(ctx, alice, 0)
	assert.ErrorIs(t, err, todosvc.ErrInvalidArgument)
	_, err = svc.CompleteTodo(ctx, alice, 0)
	assert.ErrorIs(t, err, todosvc.ErrInvalidArgument)
}

func TestOwnershipIsolation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, alice, "private", "")
	require.NoError(t, err)

	_, err = svc.GetTodo(ctx, bob, todo.ID)
	assert.ErrorIs(t, err, todosvc.ErrNotFound)
	_, err = svc.UpdateTodo(ctx, bob, todosvc.Todo{ID: todo.ID, Title: "stolen"})
	assert.ErrorIs(t, err, todosvc.ErrNotFound)
	_, err = svc.CompleteTodo(ctx, bob, todo.ID)
	assert.ErrorIs(t, err, todosvc.ErrNotFound)
	_, err = svc.DeleteTodo(ctx, bob, todo.ID)
	assert.ErrorIs(t, err, todosvc.ErrNotFound)

	page, err := svc.GetAllTodos(ctx, bob, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Todos)

	got, err := svc.GetTodo(ctx, alice, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)
}

func TestUpdateTodo(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, alice, "draft", "")
	require.NoError(t, err)

	updated, err := svc.UpdateTodo(ctx, alice, todosvc.Todo{ID: todo.ID, Title: " final ", Description: "done", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "done", updated.Description)
	assert.True(t, updated.Completed)
	assert.False(t, updated.UpdatedAt.Before(todo.UpdatedAt))

	_, err = svc.UpdateTodo(ctx, alice, todosvc.Todo{ID: todo.ID, Title: "   "})
	assert.ErrorIs(t, err, todosvc.ErrInvalidArgument)
}

func TestCompleteTodoIsIdempotent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, alice, "once", "")
	require.NoError(t, err)

	first, err := svc.CompleteTodo(ctx, alice, todo.ID)
	require.NoError(t, err)
	second, err := svc.CompleteTodo(ctx, alice, todo.ID)
	require.NoError(t, err)

	assert.True(t, first.Completed)
	assert.True(t, second.Completed)
	assert.Equal(t, first.Title, second.Title)
}

func TestDeleteTodo(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, alice, "temporary", "")
	require.NoError(t, err)

	deleted, err := svc.DeleteTodo(ctx, alice, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "temporary", deleted.Title)

	_, err = svc.GetTodo(ctx, alice, todo.ID)
	assert.ErrorIs(t, err, todosvc.ErrNotFound)
	_, err = svc.DeleteTodo(ctx, alice, todo.ID)
	assert.ErrorIs(t, err, todosvc.ErrNotFound)
}

func TestGetAllTodosPagination(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.CreateTodo(ctx, alice, "todo", "")
		require.NoError(t, err)
	}

	page, err := svc.GetAllTodos(ctx, alice, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Todos, 10)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages())
	assert.Equal(t, uint64(25), page.Todos[0].ID, "newest first")

	page, err = svc.GetAllTodos(ctx, alice, 3, 10)
	require.NoError(t, err)
	assert.Len(t, page.Todos, 5)
	assert.Equal(t, 3, page.Page)

	page, err = svc.GetAllTodos(ctx, alice, 9, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Todos)
	assert.Empty(t, page.Todos)
	assert.Equal(t, int64(25), page.Total)

	_, err = svc.GetAllTodos(ctx, alice, 1, todosvc.MaxPageLimit)
	assert.NoError(t, err)
}

func TestGetAllTodosValidation(t *testing.T) {
	svc := newService()

	for _, tc := range []struct{ page, limit int }{
		{0, 10},
		{1, 0},
		{-1, 10},
		{1, todosvc.MaxPageLimit + 1},
	} {
		_, err := svc.GetAllTodos(context.Background(), alice, tc.page, tc.limit)
		assert.ErrorIs(t, err, todosvc.ErrInvalidArgument, "page=%d limit=%d", tc.page, tc.limit)
	}
}

func TestAnonymousCallerSeesEverything(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreateTodo(ctx, alice, "a", "")
	require.NoError(t, err)
	_, err = svc.CreateTodo(ctx, bob, "b", "")
	require.NoError(t, err)

	page, err := svc.GetAllTodos(ctx, todosvc.Auth{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}

type failingRepository struct {
	todosvc.TodoRepository
	err error
}

func (r failingRepository) Find(context.Context, uint64, uint64) (todosvc.Todo, error) {
	return todosvc.Todo{}, r.err
}

func (r failingRepository) FindPage(context.Context, uint64, int, int) ([]todosvc.Todo, int64, error) {
	return nil, 0, r.err
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	svc := NewBasicService(failingRepository{err: boom})

	_, err := svc.GetTodo(context.Background(), alice, 1)
	assert.ErrorIs(t, err, boom)
	_, err = svc.GetAllTodos(context.Background(), alice, 1, 10)
	assert.ErrorIs(t, err, boom)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	svc := New(inmem.NewTodoRepository(), log.NewLogfmtLogger(&buf))

	_, err := svc.CreateTodo(context.Background(), alice, "logged", "")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "method=CreateTodo")
	assert.Contains(t, out, "session=s-alice")
	assert.Contains(t, out, "user_id=1")
	assert.Contains(t, out, "err=null")
}

type recordingCounter struct {
	labels *[][]string
	lvs    []string
}

func (c recordingCounter) With(labelValues ...string) metrics.Counter {
	return recordingCounter{labels: c.labels, lvs: append(append([]string{}, c.lvs...), labelValues...)}
}

func (c recordingCounter) Add(float64) { *c.labels = append(*c.labels, c.lvs) }

type discardHistogram struct{}

func (h discardHistogram) With(...string) metrics.Histogram { return h }
func (discardHistogram) Observe(float64)                   {}

func TestInstrumentingMiddleware(t *testing.T) {
	var labels [][]string
	svc := InstrumentingMiddleware(recordingCounter{labels: &labels}, discardHistogram{})(newService())

	_, err := svc.CreateTodo(context.Background(), alice, "counted", "")
	require.NoError(t, err)
	_, err = svc.GetTodo(context.Background(), alice, 0)
	require.Error(t, err)

	assert.Equal(t, [][]string{
		{"method", "create_todo", "error", "false"},
		{"method", "get_todo", "error", "true"},
	}, labels)
}
