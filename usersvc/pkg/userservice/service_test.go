package userservice

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/ichigozero/todogrpc/authsvc/pkg/authservice"
	"github.com/ichigozero/todogrpc/usersvc"
	"github.com/ichigozero/todogrpc/usersvc/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var secret = []byte("test-secret")

func init() {
	bcryptCost = bcrypt.MinCost
}

func newService(users usersvc.UserRepository) Service {
	return NewBasicService(users, authservice.NewTokenizer(secret, "todo-app-issuer", ""), log.NewNopLogger())
}

func TestRegister(t *testing.T) {
	users := inmem.NewUserRepository()
	svc := newService(users)

	u, err := svc.Register(context.Background(), "alice", "secret1", "alice@example.com")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice", u.Username)

	stored, err := users.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegisterValidation(t *testing.T) {
	svc := newService(inmem.NewUserRepository())

	for name, tc := range map[string]struct {
		username, password, email string
		message                   string
	}{
		"missing fields":   {"", "secret1", "a@example.com", "are required"},
		"bad email":        {"alice", "secret1", "not-an-email", "valid email"},
		"short password":   {"alice", "12345", "a@example.com", "at least 6"},
		"bad charset":      {"al ice", "secret1", "a@example.com", "letters, numbers, and underscores"},
		"short username":   {"al", "secret1", "a@example.com", "between 3 and 50"},
		"long username":    {strings.Repeat("a", 51), "secret1", "a@example.com", "between 3 and 50"},
		"unicode username": {"ålice", "secret1", "a@example.com", "letters, numbers, and underscores"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.username, tc.password, tc.email)
			require.ErrorIs(t, err, usersvc.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestRegisterConflicts(t *testing.T) {
	svc := newService(inmem.NewUserRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "secret2", "other@example.com")
	assert.ErrorIs(t, err, usersvc.ErrUsernameTaken)

	_, err = svc.Register(ctx, "alice2", "secret2", "alice@example.com")
	assert.ErrorIs(t, err, usersvc.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	users := inmem.NewUserRepository()
	svc := newService(users)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "secret1", "alice@example.com")
	require.NoError(t, err)

	u, token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	require.NotEmpty(t, token)

	id, err := authservice.NewHMACVerifier(secret).Verify(ctx, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, id.UserID)

	session, ok := users.Session(registered.ID)
	require.True(t, ok)
	assert.Equal(t, id.SessionID, session.SessionToken)
	assert.Equal(t, token, session.JWTToken)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newService(inmem.NewUserRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1", "alice@example.com")
	require.NoError(t, err)

	_, _, unknown := svc.Login(ctx, "bob", "secret1")
	_, _, wrong := svc.Login(ctx, "alice", "wrong-password")

	assert.ErrorIs(t, unknown, usersvc.ErrInvalidCredentials)
	assert.ErrorIs(t, wrong, usersvc.ErrInvalidCredentials)
	assert.Equal(t, unknown.Error(), wrong.Error())
}

func TestLoginUnknownUserPaysForComparison(t *testing.T) {
	var compared [][]byte
	defer func(orig func([]byte, []byte) error) { compareHashAndPassword = orig }(compareHashAndPassword)
	compareHashAndPassword = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	svc := newService(inmem.NewUserRepository())
	_, _, err := svc.Login(context.Background(), "nobody", "secret1")
	assert.ErrorIs(t, err, usersvc.ErrInvalidCredentials)

	require.Len(t, compared, 1)
	cost, err := bcrypt.Cost(compared[0])
	require.NoError(t, err)
	assert.Equal(t, bcryptCost, cost)
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := newService(inmem.NewUserRepository())

	_, _, err := svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, usersvc.ErrInvalidArgument)
}

func TestLoginWithoutTokenizer(t *testing.T) {
	svc := NewBasicService(inmem.NewUserRepository(), nil, log.NewNopLogger())

	_, _, err := svc.Login(context.Background(), "alice", "secret1")
	assert.ErrorIs(t, err, ErrLoginDisabled)
}

type failingSessions struct {
	*inmem.UserRepository
}

func (failingSessions) UpsertSession(context.Context, usersvc.Session) error {
	return errors.New("user_sessions does not exist")
}

func TestLoginSurvivesSessionFailure(t *testing.T) {
	var buf bytes.Buffer
	users := failingSessions{inmem.NewUserRepository()}
	svc := NewBasicService(users, authservice.NewTokenizer(secret, "", ""), log.NewLogfmtLogger(&buf))
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1", "alice@example.com")
	require.NoError(t, err)

	_, token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Contains(t, buf.String(), "could not store session")
}

func TestLoggingMiddlewareOmitsSecrets(t *testing.T) {
	var buf bytes.Buffer
	svc := New(inmem.NewUserRepository(), authservice.NewTokenizer(secret, "", ""), log.NewLogfmtLogger(&buf))
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "hunter22", "alice@example.com")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "alice", "hunter22")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "method=Register")
	assert.Contains(t, out, "method=Login")
	assert.NotContains(t, out, "hunter22")
	assert.NotContains(t, out, token)
}
