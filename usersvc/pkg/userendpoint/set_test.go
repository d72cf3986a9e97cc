package userendpoint

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/ichigozero/todogrpc/usersvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	user  usersvc.User
	token string
	err   error
}

func (s stubService) Register(_ context.Context, username, _, email string) (usersvc.User, error) {
	if s.err != nil {
		return usersvc.User{}, s.err
	}
	return usersvc.User{ID: s.user.ID, Username: username, Email: email}, nil
}

func (s stubService) Login(context.Context, string, string) (usersvc.User, string, error) {
	if s.err != nil {
		return usersvc.User{}, "", s.err
	}
	return s.user, s.token, nil
}

func TestRegisterEndpoint(t *testing.T) {
	e := MakeRegisterEndpoint(stubService{user: usersvc.User{ID: 9}})

	resp, err := e(context.Background(), RegisterRequest{Username: "alice", Password: "secret1", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, RegisterResponse{
		Success: true,
		Message: "Welcome alice, your account has been created!",
		UserID:  9,
	}, resp)
}

func TestLoginEndpoint(t *testing.T) {
	u := usersvc.User{ID: 9, Username: "alice", Email: "alice@example.com"}
	e := MakeLoginEndpoint(stubService{user: u, token: "tkn"})

	resp, err := e(context.Background(), LoginRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	login := resp.(LoginResponse)
	assert.True(t, login.Success)
	assert.Equal(t, "Welcome back, alice! Login successful.", login.Message)
	assert.Equal(t, "tkn", login.Token)
	assert.Equal(t, uint64(9), login.UserID)
	assert.Equal(t, u, login.User)
}

func TestEndpointsReportFailuresInBand(t *testing.T) {
	svc := stubService{err: usersvc.ErrInvalidCredentials}

	resp, err := MakeLoginEndpoint(svc)(context.Background(), LoginRequest{})
	require.NoError(t, err)
	assert.ErrorIs(t, resp.(LoginResponse).Failed(), usersvc.ErrInvalidCredentials)
	assert.False(t, resp.(LoginResponse).Success)

	resp, err = MakeRegisterEndpoint(svc)(context.Background(), RegisterRequest{})
	require.NoError(t, err)
	assert.ErrorIs(t, resp.(RegisterResponse).Failed(), usersvc.ErrInvalidCredentials)
}

func TestSetSatisfiesService(t *testing.T) {
	set := New(stubService{user: usersvc.User{ID: 3, Username: "bob"}, token: "tkn"}, log.NewNopLogger())

	u, err := set.Register(context.Background(), "bob", "secret1", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, usersvc.User{ID: 3, Username: "bob", Email: "bob@example.com"}, u)

	u, token, err := set.Login(context.Background(), "bob", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tkn", token)
	assert.Equal(t, uint64(3), u.ID)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)

	rejected := LoggingMiddleware(logger)(MakeLoginEndpoint(stubService{err: usersvc.ErrInvalidCredentials}))
	_, err := rejected(context.Background(), LoginRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), `rejected="invalid username or password"`)
	assert.NotContains(t, buf.String(), "hunter22")

	buf.Reset()
	broken := LoggingMiddleware(logger)(func(context.Context, interface{}) (interface{}, error) {
		return nil, errors.New("boom")
	})
	_, err = broken(context.Background(), nil)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "transport_error=boom")
}
