package main

import (
	"context"
	"testing"
	"time"

	stdjwt "github.com/dgrijalva/jwt-go"
	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifierModes(t *testing.T) {
	logger := log.NewNopLogger()

	v, err := newVerifier(resolveAuthMode("", ""), "", "", "todo-app-issuer", "", false, logger)
	require.NoError(t, err)
	assert.Nil(t, v, "no secret means auth is off")

	_, err = newVerifier("hmac", "", "", "todo-app-issuer", "", false, logger)
	assert.Error(t, err)

	_, err = newVerifier("rsa", "", "", "todo-app-issuer", "", false, logger)
	assert.Error(t, err)

	_, err = newVerifier("rsa", "", "/does/not/exist.pem", "todo-app-issuer", "", false, logger)
	assert.Error(t, err)

	_, err = newVerifier("kerberos", "s3cret", "", "todo-app-issuer", "", false, logger)
	assert.Error(t, err)

	// Metrics register globally, so the instrumented path is built once.
	v, err = newVerifier(resolveAuthMode("", "s3cret"), "s3cret", "", "todo-app-issuer", "", false, logger)
	require.NoError(t, err)
	require.NotNil(t, v)

	token, err := stdjwt.NewWithClaims(stdjwt.SigningMethodHS256, stdjwt.MapClaims{
		"userId": 5,
		"iss":    "todo-app-issuer",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	id, err := v.Verify(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), id.UserID)
}

func TestTokenizerFollowsAuthMode(t *testing.T) {
	logger := log.NewNopLogger()

	assert.Equal(t, "hmac", resolveAuthMode("", "s3cret"))
	assert.Equal(t, "none", resolveAuthMode("", ""))
	assert.Equal(t, "rsa", resolveAuthMode("rsa", "s3cret"))

	assert.NotNil(t, newTokenizer("hmac", "s3cret", "todo-app-issuer", "", logger))
	assert.Nil(t, newTokenizer("none", "", "todo-app-issuer", "", logger))
	assert.Nil(t, newTokenizer("rsa", "s3cret", "todo-app-issuer", "", logger), "HS256 tokens would not verify under RS256")
}

func TestEnvParsing(t *testing.T) {
	t.Setenv("TODO_TEST_INT", "42")
	t.Setenv("TODO_TEST_BAD_INT", "forty-two")
	t.Setenv("TODO_TEST_BOOL", "true")
	t.Setenv("TODO_TEST_DURATION", "1500ms")
	t.Setenv("TODO_TEST_STRING", "")

	assert.Equal(t, 42, getEnvAsInt("TODO_TEST_INT", 1))
	assert.Equal(t, 1, getEnvAsInt("TODO_TEST_BAD_INT", 1))
	assert.Equal(t, 7, getEnvAsInt("TODO_TEST_UNSET", 7))
	assert.True(t, getEnvAsBool("TODO_TEST_BOOL", false))
	assert.Equal(t, 1500*time.Millisecond, getEnvAsDuration("TODO_TEST_DURATION", time.Second))
	assert.Equal(t, "", getEnv("TODO_TEST_STRING", "fallback"), "set but empty wins")
	assert.Equal(t, "fallback", getEnv("TODO_TEST_UNSET", "fallback"))
}
