package todotransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/ichigozero/todogrpc/authsvc/pkg/authservice"
	todoinmem "github.com/ichigozero/todogrpc/todosvc/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gateway struct {
	server *httptest.Server
}

func newGateway(t *testing.T, health func(context.Context) error) *gateway {
	t.Helper()
	todos, users := newEndpoints(todoinmem.NewTodoRepository(), authservice.NewHMACVerifier(secret))
	server := httptest.NewServer(NewHTTPHandler(todos, users, health, log.NewNopLogger()))
	t.Cleanup(server.Close)
	return &gateway{server: server}
}

func (g *gateway) do(t *testing.T, method, path, token, body string) (int, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, g.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestHTTPGateway(t *testing.T) {
	g := newGateway(t, nil)

	code, body := g.do(t, "POST", "/register", "", `{"username":"alice","password":"secret1","email":"alice@example.com"}`)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, true, body["success"])

	code, body = g.do(t, "POST", "/login", "", `{"username":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, code, body)
	token := body["token"].(string)

	code, body = g.do(t, "POST", "/todos", token, `{"title":"Write report"}`)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, `Todo "Write report" created successfully!`, body["message"])

	code, body = g.do(t, "GET", "/todos/1", token, "")
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Write report", body["todo"].(map[string]interface{})["title"])

	code, body = g.do(t, "PUT", "/todos/1", token, `{"title":"Write final report","completed":false}`)
	require.Equal(t, http.StatusOK, code, body)

	code, body = g.do(t, "POST", "/todos/1/complete", token, "")
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, true, body["todo"].(map[string]interface{})["completed"])

	code, body = g.do(t, "GET", "/todos?page=1&limit=10", token, "")
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Found 1 todo(s). Showing page 1 of 1.", body["message"])

	code, _ = g.do(t, "DELETE", "/todos/1", token, "")
	require.Equal(t, http.StatusOK, code)

	code, body = g.do(t, "GET", "/todos/1", token, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

func TestHTTPErrorCodes(t *testing.T) {
	g := newGateway(t, nil)

	code, body := g.do(t, "POST", "/todos", "", `{"title":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, UnauthenticatedMessage, body["message"])

	code, _ = g.do(t, "POST", "/register", "", `not json`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = g.do(t, "POST", "/register", "", `{"username":"alice","password":"secret1","email":"alice@example.com"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = g.do(t, "POST", "/register", "", `{"username":"alice","password":"secret1","email":"alice@example.com"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, body = g.do(t, "POST", "/login", "", `{"username":"alice","password":"nope-nope"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Contains(t, body["message"], "Invalid username or password")
}

func TestHTTPInvalidParameters(t *testing.T) {
	g := newGateway(t, nil)
	g.do(t, "POST", "/register", "", `{"username":"alice","password":"secret1","email":"alice@example.com"}`)
	_, body := g.do(t, "POST", "/login", "", `{"username":"alice","password":"secret1"}`)
	token := body["token"].(string)

	code, _ := g.do(t, "GET", "/todos", token, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = g.do(t, "GET", "/todos/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealthz(t *testing.T) {
	code, body := newGateway(t, nil).do(t, "GET", "/healthz", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	failing := func(context.Context) error { return errors.New("pool exhausted") }
	code, body = newGateway(t, failing).do(t, "GET", "/healthz", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unavailable", body["status"])
}
