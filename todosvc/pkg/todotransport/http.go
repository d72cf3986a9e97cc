package todotransport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/transport"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/ichigozero/todogrpc/todosvc"
	"github.com/ichigozero/todogrpc/todosvc/pkg/todoendpoint"
	"github.com/ichigozero/todogrpc/usersvc"
	"github.com/ichigozero/todogrpc/usersvc/pkg/userendpoint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/codes"
)

// NewHTTPHandler exposes the same endpoints as the gRPC server as JSON over
// HTTP. health, when non-nil, backs GET /healthz.
func NewHTTPHandler(todos todoendpoint.Set, users userendpoint.Set, health func(context.Context) error, logger log.Logger) http.Handler {
	options := []httptransport.ServerOption{
		httptransport.ServerErrorEncoder(errorEncoder),
		httptransport.ServerErrorHandler(transport.NewLogErrorHandler(logger)),
		httptransport.ServerBefore(kitjwt.HTTPToContext()),
	}

	r := mux.NewRouter()

	r.Methods("POST").Path("/register").Handler(httptransport.NewServer(
		users.RegisterEndpoint,
		decodeHTTPRegisterRequest,
		encodeHTTPGenericResponse,
		options...,
	))
	r.Methods("POST").Path("/login").Handler(httptransport.NewServer(
		users.LoginEndpoint,
		decodeHTTPLoginRequest,
		encodeHTTPGenericResponse,
		options...,
	))
	r.Methods("POST").Path("/todos").Handler(httptransport.NewServer(
		todos.CreateTodoEndpoint,
		decodeHTTPCreateTodoRequest,
		encodeHTTPGenericResponse,
		options...,
	))
	r.Methods("GET").Path("/todos").Handler(httptransport.NewServer(
		todos.GetAllTodosEndpoint,
		decodeHTTPGetAllTodosRequest,
		encodeHTTPGenericResponse,
		options...,
	))
	r.Methods("GET").Path("/todos/{id}").Handler(httptransport.NewServer(
		todos.GetTodoEndpoint,
		decodeHTTPGetTodoRequest,
		encodeHTTPGenericResponse,
		options...,
	))
	r.Methods("PUT").Path("/todos/{id}").Handler(httptransport.NewServer(
		todos.UpdateTodoEndpoint,
		decodeHTTPUpdateTodoRequest,
		encodeHTTPGenericResponse,
		options...,
	))
	r.Methods("DELETE").Path("/todos/{id}").Handler(httptransport.NewServer(
		todos.DeleteTodoEndpoint,
		decodeHTTPDeleteTodoRequest,
		encodeHTTPGenericResponse,
		options...,
	))
	r.Methods("POST").Path("/todos/{id}/complete").Handler(httptransport.NewServer(
		todos.CompleteTodoEndpoint,
		decodeHTTPCompleteTodoRequest,
		encodeHTTPGenericResponse,
		options...,
	))
	r.Methods("GET").Path("/metrics").Handler(promhttp.Handler())
	r.Methods("GET").Path("/healthz").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if health != nil {
			if err := health(req.Context()); err != nil {
				logger.Log("during", "healthz", "err", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

func errorEncoder(_ context.Context, err error, w http.ResponseWriter) {
	s := errorStatus(err, "process the request")
	writeJSON(w, err2code(s.Code()), errorWrapper{Success: false, Message: s.Message()})
}

type errorWrapper struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func err2code(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unimplemented:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func decodeHTTPRegisterRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req userendpoint.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: request body must be a JSON object", usersvc.ErrInvalidArgument)
	}
	return req, nil
}

func decodeHTTPLoginRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req userendpoint.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: request body must be a JSON object", usersvc.ErrInvalidArgument)
	}
	return req, nil
}

func decodeHTTPCreateTodoRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req todoendpoint.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: request body must be a JSON object", todosvc.ErrInvalidArgument)
	}
	return req, nil
}

func decodeHTTPGetAllTodosRequest(_ context.Context, r *http.Request) (interface{}, error) {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		return nil, fmt.Errorf("%w: page and limit must be positive integers", todosvc.ErrInvalidArgument)
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil {
		return nil, fmt.Errorf("%w: page and limit must be positive integers", todosvc.ErrInvalidArgument)
	}
	return todoendpoint.GetAllTodosRequest{Page: page, Limit: limit}, nil
}

func decodeHTTPGetTodoRequest(_ context.Context, r *http.Request) (interface{}, error) {
	id, err := todoID(r)
	if err != nil {
		return nil, err
	}
	return todoendpoint.GetTodoRequest{ID: id}, nil
}

func decodeHTTPUpdateTodoRequest(_ context.Context, r *http.Request) (interface{}, error) {
	id, err := todoID(r)
	if err != nil {
		return nil, err
	}

	var req todoendpoint.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: request body must be a JSON object", todosvc.ErrInvalidArgument)
	}
	req.ID = id

	return req, nil
}

func decodeHTTPDeleteTodoRequest(_ context.Context, r *http.Request) (interface{}, error) {
	id, err := todoID(r)
	if err != nil {
		return nil, err
	}
	return todoendpoint.DeleteTodoRequest{ID: id}, nil
}

func decodeHTTPCompleteTodoRequest(_ context.Context, r *http.Request) (interface{}, error) {
	id, err := todoID(r)
	if err != nil {
		return nil, err
	}
	return todoendpoint.CompleteTodoRequest{ID: id}, nil
}

func todoID(r *http.Request) (uint64, error) {
	raw, ok := mux.Vars(r)["id"]
	if !ok {
		return 0, ErrBadRouting
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: valid todo ID is required", todosvc.ErrInvalidArgument)
	}
	return id, nil
}

// ErrBadRouting is returned when an expected path variable is missing.
// It always indicates programmer error.
var ErrBadRouting = errors.New("inconsistent mapping between route and handler (programmer error)")

func encodeHTTPGenericResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	if f, ok := response.(endpoint.Failer); ok && f.Failed() != nil {
		errorEncoder(ctx, f.Failed(), w)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}
