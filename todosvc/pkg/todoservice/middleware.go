package todoservice

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
	"github.com/ichigozero/todogrpc/todosvc"
)

type Middleware func(Service) Service

func LoggingMiddleware(logger log.Logger) Middleware {
	return func(next Service) Service {
		return loggingMiddleware{logger, next}
	}
}

type loggingMiddleware struct {
	logger log.Logger
	next   Service
}

func (mw loggingMiddleware) CreateTodo(ctx context.Context, a todosvc.Auth, title, description string) (t todosvc.Todo, err error) {
	defer func() {
		mw.logger.Log(
			"method", "CreateTodo",
			"session", a.SessionID,
			"user_id", a.UserID,
			"title", title,
			"id", t.ID,
			"err", err,
		)
	}()
	return mw.next.CreateTodo(ctx, a, title, description)
}

func (mw loggingMiddleware) GetTodo(ctx context.Context, a todosvc.Auth, id uint64) (t todosvc.Todo, err error) {
	defer func() {
		mw.logger.Log(
			"method", "GetTodo",
			"session", a.SessionID,
			"user_id", a.UserID,
			"id", id,
			"err", err,
		)
	}()
	return mw.next.GetTodo(ctx, a, id)
}

func (mw loggingMiddleware) GetAllTodos(ctx context.Context, a todosvc.Auth, page, limit int) (p todosvc.Page, err error) {
	defer func() {
		mw.logger.Log(
			"method", "GetAllTodos",
			"session", a.SessionID,
			"user_id", a.UserID,
			"page", page,
			"limit", limit,
			"total", p.Total,
			"err", err,
		)
	}()
	return mw.next.GetAllTodos(ctx, a, page, limit)
}

func (mw loggingMiddleware) UpdateTodo(ctx context.Context, a todosvc.Auth, todo todosvc.Todo) (t todosvc.Todo, err error) {
	defer func() {
		mw.logger.Log(
			"method", "UpdateTodo",
			"session", a.SessionID,
			"user_id", a.UserID,
			"id", todo.ID,
			"title", todo.Title,
			"completed", todo.Completed,
			"err", err,
		)
	}()
	return mw.next.UpdateTodo(ctx, a, todo)
}

func (mw loggingMiddleware) DeleteTodo(ctx context.Context, a todosvc.Auth, id uint64) (t todosvc.Todo, err error) {
	defer func() {
		mw.logger.Log(
			"method", "DeleteTodo",
			"session", a.SessionID,
			"user_id", a.UserID,
			"id", id,
			"err", err,
		)
	}()
	return mw.next.DeleteTodo(ctx, a, id)
}

func (mw loggingMiddleware) CompleteTodo(ctx context.Context, a todosvc.Auth, id uint64) (t todosvc.Todo, err error) {
	defer func() {
		mw.logger.Log(
			"method", "CompleteTodo",
			"session", a.SessionID,
			"user_id", a.UserID,
			"id", id,
			"err", err,
		)
	}()
	return mw.next.CompleteTodo(ctx, a, id)
}

func InstrumentingMiddleware(counter metrics.Counter, latency metrics.Histogram) Middleware {
	return func(next Service) Service {
		return instrumentingMiddleware{counter, latency, next}
	}
}

type instrumentingMiddleware struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	next           Service
}

func (mw instrumentingMiddleware) observe(method string, begin time.Time, err error) {
	lvs := []string{"method", method, "error", boolString(err != nil)}
	mw.requestCount.With(lvs...).Add(1)
	mw.requestLatency.With(lvs...).Observe(time.Since(begin).Seconds())
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (mw instrumentingMiddleware) CreateTodo(ctx context.Context, a todosvc.Auth, title, description string) (t todosvc.Todo, err error) {
	defer func(begin time.Time) { mw.observe("create_todo", begin, err) }(time.Now())
	return mw.next.CreateTodo(ctx, a, title, description)
}

func (mw instrumentingMiddleware) GetTodo(ctx context.Context, a todosvc.Auth, id uint64) (t todosvc.Todo, err error) {
	defer func(begin time.Time) { mw.observe("get_todo", begin, err) }(time.Now())
	return mw.next.GetTodo(ctx, a, id)
}

func (mw instrumentingMiddleware) GetAllTodos(ctx context.Context, a todosvc.Auth, page, limit int) (p todosvc.Page, err error) {
	defer func(begin time.Time) { mw.observe("get_all_todos", begin, err) }(time.Now())
	return mw.next.GetAllTodos(ctx, a, page, limit)
}

func (mw instrumentingMiddleware) UpdateTodo(ctx context.Context, a todosvc.Auth, todo todosvc.Todo) (t todosvc.Todo, err error) {
	defer func(begin time.Time) { mw.observe("update_todo", begin, err) }(time.Now())
	return mw.next.UpdateTodo(ctx, a, todo)
}

func (mw instrumentingMiddleware) DeleteTodo(ctx context.Context, a todosvc.Auth, id uint64) (t todosvc.Todo, err error) {
	defer func(begin time.Time) { mw.observe("delete_todo", begin, err) }(time.Now())
	return mw.next.DeleteTodo(ctx, a, id)
}

func (mw instrumentingMiddleware) CompleteTodo(ctx context.Context, a todosvc.Auth, id uint64) (t todosvc.Todo, err error) {
	defer func(begin time.Time) { mw.observe("complete_todo", begin, err) }(time.Now())
	return mw.next.CompleteTodo(ctx, a, id)
}
