package userservice

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
	"github.com/ichigozero/todogrpc/usersvc"
)

type Middleware func(Service) Service

// LoggingMiddleware logs every call. Passwords and tokens are never logged.
func LoggingMiddleware(logger log.Logger) Middleware {
	return func(next Service) Service {
		return loggingMiddleware{logger, next}
	}
}

type loggingMiddleware struct {
	logger log.Logger
	next   Service
}

func (mw loggingMiddleware) Register(ctx context.Context, username, password, email string) (u usersvc.User, err error) {
	defer func() {
		mw.logger.Log("method", "Register", "username", username, "email", email, "id", u.ID, "err", err)
	}()
	return mw.next.Register(ctx, username, password, email)
}

func (mw loggingMiddleware) Login(ctx context.Context, username, password string) (u usersvc.User, token string, err error) {
	defer func() {
		mw.logger.Log("method", "Login", "username", username, "id", u.ID, "err", err)
	}()
	return mw.next.Login(ctx, username, password)
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

func (mw instrumentingMiddleware) Register(ctx context.Context, username, password, email string) (u usersvc.User, err error) {
	defer func(begin time.Time) {
		lvs := []string{"method", "register", "error", boolString(err != nil)}
		mw.requestCount.With(lvs...).Add(1)
		mw.requestLatency.With(lvs...).Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mw.next.Register(ctx, username, password, email)
}

func (mw instrumentingMiddleware) Login(ctx context.Context, username, password string) (u usersvc.User, token string, err error) {
	defer func(begin time.Time) {
		lvs := []string{"method", "login", "error", boolString(err != nil)}
		mw.requestCount.With(lvs...).Add(1)
		mw.requestLatency.With(lvs...).Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mw.next.Login(ctx, username, password)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
