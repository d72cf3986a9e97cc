package authservice

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
	"github.com/ichigozero/todogrpc/authsvc"
)

type Middleware func(Verifier) Verifier

// LoggingMiddleware logs the outcome of every verification. The credential
// itself is never logged.
func LoggingMiddleware(logger log.Logger) Middleware {
	return func(next Verifier) Verifier {
		return loggingMiddleware{logger, next}
	}
}

type loggingMiddleware struct {
	logger log.Logger
	next   Verifier
}

func (mw loggingMiddleware) Verify(ctx context.Context, authorization string) (id authsvc.Identity, err error) {
	defer func() {
		mw.logger.Log("method", "Verify", "user_id", id.UserID, "session", id.SessionID, "err", err)
	}()
	return mw.next.Verify(ctx, authorization)
}

func InstrumentingMiddleware(counter metrics.Counter, latency metrics.Histogram) Middleware {
	return func(next Verifier) Verifier {
		return instrumentingMiddleware{counter, latency, next}
	}
}

type instrumentingMiddleware struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	next           Verifier
}

func (mw instrumentingMiddleware) Verify(ctx context.Context, authorization string) (id authsvc.Identity, err error) {
	defer func(begin time.Time) {
		result := "ok"
		if err != nil {
			result = "rejected"
		}
		mw.requestCount.With("method", "verify", "result", result).Add(1)
		mw.requestLatency.With("method", "verify", "result", result).Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mw.next.Verify(ctx, authorization)
}
