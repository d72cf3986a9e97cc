package todoendpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
)

// InstrumentingMiddleware observes request duration labelled by success.
func InstrumentingMiddleware(duration metrics.Histogram) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			defer func(begin time.Time) {
				duration.With("success", fmt.Sprint(err == nil && !failed(response))).Observe(time.Since(begin).Seconds())
			}(time.Now())
			return next(ctx, request)
		}
	}
}

// LoggingMiddleware logs the transport error, the business error and the
// duration of each call.
func LoggingMiddleware(logger log.Logger) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			defer func(begin time.Time) {
				var businessErr error
				if f, ok := response.(endpoint.Failer); ok {
					businessErr = f.Failed()
				}
				logger.Log("transport_error", err, "err", businessErr, "took", time.Since(begin))
			}(time.Now())
			return next(ctx, request)
		}
	}
}

func failed(response interface{}) bool {
	f, ok := response.(endpoint.Failer)
	return ok && f.Failed() != nil
}
