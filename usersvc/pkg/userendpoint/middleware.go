package userendpoint

import (
	"context"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// LoggingMiddleware logs each account call. Rejected registrations and
// logins are logged at info; transport failures at error.
func LoggingMiddleware(logger log.Logger) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			defer func(begin time.Time) {
				took := time.Since(begin)
				if err != nil {
					level.Error(logger).Log("transport_error", err, "took", took)
					return
				}
				if f, ok := response.(endpoint.Failer); ok && f.Failed() != nil {
					level.Info(logger).Log("rejected", f.Failed(), "took", took)
					return
				}
				level.Debug(logger).Log("took", took)
			}(time.Now())
			return next(ctx, request)
		}
	}
}
