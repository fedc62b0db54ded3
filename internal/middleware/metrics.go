package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/shopping-busket/shoppinglist/internal/metrics"
)

// MetricsInterceptor returns a Connect interceptor that records the duration
// and result code of every RPC.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			m.ObserveRPC(req.Spec().Procedure, codeOf(err), start)
			return resp, err
		}
	}
}
