package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// to logger, or to slog.Default when logger is nil.
// Connect errors are logged at warn level with their code; any other error
// is unexpected and logged at error level.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			log := logger
			if log == nil {
				log = slog.Default()
			}

			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"user_id", GetUserID(ctx), // empty before auth
				"duration_ms", time.Since(start).Milliseconds(),
			}

			var connectErr *connect.Error
			switch {
			case err == nil:
				log.Info("RPC ok", attrs...)
			case errors.As(err, &connectErr):
				log.Warn("RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
			default:
				log.Error("RPC error", append(attrs, "error", err)...)
			}

			return resp, err
		}
	}
}

// codeOf returns the Connect code name for err, "ok" for nil.
func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}
