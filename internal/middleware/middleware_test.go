package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/shopping-busket/shoppinglist/internal/auth"
	"github.com/shopping-busket/shoppinglist/internal/metrics"
)

type emptyMsg struct{}

// captureUser is a UnaryFunc that records the user id it was called with.
func captureUser(got *string) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		*got = GetUserID(ctx)
		return connect.NewResponse(&emptyMsg{}), nil
	}
}

func requestWithAuth(header string) *connect.Request[emptyMsg] {
	req := connect.NewRequest(&emptyMsg{})
	if header != "" {
		req.Header().Set("Authorization", header)
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate("user-1", "user@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var userID string
	handler := RequireAuth(jwtManager)(captureUser(&userID))

	if _, err := handler(context.Background(), requestWithAuth("Bearer "+token)); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("user id = %q, want user-1", userID)
	}

	for _, header := range []string{"", "Bearer bogus", "Basic abc"} {
		_, err := handler(context.Background(), requestWithAuth(header))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("header %q: code = %v, want unauthenticated", header, connect.CodeOf(err))
		}
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate("user-1", "user@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var userID string
	handler := OptionalAuth(jwtManager)(captureUser(&userID))

	if _, err := handler(context.Background(), requestWithAuth("Bearer "+token)); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("user id = %q, want user-1", userID)
	}

	userID = "unset"
	if _, err := handler(context.Background(), requestWithAuth("")); err != nil {
		t.Fatalf("anonymous request rejected: %v", err)
	}
	if userID != "" {
		t.Errorf("user id = %q, want anonymous", userID)
	}

	for _, header := range []string{"Bearer bogus", "Basic abc"} {
		userID = "unset"
		_, err := handler(context.Background(), requestWithAuth(header))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("header %q: code = %v, want unauthenticated", header, connect.CodeOf(err))
		}
		if userID != "unset" {
			t.Errorf("header %q: handler was called", header)
		}
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	failing := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("list missing"))
	}

	_, err := LoggingInterceptor(logger)(failing)(context.Background(), requestWithAuth(""))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("code = %v, want not_found", connect.CodeOf(err))
	}

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "not_found") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	var userID string

	handler := MetricsInterceptor(m)(captureUser(&userID))
	if _, err := handler(context.Background(), requestWithAuth("")); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	if got := testutil.CollectAndCount(m.RPCDuration); got != 1 {
		t.Errorf("rpc duration series = %d, want 1", got)
	}
}

func TestCodeOf(t *testing.T) {
	if got := codeOf(nil); got != "ok" {
		t.Errorf("codeOf(nil) = %q, want ok", got)
	}
	if got := codeOf(connect.NewError(connect.CodePermissionDenied, errors.New("x"))); got != "permission_denied" {
		t.Errorf("codeOf = %q, want permission_denied", got)
	}
}
