package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/shopping-busket/shoppinglist/internal/auth"
	"github.com/shopping-busket/shoppinglist/internal/config"
	"github.com/shopping-busket/shoppinglist/internal/metrics"
	"github.com/shopping-busket/shoppinglist/internal/middleware"
	"github.com/shopping-busket/shoppinglist/internal/service"
	"github.com/shopping-busket/shoppinglist/internal/storage/sqlite"
	"github.com/shopping-busket/shoppinglist/pkg/api/apiconnect"
	"github.com/shopping-busket/shoppinglist/pkg/logging"
)

const apiPrefix = "/shoppinglist.v1."

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	// Initialize SQLite storage (creates the parent directory)
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Auth runs first so the other interceptors see the caller.
	var interceptors []connect.Interceptor
	if cfg.AuthEnabled() {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, 24*time.Hour)
		if cfg.RequireAuth {
			interceptors = append(interceptors, middleware.RequireAuth(jwtManager))
		} else {
			interceptors = append(interceptors, middleware.OptionalAuth(jwtManager))
		}
		slog.Info("Authentication enabled", "required", cfg.RequireAuth)
	}
	interceptors = append(interceptors,
		middleware.LoggingInterceptor(nil),
		middleware.MetricsInterceptor(m),
	)

	mux := http.NewServeMux()

	// Register Connect service
	svc := service.NewShoppingListService(store,
		service.WithMetrics(m),
		service.WithAuthentication(cfg.AuthEnabled()),
	)
	path, handler := apiconnect.NewShoppingListServiceHandler(svc, connect.WithInterceptors(interceptors...))
	mux.Handle(path, handler)

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if cfg.StaticPath != "" {
		staticHandler, err := newStaticHandler(cfg.StaticPath)
		if err != nil {
			slog.Error("Failed to resolve static path", "error", err)
			os.Exit(1)
		}
		mux.Handle("/", staticHandler)
	}

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(loggedHandler, &http2.Server{})

	addr := cfg.Addr()
	slog.Info("Connect server starting", "address", addr, "url", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// newStaticHandler serves the frontend from dir, falling back to index.html
// for unknown paths.
func newStaticHandler(dir string) (http.Handler, error) {
	staticDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	slog.Info("Serving static files", "path", staticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unknown RPCs must not fall through to the frontend
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}), nil
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
