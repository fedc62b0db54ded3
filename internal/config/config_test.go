package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "REQUIRE_AUTH", "STATIC_PATH", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestNewFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.DBPath != "./data/shoppinglist.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
	if cfg.AuthEnabled() || cfg.RequireAuth {
		t.Error("expected auth disabled by default")
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr())
	}
}

func TestNewFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/lists.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("STATIC_PATH", "./static")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	want := Config{
		Port:        9090,
		DBPath:      "/tmp/lists.db",
		JWTSecret:   "secret",
		RequireAuth: true,
		StaticPath:  "./static",
		LogLevel:    "debug",
	}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestNewFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric port", map[string]string{"PORT": "http"}},
		{"port zero", map[string]string{"PORT": "0"}},
		{"port too large", map[string]string{"PORT": "70000"}},
		{"bad require auth", map[string]string{"REQUIRE_AUTH": "maybe"}},
		{"require auth without secret", map[string]string{"REQUIRE_AUTH": "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := NewFromEnv(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
