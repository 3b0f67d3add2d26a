// Package testutils holds helpers shared by integration tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/nfrund/scalemyorg/internal/config"
)

// ConfigForTests loads .env.test from the project root, when one exists, and
// returns the resulting configuration. Variables are set with t.Setenv so they
// are restored after the test.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	// Find project root by looking for go.mod to reliably locate .env.test
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err == nil {
		for key, value := range env {
			if os.Getenv(key) == "" {
				t.Setenv(key, value)
			}
		}
	}

	cfg := config.FromEnv()
	if cfg.DBQueryTimeout <= 0 {
		cfg.DBQueryTimeout = 5 * time.Second
	}
	return cfg
}

// RequireSurreal skips the test unless a SurrealDB instance is configured.
func RequireSurreal(t *testing.T) *config.Config {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping SurrealDB integration test in short mode")
	}
	cfg := ConfigForTests(t)
	if cfg.GetDBURL() == "" {
		t.Skip("SURREAL_URL not set, skipping SurrealDB integration test")
	}
	return cfg
}

// RequireRedis skips the test unless REDIS_ADDR is set explicitly.
func RequireRedis(t *testing.T) *config.Config {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Redis integration test in short mode")
	}
	cfg := ConfigForTests(t)
	if os.Getenv("REDIS_ADDR") == "" {
		t.Skip("REDIS_ADDR not set, skipping Redis integration test")
	}
	return cfg
}
