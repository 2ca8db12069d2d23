package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("FOO", "")
	if got := GetEnv("FOO", "bar"); got != "bar" {
		t.Fatalf("expected bar, got %s", got)
	}
	t.Setenv("FOO", "baz")
	if got := GetEnv("FOO", "bar"); got != "baz" {
		t.Fatalf("expected baz, got %s", got)
	}
	t.Setenv("FOO", "   ")
	if got := GetEnv("FOO", "bar"); got != "bar" {
		t.Fatalf("expected blank value to fall back, got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("NUM", "")
	if got := GetEnvInt("NUM", 42); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	t.Setenv("NUM", "100")
	if got := GetEnvInt("NUM", 42); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	t.Setenv("NUM", "notint")
	if got := GetEnvInt("NUM", 7); got != 7 {
		t.Fatalf("expected 7 on parse error, got %d", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG", "")
	if got := GetEnvBool("FLAG", true); got != true {
		t.Fatalf("expected true default, got %v", got)
	}
	t.Setenv("FLAG", "false")
	if got := GetEnvBool("FLAG", true); got != false {
		t.Fatalf("expected false, got %v", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("WAIT", "")
	if got := GetEnvDuration("WAIT", time.Second); got != time.Second {
		t.Fatalf("expected default, got %s", got)
	}
	t.Setenv("WAIT", "250ms")
	if got := GetEnvDuration("WAIT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", got)
	}
	t.Setenv("WAIT", "soon")
	if got := GetEnvDuration("WAIT", time.Second); got != time.Second {
		t.Fatalf("expected default on parse error, got %s", got)
	}
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	if GetLogLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level")
	}
	t.Setenv("LOG_LEVEL", "WARN")
	if GetLogLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level")
	}
	t.Setenv("LOG_LEVEL", "error")
	if GetLogLevel() != logrus.ErrorLevel {
		t.Fatalf("expected error level")
	}
	t.Setenv("LOG_LEVEL", "")
	if GetLogLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level by default")
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	if err := os.WriteFile(file, []byte("MEMBERHUB_TEST_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MEMBERHUB_TEST_KEY", "")

	loaded := LoadEnvFiles(logrus.New(), filepath.Join(dir, "missing.env"), file)
	if len(loaded) != 1 || loaded[0] != file {
		t.Fatalf("expected only %s to load, got %v", file, loaded)
	}
	if got := os.Getenv("MEMBERHUB_TEST_KEY"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
}

func TestLoadServiceDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_DRIVER", "GRAPHQL_MAX_DEPTH", "ALLOW_SELF_SUBSCRIPTION", "GIN_MODE", "GRAPHQL_PLAYGROUND_ENABLED"} {
		t.Setenv(key, "")
	}
	cfg := LoadService()
	if cfg.Port != "18090" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.DatabaseDriver != "postgres" {
		t.Fatalf("expected postgres driver, got %s", cfg.DatabaseDriver)
	}
	if cfg.GraphQLMaxDepth != 10 {
		t.Fatalf("expected depth 10, got %d", cfg.GraphQLMaxDepth)
	}
	if !cfg.AllowSelfSubscription {
		t.Fatalf("expected self subscription to be allowed by default")
	}
	if !cfg.PlaygroundEnabled {
		t.Fatalf("expected playground outside release mode")
	}

	t.Setenv("GIN_MODE", "release")
	if LoadService().PlaygroundEnabled {
		t.Fatalf("expected playground disabled in release mode")
	}
}
