package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/amortize/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address == "" {
		t.Fatalf("expected default address, got empty")
	}
	if cfg.UploadSizeBytes() <= 0 {
		t.Fatalf("expected positive default max upload size, got %d", cfg.UploadSizeBytes())
	}
	if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
		t.Fatalf("expected empty logging defaults, got %+v", cfg.Logging)
	}
	if cfg.Cache.Backend != constants.CacheBackendMemory {
		t.Fatalf("expected memory cache by default, got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL != constants.DefaultCacheTTL {
		t.Fatalf("expected default cache TTL, got %v", cfg.Cache.TTL)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxUploadSize: 2M
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
allowedOrigins:
  - http://localhost:3000
cache:
  backend: redis
  address: localhost:6379
  ttl: 90s
  prefix: "test:"
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.UploadSizeBytes() != 2*1024*1024 {
		t.Fatalf("expected max upload override, got %d", cfg.UploadSizeBytes())
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected logging format console, got %s", cfg.Logging.Format)
	}
	if cfg.Logging.OutputFile != "/tmp/server.log" {
		t.Fatalf("expected logging outputFile /tmp/server.log, got %s", cfg.Logging.OutputFile)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("expected allowed origin override, got %v", cfg.AllowedOrigins)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Address != "localhost:6379" {
		t.Fatalf("expected redis cache override, got %+v", cfg.Cache)
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Fatalf("expected cache TTL 90s, got %v", cfg.Cache.TTL)
	}
	if cfg.Cache.Prefix != "test:" {
		t.Fatalf("expected cache prefix test:, got %s", cfg.Cache.Prefix)
	}
}

func TestLoadConfigExample(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "server-config.yaml.example"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Fatalf("expected 256K upload limit, got %d", cfg.UploadSizeBytes())
	}
	if cfg.Cache.Backend != constants.CacheBackendMemory {
		t.Fatalf("expected memory cache, got %q", cfg.Cache.Backend)
	}
}

func TestSetUploadSizeBytes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetUploadSizeBytes(0)
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Fatalf("non-positive size must be ignored, got %d", cfg.UploadSizeBytes())
	}
	cfg.SetUploadSizeBytes(4096)
	if cfg.UploadSizeBytes() != 4096 || cfg.MaxUploadSize != "4096" {
		t.Fatalf("expected 4096, got %d (%s)", cfg.UploadSizeBytes(), cfg.MaxUploadSize)
	}
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(path, []byte("maxUploadSize: invalid"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML but got nil")
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxUploadSizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"2G":        2 * 1024 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("parseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("parseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1TB"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
}
