package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Bind != defaultBind {
		t.Errorf("bind = %q, want default %q", cfg.Server.Bind, defaultBind)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.AnimationsDir) {
		t.Errorf("animations dir should be expanded to absolute: %q", cfg.Paths.AnimationsDir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
animations_dir = "` + dir + `/library"

[server]
bind = " 0.0.0.0:8080 "

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Server.Bind != "0.0.0.0:8080" {
		t.Errorf("bind not trimmed: %q", cfg.Server.Bind)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging values not lowercased: %+v", cfg.Logging)
	}
	if cfg.Paths.AnimationsDir != filepath.Join(dir, "library") {
		t.Errorf("unexpected animations dir: %q", cfg.Paths.AnimationsDir)
	}
}

func TestLoadRejectsBadBind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\nbind = \"no-port\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "server.bind") {
		t.Fatalf("expected bind validation error, got %v", err)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected format validation error, got %v", err)
	}
}

func TestValidateDiscoveryInstance(t *testing.T) {
	cfg := Default()
	cfg.Paths.AnimationsDir = t.TempDir()
	cfg.Discovery.MDNS = true
	cfg.Discovery.Instance = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when mdns is enabled without an instance name")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if _, _, err := Load(path); err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.AnimationsDir = filepath.Join(dir, "animations")
	cfg.Paths.LockFile = filepath.Join(dir, "locks", "artcast.lock")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, p := range []string{cfg.Paths.AnimationsDir, filepath.Dir(cfg.Paths.LockFile)} {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %q to exist", p)
		}
	}
}
