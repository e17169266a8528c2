package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"artcast/internal/animation"
	"artcast/internal/testsupport"
)

// writeTestConfig creates a config file pointing at a fresh library root and
// returns both paths.
func writeTestConfig(t *testing.T) (configPath, libraryDir string) {
	t.Helper()
	dir := t.TempDir()
	libraryDir = filepath.Join(dir, "animations")
	if err := os.MkdirAll(libraryDir, 0o755); err != nil {
		t.Fatalf("create library dir: %v", err)
	}
	configPath = filepath.Join(dir, "config.toml")
	content := "[paths]\nanimations_dir = \"" + libraryDir + "\"\nlock_file = \"" +
		filepath.Join(dir, "artcast.lock") + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath, libraryDir
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommandPlain(t *testing.T) {
	configPath, libraryDir := writeTestConfig(t)
	testsupport.WriteAnimation(t, libraryDir, "parrot",
		`{"fps": 10, "loop": true}`, testsupport.Art("a", "b"))

	out, err := runCommand(t, "--config", configPath, "list", "--plain")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "parrot: 10 fps, loop=true, 2 frames") {
		t.Errorf("unexpected listing output: %q", out)
	}
}

func TestListCommandEmptyLibrary(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	out, err := runCommand(t, "--config", configPath, "list", "--plain")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "no animations found") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestValidateCommand(t *testing.T) {
	configPath, libraryDir := writeTestConfig(t)
	testsupport.WriteAnimation(t, libraryDir, "count",
		`{"interval": 40}`, testsupport.Art("one", "two", "three"))

	out, err := runCommand(t, "--config", configPath, "validate", "count")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	for _, want := range []string{"frames:   3", "loop:     false", "interval: 40ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output: %q", want, out)
		}
	}
}

func TestValidateCommandUnknownName(t *testing.T) {
	configPath, _ := writeTestConfig(t)
	if _, err := runCommand(t, "--config", configPath, "validate", "ghost"); err == nil {
		t.Fatal("expected error for unknown animation")
	}
}

func TestValidateCommandBrokenAnimation(t *testing.T) {
	configPath, libraryDir := writeTestConfig(t)
	testsupport.WriteAnimation(t, libraryDir, "broken", `[]`, "frame")

	if _, err := runCommand(t, "--config", configPath, "validate", "broken"); err == nil {
		t.Fatal("expected error for broken animation")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if _, err := runCommand(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// A second init without --force must refuse to overwrite.
	if _, err := runCommand(t, "--config", path, "config", "init"); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, err := runCommand(t, "--config", path, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}

	out, err := runCommand(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "bind:           127.0.0.1:3000") {
		t.Errorf("unexpected show output: %q", out)
	}
}

func TestTableRow(t *testing.T) {
	anim := &animation.Animation{
		Name:   "Demo Reel",
		FPS:    12.5,
		Loop:   true,
		Frames: []string{"a", "b", "c", "d"},
	}
	row := tableRow("demo", anim)
	want := []string{"Demo Reel", "12.5", "-", "true", "4"}
	for i, cell := range want {
		if row[i] != cell {
			t.Errorf("cell %d: got %q, want %q", i, row[i], cell)
		}
	}

	broken := &animation.Animation{Name: "demo", Err: errors.New("no frames found")}
	row = tableRow("demo", broken)
	if row[0] != "demo" || !strings.Contains(row[4], "no frames found") {
		t.Errorf("unexpected error row: %q", row)
	}
}
