// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteAnimation creates an animation directory under root with the given
// metadata and art documents. Either document may be empty to write an empty
// file; use WriteAnimationFiles to omit files entirely.
func WriteAnimation(t *testing.T, root, name, metadata, art string) string {
	t.Helper()
	return WriteAnimationFiles(t, root, name, map[string]string{
		"meta.json":  metadata,
		"frames.txt": art,
	})
}

// WriteAnimationFiles creates an animation directory containing exactly the
// given files, returning the directory path.
func WriteAnimationFiles(t *testing.T, root, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create animation dir: %v", err)
	}
	for file, content := range files {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", file, err)
		}
	}
	return dir
}

// Art joins frames with the library's literal separator line.
func Art(frames ...string) string {
	out := ""
	for i, frame := range frames {
		if i > 0 {
			out += "\n====FRAME====\n"
		}
		out += frame
	}
	return out
}
