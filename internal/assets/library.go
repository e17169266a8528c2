package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MetadataFile is the per-animation metadata document name.
const MetadataFile = "meta.json"

// ArtFile is the per-animation frame document name.
const ArtFile = "frames.txt"

// ErrUnreadable marks an asset file that is missing or cannot be read.
var ErrUnreadable = errors.New("asset unreadable")

// Library enumerates and reads animation directories under a root path.
type Library struct {
	root string
}

// NewLibrary creates a library rooted at dir. The directory does not need to
// exist yet; Names reports an error when it cannot be enumerated.
func NewLibrary(dir string) *Library {
	return &Library{root: filepath.Clean(dir)}
}

// Root returns the library root directory.
func (l *Library) Root() string {
	return l.root
}

// Names returns the animation directory names under the root in
// directory-enumeration order. Plain files are skipped.
func (l *Library) Names() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("enumerate library %s: %w", l.root, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Exists reports whether name is an animation directory under the root.
// Names that would escape the root are never known.
func (l *Library) Exists(name string) bool {
	if !validName(name) {
		return false
	}
	info, err := os.Stat(filepath.Join(l.root, name))
	return err == nil && info.IsDir()
}

// ReadMetadata returns the raw metadata document for name.
func (l *Library) ReadMetadata(name string) ([]byte, error) {
	return l.read(name, MetadataFile)
}

// ReadArt returns the raw art document for name.
func (l *Library) ReadArt(name string) ([]byte, error) {
	return l.read(name, ArtFile)
}

func (l *Library) read(name, file string) ([]byte, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: invalid animation name %q", ErrUnreadable, name)
	}
	data, err := os.ReadFile(filepath.Join(l.root, name, file))
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrUnreadable, name, file, err)
	}
	return data, nil
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\") {
		return false
	}
	return true
}
