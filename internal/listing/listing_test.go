package listing

import (
	"strings"
	"testing"

	"artcast/internal/animation"
	"artcast/internal/assets"
	"artcast/internal/testsupport"
)

func newFormatter(t *testing.T) (*Formatter, string) {
	t.Helper()
	root := t.TempDir()
	store := animation.NewStore(assets.NewLibrary(root), nil)
	return NewFormatter(store), root
}

func TestFormatEmpty(t *testing.T) {
	f, _ := newFormatter(t)
	if got := f.Format(nil); got != "no animations found\n" {
		t.Errorf("unexpected empty listing: %q", got)
	}
}

func TestFormatSuccessLine(t *testing.T) {
	f, root := newFormatter(t)
	testsupport.WriteAnimation(t, root, "parrot",
		`{"name": "Party Parrot", "fps": 12.5, "loop": true}`,
		testsupport.Art("one", "two", "three"))

	got := f.Format([]string{"parrot"})
	want := "Party Parrot: 12.5 fps, loop=true, 3 frames\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatShowsIntervalWhenPositive(t *testing.T) {
	f, root := newFormatter(t)
	testsupport.WriteAnimation(t, root, "slow", `{"interval": 500}`, "frame")

	got := f.Format([]string{"slow"})
	if !strings.Contains(got, "no fps, interval 500ms, loop=false, 1 frames") {
		t.Errorf("unexpected line: %q", got)
	}
}

func TestFormatErrorLine(t *testing.T) {
	f, root := newFormatter(t)
	testsupport.WriteAnimation(t, root, "broken", `not json`, "frame")

	got := f.Format([]string{"broken"})
	if !strings.HasPrefix(got, "broken: error: ") {
		t.Errorf("error entries should render name and message: %q", got)
	}
}

func TestFormatPreservesSuppliedOrder(t *testing.T) {
	f, root := newFormatter(t)
	testsupport.WriteAnimation(t, root, "zebra", `{}`, "z")
	testsupport.WriteAnimation(t, root, "ant", `{}`, "a")

	got := f.Format([]string{"zebra", "ant"})
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "zebra") || !strings.HasPrefix(lines[1], "ant") {
		t.Errorf("order must match input, got %q", lines)
	}
}
