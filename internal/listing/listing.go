// Package listing renders a human-readable summary of the animation library.
package listing

import (
	"fmt"
	"strings"

	"artcast/internal/animation"
)

// Formatter renders one line per animation, loading each through the store
// so the cache (including cached failures) is honored.
type Formatter struct {
	store *animation.Store
}

// NewFormatter creates a formatter backed by store.
func NewFormatter(store *animation.Store) *Formatter {
	return &Formatter{store: store}
}

// Format renders the summary for names in the order supplied. Zero names
// produce a single "none found" line.
func (f *Formatter) Format(names []string) string {
	if len(names) == 0 {
		return "no animations found\n"
	}
	var b strings.Builder
	for _, name := range names {
		b.WriteString(f.line(name))
		b.WriteByte('\n')
	}
	return b.String()
}

// Line renders the summary for a single animation.
func (f *Formatter) Line(name string) string {
	return f.line(name)
}

func (f *Formatter) line(name string) string {
	anim := f.store.Load(name)
	if anim.Err != nil {
		return fmt.Sprintf("%s: error: %v", name, anim.Err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: ", anim.Name)
	if anim.FPS > 0 {
		fmt.Fprintf(&b, "%g fps", anim.FPS)
	} else {
		b.WriteString("no fps")
	}
	if anim.IntervalMS > 0 {
		fmt.Fprintf(&b, ", interval %dms", anim.IntervalMS)
	}
	fmt.Fprintf(&b, ", loop=%t, %d frames", anim.Loop, len(anim.Frames))
	return b.String()
}
