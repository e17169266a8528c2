package animation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// parseMetadata interprets the raw metadata document. All fields are
// optional; the coercion rules are total so no value kind is rejected except
// a document that is not a JSON object at the top level.
func parseMetadata(name string, data []byte, anim *Animation) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return fmt.Errorf("%w: %s/%s is not a JSON object", ErrMalformedMetadata, name, "meta.json")
	}

	anim.Name = name
	if display, ok := fields["name"].(string); ok && strings.TrimSpace(display) != "" {
		anim.Name = display
	}

	anim.Loop = truthy(fields["loop"])

	if fps, ok := fields["fps"].(float64); ok && fps > 0 && !math.IsInf(fps, 1) {
		anim.FPS = fps
	}
	if interval, ok := fields["interval"].(float64); ok && interval > 0 && !math.IsInf(interval, 1) {
		anim.IntervalMS = int(math.Floor(interval))
	}
	return nil
}

// truthy coerces an arbitrary JSON value to a boolean. Absent, null, false,
// zero, NaN, and the empty string are false; everything else is true.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case string:
		return v != ""
	default:
		return true
	}
}

// parseFrames splits an art document on the literal separator line after
// normalizing line endings. Every segment is kept, in original order, but at
// least one must be non-empty.
func parseFrames(name string, data []byte) ([]string, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	frames := strings.Split(text, "\n"+FrameSeparator+"\n")

	usable := false
	for _, frame := range frames {
		if frame != "" {
			usable = true
			break
		}
	}
	if len(frames) == 0 || !usable {
		return nil, fmt.Errorf("%w in %s/%s", ErrNoFrames, name, "frames.txt")
	}
	return frames, nil
}
