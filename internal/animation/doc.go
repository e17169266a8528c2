// Package animation parses raw library assets into validated animations and
// caches the result for the process lifetime.
//
// A load never fails at the call level: broken assets produce an Animation
// whose Err field carries the failure, and that entry is cached exactly like
// a successful one so a broken animation is parsed at most once (negative
// caching). The store guarantees at most one concurrent parse per name; all
// callers of a racing first load observe the same entry.
package animation
