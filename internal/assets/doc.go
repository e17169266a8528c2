// Package assets reads raw animation material from the on-disk library.
//
// The library is one directory per animation under a configured root. Each
// animation directory holds meta.json (timing and loop metadata) and
// frames.txt (the art document, frames joined by a literal separator line).
// The package only hands out raw bytes and directory names; parsing and
// validation belong to the animation package.
package assets
