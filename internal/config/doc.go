// Package config loads, normalizes, and validates artcast configuration.
//
// It supplies repository defaults, expands tilde paths, and reads a TOML
// file. Always obtain settings through this package so downstream code
// receives absolute paths and validated values.
package config
