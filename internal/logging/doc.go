// Package logging configures structured slog output for artcast.
//
// It offers two handler formats: a compact console handler that prints the
// component name ahead of the message with trailing key=value attributes,
// and a plain JSON handler for machine consumption. Subsystems obtain their
// logger through NewComponentLogger so every record carries a component
// attribute, and tests use NewNop to silence output entirely.
package logging
