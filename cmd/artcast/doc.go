// Package main hosts the artcast CLI entrypoint and command graph.
//
// The Cobra-based command tree covers running the streaming server,
// inspecting the local animation library, validating individual animations,
// and configuration scaffolding. Keep this package lean: functionality
// belongs in the internal packages and is only surfaced through commands
// here.
package main
