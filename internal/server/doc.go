// Package server exposes the animation library over HTTP.
//
// The surface is GET-only: / prints usage text, /list summarizes every
// animation the library knows, and /<name> either streams the animation to a
// terminal client or shows a static instruction page to a browser. All
// per-request failures become plain-text HTTP responses; a panic anywhere in
// a handler is converted to a 500 by the recovery middleware so the process
// never dies on a bad request.
package server
