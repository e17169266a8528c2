// Package client classifies HTTP clients as terminals or browsers from their
// declared User-Agent string.
package client

import "strings"

// Kind is the classification outcome.
type Kind int

const (
	// Terminal clients receive the live frame stream.
	Terminal Kind = iota
	// Browser clients receive the static instruction page.
	Browser
)

func (k Kind) String() string {
	if k == Browser {
		return "browser"
	}
	return "terminal"
}

// cliSignatures identify command-line HTTP tools. The allow-list wins over
// browser detection because several tools embed browser tokens in their
// default User-Agent.
var cliSignatures = []string{
	"curl",
	"wget",
	"httpie",
	"http_request2",
	"powershell",
	"fetch",
	"aria2",
	"axel",
	"libwww-perl",
	"python-requests",
	"go-http-client",
}

var browserSignatures = []string{
	"mozilla",
	"webkit",
	"chrome",
	"chromium",
	"safari",
	"firefox",
	"opera",
	"edge",
	"gecko",
	"trident",
	"msie",
}

// Classify decides the response mode for a declared client identity. Unknown
// and empty identities default to Terminal so command-line streaming, the
// primary use case, is never blocked by a missing header.
func Classify(userAgent string) Kind {
	ua := strings.ToLower(userAgent)
	for _, sig := range cliSignatures {
		if strings.Contains(ua, sig) {
			return Terminal
		}
	}
	for _, sig := range browserSignatures {
		if strings.Contains(ua, sig) {
			return Browser
		}
	}
	return Terminal
}
