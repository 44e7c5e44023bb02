// Package views holds the HTML templates compiled into the binary.
package views

import "embed"

// FS contains layouts/, partials/ and the page templates.
//
//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS
