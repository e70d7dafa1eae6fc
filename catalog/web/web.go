// Package web holds the catalog's html views.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
