// Package web carries the embedded single-page client.
package web

import "embed"

//go:embed static
var Static embed.FS
