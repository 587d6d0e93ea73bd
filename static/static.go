// Package static embeds the public assets served under the static path.
package static

import "embed"

//go:embed css/*
var FS embed.FS
