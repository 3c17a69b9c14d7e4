// Package migrations embeds the goose SQL migrations for the frame-data
// schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
