// Package migrations embeds the goose SQL migrations that own the
// storefront schema.
package migrations

import "embed"

// FS holds the embedded migration files, applied at startup by the server.
//
//go:embed *.sql
var FS embed.FS
