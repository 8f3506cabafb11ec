// Package migrations embeds the credential store's SQL migration files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
