// Package migrations embeds the storage schema for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
