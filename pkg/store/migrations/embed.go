// Package migrations embeds the SQL migration files shipped with the store.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SQLite embed.FS
