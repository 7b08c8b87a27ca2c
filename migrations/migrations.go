// Package migrations embeds the versioned SQL schema applied by golang-migrate.
package migrations

import "embed"

// FS holds the *.up.sql / *.down.sql files of this directory.
//
//go:embed *.sql
var FS embed.FS
