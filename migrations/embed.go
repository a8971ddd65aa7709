// Package migrations holds the SQL schema for the postgres backend.
package migrations

import "embed"

// Files contains every *.sql migration in this directory
//
//go:embed *.sql
var Files embed.FS
