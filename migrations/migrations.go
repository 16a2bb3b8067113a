package migrations

import "embed"

// Files SQL-миграции, встроенные в бинарник.
//
//go:embed *.sql
var Files embed.FS
