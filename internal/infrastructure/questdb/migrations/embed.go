// Package migrations holds the QuestDB schema as up/down SQL files.
package migrations

import "embed"

// FS contains every migration file.
//
//go:embed *.sql
var FS embed.FS
