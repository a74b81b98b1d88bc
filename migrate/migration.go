// Package migrate implements an ordered schema-migration framework: a
// Migrator drives a MigrationSet's steps up or down,
// persisting last_applied after every successful step and aborting without
// rolling back prior steps on the first error.
package migrate

import "context"

// Migration is one ordered, idempotent-safe schema step.
type Migration interface {
	Order() int
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}

// MigrationSet knows a storage's ordered migrations and how to persist and
// read back the last-applied order within that storage.
type MigrationSet interface {
	Migrations() []Migration
	LastApplied(ctx context.Context) (int, error)
	SetLastApplied(ctx context.Context, order int) error
}
