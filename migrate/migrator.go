package migrate

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Migrator drives a MigrationSet's Up/Down steps in order.
type Migrator struct {
	set MigrationSet
	log logr.Logger
}

// MigratorOption configures an optional Migrator construction parameter.
type MigratorOption func(*Migrator)

// WithLogger sets the logger used for per-step tracing.
func WithLogger(l logr.Logger) MigratorOption {
	return func(m *Migrator) { m.log = l }
}

func NewMigrator(set MigrationSet, opts ...MigratorOption) *Migrator {
	m := &Migrator{set: set}
	for _, opt := range opts {
		opt(m)
	}
	if m.log.GetSink() == nil {
		m.log = stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
	}
	return m
}

// Up applies every not-yet-applied migration in ascending order, or just
// the one step whose order equals *number if number is non-nil. It stops
// and returns the originating error on the first failing step, leaving
// already-committed steps applied.
func (m *Migrator) Up(ctx context.Context, number *int) error {
	last, err := m.set.LastApplied(ctx)
	if err != nil {
		return fmt.Errorf("migrate: read last_applied: %w", err)
	}

	steps := ascending(m.set.Migrations())
	for _, step := range steps {
		if step.Order() <= last {
			continue
		}
		if number != nil && step.Order() != *number {
			continue
		}
		m.log.V(4).Info("applying migration", "order", step.Order())
		if err := step.Up(ctx); err != nil {
			return fmt.Errorf("migrate: up step %d: %w", step.Order(), err)
		}
		if err := m.set.SetLastApplied(ctx, step.Order()); err != nil {
			return fmt.Errorf("migrate: persist last_applied after step %d: %w", step.Order(), err)
		}
	}
	return nil
}

// Down reverses applied migrations in descending order, stopping before
// order 0, or just the one step whose order equals *number if non-nil.
func (m *Migrator) Down(ctx context.Context, number *int) error {
	last, err := m.set.LastApplied(ctx)
	if err != nil {
		return fmt.Errorf("migrate: read last_applied: %w", err)
	}

	steps := descending(m.set.Migrations())
	for _, step := range steps {
		if step.Order() > last {
			continue
		}
		if number != nil && step.Order() != *number {
			continue
		}
		m.log.V(4).Info("reverting migration", "order", step.Order())
		if err := step.Down(ctx); err != nil {
			return fmt.Errorf("migrate: down step %d: %w", step.Order(), err)
		}
		if err := m.set.SetLastApplied(ctx, step.Order()-1); err != nil {
			return fmt.Errorf("migrate: persist last_applied after reverting step %d: %w", step.Order(), err)
		}
	}
	return nil
}

func ascending(migrations []Migration) []Migration {
	sorted := append([]Migration(nil), migrations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order() < sorted[j].Order() })
	return sorted
}

func descending(migrations []Migration) []Migration {
	sorted := append([]Migration(nil), migrations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order() > sorted[j].Order() })
	return sorted
}
