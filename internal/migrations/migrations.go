package migrations

import (
	"context"
	"database/sql"
	"sort"
	"sync"
)

// DBExecutor is the subset of *sql.DB migrations need, kept narrow so tests
// can substitute a mock.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Migration is one schema version step. Apply must be idempotent: the
// manager may re-run a step after a crash between the step and the version
// bump.
type Migration interface {
	Version() int
	Apply(ctx context.Context, db DBExecutor) error
}

// DefaultRegistry is the global migration registry, populated by init()
// in the vN files.
var DefaultRegistry = &Registry{}

type Registry struct {
	mu         sync.RWMutex
	migrations []Migration
}

func (r *Registry) Register(m Migration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.migrations = append(r.migrations, m)
}

// Migrations returns all registered migrations sorted by version.
func (r *Registry) Migrations() []Migration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Migration, len(r.migrations))
	copy(out, r.migrations)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Version() < out[j].Version()
	})
	return out
}

// Register adds a migration to the default registry.
func Register(m Migration) {
	DefaultRegistry.Register(m)
}
