package database

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

const schemaMigrationsTable = "ruleguard_schema_migrations"

var ErrUnknownMigration = errors.New("unknown migration")

type Migration struct {
	ID   string
	Name string
	Up   func(tx *gorm.DB) error
	Down func(tx *gorm.DB) error
}

type registry struct {
	mu         sync.Mutex
	migrations map[string]Migration
}

var defaultRegistry = &registry{migrations: make(map[string]Migration)}

// RegisterMigration is called from init functions in the migrations package.
// Migration IDs are date prefixed and applied in lexical order.
func RegisterMigration(m Migration) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	if _, exists := defaultRegistry.migrations[m.ID]; exists {
		panic(fmt.Sprintf("migration with ID %s already registered", m.ID))
	}
	defaultRegistry.migrations[m.ID] = m
}

func (r *registry) sorted() []Migration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Migration, 0, len(r.migrations))
	for _, m := range r.migrations {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *registry) get(id string) (Migration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.migrations[id]
	return m, ok
}

type MigrationsManager struct {
	db       *gorm.DB
	registry *registry
}

func NewMigrationsManager(db *gorm.DB) *MigrationsManager {
	return &MigrationsManager{db: db, registry: defaultRegistry}
}

func (m *MigrationsManager) ensureTable() error {
	return m.db.Exec(`CREATE TABLE IF NOT EXISTS ` + schemaMigrationsTable + ` (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL
)`).Error
}

// Applied returns the IDs already recorded in the database.
func (m *MigrationsManager) Applied() (map[string]struct{}, error) {
	var ids []string
	if err := m.db.Raw(`SELECT id FROM ` + schemaMigrationsTable).Scan(&ids).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		applied[id] = struct{}{}
	}
	return applied, nil
}

// ApplyPending runs every unapplied migration, each in its own transaction
// together with its bookkeeping row.
func (m *MigrationsManager) ApplyPending() error {
	if err := m.ensureTable(); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}
	applied, err := m.Applied()
	if err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}

	for _, mig := range m.registry.sorted() {
		if _, ok := applied[mig.ID]; ok {
			continue
		}
		if mig.Up == nil {
			return fmt.Errorf("migration %s has no Up function", mig.ID)
		}
		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			return tx.Exec(
				`INSERT INTO `+schemaMigrationsTable+` (id, name, applied_at) VALUES (?, ?, ?)`,
				mig.ID, mig.Name, time.Now().UTC(),
			).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s (%s): %w", mig.ID, mig.Name, err)
		}
	}
	return nil
}

// Rollback reverts a single applied migration.
func (m *MigrationsManager) Rollback(id string) error {
	mig, ok := m.registry.get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMigration, id)
	}
	if mig.Down == nil {
		return fmt.Errorf("migration %s has no Down function", id)
	}
	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := mig.Down(tx); err != nil {
			return fmt.Errorf("revert migration %s: %w", id, err)
		}
		return tx.Exec(`DELETE FROM `+schemaMigrationsTable+` WHERE id = ?`, id).Error
	})
}
