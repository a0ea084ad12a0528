package database

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func newTestManager(db *gorm.DB, migrations ...Migration) *MigrationsManager {
	r := &registry{migrations: make(map[string]Migration)}
	for _, m := range migrations {
		r.migrations[m.ID] = m
	}
	return &MigrationsManager{db: db, registry: r}
}

var (
	createTable   = regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + schemaMigrationsTable)
	selectApplied = regexp.QuoteMeta("SELECT id FROM " + schemaMigrationsTable)
	insertApplied = regexp.QuoteMeta("INSERT INTO " + schemaMigrationsTable)
)

func probeMigration(id string) Migration {
	return Migration{
		ID:   id,
		Name: "probe " + id,
		Up: func(tx *gorm.DB) error {
			return tx.Exec("CREATE TABLE probe_" + id + " (id TEXT)").Error
		},
		Down: func(tx *gorm.DB) error {
			return tx.Exec("DROP TABLE probe_" + id).Error
		},
	}
}

func TestMigrationsManager_ApplyPending(t *testing.T) {
	t.Run("applies unapplied migrations in id order", func(t *testing.T) {
		gdb, mock := newMockGorm(t)
		mgr := newTestManager(gdb, probeMigration("b2"), probeMigration("a1"))

		mock.ExpectExec(createTable).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(selectApplied).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		for _, id := range []string{"a1", "b2"} {
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE probe_" + id)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec(insertApplied).
				WithArgs(id, "probe "+id, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(1, 1))
			mock.ExpectCommit()
		}

		require.NoError(t, mgr.ApplyPending())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips applied migrations", func(t *testing.T) {
		gdb, mock := newMockGorm(t)
		mgr := newTestManager(gdb, probeMigration("a1"))

		mock.ExpectExec(createTable).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(selectApplied).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a1"))

		require.NoError(t, mgr.ApplyPending())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed migration rolls back", func(t *testing.T) {
		gdb, mock := newMockGorm(t)
		mgr := newTestManager(gdb, probeMigration("a1"))

		mock.ExpectExec(createTable).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(selectApplied).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE probe_a1")).WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		err := mgr.ApplyPending()
		assert.ErrorContains(t, err, "apply migration a1")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMigrationsManager_Rollback(t *testing.T) {
	gdb, mock := newMockGorm(t)
	mgr := newTestManager(gdb, probeMigration("a1"))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE probe_a1")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + schemaMigrationsTable)).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, mgr.Rollback("a1"))
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.ErrorIs(t, mgr.Rollback("zz"), ErrUnknownMigration)
}

func TestRegisterMigration_DuplicatePanics(t *testing.T) {
	m := Migration{ID: "29990102_duplicate", Name: "dup", Up: func(*gorm.DB) error { return nil }}
	RegisterMigration(m)
	assert.Panics(t, func() { RegisterMigration(m) })
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "ruleguard"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=ruleguard sslmode=disable", cfg.DSN())
}
