package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/audit"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/events/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestExporter_Export(t *testing.T) {
	insert := regexp.QuoteMeta(`INSERT INTO "moderation_events"`)

	t.Run("stores the event", func(t *testing.T) {
		gdb, mock := newMockGorm(t)
		mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(1, 1))

		exporter, err := postgres.NewPostgresExporter(gdb).WithSettings(nil)
		require.NoError(t, err)

		evt := audit.NewEvent(audit.EventModerationEvaluated, "alice", "k1")
		evt.RuleIDs = []string{"rule-a", "rule-b"}
		evt.Verdict = "violation"
		evt.Reason = "R1 matched"

		require.NoError(t, exporter.Export(context.Background(), evt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		gdb, mock := newMockGorm(t)
		mock.ExpectExec(insert).WillReturnError(errors.New("connection reset"))

		exporter := postgres.NewPostgresExporter(gdb)
		evt := audit.NewEvent(audit.EventRuleCreated, "alice", "k1")

		err := exporter.Export(context.Background(), evt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store event "+evt.ID)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestExporter_RequiresDatabase(t *testing.T) {
	exporter := postgres.NewPostgresExporter(nil)

	assert.Equal(t, postgres.ExporterName, exporter.Name())
	assert.Error(t, exporter.ValidateConfig(nil))
	_, err := exporter.WithSettings(nil)
	assert.Error(t, err)
	assert.Error(t, exporter.Export(context.Background(), audit.NewEvent(audit.EventRuleDeleted, "alice", "")))
}
