package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/audit"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/database/types"
	"gorm.io/gorm"
)

const ExporterName = "postgres"

var errNoDatabase = errors.New("postgres exporter requires a database connection")

// EventRecord is the moderation_events row written for every audit event.
type EventRecord struct {
	ID         string            `gorm:"column:id;primaryKey"`
	Type       string            `gorm:"column:type"`
	UserID     string            `gorm:"column:user_id"`
	Scope      string            `gorm:"column:scope"`
	RuleID     string            `gorm:"column:rule_id"`
	RuleIDs    types.StringArray `gorm:"column:rule_ids;type:text[]"`
	Verdict    string            `gorm:"column:verdict"`
	Reason     string            `gorm:"column:reason"`
	Stage      string            `gorm:"column:stage"`
	LatencyMs  int64             `gorm:"column:latency_ms"`
	OccurredAt time.Time         `gorm:"column:occurred_at"`
}

func (EventRecord) TableName() string {
	return "moderation_events"
}

func newRecord(evt *audit.Event) *EventRecord {
	return &EventRecord{
		ID:         evt.ID,
		Type:       string(evt.Type),
		UserID:     evt.UserID,
		Scope:      evt.Scope,
		RuleID:     evt.RuleID,
		RuleIDs:    types.StringArray(evt.RuleIDs),
		Verdict:    evt.Verdict,
		Reason:     evt.Reason,
		Stage:      evt.Stage,
		LatencyMs:  evt.LatencyMs,
		OccurredAt: evt.OccurredAt,
	}
}

type Exporter struct {
	db *gorm.DB
}

func NewPostgresExporter(db *gorm.DB) *Exporter {
	return &Exporter{db: db}
}

func (e *Exporter) Name() string {
	return ExporterName
}

func (e *Exporter) ValidateConfig(_ map[string]interface{}) error {
	if e.db == nil {
		return errNoDatabase
	}
	return nil
}

func (e *Exporter) WithSettings(_ map[string]interface{}) (audit.Exporter, error) {
	if e.db == nil {
		return nil, errNoDatabase
	}
	return &Exporter{db: e.db}, nil
}

func (e *Exporter) Export(ctx context.Context, evt *audit.Event) error {
	if e.db == nil {
		return errNoDatabase
	}
	if err := e.db.WithContext(ctx).Create(newRecord(evt)).Error; err != nil {
		return fmt.Errorf("failed to store event %s: %w", evt.ID, err)
	}
	return nil
}

// Close is a no-op; the connection pool belongs to the database package.
func (e *Exporter) Close() {}
