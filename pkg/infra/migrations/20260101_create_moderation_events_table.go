package migrations

import (
	"github.com/NeuralTrust/RuleGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260101_create_moderation_events_table",
		Name: "Create moderation_events table for the rule and verdict audit trail",

		Up: func(tx *gorm.DB) error {
			if err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS moderation_events (
					id          UUID PRIMARY KEY,
					type        TEXT NOT NULL,
					user_id     TEXT NOT NULL,
					scope       TEXT NOT NULL DEFAULT '',
					rule_id     TEXT,
					rule_ids    TEXT[],
					verdict     TEXT,
					reason      TEXT,
					stage       TEXT,
					latency_ms  BIGINT NOT NULL DEFAULT 0,
					occurred_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			return tx.Exec(`
				CREATE INDEX IF NOT EXISTS idx_moderation_events_tenant
				ON moderation_events (user_id, scope, occurred_at);
			`).Error
		},

		Down: func(tx *gorm.DB) error {
			return tx.Exec(`DROP TABLE IF EXISTS moderation_events;`).Error
		},
	})
}
