package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventRuleCreated         EventType = "rule.created"
	EventRuleUpdated         EventType = "rule.updated"
	EventRuleDeleted         EventType = "rule.deleted"
	EventModerationEvaluated EventType = "moderation.evaluated"
)

type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	UserID     string    `json:"user_id"`
	Scope      string    `json:"scope"`
	RuleID     string    `json:"rule_id,omitempty"`
	RuleIDs    []string  `json:"rule_ids,omitempty"`
	Verdict    string    `json:"verdict,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Stage      string    `json:"stage,omitempty"`
	LatencyMs  int64     `json:"latency_ms,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(eventType EventType, userID, scope string) *Event {
	return &Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		Scope:      scope,
		OccurredAt: time.Now().UTC(),
	}
}

//go:generate mockery --name=Publisher --dir=. --output=../../../mocks --filename=audit_publisher_mock.go --case=underscore --with-expecter

// Publisher hands events to background exporters. Publish never blocks the
// caller and never fails it.
type Publisher interface {
	Publish(evt *Event)
}

//go:generate mockery --name=Exporter --dir=. --output=../../../mocks --filename=audit_exporter_mock.go --case=underscore --with-expecter

type Exporter interface {
	Name() string
	Export(ctx context.Context, evt *Event) error
	Close()
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(*Event) {}
