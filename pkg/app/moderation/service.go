package moderation

import (
	"context"
	"errors"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/audit"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/tenant"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Service --dir=. --output=../../../mocks --filename=moderation_service_mock.go --case=underscore --with-expecter

// Service is the surface the HTTP layer talks to: rule CRUD scoped to a
// tenant plus moderation.
type Service interface {
	AddRule(ctx context.Context, t tenant.Key, id, text string) (*rule.Rule, error)
	UpdateRule(ctx context.Context, t tenant.Key, id, text string) (*rule.Rule, error)
	DeleteRule(ctx context.Context, t tenant.Key, id string) error
	ListRules(ctx context.Context, t tenant.Key) ([]rule.Rule, error)
	ListScopeRules(ctx context.Context, scope string) ([]rule.Rule, error)
	Moderate(ctx context.Context, t tenant.Key, text string) Result
}

type service struct {
	logger       *logrus.Logger
	store        rule.Store
	orchestrator *Orchestrator
	publisher    audit.Publisher
}

func NewService(
	logger *logrus.Logger,
	store rule.Store,
	orchestrator *Orchestrator,
	publisher audit.Publisher,
) Service {
	if publisher == nil {
		publisher = audit.NewNoopPublisher()
	}
	return &service{
		logger:       logger,
		store:        store,
		orchestrator: orchestrator,
		publisher:    publisher,
	}
}

func (s *service) AddRule(ctx context.Context, t tenant.Key, id, text string) (*rule.Rule, error) {
	r, err := s.store.Add(ctx, t, id, text)
	s.observe("add", err)
	if err != nil {
		return nil, err
	}
	s.publishRuleEvent(audit.EventRuleCreated, t, id)
	return r, nil
}

func (s *service) UpdateRule(ctx context.Context, t tenant.Key, id, text string) (*rule.Rule, error) {
	r, err := s.store.Update(ctx, t, id, text)
	s.observe("update", err)
	if err != nil {
		return nil, err
	}
	s.publishRuleEvent(audit.EventRuleUpdated, t, id)
	return r, nil
}

func (s *service) DeleteRule(ctx context.Context, t tenant.Key, id string) error {
	err := s.store.Delete(ctx, t, id)
	s.observe("delete", err)
	if err != nil {
		return err
	}
	s.publishRuleEvent(audit.EventRuleDeleted, t, id)
	return nil
}

func (s *service) ListRules(ctx context.Context, t tenant.Key) ([]rule.Rule, error) {
	rules, err := s.store.ListForTenant(ctx, t)
	s.observe("list", err)
	return rules, err
}

func (s *service) ListScopeRules(ctx context.Context, scope string) ([]rule.Rule, error) {
	rules, err := s.store.ListForScope(ctx, scope)
	s.observe("list_scope", err)
	return rules, err
}

func (s *service) Moderate(ctx context.Context, t tenant.Key, text string) Result {
	return s.orchestrator.Moderate(ctx, t, text)
}

func (s *service) publishRuleEvent(eventType audit.EventType, t tenant.Key, id string) {
	evt := audit.NewEvent(eventType, t.UserID, t.Scope)
	evt.RuleID = id
	s.publisher.Publish(evt)
}

func (s *service) observe(operation string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, rule.ErrDuplicateRule):
		outcome = "duplicate"
	case errors.Is(err, rule.ErrRuleNotFound):
		outcome = "not_found"
	case errors.Is(err, rule.ErrStoreUnavailable):
		outcome = "unavailable"
		s.logger.WithError(err).WithField("operation", operation).Error("rule store unavailable")
	default:
		outcome = "error"
		s.logger.WithError(err).WithField("operation", operation).Error("rule operation failed")
	}
	prometheus.RuleOperationsTotal.WithLabelValues(operation, outcome).Inc()
}
