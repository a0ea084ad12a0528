package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/tenant"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/vectorindex"
	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
)

const (
	MetaOwner      = "owner"
	MetaScope      = "scope"
	MetaOriginalID = "original_id"
	MetaCreatedAt  = "created_at"
	MetaUpdatedAt  = "updated_at"

	lockStripes = 64
)

type ruleRepository struct {
	index  vectorindex.Index
	logger *logrus.Logger
	locks  [lockStripes]sync.Mutex
	now    func() time.Time
}

type RuleRepositoryOption func(*ruleRepository)

func WithClock(now func() time.Time) RuleRepositoryOption {
	return func(r *ruleRepository) {
		r.now = now
	}
}

func NewRuleRepository(logger *logrus.Logger, index vectorindex.Index, opts ...RuleRepositoryOption) rule.Store {
	r := &ruleRepository{
		index:  index,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ruleRepository) Add(ctx context.Context, t tenant.Key, id, text string) (*rule.Rule, error) {
	key := rule.Key{Scope: t.Scope, ID: id}
	docID := key.Encode()
	unlock := r.lock(docID)
	defer unlock()

	_, found, err := r.index.GetByID(ctx, docID)
	if err != nil {
		return nil, unavailable(err)
	}
	if found {
		return nil, fmt.Errorf("%w: %s", rule.ErrDuplicateRule, id)
	}

	created := &rule.Rule{
		ID:        id,
		Text:      text,
		Owner:     t.UserID,
		Scope:     t.Scope,
		CreatedAt: r.now().UTC(),
	}
	if err := r.index.AddDocument(ctx, docID, text, toMetadata(created)); err != nil {
		return nil, unavailable(err)
	}

	r.logger.WithFields(logrus.Fields{
		"rule_id": id,
		"tenant":  t.String(),
	}).Debug("rule added")
	return created, nil
}

func (r *ruleRepository) Update(ctx context.Context, t tenant.Key, id, text string) (*rule.Rule, error) {
	docID := rule.Key{Scope: t.Scope, ID: id}.Encode()
	unlock := r.lock(docID)
	defer unlock()

	existing, err := r.getVisible(ctx, t, docID)
	if err != nil {
		return nil, err
	}

	updatedAt := r.now().UTC()
	existing.Text = text
	existing.UpdatedAt = &updatedAt
	if err := r.index.UpdateDocument(ctx, docID, text, toMetadata(existing)); err != nil {
		return nil, unavailable(err)
	}
	return existing, nil
}

func (r *ruleRepository) Delete(ctx context.Context, t tenant.Key, id string) error {
	docID := rule.Key{Scope: t.Scope, ID: id}.Encode()
	unlock := r.lock(docID)
	defer unlock()

	if _, err := r.getVisible(ctx, t, docID); err != nil {
		return err
	}
	if err := r.index.DeleteByID(ctx, docID); err != nil {
		if errors.Is(err, vectorindex.ErrDocumentNotFound) {
			return fmt.Errorf("%w: %s", rule.ErrRuleNotFound, id)
		}
		return unavailable(err)
	}
	return nil
}

func (r *ruleRepository) ListForTenant(ctx context.Context, t tenant.Key) ([]rule.Rule, error) {
	records, err := r.index.FindByFilter(ctx, tenantFilter(t))
	if err != nil {
		return nil, unavailable(err)
	}
	rules := make([]rule.Rule, 0, len(records))
	for _, rec := range records {
		rl := r.fromRecord(rec)
		if rl.VisibleTo(t) {
			rules = append(rules, *rl)
		}
	}
	sortRules(rules)
	return rules, nil
}

func (r *ruleRepository) ListForScope(ctx context.Context, scope string) ([]rule.Rule, error) {
	records, err := r.index.FindByFilter(ctx, vectorindex.Filter{MetaScope: scope})
	if err != nil {
		return nil, unavailable(err)
	}
	rules := make([]rule.Rule, 0, len(records))
	for _, rec := range records {
		rl := r.fromRecord(rec)
		if rl.Scope == scope {
			rules = append(rules, *rl)
		}
	}
	sortRules(rules)
	return rules, nil
}

func (r *ruleRepository) Search(ctx context.Context, t tenant.Key, query string, k int) (rule.RetrievedSet, error) {
	if k <= 0 {
		k = rule.DefaultSearchLimit
	}
	records, err := r.index.QueryByText(ctx, query, k, tenantFilter(t))
	if err != nil {
		return nil, unavailable(err)
	}
	set := make(rule.RetrievedSet, 0, len(records))
	for _, rec := range records {
		rl := r.fromRecord(rec)
		if !rl.VisibleTo(t) {
			r.logger.WithField("document_id", rec.ID).Warn("index returned a rule outside the tenant filter")
			continue
		}
		set = append(set, rule.Ranked{
			Rule:  *rl,
			Rank:  len(set) + 1,
			Score: rec.Score,
		})
		if len(set) == k {
			break
		}
	}
	return set, nil
}

func (r *ruleRepository) getVisible(ctx context.Context, t tenant.Key, docID string) (*rule.Rule, error) {
	rec, found, err := r.index.GetByID(ctx, docID)
	if err != nil {
		return nil, unavailable(err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", rule.ErrRuleNotFound, docID)
	}
	existing := r.fromRecord(rec)
	if !existing.VisibleTo(t) {
		return nil, fmt.Errorf("%w: %s", rule.ErrRuleNotFound, docID)
	}
	return existing, nil
}

func (r *ruleRepository) lock(docID string) func() {
	m := &r.locks[xxhash.Sum64String(docID)%lockStripes]
	m.Lock()
	return m.Unlock
}

func (r *ruleRepository) fromRecord(rec vectorindex.Record) *rule.Rule {
	rl := &rule.Rule{
		ID:    rec.Metadata[MetaOriginalID],
		Text:  rec.Text,
		Owner: rec.Metadata[MetaOwner],
		Scope: rec.Metadata[MetaScope],
	}
	if rl.ID == "" {
		if key, err := rule.DecodeKey(rec.ID); err == nil {
			rl.ID = key.ID
		}
	}
	if ts := rec.Metadata[MetaCreatedAt]; ts != "" {
		createdAt, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			r.logger.WithError(err).WithField("document_id", rec.ID).Warn("invalid created_at metadata")
		}
		rl.CreatedAt = createdAt
	}
	if ts := rec.Metadata[MetaUpdatedAt]; ts != "" {
		updatedAt, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			r.logger.WithError(err).WithField("document_id", rec.ID).Warn("invalid updated_at metadata")
		} else {
			rl.UpdatedAt = &updatedAt
		}
	}
	return rl
}

func toMetadata(rl *rule.Rule) map[string]string {
	updatedAt := ""
	if rl.UpdatedAt != nil {
		updatedAt = rl.UpdatedAt.Format(time.RFC3339Nano)
	}
	return map[string]string{
		MetaOwner:      rl.Owner,
		MetaScope:      rl.Scope,
		MetaOriginalID: rl.ID,
		MetaCreatedAt:  rl.CreatedAt.Format(time.RFC3339Nano),
		MetaUpdatedAt:  updatedAt,
	}
}

func tenantFilter(t tenant.Key) vectorindex.Filter {
	return vectorindex.Filter{
		MetaOwner: t.UserID,
		MetaScope: t.Scope,
	}
}

func sortRules(rules []rule.Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		if !rules[i].CreatedAt.Equal(rules[j].CreatedAt) {
			return rules[i].CreatedAt.Before(rules[j].CreatedAt)
		}
		return rules[i].ID < rules[j].ID
	})
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", rule.ErrStoreUnavailable, err)
}
