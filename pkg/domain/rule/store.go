package rule

import (
	"context"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/tenant"
)

const DefaultSearchLimit = 5

//go:generate mockery --name=Store --dir=. --output=../../../mocks --filename=rule_store_mock.go --case=underscore --with-expecter

// Store persists tenant rules and retrieves them by semantic similarity.
// Update and Delete report ErrRuleNotFound when the rule exists but belongs
// to another tenant, so callers cannot probe foreign rule ids.
type Store interface {
	Add(ctx context.Context, t tenant.Key, id, text string) (*Rule, error)
	Update(ctx context.Context, t tenant.Key, id, text string) (*Rule, error)
	Delete(ctx context.Context, t tenant.Key, id string) error
	ListForTenant(ctx context.Context, t tenant.Key) ([]Rule, error)
	ListForScope(ctx context.Context, scope string) ([]Rule, error)
	Search(ctx context.Context, t tenant.Key, query string, k int) (RetrievedSet, error)
}
