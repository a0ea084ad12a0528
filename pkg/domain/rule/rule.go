package rule

import (
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/tenant"
)

type Rule struct {
	ID        string     `json:"rule_id"`
	Text      string     `json:"rule_text"`
	Owner     string     `json:"user_id"`
	Scope     string     `json:"scope,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (r *Rule) Key() Key {
	return Key{Scope: r.Scope, ID: r.ID}
}

// VisibleTo reports whether the rule lives in the tenant's partition.
func (r *Rule) VisibleTo(t tenant.Key) bool {
	return r.Owner == t.UserID && r.Scope == t.Scope
}

// Ranked is a rule returned by similarity search. Rank 1 is the most relevant.
type Ranked struct {
	Rule  Rule    `json:"rule"`
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
}

type RetrievedSet []Ranked

func (s RetrievedSet) IsEmpty() bool {
	return len(s) == 0
}

func (s RetrievedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for _, r := range s {
		ids = append(ids, r.Rule.ID)
	}
	return ids
}
