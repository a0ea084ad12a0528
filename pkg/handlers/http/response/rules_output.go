package response

import (
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
)

type MessageOutput struct {
	Message string `json:"message"`
}

type RuleOutput struct {
	RuleID    string  `json:"rule_id"`
	RuleText  string  `json:"rule_text"`
	UserID    string  `json:"user_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

type ListRulesOutput struct {
	Rules   []RuleOutput `json:"rules"`
	Message string       `json:"message"`
}

type ScopeRulesOutput struct {
	Scope string       `json:"scope"`
	Rules []RuleOutput `json:"rules"`
}

func NewRuleOutputs(rules []rule.Rule) []RuleOutput {
	out := make([]RuleOutput, 0, len(rules))
	for _, r := range rules {
		item := RuleOutput{
			RuleID:    r.ID,
			RuleText:  r.Text,
			UserID:    r.Owner,
			CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		if r.UpdatedAt != nil {
			updated := r.UpdatedAt.UTC().Format(time.RFC3339Nano)
			item.UpdatedAt = &updated
		}
		out = append(out, item)
	}
	return out
}
