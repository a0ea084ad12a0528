package moderation_test

import (
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		verdict moderation.Verdict
		reason  string
	}{
		{
			name:    "bare object",
			raw:     `{"is_violation": true, "reason": "mentions a competitor"}`,
			verdict: moderation.VerdictViolation,
			reason:  "mentions a competitor",
		},
		{
			name:    "fenced object surrounded by prose",
			raw:     "Sure! Here is my answer:\n```json\n{\"is_violation\": false, \"reason\": \"harmless greeting\"}\n```\nLet me know if you need more.",
			verdict: moderation.VerdictNoViolation,
			reason:  "harmless greeting",
		},
		{
			name:    "missing reason",
			raw:     `{"is_violation": true}`,
			verdict: moderation.VerdictViolation,
			reason:  moderation.ReasonMissing,
		},
		{
			name:    "blank reason",
			raw:     `{"is_violation": true, "reason": "   "}`,
			verdict: moderation.VerdictViolation,
			reason:  moderation.ReasonMissing,
		},
		{
			name:    "missing is_violation",
			raw:     `{"reason": "nothing to flag"}`,
			verdict: moderation.VerdictNoViolation,
			reason:  "nothing to flag",
		},
		{
			name:    "null fields",
			raw:     `{"is_violation": null, "reason": null}`,
			verdict: moderation.VerdictNoViolation,
			reason:  moderation.ReasonMissing,
		},
		{
			name:    "braces inside reason string",
			raw:     `{"is_violation": true, "reason": "uses {template} syntax"}`,
			verdict: moderation.VerdictViolation,
			reason:  "uses {template} syntax",
		},
		{
			name:    "escaped quote and brace inside string",
			raw:     `{"is_violation": true, "reason": "said \"}\" loudly"}`,
			verdict: moderation.VerdictViolation,
			reason:  `said "}" loudly`,
		},
		{
			name:    "prose braces before the object are skipped",
			raw:     `I considered {R1} first. {"is_violation": false, "reason": "R1 not broken"}`,
			verdict: moderation.VerdictNoViolation,
			reason:  "R1 not broken",
		},
		{
			name:    "unbalanced brace before the object is skipped",
			raw:     `{ thinking... {"is_violation": true, "reason": "R2"}`,
			verdict: moderation.VerdictViolation,
			reason:  "R2",
		},
		{
			name:    "first object wins",
			raw:     `{"is_violation": false, "reason": "a"} {"is_violation": true, "reason": "b"}`,
			verdict: moderation.VerdictNoViolation,
			reason:  "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := moderation.ParseVerdict(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.verdict, res.Verdict)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestParseVerdict_Unparsable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty output", raw: ""},
		{name: "prose only", raw: "The text looks fine to me."},
		{name: "unterminated object", raw: `{"is_violation": true, "reason": "cut off`},
		{name: "is_violation as string", raw: `{"is_violation": "yes", "reason": "x"}`},
		{name: "is_violation as number", raw: `{"is_violation": 1}`},
		{name: "reason as number", raw: `{"is_violation": true, "reason": 42}`},
		{name: "reason as object", raw: `{"is_violation": false, "reason": {"text": "x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := moderation.ParseVerdict(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, moderation.ErrUnparsableVerdict)
			assert.Equal(t, moderation.VerdictUnknown, res.Verdict)
		})
	}
}
