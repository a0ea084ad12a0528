package moderation_test

import (
	"encoding/json"
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_JSON(t *testing.T) {
	tests := []struct {
		name   string
		result moderation.Result
		want   string
	}{
		{
			name:   "violation",
			result: moderation.Result{Verdict: moderation.VerdictViolation, Reason: "R1"},
			want:   `{"is_violation":true,"reason":"R1"}`,
		},
		{
			name:   "no violation",
			result: moderation.Result{Verdict: moderation.VerdictNoViolation, Reason: moderation.ReasonNoRules},
			want:   `{"is_violation":false,"reason":"no moderation rules found for this tenant"}`,
		},
		{
			name:   "unknown renders null",
			result: moderation.Result{Verdict: moderation.VerdictUnknown, Reason: "rule store unavailable: timeout"},
			want:   `{"is_violation":null,"reason":"rule store unavailable: timeout"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var back moderation.Result
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.result, back)
		})
	}
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "violation", moderation.VerdictViolation.String())
	assert.Equal(t, "no_violation", moderation.VerdictNoViolation.String())
	assert.Equal(t, "unknown", moderation.VerdictUnknown.String())
	assert.False(t, moderation.VerdictUnknown.IsKnown())
	assert.True(t, moderation.VerdictViolation.IsKnown())
}
