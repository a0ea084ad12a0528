package moderation_test

import (
	"strings"
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retrievedSet(texts ...string) rule.RetrievedSet {
	set := make(rule.RetrievedSet, 0, len(texts))
	for i, text := range texts {
		set = append(set, rule.Ranked{
			Rule: rule.Rule{ID: "rule-" + string(rune('a'+i)), Text: text, Owner: "alice", Scope: "k1"},
			Rank: i + 1,
		})
	}
	return set
}

func TestBuildRequest(t *testing.T) {
	set := retrievedSet("No profanity", "Do not mention competitors")
	text := `Compare us to "ACME" {please}`

	req, err := moderation.BuildRequest(set, text)
	require.NoError(t, err)

	assert.NotEmpty(t, req.SystemPrompt)
	assert.Equal(t, []string{"rule-a", "rule-b"}, req.RuleIDs)

	t.Run("labels rules in rank order", func(t *testing.T) {
		first := strings.Index(req.Prompt, "R1: No profanity")
		second := strings.Index(req.Prompt, "R2: Do not mention competitors")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, second, 0)
		assert.Less(t, first, second)
	})

	t.Run("carries the text verbatim", func(t *testing.T) {
		assert.Contains(t, req.Prompt, "<<<TEXT\n"+text+"\nTEXT>>>")
	})

	t.Run("states any-rule semantics", func(t *testing.T) {
		assert.Contains(t, req.Prompt, "ANY")
	})

	t.Run("requires the verdict shape", func(t *testing.T) {
		assert.Contains(t, req.Prompt, `{"is_violation": <true|false>, "reason": "<short string>"}`)
	})
}

func TestBuildRequest_EmptySet(t *testing.T) {
	req, err := moderation.BuildRequest(nil, "anything")
	assert.ErrorIs(t, err, moderation.ErrEmptyRuleSet)
	assert.Nil(t, req)
}
