package moderation

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
)

const systemPrompt = `You are a content moderation AI. Your task is to determine whether a piece of text violates any of the user-defined rules you are given.
You must respond ONLY with a valid JSON object with exactly two keys: "is_violation" (boolean) and "reason" (a brief string explanation).`

const (
	textStartMarker = "<<<TEXT"
	textEndMarker   = "TEXT>>>"
)

type Request struct {
	SystemPrompt string
	Prompt       string
	RuleIDs      []string
}

// BuildRequest renders the judging request for text against the retrieved
// rules. Rules are labelled R1..Rn in rank order so the model can cite them.
func BuildRequest(set rule.RetrievedSet, text string) (*Request, error) {
	if set.IsEmpty() {
		return nil, ErrEmptyRuleSet
	}

	var b strings.Builder
	b.WriteString("Rules:\n")
	for i, ranked := range set {
		fmt.Fprintf(&b, "R%d: %s\n", i+1, ranked.Rule.Text)
	}
	b.WriteString("\nThe text violates the rules if it breaks ANY one of them. ")
	b.WriteString("Name the broken rule label in the reason when there is a violation.\n\n")
	b.WriteString("Text to Moderate (between the markers, verbatim):\n")
	b.WriteString(textStartMarker + "\n")
	b.WriteString(text)
	b.WriteString("\n" + textEndMarker + "\n\n")
	b.WriteString(`Respond with exactly {"is_violation": <true|false>, "reason": "<short string>"} and nothing else.`)
	b.WriteString("\n\nJSON Response:\n")

	return &Request{
		SystemPrompt: systemPrompt,
		Prompt:       b.String(),
		RuleIDs:      set.IDs(),
	}, nil
}
