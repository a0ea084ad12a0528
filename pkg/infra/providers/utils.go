package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/common"
)

func FormatInstructions(instr []string) string {
	if len(instr) == 0 {
		return "[Instructions]\n"
	}

	var b strings.Builder
	b.WriteString("[Instructions]\n")
	for _, rule := range instr {
		if strings.TrimSpace(rule) == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}

// ResponseID names a completion for providers that do not return their own
// id, preferring the request id carried in ctx.
func ResponseID(ctx context.Context, provider string) string {
	if requestID, ok := ctx.Value(common.RequestIDContextKey).(string); ok && requestID != "" {
		return fmt.Sprintf("%s-%s", provider, requestID)
	}
	return fmt.Sprintf("%s-%d", provider, time.Now().UnixNano())
}
