package bridge

import (
	"context"
	"strings"

	"github.com/grafter-tools/grafter/internal/native"
)

// provider returns the suggestion wiring for a resolved argument. NATIVE
// means no provider: the engine falls back to the argument type's own
// completions. DELEGATED returns a provider that asks the abstract engine
// and trims each result to the trailing partial token.
func (m *Manager) provider(res resolved) native.SuggestFunc {
	if res.strategy == SuggestNative {
		return nil
	}
	return m.delegated()
}

// delegated builds a provider that routes completion requests to the
// abstract suggestion engine. Result order is the engine's; no resorting.
func (m *Manager) delegated() native.SuggestFunc {
	engine := m.cfg.Engine
	senders := m.cfg.Senders

	return func(ctx context.Context, src native.Source, input string) []string {
		if engine == nil {
			return nil
		}
		sender := senders.ToAbstract(src)
		query := strings.TrimPrefix(input, "/")
		raw := engine.Suggest(ctx, sender, query)

		out := make([]string, 0, len(raw))
		for _, s := range raw {
			trimmed, ok := TrimToLastToken(s, query)
			if !ok {
				continue
			}
			out = append(out, trimmed)
		}
		return out
	}
}

// TrimToLastToken adjusts a suggestion so that an editor replacing from the
// last whitespace boundary of input substitutes only the intended token.
// Suggestions that echo the consumed part of the input lose it; suggestions
// that are already a bare token pass through. The second result is false
// when trimming leaves nothing worth surfacing.
func TrimToLastToken(suggestion, input string) (string, bool) {
	last := strings.LastIndexByte(input, ' ')
	if last < 0 {
		return suggestion, suggestion != ""
	}

	head := input[:last+1]
	if len(suggestion) >= len(head) && strings.EqualFold(suggestion[:len(head)], head) {
		trimmed := suggestion[len(head):]
		return trimmed, trimmed != ""
	}

	// A multi-token suggestion that does not line up with the input would
	// corrupt the buffer on substitution.
	if strings.ContainsRune(suggestion, ' ') {
		return "", false
	}
	return suggestion, suggestion != ""
}
