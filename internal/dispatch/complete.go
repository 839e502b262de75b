package dispatch

import (
	"context"
	"strings"

	"github.com/grafter-tools/grafter/internal/native"
)

// Complete returns completions for the trailing token of line, in tree child
// order. Nodes whose requirement denies src contribute nothing. The walk only
// reads the tree; it is safe to call while a registration is in flight and
// will simply see either the old or the new subtree.
func (r *Registry) Complete(ctx context.Context, src native.Source, line string) []string {
	buffer := strings.TrimPrefix(line, "/")
	tokens := strings.Split(buffer, " ")
	partial := tokens[len(tokens)-1]
	consumed := tokens[:len(tokens)-1]

	var current native.Node = r.root
	for _, token := range consumed {
		next, ate := match(current, token, src)
		if next == nil {
			return nil
		}
		if ate {
			// A greedy argument owns everything that follows,
			// including the partial token.
			return fromProvider(ctx, next, src, line)
		}
		current = next
	}

	var out []string
	for _, child := range current.Children() {
		if !allowed(child, src) {
			continue
		}
		if child.Literal() {
			if strings.HasPrefix(child.Name(), partial) {
				out = append(out, child.Name())
			}
			continue
		}
		if provider := child.Provider(); provider != nil {
			out = append(out, provider(ctx, src, line)...)
			continue
		}
		if t := child.Type(); t != nil {
			out = append(out, t.Suggestions(partial)...)
		}
	}
	return out
}

func fromProvider(ctx context.Context, n native.Node, src native.Source, line string) []string {
	if provider := n.Provider(); provider != nil {
		return provider(ctx, src, line)
	}
	return nil
}

// match finds the child of current that consumes token: an allowed literal
// with the exact name wins, otherwise the first allowed argument child whose
// type accepts the token. The second result reports a greedy match, which
// swallows the rest of the input.
func match(current native.Node, token string, src native.Source) (native.Node, bool) {
	children := current.Children()
	for _, child := range children {
		if child.Literal() && child.Name() == token && allowed(child, src) {
			return child, false
		}
	}
	for _, child := range children {
		if child.Literal() || !allowed(child, src) {
			continue
		}
		t := child.Type()
		if t == nil {
			continue
		}
		if greedy(t) {
			return child, true
		}
		if _, err := t.Parse(token); err == nil {
			return child, false
		}
	}
	return nil, false
}
