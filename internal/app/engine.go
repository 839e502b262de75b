package app

import (
	"context"
	"strings"

	"github.com/grafter-tools/grafter/internal/command"
)

// Engine answers delegated completion queries by walking the abstract tree
// and offering sample values for argument positions. Samples are keyed by
// the argument or component name.
type Engine struct {
	tree    *command.Tree
	samples map[string][]string
}

func NewEngine(tree *command.Tree, samples map[string][]string) *Engine {
	if samples == nil {
		samples = make(map[string][]string)
	}
	return &Engine{tree: tree, samples: samples}
}

var _ command.SuggestionEngine = (*Engine)(nil)

// Suggest completes the trailing token of input against the abstract tree.
func (e *Engine) Suggest(ctx context.Context, sender command.Sender, input string) []string {
	tokens := strings.Split(input, " ")
	partial := tokens[len(tokens)-1]
	consumed := tokens[:len(tokens)-1]

	if len(consumed) == 0 {
		var out []string
		for _, label := range e.tree.Labels() {
			if strings.HasPrefix(label, partial) {
				out = append(out, label)
			}
		}
		return out
	}

	root := e.tree.NamedNode(consumed[0])
	if root == nil {
		return nil
	}
	return e.suggestAt(root, consumed[1:], partial)
}

func (e *Engine) suggestAt(n *command.Node, tokens []string, partial string) []string {
	if len(tokens) == 0 {
		return e.nextTokens(n, partial)
	}

	for _, child := range n.Children {
		if child.Kind == command.KindLiteral && child.Name == tokens[0] {
			return e.suggestAt(child, tokens[1:], partial)
		}
	}
	for _, child := range n.Children {
		switch child.Kind {
		case command.KindVariable:
			return e.suggestAt(child, tokens[1:], partial)
		case command.KindAggregate:
			width := len(child.Components)
			if len(tokens) < width {
				// Stopped inside the aggregate: the next token
				// belongs to the component at this offset.
				return e.sampleValues(child.Components[len(tokens)].Name, partial)
			}
			return e.suggestAt(child, tokens[width:], partial)
		}
	}
	return nil
}

// nextTokens lists what may follow node n, filtered by the partial token.
func (e *Engine) nextTokens(n *command.Node, partial string) []string {
	var out []string
	for _, child := range n.Children {
		switch child.Kind {
		case command.KindLiteral:
			if strings.HasPrefix(child.Name, partial) {
				out = append(out, child.Name)
			}
		case command.KindVariable:
			out = append(out, e.sampleValues(child.Name, partial)...)
		case command.KindAggregate:
			if len(child.Components) > 0 {
				out = append(out, e.sampleValues(child.Components[0].Name, partial)...)
			}
		}
	}
	return out
}

func (e *Engine) sampleValues(name, partial string) []string {
	var out []string
	for _, v := range e.samples[name] {
		if strings.HasPrefix(v, partial) {
			out = append(out, v)
		}
	}
	return out
}
