// Package dispatch is the parsing engine that owns the native dispatch tree.
// It answers client-side completion requests and server-side execution
// dispatch against a tree of literal and argument nodes. The tree is built by
// the compiler in internal/bridge through the native.Factory contract; this
// package never looks at the abstract command model.
package dispatch

import (
	"sync"

	"github.com/grafter-tools/grafter/internal/native"
)

// node implements native.Node. Children keep insertion order; a name index
// makes lookups cheap. Child operations are guarded so that a completion
// query racing a subtree merge sees either the old or the new child set,
// never a torn one.
type node struct {
	name    string
	literal bool
	argType native.ArgumentType

	mu       sync.RWMutex
	children []native.Node
	index    map[string]int

	requirement native.Predicate
	run         native.RunFunc
	provider    native.SuggestFunc
}

func newNode(name string, literal bool, argType native.ArgumentType) *node {
	return &node{
		name:    name,
		literal: literal,
		argType: argType,
		index:   make(map[string]int),
	}
}

func (n *node) Name() string              { return n.name }
func (n *node) Literal() bool             { return n.literal }
func (n *node) Type() native.ArgumentType { return n.argType }

func (n *node) Children() []native.Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]native.Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *node) Child(name string) native.Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if idx, ok := n.index[name]; ok {
		return n.children[idx]
	}
	return nil
}

func (n *node) AddChild(child native.Node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.index[child.Name()]; ok {
		return
	}
	n.index[child.Name()] = len(n.children)
	n.children = append(n.children, child)
}

func (n *node) removeChild(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	idx, ok := n.index[name]
	if !ok {
		return false
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	delete(n.index, name)
	for i, c := range n.children[idx:] {
		n.index[c.Name()] = idx + i
	}
	return true
}

func (n *node) Requirement() native.Predicate     { return n.requirement }
func (n *node) SetRequirement(p native.Predicate) { n.requirement = p }

func (n *node) Run() native.RunFunc      { return n.run }
func (n *node) SetRun(fn native.RunFunc) { n.run = fn }

func (n *node) Provider() native.SuggestFunc      { return n.provider }
func (n *node) SetProvider(fn native.SuggestFunc) { n.provider = fn }

// allowed evaluates a node's requirement for a source. Nodes without a
// requirement are visible to everyone.
func allowed(n native.Node, src native.Source) bool {
	req := n.Requirement()
	return req == nil || req(src)
}

// Factory creates engine nodes for the compiler.
type Factory struct{}

func (Factory) Literal(name string) native.Node {
	return newNode(name, true, nil)
}

func (Factory) Argument(name string, t native.ArgumentType) native.Node {
	return newNode(name, false, t)
}

func (Factory) WordType() native.ArgumentType {
	return Word{}
}

var _ native.Factory = Factory{}
