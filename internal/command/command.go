// Package command holds the platform-independent command tree that the
// compiler reads from. The tree is built by application code and mutated only
// by the owner; the compiler and the compiled predicates treat it as
// read-only and always re-read it through the live Tree handle.
package command

import (
	"context"
	"reflect"
)

// ComponentKind tags a node as a literal token, a single typed argument, or
// an aggregate group of consecutive argument tokens.
type ComponentKind int

const (
	KindLiteral ComponentKind = iota
	KindVariable
	KindAggregate
)

func (k ComponentKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindVariable:
		return "variable"
	case KindAggregate:
		return "aggregate"
	default:
		return "unknown"
	}
}

// Sender is the abstract command sender. Opaque to this package; permission
// checkers and suggestion engines give it meaning.
type Sender any

// PermissionChecker decides whether a sender holds a permission. An error is
// treated as a denial by the compiled predicates, never as a grant.
type PermissionChecker func(sender Sender, permission string) (bool, error)

// SuggestionEngine is the abstract side's completion engine. Suggest receives
// the full input string (without a leading slash) and returns completions in
// presentation order.
type SuggestionEngine interface {
	Suggest(ctx context.Context, sender Sender, input string) []string
}

// Parser identifies how one argument token (or aggregate component) is
// parsed. The compiler never runs parsers; it only dispatches on Kind to find
// an argument mapping, and on ValueType for default mappings.
type Parser interface {
	Kind() string
	ValueType() reflect.Type
}

// Component is one sub-component of an aggregate argument group.
type Component struct {
	Name   string
	Parser Parser
}

// Node is one token position in the abstract command tree.
type Node struct {
	Name       string
	Kind       ComponentKind
	Optional   bool
	Permission string

	// Parser is set for variable nodes. Aggregate nodes carry their
	// parsers per component instead.
	Parser Parser

	// Components are the ordered sub-components of an aggregate node.
	Components []Component

	// Children are owned by this node, in declaration order. Ordering
	// matters downstream: the engine ranks completions by it.
	Children []*Node

	// OwningCommand marks a node that terminates a registered command.
	OwningCommand bool
}

// Literal builds a literal node.
func Literal(name string, children ...*Node) *Node {
	return &Node{Name: name, Kind: KindLiteral, Children: children}
}

// Variable builds a typed argument node.
func Variable(name string, parser Parser, children ...*Node) *Node {
	return &Node{Name: name, Kind: KindVariable, Parser: parser, Children: children}
}

// Aggregate builds a multi-token argument group node.
func Aggregate(name string, components []Component, children ...*Node) *Node {
	return &Node{Name: name, Kind: KindAggregate, Components: components, Children: children}
}
