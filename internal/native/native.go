// Package native defines the contract between the grafter compiler and the
// parsing engine that owns the dispatch tree.
//
// The engine side (see internal/dispatch) owns the tree's memory and walks it
// to answer completion and execution requests. The compiler side (see
// internal/bridge) only creates nodes through a Factory, wires their gating
// predicates, run callbacks and suggestion providers, and grafts or prunes
// subtrees through a Registry. Everything the compiler needs from the engine
// is expressed here; nothing is reached through unexported state.
package native

import "context"

// Source is the engine's sender: whoever typed the input. It is opaque to the
// compiler, which only ever forwards it to a SenderMapper.
type Source any

// RunFunc is the execution callback installed on executable nodes. The engine
// invokes it with the source and the tokens left over after tree traversal.
type RunFunc func(src Source, args []string) error

// Predicate gates visibility and use of a node for a given source. The engine
// evaluates predicates at query time, possibly concurrently; implementations
// must be side-effect-free.
type Predicate func(src Source) bool

// SuggestFunc produces completions for the trailing token of input. The input
// is the full raw buffer, not just the token being completed.
type SuggestFunc func(ctx context.Context, src Source, input string) []string

// ArgumentType is a native argument type instance: it validates a single
// token and may offer its own completions.
type ArgumentType interface {
	// Parse validates and converts one token.
	Parse(token string) (any, error)

	// Suggestions returns the type's built-in completions for a partial
	// token, or nil if the type has none.
	Suggestions(prefix string) []string
}

// Node is one position in the engine's dispatch tree.
type Node interface {
	Name() string

	// Literal reports whether the node matches its name verbatim, as
	// opposed to consuming an arbitrary argument token.
	Literal() bool

	// Type returns the argument type for argument nodes, nil for literals.
	Type() ArgumentType

	// Children returns the node's children in insertion order.
	Children() []Node

	// Child returns the child with the given name, or nil.
	Child(name string) Node

	// AddChild attaches a child. Attaching a name that already exists is a
	// no-op; reconciling same-named subtrees is the caller's job.
	AddChild(child Node)

	Requirement() Predicate
	SetRequirement(p Predicate)

	Run() RunFunc
	SetRun(fn RunFunc)

	Provider() SuggestFunc
	SetProvider(fn SuggestFunc)
}

// Factory creates engine-owned nodes and the engine's universal fallback
// argument type.
type Factory interface {
	Literal(name string) Node
	Argument(name string, t ArgumentType) Node

	// WordType returns the engine's unbounded single-word argument type,
	// used when no precise mapping for a parser exists.
	WordType() ArgumentType
}

// Registry owns the root of the live dispatch tree.
type Registry interface {
	Root() Node

	// Register attaches a top-level node and records it as registered.
	Register(node Node)

	// Find walks the path from the root, returning nil if any step is
	// missing.
	Find(path ...string) Node
}

// Bookkeeper exposes the registry's registration bookkeeping. Removal needs
// both operations; a Registry that does not implement Bookkeeper cannot
// support removal (see bridge.ErrBookkeepingUnavailable).
type Bookkeeper interface {
	// DetachChild removes a top-level node from the root.
	DetachChild(name string) error

	// Forget purges the registration record for a top-level node. Leaving
	// the record behind makes the registry report the node as present
	// after it is gone.
	Forget(name string) error
}
