package bridge

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/native"
)

// SuggestionStrategy decides where an argument node's completions come from.
type SuggestionStrategy int

const (
	// SuggestDelegated routes completion requests to the abstract
	// suggestion engine.
	SuggestDelegated SuggestionStrategy = iota

	// SuggestNative uses the native argument type's own completions.
	SuggestNative
)

// TypeFactory produces a native argument type from a parser instance. The
// parser is passed so that instance state (bounds, string mode) can shape the
// native type.
type TypeFactory func(p command.Parser) native.ArgumentType

// Mapping is the compiled description of how one parser kind appears in the
// native tree. Immutable once registered, except for the suggestion strategy
// which Mappings.SetStrategy may flip at runtime.
type Mapping struct {
	factory  TypeFactory
	strategy SuggestionStrategy
	constant bool
}

// NewMapping builds a mapping whose native type depends on parser state.
func NewMapping(factory TypeFactory, strategy SuggestionStrategy) Mapping {
	return Mapping{factory: factory, strategy: strategy}
}

// ConstantMapping builds a mapping whose native type never varies with the
// parser instance.
func ConstantMapping(t native.ArgumentType, strategy SuggestionStrategy) Mapping {
	return Mapping{
		factory:  func(command.Parser) native.ArgumentType { return t },
		strategy: strategy,
		constant: true,
	}
}

// Constant reports whether the native type ignores parser instance state.
func (m Mapping) Constant() bool { return m.constant }

// Strategy returns the mapping's suggestion strategy.
func (m Mapping) Strategy() SuggestionStrategy { return m.strategy }

// resolved is what the compiler works with: a concrete native type plus the
// strategy that decides its suggestion wiring.
type resolved struct {
	argType  native.ArgumentType
	strategy SuggestionStrategy
}

// Mappings maps parser kinds to native argument descriptions, with a
// secondary table of defaults keyed by the value type a parser produces.
type Mappings struct {
	mu       sync.RWMutex
	byKind   map[string]Mapping
	defaults map[reflect.Type]func() native.ArgumentType
}

func NewMappings() *Mappings {
	return &Mappings{
		byKind:   make(map[string]Mapping),
		defaults: make(map[reflect.Type]func() native.ArgumentType),
	}
}

// Register stores a mapping for a parser kind. Last write wins: platform
// extensions override defaults by re-registering the same kind.
func (m *Mappings) Register(kind string, mapping Mapping) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byKind[kind] = mapping
}

// Lookup returns the mapping for a parser kind.
func (m *Mappings) Lookup(kind string) (Mapping, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mapping, ok := m.byKind[kind]
	return mapping, ok
}

// SetStrategy flips the suggestion strategy of an existing mapping. The
// caller must register the kind first.
func (m *Mappings) SetStrategy(kind string, strategy SuggestionStrategy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mapping, ok := m.byKind[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRegistered, kind)
	}
	mapping.strategy = strategy
	m.byKind[kind] = mapping
	return nil
}

// RegisterDefault stores a fallback argument type factory for parsers that
// produce the given value type but have no kind mapping.
func (m *Mappings) RegisterDefault(valueType reflect.Type, factory func() native.ArgumentType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaults[valueType] = factory
}

// resolve maps a parser to a native argument description. It never fails:
// unmapped kinds fall back to the value-type default table, and failing that
// to the engine's unbounded word type with delegated suggestions, so that a
// node is always emitted even when native suggestion fidelity is degraded.
func (m *Mappings) resolve(p command.Parser, factory native.Factory) resolved {
	if p != nil {
		m.mu.RLock()
		mapping, ok := m.byKind[p.Kind()]
		m.mu.RUnlock()
		if ok {
			if t := mapping.factory(p); t != nil {
				return resolved{argType: t, strategy: mapping.strategy}
			}
		}

		m.mu.RLock()
		def, ok := m.defaults[p.ValueType()]
		m.mu.RUnlock()
		if ok {
			if t := def(); t != nil {
				// Value-type defaults keep the native type's own
				// completions.
				return resolved{argType: t, strategy: SuggestNative}
			}
		}
	}
	return resolved{argType: factory.WordType(), strategy: SuggestDelegated}
}
