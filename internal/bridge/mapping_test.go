package bridge

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/dispatch"
	"github.com/grafter-tools/grafter/internal/native"
)

func TestMappingsRegisterAndLookup(t *testing.T) {
	m := NewMappings()
	m.Register("boolean", ConstantMapping(dispatch.Bool{}, SuggestNative))

	mapping, ok := m.Lookup("boolean")
	require.True(t, ok)
	require.True(t, mapping.Constant())
	require.Equal(t, SuggestNative, mapping.Strategy())

	_, ok = m.Lookup("missing")
	require.False(t, ok)
}

func TestMappingsLastWriteWins(t *testing.T) {
	m := NewMappings()
	m.Register("boolean", ConstantMapping(dispatch.Bool{}, SuggestNative))
	m.Register("boolean", ConstantMapping(dispatch.Word{}, SuggestDelegated))

	res := m.resolve(fakeParser{kind: "boolean"}, dispatch.Factory{})
	require.IsType(t, dispatch.Word{}, res.argType)
	require.Equal(t, SuggestDelegated, res.strategy)
}

func TestMappingsSetStrategy(t *testing.T) {
	m := NewMappings()
	m.Register("integer", ConstantMapping(dispatch.Integers(), SuggestDelegated))

	require.NoError(t, m.SetStrategy("integer", SuggestNative))
	mapping, _ := m.Lookup("integer")
	require.Equal(t, SuggestNative, mapping.Strategy())

	err := m.SetStrategy("missing", SuggestNative)
	require.ErrorIs(t, err, ErrNotRegistered)
}

func TestResolveUsesParserState(t *testing.T) {
	m := NewMappings()
	m.Register("ranged", NewMapping(func(p command.Parser) native.ArgumentType {
		return dispatch.IntRange{Min: 1, Max: 10}
	}, SuggestNative))

	res := m.resolve(fakeParser{kind: "ranged"}, dispatch.Factory{})
	require.Equal(t, dispatch.IntRange{Min: 1, Max: 10}, res.argType)
}

func TestResolveValueTypeDefault(t *testing.T) {
	m := NewMappings()
	m.RegisterDefault(reflect.TypeOf(int64(0)), func() native.ArgumentType {
		return dispatch.Integers()
	})

	res := m.resolve(fakeParser{kind: "custom", vt: reflect.TypeOf(int64(0))}, dispatch.Factory{})
	require.Equal(t, dispatch.Integers(), res.argType)
	require.Equal(t, SuggestNative, res.strategy)
}

func TestResolveWordFallback(t *testing.T) {
	m := NewMappings()

	res := m.resolve(fakeParser{kind: "custom"}, dispatch.Factory{})
	require.IsType(t, dispatch.Word{}, res.argType)
	require.Equal(t, SuggestDelegated, res.strategy)
}

func TestResolveNilParser(t *testing.T) {
	m := NewMappings()

	res := m.resolve(nil, dispatch.Factory{})
	require.IsType(t, dispatch.Word{}, res.argType)
	require.Equal(t, SuggestDelegated, res.strategy)
}
