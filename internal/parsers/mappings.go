package parsers

import (
	"github.com/grafter-tools/grafter/internal/bridge"
	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/dispatch"
	"github.com/grafter-tools/grafter/internal/native"
)

// RegisterBuiltins installs the standard parser-kind mappings. All built-ins
// delegate suggestions to the abstract engine except booleans, whose native
// type suggests true/false on its own. Applications may re-register any kind
// to override these; last write wins.
func RegisterBuiltins(m *bridge.Mappings) {
	m.Register(KindInteger, bridge.NewMapping(integerType, bridge.SuggestDelegated))
	m.Register(KindFloat, bridge.NewMapping(floatType, bridge.SuggestDelegated))
	m.Register(KindString, bridge.NewMapping(stringType, bridge.SuggestDelegated))
	m.Register(KindBoolean, bridge.ConstantMapping(dispatch.Bool{}, bridge.SuggestNative))
	m.Register(KindStringArray, bridge.ConstantMapping(dispatch.Greedy{}, bridge.SuggestDelegated))
}

// RegisterDefaultTypes seeds the value-type default table for platform
// built-ins, so parsers without a kind mapping still compile to a sensible
// native type.
func RegisterDefaultTypes(m *bridge.Mappings) {
	m.RegisterDefault(Integer{}.ValueType(), func() native.ArgumentType { return dispatch.Integers() })
	m.RegisterDefault(Float{}.ValueType(), func() native.ArgumentType { return dispatch.Floats() })
	m.RegisterDefault(Str{}.ValueType(), func() native.ArgumentType { return dispatch.Word{} })
}

// SetNativeNumberSuggestions flips all numeric parser kinds between native
// and delegated suggestions at once. The native suggestions of numeric types
// are empty, so the default is delegated.
func SetNativeNumberSuggestions(m *bridge.Mappings, enable bool) error {
	strategy := bridge.SuggestDelegated
	if enable {
		strategy = bridge.SuggestNative
	}
	for _, kind := range []string{KindInteger, KindFloat} {
		if err := m.SetStrategy(kind, strategy); err != nil {
			return err
		}
	}
	return nil
}

func integerType(p command.Parser) native.ArgumentType {
	ip, ok := p.(Integer)
	if !ok {
		return dispatch.Integers()
	}
	t := dispatch.Integers()
	if ip.HasMin {
		t.Min = ip.Min
	}
	if ip.HasMax {
		t.Max = ip.Max
	}
	return t
}

func floatType(p command.Parser) native.ArgumentType {
	fp, ok := p.(Float)
	if !ok {
		return dispatch.Floats()
	}
	t := dispatch.Floats()
	if fp.HasMin {
		t.Min = fp.Min
	}
	if fp.HasMax {
		t.Max = fp.Max
	}
	return t
}

func stringType(p command.Parser) native.ArgumentType {
	sp, ok := p.(Str)
	if !ok {
		return dispatch.Word{}
	}
	switch sp.Mode {
	case ModeQuoted:
		return dispatch.Quoted{}
	case ModeGreedy:
		return dispatch.Greedy{}
	default:
		return dispatch.Word{}
	}
}
