package dispatch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grafter-tools/grafter/internal/native"
)

// Word accepts any single token.
type Word struct{}

func (Word) Parse(token string) (any, error)    { return token, nil }
func (Word) Suggestions(prefix string) []string { return nil }

// Quoted accepts a single token, optionally wrapped in double quotes.
type Quoted struct{}

func (Quoted) Parse(token string) (any, error) {
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		return token[1 : len(token)-1], nil
	}
	return token, nil
}

func (Quoted) Suggestions(prefix string) []string { return nil }

// Greedy consumes the remainder of the input as one value.
type Greedy struct{}

func (Greedy) Parse(token string) (any, error)    { return token, nil }
func (Greedy) Suggestions(prefix string) []string { return nil }

// greedy reports whether an argument type swallows all remaining tokens.
func greedy(t native.ArgumentType) bool {
	_, ok := t.(Greedy)
	return ok
}

// IntRange accepts integers within [Min, Max].
type IntRange struct {
	Min int64
	Max int64
}

// Integers returns an unbounded IntRange.
func Integers() IntRange {
	return IntRange{Min: math.MinInt64, Max: math.MaxInt64}
}

func (r IntRange) Parse(token string) (any, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("expected integer, got %q", token)
	}
	if v < r.Min || v > r.Max {
		return nil, fmt.Errorf("integer %d out of range [%d, %d]", v, r.Min, r.Max)
	}
	return v, nil
}

func (IntRange) Suggestions(prefix string) []string { return nil }

// FloatRange accepts floats within [Min, Max].
type FloatRange struct {
	Min float64
	Max float64
}

// Floats returns an unbounded FloatRange.
func Floats() FloatRange {
	return FloatRange{Min: -math.MaxFloat64, Max: math.MaxFloat64}
}

func (r FloatRange) Parse(token string) (any, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, fmt.Errorf("expected number, got %q", token)
	}
	if v < r.Min || v > r.Max {
		return nil, fmt.Errorf("number %v out of range [%v, %v]", v, r.Min, r.Max)
	}
	return v, nil
}

func (FloatRange) Suggestions(prefix string) []string { return nil }

// Bool accepts "true" or "false" and suggests both.
type Bool struct{}

func (Bool) Parse(token string) (any, error) {
	v, err := strconv.ParseBool(token)
	if err != nil {
		return nil, fmt.Errorf("expected true or false, got %q", token)
	}
	return v, nil
}

func (Bool) Suggestions(prefix string) []string {
	var out []string
	for _, s := range []string{"true", "false"} {
		if strings.HasPrefix(s, strings.ToLower(prefix)) {
			out = append(out, s)
		}
	}
	return out
}

var (
	_ native.ArgumentType = Word{}
	_ native.ArgumentType = Quoted{}
	_ native.ArgumentType = Greedy{}
	_ native.ArgumentType = IntRange{}
	_ native.ArgumentType = FloatRange{}
	_ native.ArgumentType = Bool{}
)
