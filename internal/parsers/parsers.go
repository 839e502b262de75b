// Package parsers provides the standard argument parsers of the abstract
// command model and their built-in mappings to native argument types.
package parsers

import (
	"reflect"
	"time"
)

// Parser kind keys. Mappings are registered and tuned against these.
const (
	KindInteger     = "integer"
	KindFloat       = "float"
	KindString      = "string"
	KindBoolean     = "boolean"
	KindStringArray = "string_array"
	KindDuration    = "duration"
)

// StringMode selects how a string argument consumes input.
type StringMode int

const (
	ModeWord StringMode = iota
	ModeQuoted
	ModeGreedy
)

// Integer parses one integer token, optionally bounded. HasMin/HasMax
// distinguish "no bound" from a bound of zero.
type Integer struct {
	Min    int64
	Max    int64
	HasMin bool
	HasMax bool
}

func (Integer) Kind() string            { return KindInteger }
func (Integer) ValueType() reflect.Type { return reflect.TypeOf(int64(0)) }

// Float parses one float token, optionally bounded.
type Float struct {
	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

func (Float) Kind() string            { return KindFloat }
func (Float) ValueType() reflect.Type { return reflect.TypeOf(float64(0)) }

// Str parses a string token according to its mode.
type Str struct {
	Mode StringMode
}

func (Str) Kind() string            { return KindString }
func (Str) ValueType() reflect.Type { return reflect.TypeOf("") }

// Boolean parses "true" or "false".
type Boolean struct{}

func (Boolean) Kind() string            { return KindBoolean }
func (Boolean) ValueType() reflect.Type { return reflect.TypeOf(false) }

// StringArray consumes the remainder of the input as separate tokens.
type StringArray struct{}

func (StringArray) Kind() string            { return KindStringArray }
func (StringArray) ValueType() reflect.Type { return reflect.TypeOf([]string(nil)) }

// Duration parses a Go duration string. It deliberately has no kind mapping
// registered by RegisterBuiltins, so it resolves through the value-type
// default table or the word fallback.
type Duration struct{}

func (Duration) Kind() string            { return KindDuration }
func (Duration) ValueType() reflect.Type { return reflect.TypeOf(time.Duration(0)) }
