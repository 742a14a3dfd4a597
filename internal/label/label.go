// Package label defines the closed set of label kinds used to tag training
// samples and categorize answer nodes.
//
// A Value is a tagged union over integer, float, boolean and text payloads.
// Equality is value-based within a kind; comparing values of different kinds
// is a defined error, never an implicit coercion.
package label

import (
	"strconv"

	"github.com/pkg/errors"
)

// Kind identifies which payload a Value carries.
type Kind int

const (
	// KindInvalid is the zero Kind; a zero Value carries no label.
	KindInvalid Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindText
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindText:
		return "text"
	}
	return "invalid"
}

// ErrKindMismatch is returned when two Values of different kinds (or a
// kindless zero Value) are compared.
var ErrKindMismatch = errors.New("label: kinds differ")

// Value is a label of one of the closed kinds. The zero Value is kindless
// and marks an unlabeled sample.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Int returns an integer label.
func Int(v int64) Value { return Value{kind: KindInteger, i: v} }

// Float returns a float label.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Bool returns a boolean label.
func Bool(v bool) Value { return Value{kind: KindBoolean, b: v} }

// Text returns a text label.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Kind reports which kind of payload v carries.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v carries a label at all.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Int64 returns the integer payload. Valid only for KindInteger.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the float payload. Valid only for KindFloat.
func (v Value) Float64() float64 { return v.f }

// Bool returns the boolean payload. Valid only for KindBoolean.
func (v Value) Bool() bool { return v.b }

// Text returns the text payload. Valid only for KindText.
func (v Value) Text() string { return v.s }

// Equal compares two Values of the same kind by payload. Values of
// different kinds, or kindless zero Values, fail with ErrKindMismatch.
func (v Value) Equal(o Value) (bool, error) {
	if v.kind == KindInvalid || o.kind == KindInvalid || v.kind != o.kind {
		return false, errors.Wrapf(ErrKindMismatch, "%s vs %s", v.kind, o.kind)
	}
	switch v.kind {
	case KindInteger:
		return v.i == o.i, nil
	case KindFloat:
		return v.f == o.f, nil
	case KindBoolean:
		return v.b == o.b, nil
	default:
		return v.s == o.s, nil
	}
}

// String renders the payload for logs and demo output.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindText:
		return v.s
	}
	return "<none>"
}

// FromOutput converts a node output into a Value of the requested kind.
// Integer truncates, Boolean thresholds at > 0, Float passes through, and
// Text maps the output to a single ASCII character. A Text conversion
// outside the ASCII range fails: the caller reports it as a conversion
// error rather than wrapping silently.
func FromOutput(kind Kind, out float64) (Value, error) {
	switch kind {
	case KindInteger:
		return Int(int64(out)), nil
	case KindFloat:
		return Float(out), nil
	case KindBoolean:
		return Bool(out > 0), nil
	case KindText:
		if out < 0 || out > 127 {
			return Value{}, errors.Errorf("label: output %g not representable as text", out)
		}
		return Text(string(rune(byte(out)))), nil
	}
	return Value{}, errors.Errorf("label: cannot convert output to %s", kind)
}
