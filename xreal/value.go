// Package xreal implements the extended real line (the reals together with
// +Inf, -Inf and an undefined value) and intervals over it.
package xreal

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind is the kind of a Value.
type Kind uint8

const (
	// KindFinite is a real number.
	KindFinite Kind = iota
	// KindPosInf is +Inf.
	KindPosInf
	// KindNegInf is -Inf.
	KindNegInf
	// KindUndefined is an undefined value, for example the limit
	// of a polynomial at an undefined point.
	KindUndefined
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFinite:
		return "finite"
	case KindPosInf:
		return "+inf"
	case KindNegInf:
		return "-inf"
	default:
		return "undefined"
	}
}

// Value is an element of the extended real line.
// The zero value is the finite value 0.
type Value struct {
	kind Kind
	x    float64
}

// Finite returns the finite value x.
// Infinite and NaN inputs are mapped to the corresponding kinds.
func Finite(x float64) Value {
	switch {
	case math.IsInf(x, 1):
		return PosInf()
	case math.IsInf(x, -1):
		return NegInf()
	case math.IsNaN(x):
		return Undefined()
	}
	return Value{kind: KindFinite, x: x}
}

// PosInf returns +Inf.
func PosInf() Value {
	return Value{kind: KindPosInf}
}

// NegInf returns -Inf.
func NegInf() Value {
	return Value{kind: KindNegInf}
}

// Undefined returns the undefined value.
func Undefined() Value {
	return Value{kind: KindUndefined}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsFinite returns true if v is a real number.
func (v Value) IsFinite() bool {
	return v.kind == KindFinite
}

// IsInf returns true if v is +Inf (sign > 0), -Inf (sign < 0) or either (sign == 0).
func (v Value) IsInf(sign int) bool {
	switch {
	case sign > 0:
		return v.kind == KindPosInf
	case sign < 0:
		return v.kind == KindNegInf
	default:
		return v.kind == KindPosInf || v.kind == KindNegInf
	}
}

// IsUndefined returns true if v is undefined.
func (v Value) IsUndefined() bool {
	return v.kind == KindUndefined
}

// Float64 returns v as a float64: +Inf, -Inf and NaN for the non finite kinds.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindFinite:
		return v.x
	case KindPosInf:
		return math.Inf(1)
	case KindNegInf:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

// Sign returns 1 if v > 0, -1 if v < 0 and 0 if v is zero or undefined.
func (v Value) Sign() int {
	switch v.kind {
	case KindPosInf:
		return 1
	case KindNegInf:
		return -1
	case KindFinite:
		switch {
		case v.x > 0:
			return 1
		case v.x < 0:
			return -1
		}
	}
	return 0
}

// Neg returns -v.
func (v Value) Neg() Value {
	switch v.kind {
	case KindPosInf:
		return NegInf()
	case KindNegInf:
		return PosInf()
	case KindFinite:
		return Value{kind: KindFinite, x: -v.x}
	}
	return v
}

// Cmp compares a and b and returns -1, 0 or 1.
// Undefined compares as 0 against any value, including itself.
// Callers must not use an undefined bound in ordering decisions.
func Cmp(a, b Value) int {

	if a.kind == KindUndefined || b.kind == KindUndefined {
		return 0
	}

	if a.kind == b.kind {
		if a.kind != KindFinite {
			return 0
		}
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		default:
			return 0
		}
	}

	switch r := rank(a) - rank(b); {
	case r < 0:
		return -1
	case r > 0:
		return 1
	default:
		return 0
	}
}

// Cmp compares v with other, see Cmp.
func (v Value) Cmp(other Value) int {
	return Cmp(v, other)
}

// Equal returns true if v and other have the same kind and,
// for finite values, the same numeric value.
func (v Value) Equal(other Value) bool {
	return v.kind == other.kind && (v.kind != KindFinite || v.x == other.x)
}

// rank maps -Inf, finite and +Inf to -1, 0 and 1.
func rank(v Value) int {
	switch v.kind {
	case KindNegInf:
		return -1
	case KindPosInf:
		return 1
	default:
		return 0
	}
}

// String formats finite values with 6 significant digits,
// and non finite values as +Inf, -Inf or NaN.
func (v Value) String() string {
	switch v.kind {
	case KindPosInf:
		return "+Inf"
	case KindNegInf:
		return "-Inf"
	case KindUndefined:
		return "NaN"
	}
	return FormatFloat(v.x)
}

// FormatFloat formats x with 6 significant digits,
// printing negative zero as 0.
func FormatFloat(x float64) string {
	if x == 0 {
		x = 0
	}
	return fmt.Sprintf("%.6g", x)
}

type jsonValue struct {
	Kind  string   `json:"kind"`
	Value *float64 `json:"value,omitempty"`
}

// MarshalJSON encodes v as {"kind": ..., "value": ...}.
func (v Value) MarshalJSON() ([]byte, error) {
	jv := jsonValue{Kind: v.kind.String()}
	if v.kind == KindFinite {
		x := v.x
		jv.Value = &x
	}
	return json.Marshal(jv)
}

// UnmarshalJSON decodes v from the output of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) (err error) {

	var jv jsonValue
	if err = json.Unmarshal(data, &jv); err != nil {
		return fmt.Errorf("cannot UnmarshalJSON: %w", err)
	}

	switch jv.Kind {
	case "finite":
		if jv.Value == nil {
			return fmt.Errorf("cannot UnmarshalJSON: finite value without value field")
		}
		*v = Finite(*jv.Value)
	case "+inf":
		*v = PosInf()
	case "-inf":
		*v = NegInf()
	case "undefined":
		*v = Undefined()
	default:
		return fmt.Errorf("cannot UnmarshalJSON: invalid kind %s", strconv.Quote(jv.Kind))
	}

	return
}
