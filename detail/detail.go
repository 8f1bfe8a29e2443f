/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package detail

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Kind identifies which arm of the Value variant is populated.
type Kind uint8

const (
	// KindNull is the zero Kind. The zero Value is a valid null detail,
	// so a Value read from an empty map slot is still well-formed.
	KindNull Kind = iota

	// KindText holds a string.
	KindText

	// KindInt holds a 64-bit signed integer.
	KindInt

	// KindBool holds a boolean.
	KindBool

	// KindStructured holds an arbitrary document value (object, array,
	// or a non-integral number), backed by structpb.Value.
	KindStructured
)

// String returns a short, stable name for the kind. Used in error
// messages and tests; not part of the wire format.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindStructured:
		return "structured"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

var (
	// ErrNotEncodable is returned (wrapped) by FromAny when the input has
	// no defined document encoding — for example a channel, a function
	// value, or a struct containing one.
	ErrNotEncodable = errors.New("detail: value is not encodable as a document")

	// ErrInvalidJSON is returned (wrapped) by UnmarshalJSON when the input
	// is not a valid JSON value.
	ErrInvalidJSON = errors.New("detail: invalid JSON value")
)

// Value is a closed, equality-comparable variant over the legal detail
// shapes. The zero Value is the null detail.
//
// Values are immutable: constructors are the only way to populate one,
// and accessors never expose interior state that could be mutated
// (the structured arm hands out the backing *structpb.Value, which
// callers are expected to treat as read-only, same as proto messages
// anywhere else in this module).
type Value struct {
	kind Kind
	text string
	num  int64
	flag bool
	doc  *structpb.Value
}

// Text returns a text detail value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Int returns an integer detail value.
func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// Bool returns a boolean detail value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Null returns the null detail value.
func Null() Value {
	return Value{kind: KindNull}
}

// Structured returns a detail value holding the given document.
//
// Documents whose root is a plain scalar are normalized to the matching
// scalar arm: a string root becomes a text detail, a bool root a boolean,
// a null root the null detail, and an integral number an integer detail.
// Without this normalization, Structured over a scalar and the dedicated
// scalar constructor would serialize identically yet compare unequal,
// which would break the round-trip equality contract.
//
// Non-integral numbers, objects, and arrays stay structured. A nil
// document is the null detail.
func Structured(v *structpb.Value) Value {
	if v == nil {
		return Null()
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return Null()
	case *structpb.Value_StringValue:
		return Text(k.StringValue)
	case *structpb.Value_BoolValue:
		return Bool(k.BoolValue)
	case *structpb.Value_NumberValue:
		if n, ok := integral(k.NumberValue); ok {
			return Int(n)
		}
	}
	return Value{kind: KindStructured, doc: v}
}

// FromAny serializes an arbitrary Go value into a document and returns
// the corresponding detail value. Maps, slices, strings, numbers, bools,
// nil, and combinations thereof are accepted (the structpb encoding
// rules apply). The result is normalized the same way Structured
// normalizes.
//
// Inputs without a document encoding fail with an error wrapping
// ErrNotEncodable.
func FromAny(v any) (Value, error) {
	doc, err := structpb.NewValue(v)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrNotEncodable, err)
	}
	return Structured(doc), nil
}

// Kind reports which arm of the variant is populated.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is the null detail.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// TextValue returns the text arm. The bool is false when the value holds
// a different kind.
func (v Value) TextValue() (string, bool) {
	return v.text, v.kind == KindText
}

// IntValue returns the integer arm. The bool is false when the value
// holds a different kind.
func (v Value) IntValue() (int64, bool) {
	return v.num, v.kind == KindInt
}

// BoolValue returns the boolean arm. The bool is false when the value
// holds a different kind.
func (v Value) BoolValue() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// StructuredValue returns the structured arm's backing document. The
// bool is false when the value holds a different kind. Callers must not
// mutate the returned document.
func (v Value) StructuredValue() (*structpb.Value, bool) {
	return v.doc, v.kind == KindStructured
}

// Equal reports exact equality of two values: same kind, same payload.
// Structured arms compare by proto.Equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindText:
		return v.text == other.text
	case KindInt:
		return v.num == other.num
	case KindBool:
		return v.flag == other.flag
	case KindStructured:
		return proto.Equal(v.doc, other.doc)
	default:
		return false
	}
}

// String renders the value for log and error messages. This is NOT the
// wire form; use MarshalJSON for that.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindText:
		return v.text
	case KindInt:
		return fmt.Sprintf("%d", v.num)
	case KindBool:
		return fmt.Sprintf("%t", v.flag)
	case KindStructured:
		return v.doc.String()
	default:
		return ""
	}
}

// integral reports whether f is exactly representable as an int64.
//
// The upper bound is checked strictly: float64(math.MaxInt64) rounds up
// to 2^63, which does not fit. Conversion of an out-of-range float to
// int64 is not defined in Go, so the range check must come first.
func integral(f float64) (int64, bool) {
	if math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
