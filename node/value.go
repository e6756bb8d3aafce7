// Copyright 2025 Trident Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package node

import (
	"strconv"

	"github.com/jplu/rio/status"
)

// ValueKind tags the variant carried by a Value.
type ValueKind uint8

const (
	// ValueNone is the zero ValueKind; not a meaningful value.
	ValueNone ValueKind = iota
	// ValueBool carries a xsd:boolean.
	ValueBool
	// ValueLong carries a xsd:integer/xsd:long-range integer.
	ValueLong
	// ValueDecimal carries a xsd:decimal.
	ValueDecimal
	// ValueFloat carries a xsd:float.
	ValueFloat
	// ValueDouble carries a xsd:double.
	ValueDouble
	// ValueString carries a plain or xsd:string literal.
	ValueString
)

// Value is the parsed, typed form of a Literal node's canonical string.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Long   int64
	Double float64
	Str    string
}

// Value parses n's canonical string form into a typed Value according to
// its datatype; a Literal with no datatype yields a ValueString. It returns
// false if n is not a Literal, the datatype is not one this package
// assigns meaning to, or the lexical form does not parse.
func (n Node) Value() (Value, bool) {
	dt, ok := n.Datatype()
	if n.kind != Literal {
		return Value{}, false
	}
	if !ok {
		return Value{Kind: ValueString, Str: n.value}, true
	}
	switch dt.value {
	case xsdBoolean:
		b, err := strconv.ParseBool(n.value)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValueBool, Bool: b}, true
	case xsdInteger:
		i, err := strconv.ParseInt(n.value, 10, 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValueLong, Long: i}, true
	case xsdDecimal:
		f, err := strconv.ParseFloat(n.value, 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValueDecimal, Double: f}, true
	case xsdFloat:
		f, err := parseXSDFloat(n.value, 32)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValueFloat, Double: f}, true
	case xsdDouble:
		f, err := parseXSDFloat(n.value, 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValueDouble, Double: f}, true
	case xsdString:
		return Value{Kind: ValueString, Str: n.value}, true
	default:
		return Value{}, false
	}
}

// parseXSDFloat parses s, mapping the xsd lexical infinity form "INF" to
// the Go/strconv spelling "+Inf" that ParseFloat recognizes; strconv
// already accepts "NaN" and "-Inf" as-is.
func parseXSDFloat(s string, bitSize int) (float64, error) {
	if s == "INF" {
		s = "+Inf"
	}
	return strconv.ParseFloat(s, bitSize)
}

// ValueAs coerces n's Value to target, applying lossy numeric conversions
// (precision reduction, decimal-to-integer truncation) only when lossy is
// true. Without lossy, only exactly representable conversions succeed.
func (n Node) ValueAs(target ValueKind, lossy bool) (Value, error) {
	v, ok := n.Value()
	if !ok {
		return Value{}, status.New(status.BadArg, "node has no parseable value")
	}
	if v.Kind == target {
		return v, nil
	}
	switch target {
	case ValueLong:
		return coerceToLong(v, lossy)
	case ValueDouble, ValueFloat, ValueDecimal:
		return coerceToFloat(v, target, lossy)
	case ValueBool:
		if v.Kind == ValueLong && (lossy || v.Long == 0 || v.Long == 1) {
			return Value{Kind: ValueBool, Bool: v.Long != 0}, nil
		}
		return Value{}, status.New(status.BadArg, "value is not exactly representable as bool")
	case ValueString:
		return Value{}, status.New(status.BadArg, "no canonical string coercion defined")
	default:
		return Value{}, status.New(status.BadArg, "unsupported coercion target")
	}
}

func coerceToLong(v Value, lossy bool) (Value, error) {
	switch v.Kind {
	case ValueLong:
		return v, nil
	case ValueDecimal, ValueDouble, ValueFloat:
		if !lossy && v.Double != float64(int64(v.Double)) {
			return Value{}, status.New(status.BadArg, "fractional value is not exactly representable as an integer")
		}
		return Value{Kind: ValueLong, Long: int64(v.Double)}, nil
	case ValueBool:
		l := int64(0)
		if v.Bool {
			l = 1
		}
		return Value{Kind: ValueLong, Long: l}, nil
	default:
		return Value{}, status.New(status.BadArg, "value has no numeric coercion to integer")
	}
}

func coerceToFloat(v Value, target ValueKind, lossy bool) (Value, error) {
	switch v.Kind {
	case ValueLong:
		f := float64(v.Long)
		if !lossy && (int64(f) != v.Long || (target == ValueFloat && float64(float32(f)) != f)) {
			return Value{}, status.New(status.BadArg, "integer is not exactly representable as a floating-point value")
		}
		return Value{Kind: target, Double: f}, nil
	case ValueDecimal, ValueDouble, ValueFloat:
		if !lossy && target == ValueFloat {
			if float64(float32(v.Double)) != v.Double {
				return Value{}, status.New(status.BadArg, "value is not exactly representable as float32")
			}
		}
		return Value{Kind: target, Double: v.Double}, nil
	default:
		return Value{}, status.New(status.BadArg, "value has no numeric coercion")
	}
}
