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
	"encoding/base64"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Decimal builds a Literal node in the canonical xsd:decimal form:
// `-?[0-9]+"."[0-9]+`, never scientific, trailing zeros trimmed but one
// digit kept after the point.
func Decimal(f float64) Node {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	} else {
		s = trimTrailingZeros(s)
	}
	return Node{kind: Literal, value: s, flags: HasDatatype, meta: datatypeNode(xsdDecimal)}
}

// trimTrailingZeros trims trailing zeros after a decimal point, keeping at
// least one digit after the point.
func trimTrailingZeros(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+2 && s[end-1] == '0' {
		end--
	}
	return s[:end]
}

// Double builds a Literal node in the canonical xsd:double form: shortest
// round-trip scientific notation with an uppercase "E", or the literal
// forms "NaN", "INF", "-INF".
func Double(f float64) Node {
	return Node{kind: Literal, value: canonicalScientific(f), flags: HasDatatype, meta: datatypeNode(xsdDouble)}
}

// Float builds a Literal node with the xsd:float datatype, in the same
// canonical scientific form as Double.
func Float(f float32) Node {
	return Node{kind: Literal, value: canonicalScientific(float64(f)), flags: HasDatatype, meta: datatypeNode(xsdFloat)}
}

func canonicalScientific(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	sign := ""
	exp = strings.TrimPrefix(exp, "+")
	if strings.HasPrefix(exp, "-") {
		sign = "-"
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "E" + sign + exp
}

// Integer builds a Literal node with the xsd:integer datatype.
func Integer(i int64) Node {
	return Node{kind: Literal, value: strconv.FormatInt(i, 10), flags: HasDatatype, meta: datatypeNode(xsdInteger)}
}

// Boolean builds a Literal node with the xsd:boolean datatype.
func Boolean(b bool) Node {
	v := "false"
	if b {
		v = "true"
	}
	return Node{kind: Literal, value: v, flags: HasDatatype, meta: datatypeNode(xsdBoolean)}
}

// Hex builds a Literal node with the xsd:hexBinary datatype, canonically
// uppercase.
func Hex(data []byte) Node {
	return Node{kind: Literal, value: strings.ToUpper(hex.EncodeToString(data)), flags: HasDatatype, meta: datatypeNode(xsdHexBinary)}
}

// Base64 builds a Literal node with the xsd:base64Binary datatype.
func Base64(data []byte) Node {
	return Node{kind: Literal, value: base64.StdEncoding.EncodeToString(data), flags: HasDatatype, meta: datatypeNode(xsdBase64Bin)}
}
