package node

import (
	"math"
	"testing"
)

func TestEqualAndCompare(t *testing.T) {
	t.Parallel()
	a, err := NewURI("http://example.org/a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewURI("http://example.org/a")
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewURI("http://example.org/b")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Fatal("expected equal URIs to compare equal")
	}
	if Equal(a, c) {
		t.Fatal("expected different URIs to compare unequal")
	}
	if Compare(a, b) != 0 {
		t.Fatal("expected equal URIs to compare as 0")
	}
	if Compare(a, c) >= 0 {
		t.Fatal("expected a < c")
	}
}

func TestNewLiteralRejectsBothMeta(t *testing.T) {
	t.Parallel()
	_, err := NewLiteral("x", HasDatatype|HasLanguage, "en")
	if err == nil {
		t.Fatal("expected error when both HasDatatype and HasLanguage are set")
	}
}

func TestNewLiteralDatatypeMustBeAbsolute(t *testing.T) {
	t.Parallel()
	_, err := NewLiteral("x", HasDatatype, "not-absolute")
	if err == nil {
		t.Fatal("expected error for non-absolute datatype uri")
	}
}

func TestNewLiteralRejectsLangString(t *testing.T) {
	t.Parallel()
	_, err := NewLiteral("x", HasDatatype, rdfLangString)
	if err == nil {
		t.Fatal("expected rdf:langString to be rejected as an explicit datatype")
	}
}

func TestNewLiteralLanguageTag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tag     string
		wantErr bool
	}{
		{"en", false},
		{"en-US", false},
		{"zh-Hans-CN", false},
		{"not a tag", true},
		{"", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			_, err := NewLiteral("x", HasLanguage, tt.tag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLiteral(%q): err=%v, wantErr=%v", tt.tag, err, tt.wantErr)
			}
		})
	}
}

func TestDecimalCanonicalForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{1.5, "1.5"},
		{-2.500, "-2.5"},
		{100, "100.0"},
	}
	for _, tt := range tests {
		n := Decimal(tt.in)
		if n.String() != tt.want {
			t.Errorf("Decimal(%v) = %q, want %q", tt.in, n.String(), tt.want)
		}
		if dt, _ := n.Datatype(); dt.String() != xsdDecimal {
			t.Errorf("Decimal(%v) datatype = %q, want xsd:decimal", tt.in, dt.String())
		}
	}
}

func TestDoubleCanonicalForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0E0"},
		{100, "1.0E2"},
		{0.001, "1.0E-3"},
	}
	for _, tt := range tests {
		n := Double(tt.in)
		if n.String() != tt.want {
			t.Errorf("Double(%v) = %q, want %q", tt.in, n.String(), tt.want)
		}
	}
}

func TestDoubleSpecialValues(t *testing.T) {
	t.Parallel()
	if got := Double(math.NaN()).String(); got != "NaN" {
		t.Errorf("Double(NaN) = %q, want NaN", got)
	}
	if got := Double(math.Inf(1)).String(); got != "INF" {
		t.Errorf("Double(+Inf) = %q, want INF", got)
	}
	if got := Double(math.Inf(-1)).String(); got != "-INF" {
		t.Errorf("Double(-Inf) = %q, want -INF", got)
	}
}

func TestValueRoundTrip(t *testing.T) {
	t.Parallel()
	n := Integer(42)
	v, ok := n.Value()
	if !ok || v.Kind != ValueLong || v.Long != 42 {
		t.Fatalf("unexpected value: %+v, ok=%v", v, ok)
	}

	b := Boolean(true)
	v, ok = b.Value()
	if !ok || v.Kind != ValueBool || !v.Bool {
		t.Fatalf("unexpected value: %+v, ok=%v", v, ok)
	}
}

func TestValueAsLossy(t *testing.T) {
	t.Parallel()
	n := Decimal(2.7)
	if _, err := n.ValueAs(ValueLong, false); err == nil {
		t.Fatal("expected exact integer coercion of 2.7 to fail")
	}
	v, err := n.ValueAs(ValueLong, true)
	if err != nil {
		t.Fatalf("lossy coercion should succeed: %v", err)
	}
	if v.Long != 2 {
		t.Fatalf("expected truncation to 2, got %d", v.Long)
	}
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()
	n := Hex([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if n.String() != "DEADBEEF" {
		t.Fatalf("unexpected hex encoding: %q", n.String())
	}
	buf := make([]byte, n.DecodeSize())
	written, err := n.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if written != 4 || buf[0] != 0xDE {
		t.Fatalf("unexpected decode result: %v", buf[:written])
	}
}

func TestDecodeOverflow(t *testing.T) {
	t.Parallel()
	n := Hex([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	_, err := n.Decode(make([]byte, 1))
	if err == nil {
		t.Fatal("expected overflow error for undersized buffer")
	}
}
