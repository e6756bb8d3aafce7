package bytesource

import (
	"errors"
	"strings"
	"testing"
)

func TestNextAdvancesCaret(t *testing.T) {
	t.Parallel()
	s := New(strings.NewReader("ab\ncd"), "doc", 16)
	wantLines := []struct {
		b    byte
		line int
		col  int
	}{
		{'a', 1, 1},
		{'b', 1, 2},
		{'\n', 1, 3},
		{'c', 2, 1},
		{'d', 2, 2},
	}
	for _, want := range wantLines {
		caretBefore := s.Caret()
		if caretBefore.Line != want.line || caretBefore.Column != want.col {
			t.Fatalf("caret before reading %q = %+v, want line=%d col=%d", want.b, caretBefore, want.line, want.col)
		}
		b, ok, err := s.Next()
		if err != nil || !ok {
			t.Fatalf("Next(): b=%v ok=%v err=%v", b, ok, err)
		}
		if b != want.b {
			t.Fatalf("Next() = %q, want %q", b, want.b)
		}
	}
	if _, ok, err := s.Next(); ok || err != nil {
		t.Fatalf("expected EOF, got ok=%v err=%v", ok, err)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	t.Parallel()
	s := New(strings.NewReader("xy"), "", 16)
	b, ok, err := s.Peek()
	if err != nil || !ok || b != 'x' {
		t.Fatalf("Peek() = %q, ok=%v, err=%v", b, ok, err)
	}
	b, ok, err = s.Next()
	if err != nil || !ok || b != 'x' {
		t.Fatalf("Next() after Peek = %q, ok=%v, err=%v", b, ok, err)
	}
}

func TestContinuationByteDoesNotAdvanceColumn(t *testing.T) {
	t.Parallel()
	// "é" is 0xC3 0xA9 in UTF-8; the second byte is a continuation byte.
	s := New(strings.NewReader("\xc3\xa9"), "", 16)
	if _, _, err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if s.Caret().Column != 2 {
		t.Fatalf("expected column 2 after lead byte, got %d", s.Caret().Column)
	}
	if _, _, err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if s.Caret().Column != 2 {
		t.Fatalf("expected column to stay at 2 after continuation byte, got %d", s.Caret().Column)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestNextReportsNonEOFError(t *testing.T) {
	t.Parallel()
	s := New(errReader{}, "", 16)
	_, ok, err := s.Next()
	if ok || err == nil {
		t.Fatalf("expected error, got ok=%v err=%v", ok, err)
	}
	if !s.Error() {
		t.Fatal("expected Error() to report true after a read failure")
	}
}
