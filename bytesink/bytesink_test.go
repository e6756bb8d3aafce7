package bytesink

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteBuffersUntilClose(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := New(&buf, 1024)
	if _, err := s.WriteString("hello "); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Write([]byte("world")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello world" {
		t.Fatalf("got %q", buf.String())
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorWrapsBadWrite(t *testing.T) {
	t.Parallel()
	s := New(errWriter{}, 1)
	if _, err := s.WriteString("x"); err != nil {
		t.Fatalf("short write should stay buffered, not error yet: %v", err)
	}
	if err := s.Close(); err == nil {
		t.Fatal("expected the flush on Close to surface the underlying writer's error")
	}
}
