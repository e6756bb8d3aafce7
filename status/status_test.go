package status

import (
	"errors"
	"testing"
)

func TestCodeIsError(t *testing.T) {
	t.Parallel()
	if Success.IsError() {
		t.Fatal("Success must not be an error")
	}
	if Failure.IsError() {
		t.Fatal("Failure must not be an error")
	}
	if !BadSyntax.IsError() {
		t.Fatal("BadSyntax must be an error")
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	err := Wrap(BadUri, "", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be discoverable via errors.Is")
	}
	if err.Error() != "bad-uri: boom" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()
	if CodeOf(nil) != Success {
		t.Fatal("nil error should map to Success")
	}
	if CodeOf(New(StackOverflow, "too deep")) != StackOverflow {
		t.Fatal("expected StackOverflow to round-trip through CodeOf")
	}
	if CodeOf(errors.New("plain")) != Unknown {
		t.Fatal("plain errors should map to Unknown")
	}
}
