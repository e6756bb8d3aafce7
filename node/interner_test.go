package node

import "testing"

func TestInternReturnsPointerEqualForEqualNodes(t *testing.T) {
	t.Parallel()
	s := NewNodes()
	a, err := s.Uri("http://example.org/a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Uri("http://example.org/a")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("expected value-equal interned uris to be pointer-equal")
	}
	if s.Size() != 1 {
		t.Fatalf("expected one distinct entry, got %d", s.Size())
	}
}

func TestTokenMatchesIntern(t *testing.T) {
	t.Parallel()
	s := NewNodes()
	n, err := NewBlank("b1")
	if err != nil {
		t.Fatal(err)
	}
	interned := s.Intern(n)
	token, err := s.Token(Blank, "b1")
	if err != nil {
		t.Fatal(err)
	}
	if interned != token {
		t.Fatal("expected Token to find the same canonical entry as Intern")
	}
}

func TestDerefEvictsAtZero(t *testing.T) {
	t.Parallel()
	s := NewNodes()
	a, err := s.Blank("x")
	if err != nil {
		t.Fatal(err)
	}
	s.Deref(a)
	if s.Size() != 0 {
		t.Fatalf("expected eviction at refcount zero, size=%d", s.Size())
	}
	if _, ok := s.Get(*a); ok {
		t.Fatal("expected evicted node to be absent")
	}
}

func TestDerefKeepsSharedEntryAlive(t *testing.T) {
	t.Parallel()
	s := NewNodes()
	a, err := s.Blank("shared")
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Blank("shared")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("expected pointer-equal entries")
	}
	s.Deref(a)
	if s.Size() != 1 {
		t.Fatal("expected entry to survive one deref out of two refs")
	}
	s.Deref(b)
	if s.Size() != 0 {
		t.Fatal("expected entry to be evicted after the second deref")
	}
}

func TestGetWithoutInsert(t *testing.T) {
	t.Parallel()
	s := NewNodes()
	n, err := NewURI("http://example.org/missing")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get(n); ok {
		t.Fatal("expected Get to report absent before any intern")
	}
	if s.Size() != 0 {
		t.Fatal("Get must not insert")
	}
}
