package event

import (
	"testing"

	"github.com/jplu/rio/diag"
	"github.com/jplu/rio/node"
)

func mustURI(t *testing.T, s string) node.Node {
	t.Helper()
	n, err := node.NewURI(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestRecorderCapturesInOrder(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	s := mustURI(t, "http://example.org/s")
	p := mustURI(t, "http://example.org/p")
	o := mustURI(t, "http://example.org/o")

	if err := r.Base(s, diag.Caret{Line: 1, Column: 1}); err != nil {
		t.Fatal(err)
	}
	if err := r.Prefix("ex", s, diag.Caret{Line: 1, Column: 1}); err != nil {
		t.Fatal(err)
	}
	if err := r.Statement(Statement{Subject: s, Predicate: p, Object: o}); err != nil {
		t.Fatal(err)
	}

	if len(r.Events) != 3 {
		t.Fatalf("expected 3 recorded events, got %d", len(r.Events))
	}
	if r.Events[0].Kind != KindBase || r.Events[1].Kind != KindPrefix || r.Events[2].Kind != KindStatement {
		t.Fatalf("unexpected event kinds: %+v", r.Events)
	}
	stmts := r.Statements()
	if len(stmts) != 1 || !node.Equal(stmts[0].Subject, s) {
		t.Fatalf("unexpected statements: %+v", stmts)
	}
}

func TestFilterDropsStatements(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	kept := mustURI(t, "http://example.org/kept")
	dropped := mustURI(t, "http://example.org/dropped")
	p := mustURI(t, "http://example.org/p")
	o := mustURI(t, "http://example.org/o")

	f := NewFilter(r, func(s Statement) bool {
		return node.Equal(s.Subject, kept)
	})

	if err := f.Statement(Statement{Subject: kept, Predicate: p, Object: o}); err != nil {
		t.Fatal(err)
	}
	if err := f.Statement(Statement{Subject: dropped, Predicate: p, Object: o}); err != nil {
		t.Fatal(err)
	}

	stmts := r.Statements()
	if len(stmts) != 1 || !node.Equal(stmts[0].Subject, kept) {
		t.Fatalf("expected only the kept statement to pass through, got %+v", stmts)
	}
}

func TestFilterPassesBasePrefixEndUnconditionally(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	f := NewFilter(r, func(Statement) bool { return false })
	n := mustURI(t, "http://example.org/n")
	if err := f.Base(n, diag.Caret{}); err != nil {
		t.Fatal(err)
	}
	if err := f.Prefix("ex", n, diag.Caret{}); err != nil {
		t.Fatal(err)
	}
	if err := f.End(n, diag.Caret{}); err != nil {
		t.Fatal(err)
	}
	if len(r.Events) != 3 {
		t.Fatalf("expected Base, Prefix and End to pass through even though Keep always rejects, got %d events", len(r.Events))
	}
}
