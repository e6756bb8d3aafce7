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

package writer

import (
	"strings"
	"testing"

	"github.com/jplu/rio/diag"
	"github.com/jplu/rio/event"
	"github.com/jplu/rio/node"
)

func mustURI(t *testing.T, value string) node.Node {
	t.Helper()
	n, err := node.NewURI(value)
	if err != nil {
		t.Fatalf("NewURI(%q): %v", value, err)
	}
	return n
}

func mustBlank(t *testing.T, label string) node.Node {
	t.Helper()
	n, err := node.NewBlank(label)
	if err != nil {
		t.Fatalf("NewBlank(%q): %v", label, err)
	}
	return n
}

func mustLiteral(t *testing.T, value string, flags node.Flags, meta string) node.Node {
	t.Helper()
	n, err := node.NewLiteral(value, flags, meta)
	if err != nil {
		t.Fatalf("NewLiteral(%q): %v", value, err)
	}
	return n
}

func render(t *testing.T, syntax Syntax, opts []Option, body func(wr *Writer) error) string {
	t.Helper()
	var buf strings.Builder
	wr := New(syntax, opts...)
	if err := wr.Start(&buf, 256); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := body(wr); err != nil {
		t.Fatalf("body: %v", err)
	}
	if err := wr.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return buf.String()
}

func TestWriterTurtleSimpleTriple(t *testing.T) {
	t.Parallel()
	out := render(t, Turtle, nil, func(wr *Writer) error {
		if err := wr.Prefix("ex", mustURI(t, "http://example.org/"), diag.Caret{}); err != nil {
			return err
		}
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/s"),
			Predicate: mustURI(t, "http://example.org/p"),
			Object:    mustURI(t, "http://example.org/o"),
		})
	})
	if !strings.Contains(out, "@prefix ex: <http://example.org/> .\n") {
		t.Errorf("missing prefix directive: %q", out)
	}
	if !strings.Contains(out, "ex:s ex:p ex:o .\n") {
		t.Errorf("missing abbreviated triple: %q", out)
	}
}

func TestWriterPredicateObjectListFolding(t *testing.T) {
	t.Parallel()
	s := mustURI(t, "http://example.org/s")
	p := mustURI(t, "http://example.org/p")
	out := render(t, Turtle, nil, func(wr *Writer) error {
		if err := wr.Prefix("ex", mustURI(t, "http://example.org/"), diag.Caret{}); err != nil {
			return err
		}
		stmts := []event.Statement{
			{Subject: s, Predicate: p, Object: mustURI(t, "http://example.org/o1")},
			{Subject: s, Predicate: p, Object: mustURI(t, "http://example.org/o2")},
			{Subject: s, Predicate: mustURI(t, "http://example.org/q"), Object: mustURI(t, "http://example.org/o3")},
		}
		for _, st := range stmts {
			if err := wr.Statement(st); err != nil {
				return err
			}
		}
		return nil
	})
	if !strings.Contains(out, "ex:s ex:p ex:o1, ex:o2 ;\n") {
		t.Errorf("expected folded predicate-object list, got %q", out)
	}
	if !strings.Contains(out, "ex:q ex:o3 .\n") {
		t.Errorf("expected closing predicate, got %q", out)
	}
}

func TestWriterAnonymousObjectBracket(t *testing.T) {
	t.Parallel()
	s := mustURI(t, "http://example.org/s")
	p := mustURI(t, "http://example.org/p")
	blank := mustBlank(t, "b0")
	out := render(t, Turtle, nil, func(wr *Writer) error {
		if err := wr.Prefix("ex", mustURI(t, "http://example.org/"), diag.Caret{}); err != nil {
			return err
		}
		if err := wr.Statement(event.Statement{Subject: s, Predicate: p, Object: blank, Flags: event.AnonO}); err != nil {
			return err
		}
		if err := wr.Statement(event.Statement{Subject: blank, Predicate: mustURI(t, "http://example.org/q"), Object: mustURI(t, "http://example.org/v")}); err != nil {
			return err
		}
		return wr.End(blank, diag.Caret{})
	})
	if !strings.Contains(out, "ex:s ex:p [\n") {
		t.Errorf("expected opened bracket, got %q", out)
	}
	if !strings.Contains(out, "ex:q ex:v") {
		t.Errorf("expected inner statement, got %q", out)
	}
	if !strings.HasSuffix(out, "] .\n") {
		t.Errorf("expected closing bracket, got %q", out)
	}
}

func TestWriterTriGGraphBlock(t *testing.T) {
	t.Parallel()
	g := mustURI(t, "http://example.org/g")
	out := render(t, TriG, nil, func(wr *Writer) error {
		if err := wr.Prefix("ex", mustURI(t, "http://example.org/"), diag.Caret{}); err != nil {
			return err
		}
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/s"),
			Predicate: mustURI(t, "http://example.org/p"),
			Object:    mustURI(t, "http://example.org/o"),
			Graph:     &g,
		})
	})
	if !strings.Contains(out, "ex:g {\n") {
		t.Errorf("expected opened graph block, got %q", out)
	}
	if !strings.Contains(out, "}\n") {
		t.Errorf("expected closed graph block, got %q", out)
	}
}

func TestWriterNTriplesFlatLine(t *testing.T) {
	t.Parallel()
	out := render(t, NTriples, nil, func(wr *Writer) error {
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/s"),
			Predicate: mustURI(t, "http://example.org/p"),
			Object:    mustLiteral(t, "hello", 0, ""),
		})
	})
	want := "<http://example.org/s> <http://example.org/p> \"hello\" .\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestWriterNQuadsFlatLineWithGraph(t *testing.T) {
	t.Parallel()
	g := mustURI(t, "http://example.org/g")
	out := render(t, NQuads, nil, func(wr *Writer) error {
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/s"),
			Predicate: mustURI(t, "http://example.org/p"),
			Object:    mustURI(t, "http://example.org/o"),
			Graph:     &g,
		})
	})
	want := "<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestWriterRdfTypeShortcut(t *testing.T) {
	t.Parallel()
	out := render(t, Turtle, nil, func(wr *Writer) error {
		if err := wr.Prefix("ex", mustURI(t, "http://example.org/"), diag.Caret{}); err != nil {
			return err
		}
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/s"),
			Predicate: mustURI(t, node.RDFType),
			Object:    mustURI(t, "http://example.org/Thing"),
		})
	})
	if !strings.Contains(out, "ex:s a ex:Thing .\n") {
		t.Errorf("expected 'a' shortcut, got %q", out)
	}
}

func TestWriterWithRdfTypeDisablesShortcut(t *testing.T) {
	t.Parallel()
	out := render(t, Turtle, []Option{WithRdfType()}, func(wr *Writer) error {
		if err := wr.Prefix("rdf", mustURI(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#"), diag.Caret{}); err != nil {
			return err
		}
		if err := wr.Prefix("ex", mustURI(t, "http://example.org/"), diag.Caret{}); err != nil {
			return err
		}
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/s"),
			Predicate: mustURI(t, node.RDFType),
			Object:    mustURI(t, "http://example.org/Thing"),
		})
	})
	if strings.Contains(out, " a ex:Thing") {
		t.Errorf("expected no 'a' shortcut with WithRdfType, got %q", out)
	}
	if !strings.Contains(out, "rdf:type ex:Thing") {
		t.Errorf("expected rdf:type written, got %q", out)
	}
}

func TestWriterExpandedNeverShortens(t *testing.T) {
	t.Parallel()
	out := render(t, Turtle, []Option{WithExpanded()}, func(wr *Writer) error {
		if err := wr.Prefix("ex", mustURI(t, "http://example.org/"), diag.Caret{}); err != nil {
			return err
		}
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/s"),
			Predicate: mustURI(t, "http://example.org/p"),
			Object:    mustURI(t, "http://example.org/o"),
		})
	})
	if strings.Contains(out, "ex:s") {
		t.Errorf("expected no prefixed names with WithExpanded, got %q", out)
	}
	if !strings.Contains(out, "<http://example.org/s>") {
		t.Errorf("expected full uri form, got %q", out)
	}
}

func TestWriterContextualSuppressesDirectives(t *testing.T) {
	t.Parallel()
	out := render(t, Turtle, []Option{WithContextual()}, func(wr *Writer) error {
		if err := wr.Prefix("ex", mustURI(t, "http://example.org/"), diag.Caret{}); err != nil {
			return err
		}
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/s"),
			Predicate: mustURI(t, "http://example.org/p"),
			Object:    mustURI(t, "http://example.org/o"),
		})
	})
	if strings.Contains(out, "@prefix") {
		t.Errorf("expected no @prefix directive with WithContextual, got %q", out)
	}
	if !strings.Contains(out, "ex:s ex:p ex:o .\n") {
		t.Errorf("expected prefix still usable for shortening, got %q", out)
	}
}

func TestWriterRootRelativeURI(t *testing.T) {
	t.Parallel()
	out := render(t, Turtle, nil, func(wr *Writer) error {
		if err := wr.Base(mustURI(t, "http://example.org/dir/"), diag.Caret{}); err != nil {
			return err
		}
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/dir/s"),
			Predicate: mustURI(t, "http://example.org/dir/p"),
			Object:    mustURI(t, "http://example.org/dir/o"),
		})
	})
	if !strings.Contains(out, "<s> <p> <o> .\n") {
		t.Errorf("expected root-relative output, got %q", out)
	}
}

func TestWriterVerbatimKeepsAbsoluteURI(t *testing.T) {
	t.Parallel()
	out := render(t, Turtle, []Option{WithVerbatim()}, func(wr *Writer) error {
		if err := wr.Base(mustURI(t, "http://example.org/dir/"), diag.Caret{}); err != nil {
			return err
		}
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/dir/s"),
			Predicate: mustURI(t, "http://example.org/dir/p"),
			Object:    mustURI(t, "http://example.org/dir/o"),
		})
	})
	if !strings.Contains(out, "<http://example.org/dir/s>") {
		t.Errorf("expected absolute uri kept verbatim, got %q", out)
	}
}

func TestWriterLongLiteralQuoteEscaping(t *testing.T) {
	t.Parallel()
	out := render(t, Turtle, nil, func(wr *Writer) error {
		if err := wr.Prefix("ex", mustURI(t, "http://example.org/"), diag.Caret{}); err != nil {
			return err
		}
		return wr.Statement(event.Statement{
			Subject:   mustURI(t, "http://example.org/s"),
			Predicate: mustURI(t, "http://example.org/p"),
			Object:    mustLiteral(t, `a"""b`, node.IsLongLiteral, ""),
		})
	})
	if !strings.Contains(out, `"""a""\"b"""`) {
		t.Errorf("expected escaped triple-quote run, got %q", out)
	}
}
