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

package reader

import (
	"strings"
	"testing"

	"github.com/jplu/rio/event"
)

func parseAll(t *testing.T, syntax Syntax, input string, opts ...Option) *event.Recorder {
	t.Helper()
	rec := event.NewRecorder()
	rd := New(syntax, rec, opts...)
	if err := rd.Start(strings.NewReader(input), "<test>", 256); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := rd.ReadDocument(); err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if err := rd.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return rec
}

func TestTurtleSimpleTriple(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, Turtle, `@prefix ex: <http://example.org/> .
ex:s ex:p ex:o .`)
	stmts := rec.Statements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	s := stmts[0]
	if s.Subject.String() != "http://example.org/s" {
		t.Errorf("subject = %q", s.Subject.String())
	}
	if s.Predicate.String() != "http://example.org/p" {
		t.Errorf("predicate = %q", s.Predicate.String())
	}
	if s.Object.String() != "http://example.org/o" {
		t.Errorf("object = %q", s.Object.String())
	}
	if s.Graph != nil {
		t.Errorf("expected no graph, got %v", s.Graph)
	}
}

func TestTurtlePredicateObjectLists(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, Turtle, `@prefix ex: <http://example.org/> .
ex:s ex:p1 ex:o1 , ex:o2 ; ex:p2 ex:o3 .`)
	stmts := rec.Statements()
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(stmts))
	}
	if stmts[0].Flags&event.TerseS != 0 {
		t.Errorf("first statement should not be terse: flags=%v", stmts[0].Flags)
	}
	if stmts[1].Flags&event.TerseS == 0 || stmts[1].Flags&event.TerseO == 0 {
		t.Errorf("second statement (shared subject+predicate) should have TerseS|TerseO: flags=%v", stmts[1].Flags)
	}
	if stmts[2].Flags&event.TerseS == 0 {
		t.Errorf("third statement (shared subject) should have TerseS: flags=%v", stmts[2].Flags)
	}
	if stmts[2].Flags&event.TerseO != 0 {
		t.Errorf("third statement starts a new predicate, should not have TerseO: flags=%v", stmts[2].Flags)
	}
}

func TestTurtleAnonymousNode(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, Turtle, `@prefix ex: <http://example.org/> .
ex:s ex:p [ ex:q ex:r ] .`)
	stmts := rec.Statements()
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	if stmts[0].Flags&event.AnonO == 0 {
		t.Errorf("statement with the anonymous object should carry AnonO: flags=%v", stmts[0].Flags)
	}
	if stmts[0].Object.String() != stmts[1].Subject.String() {
		t.Errorf("anon node identity mismatch: %q vs %q", stmts[0].Object.String(), stmts[1].Subject.String())
	}
	endEvents := 0
	for _, e := range rec.Events {
		if e.Kind == event.KindEnd {
			endEvents++
		}
	}
	if endEvents != 1 {
		t.Errorf("expected 1 End event, got %d", endEvents)
	}
}

func TestTurtleEmptyAnonymousNode(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, Turtle, `@prefix ex: <http://example.org/> .
[] ex:p ex:o .`)
	stmts := rec.Statements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if stmts[0].Flags&event.EmptyS == 0 {
		t.Errorf("expected EmptyS flag, got %v", stmts[0].Flags)
	}
}

func TestTurtleCollection(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, Turtle, `@prefix ex: <http://example.org/> .
ex:s ex:p ( ex:a ex:b ) .`)
	stmts := rec.Statements()
	// ex:s ex:p _:head, _:head rdf:first ex:a, _:head rdf:rest _:tail,
	// _:tail rdf:first ex:b, _:tail rdf:rest rdf:nil
	if len(stmts) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(stmts))
	}
	last := stmts[len(stmts)-1]
	if last.Object.String() != "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil" {
		t.Errorf("expected collection to terminate in rdf:nil, got %q", last.Object.String())
	}
}

func TestTurtleNumericLiteralPreservesLexicalForm(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, Turtle, `@prefix ex: <http://example.org/> .
ex:s ex:p 1.500 .`)
	stmts := rec.Statements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if stmts[0].Object.String() != "1.500" {
		t.Errorf("expected raw lexical form 1.500 preserved, got %q", stmts[0].Object.String())
	}
}

func TestTriGGraphBlock(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, TriG, `@prefix ex: <http://example.org/> .
ex:g { ex:s ex:p ex:o . }`)
	stmts := rec.Statements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if stmts[0].Graph == nil {
		t.Fatal("expected a graph name to be set")
	}
	if stmts[0].Graph.String() != "http://example.org/g" {
		t.Errorf("graph = %q", stmts[0].Graph.String())
	}
}

func TestNTriplesLine(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, NTriples, `<http://example.org/s> <http://example.org/p> "hello" .`)
	stmts := rec.Statements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if stmts[0].Object.String() != "hello" {
		t.Errorf("object = %q", stmts[0].Object.String())
	}
	if stmts[0].Graph != nil {
		t.Errorf("n-triples statement should carry no graph")
	}
}

func TestNQuadsLineWithGraph(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, NQuads, `<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .`)
	stmts := rec.Statements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if stmts[0].Graph == nil || stmts[0].Graph.String() != "http://example.org/g" {
		t.Errorf("graph = %v", stmts[0].Graph)
	}
}

func TestNTriplesBlankNodeObject(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, NTriples, `_:a <http://example.org/p> _:b .`)
	stmts := rec.Statements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if stmts[0].Subject.String() == stmts[0].Object.String() {
		t.Errorf("distinct blank labels should not collide: %q", stmts[0].Subject.String())
	}
}

func TestRelativeIRIWithNoBaseFails(t *testing.T) {
	t.Parallel()
	rec := event.NewRecorder()
	rd := New(Turtle, rec)
	if err := rd.Start(strings.NewReader(`@prefix ex: <http://example.org/> .
<rel> ex:p ex:o .`), "<test>", 256); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := rd.ReadDocument(); err == nil {
		t.Fatal("expected an error resolving a relative iri with no base uri set")
	}
}

func TestRelativeModeKeepsCurieVerbatim(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, Turtle, `ex:s ex:p ex:o .`, WithRelative())
	stmts := rec.Statements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if stmts[0].Subject.String() != "ex:s" {
		t.Errorf("expected verbatim curie in relative mode, got %q", stmts[0].Subject.String())
	}
}

func TestBaseDirectiveResolvesRelativeIRI(t *testing.T) {
	t.Parallel()
	rec := parseAll(t, Turtle, `@base <http://example.org/dir/> .
<s> <p> <o> .`)
	stmts := rec.Statements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if stmts[0].Subject.String() != "http://example.org/dir/s" {
		t.Errorf("subject = %q", stmts[0].Subject.String())
	}
}

func TestStackOverflowOnDeepNesting(t *testing.T) {
	t.Parallel()
	rec := event.NewRecorder()
	rd := New(Turtle, rec, WithStackSize(2))
	deep := "@prefix ex: <http://example.org/> .\nex:s ex:p " + strings.Repeat("[ ex:p ", 8) + "ex:o" + strings.Repeat(" ]", 8) + " ."
	if err := rd.Start(strings.NewReader(deep), "<test>", 256); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := rd.ReadDocument(); err == nil {
		t.Fatal("expected a stack overflow error for deeply nested anonymous nodes")
	}
}
