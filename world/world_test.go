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

package world

import (
	"strings"
	"testing"

	"github.com/jplu/rio/event"
	"github.com/jplu/rio/reader"
	"github.com/jplu/rio/writer"
)

func TestWorldNewReaderSharesInterner(t *testing.T) {
	t.Parallel()
	w := New(nil)
	rec := event.NewRecorder()
	rd := w.NewReader(reader.Turtle, rec)
	if err := rd.Start(strings.NewReader(`@prefix ex: <http://example.org/> .
ex:s ex:p ex:o .
ex:s ex:p ex:o2 .`), "<test>", 256); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := rd.ReadDocument(); err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if err := rd.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if w.Size() == 0 {
		t.Errorf("expected interner to hold nodes after a read, got size 0")
	}
	stmts := rec.Statements()
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
}

func TestWorldCopyTurtleToNTriples(t *testing.T) {
	t.Parallel()
	w := New(nil)
	src := strings.NewReader(`@prefix ex: <http://example.org/> .
ex:s ex:p ex:o .`)
	var out strings.Builder
	if err := Copy(w, reader.Turtle, src, "<test>", 256, writer.NTriples, &out); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	want := "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestWorldInternerDeduplicatesRepeatedNodes(t *testing.T) {
	t.Parallel()
	w := New(nil)
	rec := event.NewRecorder()
	rd := w.NewReader(reader.NTriples, rec)
	input := `<http://example.org/s> <http://example.org/p> <http://example.org/o> .
<http://example.org/s> <http://example.org/p> <http://example.org/o> .
`
	if err := rd.Start(strings.NewReader(input), "<test>", 256); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := rd.ReadDocument(); err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if err := rd.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	// Three distinct nodes (s, p, o) repeated across two identical
	// statements must intern to three entries, not six.
	if got := w.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
}
