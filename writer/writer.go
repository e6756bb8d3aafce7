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

// Package writer implements a streaming pretty-printer for Turtle, TriG,
// N-Triples and N-Quads: it consumes the same event shapes the reader
// package produces (event.Sink's Base/Prefix/Statement/End) and renders
// them as bytes through a bytesink.Sink.
//
// Turtle/TriG output folds consecutive statements sharing a subject (and
// predicate) into "," / ";" abbreviated form by comparing each incoming
// statement against the top of a bounded bracket-context stack, per
// spec.md §4.6.2 — the writer computes this comparison itself rather than
// trusting a producer-supplied abbreviation hint, so it renders correctly
// from any event.Sink-shaped source, not only this module's own reader.
// N-Triples/N-Quads output never abbreviates: one full statement per
// line, always absolute URIs, matching those formats' grammars.
package writer

import (
	"io"

	"github.com/jplu/rio/bytesink"
	"github.com/jplu/rio/diag"
	"github.com/jplu/rio/env"
	"github.com/jplu/rio/event"
	"github.com/jplu/rio/internal/frames"
	"github.com/jplu/rio/node"
	"github.com/jplu/rio/status"
)

// wrContext is one entry of the writer's bracket-context stack: the
// subject/predicate currently in scope, and (for a non-root context) the
// blank node and bracket byte that opened it.
type wrContext struct {
	subject      node.Node
	hasSubject   bool
	predicate    node.Node
	hasPredicate bool

	blank    node.Node
	hasBlank bool
	open     byte // '[' or '(' for a bracket context, 0 for the root
}

// Writer renders an event stream as one of the four textual RDF
// syntaxes.
type Writer struct {
	syntax Syntax
	cfg    config

	sink   *bytesink.Sink
	env    *env.Env
	frames *frames.Stack
	ctx    []wrContext

	currentGraph *node.Node
	graphOpen    bool

	started bool
}

// New builds a Writer for syntax. It is not ready to write until Start
// is called.
func New(syntax Syntax, opts ...Option) *Writer {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Writer{
		syntax: syntax,
		cfg:    cfg,
		env:    env.New(),
		frames: frames.New(cfg.stackSize),
	}
}

// Start prepares the Writer to write into w. blockSize configures the
// underlying byte sink's buffering.
func (wr *Writer) Start(w io.Writer, blockSize int) error {
	wr.sink = bytesink.New(w, blockSize)
	wr.frames.Reset()
	wr.ctx = []wrContext{{}}
	wr.currentGraph = nil
	wr.graphOpen = false
	wr.started = true
	return nil
}

// Finish flushes and closes the underlying byte sink, first terminating
// the last open statement with " ." and closing any trailing open graph
// block.
func (wr *Writer) Finish() error {
	if !wr.started {
		return nil
	}
	if wr.top().hasSubject {
		if err := wr.writeString(" .\n"); err != nil {
			return err
		}
		wr.top().hasSubject = false
	}
	if wr.graphOpen {
		if err := wr.writeString("}\n"); err != nil {
			return err
		}
		wr.graphOpen = false
	}
	wr.started = false
	return wr.sink.Close()
}

func (wr *Writer) writeString(s string) error {
	_, err := wr.sink.WriteString(s)
	return err
}

func (wr *Writer) writeByte(b byte) error {
	return wr.sink.WriteByte(b)
}

func (wr *Writer) top() *wrContext {
	return &wr.ctx[len(wr.ctx)-1]
}

func (wr *Writer) indentLevel() int {
	return len(wr.ctx) - 1
}

func (wr *Writer) writeIndent() error {
	if wr.cfg.terse {
		return nil
	}
	for i := 0; i < wr.indentLevel(); i++ {
		if err := wr.writeString(wr.cfg.indent); err != nil {
			return err
		}
	}
	return nil
}

// Base implements event.Sink: it records the URI as the writer's root
// for relative output and, unless Contextual, emits a "@base" directive.
func (wr *Writer) Base(uri node.Node, _ diag.Caret) error {
	if err := wr.env.SetBaseURI(uri.String()); err != nil {
		return status.Wrap(status.BadText, "invalid base uri", err)
	}
	if !wr.syntax.hasDirectives() || wr.cfg.contextual {
		return nil
	}
	if err := wr.writeString("@base <"); err != nil {
		return err
	}
	if err := wr.writeEscapedURI(uri.String()); err != nil {
		return err
	}
	return wr.writeString("> .\n")
}

// Prefix implements event.Sink: it records the binding for later URI
// shortening and, unless Contextual, emits a "@prefix" directive.
func (wr *Writer) Prefix(name string, uri node.Node, _ diag.Caret) error {
	if err := wr.env.SetPrefix(name, uri.String()); err != nil {
		return status.Wrap(status.BadText, "invalid prefix uri", err)
	}
	if !wr.syntax.hasDirectives() || wr.cfg.contextual {
		return nil
	}
	if err := wr.writeString("@prefix " + name + ": <"); err != nil {
		return err
	}
	if err := wr.writeEscapedURI(uri.String()); err != nil {
		return err
	}
	return wr.writeString("> .\n")
}

// End implements event.Sink: it closes the bracket context most recently
// opened for n, writing its closing bracket and popping the context.
func (wr *Writer) End(n node.Node, _ diag.Caret) error {
	if len(wr.ctx) < 2 {
		return status.New(status.BadWrite, "End event with no open bracket context")
	}
	top := wr.top()
	if !top.hasBlank || !node.Equal(top.blank, n) {
		return status.New(status.BadWrite, "End event does not match the innermost open bracket")
	}
	wr.frames.Pop()
	wr.ctx = wr.ctx[:len(wr.ctx)-1]
	if err := wr.writeIndent(); err != nil {
		return err
	}
	closing := byte(']')
	if top.open == '(' {
		closing = ')'
	}
	if err := wr.writeByte(closing); err != nil {
		return err
	}
	wr.top().hasPredicate = false
	return nil
}

// Statement implements event.Sink.
func (wr *Writer) Statement(s event.Statement) error {
	if !wr.syntax.hasDirectives() {
		return wr.writeFlatStatement(s)
	}
	return wr.writeAbbreviatedStatement(s)
}

// writeFlatStatement writes one N-Triples/N-Quads line: a full, always
// absolute, never-abbreviated statement.
func (wr *Writer) writeFlatStatement(s event.Statement) error {
	if err := wr.writeFlatTerm(s.Subject); err != nil {
		return err
	}
	if err := wr.writeByte(' '); err != nil {
		return err
	}
	if err := wr.writeFlatTerm(s.Predicate); err != nil {
		return err
	}
	if err := wr.writeByte(' '); err != nil {
		return err
	}
	if err := wr.writeFlatTerm(s.Object); err != nil {
		return err
	}
	if s.Graph != nil {
		if err := wr.writeByte(' '); err != nil {
			return err
		}
		if err := wr.writeFlatTerm(*s.Graph); err != nil {
			return err
		}
	}
	return wr.writeString(" .\n")
}

// writeAbbreviatedStatement writes one Turtle/TriG statement, folding it
// into "," / ";" form against the innermost open context's subject and
// predicate per spec.md §4.6.2.
func (wr *Writer) writeAbbreviatedStatement(s event.Statement) error {
	if err := wr.syncGraph(s.Graph); err != nil {
		return err
	}
	top := wr.top()
	subjectEmpty := s.Flags&event.EmptyS != 0
	sameSubject := top.hasSubject && !subjectEmpty && node.Equal(top.subject, s.Subject)

	if !sameSubject {
		if top.hasSubject {
			if err := wr.writeString(" .\n"); err != nil {
				return err
			}
		}
		if err := wr.writeIndent(); err != nil {
			return err
		}
		if subjectEmpty {
			if err := wr.writeString("[]"); err != nil {
				return err
			}
		} else if err := wr.writeSubjectTerm(s.Subject); err != nil {
			return err
		}
		top.subject, top.hasSubject = s.Subject, true
		top.hasPredicate = false
	}

	samePredicate := top.hasPredicate && node.Equal(top.predicate, s.Predicate)
	if samePredicate {
		if err := wr.writeString(", "); err != nil {
			return err
		}
	} else {
		if top.hasPredicate {
			if err := wr.writeString(" ;\n"); err != nil {
				return err
			}
			if err := wr.writeIndent(); err != nil {
				return err
			}
		} else if err := wr.writeByte(' '); err != nil {
			return err
		}
		if err := wr.writePredicateTerm(s.Predicate); err != nil {
			return err
		}
		if err := wr.writeByte(' '); err != nil {
			return err
		}
		top.predicate, top.hasPredicate = s.Predicate, true
	}

	switch {
	case s.Flags&event.AnonO != 0:
		return wr.pushBracket('[', s.Object)
	case s.Flags&event.ListO != 0:
		return wr.pushBracket('(', s.Object)
	default:
		return wr.writeObjectTerm(s.Object)
	}
}

// pushBracket writes open and pushes a new bracket context for blank,
// bounded by the writer's frame stack.
func (wr *Writer) pushBracket(open byte, blank node.Node) error {
	kind := frames.Anon
	if open == '(' {
		kind = frames.List
	}
	if err := wr.frames.Push(frames.Frame{Kind: kind}); err != nil {
		return status.New(status.StackOverflow, "writer bracket nesting too deep")
	}
	if err := wr.writeByte(open); err != nil {
		return err
	}
	if open == '[' && !wr.cfg.terse {
		if err := wr.writeByte('\n'); err != nil {
			return err
		}
	}
	// Inside "[...]" the blank node is the implicit subject of the
	// statements that follow, so it is never written out itself.
	wr.ctx = append(wr.ctx, wrContext{subject: blank, hasSubject: open == '[', blank: blank, hasBlank: true, open: open})
	return nil
}

// syncGraph closes a previously open TriG graph block and opens a new
// one if graph differs from the one currently in scope. N-Quads carries
// the graph as a trailing term instead (handled in writeFlatStatement)
// and never reaches here.
func (wr *Writer) syncGraph(graph *node.Node) error {
	if !wr.syntax.hasGraphs() {
		return nil
	}
	sameGraph := (graph == nil && wr.currentGraph == nil) ||
		(graph != nil && wr.currentGraph != nil && node.Equal(*graph, *wr.currentGraph))
	if sameGraph {
		return nil
	}
	if len(wr.ctx) > 1 {
		return status.New(status.BadWrite, "graph changed while a bracket context is still open")
	}
	if wr.top().hasSubject {
		if err := wr.writeString(" .\n"); err != nil {
			return err
		}
		wr.top().hasSubject = false
		wr.top().hasPredicate = false
	}
	if wr.graphOpen {
		if err := wr.writeString("}\n"); err != nil {
			return err
		}
		wr.graphOpen = false
	}
	wr.currentGraph = graph
	if graph == nil {
		return nil
	}
	if err := wr.writeSubjectTerm(*graph); err != nil {
		return err
	}
	if err := wr.writeString(" {\n"); err != nil {
		return err
	}
	wr.graphOpen = true
	return nil
}
