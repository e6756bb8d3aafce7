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

// Package reader implements a streaming, pull-based parser for Turtle,
// TriG, N-Triples and N-Quads that emits events into an event.Sink.
//
// A Reader is single-threaded and synchronous: it blocks only on the
// underlying byte source's Read. Nested constructs ([...] blank nodes,
// (...) collections, TriG graph blocks) push bookkeeping frames onto a
// bounded internal/frames.Stack rather than growing unbounded; long
// literal and URI bytes accumulate in a bounded internal/arena.Arena.
// Control flow for nested terms still uses ordinary Go function calls
// (idiomatic recursive descent), but every such call is preceded by a
// Stack.Push that enforces the same depth bound frames.Stack reports, so
// pathological nesting fails with status.StackOverflow instead of
// exhausting the Go call stack.
package reader

import (
	"fmt"
	"io"

	"github.com/jplu/rio/bytesource"
	"github.com/jplu/rio/diag"
	"github.com/jplu/rio/env"
	"github.com/jplu/rio/internal/arena"
	"github.com/jplu/rio/internal/frames"
	"github.com/jplu/rio/event"
	"github.com/jplu/rio/node"
	"github.com/jplu/rio/status"
)

// Reader parses one document of a fixed Syntax, emitting events into a
// Sink.
type Reader struct {
	syntax Syntax
	sink   event.Sink
	cfg    config

	src    *bytesource.Source
	env    *env.Env
	frames *frames.Stack
	arena  *arena.Arena

	started  bool
	finished bool

	generation   int // bumped by Start, prefixed onto input blank labels
	genCounter   int // generated anon/collection label counter
	blankSeen    map[string]bool
	currentGraph *node.Node // nil = default graph (Turtle, N-Triples, top-level TriG)

	prevSubject   *node.Node
	prevPredicate *node.Node
	havePrev      bool
}

// New builds a Reader for syntax, emitting events into sink. The Reader
// is not ready to read until Start is called.
func New(syntax Syntax, sink event.Sink, opts ...Option) *Reader {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Reader{
		syntax: syntax,
		sink:   sink,
		cfg:    cfg,
		env:    env.New(),
		frames: frames.New(cfg.stackSize),
		arena:  arena.New(cfg.arenaSize),
	}
}

// Start prepares the Reader to read from r, setting the caret to (1,1)
// and bumping the document-unique blank-node prefix. blockSize configures
// the underlying byte source's page size.
func (rd *Reader) Start(r io.Reader, name string, blockSize int) error {
	if rd.started && !rd.finished {
		return status.New(status.BadCall, "Start called on a Reader that is already reading")
	}
	rd.src = bytesource.New(r, name, blockSize)
	rd.frames.Reset()
	rd.arena.Reset()
	rd.generation++
	rd.genCounter = 0
	rd.blankSeen = make(map[string]bool)
	rd.currentGraph = nil
	rd.havePrev = false
	rd.started = true
	rd.finished = false
	return nil
}

// ReadChunk reads one top-level construct: a directive, a graph-block
// open/close, or a full statement (including any abbreviated interior
// statements it implies). It returns status.Success after emitting
// events, status.Failure at end of input, or an error Code on failure.
func (rd *Reader) ReadChunk() (status.Code, error) {
	if !rd.started {
		return status.BadCall, status.New(status.BadCall, "ReadChunk called before Start")
	}
	if err := rd.skipWSAndComments(); err != nil {
		return status.CodeOf(err), err
	}
	b, ok, err := rd.peekByte()
	if err != nil {
		return status.CodeOf(err), err
	}
	if !ok {
		if rd.frames.Len() > 0 {
			return status.BadSyntax, rd.errorf(status.BadSyntax, "unexpected end of input with %d open context(s)", rd.frames.Len())
		}
		return status.Failure, nil
	}

	if rd.syntax.hasDirectives() {
		if err := rd.readTopLevel(b); err != nil {
			return status.CodeOf(err), err
		}
		return status.Success, nil
	}
	if err := rd.readLineStatement(); err != nil {
		return status.CodeOf(err), err
	}
	return status.Success, nil
}

// ReadDocument calls ReadChunk until it reports Failure or an error.
func (rd *Reader) ReadDocument() error {
	for {
		code, err := rd.ReadChunk()
		if err != nil {
			return err
		}
		if code == status.Failure {
			return nil
		}
	}
}

// SkipUntilByte advances the byte source until b is found (and consumed)
// or EOF, for lax-mode recovery after a malformed statement.
func (rd *Reader) SkipUntilByte(b byte) error {
	for {
		c, ok, err := rd.nextByte()
		if err != nil {
			return err
		}
		if !ok || c == b {
			return nil
		}
	}
}

// Finish discards any frames still on the stack, resets the arena, and
// closes the byte source. No End events are emitted for discarded frames.
func (rd *Reader) Finish() error {
	if !rd.started {
		return nil
	}
	rd.frames.Reset()
	rd.arena.Reset()
	rd.finished = true
	err := rd.src.Close()
	rd.started = false
	return err
}

func (rd *Reader) peekByte() (byte, bool, error) {
	return rd.src.Peek()
}

func (rd *Reader) nextByte() (byte, bool, error) {
	return rd.src.Next()
}

// caret returns the current read position for diagnostics.
func (rd *Reader) caret() diag.Caret {
	return rd.src.Caret()
}

// errorf builds a status.Error and reports it, tagged with the current
// caret, to the configured diag.Handler (with warning severity in lax
// mode, error severity otherwise). It always returns an error: the
// handler's own error when the handler returns one, else the status.Error.
func (rd *Reader) errorf(code status.Code, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if rd.cfg.diagHandler != nil {
		sev := diag.SeverityError
		if rd.cfg.lax {
			sev = diag.SeverityWarning
		}
		if herr := diag.Emit(rd.cfg.diagHandler, diag.Record{
			Severity: sev,
			Code:     code,
			Message:  msg,
			Caret:    rd.caret(),
		}); herr != nil {
			return herr
		}
	}
	return status.New(code, msg)
}

// internNode routes n through the configured interner, if any.
func (rd *Reader) internNode(n node.Node) node.Node {
	if rd.cfg.interner == nil {
		return n
	}
	return *rd.cfg.interner.Intern(n)
}

// pushFrame bounds nesting depth per spec.md §4.5.3.
func (rd *Reader) pushFrame(f frames.Frame) error {
	if err := rd.frames.Push(f); err != nil {
		return rd.errorf(status.StackOverflow, "nesting too deep")
	}
	return nil
}
