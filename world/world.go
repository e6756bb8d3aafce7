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

// Package world ties a node.Nodes interner to the readers and writers
// built against it, giving callers a single confinement boundary instead
// of threading an interner through every Reader/Writer construction by
// hand.
//
// A World is not safe for concurrent use: its interner carries no locks,
// so every Reader and Writer it builds must be confined to the goroutine
// that owns the World, matching the single-threaded confinement model the
// rest of this module follows.
package world

import (
	"io"

	"github.com/jplu/rio/event"
	"github.com/jplu/rio/node"
	"github.com/jplu/rio/reader"
	"github.com/jplu/rio/writer"
)

// Allocator is accepted for parity with hosts that model explicit memory
// arenas, but is never read: Go has no swappable allocator vtable, so a
// World's actual memory confinement is entirely a property of which
// goroutine holds a pointer to it, not of this parameter.
type Allocator interface{}

// World owns one interner shared by every Reader and Writer it builds.
type World struct {
	nodes *node.Nodes
}

// New builds a World backed by a fresh interner. alloc is accepted but
// unused; pass nil unless a caller-supplied value documents something
// about the confinement model worth keeping visible at call sites.
func New(alloc Allocator) *World {
	return &World{nodes: node.NewNodes()}
}

// Interner returns the World's shared node interner.
func (w *World) Interner() *node.Nodes {
	return w.nodes
}

// Size returns the number of distinct nodes interned so far.
func (w *World) Size() int {
	return w.nodes.Size()
}

// NewReader builds a Reader for syntax that interns every node it emits
// through this World's interner.
func (w *World) NewReader(syntax reader.Syntax, sink event.Sink, opts ...reader.Option) *reader.Reader {
	opts = append([]reader.Option{reader.WithInterner(w.nodes)}, opts...)
	return reader.New(syntax, sink, opts...)
}

// NewWriter builds a Writer for syntax. The writer does not itself intern
// nodes (it only ever renders ones a caller already holds), so this is a
// thin convenience constructor rather than one that wires the interner
// through; it exists so callers that already hold a World do not need to
// import the writer package separately for the common case.
func (w *World) NewWriter(syntax writer.Syntax, opts ...writer.Option) *writer.Writer {
	return writer.New(syntax, opts...)
}

// Copy writes every statement src emits to dst, translating between
// syntaxes (e.g. Turtle to N-Triples) without building an intermediate
// in-memory model: dst is driven directly as the event.Sink for a
// World-backed Reader over src.
func Copy(w *World, rsyntax reader.Syntax, src io.Reader, label string, blockSize int, wsyntax writer.Syntax, dst io.Writer, opts ...writer.Option) error {
	wr := writer.New(wsyntax, opts...)
	if err := wr.Start(dst, blockSize); err != nil {
		return err
	}
	rd := w.NewReader(rsyntax, wr)
	if err := rd.Start(src, label, blockSize); err != nil {
		return err
	}
	if err := rd.ReadDocument(); err != nil {
		return err
	}
	if err := rd.Finish(); err != nil {
		return err
	}
	return wr.Finish()
}
