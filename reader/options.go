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
	"github.com/jplu/rio/diag"
	"github.com/jplu/rio/node"
)

const (
	defaultStackSize = 4096
	defaultArenaSize = 64 * 1024
)

// config holds the flags of spec.md §4.5.1 plus the bounded-resource sizes
// of §4.5.3, built up by Option values passed to New.
type config struct {
	lax       bool
	variables bool
	relative  bool
	global    bool
	generated bool
	stackSize   int
	arenaSize   int
	interner    *node.Nodes
	diagHandler diag.Handler
}

func defaultConfig() config {
	return config{stackSize: defaultStackSize, arenaSize: defaultArenaSize}
}

// Option configures a Reader at construction time.
type Option func(*config)

// WithLax enables recovery from invalid bytes: bad UTF-8 becomes U+FFFD
// and diagnostics are reported with warning severity. Malformed
// statements are not skipped: a syntax error still ends the chunk with an
// error.
func WithLax() Option {
	return func(c *config) { c.lax = true }
}

// WithVariables accepts "?name"/"$name" nodes, yielding Variable nodes.
func WithVariables() Option {
	return func(c *config) { c.variables = true }
}

// WithRelative disables URI resolution against the base: URI references
// are passed through verbatim.
func WithRelative() Option {
	return func(c *config) { c.relative = true }
}

// WithGlobal disables the document-unique prefix normally prepended to
// input blank node labels.
func WithGlobal() Option {
	return func(c *config) { c.global = true }
}

// WithGenerated disables renaming of input blank labels that collide with
// the reader's own generated label alphabet.
func WithGenerated() Option {
	return func(c *config) { c.generated = true }
}

// WithStackSize bounds the number of nested frames (anonymous nodes,
// collections, graph blocks) the reader will track before failing with
// status.StackOverflow.
func WithStackSize(n int) Option {
	return func(c *config) { c.stackSize = n }
}

// WithArenaSize bounds the number of bytes the reader will accumulate for
// a single in-progress literal or URI before failing with
// status.StackOverflow.
func WithArenaSize(n int) Option {
	return func(c *config) { c.arenaSize = n }
}

// WithInterner routes every node the reader emits through ns, so that
// value-equal nodes across the document (and across readers sharing ns)
// compare pointer-equal. Without this option the reader builds plain,
// uninterned Nodes.
func WithInterner(ns *node.Nodes) Option {
	return func(c *config) { c.interner = ns }
}

// WithDiagnostics routes every diagnostic record (warnings in lax mode,
// the error that aborts a chunk in strict mode) through h.
func WithDiagnostics(h diag.Handler) Option {
	return func(c *config) { c.diagHandler = h }
}
