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

const defaultStackSize = 4096

// config holds the writer's resolved options, per spec.md §4.6.1.
type config struct {
	ascii      bool // escape bytes >= 0x80 as \uXXXX/\UXXXXXXXX
	expanded   bool // never shorten to prefixed names
	verbatim   bool // never resolve against a root uri
	terse      bool // no indentation at sub-top-level
	lax        bool // repair bad UTF-8 instead of failing
	rdfType    bool // always write rdf:type, never the "a" shortcut
	contextual bool // suppress @base/@prefix directive output

	stackSize int
	indent    string
}

func defaultConfig() config {
	return config{stackSize: defaultStackSize, indent: "  "}
}

// Option configures a Writer at construction time.
type Option func(*config)

// WithAscii escapes every byte at or above 0x80 as a \u/\U escape.
func WithAscii() Option { return func(c *config) { c.ascii = true } }

// WithExpanded always writes full "<uri>" forms, never prefixed names.
func WithExpanded() Option { return func(c *config) { c.expanded = true } }

// WithVerbatim never resolves a URI against the writer's root, emitting
// it exactly as received.
func WithVerbatim() Option { return func(c *config) { c.verbatim = true } }

// WithTerse suppresses indentation below the top level and the line break
// after an opening "[" (Turtle/TriG only). Other line breaks, such as the
// one after each " ;", are still written.
func WithTerse() Option { return func(c *config) { c.terse = true } }

// WithLax replaces ill-formed UTF-8 input with U+FFFD instead of failing.
func WithLax() Option { return func(c *config) { c.lax = true } }

// WithRdfType always writes "rdf:type" rather than the "a" shortcut.
func WithRdfType() Option { return func(c *config) { c.rdfType = true } }

// WithContextual suppresses "@base"/"@prefix" directive output, for
// writing a document fragment into a larger context.
func WithContextual() Option { return func(c *config) { c.contextual = true } }

// WithStackSize bounds the writer's open-bracket nesting depth.
func WithStackSize(n int) Option { return func(c *config) { c.stackSize = n } }

// WithIndent sets the per-level indent string (default two spaces).
func WithIndent(s string) Option { return func(c *config) { c.indent = s } }
