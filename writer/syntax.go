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

// Syntax selects which of the four textual RDF syntaxes a Writer
// produces.
type Syntax uint8

const (
	// Turtle is directive-bearing, abbreviated, default-graph-only.
	Turtle Syntax = iota
	// TriG is Turtle plus named graph blocks.
	TriG
	// NTriples is directive-free, unabbreviated, default-graph-only.
	NTriples
	// NQuads is N-Triples plus a trailing graph term per line.
	NQuads
)

// String implements fmt.Stringer.
func (s Syntax) String() string {
	switch s {
	case Turtle:
		return "Turtle"
	case TriG:
		return "TriG"
	case NTriples:
		return "N-Triples"
	case NQuads:
		return "N-Quads"
	default:
		return "unknown"
	}
}

// hasDirectives reports whether s supports "@prefix"/"@base" directives
// and predicate-object-list abbreviation.
func (s Syntax) hasDirectives() bool {
	return s == Turtle || s == TriG
}

// hasGraphs reports whether s can express a non-default graph.
func (s Syntax) hasGraphs() bool {
	return s == TriG || s == NQuads
}
