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

// Syntax selects which of the four syntaxes a Reader parses.
type Syntax uint8

const (
	// Turtle is the abbreviated triple syntax.
	Turtle Syntax = iota
	// TriG is Turtle extended with named-graph blocks.
	TriG
	// NTriples is the unabbreviated, directive-free triple syntax.
	NTriples
	// NQuads is N-Triples with an optional trailing graph term.
	NQuads
)

// String implements fmt.Stringer.
func (s Syntax) String() string {
	switch s {
	case Turtle:
		return "turtle"
	case TriG:
		return "trig"
	case NTriples:
		return "n-triples"
	case NQuads:
		return "n-quads"
	default:
		return "unknown"
	}
}

// hasDirectives reports whether s allows @base/@prefix/BASE/PREFIX
// directives and abbreviation syntax.
func (s Syntax) hasDirectives() bool {
	return s == Turtle || s == TriG
}

// hasGraphs reports whether s carries a fourth (graph) term.
func (s Syntax) hasGraphs() bool {
	return s == TriG || s == NQuads
}
