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
	"github.com/jplu/rio/node"
	"github.com/jplu/rio/status"
)

// writeSubjectTerm writes a subject/graph-name term: a Uri or a Blank.
func (wr *Writer) writeSubjectTerm(n node.Node) error {
	switch n.Type() {
	case node.Uri:
		return wr.writeURITerm(n)
	case node.Blank:
		return wr.writeBlankTerm(n)
	case node.Variable:
		return wr.writeString("?" + n.String())
	default:
		return status.New(status.BadWrite, "a literal cannot be written as a subject")
	}
}

// writePredicateTerm writes a predicate, substituting "a" for rdf:type
// unless RdfType is configured.
func (wr *Writer) writePredicateTerm(n node.Node) error {
	if !wr.cfg.rdfType && n.Type() == node.Uri && n.String() == node.RDFType {
		return wr.writeByte('a')
	}
	return wr.writeURITerm(n)
}

// writeObjectTerm writes an object term of any kind.
func (wr *Writer) writeObjectTerm(n node.Node) error {
	switch n.Type() {
	case node.Uri:
		return wr.writeURITerm(n)
	case node.Blank:
		return wr.writeBlankTerm(n)
	case node.Variable:
		return wr.writeString("?" + n.String())
	case node.Literal:
		return wr.writeLiteralTerm(n, wr.syntax.hasDirectives())
	default:
		return status.New(status.BadWrite, "unknown node kind")
	}
}

// writeFlatTerm writes a term for N-Triples/N-Quads: always a full
// absolute URI, never abbreviated, and literals are always quoted.
func (wr *Writer) writeFlatTerm(n node.Node) error {
	switch n.Type() {
	case node.Uri:
		return wr.writeAbsoluteURI(n.String())
	case node.Blank:
		return wr.writeBlankTerm(n)
	case node.Variable:
		return wr.writeString("?" + n.String())
	case node.Literal:
		return wr.writeLiteralTerm(n, false)
	default:
		return status.New(status.BadWrite, "unknown node kind")
	}
}

func (wr *Writer) writeBlankTerm(n node.Node) error {
	return wr.writeString("_:" + n.String())
}
