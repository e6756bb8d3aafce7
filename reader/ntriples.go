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
	"github.com/jplu/rio/node"
	"github.com/jplu/rio/status"
)

// readLineStatement reads one N-Triples/N-Quads line: a subject, a
// predicate, an object, an optional graph name (N-Quads only), and a
// terminating ".". There are no directives and no abbreviation in this
// grammar, so it emits exactly one statement per call.
func (rd *Reader) readLineStatement() error {
	subj, err := rd.readNTSubjectOrGraph()
	if err != nil {
		return err
	}
	if err := rd.skipWSAndComments(); err != nil {
		return err
	}
	pred, err := rd.readNTPredicate()
	if err != nil {
		return err
	}
	if err := rd.skipWSAndComments(); err != nil {
		return err
	}
	obj, err := rd.readNTObject()
	if err != nil {
		return err
	}

	var graph *node.Node
	if rd.syntax.hasGraphs() {
		if err := rd.skipWSAndComments(); err != nil {
			return err
		}
		b, ok, err := rd.peekByte()
		if err != nil {
			return err
		}
		if ok && b != '.' {
			g, err := rd.readNTSubjectOrGraph()
			if err != nil {
				return err
			}
			graph = &g
			if err := rd.skipWSAndComments(); err != nil {
				return err
			}
		}
	}

	b, ok, err := rd.nextByte()
	if err != nil {
		return err
	}
	if !ok || b != '.' {
		return rd.errorf(status.BadSyntax, "expected '.' to terminate a statement")
	}
	return rd.emitStatement(subj, pred, obj, graph, 0)
}

// readNTSubjectOrGraph reads a subject or graph-name term: an IRIREF or a
// blank node label. Neither N-Triples nor N-Quads allow literals,
// collections or anonymous property lists in this position.
func (rd *Reader) readNTSubjectOrGraph() (node.Node, error) {
	b, ok, err := rd.peekByte()
	if err != nil {
		return node.Node{}, err
	}
	if !ok {
		return node.Node{}, rd.errorf(status.NoData, "unexpected end of input reading a subject")
	}
	switch b {
	case '<':
		if _, _, err := rd.nextByte(); err != nil {
			return node.Node{}, err
		}
		raw, err := rd.readIRIRef()
		if err != nil {
			return node.Node{}, err
		}
		return rd.resolveURI(raw)
	case '_':
		if _, _, err := rd.nextByte(); err != nil {
			return node.Node{}, err
		}
		colon, ok, err := rd.nextByte()
		if err != nil {
			return node.Node{}, err
		}
		if !ok || colon != ':' {
			return node.Node{}, rd.errorf(status.BadSyntax, "expected ':' after '_' in blank node label")
		}
		label, err := rd.readBlankNodeLabel()
		if err != nil {
			return node.Node{}, err
		}
		return rd.blankFromLabel(label)
	default:
		return node.Node{}, rd.errorf(status.BadSyntax, "unexpected byte 0x%02x reading a subject", b)
	}
}

// readNTPredicate reads a predicate, which in this grammar must be an
// IRIREF.
func (rd *Reader) readNTPredicate() (node.Node, error) {
	b, ok, err := rd.nextByte()
	if err != nil {
		return node.Node{}, err
	}
	if !ok || b != '<' {
		return node.Node{}, rd.errorf(status.BadSyntax, "expected a predicate iri")
	}
	raw, err := rd.readIRIRef()
	if err != nil {
		return node.Node{}, err
	}
	return rd.resolveURI(raw)
}

// readNTObject reads an object term: an IRIREF, a blank node label, or a
// quoted literal with an optional language tag or datatype.
func (rd *Reader) readNTObject() (node.Node, error) {
	b, ok, err := rd.peekByte()
	if err != nil {
		return node.Node{}, err
	}
	if !ok {
		return node.Node{}, rd.errorf(status.NoData, "unexpected end of input reading an object")
	}
	if b == '"' {
		if _, _, err := rd.nextByte(); err != nil {
			return node.Node{}, err
		}
		result, err := rd.parseLiteralTerm(b)
		if err != nil {
			return node.Node{}, err
		}
		return result.node, nil
	}
	return rd.readNTSubjectOrGraph()
}
