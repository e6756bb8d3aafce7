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
	"strings"

	"github.com/jplu/rio/event"
	"github.com/jplu/rio/internal/frames"
	"github.com/jplu/rio/node"
	"github.com/jplu/rio/status"
)

// readTopLevel dispatches one Turtle/TriG top-level construct: a
// directive, a TriG graph-block open/close, or a statement.
func (rd *Reader) readTopLevel(first byte) error {
	switch first {
	case '@':
		if _, _, err := rd.nextByte(); err != nil {
			return err
		}
		return rd.readAtDirective()
	case '}':
		if _, _, err := rd.nextByte(); err != nil {
			return err
		}
		return rd.closeGraphBlock()
	}

	if first == '[' || first == '(' {
		result, err := rd.parseSubjectOrObjectTerm(true)
		if err != nil {
			return err
		}
		return rd.finishStatement(result)
	}

	term, bareWord, err := rd.parseBareTermStart(first)
	if err != nil {
		return err
	}
	if bareWord != "" {
		switch {
		case strings.EqualFold(bareWord, "BASE"):
			return rd.readBaseDirective(false)
		case strings.EqualFold(bareWord, "PREFIX"):
			return rd.readPrefixDirective(false)
		case rd.syntax == TriG && strings.EqualFold(bareWord, "GRAPH"):
			return rd.readGraphKeywordBlock()
		default:
			return rd.errorf(status.BadSyntax, "unexpected token %q", bareWord)
		}
	}

	if rd.syntax == TriG {
		if err := rd.skipWSAndComments(); err != nil {
			return err
		}
		b, ok, err := rd.peekByte()
		if err != nil {
			return err
		}
		if ok && b == '{' {
			if _, _, err := rd.nextByte(); err != nil {
				return err
			}
			return rd.openGraphBlock(term)
		}
	}
	return rd.finishStatement(termResult{node: term})
}

// finishStatement parses the predicate-object list for a top-level
// subject and consumes the terminating ".".
func (rd *Reader) finishStatement(subject termResult) error {
	if err := rd.parseStatementBody(subject.node, subject.flag, '.'); err != nil {
		return err
	}
	if err := rd.skipWSAndComments(); err != nil {
		return err
	}
	b, ok, err := rd.nextByte()
	if err != nil {
		return err
	}
	if !ok || b != '.' {
		return rd.errorf(status.BadSyntax, "expected '.' to terminate a statement")
	}
	return nil
}

// parseStatementBody parses ";"-separated predicate-object lists sharing
// subject, each with a ","-separated object list, up to (but not
// consuming) stopByte. subjectFlag (AnonS/ListS/EmptyS, if any) is
// attached to the very first statement emitted for subject.
func (rd *Reader) parseStatementBody(subject node.Node, subjectFlag event.Flags, stopByte byte) error {
	emittedAny := false
	for {
		if err := rd.skipWSAndComments(); err != nil {
			return err
		}
		b, ok, err := rd.peekByte()
		if err != nil {
			return err
		}
		if !ok || b == stopByte {
			return nil
		}

		pred, err := rd.parsePredicateTerm(b)
		if err != nil {
			return err
		}

		firstObjForPred := true
		for {
			obj, err := rd.parseSubjectOrObjectTerm(false)
			if err != nil {
				return err
			}
			var flags event.Flags
			if emittedAny {
				flags |= event.TerseS
			} else {
				flags |= subjectFlag
			}
			if !firstObjForPred {
				flags |= event.TerseO
			}
			flags |= obj.flag
			if err := rd.emitStatement(subject, pred, obj.node, rd.currentGraph, flags); err != nil {
				return err
			}
			emittedAny = true
			firstObjForPred = false

			if err := rd.skipWSAndComments(); err != nil {
				return err
			}
			b2, ok2, err := rd.peekByte()
			if err != nil {
				return err
			}
			if ok2 && b2 == ',' {
				if _, _, err := rd.nextByte(); err != nil {
					return err
				}
				continue
			}
			break
		}

		if err := rd.skipWSAndComments(); err != nil {
			return err
		}
		b3, ok3, err := rd.peekByte()
		if err != nil {
			return err
		}
		if ok3 && b3 == ';' {
			if _, _, err := rd.nextByte(); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

// parsePredicateTerm reads a predicate: "a" (rdf:type) or an IRI/curie.
// first is the already-peeked (not consumed) next byte.
func (rd *Reader) parsePredicateTerm(first byte) (node.Node, error) {
	if first != '<' && !isPNChar(first) {
		return node.Node{}, rd.errorf(status.BadSyntax, "unexpected byte 0x%02x reading a predicate", first)
	}
	n, bareWord, err := rd.parseBareTermStart(first)
	if err != nil {
		return node.Node{}, err
	}
	if bareWord != "" {
		return node.Node{}, rd.errorf(status.BadSyntax, "unexpected token %q in predicate position", bareWord)
	}
	return n, nil
}

// readAtDirective reads "@prefix"/"@base", the leading "@" already
// consumed.
func (rd *Reader) readAtDirective() error {
	rd.arena.Reset()
	for {
		b, ok, err := rd.peekByte()
		if err != nil {
			return err
		}
		if !ok || !isAlphaByte(b) {
			break
		}
		if _, _, err := rd.nextByte(); err != nil {
			return err
		}
		if err := rd.arena.WriteByte(b); err != nil {
			return err
		}
	}
	switch rd.arena.String() {
	case "prefix":
		return rd.readPrefixDirective(true)
	case "base":
		return rd.readBaseDirective(true)
	default:
		return rd.errorf(status.BadSyntax, "unknown directive @%s", rd.arena.String())
	}
}

func (rd *Reader) expectByte(want byte) error {
	if err := rd.skipWSAndComments(); err != nil {
		return err
	}
	b, ok, err := rd.nextByte()
	if err != nil {
		return err
	}
	if !ok || b != want {
		return rd.errorf(status.BadSyntax, "expected '%c'", want)
	}
	return nil
}

// readPrefixDirective reads a prefix binding: "name: <uri>" (or "PREFIX
// name: <uri>"). requireDot is true for the "@prefix" Turtle form, which
// must be terminated by ".".
func (rd *Reader) readPrefixDirective(requireDot bool) error {
	if err := rd.skipWSAndComments(); err != nil {
		return err
	}
	name, err := rd.readPrefixNameLabel()
	if err != nil {
		return err
	}
	if err := rd.expectByte('<'); err != nil {
		return err
	}
	raw, err := rd.readIRIRef()
	if err != nil {
		return err
	}
	if err := rd.env.SetPrefix(name, raw); err != nil {
		return err
	}
	if requireDot {
		if err := rd.expectByte('.'); err != nil {
			return err
		}
	}
	resolved, _ := rd.env.LookupPrefix(name)
	uriNode, err := node.NewURI(resolved)
	if err != nil {
		return err
	}
	return rd.sink.Prefix(name, uriNode, rd.caret())
}

// readPrefixNameLabel reads the "name:" part of a prefix declaration,
// returning name without its trailing colon.
func (rd *Reader) readPrefixNameLabel() (string, error) {
	rd.arena.Reset()
	for {
		b, ok, err := rd.peekByte()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", rd.errorf(status.NoData, "unterminated prefix name")
		}
		if b == ':' {
			if _, _, err := rd.nextByte(); err != nil {
				return "", err
			}
			return rd.arena.String(), nil
		}
		if !isPNCharDot(b) {
			return "", rd.errorf(status.BadSyntax, "invalid prefix name")
		}
		if _, _, err := rd.nextByte(); err != nil {
			return "", err
		}
		if err := rd.arena.WriteByte(b); err != nil {
			return "", err
		}
	}
}

// readBaseDirective reads "<uri>" (or "BASE <uri>") and updates the base.
func (rd *Reader) readBaseDirective(requireDot bool) error {
	if err := rd.expectByte('<'); err != nil {
		return err
	}
	raw, err := rd.readIRIRef()
	if err != nil {
		return err
	}
	if err := rd.env.SetBaseURI(raw); err != nil {
		return err
	}
	if requireDot {
		if err := rd.expectByte('.'); err != nil {
			return err
		}
	}
	baseView, _ := rd.env.BaseURI()
	n, err := node.NewURI(baseView.String())
	if err != nil {
		return err
	}
	return rd.sink.Base(n, rd.caret())
}

// readGraphKeywordBlock reads "GRAPH name {", the keyword already
// consumed.
func (rd *Reader) readGraphKeywordBlock() error {
	if err := rd.skipWSAndComments(); err != nil {
		return err
	}
	b, ok, err := rd.peekByte()
	if err != nil {
		return err
	}
	if !ok {
		return rd.errorf(status.NoData, "expected a graph name after GRAPH")
	}
	name, bareWord, err := rd.parseBareTermStart(b)
	if err != nil {
		return err
	}
	if bareWord != "" {
		return rd.errorf(status.BadSyntax, "unexpected token %q as a graph name", bareWord)
	}
	if err := rd.expectByte('{'); err != nil {
		return err
	}
	return rd.openGraphBlock(name)
}

func (rd *Reader) openGraphBlock(graph node.Node) error {
	if err := rd.pushFrame(frames.Frame{Kind: frames.Graph}); err != nil {
		return err
	}
	g := graph
	rd.currentGraph = &g
	return nil
}

func (rd *Reader) closeGraphBlock() error {
	if rd.frames.Len() == 0 || rd.frames.Top().Kind != frames.Graph {
		return rd.errorf(status.BadSyntax, "unexpected '}' with no open graph block")
	}
	rd.frames.Pop()
	rd.currentGraph = nil
	return nil
}
