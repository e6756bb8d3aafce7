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

// termResult is a parsed term plus any abbreviation flag it contributes
// to the statement that references it (AnonS/AnonO/ListS/ListO/EmptyS).
type termResult struct {
	node node.Node
	flag event.Flags
}

func anonFlag(hadProps, isSubject bool) event.Flags {
	switch {
	case !hadProps && isSubject:
		return event.EmptyS
	case !hadProps:
		return 0
	case isSubject:
		return event.AnonS
	default:
		return event.AnonO
	}
}

func listFlag(nonEmpty, isSubject bool) event.Flags {
	if !nonEmpty {
		return 0
	}
	if isSubject {
		return event.ListS
	}
	return event.ListO
}

// parseSubjectOrObjectTerm reads one term in subject or object position,
// including the "[...]" and "(...)" productions, which recurse (bounded
// by frames.Stack) into their own interior statements.
func (rd *Reader) parseSubjectOrObjectTerm(isSubject bool) (termResult, error) {
	if err := rd.skipWSAndComments(); err != nil {
		return termResult{}, err
	}
	b, ok, err := rd.peekByte()
	if err != nil {
		return termResult{}, err
	}
	if !ok {
		return termResult{}, rd.errorf(status.NoData, "unexpected end of input reading a term")
	}
	switch {
	case b == '[':
		if _, _, err := rd.nextByte(); err != nil {
			return termResult{}, err
		}
		n, hadProps, err := rd.parseAnonNode()
		if err != nil {
			return termResult{}, err
		}
		return termResult{node: n, flag: anonFlag(hadProps, isSubject)}, nil
	case b == '(':
		if _, _, err := rd.nextByte(); err != nil {
			return termResult{}, err
		}
		n, nonEmpty, err := rd.parseCollectionNode()
		if err != nil {
			return termResult{}, err
		}
		return termResult{node: n, flag: listFlag(nonEmpty, isSubject)}, nil
	case b == '"' || b == '\'':
		if isSubject {
			return termResult{}, rd.errorf(status.BadSyntax, "a literal cannot be a subject")
		}
		if _, _, err := rd.nextByte(); err != nil {
			return termResult{}, err
		}
		return rd.parseLiteralTerm(b)
	case isNumericLead(b) && !isSubject:
		if _, _, err := rd.nextByte(); err != nil {
			return termResult{}, err
		}
		text, dt, err := rd.readNumericLiteral(b)
		if err != nil {
			return termResult{}, err
		}
		n, err := node.NewLiteral(text, node.HasDatatype, dt)
		return termResult{node: n}, err
	case (b == '?' || b == '$') && rd.cfg.variables:
		if _, _, err := rd.nextByte(); err != nil {
			return termResult{}, err
		}
		name, err := rd.readVariableName()
		if err != nil {
			return termResult{}, err
		}
		n, err := node.NewVariable(name)
		return termResult{node: n}, err
	default:
		n, bareWord, err := rd.parseBareTermStart(b)
		if err != nil {
			return termResult{}, err
		}
		if bareWord != "" {
			return termResult{}, rd.errorf(status.BadSyntax, "unexpected token %q", bareWord)
		}
		return termResult{node: n}, nil
	}
}

// parseBareTermStart reads an IRIREF, blank node label, or bare word
// (keyword, boolean literal, or prefixed name) starting with first.
// bareWord is non-empty only when the token did not resolve to a node at
// all (a candidate directive/GRAPH keyword the caller must interpret).
func (rd *Reader) parseBareTermStart(first byte) (n node.Node, bareWord string, err error) {
	switch {
	case first == '<':
		if _, _, err := rd.nextByte(); err != nil {
			return node.Node{}, "", err
		}
		raw, err := rd.readIRIRef()
		if err != nil {
			return node.Node{}, "", err
		}
		resolved, err := rd.resolveURI(raw)
		return resolved, "", err
	case first == '_':
		if _, _, err := rd.nextByte(); err != nil {
			return node.Node{}, "", err
		}
		colon, ok, err := rd.nextByte()
		if err != nil {
			return node.Node{}, "", err
		}
		if !ok || colon != ':' {
			return node.Node{}, "", rd.errorf(status.BadSyntax, "expected ':' after '_' in blank node label")
		}
		label, err := rd.readBlankNodeLabel()
		if err != nil {
			return node.Node{}, "", err
		}
		blank, err := rd.blankFromLabel(label)
		return blank, "", err
	case isPNChar(first) && first != '_':
		if _, _, err := rd.nextByte(); err != nil {
			return node.Node{}, "", err
		}
		word, err := rd.readPrefixedNameOrKeyword(first)
		if err != nil {
			return node.Node{}, "", err
		}
		if !strings.Contains(word, ":") {
			switch word {
			case "a":
				uri, err := node.NewURI(node.RDFType)
				return uri, "", err
			case "true", "false":
				return node.Boolean(word == "true"), "", nil
			default:
				return node.Node{}, word, nil
			}
		}
		resolved, err := rd.resolveURI(word)
		return resolved, "", err
	default:
		return node.Node{}, "", rd.errorf(status.BadSyntax, "unexpected byte 0x%02x", first)
	}
}

// resolveURI builds a Uri node from raw (an IRIREF body or a
// "prefix:local" curie), expanding it against the current Env unless
// Relative is configured.
func (rd *Reader) resolveURI(raw string) (node.Node, error) {
	n, err := node.NewURI(raw)
	if err != nil {
		return node.Node{}, rd.errorf(status.BadUri, "%v", err)
	}
	if rd.cfg.relative {
		return n, nil
	}
	expanded, ok := rd.env.Expand(n)
	if !ok {
		return node.Node{}, rd.errorf(status.BadCurie, "could not resolve uri reference %q", raw)
	}
	return expanded, nil
}

// readVariableName reads a SPARQL-style variable name, the leading "?"
// or "$" already consumed.
func (rd *Reader) readVariableName() (string, error) {
	rd.arena.Reset()
	for {
		b, ok, err := rd.peekByte()
		if err != nil {
			return "", err
		}
		if !ok || !isPNChar(b) {
			break
		}
		if _, _, err := rd.nextByte(); err != nil {
			return "", err
		}
		if err := rd.arena.WriteByte(b); err != nil {
			return "", err
		}
	}
	if rd.arena.Len() == 0 {
		return "", rd.errorf(status.BadSyntax, "empty variable name")
	}
	return rd.arena.String(), nil
}

// parseLiteralTerm reads a literal's @lang or ^^datatype suffix after its
// quoted body (quote already consumed).
func (rd *Reader) parseLiteralTerm(quote byte) (termResult, error) {
	value, long, err := rd.readQuotedLiteral(quote)
	if err != nil {
		return termResult{}, err
	}
	var flags node.Flags
	if long {
		flags |= node.IsLongLiteral
	}
	b, ok, err := rd.peekByte()
	if err != nil {
		return termResult{}, err
	}
	switch {
	case ok && b == '@':
		if _, _, err := rd.nextByte(); err != nil {
			return termResult{}, err
		}
		lang, err := rd.readLanguageTag()
		if err != nil {
			return termResult{}, err
		}
		n, err := node.NewLiteral(value, flags|node.HasLanguage, lang)
		return termResult{node: n}, err
	case ok && b == '^':
		if _, _, err := rd.nextByte(); err != nil {
			return termResult{}, err
		}
		b2, ok2, err := rd.nextByte()
		if err != nil {
			return termResult{}, err
		}
		if !ok2 || b2 != '^' {
			return termResult{}, rd.errorf(status.BadSyntax, "expected '^^' before a datatype")
		}
		dt, err := rd.readDatatypeURI()
		if err != nil {
			return termResult{}, err
		}
		n, err := node.NewLiteral(value, flags|node.HasDatatype, dt)
		return termResult{node: n}, err
	default:
		n, err := node.NewLiteral(value, flags, "")
		return termResult{node: n}, err
	}
}

func (rd *Reader) readDatatypeURI() (string, error) {
	b, ok, err := rd.peekByte()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", rd.errorf(status.NoData, "expected a datatype after '^^'")
	}
	if b == '<' {
		if _, _, err := rd.nextByte(); err != nil {
			return "", err
		}
		raw, err := rd.readIRIRef()
		if err != nil {
			return "", err
		}
		n, err := rd.resolveURI(raw)
		if err != nil {
			return "", err
		}
		return n.String(), nil
	}
	if _, _, err := rd.nextByte(); err != nil {
		return "", err
	}
	word, err := rd.readPrefixedNameOrKeyword(b)
	if err != nil {
		return "", err
	}
	n, err := rd.resolveURI(word)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func (rd *Reader) readLanguageTag() (string, error) {
	rd.arena.Reset()
	for {
		b, ok, err := rd.peekByte()
		if err != nil {
			return "", err
		}
		if !ok || !(isAlphaByte(b) || isDigitByte(b) || b == '-') {
			break
		}
		if _, _, err := rd.nextByte(); err != nil {
			return "", err
		}
		if err := rd.arena.WriteByte(b); err != nil {
			return "", err
		}
	}
	if rd.arena.Len() == 0 {
		return "", rd.errorf(status.BadSyntax, "empty language tag")
	}
	return rd.arena.String(), nil
}

func isAlphaByte(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// parseAnonNode reads a "[...]" blank-node property list, the opening
// "[" already consumed. hadProps reports whether any interior predicate
// was present; the reader only emits an End event when it is.
func (rd *Reader) parseAnonNode() (n node.Node, hadProps bool, err error) {
	if err := rd.pushFrame(frames.Frame{Kind: frames.Anon}); err != nil {
		return node.Node{}, false, err
	}
	defer rd.frames.Pop()

	subj, err := rd.freshBlank()
	if err != nil {
		return node.Node{}, false, err
	}
	if err := rd.skipWSAndComments(); err != nil {
		return node.Node{}, false, err
	}
	b, ok, err := rd.peekByte()
	if err != nil {
		return node.Node{}, false, err
	}
	if ok && b == ']' {
		if _, _, err := rd.nextByte(); err != nil {
			return node.Node{}, false, err
		}
		return subj, false, nil
	}
	if err := rd.parseStatementBody(subj, 0, ']'); err != nil {
		return node.Node{}, false, err
	}
	if err := rd.skipWSAndComments(); err != nil {
		return node.Node{}, false, err
	}
	closeB, ok, err := rd.nextByte()
	if err != nil {
		return node.Node{}, false, err
	}
	if !ok || closeB != ']' {
		return node.Node{}, false, rd.errorf(status.BadSyntax, "expected ']'")
	}
	if err := rd.sink.End(subj, rd.caret()); err != nil {
		return node.Node{}, false, err
	}
	return subj, true, nil
}

// parseCollectionNode reads a "(...)" collection, the opening "("
// already consumed, desugaring it into an rdf:first/rdf:rest linked
// list of fresh blanks. nonEmpty is false (and n is rdf:nil) for "()".
func (rd *Reader) parseCollectionNode() (n node.Node, nonEmpty bool, err error) {
	if err := rd.skipWSAndComments(); err != nil {
		return node.Node{}, false, err
	}
	b, ok, err := rd.peekByte()
	if err != nil {
		return node.Node{}, false, err
	}
	if ok && b == ')' {
		if _, _, err := rd.nextByte(); err != nil {
			return node.Node{}, false, err
		}
		nilNode, err := node.NewURI(node.RDFNil)
		return nilNode, false, err
	}

	if err := rd.pushFrame(frames.Frame{Kind: frames.List}); err != nil {
		return node.Node{}, false, err
	}
	defer rd.frames.Pop()

	firstPred, err := node.NewURI(node.RDFFirst)
	if err != nil {
		return node.Node{}, false, err
	}
	restPred, err := node.NewURI(node.RDFRest)
	if err != nil {
		return node.Node{}, false, err
	}
	nilNode, err := node.NewURI(node.RDFNil)
	if err != nil {
		return node.Node{}, false, err
	}

	head, err := rd.freshBlank()
	if err != nil {
		return node.Node{}, false, err
	}
	cur := head
	for {
		elem, err := rd.parseSubjectOrObjectTerm(false)
		if err != nil {
			return node.Node{}, false, err
		}
		if err := rd.emitStatement(cur, firstPred, elem.node, rd.currentGraph, 0); err != nil {
			return node.Node{}, false, err
		}
		if err := rd.skipWSAndComments(); err != nil {
			return node.Node{}, false, err
		}
		closeB, ok, err := rd.peekByte()
		if err != nil {
			return node.Node{}, false, err
		}
		if !ok {
			return node.Node{}, false, rd.errorf(status.NoData, "unterminated collection")
		}
		if closeB == ')' {
			if _, _, err := rd.nextByte(); err != nil {
				return node.Node{}, false, err
			}
			if err := rd.emitStatement(cur, restPred, nilNode, rd.currentGraph, 0); err != nil {
				return node.Node{}, false, err
			}
			return head, true, nil
		}
		next, err := rd.freshBlank()
		if err != nil {
			return node.Node{}, false, err
		}
		if err := rd.emitStatement(cur, restPred, next, rd.currentGraph, 0); err != nil {
			return node.Node{}, false, err
		}
		cur = next
	}
}

// emitStatement interns its operands (if configured) and forwards the
// statement to the sink with the current caret.
func (rd *Reader) emitStatement(s, p, o node.Node, graph *node.Node, flags event.Flags) error {
	s = rd.internNode(s)
	p = rd.internNode(p)
	o = rd.internNode(o)
	var g *node.Node
	if graph != nil {
		gi := rd.internNode(*graph)
		g = &gi
	}
	return rd.sink.Statement(event.Statement{
		Subject:   s,
		Predicate: p,
		Object:    o,
		Graph:     g,
		Flags:     flags,
		Caret:     rd.caret(),
	})
}
