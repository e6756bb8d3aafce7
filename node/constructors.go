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

package node

import (
	"github.com/jplu/rio/status"
)

// Token builds a node whose value is just a string: a Uri, Blank or
// Variable. Literal must go through NewLiteral, since it may carry a
// meta-node.
func Token(kind Kind, value string) (Node, error) {
	if kind == Literal {
		return Node{}, errBadArg("Token does not build Literal nodes, use NewLiteral")
	}
	return Node{kind: kind, value: value}, nil
}

// NewURI builds a Uri node from a raw reference string. Syntax validation
// of the reference itself is the uriref package's job; this constructor
// only rejects the empty string.
func NewURI(value string) (Node, error) {
	if value == "" {
		return Node{}, errBadArg("uri value must not be empty")
	}
	return Node{kind: Uri, value: value}, nil
}

// NewBlank builds a Blank node from a document-scoped label.
func NewBlank(label string) (Node, error) {
	if label == "" {
		return Node{}, errBadArg("blank node label must not be empty")
	}
	return Node{kind: Blank, value: label}, nil
}

// NewVariable builds a Variable node from a name, stripped of its leading
// sigil (`?` or `$`).
func NewVariable(name string) (Node, error) {
	if name == "" {
		return Node{}, errBadArg("variable name must not be empty")
	}
	return Node{kind: Variable, value: name}, nil
}

// NewLiteral builds a Literal node. At most one of HasDatatype/HasLanguage
// may be set in flags; with neither, a plain literal is built and meta is
// ignored. With one, meta must be non-empty; a datatype meta must be a
// syntactically absolute URI distinct from rdf:langString, and a language
// meta must conform to the BCP 47 grammar.
func NewLiteral(value string, flags Flags, meta string) (Node, error) {
	hasDatatype := flags&HasDatatype != 0
	hasLanguage := flags&HasLanguage != 0
	switch {
	case hasDatatype && hasLanguage:
		return Node{}, errBadArg("literal cannot carry both a datatype and a language tag")
	case hasDatatype:
		if meta == "" {
			return Node{}, errBadArg("datatype literal requires a non-empty datatype uri")
		}
		if !hasScheme(meta) {
			return Node{}, status.New(status.BadUri, "datatype uri is not absolute: "+meta)
		}
		if meta == rdfLangString {
			return Node{}, errBadArg("rdf:langString is not a valid explicit datatype, use HasLanguage instead")
		}
		return Node{kind: Literal, value: value, flags: flags, meta: datatypeNode(meta)}, nil
	case hasLanguage:
		if meta == "" {
			return Node{}, errBadArg("language literal requires a non-empty language tag")
		}
		if err := validateLanguageTag(meta); err != nil {
			return Node{}, status.Wrap(status.BadArg, "invalid language tag: "+meta, err)
		}
		return Node{kind: Literal, value: value, flags: flags, meta: &Node{kind: Literal, value: meta}}, nil
	default:
		return Node{kind: Literal, value: value, flags: flags}, nil
	}
}

// hasScheme reports whether s begins with an RFC 3986 scheme: a letter
// followed by letters, digits, "+", "-" or "." up to a ":".
func hasScheme(s string) bool {
	i := 0
	if i >= len(s) || !isAlpha(s[i]) {
		return false
	}
	i++
	for i < len(s) && s[i] != ':' {
		c := s[i]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
		i++
	}
	return i < len(s) && i > 0 && s[i] == ':'
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
