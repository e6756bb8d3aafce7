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

// Package node implements the compact tagged-string term representation
// shared by the reader, writer and environment packages: a Literal, Uri,
// Blank or Variable value with an optional meta-node carrying a datatype
// or language tag.
package node

import (
	"strings"

	"github.com/jplu/rio/status"
)

// Kind distinguishes the four node variants.
type Kind uint8

const (
	// Literal is a string value, optionally carrying a datatype or language.
	Literal Kind = iota
	// Uri is an absolute or relative URI reference string.
	Uri
	// Blank is a document-scoped opaque identifier string.
	Blank
	// Variable is a SPARQL-style name, only produced when a reader is
	// configured to accept variables.
	Variable
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Uri:
		return "uri"
	case Blank:
		return "blank"
	case Variable:
		return "variable"
	default:
		return "unknown"
	}
}

// Flags is a bitmask of per-node attributes.
type Flags uint8

const (
	// HasDatatype marks a Literal carrying a datatype meta-node.
	HasDatatype Flags = 1 << iota
	// HasLanguage marks a Literal carrying a language-tag meta-node.
	HasLanguage
	// IsLongLiteral marks a literal that should round-trip through a
	// triple-quoted long-string form rather than a short one.
	IsLongLiteral
)

// Node is a typed string value with an optional meta-node. The zero Node is
// not meaningful; use one of the constructors in constructors.go.
//
// Nodes are immutable values: copying a Node copies the header only, the
// meta-node pointer is shared. This matches the interner's contract that
// value-equal nodes compare pointer-equal once interned (see the Nodes
// type), while still letting ad-hoc, non-interned nodes be built cheaply.
type Node struct {
	kind  Kind
	value string
	flags Flags
	meta  *Node
}

// Type returns the node's Kind.
func (n Node) Type() Kind { return n.kind }

// String returns the node's primary string value (not a serialized form).
func (n Node) String() string { return n.value }

// Len returns the byte length of the primary string.
func (n Node) Len() int { return len(n.value) }

// Flags returns the node's attribute bitmask.
func (n Node) Flags() Flags { return n.flags }

// IsZero reports whether n is the unconstructed zero value.
func (n Node) IsZero() bool {
	return n.kind == Literal && n.value == "" && n.flags == 0 && n.meta == nil
}

// Datatype returns the literal's datatype URI node and true, or the zero
// Node and false if HasDatatype is not set.
func (n Node) Datatype() (Node, bool) {
	if n.flags&HasDatatype == 0 || n.meta == nil {
		return Node{}, false
	}
	return *n.meta, true
}

// Language returns the literal's language tag and true, or "" and false if
// HasLanguage is not set.
func (n Node) Language() (string, bool) {
	if n.flags&HasLanguage == 0 || n.meta == nil {
		return "", false
	}
	return n.meta.value, true
}

// Equal reports whether a and b are value-equal: same type, length, flags,
// primary string bytes and meta-node (type plus string).
func Equal(a, b Node) bool {
	if a.kind != b.kind || a.flags != b.flags || a.value != b.value {
		return false
	}
	switch {
	case a.meta == nil && b.meta == nil:
		return true
	case a.meta == nil || b.meta == nil:
		return false
	default:
		return a.meta.kind == b.meta.kind && a.meta.value == b.meta.value
	}
}

// Compare orders a and b by (type, primary string, flags, meta string). It
// is total and consistent with Equal.
func Compare(a, b Node) int {
	if a.kind != b.kind {
		return int(a.kind) - int(b.kind)
	}
	if c := strings.Compare(a.value, b.value); c != 0 {
		return c
	}
	if a.flags != b.flags {
		return int(a.flags) - int(b.flags)
	}
	switch {
	case a.meta == nil && b.meta == nil:
		return 0
	case a.meta == nil:
		return -1
	case b.meta == nil:
		return 1
	default:
		return strings.Compare(a.meta.value, b.meta.value)
	}
}

// hash combines type, flags (datatype/language only), primary string and
// meta string. It MUST stay in lock-step with Equal: any mismatch between
// this function and Equal is a correctness bug in the Nodes interner.
func hash(kind Kind, flags Flags, value string, metaKind Kind, metaValue string, hasMeta bool) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	h = fnvByte(h, byte(kind))
	h = fnvByte(h, byte(flags&(HasDatatype|HasLanguage)))
	h = fnvString(h, value)
	if hasMeta {
		h = fnvByte(h, 1)
		h = fnvByte(h, byte(metaKind))
		h = fnvString(h, metaValue)
	} else {
		h = fnvByte(h, 0)
	}
	return h
}

func fnvByte(h uint64, b byte) uint64 {
	const prime64 = 1099511628211
	h ^= uint64(b)
	h *= prime64
	return h
}

func fnvString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = fnvByte(h, s[i])
	}
	return h
}

// Hash returns n's interner hash; see hash for the invariant it must
// satisfy relative to Equal.
func Hash(n Node) uint64 {
	if n.meta == nil {
		return hash(n.kind, n.flags, n.value, 0, "", false)
	}
	return hash(n.kind, n.flags, n.value, n.meta.kind, n.meta.value, true)
}

// tokenHash hashes the components of a token node without materializing a
// Node, for the interner's parse-time fast path. It must produce the same
// value as Hash(token-equivalent-node).
func tokenHash(kind Kind, value string) uint64 {
	return hash(kind, 0, value, 0, "", false)
}

// literalHash hashes the components of a literal without materializing it.
func literalHash(value string, flags Flags, metaKind Kind, metaValue string) uint64 {
	return hash(Literal, flags, value, metaKind, metaValue, true)
}

var errBadArg = func(msg string) error { return status.New(status.BadArg, msg) }
