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

// Package env implements the base URI plus prefix table used for CURIE
// expansion and qualification by the reader and writer.
package env

import (
	"strings"

	"github.com/jplu/rio/node"
	"github.com/jplu/rio/status"
	"github.com/jplu/rio/uriref"
)

// binding is one (prefix name, namespace URI) pair.
type binding struct {
	name string
	uri  uriref.View
}

// Env holds a base URI (possibly unset) and an ordered list of prefix
// bindings. Names are unique: setting an existing name's prefix replaces
// its URI in place, preserving iteration order.
type Env struct {
	base     uriref.View
	hasBase  bool
	bindings []binding
	index    map[string]int
}

// New builds an empty Env with no base URI and no prefixes.
func New() *Env {
	return &Env{index: make(map[string]int)}
}

// BaseURI returns the current base URI and whether one is set.
func (e *Env) BaseURI() (uriref.View, bool) {
	return e.base, e.hasBase
}

// SetBaseURI sets the base URI. An empty str clears the base. A
// non-empty, relative str is resolved against the current base first; if
// there is no current base to resolve against, it fails with BadArg.
func (e *Env) SetBaseURI(str string) error {
	if str == "" {
		e.base = uriref.View{}
		e.hasBase = false
		return nil
	}
	v, err := uriref.Parse(str)
	if err != nil {
		return err
	}
	if v.IsAbsolute() {
		e.base = v
		e.hasBase = true
		return nil
	}
	if !e.hasBase {
		return status.New(status.BadArg, "relative base uri with no current base to resolve against: "+str)
	}
	resolved, err := e.base.Resolve(str)
	if err != nil {
		return err
	}
	e.base = resolved
	e.hasBase = true
	return nil
}

// SetPrefix binds name to uri, which must resolve to an absolute URI
// against the current base. Re-binding an existing name replaces its URI
// without changing its position in iteration order.
func (e *Env) SetPrefix(name, uri string) error {
	resolved, err := e.resolveAgainstBase(uri)
	if err != nil {
		return status.Wrap(status.BadArg, "prefix uri does not resolve to an absolute uri: "+uri, err)
	}
	if i, ok := e.index[name]; ok {
		e.bindings[i].uri = resolved
		return nil
	}
	e.index[name] = len(e.bindings)
	e.bindings = append(e.bindings, binding{name: name, uri: resolved})
	return nil
}

func (e *Env) resolveAgainstBase(uri string) (uriref.View, error) {
	v, err := uriref.Parse(uri)
	if err != nil {
		return uriref.View{}, err
	}
	if v.IsAbsolute() {
		return v, nil
	}
	if !e.hasBase {
		return uriref.View{}, status.New(status.BadArg, "no base uri to resolve against")
	}
	resolved, err := e.base.Resolve(uri)
	if err != nil {
		return uriref.View{}, err
	}
	if !resolved.IsAbsolute() {
		return uriref.View{}, status.New(status.BadArg, "uri did not resolve to an absolute uri")
	}
	return resolved, nil
}

// Expand resolves n: if n's string has the form "name:local" and name is a
// known prefix, the result is prefixUri+local; otherwise a Uri that already
// has a scheme is returned unchanged, and a Uri with no scheme is resolved
// against the base. It returns false if n is not a Uri, if a relative
// reference has no base to resolve against, or if resolution fails.
func (e *Env) Expand(n node.Node) (node.Node, bool) {
	if n.Type() != node.Uri {
		return node.Node{}, false
	}
	s := n.String()
	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		if prefixURI, ok := e.lookupPrefix(s[:colon]); ok {
			expanded, err := node.NewURI(prefixURI + s[colon+1:])
			if err != nil {
				return node.Node{}, false
			}
			return expanded, true
		}
	}
	if hasSchemeString(s) {
		return n, true
	}
	if !e.hasBase {
		return node.Node{}, false
	}
	resolved, err := e.base.Resolve(s)
	if err != nil {
		return node.Node{}, false
	}
	expanded, err := node.NewURI(resolved.String())
	if err != nil {
		return node.Node{}, false
	}
	return expanded, true
}

func hasSchemeString(s string) bool {
	i := 0
	if i >= len(s) || !isAlpha(s[i]) {
		return false
	}
	for i < len(s) && s[i] != ':' {
		c := s[i]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
		i++
	}
	return i < len(s) && s[i] == ':'
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// LookupPrefix returns the namespace URI currently bound to name, if any.
func (e *Env) LookupPrefix(name string) (string, bool) {
	return e.lookupPrefix(name)
}

func (e *Env) lookupPrefix(name string) (string, bool) {
	i, ok := e.index[name]
	if !ok {
		return "", false
	}
	return e.bindings[i].uri.String(), true
}

// Qualify finds the longest-prefix-matching binding whose namespace URI is
// a prefix of uriNode's string and returns a CURIE-style "name:suffix"
// node. It returns false if no binding matches.
func (e *Env) Qualify(uriNode node.Node) (node.Node, bool) {
	if uriNode.Type() != node.Uri {
		return node.Node{}, false
	}
	s := uriNode.String()
	bestName, bestLen := "", -1
	for _, b := range e.bindings {
		ns := b.uri.String()
		if len(ns) > bestLen && len(ns) <= len(s) && strings.HasPrefix(s, ns) {
			bestName, bestLen = b.name, len(ns)
		}
	}
	if bestLen < 0 {
		return node.Node{}, false
	}
	curie, err := node.NewURI(bestName + ":" + s[bestLen:])
	if err != nil {
		return node.Node{}, false
	}
	return curie, true
}

// PrefixSink receives (name, uri) pairs from WritePrefixes, in iteration
// order.
type PrefixSink func(name, uri string) error

// WritePrefixes invokes sink once per bound prefix, in insertion order.
func (e *Env) WritePrefixes(sink PrefixSink) error {
	for _, b := range e.bindings {
		if err := sink(b.name, b.uri.String()); err != nil {
			return err
		}
	}
	return nil
}

// Equals reports whether e and other have the same base URI (or both
// lack one) and the same set of prefix bindings, irrespective of order.
func (e *Env) Equals(other *Env) bool {
	if e.hasBase != other.hasBase {
		return false
	}
	if e.hasBase && e.base.String() != other.base.String() {
		return false
	}
	if len(e.bindings) != len(other.bindings) {
		return false
	}
	for _, b := range e.bindings {
		i, ok := other.index[b.name]
		if !ok || other.bindings[i].uri.String() != b.uri.String() {
			return false
		}
	}
	return true
}
