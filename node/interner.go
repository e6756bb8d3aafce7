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

// entry is one interned node plus its reference count.
type entry struct {
	node Node
	refs int
}

// Nodes is a hash set of nodes keyed by node identity, each with a
// reference count. It is not safe for concurrent use: per spec.md §5, the
// interner is single-threaded and may be shared only by serialized access.
type Nodes struct {
	buckets map[uint64][]*entry
	count   int
}

// NewNodes builds an empty interner.
func NewNodes() *Nodes {
	return &Nodes{buckets: make(map[uint64][]*entry)}
}

// Size returns the number of distinct interned nodes.
func (s *Nodes) Size() int { return s.count }

// Intern hashes n, locates its bucket, and returns a pointer to the
// canonical equal node, bumping its refcount; or inserts n as a new
// canonical entry with refcount 1. Any two Intern/Get/Token calls that
// produce value-equal nodes return pointer-equal references.
func (s *Nodes) Intern(n Node) *Node {
	h := Hash(n)
	for _, e := range s.buckets[h] {
		if Equal(e.node, n) {
			e.refs++
			return &e.node
		}
	}
	e := &entry{node: n, refs: 1}
	s.buckets[h] = append(s.buckets[h], e)
	s.count++
	return &e.node
}

// Token interns a Uri/Blank/Variable node built from its components
// without materializing an intermediate Node first — the fast path for
// parse-time interning. It hashes identically to Intern(token-equivalent).
func (s *Nodes) Token(kind Kind, value string) (*Node, error) {
	if kind == Literal {
		return nil, errBadArg("Token does not intern Literal nodes, use Literal")
	}
	h := tokenHash(kind, value)
	for _, e := range s.buckets[h] {
		if e.node.kind == kind && e.node.value == value && e.node.flags == 0 && e.node.meta == nil {
			e.refs++
			return &e.node, nil
		}
	}
	e := &entry{node: Node{kind: kind, value: value}, refs: 1}
	s.buckets[h] = append(s.buckets[h], e)
	s.count++
	return &e.node, nil
}

// Literal interns a literal built from its components, validating it the
// same way NewLiteral does.
func (s *Nodes) Literal(value string, flags Flags, meta string) (*Node, error) {
	n, err := NewLiteral(value, flags, meta)
	if err != nil {
		return nil, err
	}
	return s.Intern(n), nil
}

// Uri interns a Uri node from a raw reference string.
func (s *Nodes) Uri(value string) (*Node, error) {
	n, err := NewURI(value)
	if err != nil {
		return nil, err
	}
	return s.Intern(n), nil
}

// Blank interns a Blank node from a document-scoped label.
func (s *Nodes) Blank(label string) (*Node, error) {
	n, err := NewBlank(label)
	if err != nil {
		return nil, err
	}
	return s.Intern(n), nil
}

// Get looks up n without inserting it, returning the canonical reference
// if present.
func (s *Nodes) Get(n Node) (*Node, bool) {
	h := Hash(n)
	for _, e := range s.buckets[h] {
		if Equal(e.node, n) {
			return &e.node, true
		}
	}
	return nil, false
}

// Deref decrements n's reference count, removing and freeing the entry
// when it reaches zero. Deref on a node not owned by this interner is a
// no-op.
func (s *Nodes) Deref(n *Node) {
	h := Hash(*n)
	bucket := s.buckets[h]
	for i, e := range bucket {
		if &e.node != n {
			continue
		}
		e.refs--
		if e.refs <= 0 {
			s.buckets[h] = append(bucket[:i], bucket[i+1:]...)
			s.count--
		}
		return
	}
}
