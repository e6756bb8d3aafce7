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

package event

import (
	"github.com/jplu/rio/diag"
	"github.com/jplu/rio/node"
)

// Filter wraps a downstream Sink and forwards only the Statement events
// for which Keep returns true. Base, Prefix and End events always pass
// through unchanged, since they carry no subject/predicate/object to
// filter on.
type Filter struct {
	Downstream Sink
	Keep       func(Statement) bool
}

// NewFilter builds a Filter forwarding to downstream only statements for
// which keep returns true.
func NewFilter(downstream Sink, keep func(Statement) bool) *Filter {
	return &Filter{Downstream: downstream, Keep: keep}
}

// Base implements Sink.
func (f *Filter) Base(uri node.Node, caret diag.Caret) error {
	return f.Downstream.Base(uri, caret)
}

// Prefix implements Sink.
func (f *Filter) Prefix(name string, uri node.Node, caret diag.Caret) error {
	return f.Downstream.Prefix(name, uri, caret)
}

// Statement implements Sink.
func (f *Filter) Statement(s Statement) error {
	if f.Keep != nil && !f.Keep(s) {
		return nil
	}
	return f.Downstream.Statement(s)
}

// End implements Sink.
func (f *Filter) End(n node.Node, caret diag.Caret) error {
	return f.Downstream.End(n, caret)
}
