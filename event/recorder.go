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

// Kind tags a recorded event.
type Kind uint8

const (
	// KindBase tags a recorded Base event.
	KindBase Kind = iota
	// KindPrefix tags a recorded Prefix event.
	KindPrefix
	// KindStatement tags a recorded Statement event.
	KindStatement
	// KindEnd tags a recorded End event.
	KindEnd
)

// Recorded is one captured event, in the shape a test or an in-memory
// inserter can inspect after the fact.
type Recorded struct {
	Kind       Kind
	URI        node.Node
	PrefixName string
	Statement  Statement
	EndNode    node.Node
	Caret      diag.Caret
}

// Recorder is a Sink that stores every event it receives, in order. It is
// the minimal "in-memory inserter" alternative sink referenced by
// spec.md §2: useful directly in tests, and as a base to build a real
// indexed store on top of.
type Recorder struct {
	Events []Recorded
}

// NewRecorder builds an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Base implements Sink.
func (r *Recorder) Base(uri node.Node, caret diag.Caret) error {
	r.Events = append(r.Events, Recorded{Kind: KindBase, URI: uri, Caret: caret})
	return nil
}

// Prefix implements Sink.
func (r *Recorder) Prefix(name string, uri node.Node, caret diag.Caret) error {
	r.Events = append(r.Events, Recorded{Kind: KindPrefix, PrefixName: name, URI: uri, Caret: caret})
	return nil
}

// Statement implements Sink.
func (r *Recorder) Statement(s Statement) error {
	r.Events = append(r.Events, Recorded{Kind: KindStatement, Statement: s, Caret: s.Caret})
	return nil
}

// End implements Sink.
func (r *Recorder) End(n node.Node, caret diag.Caret) error {
	r.Events = append(r.Events, Recorded{Kind: KindEnd, EndNode: n, Caret: caret})
	return nil
}

// Statements returns just the Statement payloads, in order, discarding
// Base/Prefix/End events.
func (r *Recorder) Statements() []Statement {
	var out []Statement
	for _, e := range r.Events {
		if e.Kind == KindStatement {
			out = append(out, e.Statement)
		}
	}
	return out
}
