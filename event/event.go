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

// Package event defines the four event kinds the reader emits and the
// writer (or any alternative sink) consumes: Base, Prefix, Statement and
// End.
package event

import (
	"github.com/jplu/rio/diag"
	"github.com/jplu/rio/node"
)

// Flags describes the abbreviation context a Statement was read or
// should be written under.
type Flags uint16

const (
	// EmptyS marks a statement whose subject is the empty blank node
	// produced by "[]" with no interior predicates.
	EmptyS Flags = 1 << iota
	// AnonS marks a statement whose subject is a freshly opened
	// anonymous node ("[...]").
	AnonS
	// AnonO marks a statement whose object is a freshly opened
	// anonymous node.
	AnonO
	// ListS marks a statement whose subject begins a collection
	// ("(...)").
	ListS
	// ListO marks a statement whose object begins a collection.
	ListO
	// TerseS marks a statement continuing the previous statement's
	// subject (comma/semicolon abbreviation).
	TerseS
	// TerseO marks a statement continuing the previous statement's
	// subject and predicate (comma abbreviation).
	TerseO
)

// Statement is the transient event payload carrying a subject, predicate,
// object and optional graph, plus abbreviation flags and an optional
// caret. The reader and writer do not own the node memory beyond the
// event's lifetime: a Sink that needs to keep a node past its callback
// must copy or intern it.
type Statement struct {
	Subject   node.Node
	Predicate node.Node
	Object    node.Node
	Graph     *node.Node
	Flags     Flags
	Caret     diag.Caret
}

// Sink is the polymorphic consumer of an event stream. The Writer is the
// canonical Sink; a Recorder, Filter, or an in-memory inserter can
// substitute for it without any change to the Reader.
type Sink interface {
	// Base is invoked when the base URI changes.
	Base(uri node.Node, caret diag.Caret) error
	// Prefix is invoked when a prefix is defined.
	Prefix(name string, uri node.Node, caret diag.Caret) error
	// Statement is invoked once per parsed or synthesized statement.
	Statement(s Statement) error
	// End is invoked to close a previously opened anonymous node,
	// matching the Begin implied by its first AnonS/AnonO/ListS/ListO
	// statement in LIFO order.
	End(n node.Node, caret diag.Caret) error
}
