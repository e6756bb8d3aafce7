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

// Package diag defines the caret-annotated diagnostic records emitted by the
// reader and writer. Formatting and transport of these records is explicitly
// out of scope for this module (spec.md ß1): a Handler is just a callback,
// not a logging backend.
package diag

import (
	"fmt"

	"github.com/jplu/rio/status"
)

// Severity classifies a diagnostic record.
type Severity uint8

const (
	// SeverityWarning marks a recovered problem (only emitted in lax mode).
	SeverityWarning Severity = iota
	// SeverityError marks a problem that aborted the current chunk.
	SeverityError
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Caret is a (document, line, column) position used for diagnostics. Line
// and column are both 1-based.
type Caret struct {
	Document string
	Line     int
	Column   int
}

// String renders the caret as "document:line:col", omitting the document
// when empty.
func (c Caret) String() string {
	if c.Document == "" {
		return fmt.Sprintf("%d:%d", c.Line, c.Column)
	}
	return fmt.Sprintf("%s:%d:%d", c.Document, c.Line, c.Column)
}

// Record is one structured, caret-annotated diagnostic emitted by a Reader
// or Writer.
type Record struct {
	Severity Severity
	Code     status.Code
	Message  string
	Caret    Caret
}

// String renders the record for ad-hoc debugging; production callers should
// format Record themselves via their own Handler.
func (r Record) String() string {
	return fmt.Sprintf("%s: %s at %s (%s)", r.Severity, r.Message, r.Caret, r.Code)
}

// Handler receives diagnostic records as they are produced. Per spec.md
// ß7, a Handler returning a non-nil error overrides the propagation of the
// originating error: the caller sees the Handler's error instead.
type Handler func(Record) error

// Emit invokes h if non-nil, returning its error (if any). A nil Handler
// silently drops the record.
func Emit(h Handler, r Record) error {
	if h == nil {
		return nil
	}
	return h(r)
}
