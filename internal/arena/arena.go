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

// Package arena implements the reader's pre-sized byte buffer used to
// accumulate in-progress literal and URI bytes (spec.md §4.5.3), so a
// long literal does not force unbounded growth of any native stack.
package arena

import (
	"unicode/utf8"

	"github.com/jplu/rio/status"
)

// Arena is a bounded, reusable byte accumulator.
type Arena struct {
	buf []byte
	max int
}

// New builds an Arena that rejects growth past max bytes.
func New(max int) *Arena {
	return &Arena{max: max}
}

// Reset empties the arena without releasing its backing array.
func (a *Arena) Reset() {
	a.buf = a.buf[:0]
}

// Len returns the number of bytes currently accumulated.
func (a *Arena) Len() int {
	return len(a.buf)
}

// Bytes returns the accumulated bytes. The slice is only valid until the
// next Reset, WriteByte, WriteString or WriteRune call.
func (a *Arena) Bytes() []byte {
	return a.buf
}

// String returns a copy of the accumulated bytes as a string.
func (a *Arena) String() string {
	return string(a.buf)
}

// WriteByte appends b, failing with status.StackOverflow if that would
// exceed the arena's bound.
func (a *Arena) WriteByte(b byte) error {
	if len(a.buf)+1 > a.max {
		return status.New(status.StackOverflow, "reader byte arena exhausted")
	}
	a.buf = append(a.buf, b)
	return nil
}

// WriteString appends s, failing with status.StackOverflow if that would
// exceed the arena's bound.
func (a *Arena) WriteString(s string) error {
	if len(a.buf)+len(s) > a.max {
		return status.New(status.StackOverflow, "reader byte arena exhausted")
	}
	a.buf = append(a.buf, s...)
	return nil
}

// WriteRune appends r's UTF-8 encoding, failing with status.StackOverflow
// if that would exceed the arena's bound.
func (a *Arena) WriteRune(r rune) error {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return a.WriteString(string(tmp[:n]))
}
