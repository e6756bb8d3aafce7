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

package uriref

import "strings"

// cursor is a peekable rune reader over a URI reference string, tracking
// the byte offset of the next unread rune so the scanner can slice
// already-scanned runs back out of the original string.
type cursor struct {
	remaining string
	reader    *strings.Reader
}

// newCursor wraps s for scanning from its first byte.
func newCursor(s string) *cursor {
	return &cursor{remaining: s, reader: strings.NewReader(s)}
}

// next consumes and returns the next rune.
func (c *cursor) next() (rune, bool) {
	r, _, err := c.reader.ReadRune()
	return r, err == nil
}

// peek returns the next rune without consuming it.
func (c *cursor) peek() (rune, bool) {
	r, _, err := c.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = c.reader.UnreadRune()
	return r, true
}

// startsWith reports whether the next rune equals r.
func (c *cursor) startsWith(r rune) bool {
	pr, ok := c.peek()
	return ok && pr == r
}

// position is the byte offset of the next unread rune, relative to the
// string passed to the cursor that produced remaining.
func (c *cursor) position() int {
	return len(c.remaining) - c.reader.Len()
}

// tail returns the unread suffix of the input.
func (c *cursor) tail() string {
	return c.remaining[c.position():]
}

// reset rewinds the cursor onto a new (typically shorter) input, used when
// the scanner backtracks after discovering a scheme-looking prefix wasn't
// one.
func (c *cursor) reset(s string) {
	c.remaining = s
	c.reader = strings.NewReader(s)
}
