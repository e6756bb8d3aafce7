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

// sink receives the normalized-but-not-yet-percent-decoded output of a
// scan. voidSink is used when only well-formedness matters (Parse does not
// need the resolved/normalized string back); stringSink is used when the
// scan is building a real result, such as Resolve's merged path.
type sink interface {
	writeRune(r rune)
	writeString(s string)
	string() string
	len() int
	truncate(n int)
	reset()
}

// voidSink discards every write and tracks only the length the write would
// have produced, so a pure validation scan allocates nothing.
type voidSink struct {
	length int
}

func (b *voidSink) writeRune(r rune)   { b.length += len(string(r)) }
func (b *voidSink) writeString(s string) { b.length += len(s) }
func (b *voidSink) string() string     { return "" }
func (b *voidSink) len() int           { return b.length }

func (b *voidSink) truncate(n int) {
	if n < 0 || n > b.length {
		return
	}
	b.length = n
}

func (b *voidSink) reset() { b.length = 0 }

// stringSink builds the scanned string for real, backed by a
// strings.Builder.
type stringSink struct {
	builder *strings.Builder
}

func (b *stringSink) writeRune(r rune)   { b.builder.WriteRune(r) }
func (b *stringSink) writeString(s string) { b.builder.WriteString(s) }
func (b *stringSink) string() string     { return b.builder.String() }
func (b *stringSink) len() int           { return b.builder.Len() }

func (b *stringSink) truncate(n int) {
	if n < 0 || n > b.builder.Len() {
		return
	}
	s := b.builder.String()[:n]
	b.builder.Reset()
	b.builder.WriteString(s)
}

func (b *stringSink) reset() { b.builder.Reset() }
