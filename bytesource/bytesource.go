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

// Package bytesource implements the reader's buffered, pull-based byte
// stream with caret (line, column) tracking.
package bytesource

import (
	"bufio"
	"io"

	"github.com/jplu/rio/diag"
	"github.com/jplu/rio/status"
)

// Source is a page-buffered pull source over an io.Reader. A page size of
// 1 gives interactive (unbuffered) behavior; larger page sizes amortize
// the cost of each underlying Read call.
type Source struct {
	r        *bufio.Reader
	document string
	line     int
	column   int
	errored  bool
	closer   io.Closer
}

// New wraps r as a Source. pageSize configures the internal buffer size;
// values below 16 are rounded up to bufio's minimum. document names the
// source for caret messages and may be empty.
func New(r io.Reader, document string, pageSize int) *Source {
	if pageSize < 16 {
		pageSize = 16
	}
	closer, _ := r.(io.Closer)
	return &Source{
		r:        bufio.NewReaderSize(r, pageSize),
		document: document,
		line:     1,
		column:   1,
		closer:   closer,
	}
}

// Caret returns the position of the next byte that Next will return.
func (s *Source) Caret() diag.Caret {
	return diag.Caret{Document: s.document, Line: s.line, Column: s.column}
}

// Error reports whether a prior Next/Peek call observed an error other
// than io.EOF.
func (s *Source) Error() bool {
	return s.errored
}

// Peek returns the next byte without consuming it. ok is false at EOF.
func (s *Source) Peek() (b byte, ok bool, err error) {
	buf, err := s.r.Peek(1)
	if err != nil {
		if err != io.EOF {
			s.errored = true
		}
		return 0, false, ioErrToStatus(err)
	}
	return buf[0], true, nil
}

// Next consumes and returns the next byte, advancing the caret. A
// newline advances the line and resets the column; a UTF-8 continuation
// byte (top bits "10") does not advance the column, per spec.md §4.7.
func (s *Source) Next() (b byte, ok bool, err error) {
	c, err := s.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			s.errored = true
		}
		return 0, false, ioErrToStatus(err)
	}
	switch {
	case c == '\n':
		s.line++
		s.column = 1
	case c&0xC0 == 0x80:
		// continuation byte: no column advance
	default:
		s.column++
	}
	return c, true, nil
}

// Close releases the underlying reader if it implements io.Closer.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func ioErrToStatus(err error) error {
	if err == io.EOF {
		return nil
	}
	return status.Wrap(status.BadRead, "", err)
}
