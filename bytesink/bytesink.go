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

// Package bytesink implements the writer's block-buffered push byte
// stream.
package bytesink

import (
	"bufio"
	"io"

	"github.com/jplu/rio/status"
)

// Sink is a block-buffered push sink over an io.Writer, coalescing small
// writes into one underlying Write call per block.
type Sink struct {
	w      *bufio.Writer
	closer io.Closer
}

// New wraps w as a Sink. blockSize configures the internal buffer size;
// values below 16 are raised to 16.
func New(w io.Writer, blockSize int) *Sink {
	if blockSize < 16 {
		blockSize = 16
	}
	closer, _ := w.(io.Closer)
	return &Sink{w: bufio.NewWriterSize(w, blockSize), closer: closer}
}

// Write appends p to the sink's buffer, flushing to the underlying writer
// as needed. A short write is fatal: any error is returned wrapped as
// status.BadWrite.
func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		return n, status.Wrap(status.BadWrite, "", err)
	}
	return n, nil
}

// WriteString is the string-argument counterpart to Write, avoiding a
// []byte conversion at call sites that already hold a string.
func (s *Sink) WriteString(str string) (int, error) {
	n, err := s.w.WriteString(str)
	if err != nil {
		return n, status.Wrap(status.BadWrite, "", err)
	}
	return n, nil
}

// WriteByte writes a single byte.
func (s *Sink) WriteByte(b byte) error {
	if err := s.w.WriteByte(b); err != nil {
		return status.Wrap(status.BadWrite, "", err)
	}
	return nil
}

// Close flushes any buffered bytes to the underlying writer and closes it
// if it implements io.Closer.
func (s *Sink) Close() error {
	if err := s.w.Flush(); err != nil {
		return status.Wrap(status.BadWrite, "", err)
	}
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return status.Wrap(status.BadWrite, "", err)
	}
	return nil
}
