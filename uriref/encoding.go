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

import (
	"fmt"
	"unicode/utf8"
)

// percentEncodeRune writes ru to output, percent-encoding it if it isn't
// unreserved.
func percentEncodeRune(ru rune, output sink) {
	if isUnreserved(ru) {
		output.writeRune(ru)
		return
	}
	var buf [utf8.MaxRune]byte
	n := utf8.EncodeRune(buf[:], ru)
	for i := range n {
		output.writeString(fmt.Sprintf("%%%02X", buf[i]))
	}
}

// readURLCodepointOrEchar handles one rune r that the caller has already
// consumed from the input: a '%' defers
// to readEchar, a character accepted by valid is copied through, and
// certain disallowed ASCII characters are leniently percent-encoded per
// RFC 3987 §3.1 rather than rejected.
func (s *uriScanner) readURLCodepointOrEchar(r rune, valid func(rune) bool) error {
	if r == '%' {
		return s.readEchar()
	}
	if s.unchecked {
		s.output.writeRune(r)
		return nil
	}
	if valid(r) {
		s.output.writeRune(r)
		return nil
	}
	if isLaxASCII(r) {
		percentEncodeRune(r, s.output)
		return nil
	}
	return &scanError{message: "invalid uri character", char: r}
}

// readEchar consumes the two hex digits following an already-consumed '%'.
func (s *uriScanner) readEchar() error {
	c1, ok1 := s.input.next()
	c2, ok2 := s.input.next()
	if !ok1 || !ok2 || !isASCIIHexDigit(c1) || !isASCIIHexDigit(c2) {
		details := "%"
		if ok1 {
			details += string(c1)
		}
		if ok2 {
			details += string(c2)
		}
		return &scanError{message: "invalid uri percent-encoding", details: details}
	}
	s.output.writeRune('%')
	s.output.writeRune(c1)
	s.output.writeRune(c2)
	return nil
}
