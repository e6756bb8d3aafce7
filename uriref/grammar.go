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

// Character-class predicates (RFC 3986/3987 grammar) and the bidirectional
// structural checks RFC 3987 §4.2 layers on top of it.
package uriref

import (
	"errors"
	"strings"
	"unicode"

	// TODO: at some point implement NFKC-free bidi classification locally.
	"golang.org/x/text/unicode/bidi"
)

func isASCIILetter(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }

func isASCIIDigit(r rune) bool { return '0' <= r && r <= '9' }

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= unicode.ToLower(r) && unicode.ToLower(r) <= 'f')
}

// isLaxASCII is the set of US-ASCII characters RFC 3987 §3.1 allows a
// lenient parser to accept and percent-encode rather than reject outright.
// "#", "%", "[", "]" are deliberately excluded.
func isLaxASCII(c rune) bool {
	return strings.ContainsRune("<>\" {}|\\^`", c)
}

// isForbiddenBidiFormatting flags the bidi control characters RFC 3987
// §4.1 bans from appearing in an IRI at all: LRM (U+200E), RLM (U+200F),
// and LRE/RLE/PDF/LRO/RLO (U+202A-U+202E).
func isForbiddenBidiFormatting(c rune) bool {
	return (c >= '\u202A' && c <= '\u202E') || c == '\u200E' || c == '\u200F'
}

// isIUnreservedOrSubDelims is iunreserved / sub-delims, RFC 3987's
// Unicode-widened version of RFC 3986's unreserved set.
func isIUnreservedOrSubDelims(c rune) bool {
	if isForbiddenBidiFormatting(c) {
		return false
	}
	if isUnreservedOrSubDelims(c) {
		return true
	}
	switch {
	case c >= '\u00A0' && c <= '\uD7FF',
		c >= '\uF900' && c <= '\uFDCF',
		c >= '\uFDF0' && c <= '\uFFEF',
		c >= 0x10000 && c <= 0x1FFFD,
		c >= 0x20000 && c <= 0x2FFFD,
		c >= 0x30000 && c <= 0x3FFFD,
		c >= 0x40000 && c <= 0x4FFFD,
		c >= 0x50000 && c <= 0x5FFFD,
		c >= 0x60000 && c <= 0x6FFFD,
		c >= 0x70000 && c <= 0x7FFFD,
		c >= 0x80000 && c <= 0x8FFFD,
		c >= 0x90000 && c <= 0x9FFFD,
		c >= 0xA0000 && c <= 0xAFFFD,
		c >= 0xB0000 && c <= 0xBFFFD,
		c >= 0xC0000 && c <= 0xCFFFD,
		c >= 0xD0000 && c <= 0xDFFFD,
		c >= 0xE1000 && c <= 0xEFFFD:
		return true
	}
	return false
}

// isUnreservedOrSubDelims is RFC 3986's unreserved / sub-delims, ASCII only.
func isUnreservedOrSubDelims(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || strings.ContainsRune("!$&'()*+,-.;=_~", c)
}

func isUnreserved(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// validateBidiComponent enforces RFC 3987 §4.2's two structural rules for a
// single component: it must not mix LTR and RTL characters, and if it has
// any RTL characters its first and last characters must also be RTL.
func validateBidiComponent(component string) error {
	if component == "" {
		return nil
	}

	runes := []rune(component)
	var hasLTR, hasRTL bool

	for _, r := range runes {
		prop, _ := bidi.LookupRune(r)
		switch prop.Class() {
		case bidi.R, bidi.AL:
			hasRTL = true
		case bidi.L:
			hasLTR = true
		case bidi.EN, bidi.ES, bidi.ET, bidi.AN, bidi.CS, bidi.B, bidi.S, bidi.WS, bidi.ON, bidi.BN, bidi.NSM,
			bidi.Control, bidi.LRO, bidi.RLO, bidi.LRE, bidi.RLE, bidi.PDF, bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
			// neutral with respect to this check
		}
	}

	if hasLTR && hasRTL {
		return &scanError{
			message: "uri component mixes left-to-right and right-to-left characters",
			details: component,
		}
	}

	if hasRTL {
		firstClass, _ := bidi.LookupRune(runes[0])
		if c := firstClass.Class(); c != bidi.R && c != bidi.AL {
			return &scanError{
				message: "right-to-left uri component must start and end with right-to-left characters",
				details: component,
			}
		}
		lastClass, _ := bidi.LookupRune(runes[len(runes)-1])
		if c := lastClass.Class(); c != bidi.R && c != bidi.AL {
			return &scanError{
				message: "right-to-left uri component must start and end with right-to-left characters",
				details: component,
			}
		}
	}

	return nil
}

// validateBidiHost applies validateBidiComponent per dot-separated label,
// as RFC 3987 §4.2 requires for host names; IP literals are exempt.
func validateBidiHost(host string) error {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		return nil
	}
	for _, label := range strings.Split(host, ".") {
		if err := validateBidiComponent(label); err != nil {
			var e *scanError
			if errors.As(err, &e) {
				e.message = "invalid uri host label"
				e.details = label + " in host '" + host + "'"
				return e
			}
		}
	}
	return nil
}
