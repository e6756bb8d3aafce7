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

package reader

import (
	"unicode/utf8"

	"github.com/jplu/rio/node"
	"github.com/jplu/rio/status"
)

// skipWSAndComments consumes whitespace and "#"-to-end-of-line comments.
func (rd *Reader) skipWSAndComments() error {
	for {
		b, ok, err := rd.peekByte()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if _, _, err := rd.nextByte(); err != nil {
				return err
			}
		case b == '#':
			if err := rd.SkipUntilByte('\n'); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// readUnicodeEscapeAfter reads the 4 (kind=='u') or 8 (kind=='U') hex
// digits of a \u/\U escape already past the leading kind byte, decodes
// the code point and writes its UTF-8 encoding to the arena.
func (rd *Reader) readUnicodeEscapeAfter(kind byte) error {
	n := 4
	if kind == 'U' {
		n = 8
	}
	var cp rune
	for i := 0; i < n; i++ {
		b, ok, err := rd.nextByte()
		if err != nil {
			return err
		}
		if !ok || !isHexDigit(b) {
			if rd.cfg.lax {
				return rd.arena.WriteRune(utf8.RuneError)
			}
			return rd.errorf(status.BadSyntax, "invalid unicode escape")
		}
		cp = cp<<4 | rune(hexVal(b))
	}
	if !utf8.ValidRune(cp) {
		cp = utf8.RuneError
	}
	return rd.arena.WriteRune(cp)
}

// readIRIRef reads an IRIREF, assuming the opening "<" has already been
// consumed. It resolves \u/\U escapes but otherwise passes bytes through
// unvalidated, leaving syntactic IRI validation to uriref.
func (rd *Reader) readIRIRef() (string, error) {
	rd.arena.Reset()
	for {
		b, ok, err := rd.nextByte()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", rd.errorf(status.NoData, "unterminated IRIREF")
		}
		switch {
		case b == '>':
			return rd.arena.String(), nil
		case b == '\\':
			kind, ok, err := rd.nextByte()
			if err != nil {
				return "", err
			}
			if !ok || (kind != 'u' && kind != 'U') {
				return "", rd.errorf(status.BadSyntax, "invalid escape in IRIREF")
			}
			if err := rd.readUnicodeEscapeAfter(kind); err != nil {
				return "", err
			}
		case b <= 0x20 || b == '<' || b == '"' || b == '{' || b == '}' || b == '|' || b == '^' || b == '`':
			if !rd.cfg.lax {
				return "", rd.errorf(status.BadSyntax, "invalid character 0x%02x in IRIREF", b)
			}
			if err := rd.arena.WriteByte(b); err != nil {
				return "", err
			}
		default:
			if err := rd.decodeUTF8Byte(b); err != nil {
				return "", err
			}
		}
	}
}

// decodeUTF8Byte validates and appends a (possibly multi-byte) UTF-8
// sequence starting at lead to the arena. In lax mode an invalid sequence
// is replaced with U+FFFD; in strict mode it fails with BadSyntax.
func (rd *Reader) decodeUTF8Byte(lead byte) error {
	if lead < 0x80 {
		return rd.arena.WriteByte(lead)
	}
	var n int
	switch {
	case lead&0xE0 == 0xC0:
		n = 1
	case lead&0xF0 == 0xE0:
		n = 2
	case lead&0xF8 == 0xF0:
		n = 3
	default:
		return rd.invalidUTF8()
	}
	buf := make([]byte, 1, 4)
	buf[0] = lead
	for i := 0; i < n; i++ {
		b, ok, err := rd.peekByte()
		if err != nil {
			return err
		}
		if !ok || b&0xC0 != 0x80 {
			return rd.invalidUTF8()
		}
		if _, _, err := rd.nextByte(); err != nil {
			return err
		}
		buf = append(buf, b)
	}
	if !utf8.Valid(buf) {
		return rd.invalidUTF8()
	}
	return rd.arena.WriteString(string(buf))
}

func (rd *Reader) invalidUTF8() error {
	if rd.cfg.lax {
		return rd.arena.WriteRune(utf8.RuneError)
	}
	return rd.errorf(status.BadSyntax, "invalid UTF-8 byte sequence")
}

// readStringEscape reads one escape sequence's payload, the leading "\"
// already consumed, appending the decoded byte(s) to the arena.
func (rd *Reader) readStringEscape() error {
	b, ok, err := rd.nextByte()
	if err != nil {
		return err
	}
	if !ok {
		return rd.errorf(status.NoData, "unterminated escape sequence")
	}
	switch b {
	case 't':
		return rd.arena.WriteByte('\t')
	case 'b':
		return rd.arena.WriteByte('\b')
	case 'n':
		return rd.arena.WriteByte('\n')
	case 'r':
		return rd.arena.WriteByte('\r')
	case 'f':
		return rd.arena.WriteByte('\f')
	case '"':
		return rd.arena.WriteByte('"')
	case '\'':
		return rd.arena.WriteByte('\'')
	case '\\':
		return rd.arena.WriteByte('\\')
	case 'u', 'U':
		return rd.readUnicodeEscapeAfter(b)
	default:
		if rd.cfg.lax {
			return rd.arena.WriteByte(b)
		}
		return rd.errorf(status.BadSyntax, "invalid escape sequence \\%c", b)
	}
}

// readQuotedLiteral reads a string literal body, the opening quote
// already consumed and passed as quote. It detects the long ("""/''')
// form by peeking two further quote bytes.
func (rd *Reader) readQuotedLiteral(quote byte) (value string, long bool, err error) {
	b2, ok2, err := rd.peekByte()
	if err != nil {
		return "", false, err
	}
	if ok2 && b2 == quote {
		if _, _, err := rd.nextByte(); err != nil {
			return "", false, err
		}
		b3, ok3, err := rd.peekByte()
		if err != nil {
			return "", false, err
		}
		if ok3 && b3 == quote {
			if _, _, err := rd.nextByte(); err != nil {
				return "", false, err
			}
			long = true
		} else {
			return "", false, nil
		}
	}
	rd.arena.Reset()
	quoteRun := 0
	for {
		b, ok, err := rd.nextByte()
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, rd.errorf(status.NoData, "unterminated string literal")
		}
		if b == quote {
			if !long {
				return rd.arena.String(), false, nil
			}
			quoteRun++
			if quoteRun >= 3 {
				return rd.arena.String(), true, nil
			}
			continue
		}
		if quoteRun > 0 {
			for i := 0; i < quoteRun; i++ {
				if err := rd.arena.WriteByte(quote); err != nil {
					return "", false, err
				}
			}
			quoteRun = 0
		}
		if b == '\\' {
			if err := rd.readStringEscape(); err != nil {
				return "", false, err
			}
			continue
		}
		if !long && (b == '\n' || b == '\r') {
			return "", false, rd.errorf(status.BadSyntax, "unescaped newline in short string literal")
		}
		if err := rd.decodeUTF8Byte(b); err != nil {
			return "", false, err
		}
	}
}

// isPNChar reports whether b may appear in a prefixed-name prefix or
// local part. Unicode PN_CHARS_BASE ranges beyond ASCII are approximated
// by accepting every byte >= 0x80 (any UTF-8 lead or continuation byte).
func isPNChar(b byte) bool {
	return b == '-' || b == '_' || (b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b >= 0x80
}

func isPNCharDot(b byte) bool { return isPNChar(b) || b == '.' }

// readPrefixedNameOrKeyword reads a bare word: either "a", a boolean
// keyword, or a PN_PREFIX ":" PN_LOCAL prefixed name. first is the
// already-consumed first byte.
func (rd *Reader) readPrefixedNameOrKeyword(first byte) (string, error) {
	rd.arena.Reset()
	if err := rd.arena.WriteByte(first); err != nil {
		return "", err
	}
	for {
		b, ok, err := rd.peekByte()
		if err != nil {
			return "", err
		}
		if !ok || !(isPNCharDot(b) || b == ':' || b == '%' || b == '\\') {
			break
		}
		if _, _, err := rd.nextByte(); err != nil {
			return "", err
		}
		switch b {
		case '%':
			if err := rd.arena.WriteByte(b); err != nil {
				return "", err
			}
			for i := 0; i < 2; i++ {
				h, ok, err := rd.nextByte()
				if err != nil {
					return "", err
				}
				if !ok || !isHexDigit(h) {
					return "", rd.errorf(status.BadSyntax, "invalid %%-escape in prefixed name")
				}
				if err := rd.arena.WriteByte(h); err != nil {
					return "", err
				}
			}
		case '\\':
			esc, ok, err := rd.nextByte()
			if err != nil {
				return "", err
			}
			if !ok {
				return "", rd.errorf(status.NoData, "unterminated escape in prefixed name")
			}
			if err := rd.arena.WriteByte(esc); err != nil {
				return "", err
			}
		default:
			if err := rd.arena.WriteByte(b); err != nil {
				return "", err
			}
		}
	}
	return rd.arena.String(), nil
}

// readBlankNodeLabel reads a blank node's input label, the leading "_:"
// already consumed.
func (rd *Reader) readBlankNodeLabel() (string, error) {
	rd.arena.Reset()
	for {
		b, ok, err := rd.peekByte()
		if err != nil {
			return "", err
		}
		if !ok || !(isPNCharDot(b) || b == ':') {
			break
		}
		if _, _, err := rd.nextByte(); err != nil {
			return "", err
		}
		if err := rd.arena.WriteByte(b); err != nil {
			return "", err
		}
	}
	if rd.arena.Len() == 0 {
		return "", rd.errorf(status.BadSyntax, "empty blank node label")
	}
	return rd.arena.String(), nil
}

func isNumericLead(b byte) bool {
	return (b >= '0' && b <= '9') || b == '+' || b == '-' || b == '.'
}

// readNumericLiteral reads an INTEGER/DECIMAL/DOUBLE token, first being
// its already-consumed leading byte. It returns the raw lexical form and
// the xsd datatype URI it corresponds to.
func (rd *Reader) readNumericLiteral(first byte) (text, datatype string, err error) {
	rd.arena.Reset()
	if err := rd.arena.WriteByte(first); err != nil {
		return "", "", err
	}
	sawDot := first == '.'
	sawExp := false
	for {
		b, ok, err := rd.peekByte()
		if err != nil {
			return "", "", err
		}
		if !ok {
			break
		}
		switch {
		case b >= '0' && b <= '9':
		case b == '.' && !sawDot && !sawExp:
			sawDot = true
		case (b == 'e' || b == 'E') && !sawExp:
			sawExp = true
		case (b == '+' || b == '-') && sawExp:
			// only valid immediately after the e/E, caller order enforces this loosely
		default:
			goto done
		}
		if _, _, err := rd.nextByte(); err != nil {
			return "", "", err
		}
		if err := rd.arena.WriteByte(b); err != nil {
			return "", "", err
		}
	}
done:
	text = rd.arena.String()
	switch {
	case sawExp:
		datatype = node.XSDDouble
	case sawDot:
		datatype = node.XSDDecimal
	default:
		datatype = node.XSDInteger
	}
	return text, datatype, nil
}
