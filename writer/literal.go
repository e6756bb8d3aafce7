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

package writer

import (
	"strings"
	"unicode/utf8"

	"github.com/jplu/rio/node"
	"github.com/jplu/rio/status"
)

// unquotedDatatypes are the xsd datatypes Turtle/TriG may write as a bare
// token instead of a quoted literal plus "^^<datatype>" suffix.
var unquotedDatatypes = map[string]bool{
	node.XSDInteger: true,
	node.XSDDecimal: true,
	node.XSDDouble:  true,
	node.XSDBoolean: true,
}

// writeLiteralTerm writes a Literal node per spec.md §4.6.4. allowUnquoted
// enables the bare numeric/boolean shorthand (Turtle/TriG only).
func (wr *Writer) writeLiteralTerm(n node.Node, allowUnquoted bool) error {
	if allowUnquoted && n.Flags()&(node.HasLanguage) == 0 {
		if dt, ok := n.Datatype(); ok && unquotedDatatypes[dt.String()] {
			return wr.writeString(n.String())
		}
	}

	long := n.Flags()&node.IsLongLiteral != 0
	if err := wr.writeQuotedString(n.String(), long); err != nil {
		return err
	}

	if lang, ok := n.Language(); ok {
		return wr.writeString("@" + strings.ToLower(lang))
	}
	if dt, ok := n.Datatype(); ok && dt.String() != node.XSDString {
		if err := wr.writeString("^^"); err != nil {
			return err
		}
		return wr.writeURITerm(dt)
	}
	return nil
}

// writeQuotedString writes value as a Turtle/N-Triples quoted string,
// short ("...") or long ("""...""") form.
func (wr *Writer) writeQuotedString(value string, long bool) error {
	quote := `"`
	if long {
		quote = `"""`
	}
	if err := wr.writeString(quote); err != nil {
		return err
	}
	if long {
		if err := wr.writeLongStringBody(value); err != nil {
			return err
		}
	} else if err := wr.writeShortStringBody(value); err != nil {
		return err
	}
	return wr.writeString(quote)
}

func (wr *Writer) writeShortStringBody(value string) error {
	for i := 0; i < len(value); {
		b := value[i]
		switch b {
		case '"':
			if err := wr.writeString(`\"`); err != nil {
				return err
			}
			i++
		case '\\':
			if err := wr.writeString(`\\`); err != nil {
				return err
			}
			i++
		case '\n':
			if err := wr.writeString(`\n`); err != nil {
				return err
			}
			i++
		case '\r':
			if err := wr.writeString(`\r`); err != nil {
				return err
			}
			i++
		case '\t':
			if err := wr.writeString(`\t`); err != nil {
				return err
			}
			i++
		default:
			n, err := wr.writeLiteralByte(value, i, b)
			if err != nil {
				return err
			}
			i += n
		}
	}
	return nil
}

// writeLongStringBody writes value for a triple-quoted literal, escaping
// a '"' only where a run of unescaped quotes would otherwise close the
// literal early.
func (wr *Writer) writeLongStringBody(value string) error {
	quoteRun := 0
	for i := 0; i < len(value); {
		b := value[i]
		switch b {
		case '"':
			quoteRun++
			if quoteRun >= 3 || i == len(value)-1 {
				if err := wr.writeString(`\"`); err != nil {
					return err
				}
				quoteRun = 0
			} else if err := wr.writeByte('"'); err != nil {
				return err
			}
			i++
			continue
		case '\\':
			if err := wr.writeString(`\\`); err != nil {
				return err
			}
			i++
		default:
			n, err := wr.writeLiteralByte(value, i, b)
			if err != nil {
				return err
			}
			i += n
		}
		quoteRun = 0
	}
	return nil
}

// writeLiteralByte writes the byte at value[i] (not one of the bytes
// given special handling by the caller), returning how many bytes of
// value it consumed: 1 for ASCII or an invalid UTF-8 byte, otherwise the
// full size of the rune.
func (wr *Writer) writeLiteralByte(value string, i int, b byte) (int, error) {
	if b < 0x80 {
		return 1, wr.writeByte(b)
	}
	r, size := utf8.DecodeRuneInString(value[i:])
	if r == utf8.RuneError && size <= 1 {
		if !wr.cfg.lax {
			return 0, status.New(status.BadText, "invalid utf-8 in literal")
		}
		return 1, writeRuneEscape(wr, 0xFFFD)
	}
	if wr.cfg.ascii {
		return size, writeRuneEscape(wr, r)
	}
	return size, wr.writeString(value[i : i+size])
}
