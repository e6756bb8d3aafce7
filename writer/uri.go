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
	"fmt"
	"unicode/utf8"

	"github.com/jplu/rio/node"
	"github.com/jplu/rio/status"
	"github.com/jplu/rio/uriref"
)

// writeURITerm writes a Uri node per spec.md §4.6.3's precedence: a
// prefixed name, else a root-relative reference, else an absolute or
// verbatim "<uri>" form.
func (wr *Writer) writeURITerm(n node.Node) error {
	if !wr.cfg.expanded {
		if curie, ok := wr.env.Qualify(n); ok {
			return wr.writeString(curie.String())
		}
	}
	if !wr.cfg.verbatim {
		if base, hasBase := wr.env.BaseURI(); hasBase {
			target, err := uriref.Parse(n.String())
			if err == nil && target.IsAbsolute() && uriref.IsWithin(target, base) {
				rel, err := base.Relativize(target)
				if err == nil {
					return wr.writeAbsoluteURI(rel.String())
				}
			}
		}
	}
	return wr.writeAbsoluteURI(n.String())
}

// writeAbsoluteURI writes raw, which may be absolute or (in Verbatim
// mode, or when no root matched) relative, bracketed as "<...>".
func (wr *Writer) writeAbsoluteURI(raw string) error {
	if err := wr.writeByte('<'); err != nil {
		return err
	}
	if err := wr.writeEscapedURI(raw); err != nil {
		return err
	}
	return wr.writeByte('>')
}

// writeEscapedURI writes raw's bytes, escaping '>' and '\' (which would
// otherwise be ambiguous inside an IRIREF) and, in Ascii mode, every
// non-ASCII code point as a \u/\U escape.
func (wr *Writer) writeEscapedURI(raw string) error {
	for i := 0; i < len(raw); {
		b := raw[i]
		switch {
		case b == '>' || b == '\\':
			if err := wr.writeString(fmt.Sprintf("\\u%04X", b)); err != nil {
				return err
			}
			i++
		case b < 0x80:
			if err := wr.writeByte(b); err != nil {
				return err
			}
			i++
		default:
			r, size := utf8.DecodeRuneInString(raw[i:])
			if r == utf8.RuneError && size <= 1 {
				if !wr.cfg.lax {
					return status.New(status.BadText, "invalid utf-8 in uri")
				}
				if err := writeRuneEscape(wr, 0xFFFD); err != nil {
					return err
				}
				i++
				continue
			}
			if wr.cfg.ascii {
				if err := writeRuneEscape(wr, r); err != nil {
					return err
				}
			} else if err := wr.writeString(raw[i : i+size]); err != nil {
				return err
			}
			i += size
		}
	}
	return nil
}

// writeRuneEscape writes r as "\uXXXX" or, for code points beyond the
// basic multilingual plane, "\UXXXXXXXX".
func writeRuneEscape(wr *Writer, r rune) error {
	if r <= 0xFFFF {
		return wr.writeString(fmt.Sprintf("\\u%04X", r))
	}
	return wr.writeString(fmt.Sprintf("\\U%08X", r))
}
