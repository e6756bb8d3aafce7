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
	"strings"

	"github.com/jplu/rio/status"
)

// FileURI builds a "file://" View from a filesystem path and an optional
// hostname. path may be an absolute POSIX path ("/...") or a Windows drive
// path ("X:\..." or "X:/..."); anything else is rejected. Backslashes are
// turned into "/". Every byte outside unreserved ∪ sub-delims ∪ {":", "@",
// "/"} is percent-encoded, and a literal "%" in the input is emitted as
// the double-percent sentinel "%%" that DecodeFileURIPath reverses.
func FileURI(path, hostname string) (View, error) {
	encodedPath, err := encodeFilePath(path)
	if err != nil {
		return View{}, err
	}
	if isWindowsDrivePath(path) {
		encodedPath = "/" + encodedPath
	}
	return View{isFile: true, fileAuthority: hostname, filePath: encodedPath}, nil
}

func isWindowsDrivePath(path string) bool {
	return len(path) >= 3 && isAlphaByte(path[0]) && path[1] == ':' && (path[2] == '\\' || path[2] == '/')
}

func isAlphaByte(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func encodeFilePath(path string) (string, error) {
	isPosix := strings.HasPrefix(path, "/")
	isWindows := isWindowsDrivePath(path)
	if !isPosix && !isWindows {
		return "", status.New(status.BadArg, "path is neither an absolute POSIX path nor a Windows drive path: "+path)
	}
	normalized := strings.ReplaceAll(path, "\\", "/")
	var b strings.Builder
	b.Grow(len(normalized))
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		switch {
		case c == '%':
			b.WriteString("%%")
		case isFileURIUnreserved(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hexDigit(c >> 4))
			b.WriteByte(hexDigit(c & 0xF))
		}
	}
	return b.String(), nil
}

func isFileURIUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case strings.IndexByte("-._~!$&'()*+,;=:@/", c) >= 0:
		return true
	default:
		return false
	}
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'A' + n - 10
}

// DecodeFileURIPath reverses the double-percent sentinel FileURI uses to
// distinguish a literal "%" from a percent-encoding escape: each "%%"
// becomes a literal "%", leaving any other "%XX" escape untouched for the
// caller's own percent-decoding pass.
func DecodeFileURIPath(encoded string) string {
	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		if encoded[i] == '%' && i+1 < len(encoded) && encoded[i+1] == '%' {
			b.WriteByte('%')
			i++
			continue
		}
		b.WriteByte(encoded[i])
	}
	return b.String()
}
