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

import "fmt"

var (
	// errNoScheme fires when an absolute reference is required but the
	// input has none (e.g. it starts with ':').
	errNoScheme = &scanError{message: "no scheme found in an absolute uri reference"}
	// errPathStartingWithSlashes fires when a path with no authority
	// starts with "//", which RFC 3986 §3.3 disallows to avoid the
	// result being re-parsed as a network-path reference.
	errPathStartingWithSlashes = &scanError{
		message: "a uri path without an authority may not start with //",
	}
)

// scanError carries enough context from a failed scan step for a useful
// message without building one eagerly on every rune.
type scanError struct {
	message string
	char    rune
	details string
}

func (e *scanError) Error() string {
	msg := e.message
	switch {
	case e.char != 0:
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	case e.details != "":
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}
