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

package node

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/jplu/rio/status"
)

// DecodeSize returns an upper bound on the decoded byte length of a
// xsd:hexBinary or xsd:base64Binary literal, or -1 if n is not one.
func (n Node) DecodeSize() int {
	dt, ok := n.Datatype()
	if n.kind != Literal || !ok {
		return -1
	}
	switch dt.value {
	case xsdHexBinary:
		return hex.DecodedLen(len(n.value))
	case xsdBase64Bin:
		return base64.StdEncoding.DecodedLen(len(n.value))
	default:
		return -1
	}
}

// Decode writes n's decoded bytes into buf, returning the number of bytes
// written. It fails with status.Overflow if buf is too small and with
// status.BadText if the literal is not valid hex/base64.
func (n Node) Decode(buf []byte) (int, error) {
	dt, ok := n.Datatype()
	if n.kind != Literal || !ok {
		return 0, status.New(status.BadArg, "node is not a binary literal")
	}
	switch dt.value {
	case xsdHexBinary:
		need := hex.DecodedLen(len(n.value))
		if len(buf) < need {
			return need, status.New(status.Overflow, "buffer too small for decoded hex data")
		}
		written, err := hex.Decode(buf, []byte(n.value))
		if err != nil {
			return 0, status.Wrap(status.BadText, "invalid hexBinary literal", err)
		}
		return written, nil
	case xsdBase64Bin:
		need := base64.StdEncoding.DecodedLen(len(n.value))
		if len(buf) < need {
			return need, status.New(status.Overflow, "buffer too small for decoded base64 data")
		}
		written, err := base64.StdEncoding.Decode(buf, []byte(n.value))
		if err != nil {
			return 0, status.Wrap(status.BadText, "invalid base64Binary literal", err)
		}
		return written, nil
	default:
		return 0, status.New(status.BadArg, "node is not a binary literal")
	}
}
