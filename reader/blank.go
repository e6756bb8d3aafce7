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
	"fmt"

	"github.com/jplu/rio/node"
)

// blankFromLabel scopes an input blank node label per spec.md §4.5.5: a
// document-unique prefix is prepended unless Global is set, and a label
// that happens to collide with the reader's own generated alphabet is
// renamed unless Generated is set.
func (rd *Reader) blankFromLabel(label string) (node.Node, error) {
	scoped := label
	switch {
	case !rd.cfg.global:
		scoped = fmt.Sprintf("f%d_%s", rd.generation, label)
	case !rd.cfg.generated && isGeneratedLabelShape(label):
		scoped = label + "_u"
	}
	if rd.blankSeen != nil {
		rd.blankSeen[scoped] = true
	}
	return node.NewBlank(scoped)
}

// freshBlank builds a new blank node for an anonymous node or collection
// cell, using a label alphabet distinct from user input ("B<gen>_<n>").
func (rd *Reader) freshBlank() (node.Node, error) {
	rd.genCounter++
	label := fmt.Sprintf("B%d_%d", rd.generation, rd.genCounter)
	return node.NewBlank(label)
}

// isGeneratedLabelShape reports whether label has the shape of a
// reader-generated label ("B<digits>_<digits>"), the pattern blankFromLabel
// avoids colliding with unless Generated is set.
func isGeneratedLabelShape(label string) bool {
	if len(label) < 4 || label[0] != 'B' {
		return false
	}
	i := 1
	digits := 0
	for i < len(label) && label[i] >= '0' && label[i] <= '9' {
		i++
		digits++
	}
	if digits == 0 || i >= len(label) || label[i] != '_' {
		return false
	}
	i++
	digits = 0
	for i < len(label) && label[i] >= '0' && label[i] <= '9' {
		i++
		digits++
	}
	return digits > 0 && i == len(label)
}
