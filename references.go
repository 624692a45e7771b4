// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commonmark

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeLabel implements the label-normalization rule of spec §3: lowercase,
// collapse internal whitespace runs to a single space, then trim. It uses
// Unicode case folding (golang.org/x/text/cases) rather than a hand-rolled
// ASCII lowercasing loop, so link labels containing non-ASCII letters
// normalize the way CommonMark's reference implementation does.
var foldCaser = cases.Fold()

func normalizeLabel(label string, foldUnicode bool) string {
	var folded string
	if foldUnicode {
		folded = foldCaser.String(label)
	} else {
		folded = strings.ToLower(label)
	}

	var b strings.Builder
	b.Grow(len(folded))
	inSpace := false
	for _, r := range folded {
		if isUnicodeSpace(r) {
			if !inSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func isUnicodeSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0x00A0, 0x2000, 0x2001, 0x2002,
		0x2003, 0x2004, 0x2005, 0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000:
		return true
	default:
		return false
	}
}

// defaultLanguage names the undetermined language tag. cases.Fold() is
// language-agnostic and takes no tag; no code in this package currently
// references defaultLanguage.
var defaultLanguage = language.Und

// referenceTable is a label -> definition mapping built during block
// assembly and frozen before the inline pass begins (spec §9). First
// definition wins on collision (spec invariant 5).
type referenceTable struct {
	defs map[string]LinkReferenceDefinition
}

func newReferenceTable() *referenceTable {
	return &referenceTable{defs: make(map[string]LinkReferenceDefinition)}
}

// add inserts def unless a definition with the same normalized label
// already exists.
func (t *referenceTable) add(def LinkReferenceDefinition) {
	if _, exists := t.defs[def.Label]; exists {
		return
	}
	t.defs[def.Label] = def
}

func (t *referenceTable) lookup(normalizedLabel string) (LinkReferenceDefinition, bool) {
	d, ok := t.defs[normalizedLabel]
	return d, ok
}
