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

import "strings"

// lexTableBlock recognizes a GFM-style table header: a header row
// followed immediately by a delimiter row of the same column count,
// each cell containing only '-', ':', and surrounding space/tab (spec's
// domain-stack table extension, §6). Body rows are explicitly out of
// scope; only the header and alignment row are captured into a
// [TableRaw] block.
func lexTableBlock(c *cursor) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line

	headerLine := peekLine(c)
	if !looksLikeTableRow(headerLine) {
		c.restore(start)
		return RawBlock{}, false
	}
	c.chompLine()

	delimLine := peekLine(c)
	aligns, ok := parseDelimiterRow(delimLine)
	if !ok {
		c.restore(start)
		return RawBlock{}, false
	}
	c.chompLine()

	cells := splitTableRow(headerLine)
	if len(cells) != len(aligns) {
		c.restore(start)
		return RawBlock{}, false
	}

	header := make([]UnparsedInlines, len(cells))
	for i, cell := range cells {
		header[i] = UnparsedInlines(cell)
	}

	return RawBlock{
		Kind:       TableRaw,
		Line:       startLine,
		Header:     header,
		Alignments: aligns,
	}, true
}

// looksLikeTableRow requires at least one unescaped '|' on the
// line; a bare line with no pipe at all can never be a table row.
func looksLikeTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '\\' {
			i++
			continue
		}
		if trimmed[i] == '|' {
			return true
		}
	}
	return false
}

// parseDelimiterRow recognizes a GFM table delimiter row: cells composed
// solely of '-' runs with optional leading/trailing ':' for alignment.
func parseDelimiterRow(line string) ([]TableAlignment, bool) {
	cells := splitTableRow(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]TableAlignment, 0, len(cells))
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		dashes := strings.TrimSuffix(strings.TrimPrefix(cell, ":"), ":")
		if dashes == "" || strings.Trim(dashes, "-") != "" {
			return nil, false
		}
		switch {
		case left && right:
			aligns = append(aligns, AlignCenter)
		case left:
			aligns = append(aligns, AlignLeft)
		case right:
			aligns = append(aligns, AlignRight)
		default:
			aligns = append(aligns, AlignNone)
		}
	}
	return aligns, true
}

// splitTableRow splits a table row on unescaped '|' characters, trimming
// a single pair of leading/trailing pipes (the `| a | b |` convention)
// and surrounding whitespace from each cell.
func splitTableRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	var cells []string
	var buf strings.Builder
	for i := 0; i < len(trimmed); i++ {
		b := trimmed[i]
		if b == '\\' && i+1 < len(trimmed) {
			buf.WriteByte(b)
			buf.WriteByte(trimmed[i+1])
			i++
			continue
		}
		if b == '|' {
			cells = append(cells, strings.TrimSpace(buf.String()))
			buf.Reset()
			continue
		}
		buf.WriteByte(b)
	}
	cells = append(cells, strings.TrimSpace(buf.String()))
	return cells
}
