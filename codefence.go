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

// lexFencedCodeBlock implements the §6.2 fenced code-block subparser
// contract: a line of 0-3 leading spaces, then a fence of >= 3 identical
// '`' or '~' characters, optionally followed by an info string, opens the
// block; subsequent lines are consumed verbatim until a closing fence of
// at least the opening width using the same character (or end of input).
func lexFencedCodeBlock(c *cursor) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line

	indent := leadingSpaces(c.remaining(), 3)
	c.advance(indent)

	fenceChar := c.peek()
	if fenceChar != '`' && fenceChar != '~' {
		c.restore(start)
		return RawBlock{}, false
	}
	fenceWidth := 0
	for c.peek() == fenceChar {
		fenceWidth++
		c.advance(1)
	}
	if fenceWidth < 3 {
		c.restore(start)
		return RawBlock{}, false
	}

	infoLine := c.chompLine()
	info := strings.TrimSpace(infoLine)
	if fenceChar == '`' && strings.ContainsRune(info, '`') {
		// An info string on a backtick fence must not itself contain a
		// backtick, otherwise this isn't really a fence opener.
		c.restore(start)
		return RawBlock{}, false
	}
	language := info
	if i := strings.IndexAny(info, " \t"); i >= 0 {
		language = info[:i]
	}

	var body []string
	for {
		if c.atEnd() {
			break
		}
		lineStart := c.snap()
		lineIndent := leadingSpaces(c.remaining(), 3)
		probe := *c
		probe.advance(lineIndent)
		closeWidth := 0
		for probe.peek() == fenceChar {
			closeWidth++
			probe.advance(1)
		}
		rest := probe.chompUntilOrEnd('\n')
		if closeWidth >= fenceWidth && strings.TrimSpace(rest) == "" {
			*c = probe
			if c.peek() == '\n' {
				c.advance(1)
			}
			break
		}
		c.restore(lineStart)
		line := c.chompLine()
		line, _ = trimIndentUpTo(line, fenceIndentAllowance(indent))
		body = append(body, line)
	}

	return RawBlock{
		Kind:     CodeBlockRaw,
		Line:     startLine,
		Text:     UnparsedInlines(strings.Join(body, "\n")),
		Language: language,
	}, true
}

// fenceIndentAllowance mirrors the opening fence's own indentation: each
// content line has up to that many leading spaces stripped.
func fenceIndentAllowance(openIndent int) int {
	return openIndent
}

// trimIndentUpTo strips up to n leading spaces from s.
func trimIndentUpTo(s string, n int) (string, int) {
	i := 0
	for i < n && i < len(s) && s[i] == ' ' {
		i++
	}
	return s[i:], i
}
