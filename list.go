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

// unorderedMarkers are the three bullet characters recognized by §4.3.
const unorderedMarkers = "-*+"

// lexUnorderedListOpener recognizes one `-`/`*`/`+` bullet item, then
// keeps consuming subsequent items of the same bullet character until one
// fails to match, a blank line is seen, or input ends. Lists in this
// parser are always tight (spec.md's tight/loose distinction is not
// modeled), so a blank line simply closes the list.
func lexUnorderedListOpener(c *cursor) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line

	delim, body, ok := unorderedItemOnce(c)
	if !ok {
		c.restore(start)
		return RawBlock{}, false
	}
	items := []ListItemRaw{taskItem(body)}

	for {
		lineStart := c.snap()
		if c.atEnd() || isBlankString(peekLine(c)) {
			break
		}
		d, b, ok := unorderedItemOnce(c)
		if !ok || d != delim {
			c.restore(lineStart)
			break
		}
		items = append(items, taskItem(b))
	}

	return RawBlock{Kind: UnorderedListRaw, Line: startLine, Items: items}, true
}

// unorderedItemOnce consumes exactly one bullet item line (marker plus
// body), restoring the cursor and failing if the current line isn't one.
func unorderedItemOnce(c *cursor) (delim byte, body string, ok bool) {
	start := c.snap()
	indent := leadingSpaces(c.remaining(), 3)
	c.advance(indent)

	d := c.peek()
	if strings.IndexByte(unorderedMarkers, d) < 0 {
		c.restore(start)
		return 0, "", false
	}
	c.advance(1)
	if countLeadingSpacebars(c) < 1 {
		c.restore(start)
		return 0, "", false
	}
	c.advance(1) // consume exactly one separating space; rest is body indent
	body = c.chompLine()
	return d, body, true
}

func countLeadingSpacebars(c *cursor) int {
	if c.peek() == ' ' {
		return 1
	}
	return 0
}

// taskItem classifies the task-list checkbox, if any, at the start of an
// unordered item's body (spec §4.3: `[ ]` incomplete, `[x]`/`[X]` complete).
func taskItem(body string) ListItemRaw {
	trimmed := strings.TrimLeft(body, " ")
	switch {
	case strings.HasPrefix(trimmed, "[ ] "), trimmed == "[ ]":
		return ListItemRaw{Body: strings.TrimPrefix(strings.TrimPrefix(trimmed, "[ ]"), " "), Task: TaskIncomplete}
	case strings.HasPrefix(trimmed, "[x] "), strings.HasPrefix(trimmed, "[X] "),
		trimmed == "[x]", trimmed == "[X]":
		rest := trimmed[3:]
		return ListItemRaw{Body: strings.TrimPrefix(rest, " "), Task: TaskComplete}
	default:
		return ListItemRaw{Body: body, Task: NoTask}
	}
}

// lexOrderedListOpener recognizes an ordinal list opener (one or more
// digits, max 9, then '.' or ')', then >=1 spacebar, then body). If the
// previous raw block was a Body (paragraph context), the starting index
// must be exactly 1 (spec invariant 7); otherwise the lexer fails so the
// line falls through to paragraph.
func lexOrderedListOpener(c *cursor, inParagraphContext bool) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line

	delim, n, body, ok := orderedItemOnce(c)
	if !ok {
		c.restore(start)
		return RawBlock{}, false
	}
	if inParagraphContext && n != 1 {
		c.restore(start)
		return RawBlock{}, false
	}

	items := []UnparsedInlines{UnparsedInlines(body)}
	for {
		lineStart := c.snap()
		if c.atEnd() || isBlankString(peekLine(c)) {
			break
		}
		d, _, b, ok := orderedItemOnce(c)
		if !ok || d != delim {
			c.restore(lineStart)
			break
		}
		items = append(items, UnparsedInlines(b))
	}

	return RawBlock{
		Kind:         OrderedListRaw,
		Line:         startLine,
		Start:        n,
		OrderedItems: items,
	}, true
}

func orderedItemOnce(c *cursor) (delim byte, n int, body string, ok bool) {
	start := c.snap()
	indent := leadingSpaces(c.remaining(), 3)
	c.advance(indent)

	digits := c.chompWhile(isDigit)
	if len(digits) == 0 || len(digits) > 9 {
		c.restore(start)
		return 0, 0, "", false
	}
	d := c.peek()
	if d != '.' && d != ')' {
		c.restore(start)
		return 0, 0, "", false
	}
	c.advance(1)
	if countLeadingSpacebars(c) < 1 {
		c.restore(start)
		return 0, 0, "", false
	}
	c.advance(1)
	body = c.chompLine()

	value := 0
	for i := 0; i < len(digits); i++ {
		value = value*10 + int(digits[i]-'0')
	}
	return d, value, body, true
}

// peekLine returns the current line's text (through the next '\n',
// exclusive) without consuming anything.
func peekLine(c *cursor) string {
	rest := c.remaining()
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}
