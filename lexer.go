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

// lexOne attempts the raw-block lexer alternatives in the order given by
// spec §4.2, returning the first one that matches. prevKind is the kind
// of the most recently pushed raw block (rawBlockNone if this is the
// first), used by the indented-code-block and ordered-list alternatives.
func lexOne(c *cursor, prevKind RawBlockKind) (RawBlock, *LinkReferenceDefinition, error) {
	if c.atEnd() {
		return RawBlock{}, nil, nil
	}

	suppressHTML := autolinkGuardsParagraph(peekLine(c))

	if def, ok := lexLinkReferenceDefinition(c); ok {
		return RawBlock{}, &def, nil
	}

	if rb, ok := lexBlankLine(c); ok {
		return rb, nil, nil
	}

	if rb, ok := lexBlockQuote(c); ok {
		return rb, nil, nil
	}

	if rb, ok := lexFencedCodeBlock(c); ok {
		return rb, nil, nil
	}

	if prevKind != BodyRaw {
		if rb, ok := lexIndentedCodeBlock(c); ok {
			return rb, nil, nil
		}
	}

	if rb, ok := lexThematicBreak(c); ok {
		return rb, nil, nil
	}

	if rb, ok := lexUnorderedListOpener(c); ok {
		return rb, nil, nil
	}

	if rb, ok := lexOrderedListOpener(c, prevKind == BodyRaw); ok {
		return rb, nil, nil
	}

	if rb, ok := lexATXHeading(c); ok {
		return rb, nil, nil
	}

	if !suppressHTML {
		if rb, ok := lexHTMLBlock(c); ok {
			return rb, nil, nil
		}
	}

	if rb, ok := lexTableBlock(c); ok {
		return rb, nil, nil
	}

	return lexParagraphLine(c), nil, nil
}

// lexBlankLine recognizes a run of space-or-tab followed by '\n' (or end
// of input), collapsing any further whitespace-only lines that
// immediately follow into the same BlankLine raw block.
func lexBlankLine(c *cursor) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line
	line := peekLine(c)
	if strings.TrimSpace(line) != "" && !isBlankSpaceTabRun(line) {
		return RawBlock{}, false
	}
	for {
		lineStart := c.snap()
		if c.atEnd() {
			break
		}
		l := peekLine(c)
		if !isBlankSpaceTabRun(l) {
			c.restore(lineStart)
			break
		}
		c.chompLine()
	}
	if c.pos == start.pos {
		return RawBlock{}, false
	}
	return RawBlock{Kind: BlankLineRaw, Line: startLine}, true
}

func isBlankSpaceTabRun(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpaceOrTab(s[i]) {
			return false
		}
	}
	return true
}

// lexBlockQuote recognizes 0-3 leading spaces, '>', an optional single
// space, then the rest of the line as interior text.
func lexBlockQuote(c *cursor) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line
	indent := leadingSpaces(c.remaining(), 3)
	c.advance(indent)
	if c.peek() != '>' {
		c.restore(start)
		return RawBlock{}, false
	}
	c.advance(1)
	if c.peek() == ' ' {
		c.advance(1)
	}
	text := c.chompLine()
	return RawBlock{Kind: BlockQuoteRaw, Line: startLine, Text: UnparsedInlines(text)}, true
}

// lexIndentedCodeBlock recognizes a line indented by exactly 4 spaces or
// a single leading tab, consuming subsequent lines with the same
// indentation (or blank lines) until one falls short.
func lexIndentedCodeBlock(c *cursor) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line

	first, ok := indentedCodeLineOnce(c)
	if !ok {
		c.restore(start)
		return RawBlock{}, false
	}
	lines := []string{first}

	for {
		lineStart := c.snap()
		if c.atEnd() {
			break
		}
		if isBlankString(peekLine(c)) {
			blankStart := c.snap()
			blank := c.chompLine()
			if l2, ok := indentedCodeLineOnce(c); ok {
				lines = append(lines, strings.TrimRight(blank, " \t"), l2)
				continue
			}
			c.restore(blankStart)
			break
		}
		l, ok := indentedCodeLineOnce(c)
		if !ok {
			c.restore(lineStart)
			break
		}
		lines = append(lines, l)
	}

	return RawBlock{Kind: IndentedCodeBlockRaw, Line: startLine, Text: UnparsedInlines(strings.Join(lines, "\n"))}, true
}

func indentedCodeLineOnce(c *cursor) (string, bool) {
	start := c.snap()
	if c.peek() == '\t' {
		c.advance(1)
		return c.chompLine(), true
	}
	if _, trimmed := trimIndentUpTo(c.remaining(), 4); trimmed == 4 {
		c.advance(4)
		return c.chompLine(), true
	}
	c.restore(start)
	return "", false
}

// lexThematicBreak recognizes 0-3 leading spaces, then >=3 of the same
// '-'/'*'/'_' character with only space-or-tab interspersed, then newline
// or end of input.
func lexThematicBreak(c *cursor) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line
	indent := leadingSpaces(c.remaining(), 3)
	c.advance(indent)

	marker := c.peek()
	if marker != '-' && marker != '*' && marker != '_' {
		c.restore(start)
		return RawBlock{}, false
	}
	count := 0
	for {
		b := c.peek()
		if b == marker {
			count++
			c.advance(1)
			continue
		}
		if isSpaceOrTab(b) {
			c.advance(1)
			continue
		}
		break
	}
	if count < 3 || !(c.atEnd() || c.peek() == '\n') {
		c.restore(start)
		return RawBlock{}, false
	}
	if c.peek() == '\n' {
		c.advance(1)
	}
	return RawBlock{Kind: ThematicBreakRaw, Line: startLine}, true
}

// lexATXHeading recognizes 1-6 '#' characters, then space-or-end-of-line,
// then the heading body, stripping a trailing run of '#' (and its
// preceding whitespace) if present.
func lexATXHeading(c *cursor) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line
	indent := leadingSpaces(c.remaining(), 3)
	c.advance(indent)

	level := 0
	for c.peek() == '#' {
		level++
		c.advance(1)
	}
	if level == 0 || level > 6 {
		c.restore(start)
		return RawBlock{}, false
	}
	if !(c.atEnd() || c.peek() == '\n' || isSpaceOrTab(c.peek())) {
		c.restore(start)
		return RawBlock{}, false
	}
	c.chompWhile(isSpaceOrTab)
	body := c.chompLine()
	body = stripTrailingHashRun(body)
	return RawBlock{Kind: HeadingRaw, Line: startLine, Level: level, Text: UnparsedInlines(body)}, true
}

func stripTrailingHashRun(s string) string {
	trimmed := strings.TrimRight(s, " \t")
	end := len(trimmed)
	i := end
	for i > 0 && trimmed[i-1] == '#' {
		i--
	}
	if i == end {
		return trimmed
	}
	if i == 0 || isSpaceOrTab(trimmed[i-1]) {
		return strings.TrimRight(trimmed[:i], " \t")
	}
	return trimmed
}

// lexParagraphLine is the final fallback: a single line, captured
// verbatim (sans its terminating newline).
func lexParagraphLine(c *cursor) RawBlock {
	startLine := c.line
	text := c.chompLine()
	return RawBlock{Kind: BodyRaw, Line: startLine, Text: UnparsedInlines(text)}
}

// lexLinkReferenceDefinition recognizes `[label]:` followed by a
// destination and optional title (spec §4.2 item 3). On success it
// consumes the whole definition and returns it without producing a
// RawBlock.
func lexLinkReferenceDefinition(c *cursor) (LinkReferenceDefinition, bool) {
	start := c.snap()
	indent := leadingSpaces(c.remaining(), 3)
	c.advance(indent)

	if c.peek() != '[' {
		c.restore(start)
		return LinkReferenceDefinition{}, false
	}
	c.advance(1)
	labelStart := c.snap()
	depth := 1
	for !c.atEnd() {
		b := c.peek()
		if b == '\\' {
			c.advance(2)
			continue
		}
		if b == '[' {
			depth++
		} else if b == ']' {
			depth--
			if depth == 0 {
				break
			}
		} else if b == '\n' && c.pos-labelStart.pos > 999 {
			c.restore(start)
			return LinkReferenceDefinition{}, false
		}
		c.advance(1)
	}
	if depth != 0 {
		c.restore(start)
		return LinkReferenceDefinition{}, false
	}
	label := c.slice(labelStart, c.snap())
	c.advance(1) // ']'
	if c.peek() != ':' {
		c.restore(start)
		return LinkReferenceDefinition{}, false
	}
	c.advance(1)
	skipLinkWhitespace(c)

	dest, ok := scanLinkDestination(c)
	if !ok {
		c.restore(start)
		return LinkReferenceDefinition{}, false
	}

	afterDest := c.snap()
	skipLinkWhitespace(c)
	title, hasTitle := scanLinkTitle(c)
	if !hasTitle {
		c.restore(afterDest)
	}

	// The rest of the line must be blank for the definition to be valid.
	trailingStart := c.snap()
	rest := peekLine(c)
	if strings.TrimSpace(rest) != "" {
		if hasTitle {
			c.restore(afterDest)
			rest = peekLine(c)
			if strings.TrimSpace(rest) != "" {
				c.restore(start)
				return LinkReferenceDefinition{}, false
			}
			hasTitle = false
			title = ""
		} else {
			c.restore(start)
			return LinkReferenceDefinition{}, false
		}
	}
	_ = trailingStart
	c.chompLine()

	normalized := normalizeLabel(label, true)
	return LinkReferenceDefinition{
		Label:       normalized,
		Destination: dest,
		Title:       title,
		HasTitle:    hasTitle,
	}, normalized != ""
}

// skipLinkWhitespace consumes up to one line ending and any surrounding
// space-or-tab, per the link reference definition grammar.
func skipLinkWhitespace(c *cursor) {
	c.chompWhile(isSpaceOrTab)
	if c.peek() == '\n' {
		c.advance(1)
		c.chompWhile(isSpaceOrTab)
	}
}

// scanLinkDestination scans either an angle-bracketed or bare link
// destination. Percent-encoding of angle-bracketed destinations is
// explicitly out of this parser's scope (spec §1 lists URL
// percent-encoding utilities as an external collaborator); the raw text
// is stored as captured.
func scanLinkDestination(c *cursor) (string, bool) {
	if c.peek() == '<' {
		c.advance(1)
		destStart := c.snap()
		for {
			b := c.peek()
			if b == 0 || b == '\n' {
				return "", false
			}
			if b == '\\' {
				c.advance(2)
				continue
			}
			if b == '>' {
				dest := c.slice(destStart, c.snap())
				c.advance(1)
				return dest, true
			}
			if b == '<' {
				return "", false
			}
			c.advance(1)
		}
	}

	destStart := c.snap()
	depth := 0
	for {
		b := c.peek()
		if b == 0 || isGFMWhitespace(b) {
			break
		}
		if b == '\\' {
			c.advance(2)
			continue
		}
		if b == '(' {
			depth++
		} else if b == ')' {
			if depth == 0 {
				break
			}
			depth--
		}
		c.advance(1)
	}
	dest := c.slice(destStart, c.snap())
	if dest == "" {
		return "", false
	}
	return dest, true
}

// scanLinkTitle scans a `"…"` or `'…'` quoted title.
func scanLinkTitle(c *cursor) (string, bool) {
	quote := c.peek()
	if quote != '"' && quote != '\'' {
		return "", false
	}
	start := c.snap()
	c.advance(1)
	titleStart := c.snap()
	for {
		b := c.peek()
		if b == 0 {
			c.restore(start)
			return "", false
		}
		if b == '\\' {
			c.advance(2)
			continue
		}
		if b == quote {
			title := c.slice(titleStart, c.snap())
			c.advance(1)
			return title, true
		}
		c.advance(1)
	}
}
