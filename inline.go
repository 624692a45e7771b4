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

// fragmentKind tags one entry of the flat node list produced by the
// scanning pass (spec §4.5 step 1), before link/image and emphasis
// resolution consume delimiter-run and bracket entries.
type fragmentKind int

const (
	fragText fragmentKind = iota
	fragDelimRun   // pending '*'/'_' run, may resolve to Emphasis/Strong or fall back to text
	fragOpenBracket
	fragOpenImageBracket
	fragCloseBracket // pending ']', may resolve to Link/Image or fall back to text
	fragResolved     // already a finished Inline (code span, autolink, html, hard break, or a recursively-built link/image/emphasis)
)

// inlineNode is one entry of the working list the three resolution
// passes operate on in place.
type inlineNode struct {
	kind fragmentKind

	text string // fragText

	delimChar byte // fragDelimRun
	delimLen  int
	canOpen   bool
	canClose  bool

	bracketActive bool // fragOpenBracket / fragOpenImageBracket: deactivated once a link closes over it

	resolved Inline // fragResolved

	srcStart int // byte offset in the source text where this fragment began
	srcEnd   int // byte offset in the source text just past this fragment
}

// tokenizeInline is the inline tokenizer's entry point (spec §4.5): it
// converts a paragraph-body or heading-body string into an ordered
// sequence of [Inline] tokens, resolving emphasis, code spans, links,
// images, autolinks, raw HTML, and hard line breaks against refs.
//
// A link may not itself contain another link (spec §9): resolveLinksAndImages
// enforces this by deactivating every still-open bracket opener once an
// enclosing pair resolves to a link, so no opener inside an already-resolved
// link's own span can ever be matched by a later ']'.
func tokenizeInline(s string, refs *referenceTable, opts mapOptions) ([]Inline, error) {
	nodes, err := scanFragments(s, opts)
	if err != nil {
		return nil, err
	}
	nodes, err = resolveLinksAndImages(nodes, s, refs, opts)
	if err != nil {
		return nil, err
	}
	nodes = resolveEmphasis(nodes)
	return coalesce(nodes), nil
}

// scanFragments implements spec §4.5 step 1: walk s producing the flat
// fragment list. Code spans, autolinks, raw HTML, hard line breaks, and
// backslash escapes are fully resolved here since they never interact
// with link or emphasis resolution; brackets and delimiter runs are left
// pending for the later passes.
func scanFragments(s string, opts mapOptions) ([]inlineNode, error) {
	var nodes []inlineNode
	var textBuf strings.Builder
	textStart := -1

	i := 0
	markTextStart := func() {
		if textStart < 0 {
			textStart = i
		}
	}
	flushText := func() {
		if textBuf.Len() > 0 {
			nodes = append(nodes, inlineNode{kind: fragText, text: textBuf.String(), srcStart: textStart, srcEnd: i})
			textBuf.Reset()
		}
		textStart = -1
	}

	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == '\n':
			flushText()
			start := i
			i += 2
			i = skipLeadingSpaceTab(s, i)
			nodes = append(nodes, inlineNode{kind: fragResolved, resolved: Inline{Kind: HardLineBreakInlineKind}, srcStart: start, srcEnd: i})

		case c == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]):
			markTextStart()
			textBuf.WriteByte(s[i+1])
			i += 2

		case c == '\n':
			if hardBreak, consumed := trailingHardBreakSpaces(&textBuf); hardBreak {
				flushText()
				_ = consumed
				start := i
				i++
				i = skipLeadingSpaceTab(s, i)
				nodes = append(nodes, inlineNode{kind: fragResolved, resolved: Inline{Kind: HardLineBreakInlineKind}, srcStart: start, srcEnd: i})
			} else {
				markTextStart()
				textBuf.WriteByte('\n')
				i++
				i = skipLeadingSpaceTab(s, i)
			}

		case c == '`':
			if content, next, ok := scanCodeSpan(s, i); ok {
				flushText()
				nodes = append(nodes, inlineNode{kind: fragResolved, resolved: Inline{Kind: CodeSpanInlineKind, Text: content}, srcStart: i, srcEnd: next})
				i = next
			} else {
				n := runLength(s, i, '`')
				markTextStart()
				textBuf.WriteString(s[i : i+n])
				i += n
			}

		case c == '*' || c == '_':
			flushText()
			start := i
			n := runLength(s, i, c)
			canOpen, canClose := flankingRule(s, i, n, c)
			i += n
			nodes = append(nodes, inlineNode{kind: fragDelimRun, delimChar: c, delimLen: n, canOpen: canOpen, canClose: canClose, srcStart: start, srcEnd: i})

		case c == '!' && i+1 < len(s) && s[i+1] == '[':
			flushText()
			start := i
			i += 2
			nodes = append(nodes, inlineNode{kind: fragOpenImageBracket, bracketActive: true, srcStart: start, srcEnd: i})

		case c == '[':
			flushText()
			start := i
			i++
			nodes = append(nodes, inlineNode{kind: fragOpenBracket, bracketActive: true, srcStart: start, srcEnd: i})

		case c == ']':
			flushText()
			start := i
			i++
			nodes = append(nodes, inlineNode{kind: fragCloseBracket, srcStart: start, srcEnd: i})

		case c == '<':
			if end := scanAutolink(s, i); end > 0 {
				flushText()
				nodes = append(nodes, inlineNode{kind: fragResolved, resolved: autolinkInline(s[i+1 : end-1]), srcStart: i, srcEnd: end})
				i = end
			} else if n := parseHTMLTag(s[i:]); n > 0 {
				flushText()
				nodes = append(nodes, inlineNode{kind: fragResolved, resolved: Inline{Kind: HTMLInlineKind, Text: s[i : i+n]}, srcStart: i, srcEnd: i + n})
				i += n
			} else {
				markTextStart()
				textBuf.WriteByte('<')
				i++
			}

		default:
			markTextStart()
			textBuf.WriteByte(c)
			i++
		}
	}
	flushText()
	return nodes, nil
}

func skipLeadingSpaceTab(s string, i int) int {
	for i < len(s) && isSpaceOrTab(s[i]) {
		i++
	}
	return i
}

// trailingHardBreakSpaces reports whether the text accumulated so far
// ends in >=2 trailing spaces (a hard line break marker), trimming them
// from buf if so.
func trailingHardBreakSpaces(buf *strings.Builder) (bool, int) {
	s := buf.String()
	end := len(s)
	spaces := 0
	for end > 0 && s[end-1] == ' ' {
		end--
		spaces++
	}
	if spaces >= 2 {
		buf.Reset()
		buf.WriteString(s[:end])
		return true, spaces
	}
	return false, 0
}

// scanAutolink returns the index just past a `<...>` autolink starting at
// s[start] == '<', or -1 if none is present.
func scanAutolink(s string, start int) int {
	end := strings.IndexByte(s[start+1:], '>')
	if end < 0 {
		return -1
	}
	end += start + 1
	inner := s[start+1 : end]
	if strings.ContainsAny(inner, " \t\n") {
		return -1
	}
	if isAutolinkURI(inner) || isAutolinkEmail(inner) {
		return end + 1
	}
	return -1
}

func autolinkInline(content string) Inline {
	dest := content
	if isAutolinkEmail(content) && !strings.Contains(content, ":") {
		dest = "mailto:" + content
	}
	return Inline{
		Kind:        LinkInlineKind,
		Destination: dest,
		Children:    []Inline{{Kind: TextInlineKind, Text: content}},
	}
}

// coalesce implements spec §4.5 step 5: merge adjacent resolved text
// fragments, writing any fragments left pending (unmatched brackets and
// delimiter runs not consumed by resolveLinksAndImages / resolveEmphasis)
// into the text as their literal characters.
func coalesce(nodes []inlineNode) []Inline {
	var out []Inline
	var textBuf strings.Builder
	flush := func() {
		if textBuf.Len() > 0 {
			out = append(out, Inline{Kind: TextInlineKind, Text: textBuf.String()})
			textBuf.Reset()
		}
	}
	for _, n := range nodes {
		switch n.kind {
		case fragText:
			textBuf.WriteString(n.text)
		case fragResolved:
			flush()
			out = append(out, n.resolved)
		default:
			// Any delimiter run or bracket marker still pending at this
			// point failed to pair; it is literal text.
			textBuf.WriteString(pendingNodeText(n))
		}
	}
	flush()
	return out
}

func pendingNodeText(n inlineNode) string {
	switch n.kind {
	case fragDelimRun:
		return strings.Repeat(string(n.delimChar), n.delimLen)
	case fragOpenBracket:
		return "["
	case fragOpenImageBracket:
		return "!["
	case fragCloseBracket:
		return "]"
	default:
		return ""
	}
}
