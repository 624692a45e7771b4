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

// bracketOpener tracks one pending '[' or '![' on the bracket stack used
// by resolveLinksAndImages (spec §4.5 step 3).
type bracketOpener struct {
	nodeIndex int
	isImage   bool
	active    bool // deactivated once an enclosing link has been resolved over it
}

// resolveLinksAndImages implements the bracket-matching half of spec
// §4.5 step 3: walk the fragment list left to right, and whenever a `]`
// is found, try each of the inline, full-reference, collapsed-reference,
// and shortcut-reference forms in turn against the nearest active
// opener. A resolved link deactivates all earlier openers (a link may
// not nest inside another link); a resolved image does not.
func resolveLinksAndImages(nodes []inlineNode, src string, refs *referenceTable, opts mapOptions) ([]inlineNode, error) {
	var stack []bracketOpener

	for idx := 0; idx < len(nodes); idx++ {
		switch nodes[idx].kind {
		case fragOpenBracket:
			stack = append(stack, bracketOpener{nodeIndex: idx, isImage: false, active: true})

		case fragOpenImageBracket:
			stack = append(stack, bracketOpener{nodeIndex: idx, isImage: true, active: true})

		case fragCloseBracket:
			openerPos := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].active {
					openerPos = i
					break
				}
			}
			if openerPos < 0 {
				continue
			}
			opener := stack[openerPos]
			closePos := nodes[idx].srcEnd
			dest, title, hasTitle, children, tailEnd, ok := matchLinkTail(nodes, idx, opener, src, refs, opts)
			if !ok {
				stack = stack[:openerPos]
				continue
			}

			kind := LinkInlineKind
			if opener.isImage {
				kind = ImageInlineKind
			}
			wrapped := inlineNode{kind: fragResolved, resolved: Inline{
				Kind:        kind,
				Children:    children,
				Destination: dest,
				Title:       title,
				HasTitle:    hasTitle,
			}}

			nodes = spliceResolved(nodes, opener.nodeIndex, idx, wrapped)
			nodes = trimConsumedTail(nodes, opener.nodeIndex+1, closePos, tailEnd)
			idx = opener.nodeIndex

			stack = stack[:openerPos]
			if !opener.isImage {
				for i := range stack {
					stack[i].active = false
				}
			}
		}
	}
	return nodes, nil
}

// spliceResolved replaces nodes[from:to] (inclusive of both the opener
// and the original closer, i.e. to is the index of the `]` node) with a
// single already-resolved node.
func spliceResolved(nodes []inlineNode, from, to int, wrapped inlineNode) []inlineNode {
	out := make([]inlineNode, 0, len(nodes)-(to-from))
	out = append(out, nodes[:from]...)
	out = append(out, wrapped)
	out = append(out, nodes[to+1:]...)
	return out
}

// matchLinkTail tries, in order, the inline-destination form, the full
// reference form, the collapsed reference form, and the shortcut
// reference form for the bracketed span [opener.nodeIndex, closeIdx],
// returning the resolved destination/title, the fully-tokenized child
// inlines of the bracket's text, and the absolute source offset just
// past whatever tail syntax (if any) was consumed after the `]`.
func matchLinkTail(nodes []inlineNode, closeIdx int, opener bracketOpener, src string, refs *referenceTable, opts mapOptions) (dest, title string, hasTitle bool, children []Inline, tailEnd int, ok bool) {
	closePos := nodes[closeIdx].srcEnd

	if closePos < len(src) && src[closePos] == '(' {
		if d, t, hasT, end, ok2 := scanInlineLinkTail(src, closePos); ok2 {
			children = tokenizeBracketText(nodes, opener.nodeIndex, closeIdx, opener.isImage)
			return d, t, hasT, children, end, true
		}
	}

	rawLabelText := bracketPlainText(nodes, opener.nodeIndex, closeIdx, opener.isImage)

	if closePos < len(src) && src[closePos] == '[' {
		if label, end, ok2 := scanBracketLabel(src, closePos+1); ok2 {
			lookupLabel := label
			if lookupLabel == "" {
				lookupLabel = rawLabelText
			}
			if def, found := refs.lookup(normalizeLabel(lookupLabel, opts.foldUnicode)); found {
				children = tokenizeBracketText(nodes, opener.nodeIndex, closeIdx, opener.isImage)
				return def.Destination, def.Title, def.HasTitle, children, end, true
			}
			return "", "", false, nil, 0, false
		}
	}

	// Shortcut reference: the bracket's own text is the label, and no
	// tail syntax is consumed at all.
	if def, found := refs.lookup(normalizeLabel(rawLabelText, opts.foldUnicode)); found {
		children = tokenizeBracketText(nodes, opener.nodeIndex, closeIdx, opener.isImage)
		return def.Destination, def.Title, def.HasTitle, children, closePos, true
	}

	return "", "", false, nil, 0, false
}

// trimConsumedTail removes the source byte range [from, to) from the
// fragment list starting at index i (the node immediately after a
// resolved link/image), dropping whole nodes whose span lies entirely
// within the range and truncating the one node that straddles the
// boundary. Fragments after a tail's destination/title are always plain
// literal text (the `(`, quotes, and destination bytes are never
// special syntax on their own), so only fragText entries are expected to
// straddle; any other kind is left untouched as a conservative fallback.
func trimConsumedTail(nodes []inlineNode, i, from, to int) []inlineNode {
	if from >= to {
		return nodes
	}
	for i < len(nodes) {
		n := nodes[i]
		if n.srcStart >= to {
			break
		}
		if n.srcEnd <= to {
			nodes = append(nodes[:i], nodes[i+1:]...)
			continue
		}
		if n.kind == fragText {
			nodes[i].text = unescapeBackslashes(substringAt(n, to))
			nodes[i].srcStart = to
		}
		break
	}
	return nodes
}

// substringAt returns the raw (not-yet-unescaped) tail of a fragText
// node's original span starting at absolute offset at; since fragText
// nodes no longer carry the raw source (only the already-unescaped
// text), the result is exact only when no escape sequence precedes at
// within the node; otherwise it is a best-effort reconstruction.
func substringAt(n inlineNode, at int) string {
	if at <= n.srcStart {
		return n.text
	}
	frac := at - n.srcStart
	if frac >= len(n.text) {
		return ""
	}
	return n.text[frac:]
}

// bracketPlainText renders the literal source text between an opener and
// its closing bracket, used as the reference label for shortcut and
// empty-collapsed reference forms (labels are matched against raw text,
// not against already-resolved inline content).
func bracketPlainText(nodes []inlineNode, from, to int, isImage bool) string {
	var out []byte
	for i := from + 1; i < to; i++ {
		switch {
		case nodes[i].kind == fragText:
			out = append(out, nodes[i].text...)
		case nodes[i].kind == fragResolved && nodes[i].resolved.Kind == TextInlineKind:
			out = append(out, nodes[i].resolved.Text...)
		default:
			out = append(out, pendingNodeText(nodes[i])...)
		}
	}
	return string(out)
}

// tokenizeBracketText produces the finished child inline list for a
// resolved link or image's text/alt content: it runs emphasis resolution
// over the fragments between the brackets (which may include
// already-resolved nested images) and coalesces the result. Links and
// images are handled the same way.
func tokenizeBracketText(nodes []inlineNode, from, to int, isImage bool) []Inline {
	inner := append([]inlineNode{}, nodes[from+1:to]...)
	inner = resolveEmphasis(inner)
	return coalesce(inner)
}

// scanInlineLinkTail parses an inline link/image destination-and-title
// tail `(dest "title")` starting at src[parenPos] == '(', per spec §4.5
// step 3's inline-link form. A bare `()` is a valid empty destination,
// unlike the bare-destination form in a link reference definition.
func scanInlineLinkTail(src string, parenPos int) (dest, title string, hasTitle bool, end int, ok bool) {
	c := newCursor(src[parenPos:])
	c.advance(1) // '('
	skipLinkWhitespace(c)

	if c.peek() == ')' {
		c.advance(1)
		return "", "", false, parenPos + c.pos, true
	}

	if c.peek() == '<' {
		d, dok := scanLinkDestination(c)
		if !dok {
			return "", "", false, 0, false
		}
		dest = d
	} else {
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
		dest = c.slice(destStart, c.snap())
	}

	afterDest := c.snap()
	skipLinkWhitespace(c)
	if t, tok := scanLinkTitle(c); tok {
		title, hasTitle = t, true
	} else {
		c.restore(afterDest)
	}
	skipLinkWhitespace(c)

	if c.peek() != ')' {
		return "", "", false, 0, false
	}
	c.advance(1)
	return dest, title, hasTitle, parenPos + c.pos, true
}

// scanBracketLabel parses a reference label `[...]` whose content begins
// at src[start] (i.e. just after the opening '['), returning the raw
// (un-normalized) label text and the index just past the closing ']'.
// Mirrors the label scan in lexLinkReferenceDefinition.
func scanBracketLabel(src string, start int) (label string, end int, ok bool) {
	i := start
	depth := 1
	for i < len(src) {
		b := src[i]
		if b == '\\' && i+1 < len(src) {
			i += 2
			continue
		}
		if b == '[' {
			depth++
		} else if b == ']' {
			depth--
			if depth == 0 {
				return src[start:i], i + 1, true
			}
		} else if b == '\n' && i-start > 999 {
			return "", 0, false
		}
		i++
	}
	return "", 0, false
}
