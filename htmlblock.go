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

	"golang.org/x/net/html/atom"
)

// htmlBlockStarters1/Enders1 are the CommonMark "type 1" HTML block tags:
// raw-text elements whose content is never interpreted as Markdown.
var (
	htmlBlockStarters1 = []string{"<pre", "<script", "<style", "<textarea"}
	htmlBlockEnders1   = []string{"</pre>", "</script>", "</style>", "</textarea>"}
)

// htmlBlockStarters6 is the CommonMark "type 6" list of block-level tag
// names. Grounded directly on
// zombiezen-go-commonmark/html.go's htmlBlockConditions table, which
// builds the same list from golang.org/x/net/html/atom rather than a
// hand-maintained string literal list.
var htmlBlockStarters6 = []string{
	atom.Address.String(), atom.Article.String(), atom.Aside.String(),
	atom.Base.String(), atom.Basefont.String(), atom.Blockquote.String(),
	atom.Body.String(), atom.Caption.String(), atom.Center.String(),
	atom.Col.String(), atom.Colgroup.String(), atom.Dd.String(),
	atom.Details.String(), atom.Dialog.String(), atom.Dir.String(),
	atom.Div.String(), atom.Dl.String(), atom.Dt.String(),
	atom.Fieldset.String(), atom.Figcaption.String(), atom.Figure.String(),
	atom.Footer.String(), atom.Form.String(), atom.Frame.String(),
	atom.Frameset.String(), atom.H1.String(), atom.H2.String(),
	atom.H3.String(), atom.H4.String(), atom.H5.String(), atom.H6.String(),
	atom.Head.String(), atom.Header.String(), atom.Hr.String(),
	atom.Html.String(), atom.Iframe.String(), atom.Legend.String(),
	atom.Li.String(), atom.Link.String(), atom.Main.String(),
	atom.Menu.String(), atom.Menuitem.String(), atom.Nav.String(),
	atom.Noframes.String(), atom.Ol.String(), atom.Optgroup.String(),
	atom.Option.String(), atom.P.String(), atom.Param.String(),
	atom.Section.String(), atom.Source.String(), atom.Summary.String(),
	atom.Table.String(), atom.Tbody.String(), atom.Td.String(),
	atom.Tfoot.String(), atom.Th.String(), atom.Thead.String(),
	atom.Title.String(), atom.Tr.String(), atom.Track.String(),
	atom.Ul.String(),
}

// htmlBlockCondition is one of the seven CommonMark HTML-block start/end
// condition pairs (spec §6.3, §6.4).
type htmlBlockCondition struct {
	start func(line string) bool
	end   func(line string) bool
}

var htmlBlockConditions = []htmlBlockCondition{
	{ // 1: script/pre/style/textarea
		start: func(line string) bool {
			for _, starter := range htmlBlockStarters1 {
				if hasCaseInsensitivePrefix(line, starter) {
					rest := line[len(starter):]
					if rest == "" || isSpaceOrTab(rest[0]) || rest[0] == '\n' || rest[0] == '>' {
						return true
					}
				}
			}
			return false
		},
		end: func(line string) bool {
			for _, ender := range htmlBlockEnders1 {
				if containsFold(line, ender) {
					return true
				}
			}
			return false
		},
	},
	{ // 2: comment
		start: func(line string) bool { return strings.HasPrefix(line, "<!--") },
		end:   func(line string) bool { return strings.Contains(line, "-->") },
	},
	{ // 3: processing instruction
		start: func(line string) bool { return strings.HasPrefix(line, "<?") },
		end:   func(line string) bool { return strings.Contains(line, "?>") },
	},
	{ // 4: declaration
		start: func(line string) bool {
			return strings.HasPrefix(line, "<!") && len(line) >= 3 && isAlpha(line[2])
		},
		end: func(line string) bool { return strings.Contains(line, ">") },
	},
	{ // 5: CDATA
		start: func(line string) bool { return strings.HasPrefix(line, "<![CDATA[") },
		end:   func(line string) bool { return strings.Contains(line, "]]>") },
	},
	{ // 6: known block-level tag
		start: func(line string) bool {
			rest := line
			switch {
			case strings.HasPrefix(rest, "</"):
				rest = rest[2:]
			case strings.HasPrefix(rest, "<"):
				rest = rest[1:]
			default:
				return false
			}
			for _, starter := range htmlBlockStarters6 {
				if hasCaseInsensitivePrefix(rest, starter) {
					tail := rest[len(starter):]
					if tail == "" || isSpaceOrTab(tail[0]) || tail[0] == '\n' || tail[0] == '>' || strings.HasPrefix(tail, "/>") {
						return true
					}
				}
			}
			return false
		},
		end: isBlankString,
	},
	{ // 7: any other complete open or closing tag alone on its line
		start: func(line string) bool {
			if !strings.HasPrefix(line, "<") {
				return false
			}
			var n int
			if strings.HasPrefix(line, "</") {
				n = parseHTMLClosingTag(line)
			} else {
				n = parseHTMLOpenTag(line)
			}
			if n < 0 {
				return false
			}
			return strings.TrimRight(line[n:], " \t") == ""
		},
		end: isBlankString,
	},
}

func isBlankString(line string) bool {
	return strings.TrimSpace(line) == ""
}

func hasCaseInsensitivePrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// lexHTMLBlock implements the §6.3 raw HTML block subparser contract: it
// recognizes which of the seven start conditions applies to the current
// line, then consumes lines (including the first) until the matching end
// condition is seen on some line, or end of input. For conditions 1-5 the
// line that meets the end condition is part of the block; for 6 and 7 the
// ending blank line is not.
func lexHTMLBlock(c *cursor) (RawBlock, bool) {
	start := c.snap()
	startLine := c.line

	indent := leadingSpaces(c.remaining(), 3)
	probeLine := c.remaining()[indent:]
	if i := strings.IndexByte(probeLine, '\n'); i >= 0 {
		probeLine = probeLine[:i+1]
	}

	condIndex := -1
	for i, cond := range htmlBlockConditions {
		if cond.start(probeLine) {
			condIndex = i
			break
		}
	}
	if condIndex < 0 {
		c.restore(start)
		return RawBlock{}, false
	}
	cond := htmlBlockConditions[condIndex]

	var lines []string
	first := c.chompLine()
	lines = append(lines, first)
	if !cond.end(first + "\n") {
		for !c.atEnd() {
			if condIndex >= 5 && isBlankString(peekLine(c)) {
				// Types 6 and 7 end at a blank line, which is left
				// unconsumed and is not part of the block.
				break
			}
			line := c.chompLine()
			lines = append(lines, line)
			if cond.end(line + "\n") {
				break
			}
		}
	}

	return RawBlock{
		Kind: HTMLRaw,
		Line: startLine,
		HTML: strings.Join(lines, "\n"),
	}, true
}

// autolinkGuardsParagraph implements §4.2 item 2: a line starting with
// '<' that looks like the start of an autolink (`<http://...>`,
// `<user@host>`) rather than a tag is treated as an ordinary paragraph
// line, pre-empting HTML block recognition.
func autolinkGuardsParagraph(line string) bool {
	if len(line) == 0 || line[0] != '<' {
		return false
	}
	rest := line[1:]
	if rest == "" || isSpaceOrTab(rest[0]) || rest[0] == '>' {
		return true
	}
	i := 0
	for i < len(rest) && isAlpha(rest[i]) {
		i++
	}
	if i == 0 {
		return false
	}
	if i < len(rest) {
		switch rest[i] {
		case ':', '@', '\\', '+', '.':
			return true
		}
	}
	return false
}
