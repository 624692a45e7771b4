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

// parseHTMLTag recognizes one HTML tag, comment, processing instruction,
// CDATA section, or declaration starting at s[0] == '<', returning the
// number of bytes consumed or -1 on no match. Grounded on
// zombiezen-go-commonmark/parse_html.go's parseHTMLTag, rewritten over
// plain strings instead of the teacher's inline-byte-reader (our raw
// blocks and inline tokenizer work from already-sliced substrings, so the
// reader's cross-block "jump" tracking has no equivalent here).
func parseHTMLTag(s string) int {
	if len(s) == 0 || s[0] != '<' {
		return -1
	}
	if len(s) < 2 {
		return -1
	}
	switch s[1] {
	case '?':
		if i := strings.Index(s[2:], "?>"); i >= 0 {
			return 2 + i + 2
		}
		return -1
	case '!':
		rest := s[2:]
		switch {
		case len(rest) > 0 && isAlpha(rest[0]):
			if i := strings.IndexByte(rest, '>'); i >= 0 {
				return 2 + i + 1
			}
			return -1
		case strings.HasPrefix(rest, "--"):
			body := rest[2:]
			if strings.HasPrefix(body, ">") || strings.HasPrefix(body, "->") {
				return -1
			}
			if i := strings.Index(body, "-->"); i >= 0 {
				return 2 + 2 + i + 3
			}
			return -1
		case strings.HasPrefix(rest, "[CDATA["):
			body := rest[len("[CDATA["):]
			if i := strings.Index(body, "]]>"); i >= 0 {
				return 2 + len("[CDATA[") + i + 3
			}
			return -1
		default:
			return -1
		}
	case '/':
		return parseHTMLClosingTag(s)
	default:
		return parseHTMLOpenTag(s)
	}
}

// parseHTMLOpenTag parses an open tag starting at s[0] == '<', per
// https://spec.commonmark.org/0.30/#open-tag.
func parseHTMLOpenTag(s string) int {
	i := 1
	n, ok := parseTagName(s[i:])
	if !ok {
		return -1
	}
	i += n
	for {
		before := i
		i += skipHTMLSpace(s[i:])
		if i >= len(s) {
			return -1
		}
		if s[i] == '/' {
			if i+1 >= len(s) || s[i+1] != '>' {
				return -1
			}
			return i + 2
		}
		if s[i] == '>' {
			return i + 1
		}
		if i == before {
			an, ok := parseAttribute(s[i:])
			if !ok {
				return -1
			}
			i += an
			continue
		}
		an, ok := parseAttribute(s[i:])
		if !ok {
			return -1
		}
		i += an
	}
}

// parseHTMLClosingTag parses a closing tag starting at s[0] == '<'.
func parseHTMLClosingTag(s string) int {
	if len(s) < 2 || s[1] != '/' {
		return -1
	}
	i := 2
	n, ok := parseTagName(s[i:])
	if !ok {
		return -1
	}
	i += n
	i += skipHTMLSpace(s[i:])
	if i >= len(s) || s[i] != '>' {
		return -1
	}
	return i + 1
}

func parseTagName(s string) (int, bool) {
	if len(s) == 0 || !isAlpha(s[0]) {
		return 0, false
	}
	i := 1
	for i < len(s) && (isAlpha(s[i]) || isDigit(s[i]) || s[i] == '-') {
		i++
	}
	return i, true
}

func parseAttribute(s string) (int, bool) {
	if len(s) == 0 || !(isAlpha(s[0]) || s[0] == '_' || s[0] == ':') {
		return 0, false
	}
	i := 1
	for i < len(s) && (isAlpha(s[i]) || isDigit(s[i]) || strings.IndexByte("_.:-", s[i]) >= 0) {
		i++
	}

	j := i + skipHTMLSpace(s[i:])
	if j >= len(s) || s[j] != '=' {
		return i, true
	}
	j++
	j += skipHTMLSpace(s[j:])
	if j >= len(s) {
		return 0, false
	}
	switch s[j] {
	case '\'':
		k := strings.IndexByte(s[j+1:], '\'')
		if k < 0 {
			return 0, false
		}
		return j + 1 + k + 1, true
	case '"':
		k := strings.IndexByte(s[j+1:], '"')
		if k < 0 {
			return 0, false
		}
		return j + 1 + k + 1, true
	default:
		k := j
		for k < len(s) && isUnquotedAttrChar(s[k]) {
			k++
		}
		if k == j {
			return 0, false
		}
		return k, true
	}
}

func isUnquotedAttrChar(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '"', '\'', '=', '<', '>', '`':
		return false
	default:
		return true
	}
}

func skipHTMLSpace(s string) int {
	i := 0
	for i < len(s) && isGFMWhitespace(s[i]) {
		i++
	}
	return i
}
