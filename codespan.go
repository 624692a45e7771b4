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

// scanCodeSpan attempts to resolve a code span starting at s[start],
// which must be the first byte of a backtick run. It returns the content
// (with the single-leading/trailing-space-stripping rule applied) and
// the index just past the matching closing run, or ok=false if no run of
// the same length occurs again (in which case the backtick run is
// ordinary text, per spec §4.5 step 2).
func scanCodeSpan(s string, start int) (content string, next int, ok bool) {
	openLen := runLength(s, start, '`')
	searchFrom := start + openLen
	for searchFrom < len(s) {
		i := strings.IndexByte(s[searchFrom:], '`')
		if i < 0 {
			return "", 0, false
		}
		closeStart := searchFrom + i
		closeLen := runLength(s, closeStart, '`')
		if closeLen == openLen {
			inner := s[start+openLen : closeStart]
			return stripCodeSpanPadding(inner), closeStart + closeLen, true
		}
		searchFrom = closeStart + closeLen
	}
	return "", 0, false
}

func runLength(s string, start int, b byte) int {
	n := 0
	for start+n < len(s) && s[start+n] == b {
		n++
	}
	return n
}

// stripCodeSpanPadding strips a single leading and trailing space from
// inner iff both are present and the interior is non-empty, collapses
// internal line endings to a single space (CommonMark treats a code
// span's content as a single line), per spec §4.5 step 2.
func stripCodeSpanPadding(inner string) string {
	inner = strings.ReplaceAll(inner, "\n", " ")
	if len(inner) >= 2 && inner[0] == ' ' && inner[len(inner)-1] == ' ' && strings.TrimSpace(inner) != "" {
		return inner[1 : len(inner)-1]
	}
	return inner
}
