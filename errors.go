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

import "fmt"

// ErrorKind enumerates the ways [Parse] can fail.
type ErrorKind int

const (
	// LexError indicates that no raw-block lexer alternative matched and
	// the cursor was not at end of input.
	LexError ErrorKind = 1 + iota
	// HeadingLevelError is reserved for a heading hash-run outside 1..6;
	// no lexer alternative currently commits such a heading (a run of 7
	// or more '#' falls through to a paragraph instead), so this kind is
	// never produced.
	HeadingLevelError
	// InlineError indicates inline tokenization failed irrecoverably, such
	// as a malformed construct under strict validation.
	InlineError
	// NestingLimitError indicates the configured maximum blockquote
	// nesting depth was exceeded.
	NestingLimitError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case HeadingLevelError:
		return "heading level error"
	case InlineError:
		return "inline error"
	case NestingLimitError:
		return "nesting limit error"
	default:
		return "unknown error"
	}
}

// Error is a single parse failure, carrying the 1-based source line at
// which it was detected. Row numbers attributed to inline errors are
// advisory: inlines are re-parsed from sliced substrings of their owning
// raw block, so the row reflects where that substring started, not the
// exact character within it.
type Error struct {
	Row     int
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Kind, e.Message)
}

// FormatError renders err the way the core parser's error_to_string
// operation is specified: "Problem at row <n>\n<message>". It accepts any
// error so callers that only have an `error` value (e.g. from a generic
// collector) can still format it; non-*Error values fall back to row 0.
func FormatError(err error) string {
	if e, ok := err.(*Error); ok {
		return fmt.Sprintf("Problem at row %d\n%s", e.Row, e.Message)
	}
	return fmt.Sprintf("Problem at row 0\n%s", err.Error())
}

func lexErrorf(row int, format string, args ...any) *Error {
	return &Error{Row: row, Kind: LexError, Message: fmt.Sprintf(format, args...)}
}

func nestingLimitErrorf(row int, format string, args ...any) *Error {
	return &Error{Row: row, Kind: NestingLimitError, Message: fmt.Sprintf(format, args...)}
}
