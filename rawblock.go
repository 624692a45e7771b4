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

// RawBlockKind discriminates the [RawBlock] variants produced by the
// raw-block lexer (spec §3, §4.2).
type RawBlockKind int

const (
	rawBlockNone RawBlockKind = iota
	BlankLineRaw
	HeadingRaw
	BodyRaw
	BlockQuoteRaw
	CodeBlockRaw
	IndentedCodeBlockRaw
	ThematicBreakRaw
	UnorderedListRaw
	OrderedListRaw
	HTMLRaw
	TableRaw
)

func (k RawBlockKind) String() string {
	switch k {
	case BlankLineRaw:
		return "BlankLine"
	case HeadingRaw:
		return "Heading"
	case BodyRaw:
		return "Body"
	case BlockQuoteRaw:
		return "BlockQuote"
	case CodeBlockRaw:
		return "CodeBlock"
	case IndentedCodeBlockRaw:
		return "IndentedCodeBlock"
	case ThematicBreakRaw:
		return "ThematicBreak"
	case UnorderedListRaw:
		return "UnorderedList"
	case OrderedListRaw:
		return "OrderedList"
	case HTMLRaw:
		return "Html"
	case TableRaw:
		return "Table"
	default:
		return "none"
	}
}

// TaskState is the checkbox state of a task-list item (§4.3).
type TaskState int

const (
	// NoTask means the list item is not a task item.
	NoTask TaskState = iota
	TaskIncomplete
	TaskComplete
)

// ListItemRaw is a single item captured by the unordered-list raw-block
// lexer: its unparsed body text plus any task-list checkbox state.
type ListItemRaw struct {
	Body string
	Task TaskState
}

// UnparsedInlines wraps a raw-block body string that still needs to be
// run through the inline tokenizer (§4.5). It exists as a distinct type,
// rather than a bare string, so that callers can tell at the type level
// whether text has been through inline resolution yet.
type UnparsedInlines string

// RawBlock is the ephemeral, inline-unparsed representation of a block
// produced by one lexer attempt. Exactly one field group is meaningful
// per Kind; see the RawBlockKind constants for which.
type RawBlock struct {
	Kind RawBlockKind
	// Line is the 1-based source line this raw block started on.
	Line int

	// HeadingRaw
	Level int
	// HeadingRaw, BodyRaw, BlockQuoteRaw, CodeBlockRaw, IndentedCodeBlockRaw
	Text UnparsedInlines
	// CodeBlockRaw
	Language string
	// UnorderedListRaw
	Items []ListItemRaw
	// OrderedListRaw
	Start int
	// OrderedListRaw
	OrderedItems []UnparsedInlines
	// HTMLRaw
	HTML string
	// TableRaw
	Header     []UnparsedInlines
	Alignments []TableAlignment
}

// TableAlignment is the column alignment declared by a GFM table's
// alignment row.
type TableAlignment int

const (
	AlignNone TableAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// LinkReferenceDefinition is a `[label]: destination "title"` binding
// collected during block assembly and consulted during inline resolution
// (spec §3, §4.2 item 3, §9 two-pass note).
type LinkReferenceDefinition struct {
	Label       string // normalized
	Destination string
	Title       string
	HasTitle    bool
}
