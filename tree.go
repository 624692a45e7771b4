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

// BlockKind discriminates the [Block] variants produced by the tree
// mapper (spec §3). Only the fields documented for a given kind are
// meaningful.
type BlockKind int

const (
	blockNone BlockKind = iota
	HeadingKind
	ParagraphKind
	BlockQuoteKind
	CodeBlockKind
	ThematicBreakKind
	UnorderedListKind
	OrderedListKind
	TableKind
	HTMLBlockKind
)

func (k BlockKind) String() string {
	switch k {
	case HeadingKind:
		return "Heading"
	case ParagraphKind:
		return "Paragraph"
	case BlockQuoteKind:
		return "BlockQuote"
	case CodeBlockKind:
		return "CodeBlock"
	case ThematicBreakKind:
		return "ThematicBreak"
	case UnorderedListKind:
		return "UnorderedList"
	case OrderedListKind:
		return "OrderedList"
	case TableKind:
		return "Table"
	case HTMLBlockKind:
		return "HtmlBlock"
	default:
		return "none"
	}
}

// ListItem is a single item of an [UnorderedListKind] block.
type ListItem struct {
	Task    TaskState
	Inlines []Inline
}

// TableColumn is one header cell of a [TableKind] block.
type TableColumn struct {
	Header    []Inline
	Alignment TableAlignment
}

// Block is a structural element of a parsed document (spec §3's Block
// variant). Exactly one field group below is populated, selected by Kind.
type Block struct {
	Kind BlockKind

	// HeadingKind
	Level int
	// HeadingKind, ParagraphKind
	Inlines []Inline
	// BlockQuoteKind
	Blocks []Block
	// CodeBlockKind
	Code     string
	Language string // empty when there is no language (indented block, or fence without info string)
	HasLang  bool
	// UnorderedListKind
	Items []ListItem
	// OrderedListKind
	Start      int
	OrderedRows [][]Inline
	// TableKind
	Columns []TableColumn
	// HTMLBlockKind
	HTML string
}

// InlineKind discriminates the [Inline] variants produced by the inline
// tokenizer (spec §3).
type InlineKind int

const (
	inlineNone InlineKind = iota
	TextInlineKind
	CodeSpanInlineKind
	EmphasisInlineKind
	StrongInlineKind
	LinkInlineKind
	ImageInlineKind
	HardLineBreakInlineKind
	HTMLInlineKind
)

func (k InlineKind) String() string {
	switch k {
	case TextInlineKind:
		return "Text"
	case CodeSpanInlineKind:
		return "CodeSpan"
	case EmphasisInlineKind:
		return "Emphasis"
	case StrongInlineKind:
		return "Strong"
	case LinkInlineKind:
		return "Link"
	case ImageInlineKind:
		return "Image"
	case HardLineBreakInlineKind:
		return "HardLineBreak"
	case HTMLInlineKind:
		return "HtmlInline"
	default:
		return "none"
	}
}

// Inline is one resolved inline content element (spec §3). Exactly one
// field group below is populated, selected by Kind.
type Inline struct {
	Kind InlineKind

	// TextInlineKind, CodeSpanInlineKind, HTMLInlineKind
	Text string
	// EmphasisInlineKind, StrongInlineKind, LinkInlineKind (text),
	// ImageInlineKind (alt)
	Children []Inline
	// LinkInlineKind, ImageInlineKind
	Destination string
	Title       string
	HasTitle    bool
}

// mapOptions threads the settings the tree mapper and inline tokenizer
// need but that do not belong on every call site: the fold mode for
// label lookups and the remaining nesting-depth budget (spec §5).
type mapOptions struct {
	foldUnicode      bool
	remainingNesting int
}

// mapRawBlocks is the tree mapper (spec §4.6): it walks raw blocks in
// forward order, invoking the inline tokenizer on each body that carries
// inlines and recursively re-running the block assembler on blockquote
// interiors.
func mapRawBlocks(raws []RawBlock, refs *referenceTable, opts mapOptions) ([]Block, error) {
	var out []Block
	for _, rb := range raws {
		b, ok, err := mapOneRawBlock(rb, refs, opts)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func mapOneRawBlock(rb RawBlock, refs *referenceTable, opts mapOptions) (Block, bool, error) {
	switch rb.Kind {
	case BodyRaw:
		inlines, err := tokenizeInline(string(rb.Text), refs, opts)
		if err != nil {
			return Block{}, false, err
		}
		if len(inlines) == 0 {
			return Block{}, false, nil // invariant 1: empty paragraphs are dropped
		}
		return Block{Kind: ParagraphKind, Inlines: inlines}, true, nil

	case HeadingRaw:
		inlines, err := tokenizeInline(string(rb.Text), refs, opts)
		if err != nil {
			return Block{}, false, err
		}
		return Block{Kind: HeadingKind, Level: rb.Level, Inlines: inlines}, true, nil

	case BlockQuoteRaw:
		if opts.remainingNesting <= 0 {
			return Block{}, false, nestingLimitErrorf(rb.Line, "blockquote nesting exceeds configured maximum")
		}
		childOpts := opts
		childOpts.remainingNesting--
		raws, childRefs, err := assembleRawBlocks(string(rb.Text), opts.foldUnicode)
		if err != nil {
			return Block{}, false, err
		}
		mergedRefs := mergeRefs(refs, childRefs)
		blocks, err := mapRawBlocks(raws, mergedRefs, childOpts)
		if err != nil {
			return Block{}, false, err
		}
		return Block{Kind: BlockQuoteKind, Blocks: blocks}, true, nil

	case UnorderedListRaw:
		items := make([]ListItem, 0, len(rb.Items))
		for _, it := range rb.Items {
			inlines, err := tokenizeInline(it.Body, refs, opts)
			if err != nil {
				return Block{}, false, err
			}
			items = append(items, ListItem{Task: it.Task, Inlines: inlines})
		}
		return Block{Kind: UnorderedListKind, Items: items}, true, nil

	case OrderedListRaw:
		rows := make([][]Inline, 0, len(rb.OrderedItems))
		for _, body := range rb.OrderedItems {
			inlines, err := tokenizeInline(string(body), refs, opts)
			if err != nil {
				return Block{}, false, err
			}
			rows = append(rows, inlines)
		}
		return Block{Kind: OrderedListKind, Start: rb.Start, OrderedRows: rows}, true, nil

	case CodeBlockRaw:
		return Block{Kind: CodeBlockKind, Code: string(rb.Text), Language: rb.Language, HasLang: rb.Language != ""}, true, nil

	case IndentedCodeBlockRaw:
		return Block{Kind: CodeBlockKind, Code: string(rb.Text), HasLang: false}, true, nil

	case ThematicBreakRaw:
		return Block{Kind: ThematicBreakKind}, true, nil

	case HTMLRaw:
		return Block{Kind: HTMLBlockKind, HTML: rb.HTML}, true, nil

	case TableRaw:
		columns := make([]TableColumn, 0, len(rb.Header))
		for i, h := range rb.Header {
			inlines, err := tokenizeInline(string(h), refs, opts)
			if err != nil {
				return Block{}, false, err
			}
			align := AlignNone
			if i < len(rb.Alignments) {
				align = rb.Alignments[i]
			}
			columns = append(columns, TableColumn{Header: inlines, Alignment: align})
		}
		return Block{Kind: TableKind, Columns: columns}, true, nil

	case BlankLineRaw:
		return Block{}, false, nil

	default:
		return Block{}, false, nil
	}
}

// mergeRefs returns a reference table containing both outer and inner's
// definitions, with outer winning on conflicts (the complete document's
// table is built bottom-up during assembly, but a nested blockquote's own
// lexer pass collects its own local definitions too; spec invariant 5
// says the first definition in source order wins, and since the
// blockquote's interior is assembled before its definitions could have
// appeared earlier in the outer document, outer-document definitions are
// authoritative).
func mergeRefs(outer, inner *referenceTable) *referenceTable {
	if len(inner.defs) == 0 {
		return outer
	}
	merged := newReferenceTable()
	for k, v := range outer.defs {
		merged.defs[k] = v
	}
	for k, v := range inner.defs {
		if _, exists := merged.defs[k]; !exists {
			merged.defs[k] = v
		}
	}
	return merged
}
