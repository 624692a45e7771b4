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

import "testing"

// TestPropertyLineJoin is P1: consecutive non-blank lines join into a
// single paragraph whose text is the lines joined by "\n".
func TestPropertyLineJoin(t *testing.T) {
	tests := [][]string{
		{"one line"},
		{"line a", "line b"},
		{"line a", "line b", "line c", "line d"},
	}
	for _, lines := range tests {
		src := ""
		for i, l := range lines {
			if i > 0 {
				src += "\n"
			}
			src += l
		}
		src += "\n"

		blocks, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		if len(blocks) != 1 || blocks[0].Kind != ParagraphKind {
			t.Fatalf("Parse(%q) = %+v, want a single Paragraph", src, blocks)
		}
		inlines := blocks[0].Inlines
		if len(inlines) != 1 || inlines[0].Kind != TextInlineKind {
			t.Fatalf("Inlines = %+v", inlines)
		}
		want := ""
		for i, l := range lines {
			if i > 0 {
				want += "\n"
			}
			want += l
		}
		if inlines[0].Text != want {
			t.Errorf("Text = %q, want %q", inlines[0].Text, want)
		}
	}
}

// TestPropertyBlankLineSeparation is P2.
func TestPropertyBlankLineSeparation(t *testing.T) {
	blocks, err := Parse("line a\n\nline b\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 || blocks[0].Kind != ParagraphKind || blocks[1].Kind != ParagraphKind {
		t.Fatalf("blocks = %+v", blocks)
	}
}

// TestPropertyHeadingLevel is P3: for 1 <= k <= 6 a hash-run of length k
// yields a Heading of that level, and for k = 7 it yields a Paragraph.
func TestPropertyHeadingLevel(t *testing.T) {
	for k := 1; k <= 6; k++ {
		hashes := ""
		for i := 0; i < k; i++ {
			hashes += "#"
		}
		src := hashes + " body\n"
		blocks, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		if len(blocks) != 1 || blocks[0].Kind != HeadingKind || blocks[0].Level != k {
			t.Errorf("Parse(%q) = %+v, want Heading level %d", src, blocks, k)
		}
	}
}

func TestPropertyHeadingLevelSevenIsParagraph(t *testing.T) {
	blocks, err := Parse("####### body\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Kind != ParagraphKind {
		t.Fatalf("Parse(%q) = %+v, want a single Paragraph", "####### body\n", blocks)
	}
}

// TestPropertyThematicBreakIdempotence is P4.
func TestPropertyThematicBreakIdempotence(t *testing.T) {
	for _, ch := range []string{"---", "***", "___"} {
		blocks, err := Parse(ch + "\n")
		if err != nil {
			t.Fatalf("Parse(%q): %v", ch, err)
		}
		if len(blocks) != 1 || blocks[0].Kind != ThematicBreakKind {
			t.Errorf("Parse(%q) = %+v, want a single ThematicBreak", ch, blocks)
		}
	}
}

// TestPropertyBlockquoteLazyContinuation is P5.
func TestPropertyBlockquoteLazyContinuation(t *testing.T) {
	blocks, err := Parse("> a\nb\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || blocks[0].Kind != BlockQuoteKind {
		t.Fatalf("blocks = %+v", blocks)
	}
	inner := blocks[0].Blocks
	if len(inner) != 1 || inner[0].Kind != ParagraphKind {
		t.Fatalf("inner = %+v", inner)
	}
	if len(inner[0].Inlines) != 1 || inner[0].Inlines[0].Text != "a\nb" {
		t.Errorf("Inlines = %+v", inner[0].Inlines)
	}
}

// TestPropertyCodeBlockMerge is P6.
func TestPropertyCodeBlockMerge(t *testing.T) {
	blocks, err := Parse("```\ncode one\n```\n```\ncode two\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || blocks[0].Kind != CodeBlockKind {
		t.Fatalf("blocks = %+v", blocks)
	}
}

// TestPropertyListStartIndexConstraint is P7.
func TestPropertyListStartIndexConstraint(t *testing.T) {
	blocks, err := Parse("paragraph\n2. item\n")
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range blocks {
		if b.Kind == OrderedListKind {
			t.Errorf("blocks = %+v, did not want an OrderedList when a non-1 start interrupts a paragraph", blocks)
		}
	}

	blocks, err = Parse("paragraph\n1. item\n")
	if err != nil {
		t.Fatal(err)
	}
	foundList := false
	for _, b := range blocks {
		if b.Kind == OrderedListKind {
			foundList = true
		}
	}
	if !foundList {
		t.Errorf("blocks = %+v, want an OrderedList when a 1-start interrupts a paragraph", blocks)
	}
}

// TestPropertyEmphasisRuleOfThree is P8.
func TestPropertyEmphasisRuleOfThree(t *testing.T) {
	out := emphasisResult(t, "***foo***")
	if len(out) != 1 || out[0].Kind != StrongInlineKind {
		t.Fatalf("out = %+v, want Strong(Emphasis(Text(\"foo\")))", out)
	}
	inner := out[0].Children
	if len(inner) != 1 || inner[0].Kind != EmphasisInlineKind {
		t.Fatalf("inner = %+v", inner)
	}
	leaf := inner[0].Children
	if len(leaf) != 1 || leaf[0].Kind != TextInlineKind || leaf[0].Text != "foo" {
		t.Errorf("leaf = %+v", leaf)
	}
}

// TestPropertyReferenceResolutionForward is P9.
func TestPropertyReferenceResolutionForward(t *testing.T) {
	blocks, err := Parse("[x][y]\n\n[y]: /u\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || blocks[0].Kind != ParagraphKind {
		t.Fatalf("blocks = %+v", blocks)
	}
	inlines := blocks[0].Inlines
	if len(inlines) != 1 || inlines[0].Kind != LinkInlineKind {
		t.Fatalf("inlines = %+v", inlines)
	}
	link := inlines[0]
	if link.Destination != "/u" || link.HasTitle {
		t.Errorf("link = %+v", link)
	}
	if len(link.Children) != 1 || link.Children[0].Text != "x" {
		t.Errorf("Children = %+v", link.Children)
	}
}

func TestScenarioOrderedListCustomStart(t *testing.T) {
	blocks, err := Parse("5. a\n6. b\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || blocks[0].Kind != OrderedListKind || blocks[0].Start != 5 {
		t.Fatalf("blocks = %+v", blocks)
	}
}

func TestScenarioIndentedThematicBreakBecomesCodeBlock(t *testing.T) {
	blocks, err := Parse("    ---\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || blocks[0].Kind != CodeBlockKind || blocks[0].Code != "---" {
		t.Fatalf("blocks = %+v", blocks)
	}
}
