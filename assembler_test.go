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

func TestAssembleRawBlocksMergesConsecutiveBodies(t *testing.T) {
	raws, _, err := assembleRawBlocks("line one\nline two\n", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(raws) != 1 {
		t.Fatalf("len(raws) = %d, want 1", len(raws))
	}
	if raws[0].Kind != BodyRaw {
		t.Errorf("Kind = %v, want BodyRaw", raws[0].Kind)
	}
	want := "line one\nline two"
	if raws[0].Text != UnparsedInlines(want) {
		t.Errorf("Text = %q, want %q", raws[0].Text, want)
	}
}

func TestAssembleRawBlocksSeparatesOnBlankLine(t *testing.T) {
	raws, _, err := assembleRawBlocks("first\n\nsecond\n", true)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []RawBlockKind
	for _, rb := range raws {
		kinds = append(kinds, rb.Kind)
	}
	want := []RawBlockKind{BodyRaw, BlankLineRaw, BodyRaw}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestAssembleRawBlocksCollectsLinkReferenceDefinitions(t *testing.T) {
	_, refs, err := assembleRawBlocks("[foo]: /url \"a title\"\n\nparagraph\n", true)
	if err != nil {
		t.Fatal(err)
	}
	def, ok := refs.lookup("foo")
	if !ok {
		t.Fatal("expected definition for label \"foo\"")
	}
	if def.Destination != "/url" || def.Title != "a title" {
		t.Errorf("def = %+v", def)
	}
}

func TestAssembleRawBlocksFirstDefinitionWins(t *testing.T) {
	_, refs, err := assembleRawBlocks("[foo]: /first\n\n[foo]: /second\n", true)
	if err != nil {
		t.Fatal(err)
	}
	def, ok := refs.lookup("foo")
	if !ok {
		t.Fatal("expected definition for label \"foo\"")
	}
	if def.Destination != "/first" {
		t.Errorf("Destination = %q, want %q (first definition should win)", def.Destination, "/first")
	}
}

func TestAssembleRawBlocksMergesBlockQuoteLines(t *testing.T) {
	raws, _, err := assembleRawBlocks("> line one\n> line two\n", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(raws) != 1 || raws[0].Kind != BlockQuoteRaw {
		t.Fatalf("raws = %+v", raws)
	}
	want := "line one\nline two"
	if raws[0].Text != UnparsedInlines(want) {
		t.Errorf("Text = %q, want %q", raws[0].Text, want)
	}
}

func TestAssembleRawBlocksMergesCodeFenceLines(t *testing.T) {
	raws, _, err := assembleRawBlocks("```go\ncode\n```\n", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(raws) != 1 || raws[0].Kind != CodeBlockRaw {
		t.Fatalf("raws = %+v", raws)
	}
	if raws[0].Language != "go" {
		t.Errorf("Language = %q, want %q", raws[0].Language, "go")
	}
	if raws[0].Text != "code" {
		t.Errorf("Text = %q, want %q", raws[0].Text, "code")
	}
}
