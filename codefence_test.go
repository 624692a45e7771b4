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

func TestLexFencedCodeBlockBackticks(t *testing.T) {
	c := newCursor("```go\nfmt.Println(1)\n```\nafter\n")
	rb, ok := lexFencedCodeBlock(c)
	if !ok {
		t.Fatal("expected match")
	}
	if rb.Language != "go" {
		t.Errorf("Language = %q, want %q", rb.Language, "go")
	}
	if rb.Text != "fmt.Println(1)" {
		t.Errorf("Text = %q", rb.Text)
	}
	if c.remaining() != "after\n" {
		t.Errorf("remaining = %q", c.remaining())
	}
}

func TestLexFencedCodeBlockTildes(t *testing.T) {
	c := newCursor("~~~\nraw ` backtick\n~~~\n")
	rb, ok := lexFencedCodeBlock(c)
	if !ok {
		t.Fatal("expected match")
	}
	if rb.Text != "raw ` backtick" {
		t.Errorf("Text = %q", rb.Text)
	}
}

func TestLexFencedCodeBlockRejectsBacktickInInfoString(t *testing.T) {
	c := newCursor("```go`withbacktick\ncode\n```\n")
	if _, ok := lexFencedCodeBlock(c); ok {
		t.Error("expected no match when a backtick-fence info string contains a backtick")
	}
}

func TestLexFencedCodeBlockUnterminatedRunsToEOF(t *testing.T) {
	c := newCursor("```\nline one\nline two\n")
	rb, ok := lexFencedCodeBlock(c)
	if !ok {
		t.Fatal("expected match")
	}
	if rb.Text != "line one\nline two" {
		t.Errorf("Text = %q", rb.Text)
	}
}

func TestLexFencedCodeBlockTooShortFence(t *testing.T) {
	c := newCursor("``\nnot a fence\n")
	if _, ok := lexFencedCodeBlock(c); ok {
		t.Error("expected no match for a two-backtick fence")
	}
}

func TestLexFencedCodeBlockStripsOpeningIndent(t *testing.T) {
	c := newCursor("  ```\n  indented code\n  ```\n")
	rb, ok := lexFencedCodeBlock(c)
	if !ok {
		t.Fatal("expected match")
	}
	if rb.Text != "indented code" {
		t.Errorf("Text = %q, want leading indent stripped", rb.Text)
	}
}
