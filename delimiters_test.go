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

func TestFlankingRule(t *testing.T) {
	tests := []struct {
		name         string
		s            string
		i, n         int
		delim        byte
		wantCanOpen  bool
		wantCanClose bool
	}{
		{"starBothSidesWord", "a*b*c", 1, 1, '*', true, true},
		{"starFollowedBySpace", "a* b", 1, 1, '*', false, true},
		{"starPrecededBySpace", "a *b", 2, 1, '*', true, false},
		{"underscoreIntrawordNoOpen", "a_b_c", 1, 1, '_', false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canOpen, canClose := flankingRule(tt.s, tt.i, tt.n, tt.delim)
			if canOpen != tt.wantCanOpen || canClose != tt.wantCanClose {
				t.Errorf("flankingRule(%q, %d, %d, %q) = (%v, %v), want (%v, %v)",
					tt.s, tt.i, tt.n, tt.delim, canOpen, canClose, tt.wantCanOpen, tt.wantCanClose)
			}
		})
	}
}

func emphasisResult(t *testing.T, src string) []Inline {
	t.Helper()
	out, err := tokenizeInline(src, newReferenceTable(), testOpts())
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestResolveEmphasisSimple(t *testing.T) {
	out := emphasisResult(t, "*foo*")
	if len(out) != 1 || out[0].Kind != EmphasisInlineKind {
		t.Fatalf("out = %+v", out)
	}
	if len(out[0].Children) != 1 || out[0].Children[0].Text != "foo" {
		t.Errorf("Children = %+v", out[0].Children)
	}
}

func TestResolveEmphasisStrong(t *testing.T) {
	out := emphasisResult(t, "**foo**")
	if len(out) != 1 || out[0].Kind != StrongInlineKind {
		t.Fatalf("out = %+v", out)
	}
}

func TestResolveEmphasisTripleNesting(t *testing.T) {
	out := emphasisResult(t, "***foo***")
	if len(out) != 1 {
		t.Fatalf("out = %+v", out)
	}
	outer := out[0]
	if outer.Kind != StrongInlineKind && outer.Kind != EmphasisInlineKind {
		t.Fatalf("outer.Kind = %v", outer.Kind)
	}
	if len(outer.Children) != 1 {
		t.Fatalf("outer.Children = %+v", outer.Children)
	}
	inner := outer.Children[0]
	if inner.Kind != StrongInlineKind && inner.Kind != EmphasisInlineKind {
		t.Fatalf("inner.Kind = %v", inner.Kind)
	}
}

func TestResolveEmphasisUnmatchedUnderscoreInWord(t *testing.T) {
	out := emphasisResult(t, "foo_bar_baz")
	if len(out) != 1 || out[0].Kind != TextInlineKind || out[0].Text != "foo_bar_baz" {
		t.Errorf("out = %+v", out)
	}
}

func TestResolveEmphasisCloserShorterThanOpener(t *testing.T) {
	// The single-star closer pairs with one of the 2 opening stars; the
	// opener's remaining star then pairs with the trailing "**", leaving
	// one literal star at the end.
	out := emphasisResult(t, "**foo* bar**")
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
}

func TestResolveEmphasisMixedOpenClose(t *testing.T) {
	out := emphasisResult(t, "**a*b**")
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
}
