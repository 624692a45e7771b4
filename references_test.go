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

func TestNormalizeLabelCaseFolding(t *testing.T) {
	if got := normalizeLabel("FOO", true); got != "foo" {
		t.Errorf("normalizeLabel(%q) = %q, want %q", "FOO", got, "foo")
	}
}

func TestNormalizeLabelCollapsesWhitespace(t *testing.T) {
	if got := normalizeLabel("foo   bar\nbaz", true); got != "foo bar baz" {
		t.Errorf("normalizeLabel collapsed = %q, want %q", got, "foo bar baz")
	}
}

func TestNormalizeLabelTrims(t *testing.T) {
	if got := normalizeLabel("  foo  ", true); got != "foo" {
		t.Errorf("normalizeLabel trimmed = %q, want %q", got, "foo")
	}
}

func TestNormalizeLabelNoFold(t *testing.T) {
	if got := normalizeLabel("FOO", false); got != "foo" {
		t.Errorf("normalizeLabel(%q, false) = %q, want %q", "FOO", got, "foo")
	}
}

func TestReferenceTableFirstDefinitionWins(t *testing.T) {
	table := newReferenceTable()
	table.add(LinkReferenceDefinition{Label: "foo", Destination: "/first"})
	table.add(LinkReferenceDefinition{Label: "foo", Destination: "/second"})
	def, ok := table.lookup("foo")
	if !ok {
		t.Fatal("expected lookup to find definition")
	}
	if def.Destination != "/first" {
		t.Errorf("Destination = %q, want %q", def.Destination, "/first")
	}
}

func TestReferenceTableLookupMiss(t *testing.T) {
	table := newReferenceTable()
	if _, ok := table.lookup("missing"); ok {
		t.Error("expected lookup miss for undefined label")
	}
}
