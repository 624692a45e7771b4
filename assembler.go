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

// assemblerState is the block assembler's working state (spec §3's
// State): accumulated raw blocks (in forward order — unlike a literal
// reverse-order stack, Go slices make appending to the end just as cheap)
// plus link reference definitions collected so far.
type assemblerState struct {
	rawBlocks []RawBlock
	refs      *referenceTable
}

// assembleRawBlocks drives the raw-block lexer in a loop over the whole
// of src, applying the merge rules of spec §4.4 as each raw block is
// produced. It returns the finished raw-block list and link reference
// table, or the first lex error encountered (the block pass is fatal on
// first error, per spec §7).
func assembleRawBlocks(src string, foldUnicode bool) ([]RawBlock, *referenceTable, error) {
	st := &assemblerState{refs: newReferenceTable()}
	c := newCursor(src)

	for {
		if c.atEnd() {
			return st.rawBlocks, st.refs, nil
		}
		before := c.snap()

		prevKind := rawBlockNone
		if n := len(st.rawBlocks); n > 0 {
			prevKind = st.rawBlocks[n-1].Kind
		}

		rb, def, err := lexOne(c, prevKind)
		if err != nil {
			return nil, nil, err
		}
		if def != nil {
			st.refs.add(*def)
			if c.pos == before.pos {
				// Defensive: a definition must always consume input.
				return nil, nil, lexErrorf(c.line, "link reference definition made no progress")
			}
			continue
		}
		if rb.Kind == rawBlockNone {
			if c.pos == before.pos {
				return nil, nil, lexErrorf(c.line, "no raw-block alternative matched")
			}
			continue
		}

		st.push(rb)
	}
}

// push applies the §4.4 merge rules, replacing the top of the raw-block
// list with a merged block when the emitted kind is compatible with what
// is already there, or appending otherwise.
func (st *assemblerState) push(rb RawBlock) {
	n := len(st.rawBlocks)
	if n == 0 {
		st.rawBlocks = append(st.rawBlocks, rb)
		return
	}
	top := &st.rawBlocks[n-1]

	switch {
	case rb.Kind == BodyRaw && top.Kind == BodyRaw:
		top.Text = top.Text + "\n" + rb.Text
		return
	case rb.Kind == BodyRaw && top.Kind == BlockQuoteRaw:
		top.Text = top.Text + "\n" + rb.Text
		return
	case rb.Kind == CodeBlockRaw && top.Kind == CodeBlockRaw:
		top.Text = top.Text + "\n" + rb.Text
		return
	case rb.Kind == IndentedCodeBlockRaw && top.Kind == IndentedCodeBlockRaw:
		top.Text = top.Text + "\n" + rb.Text
		return
	case rb.Kind == BlockQuoteRaw && top.Kind == BlockQuoteRaw:
		top.Text = top.Text + "\n" + rb.Text
		return
	default:
		st.rawBlocks = append(st.rawBlocks, rb)
	}
}
