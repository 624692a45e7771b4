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

// defaultMaxNestingDepth bounds blockquote recursion (spec §5) so that
// adversarial input (thousands of nested `>` markers) fails with a
// [NestingLimitError] instead of exhausting the goroutine stack.
const defaultMaxNestingDepth = 128

// Options configures [Parse]. The zero value is not directly usable;
// call [DefaultOptions] to get a populated value, then override
// individual fields.
type Options struct {
	// MaxNestingDepth bounds how many blockquote levels may nest before
	// parsing fails with a [NestingLimitError]. Zero forbids any
	// blockquote nesting at all; there is no "unlimited" setting, since
	// accepting arbitrarily deep nesting from untrusted input risks
	// exhausting the goroutine stack during the recursive tree mapping
	// pass.
	MaxNestingDepth int

	// CaseFold selects Unicode case folding (via golang.org/x/text/cases)
	// for link-label normalization when true, or a plain ASCII
	// strings.ToLower when false.
	CaseFold bool
}

// DefaultOptions returns the Options [Parse] uses when called without an
// explicit configuration: a nesting depth of 128 and Unicode case
// folding enabled.
func DefaultOptions() Options {
	return Options{
		MaxNestingDepth: defaultMaxNestingDepth,
		CaseFold:        true,
	}
}

// Parse converts Markdown source into a document tree (spec §6.1): a
// two-phase pass first assembles raw blocks and collects link reference
// definitions, then maps each raw block into its final [Block] form,
// tokenizing inline content along the way. Parse never returns a partial
// tree alongside an error — on failure the returned slice is nil.
func Parse(input string) ([]Block, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions is [Parse] with explicit [Options].
func ParseWithOptions(input string, opts Options) ([]Block, error) {
	raws, refs, err := assembleRawBlocks(input, opts.CaseFold)
	if err != nil {
		return nil, err
	}

	mo := mapOptions{
		foldUnicode:      opts.CaseFold,
		remainingNesting: opts.MaxNestingDepth,
	}
	blocks, err := mapRawBlocks(raws, refs, mo)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}
