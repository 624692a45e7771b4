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

// Package commonmark provides a two-phase CommonMark-compatible Markdown
// parser: a raw-block lexer and assembler produce an intermediate block
// list, then an inline tokenizer resolves emphasis, links, images, and code
// spans against the document's link reference definitions.
//
// Rendering to HTML or any other view, command-line input handling, and
// incremental reparsing are outside this package's scope; [Parse] returns
// a document tree that a separate renderer can walk.
package commonmark
