// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package texttemplate renders marker-laden document text against an
environment of values.

The language has exactly four constructs:

	{{name}}                     variable reference (dotted path)
	{{#if cond}}...{{/if}}       conditional block
	{{#each list as item}}...{{/each}}  iteration block
	{{> parent}}                 inheritance splice (resolved at merge time)

Rendering tokenizes the text, parses the tokens into a block tree, and
evaluates the tree in a single deterministic pass. The renderer is tolerant:
unterminated block markers are emitted literally, undefined references become
empty text. Validate applies the strict reading of the same syntax and
reports what the renderer tolerates.
*/
package texttemplate
