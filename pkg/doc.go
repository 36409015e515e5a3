// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
docweave.

The codebase is organized into well-defined layers; packages depend on each
other only to the degree absolutely required.

# Entry Point

docweave builds into one executable:

	./cmd/docweave   // a command-line tool

# Commands

	pkg/cmd          // top-level command and version
	pkg/cmd/render   // render, resolve, chain, extract, validate
	pkg/cmd/core     // plain UI used by commands

# Templating

The heart of docweave's action is rendering marker-laden text. Template text
is tokenized, parsed into a block tree, and evaluated in a single pass
against an environment of tagged values.

	pkg/texttemplate // tokenizer, block matcher, parser, renderer,
	                 // variable extractor, strict validator
	pkg/envval       // tagged value variant, ordered mappings,
	                 // dotted-path resolution

# Templates and Inheritance

	pkg/template      // template data model and variable contracts
	pkg/inherit       // ancestor chains, cycle detection, bottom-up
	                  // merge, resolution cache
	pkg/templatestore // YAML-file-backed template store

# Utilities

	pkg/filepos // source positions for parse/validation errors
	pkg/spell   // spelling suggestions for misspelled template ids
	pkg/version // release version
*/
package pkg
