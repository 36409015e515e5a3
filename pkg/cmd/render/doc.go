// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package render implements the docweave subcommands that operate on template
directories and content files: render, resolve, chain, extract, validate.
*/
package render
