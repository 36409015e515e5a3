// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd construct the top-level docweave command with its subcommands.
*/
package cmd
