// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package template holds the document template data model: a Template with its
declared variable contracts, and the checking of an environment against
those contracts. Templates are immutable once loaded; reloads replace them
wholesale.
*/
package template
