// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package inherit resolves template inheritance: it builds leaf-to-root
ancestor chains by following parent links, detects inheritance cycles, and
folds a chain bottom-up into one merged template, splicing ancestor content
into {{> parent}} markers generation by generation. Merged results are
cached per id; the surrounding reload logic invalidates entries when an
ancestor changes.
*/
package inherit
