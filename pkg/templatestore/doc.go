// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package templatestore loads template definitions from YAML files on disk and
serves them by id. Loaded templates are immutable; Reload replaces the whole
set wholesale, it never mutates templates in place.
*/
package templatestore
