// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package envval

import (
	"strings"
)

// Resolve walks a dotted path (e.g. "user.role") segment by segment through
// nested mappings starting at env. A missing segment, or an intermediate
// value that is not a mapping, resolves to the undefined sentinel. Resolve
// never fails.
func Resolve(env *Map, path string) Value {
	if env == nil || path == "" {
		return Undefined()
	}

	current := NewMapValue(env)

	for _, segment := range strings.Split(path, ".") {
		if current.Kind() != KindMap {
			return Undefined()
		}
		next, found := current.Mapping().Get(segment)
		if !found {
			return Undefined()
		}
		current = next
	}

	return current
}
