// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package envval

import (
	"strings"
)

// SetPath sets the value at a dotted path inside m, creating intermediate
// mappings as needed. Existing intermediate mappings are copied before being
// descended into, so mappings shared with other environments are never
// mutated; a non-mapping intermediate value is replaced by a fresh mapping.
func SetPath(m *Map, path string, val Value) {
	segments := strings.Split(path, ".")
	if len(segments) == 1 {
		m.Set(path, val)
		return
	}

	var childMap *Map
	if existing, found := m.Get(segments[0]); found && existing.Kind() == KindMap {
		childMap = existing.Mapping().Copy()
	} else {
		childMap = NewMap()
	}

	SetPath(childMap, strings.Join(segments[1:], "."), val)
	m.Set(segments[0], NewMapValue(childMap))
}
