// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package envval

type Map struct {
	items []MapItem
}

type MapItem struct {
	Key   string
	Value Value
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []MapItem) *Map {
	return &Map{items}
}

func (m *Map) Set(key string, value Value) {
	for i, item := range m.items {
		if item.Key == key {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key string) (Value, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return Undefined(), false
}

func (m *Map) Delete(key string) bool {
	for i, item := range m.items {
		if item.Key == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) Keys() (keys []string) {
	m.Iterate(func(k string, _ Value) {
		keys = append(keys, k)
	})
	return
}

func (m *Map) Iterate(iterFunc func(k string, v Value)) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map) Len() int { return len(m.items) }

// Copy returns a map that can be modified without affecting the receiver.
// Loop iteration derives child environments this way; a rebinding in the
// child is never visible to the parent.
func (m *Map) Copy() *Map {
	newItems := make([]MapItem, len(m.items))
	copy(newItems, m.items)
	return &Map{newItems}
}
