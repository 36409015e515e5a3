// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package inherit

import (
	"github.com/docweave/docweave/pkg/template"
)

// Store supplies templates by id. Implementations may be backed by files,
// memory, or something slower; the resolver calls Find once per chain
// member. found=false (with a nil error) means the id is simply absent.
type Store interface {
	Find(id string) (tpl *template.Template, found bool, err error)
}

// MapStore is an in-memory Store, convenient for tests and for callers that
// load templates themselves.
type MapStore struct {
	templates map[string]*template.Template
}

var _ Store = &MapStore{}

func NewMapStore(templates []*template.Template) *MapStore {
	byID := map[string]*template.Template{}
	for _, tpl := range templates {
		byID[tpl.ID] = tpl
	}
	return &MapStore{templates: byID}
}

func (s *MapStore) Find(id string) (*template.Template, bool, error) {
	tpl, found := s.templates[id]
	return tpl, found, nil
}
