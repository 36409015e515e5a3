// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package inherit

import (
	"sync"

	"github.com/docweave/docweave/pkg/template"
)

// Resolver builds fully merged templates out of a Store. Merged results are
// cached per id; cache entries are immutable once written, so concurrent
// Resolve calls are safe. Invalidate and Clear exist for the surrounding
// reload logic -- the resolver does not detect store changes itself.
type Resolver struct {
	store Store

	cacheLock sync.RWMutex
	cache     map[string]*template.Template
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store, cache: map[string]*template.Template{}}
}

// Resolve returns the template for id with its ancestor chain merged in. A
// template without a parent is returned exactly as the store holds it,
// skipping the chain, merge, and cache path.
func (r *Resolver) Resolve(id string) (*template.Template, error) {
	r.cacheLock.RLock()
	cached, found := r.cache[id]
	r.cacheLock.RUnlock()
	if found {
		return cached, nil
	}

	chain, err := r.chainTemplates(id)
	if err != nil {
		return nil, err
	}

	if len(chain) == 1 && chain[0].Parent == "" {
		return chain[0], nil
	}

	merged := chain[len(chain)-1]
	for i := len(chain) - 2; i >= 0; i-- {
		merged = Merge(merged, chain[i])
	}

	r.cacheLock.Lock()
	r.cache[id] = merged
	r.cacheLock.Unlock()

	return merged, nil
}

// Chain returns the inheritance chain for id, leaf to root.
func (r *Resolver) Chain(id string) ([]string, error) {
	chain, err := r.chainTemplates(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(chain))
	for _, tpl := range chain {
		ids = append(ids, tpl.ID)
	}
	return ids, nil
}

// Invalidate drops the cached merged result for id, if any.
func (r *Resolver) Invalidate(id string) {
	r.cacheLock.Lock()
	delete(r.cache, id)
	r.cacheLock.Unlock()
}

// Clear drops every cached merged result.
func (r *Resolver) Clear() {
	r.cacheLock.Lock()
	r.cache = map[string]*template.Template{}
	r.cacheLock.Unlock()
}

// chainTemplates follows parent links from id, collecting templates leaf to
// root. A repeated id fails immediately with CircularInheritanceError, never
// looping.
func (r *Resolver) chainTemplates(id string) ([]*template.Template, error) {
	var chain []*template.Template
	var visited []string
	seen := map[string]struct{}{}

	current := id
	referencedBy := ""

	for current != "" {
		if _, dup := seen[current]; dup {
			return nil, CircularInheritanceError{Chain: visited, Repeated: current}
		}

		tpl, found, err := r.store.Find(current)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, MissingTemplateError{ID: current, ReferencedBy: referencedBy}
		}

		seen[current] = struct{}{}
		visited = append(visited, current)
		chain = append(chain, tpl)

		referencedBy = current
		current = tpl.Parent
	}

	return chain, nil
}
