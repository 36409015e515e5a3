// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package inherit_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docweave/docweave/pkg/inherit"
	"github.com/docweave/docweave/pkg/template"
)

type countingStore struct {
	inner *inherit.MapStore
	finds int
}

func (s *countingStore) Find(id string) (*template.Template, bool, error) {
	s.finds++
	return s.inner.Find(id)
}

func threeGenerations() []*template.Template {
	return []*template.Template{
		{ID: "root", Category: template.CategoryDocument, Content: "ROOT"},
		{ID: "mid", Category: template.CategoryDocument, Parent: "root",
			Content: "{{> parent}}\nMID"},
		{ID: "leaf", Category: template.CategoryDocument, Parent: "mid",
			Content: "{{> parent}}\nLEAF"},
	}
}

func TestResolveParentlessReturnsStoreTemplate(t *testing.T) {
	stored := &template.Template{ID: "solo", Category: template.CategoryPhase, Content: "SOLO"}
	resolver := inherit.NewResolver(inherit.NewMapStore([]*template.Template{stored}))

	resolved, err := resolver.Resolve("solo")
	require.NoError(t, err)
	require.Same(t, stored, resolved)
}

func TestResolveMergesChainBottomUp(t *testing.T) {
	resolver := inherit.NewResolver(inherit.NewMapStore(threeGenerations()))

	resolved, err := resolver.Resolve("leaf")
	require.NoError(t, err)

	// the grandchild's splice receives the fully assembled ancestor text
	require.Equal(t, "ROOT\nMID\nLEAF", resolved.Content)
	require.Equal(t, "leaf", resolved.ID)
}

func TestChainLeafToRoot(t *testing.T) {
	resolver := inherit.NewResolver(inherit.NewMapStore(threeGenerations()))

	chain, err := resolver.Chain("leaf")
	require.NoError(t, err)
	require.Equal(t, []string{"leaf", "mid", "root"}, chain)

	chain, err = resolver.Chain("root")
	require.NoError(t, err)
	require.Equal(t, []string{"root"}, chain)
}

func TestResolveCircularInheritance(t *testing.T) {
	resolver := inherit.NewResolver(inherit.NewMapStore([]*template.Template{
		{ID: "id1", Parent: "id2"},
		{ID: "id2", Parent: "id1"},
	}))

	_, err := resolver.Resolve("id1")
	require.Error(t, err)

	circErr, ok := err.(inherit.CircularInheritanceError)
	require.True(t, ok, "expected CircularInheritanceError, got %T", err)
	require.Equal(t, []string{"id1", "id2"}, circErr.Chain)
	require.Equal(t, "id1", circErr.Repeated)

	_, err = resolver.Chain("id1")
	require.Error(t, err)
}

func TestResolveSelfCycle(t *testing.T) {
	resolver := inherit.NewResolver(inherit.NewMapStore([]*template.Template{
		{ID: "narcissus", Parent: "narcissus"},
	}))

	_, err := resolver.Resolve("narcissus")
	require.Error(t, err)
	require.IsType(t, inherit.CircularInheritanceError{}, err)
}

func TestResolveMissingTemplate(t *testing.T) {
	resolver := inherit.NewResolver(inherit.NewMapStore(nil))

	_, err := resolver.Resolve("ghost")
	require.Error(t, err)

	missingErr, ok := err.(inherit.MissingTemplateError)
	require.True(t, ok, "expected MissingTemplateError, got %T", err)
	require.Equal(t, "ghost", missingErr.ID)
	require.Equal(t, "", missingErr.ReferencedBy)
}

func TestResolveMissingAncestor(t *testing.T) {
	resolver := inherit.NewResolver(inherit.NewMapStore([]*template.Template{
		{ID: "child", Parent: "ghost"},
	}))

	_, err := resolver.Resolve("child")
	require.Error(t, err)

	missingErr, ok := err.(inherit.MissingTemplateError)
	require.True(t, ok)
	require.Equal(t, "ghost", missingErr.ID)
	require.Equal(t, "child", missingErr.ReferencedBy)
}

func TestResolveCachesMergedResults(t *testing.T) {
	store := &countingStore{inner: inherit.NewMapStore(threeGenerations())}
	resolver := inherit.NewResolver(store)

	first, err := resolver.Resolve("leaf")
	require.NoError(t, err)
	findsAfterFirst := store.finds

	second, err := resolver.Resolve("leaf")
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, findsAfterFirst, store.finds)

	resolver.Invalidate("leaf")
	_, err = resolver.Resolve("leaf")
	require.NoError(t, err)
	require.Greater(t, store.finds, findsAfterFirst)

	resolver.Clear()
	_, err = resolver.Resolve("leaf")
	require.NoError(t, err)
}

func TestResolveConcurrently(t *testing.T) {
	resolver := inherit.NewResolver(inherit.NewMapStore(threeGenerations()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolved, err := resolver.Resolve("leaf")
			if err != nil || resolved.Content != "ROOT\nMID\nLEAF" {
				t.Errorf("unexpected result: %v %v", resolved, err)
			}
		}()
	}
	wg.Wait()
}
