// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package templatestore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/docweave/docweave/pkg/inherit"
	"github.com/docweave/docweave/pkg/template"
)

// Manager owns the set of templates loaded from a directory. All methods are
// concurrent-safe. Manager implements inherit.Store.
type Manager struct {
	dir string

	lock      sync.RWMutex
	templates map[string]*template.Template
}

var _ inherit.Store = &Manager{}

// NewManager loads every template definition (*.yml, *.yaml) under dir,
// non-recursively.
func NewManager(dir string) (*Manager, error) {
	m := &Manager{dir: dir}

	err := m.Reload()
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) Find(id string) (*template.Template, bool, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	tpl, found := m.templates[id]
	return tpl, found, nil
}

// All returns the loaded templates sorted by id.
func (m *Manager) All() []*template.Template {
	m.lock.RLock()
	defer m.lock.RUnlock()

	result := make([]*template.Template, 0, len(m.templates))
	for _, tpl := range m.templates {
		result = append(result, tpl)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Reload re-reads the directory and swaps in the freshly loaded set. Callers
// that hold an inherit.Resolver over this store are expected to clear its
// cache afterwards.
func (m *Manager) Reload() error {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return fmt.Errorf("Reading template dir: %s", err)
	}

	loaded := map[string]*template.Template{}
	sourceFiles := map[string]string{}

	for _, entry := range entries {
		if entry.IsDir() || !isTemplateFile(entry.Name()) {
			continue
		}

		path := filepath.Join(m.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("Reading template file: %s", err)
		}

		tpl, err := ParseTemplate(data, path)
		if err != nil {
			return err
		}

		if prevPath, dup := sourceFiles[tpl.ID]; dup {
			return fmt.Errorf("Template id '%s' in %s already defined in %s (ids must be unique)",
				tpl.ID, path, prevPath)
		}
		loaded[tpl.ID] = tpl
		sourceFiles[tpl.ID] = path
	}

	m.lock.Lock()
	m.templates = loaded
	m.lock.Unlock()

	return nil
}

func isTemplateFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}
