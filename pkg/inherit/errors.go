// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package inherit

import (
	"fmt"
	"strings"
)

// MissingTemplateError reports an id absent from the store, either the
// requested template or one of its ancestors.
type MissingTemplateError struct {
	ID string

	// ReferencedBy is the child whose parent link points at the missing id;
	// empty when the requested id itself is missing.
	ReferencedBy string
}

func (e MissingTemplateError) Error() string {
	if e.ReferencedBy != "" {
		return fmt.Sprintf("Expected to find template '%s' (parent of '%s') in store", e.ID, e.ReferencedBy)
	}
	return fmt.Sprintf("Expected to find template '%s' in store", e.ID)
}

// CircularInheritanceError reports a parent link that revisits an id already
// on the chain.
type CircularInheritanceError struct {
	Chain    []string // ids visited so far, leaf first
	Repeated string
}

func (e CircularInheritanceError) Error() string {
	return fmt.Sprintf("Circular inheritance detected: %s -> %s",
		strings.Join(e.Chain, " -> "), e.Repeated)
}
