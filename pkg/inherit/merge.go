// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package inherit

import (
	"github.com/docweave/docweave/pkg/template"
	"github.com/docweave/docweave/pkg/texttemplate"
)

// Merge folds child onto parent, producing a new template; neither input is
// modified. Scalar fields take the child's value, phase falls back to the
// parent's when the child declares none, variables are a position-preserving
// union, tags a set union, and any {{> parent}} marker in the child's
// content is replaced by the parent's (already merged) content.
func Merge(parent, child *template.Template) *template.Template {
	result := child.DeepCopy()

	if result.Phase == "" {
		result.Phase = parent.Phase
	}

	result.Variables = mergeVariables(parent.Variables, child.Variables)
	result.Tags = mergeTags(parent.Tags, child.Tags)
	result.Content = texttemplate.SpliceAncestor(child.Content, parent.Content)

	return result
}

// mergeVariables keeps the parent's entries at their original positions, a
// same-named child entry fully replaces the parent's in place, and
// child-only entries append after in child order. Entries are copied so the
// merged result shares no rules with store-owned templates.
func mergeVariables(parent, child []template.VariableSpec) []template.VariableSpec {
	result := make([]template.VariableSpec, 0, len(parent)+len(child))
	for _, spec := range parent {
		result = append(result, spec.DeepCopy())
	}

	position := map[string]int{}
	for i, spec := range parent {
		position[spec.Name] = i
	}

	for _, spec := range child {
		if i, found := position[spec.Name]; found {
			result[i] = spec.DeepCopy()
			continue
		}
		position[spec.Name] = len(result)
		result = append(result, spec.DeepCopy())
	}

	return result
}

func mergeTags(parent, child []string) []string {
	var result []string
	seen := map[string]struct{}{}

	for _, tag := range append(append([]string(nil), parent...), child...) {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}
