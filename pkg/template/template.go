// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"

	"github.com/docweave/docweave/pkg/envval"
)

type Category string

const (
	CategoryPhase       Category = "phase"
	CategoryDocument    Category = "document"
	CategoryDeliverable Category = "deliverable"
	CategoryChecklist   Category = "checklist"
)

func Categories() []Category {
	return []Category{CategoryPhase, CategoryDocument, CategoryDeliverable, CategoryChecklist}
}

func (c Category) IsKnown() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type VarType string

const (
	TypeString  VarType = "string"
	TypeNumber  VarType = "number"
	TypeBoolean VarType = "boolean"
	TypeDate    VarType = "date"
	TypeArray   VarType = "array"
	TypeObject  VarType = "object"
)

func VarTypes() []VarType {
	return []VarType{TypeString, TypeNumber, TypeBoolean, TypeDate, TypeArray, TypeObject}
}

func (t VarType) IsKnown() bool {
	for _, known := range VarTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ValidationRule constrains the value a variable may take. All fields are
// optional; a zero rule accepts anything.
type ValidationRule struct {
	Pattern string
	Min     *float64
	Max     *float64
	Enum    []string
}

func (r *ValidationRule) IsZero() bool {
	return r == nil || (r.Pattern == "" && r.Min == nil && r.Max == nil && len(r.Enum) == 0)
}

// VariableSpec declares the contract for one template variable. Name is a
// dotted path into the rendering environment.
type VariableSpec struct {
	Name     string
	Type     VarType
	Required bool
	Default  envval.Value // undefined when no default is declared
	Rule     *ValidationRule
}

// DeepCopy returns a spec whose Rule shares nothing with the receiver's.
// Default needs no copying; environment values are copy-on-write and never
// mutated in place.
func (s VariableSpec) DeepCopy() VariableSpec {
	result := s
	if s.Rule != nil {
		ruleCopy := *s.Rule
		if s.Rule.Min != nil {
			min := *s.Rule.Min
			ruleCopy.Min = &min
		}
		if s.Rule.Max != nil {
			max := *s.Rule.Max
			ruleCopy.Max = &max
		}
		ruleCopy.Enum = append([]string(nil), s.Rule.Enum...)
		result.Rule = &ruleCopy
	}
	return result
}

// Template is a document skeleton: declared variables plus marker-laden
// content, optionally inheriting from a parent template.
type Template struct {
	ID          string
	Category    Category
	Phase       string
	Version     string
	Description string
	Variables   []VariableSpec
	Content     string
	Parent      string
	Tags        []string
}

func (t *Template) String() string {
	return fmt.Sprintf("template '%s' (%s)", t.ID, t.Category)
}

// DeepCopy returns a template that shares no mutable state with the
// receiver, so merged results never alias store-owned templates.
func (t *Template) DeepCopy() *Template {
	result := *t

	result.Variables = make([]VariableSpec, len(t.Variables))
	for i, spec := range t.Variables {
		result.Variables[i] = spec.DeepCopy()
	}

	result.Tags = append([]string(nil), t.Tags...)

	return &result
}

// EffectiveVariables merges an extracted manifest under explicit
// declarations: declared specs keep their order and win on name collisions,
// manifest-only entries append after.
func EffectiveVariables(declared, extracted []VariableSpec) []VariableSpec {
	result := append([]VariableSpec(nil), declared...)

	byName := map[string]struct{}{}
	for _, spec := range declared {
		byName[spec.Name] = struct{}{}
	}

	for _, spec := range extracted {
		if _, ok := byName[spec.Name]; ok {
			continue
		}
		byName[spec.Name] = struct{}{}
		result = append(result, spec)
	}

	return result
}
