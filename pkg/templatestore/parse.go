// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package templatestore

import (
	"bytes"
	"fmt"

	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"

	"github.com/docweave/docweave/pkg/envval"
	"github.com/docweave/docweave/pkg/template"
)

type templateFile struct {
	ID          string         `yaml:"id"`
	Category    string         `yaml:"category"`
	Phase       string         `yaml:"phase"`
	Version     string         `yaml:"version"`
	Description string         `yaml:"description"`
	Parent      string         `yaml:"parent"`
	Tags        []string       `yaml:"tags"`
	Variables   []variableFile `yaml:"variables"`
	Content     string         `yaml:"content"`
}

type variableFile struct {
	Name     string      `yaml:"name"`
	Type     string      `yaml:"type"`
	Required *bool       `yaml:"required"`
	Default  interface{} `yaml:"default"`
	Pattern  string      `yaml:"pattern"`
	Min      *float64    `yaml:"min"`
	Max      *float64    `yaml:"max"`
	Enum     []string    `yaml:"enum"`
}

// ParseTemplate decodes one template definition. Unknown fields are decode
// errors, so typos in definition files surface instead of silently dropping
// contract pieces.
func ParseTemplate(data []byte, associatedPath string) (*template.Template, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file templateFile
	err := dec.Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("Decoding template %s: %s", associatedPath, err)
	}

	tpl, err := file.toTemplate()
	if err != nil {
		return nil, fmt.Errorf("Template %s: %s", associatedPath, err)
	}
	return tpl, nil
}

func (f templateFile) toTemplate() (*template.Template, error) {
	if f.ID == "" {
		return nil, fmt.Errorf("Expected non-empty id")
	}

	category := template.Category(f.Category)
	if !category.IsKnown() {
		return nil, fmt.Errorf("Unknown category '%s' (expected one of %v)", f.Category, template.Categories())
	}

	if f.Version != "" {
		_, err := goversion.NewVersion(f.Version)
		if err != nil {
			return nil, fmt.Errorf("Parsing version '%s': %s", f.Version, err)
		}
	}

	if f.Parent == f.ID && f.Parent != "" {
		return nil, fmt.Errorf("Expected parent of '%s' to not be itself", f.ID)
	}

	var specs []template.VariableSpec
	for i, varFile := range f.Variables {
		spec, err := varFile.toSpec()
		if err != nil {
			return nil, fmt.Errorf("Variable %d: %s", i, err)
		}
		specs = append(specs, spec)
	}

	return &template.Template{
		ID:          f.ID,
		Category:    category,
		Phase:       f.Phase,
		Version:     f.Version,
		Description: f.Description,
		Variables:   specs,
		Content:     f.Content,
		Parent:      f.Parent,
		Tags:        f.Tags,
	}, nil
}

func (v variableFile) toSpec() (template.VariableSpec, error) {
	if v.Name == "" {
		return template.VariableSpec{}, fmt.Errorf("Expected non-empty name")
	}

	varType := template.VarType(v.Type)
	if v.Type == "" {
		varType = template.TypeString
	}
	if !varType.IsKnown() {
		return template.VariableSpec{}, fmt.Errorf("Unknown type '%s' for '%s' (expected one of %v)",
			v.Type, v.Name, template.VarTypes())
	}

	// variables declared without an explicit flag are required, matching
	// the default the static extractor assumes
	required := true
	if v.Required != nil {
		required = *v.Required
	}

	defaultVal := envval.Undefined()
	if v.Default != nil {
		converted, err := envval.FromGo(v.Default)
		if err != nil {
			return template.VariableSpec{}, fmt.Errorf("Converting default for '%s': %s", v.Name, err)
		}
		defaultVal = converted
	}

	spec := template.VariableSpec{
		Name:     v.Name,
		Type:     varType,
		Required: required,
		Default:  defaultVal,
	}

	rule := template.ValidationRule{Pattern: v.Pattern, Min: v.Min, Max: v.Max, Enum: v.Enum}
	if !rule.IsZero() {
		spec.Rule = &rule
	}

	return spec, nil
}
