// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/docweave/docweave/pkg/inherit"
	"github.com/docweave/docweave/pkg/template"
	"github.com/docweave/docweave/pkg/templatestore"
)

type ResolveOptions struct {
	TemplateDir string
	TemplateID  string
	ContentOnly bool
}

func NewResolveOptions() *ResolveOptions {
	return &ResolveOptions{}
}

func NewResolveCmd(o *ResolveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print a template with its inheritance chain merged",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.TemplateDir, "templates", "f", ".", "Directory containing template definition files")
	cmd.Flags().StringVarP(&o.TemplateID, "template", "t", "", "Id of the template to resolve")
	cmd.Flags().BoolVar(&o.ContentOnly, "content-only", false, "Print only the merged content")
	return cmd
}

func (o *ResolveOptions) Run() error {
	if o.TemplateID == "" {
		return fmt.Errorf("Expected template id to be non-empty (specify via -t)")
	}

	store, err := templatestore.NewManager(o.TemplateDir)
	if err != nil {
		return err
	}

	resolved, err := inherit.NewResolver(store).Resolve(o.TemplateID)
	if err != nil {
		return describeResolveErr(err, store)
	}

	if o.ContentOnly {
		fmt.Printf("%s", resolved.Content)
		return nil
	}

	out, err := yaml.Marshal(asPlainMap(resolved))
	if err != nil {
		return err
	}
	fmt.Printf("%s", out)
	return nil
}

func asPlainMap(tpl *template.Template) map[string]interface{} {
	result := map[string]interface{}{
		"id":       tpl.ID,
		"category": string(tpl.Category),
		"content":  tpl.Content,
	}
	if tpl.Phase != "" {
		result["phase"] = tpl.Phase
	}
	if tpl.Version != "" {
		result["version"] = tpl.Version
	}
	if tpl.Description != "" {
		result["description"] = tpl.Description
	}
	if tpl.Parent != "" {
		result["parent"] = tpl.Parent
	}
	if len(tpl.Tags) > 0 {
		result["tags"] = tpl.Tags
	}
	if len(tpl.Variables) > 0 {
		var vars []map[string]interface{}
		for _, spec := range tpl.Variables {
			entry := map[string]interface{}{
				"name":     spec.Name,
				"type":     string(spec.Type),
				"required": spec.Required,
			}
			if !spec.Default.IsUndefined() {
				entry["default"] = spec.Default.AsText()
			}
			vars = append(vars, entry)
		}
		result["variables"] = vars
	}
	return result
}
