// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdcore "github.com/docweave/docweave/pkg/cmd/core"
	"github.com/docweave/docweave/pkg/inherit"
	"github.com/docweave/docweave/pkg/template"
	"github.com/docweave/docweave/pkg/templatestore"
	"github.com/docweave/docweave/pkg/texttemplate"
)

type RenderOptions struct {
	TemplateDir string
	TemplateID  string
	Debug       bool

	DataValuesFlags DataValuesFlags
}

func NewRenderOptions() *RenderOptions {
	return &RenderOptions{}
}

func NewRenderCmd(o *RenderOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template (with its inheritance chain merged) against data values",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.TemplateDir, "templates", "f", ".", "Directory containing template definition files")
	cmd.Flags().StringVarP(&o.TemplateID, "template", "t", "", "Id of the template to render")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	o.DataValuesFlags.Set(cmd)
	return cmd
}

func (o *RenderOptions) Run() error {
	ui := cmdcore.NewPlainUI(o.Debug)

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
	ui.Debugf("resolved %s\n", resolved)

	env, err := o.DataValuesFlags.Values()
	if err != nil {
		return err
	}

	env = template.ApplyDefaults(resolved.Variables, env)

	// a failing check aborts the render with no partial output
	chk := template.CheckEnv(resolved.Variables, env)
	if chk.HasViolations() {
		return fmt.Errorf("Validating data values:\n%s", chk.Error())
	}

	output, err := texttemplate.RenderNamed(resolved.Content, o.TemplateID, env)
	if err != nil {
		return err
	}

	ui.Printf("%s", output)
	return nil
}
