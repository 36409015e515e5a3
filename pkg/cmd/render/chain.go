// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/pkg/inherit"
	"github.com/docweave/docweave/pkg/templatestore"
)

type ChainOptions struct {
	TemplateDir string
	TemplateID  string
}

func NewChainOptions() *ChainOptions {
	return &ChainOptions{}
}

func NewChainCmd(o *ChainOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Print a template's inheritance chain, leaf to root",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.TemplateDir, "templates", "f", ".", "Directory containing template definition files")
	cmd.Flags().StringVarP(&o.TemplateID, "template", "t", "", "Id of the template")
	return cmd
}

func (o *ChainOptions) Run() error {
	if o.TemplateID == "" {
		return fmt.Errorf("Expected template id to be non-empty (specify via -t)")
	}

	store, err := templatestore.NewManager(o.TemplateDir)
	if err != nil {
		return err
	}

	chain, err := inherit.NewResolver(store).Chain(o.TemplateID)
	if err != nil {
		return describeResolveErr(err, store)
	}

	for _, id := range chain {
		fmt.Printf("%s\n", id)
	}
	return nil
}
