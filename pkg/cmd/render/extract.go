// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/docweave/docweave/pkg/texttemplate"
)

type ExtractOptions struct {
	FilePath string
}

func NewExtractOptions() *ExtractOptions {
	return &ExtractOptions{}
}

func NewExtractCmd(o *ExtractOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the variable manifest of a template content file",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.FilePath, "file", "f", "", "Template content file to scan")
	return cmd
}

func (o *ExtractOptions) Run() error {
	if o.FilePath == "" {
		return fmt.Errorf("Expected file path to be non-empty (specify via -f)")
	}

	data, err := os.ReadFile(o.FilePath)
	if err != nil {
		return err
	}

	var manifest []map[string]interface{}
	for _, spec := range texttemplate.ExtractVariables(string(data)) {
		manifest = append(manifest, map[string]interface{}{
			"name":     spec.Name,
			"type":     string(spec.Type),
			"required": spec.Required,
		})
	}

	out, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}
	fmt.Printf("%s", out)
	return nil
}
