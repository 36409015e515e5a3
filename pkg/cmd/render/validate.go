// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/pkg/texttemplate"
)

type ValidateOptions struct {
	FilePath string
}

func NewValidateOptions() *ValidateOptions {
	return &ValidateOptions{}
}

func NewValidateCmd(o *ValidateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Strictly check template content syntax (what rendering tolerates, validate reports)",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.FilePath, "file", "f", "", "Template content file to check")
	return cmd
}

func (o *ValidateOptions) Run() error {
	if o.FilePath == "" {
		return fmt.Errorf("Expected file path to be non-empty (specify via -f)")
	}

	data, err := os.ReadFile(o.FilePath)
	if err != nil {
		return err
	}

	errs := texttemplate.Validate(data, o.FilePath)
	if len(errs) == 0 {
		fmt.Printf("%s: ok\n", o.FilePath)
		return nil
	}

	msg := ""
	for _, validationErr := range errs {
		msg += fmt.Sprintf("- %s\n", validationErr)
	}
	return fmt.Errorf("Validating %s:\n%s", o.FilePath, msg)
}
