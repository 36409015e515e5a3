// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	cmdrender "github.com/docweave/docweave/pkg/cmd/render"
	"github.com/docweave/docweave/pkg/version"
)

type DocweaveOptions struct{}

func NewDefaultDocweaveOptions() *DocweaveOptions {
	return &DocweaveOptions{}
}

func NewDefaultDocweaveCmd() *cobra.Command {
	return NewDocweaveCmd(NewDefaultDocweaveOptions())
}

func NewDocweaveCmd(o *DocweaveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "docweave",
		Version: version.Version,
		Short:   "docweave renders structured documents from parameterized templates",
		Long: `docweave renders structured documents from parameterized text templates
and resolves template inheritance.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdrender.NewRenderCmd(cmdrender.NewRenderOptions()))
	cmd.AddCommand(cmdrender.NewResolveCmd(cmdrender.NewResolveOptions()))
	cmd.AddCommand(cmdrender.NewChainCmd(cmdrender.NewChainOptions()))
	cmd.AddCommand(cmdrender.NewExtractCmd(cmdrender.NewExtractOptions()))
	cmd.AddCommand(cmdrender.NewValidateCmd(cmdrender.NewValidateOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
