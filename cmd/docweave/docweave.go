// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"github.com/docweave/docweave/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultDocweaveCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "docweave: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
