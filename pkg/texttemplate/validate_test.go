// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docweave/docweave/pkg/texttemplate"
)

func TestValidateCleanTemplate(t *testing.T) {
	text := "Hi {{name}} {{#if a}}{{#each xs as x}}{{x}}{{/each}}{{/if}} {{> parent}}"
	require.Empty(t, texttemplate.Validate([]byte(text), "tpl.txt"))
}

func TestValidateUnterminatedBlock(t *testing.T) {
	errs := texttemplate.Validate([]byte("a\n{{#if flag}}body"), "tpl.txt")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "Unterminated block '{{#if flag}}'")
	require.Contains(t, errs[0].Error(), "tpl.txt:2")
}

func TestValidateDanglingClose(t *testing.T) {
	errs := texttemplate.Validate([]byte("{{/each}}"), "tpl.txt")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "Unexpected closing marker")
}

func TestValidateMalformedEach(t *testing.T) {
	errs := texttemplate.Validate([]byte("{{#each xs x}}{{/each}}"), "tpl.txt")
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Error(), "Malformed block marker")
}

func TestValidateBadVarRef(t *testing.T) {
	errs := texttemplate.Validate([]byte("{{no good}}"), "tpl.txt")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "dotted path reference")
}

func TestValidateIsStrictWhereRenderIsTolerant(t *testing.T) {
	text := "{{#if flag}}body" // renders fine, validates dirty

	out, err := texttemplate.Render(text, nil)
	require.NoError(t, err)
	require.Equal(t, text, out)

	require.NotEmpty(t, texttemplate.Validate([]byte(text), ""))
}
