// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docweave/docweave/pkg/envval"
	"github.com/docweave/docweave/pkg/texttemplate"
)

func env(t *testing.T, plain map[string]interface{}) *envval.Map {
	t.Helper()
	result, err := envval.EnvFromGo(plain)
	require.NoError(t, err)
	return result
}

func TestRenderVarRef(t *testing.T) {
	out, err := texttemplate.Render("Hello {{name}}", env(t, map[string]interface{}{"name": "Ann"}))
	require.NoError(t, err)
	require.Equal(t, "Hello Ann", out)
}

func TestRenderUndefinedVarBecomesEmpty(t *testing.T) {
	out, err := texttemplate.Render("Hi {{name}}, id {{id}}", env(t, map[string]interface{}{"name": "Jo"}))
	require.NoError(t, err)
	require.Equal(t, "Hi Jo, id ", out)
}

func TestRenderConditional(t *testing.T) {
	out, err := texttemplate.Render("{{#if flag}}Y{{/if}}{{#if other}}N{{/if}}",
		env(t, map[string]interface{}{"flag": true, "other": false}))
	require.NoError(t, err)
	require.Equal(t, "Y", out)
}

func TestRenderLoop(t *testing.T) {
	out, err := texttemplate.Render("{{#each xs as x}}-{{x}}{{/each}}",
		env(t, map[string]interface{}{"xs": []interface{}{"a", "b"}}))
	require.NoError(t, err)
	require.Equal(t, "-a-b", out)
}

func TestRenderLoopOverNonListYieldsNothing(t *testing.T) {
	nonListExamples := []map[string]interface{}{
		{"xs": "string"},
		{"xs": 42},
		{"xs": true},
		{"xs": map[string]interface{}{"k": "v"}},
		{}, // undefined
	}

	for _, plain := range nonListExamples {
		out, err := texttemplate.Render("{{#each xs as x}}-{{x}}{{/each}}", env(t, plain))
		require.NoError(t, err)
		require.Equal(t, "", out)
	}
}

func TestRenderNestedLoops(t *testing.T) {
	out, err := texttemplate.Render("{{#each rows as row}}{{#each row.cols as col}}[{{col}}]{{/each}};{{/each}}",
		env(t, map[string]interface{}{
			"rows": []interface{}{
				map[string]interface{}{"cols": []interface{}{"a", "b"}},
				map[string]interface{}{"cols": []interface{}{"c"}},
			},
		}))
	require.NoError(t, err)
	require.Equal(t, "[a][b];[c];", out)
}

func TestRenderNestedConditionals(t *testing.T) {
	out, err := texttemplate.Render("{{#if outer}}A{{#if inner}}B{{/if}}C{{/if}}",
		env(t, map[string]interface{}{"outer": true, "inner": false}))
	require.NoError(t, err)
	require.Equal(t, "AC", out)
}

func TestRenderConditionalInsideLoopSeesIterationVar(t *testing.T) {
	out, err := texttemplate.Render("{{#each users as u}}{{#if u.admin}}{{u.name}} {{/if}}{{/each}}",
		env(t, map[string]interface{}{
			"users": []interface{}{
				map[string]interface{}{"name": "Ann", "admin": true},
				map[string]interface{}{"name": "Jo", "admin": false},
				map[string]interface{}{"name": "Sam", "admin": true},
			},
		}))
	require.NoError(t, err)
	require.Equal(t, "Ann Sam ", out)
}

func TestRenderLoopVarDoesNotLeak(t *testing.T) {
	out, err := texttemplate.Render("{{#each xs as x}}{{x}}{{/each}}|{{x}}|",
		env(t, map[string]interface{}{"xs": []interface{}{"a"}}))
	require.NoError(t, err)
	require.Equal(t, "a||", out)
}

func TestRenderLoopVarShadowsParentBinding(t *testing.T) {
	out, err := texttemplate.Render("{{x}}{{#each xs as x}}{{x}}{{/each}}{{x}}",
		env(t, map[string]interface{}{"x": "outer", "xs": []interface{}{"inner"}}))
	require.NoError(t, err)
	require.Equal(t, "outerinnerouter", out)
}

func TestRenderUnterminatedBlockLeftLiterally(t *testing.T) {
	out, err := texttemplate.Render("before {{#if flag}}body", env(t, map[string]interface{}{"flag": true}))
	require.NoError(t, err)
	require.Equal(t, "before {{#if flag}}body", out)

	out, err = texttemplate.Render("dangling {{/each}} close", envval.NewMap())
	require.NoError(t, err)
	require.Equal(t, "dangling {{/each}} close", out)
}

func TestRenderStripsMalformedVarMarkers(t *testing.T) {
	out, err := texttemplate.Render("a{{not a path!}}b{{}}c", envval.NewMap())
	require.NoError(t, err)
	require.Equal(t, "abc", out)
}

func TestRenderSpliceMarkerLeftForMergeStage(t *testing.T) {
	out, err := texttemplate.Render("{{> parent}}\nEXTRA", envval.NewMap())
	require.NoError(t, err)
	require.Equal(t, "{{> parent}}\nEXTRA", out)
}

func TestRenderIdempotence(t *testing.T) {
	text := "{{#if flag}}Hello {{name}}{{/if}}{{#each xs as x}} {{x}}{{/each}} {{missing}}"
	e := env(t, map[string]interface{}{
		"flag": true, "name": "Ann", "xs": []interface{}{"a", "b"},
	})

	once, err := texttemplate.Render(text, e)
	require.NoError(t, err)

	twice, err := texttemplate.Render(once, e)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestRenderExpansionBudget(t *testing.T) {
	items := make([]interface{}, 50)
	for i := range items {
		items[i] = "x"
	}

	text := "{{#each xs as a}}{{#each xs as b}}{{#each xs as c}}" +
		strings.Repeat("0123456789", 10) +
		"{{/each}}{{/each}}{{/each}}"

	_, err := texttemplate.Render(text, env(t, map[string]interface{}{"xs": items}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "expansion budget")
}

func TestRenderSubstitutedValuesAreNotReScanned(t *testing.T) {
	out, err := texttemplate.Render("{{a}}", env(t, map[string]interface{}{
		"a": "{{b}}", "b": "nope",
	}))
	require.NoError(t, err)
	require.Equal(t, "{{b}}", out)
}
