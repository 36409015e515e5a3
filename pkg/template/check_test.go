// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package template_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docweave/docweave/pkg/envval"
	"github.com/docweave/docweave/pkg/template"
)

func testEnv(t *testing.T, plain map[string]interface{}) *envval.Map {
	t.Helper()
	result, err := envval.EnvFromGo(plain)
	require.NoError(t, err)
	return result
}

func floatPtr(f float64) *float64 { return &f }

func TestCheckEnvCollectsAllViolations(t *testing.T) {
	specs := []template.VariableSpec{
		{Name: "title", Type: template.TypeString, Required: true},
		{Name: "count", Type: template.TypeNumber, Required: true,
			Rule: &template.ValidationRule{Min: floatPtr(1), Max: floatPtr(10)}},
		{Name: "owner.role", Type: template.TypeString, Required: true,
			Rule: &template.ValidationRule{Enum: []string{"admin", "editor"}}},
	}

	chk := template.CheckEnv(specs, testEnv(t, map[string]interface{}{
		"count": 99,
		"owner": map[string]interface{}{"role": "nobody"},
	}))

	require.True(t, chk.HasViolations())
	// every broken contract is reported, not just the first
	require.Len(t, chk.Violations, 3)
	require.Contains(t, chk.Error(), "Variable 'title' is required")
	require.Contains(t, chk.Error(), "Variable 'count' requires value <= 10")
	require.Contains(t, chk.Error(), "Variable 'owner.role' requires one of")
}

func TestCheckEnvTypeMismatch(t *testing.T) {
	specs := []template.VariableSpec{
		{Name: "count", Type: template.TypeNumber, Required: true},
	}

	chk := template.CheckEnv(specs, testEnv(t, map[string]interface{}{"count": "three"}))
	require.True(t, chk.HasViolations())
	require.Contains(t, chk.Error(), "requires type number, but was string")
}

func TestCheckEnvPattern(t *testing.T) {
	specs := []template.VariableSpec{
		{Name: "slug", Type: template.TypeString, Required: true,
			Rule: &template.ValidationRule{Pattern: `^[a-z-]+$`}},
	}

	chk := template.CheckEnv(specs, testEnv(t, map[string]interface{}{"slug": "release-notes"}))
	require.False(t, chk.HasViolations())

	chk = template.CheckEnv(specs, testEnv(t, map[string]interface{}{"slug": "Release Notes"}))
	require.True(t, chk.HasViolations())
}

func TestCheckEnvDateType(t *testing.T) {
	specs := []template.VariableSpec{
		{Name: "due", Type: template.TypeDate, Required: true},
	}

	chk := template.CheckEnv(specs, testEnv(t, map[string]interface{}{"due": "2024-03-01"}))
	require.False(t, chk.HasViolations())

	chk = template.CheckEnv(specs, testEnv(t, map[string]interface{}{"due": "next tuesday"}))
	require.True(t, chk.HasViolations())
}

func TestCheckEnvOptionalUndefinedIsFine(t *testing.T) {
	specs := []template.VariableSpec{
		{Name: "note", Type: template.TypeString, Required: false},
	}

	chk := template.CheckEnv(specs, testEnv(t, map[string]interface{}{}))
	require.False(t, chk.HasViolations())
}

func TestApplyDefaults(t *testing.T) {
	specs := []template.VariableSpec{
		{Name: "owner.role", Type: template.TypeString, Required: true,
			Default: envval.NewString("editor")},
		{Name: "title", Type: template.TypeString, Required: true,
			Default: envval.NewString("untitled")},
	}

	env := testEnv(t, map[string]interface{}{"title": "given"})
	withDefaults := template.ApplyDefaults(specs, env)

	require.Equal(t, "editor", envval.Resolve(withDefaults, "owner.role").Str())
	require.Equal(t, "given", envval.Resolve(withDefaults, "title").Str())

	// the original environment stays untouched
	require.True(t, envval.Resolve(env, "owner.role").IsUndefined())
}
