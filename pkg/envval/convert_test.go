// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package envval_test

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"

	"github.com/docweave/docweave/pkg/envval"
)

func TestFromGo(t *testing.T) {
	val, err := envval.FromGo(map[string]interface{}{
		"b": true,
		"n": 42,
		"f": 1.5,
		"s": "str",
		"l": []interface{}{1, "two"},
		"m": map[interface{}]interface{}{"nested": "yes"},
	})
	require.NoError(t, err)
	require.Equal(t, envval.KindMap, val.Kind())

	m := val.Mapping()
	// unordered input maps convert with sorted keys
	require.Equal(t, []string{"b", "f", "l", "m", "n", "s"}, m.Keys())

	require.Equal(t, "yes", envval.Resolve(m, "m.nested").Str())
	require.Equal(t, float64(42), envval.Resolve(m, "n").Number())
	require.Len(t, envval.Resolve(m, "l").List(), 2)
}

func TestFromGoTOMLArrayOfTables(t *testing.T) {
	fileData := `
title = "release"

[[items]]
name = "first"
done = true

[[items]]
name = "second"
done = false
`

	var doc map[string]interface{}
	err := toml.Unmarshal([]byte(fileData), &doc)
	require.NoError(t, err)

	env, err := envval.EnvFromGo(doc)
	require.NoError(t, err)

	items := envval.Resolve(env, "items")
	require.Equal(t, envval.KindList, items.Kind())
	require.Len(t, items.List(), 2)

	first := items.List()[0]
	require.Equal(t, envval.KindMap, first.Kind())
	require.Equal(t, "first", envval.Resolve(first.Mapping(), "name").Str())
	require.True(t, envval.Resolve(first.Mapping(), "done").Bool())
	require.False(t, envval.Resolve(items.List()[1].Mapping(), "done").Bool())
}

func TestFromGoNullIsUndefined(t *testing.T) {
	val, err := envval.FromGo(nil)
	require.NoError(t, err)
	require.True(t, val.IsUndefined())
	require.False(t, val.IsTruthy())
}

func TestEnvFromGoRejectsNonMapping(t *testing.T) {
	_, err := envval.EnvFromGo([]interface{}{"a"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected top-level value to be a mapping")
}
