// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/docweave/docweave/pkg/envval"
)

type DataValuesFlags struct {
	KVsFromStrings []string
	KVsFromYAML    []string
	FromFiles      []string
}

func (s *DataValuesFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.KVsFromStrings, "data-value", "v", nil,
		"Set specific data value to given value, as string (format: all.key1.subkey=123) (can be specified multiple times)")
	cmd.Flags().StringArrayVar(&s.KVsFromYAML, "data-value-yaml", nil,
		"Set specific data value to given value, parsed as YAML (format: all.key1.subkey=true) (can be specified multiple times)")
	cmd.Flags().StringArrayVar(&s.FromFiles, "data-values-file", nil,
		"Read data values from a YAML or TOML file (decided by extension) (can be specified multiple times)")
}

// Values builds the rendering environment out of the given flags. Files
// apply first in flag order; individual KVs apply after and take precedence.
func (s *DataValuesFlags) Values() (*envval.Map, error) {
	result := envval.NewMap()

	for _, path := range s.FromFiles {
		env, err := s.file(path)
		if err != nil {
			return nil, fmt.Errorf("Extracting data values from file: %s", err)
		}
		env.Iterate(func(k string, v envval.Value) {
			result.Set(k, v)
		})
	}

	for _, kv := range s.KVsFromStrings {
		name, rawVal, err := splitKV(kv)
		if err != nil {
			return nil, fmt.Errorf("Extracting data value from KV: %s", err)
		}
		envval.SetPath(result, name, envval.NewString(rawVal))
	}

	for _, kv := range s.KVsFromYAML {
		name, rawVal, err := splitKV(kv)
		if err != nil {
			return nil, fmt.Errorf("Extracting data value from KV: %s", err)
		}

		var parsed interface{}
		err = yaml.Unmarshal([]byte(rawVal), &parsed)
		if err != nil {
			return nil, fmt.Errorf("Deserializing YAML value for '%s': %s", name, err)
		}

		val, err := envval.FromGo(parsed)
		if err != nil {
			return nil, fmt.Errorf("Converting value for '%s': %s", name, err)
		}
		envval.SetPath(result, name, val)
	}

	return result, nil
}

func (s *DataValuesFlags) file(path string) (*envval.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var tree map[string]interface{}
		err = toml.Unmarshal(data, &tree)
		if err != nil {
			return nil, fmt.Errorf("Deserializing TOML file %s: %s", path, err)
		}
		parsed = tree
	default:
		err = yaml.Unmarshal(data, &parsed)
		if err != nil {
			return nil, fmt.Errorf("Deserializing YAML file %s: %s", path, err)
		}
	}

	return envval.EnvFromGo(parsed)
}

func splitKV(kv string) (string, string, error) {
	pieces := strings.SplitN(kv, "=", 2)
	if len(pieces) != 2 {
		return "", "", fmt.Errorf("Expected format key=value, but was '%s'", kv)
	}
	if pieces[0] == "" {
		return "", "", fmt.Errorf("Expected non-empty key in '%s'", kv)
	}
	return pieces[0], pieces[1], nil
}
