// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package envval

import (
	"fmt"
	"sort"
	"time"
)

// FromGo converts a plain Go value, as produced by YAML or TOML
// deserialization, into a Value. Unordered Go maps are converted with their
// keys sorted so the resulting mapping is deterministic.
func FromGo(val interface{}) (Value, error) {
	switch typedVal := val.(type) {
	case nil:
		return Undefined(), nil

	case bool:
		return NewBool(typedVal), nil

	case int:
		return NewNumber(float64(typedVal)), nil

	case int64:
		return NewNumber(float64(typedVal)), nil

	case uint64:
		return NewNumber(float64(typedVal)), nil

	case float64:
		return NewNumber(typedVal), nil

	case string:
		return NewString(typedVal), nil

	case time.Time:
		return NewString(typedVal.Format(time.RFC3339)), nil

	case []interface{}:
		items := make([]Value, 0, len(typedVal))
		for i, item := range typedVal {
			converted, err := FromGo(item)
			if err != nil {
				return Undefined(), fmt.Errorf("converting list item %d: %s", i, err)
			}
			items = append(items, converted)
		}
		return NewList(items), nil

	// TOML array-of-tables deserializes with this concrete element type
	case []map[string]interface{}:
		items := make([]Value, 0, len(typedVal))
		for i, item := range typedVal {
			converted, err := FromGo(item)
			if err != nil {
				return Undefined(), fmt.Errorf("converting list item %d: %s", i, err)
			}
			items = append(items, converted)
		}
		return NewList(items), nil

	case map[string]interface{}:
		keys := make([]string, 0, len(typedVal))
		for k := range typedVal {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		result := NewMap()
		for _, k := range keys {
			converted, err := FromGo(typedVal[k])
			if err != nil {
				return Undefined(), fmt.Errorf("converting key '%s': %s", k, err)
			}
			result.Set(k, converted)
		}
		return NewMapValue(result), nil

	case map[interface{}]interface{}:
		stringKeyed := map[string]interface{}{}
		for k, v := range typedVal {
			strK, ok := k.(string)
			if !ok {
				return Undefined(), fmt.Errorf("expected map key to be string, but was %T", k)
			}
			stringKeyed[strK] = v
		}
		return FromGo(stringKeyed)

	case Value:
		return typedVal, nil

	case *Map:
		return NewMapValue(typedVal), nil

	default:
		return Undefined(), fmt.Errorf("unsupported value type %T", val)
	}
}

// EnvFromGo converts a deserialized top-level document into an environment.
func EnvFromGo(val interface{}) (*Map, error) {
	converted, err := FromGo(val)
	if err != nil {
		return nil, err
	}
	if converted.Kind() != KindMap {
		return nil, fmt.Errorf("expected top-level value to be a mapping, but was %s", converted.KindAsString())
	}
	return converted.Mapping(), nil
}
