// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"regexp"
	"time"

	"github.com/docweave/docweave/pkg/envval"
)

// Check is the outcome of validating an environment against declared
// variable contracts. Violations are collected, not short-circuited, so one
// check reports every broken contract at once.
type Check struct {
	Violations []error
}

func (c Check) HasViolations() bool { return len(c.Violations) > 0 }

func (c Check) Error() string {
	msg := ""
	for _, violation := range c.Violations {
		msg += violation.Error() + "\n"
	}
	return msg
}

// CheckEnv validates env against specs. Callers are expected to abort
// rendering when the result has violations, producing no partial output.
func CheckEnv(specs []VariableSpec, env *envval.Map) Check {
	var chk Check

	for _, spec := range specs {
		val := envval.Resolve(env, spec.Name)

		if val.IsUndefined() {
			if spec.Required && spec.Default.IsUndefined() {
				chk.Violations = append(chk.Violations,
					fmt.Errorf("Variable '%s' is required but was not provided", spec.Name))
			}
			continue
		}

		if err := checkType(spec, val); err != nil {
			chk.Violations = append(chk.Violations, err)
			continue
		}

		chk.Violations = append(chk.Violations, checkRule(spec, val)...)
	}

	return chk
}

// ApplyDefaults returns an environment equal to env with every declared
// default bound at paths that resolve to undefined. env itself is not
// modified.
func ApplyDefaults(specs []VariableSpec, env *envval.Map) *envval.Map {
	if env == nil {
		env = envval.NewMap()
	}
	result := env.Copy()

	for _, spec := range specs {
		if spec.Default.IsUndefined() {
			continue
		}
		if envval.Resolve(result, spec.Name).IsUndefined() {
			envval.SetPath(result, spec.Name, spec.Default)
		}
	}

	return result
}

func checkType(spec VariableSpec, val envval.Value) error {
	mismatch := func() error {
		return fmt.Errorf("Variable '%s' requires type %s, but was %s",
			spec.Name, spec.Type, val.KindAsString())
	}

	switch spec.Type {
	case TypeString:
		if val.Kind() != envval.KindString {
			return mismatch()
		}
	case TypeNumber:
		if val.Kind() != envval.KindNumber {
			return mismatch()
		}
	case TypeBoolean:
		if val.Kind() != envval.KindBool {
			return mismatch()
		}
	case TypeDate:
		if val.Kind() != envval.KindString {
			return mismatch()
		}
		if !parseableAsDate(val.Str()) {
			return fmt.Errorf("Variable '%s' requires a date, but '%s' is not one", spec.Name, val.Str())
		}
	case TypeArray:
		if val.Kind() != envval.KindList {
			return mismatch()
		}
	case TypeObject:
		if val.Kind() != envval.KindMap {
			return mismatch()
		}
	default:
		return fmt.Errorf("Variable '%s' declares unknown type '%s'", spec.Name, spec.Type)
	}

	return nil
}

func checkRule(spec VariableSpec, val envval.Value) []error {
	if spec.Rule.IsZero() {
		return nil
	}

	var errs []error
	rule := spec.Rule

	if rule.Pattern != "" {
		expr, err := regexp.Compile(rule.Pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("Variable '%s' declares invalid pattern '%s': %s",
				spec.Name, rule.Pattern, err))
		} else if !expr.MatchString(val.AsText()) {
			errs = append(errs, fmt.Errorf("Variable '%s' requires value matching '%s', but was '%s'",
				spec.Name, rule.Pattern, val.AsText()))
		}
	}

	if rule.Min != nil && val.Kind() == envval.KindNumber && val.Number() < *rule.Min {
		errs = append(errs, fmt.Errorf("Variable '%s' requires value >= %v, but was %v",
			spec.Name, *rule.Min, val.Number()))
	}
	if rule.Max != nil && val.Kind() == envval.KindNumber && val.Number() > *rule.Max {
		errs = append(errs, fmt.Errorf("Variable '%s' requires value <= %v, but was %v",
			spec.Name, *rule.Max, val.Number()))
	}

	if len(rule.Enum) > 0 {
		found := false
		for _, allowed := range rule.Enum {
			if val.AsText() == allowed {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("Variable '%s' requires one of %v, but was '%s'",
				spec.Name, rule.Enum, val.AsText()))
		}
	}

	return errs
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseableAsDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
