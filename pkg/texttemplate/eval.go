// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
	"strings"

	"github.com/docweave/docweave/pkg/envval"
)

const (
	// Worst-case render output is bounded proportionally to template size,
	// so deeply stacked loops degrade into a reportable error instead of an
	// unbounded expansion.
	budgetBase   = 64 * 1024
	budgetFactor = 1024
)

// Render evaluates text against env in a single pass over the parsed block
// tree and returns the produced document text. Substituted values are
// emitted literally and never re-scanned for markers.
func Render(text string, env *envval.Map) (string, error) {
	return RenderNamed(text, "", env)
}

// RenderNamed is Render with an associated name (typically a file name or
// template id) used in error messages.
func RenderNamed(text, associatedName string, env *envval.Map) (string, error) {
	root := NewParser().Parse([]byte(text), associatedName)

	e := evaluator{budget: budgetBase + len(text)*budgetFactor}

	err := e.evalNodes(root.Items, env)
	if err != nil {
		return "", err
	}
	return e.out.String(), nil
}

type evaluator struct {
	out    strings.Builder
	budget int
}

func (e *evaluator) evalNodes(nodes []Node, env *envval.Map) error {
	for _, node := range nodes {
		switch typedNode := node.(type) {
		case *TextRun:
			err := e.emit(typedNode.Content)
			if err != nil {
				return err
			}

		case *VarRef:
			err := e.emit(envval.Resolve(env, typedNode.Path).AsText())
			if err != nil {
				return err
			}

		case *SpliceMarker:
			// merge-time construct; emitted verbatim
			err := e.emit(typedNode.Content)
			if err != nil {
				return err
			}

		case *IfBlock:
			if envval.Resolve(env, typedNode.Cond).IsTruthy() {
				err := e.evalNodes(typedNode.Body, env)
				if err != nil {
					return err
				}
			}

		case *EachBlock:
			source := envval.Resolve(env, typedNode.Source)
			if source.Kind() != envval.KindList {
				// non-list or undefined source yields zero iterations
				continue
			}
			for _, item := range source.List() {
				childEnv := env.Copy()
				childEnv.Set(typedNode.ItemName, item)

				err := e.evalNodes(typedNode.Body, childEnv)
				if err != nil {
					return err
				}
			}

		default:
			panic(fmt.Sprintf("unknown node type %T", typedNode))
		}
	}

	return nil
}

func (e *evaluator) emit(s string) error {
	e.budget -= len(s)
	if e.budget < 0 {
		return NewExpansionBudgetError(e.out.Len())
	}
	e.out.WriteString(s)
	return nil
}

// NewExpansionBudgetError reports a render whose output exceeded the
// size-proportional expansion budget.
func NewExpansionBudgetError(produced int) error {
	return &expansionBudgetError{Produced: produced}
}

type expansionBudgetError struct {
	Produced int
}

func (e expansionBudgetError) Error() string {
	return fmt.Sprintf("Render exceeded its expansion budget after producing %d bytes (hint: check for loops over very large or repeatedly nested lists)", e.Produced)
}
