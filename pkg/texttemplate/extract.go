// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"strings"

	"github.com/docweave/docweave/pkg/template"
)

// ExtractVariables statically scans text and collects every distinct dotted
// path used as a plain reference, a conditional's condition, or a loop's
// source path. Paths rooted at a loop-bound item name are excluded. Each
// entry defaults to type string, required — a heuristic manifest; explicit
// declarations on a template take precedence (see
// template.EffectiveVariables).
func ExtractVariables(text string) []template.VariableSpec {
	root := NewParser().Parse([]byte(text), "")

	c := extraction{seen: map[string]struct{}{}}
	c.collectNodes(root.Items, map[string]struct{}{})

	return c.specs
}

type extraction struct {
	seen  map[string]struct{}
	specs []template.VariableSpec
}

func (c *extraction) collectNodes(nodes []Node, bound map[string]struct{}) {
	for _, node := range nodes {
		switch typedNode := node.(type) {
		case *TextRun, *SpliceMarker:
			// no variable usage

		case *VarRef:
			c.add(typedNode.Path, bound)

		case *IfBlock:
			c.add(typedNode.Cond, bound)
			c.collectNodes(typedNode.Body, bound)

		case *EachBlock:
			c.add(typedNode.Source, bound)

			bodyBound := map[string]struct{}{}
			for name := range bound {
				bodyBound[name] = struct{}{}
			}
			bodyBound[typedNode.ItemName] = struct{}{}
			c.collectNodes(typedNode.Body, bodyBound)
		}
	}
}

func (c *extraction) add(path string, bound map[string]struct{}) {
	if !IsPath(path) {
		return
	}
	if _, isBound := bound[strings.SplitN(path, ".", 2)[0]]; isBound {
		return
	}
	if _, dup := c.seen[path]; dup {
		return
	}

	c.seen[path] = struct{}{}
	c.specs = append(c.specs, template.VariableSpec{
		Name:     path,
		Type:     template.TypeString,
		Required: true,
	})
}
