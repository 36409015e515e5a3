// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"github.com/docweave/docweave/pkg/filepos"
)

// Node is one piece of a parsed template: a TextRun, VarRef, IfBlock,
// EachBlock, or SpliceMarker.
type Node interface {
	Pos() *filepos.Position
}

type NodeRoot struct {
	Items []Node
}

type TextRun struct {
	Position *filepos.Position
	Content  string
}

type VarRef struct {
	Position *filepos.Position
	Path     string
}

type IfBlock struct {
	Position *filepos.Position
	Cond     string
	Body     []Node
}

type EachBlock struct {
	Position *filepos.Position
	Source   string
	ItemName string
	Body     []Node
}

// SpliceMarker is an inheritance placeholder. It is resolved during template
// merge, not during rendering; the renderer emits it verbatim.
type SpliceMarker struct {
	Position *filepos.Position
	Name     string
	Content  string
}

var _ = []Node{&TextRun{}, &VarRef{}, &IfBlock{}, &EachBlock{}, &SpliceMarker{}}

func (n *TextRun) Pos() *filepos.Position      { return n.Position }
func (n *VarRef) Pos() *filepos.Position       { return n.Position }
func (n *IfBlock) Pos() *filepos.Position      { return n.Position }
func (n *EachBlock) Pos() *filepos.Position    { return n.Position }
func (n *SpliceMarker) Pos() *filepos.Position { return n.Position }
