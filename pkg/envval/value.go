// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package envval

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	KindUndefined Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// Value is one environment value. The zero value is the undefined sentinel,
// distinct from null-like or false-like values of any other kind.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	strVal  string
	list    []Value
	mapping *Map
}

func Undefined() Value          { return Value{} }
func NewBool(b bool) Value      { return Value{kind: KindBool, boolVal: b} }
func NewNumber(n float64) Value { return Value{kind: KindNumber, numVal: n} }
func NewString(s string) Value  { return Value{kind: KindString, strVal: s} }
func NewList(items []Value) Value {
	return Value{kind: KindList, list: items}
}
func NewMapValue(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, mapping: m}
}

func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

func (v Value) Bool() bool      { return v.boolVal }
func (v Value) Number() float64 { return v.numVal }
func (v Value) Str() string     { return v.strVal }
func (v Value) List() []Value   { return v.list }
func (v Value) Mapping() *Map   { return v.mapping }

// IsTruthy reports whether a conditional block guarded by this value keeps
// its body. Mappings are truthy even when empty; empty lists and strings
// are not.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindUndefined:
		return false
	case KindBool:
		return v.boolVal
	case KindNumber:
		return v.numVal != 0
	case KindString:
		return len(v.strVal) > 0
	case KindList:
		return len(v.list) > 0
	case KindMap:
		return true
	default:
		panic(fmt.Sprintf("unknown value kind %d", v.kind))
	}
}

// AsText returns the substitution form of the value. Undefined degrades to
// the empty string; lists join their elements' texts with ", ".
func (v Value) AsText() string {
	switch v.kind {
	case KindUndefined:
		return ""
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindNumber:
		return strconv.FormatFloat(v.numVal, 'f', -1, 64)
	case KindString:
		return v.strVal
	case KindList:
		texts := make([]string, 0, len(v.list))
		for _, item := range v.list {
			texts = append(texts, item.AsText())
		}
		return strings.Join(texts, ", ")
	case KindMap:
		return ""
	default:
		panic(fmt.Sprintf("unknown value kind %d", v.kind))
	}
}

// KindAsString names the kind the way variable declarations spell types.
func (v Value) KindAsString() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "array"
	case KindMap:
		return "object"
	default:
		panic(fmt.Sprintf("unknown value kind %d", v.kind))
	}
}
