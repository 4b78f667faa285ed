// Copyright (c) 2026 the go.protoschema.dev authors
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHORS DISCLAIM ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// Package ir defines the target-language-neutral declaration tree that
// the lowering stage produces from a resolved bundle, and the
// collision-checked map that tree is stored in.
package ir

import "go.protoschema.dev/schema/ast"

// ScalarKind enumerates the builtin scalar types a Field's inner type can
// lower to.
type ScalarKind uint8

const (
	ScalarUnknown ScalarKind = iota
	Int32
	Int64
	Uint32
	Uint64
	Sint32
	Sint64
	Fixed32
	Fixed64
	Sfixed32
	Sfixed64
	Bool
	String
	Bytes
	Float
	Double
)

var scalarNames = map[string]ScalarKind{
	"int32":    Int32,
	"int64":    Int64,
	"uint32":   Uint32,
	"uint64":   Uint64,
	"sint32":   Sint32,
	"sint64":   Sint64,
	"fixed32":  Fixed32,
	"fixed64":  Fixed64,
	"sfixed32": Sfixed32,
	"sfixed64": Sfixed64,
	"bool":     Bool,
	"string":   String,
	"bytes":    Bytes,
	"float":    Float,
	"double":   Double,
}

// ScalarKindByName looks up the ScalarKind for a builtin type spelling,
// as recognized by the grammar this core's AST inputs conform to.
func ScalarKindByName(name string) (ScalarKind, bool) {
	k, ok := scalarNames[name]
	return k, ok
}

func (k ScalarKind) String() string {
	for name, kind := range scalarNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// Inner is a field's inner type: a builtin scalar or a resolved reference
// to a user message or user enum.
type Inner interface {
	privInner()
}

type Scalar struct {
	Kind ScalarKind
}

func (Scalar) privInner() {}

type UserMessage struct {
	Ref ast.FullyQualifiedReference
}

func (UserMessage) privInner() {}

type UserEnum struct {
	Ref ast.FullyQualifiedReference
}

func (UserEnum) privInner() {}

// Shape is a field's outer shape, determined by its modifier.
type Shape interface {
	privShape()
	InnerType() Inner
}

type RequiredShape struct {
	Inner Inner
}

func (s RequiredShape) privShape()      {}
func (s RequiredShape) InnerType() Inner { return s.Inner }

type OptionalShape struct {
	Inner Inner
}

func (s OptionalShape) privShape()      {}
func (s OptionalShape) InnerType() Inner { return s.Inner }

type RepeatedShape struct {
	Inner  Inner
	Packed bool
}

func (s RepeatedShape) privShape()      {}
func (s RepeatedShape) InnerType() Inner { return s.Inner }

// Field is a lowered message field.
type Field struct {
	Name    string
	Shape   Shape
	Tag     int32
	Default ast.OptionValue // nil if no `default` option was present
}

// EnumVariant is one lowered enumerator.
type EnumVariant struct {
	Name  string
	Value int64
}

// Module is a lowered top-level declaration: a message or an enum.
type Module interface {
	privModule()
	TypeName() ast.FullyQualifiedReference
}

type MessageModule struct {
	Name   ast.FullyQualifiedReference
	Fields []Field
}

func (m MessageModule) privModule()                          {}
func (m MessageModule) TypeName() ast.FullyQualifiedReference { return m.Name }

type EnumModule struct {
	Name     ast.FullyQualifiedReference
	Variants []EnumVariant
}

func (m EnumModule) privModule()                          {}
func (m EnumModule) TypeName() ast.FullyQualifiedReference { return m.Name }
