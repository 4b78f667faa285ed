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

package compiler_test

import (
	"testing"

	"go.protoschema.dev/schema/ast"
	"go.protoschema.dev/schema/compiler"
	"go.protoschema.dev/schema/diag"
	"go.protoschema.dev/schema/internal/testutil"
	"go.protoschema.dev/schema/ir"
)

func TestLowerMessageFields(t *testing.T) {
	t.Parallel()
	f := &ast.Field{
		Name:     ast.NewIdentifier(ast.RoleField, "count"),
		Type:     ast.Builtin("int32"),
		Modifier: ast.Required,
		FieldTag: 1,
	}
	m := &ast.Message{Name: ast.NewIdentifier(ast.RoleType, "M"), Fields: []ast.MessageField{f}}
	file := &ast.ProtobufFile{Declarations: []ast.Declaration{&ast.TopMessage{Message: m}}}

	out := ir.NewMap()
	compiler.Lower(diag.New(), file, out)

	mod, ok := out.Get(ast.QualifiedName{ast.NewIdentifier(ast.RoleType, "M")})
	testutil.ExpectTrue(t, ok)
	msg := mod.(ir.MessageModule)
	testutil.ExpectEq(t, 1, len(msg.Fields))
	testutil.ExpectEq(t, "count", msg.Fields[0].Name)
	testutil.ExpectEq(t, int32(1), msg.Fields[0].Tag)

	required, ok := msg.Fields[0].Shape.(ir.RequiredShape)
	testutil.ExpectTrue(t, ok)
	scalar, ok := required.Inner.(ir.Scalar)
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, ir.Int32, scalar.Kind)
}

func TestLowerRepeatedPackedOption(t *testing.T) {
	t.Parallel()
	f := &ast.Field{
		Name:     ast.NewIdentifier(ast.RoleField, "xs"),
		Type:     ast.Builtin("int32"),
		Modifier: ast.Repeated,
		FieldTag: 1,
		Options:  []ast.Option{{Name: "packed", Value: ast.OptBool(true)}},
	}
	m := &ast.Message{Name: ast.NewIdentifier(ast.RoleType, "M"), Fields: []ast.MessageField{f}}
	file := &ast.ProtobufFile{Declarations: []ast.Declaration{&ast.TopMessage{Message: m}}}

	out := ir.NewMap()
	compiler.Lower(diag.New(), file, out)

	mod, _ := out.Get(ast.QualifiedName{ast.NewIdentifier(ast.RoleType, "M")})
	repeated := mod.(ir.MessageModule).Fields[0].Shape.(ir.RepeatedShape)
	testutil.ExpectTrue(t, repeated.Packed)
}

func TestLowerEnum(t *testing.T) {
	t.Parallel()
	e := &ast.EnumDecl{
		Name: ast.NewIdentifier(ast.RoleType, "Color"),
		Values: []ast.EnumValue{
			{Name: ast.NewIdentifier(ast.RoleField, "RED"), Value: 0},
		},
	}
	file := &ast.ProtobufFile{Declarations: []ast.Declaration{&ast.TopEnum{Enum: e}}}

	out := ir.NewMap()
	compiler.Lower(diag.New(), file, out)

	mod, ok := out.Get(ast.QualifiedName{ast.NewIdentifier(ast.RoleType, "Color")})
	testutil.ExpectTrue(t, ok)
	enumMod := mod.(ir.EnumModule)
	testutil.ExpectEq(t, 1, len(enumMod.Variants))
	testutil.ExpectEq(t, "RED", enumMod.Variants[0].Name)
}

func TestLowerDuplicateDeclarationIsDiagnosed(t *testing.T) {
	t.Parallel()
	m1 := &ast.Message{Name: ast.NewIdentifier(ast.RoleType, "M")}
	file := &ast.ProtobufFile{Declarations: []ast.Declaration{&ast.TopMessage{Message: m1}}}

	out := ir.NewMap()
	region := diag.New()
	compiler.Lower(region, file, out)
	compiler.Lower(region, file, out)

	testutil.ExpectTrue(t, region.Failed())
	testutil.ExpectEq(t, uint32(6000), region.Diagnostics()[0].Code)
}
