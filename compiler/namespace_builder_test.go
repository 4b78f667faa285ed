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
)

func TestBuildNamespaceNestedMessage(t *testing.T) {
	t.Parallel()
	inner := &ast.Message{Name: ast.NewIdentifier(ast.RoleType, "Inner")}
	outer := &ast.Message{
		Name:   ast.NewIdentifier(ast.RoleType, "Outer"),
		Fields: []ast.MessageField{&ast.Nested{Message: inner}, field("x", 1)},
	}
	file := &ast.ProtobufFile{Declarations: []ast.Declaration{&ast.TopMessage{Message: outer}}}

	region := diag.New()
	compiler.BuildNamespace(region, "f.proto", file)
	testutil.ExpectFalse(t, region.Failed())

	testutil.ExpectEq(t, 0, len(outer.Path))
	testutil.ExpectEq(t, "Outer", inner.Path.String())

	_, ok := file.Namespace.Lookup("Outer.Inner")
	testutil.ExpectTrue(t, ok)
	_, ok = file.Namespace.Lookup("Outer.x")
	testutil.ExpectTrue(t, ok)
}

func TestBuildNamespaceDuplicateFieldName(t *testing.T) {
	t.Parallel()
	m := &ast.Message{
		Name:   ast.NewIdentifier(ast.RoleType, "M"),
		Fields: []ast.MessageField{field("x", 1), field("x", 2)},
	}
	file := &ast.ProtobufFile{Declarations: []ast.Declaration{&ast.TopMessage{Message: m}}}

	region := diag.New()
	compiler.BuildNamespace(region, "f.proto", file)
	testutil.ExpectTrue(t, region.Failed())
	testutil.ExpectEq(t, uint32(3000), region.Diagnostics()[0].Code)
}

func TestBuildNamespaceHoistsEnumValues(t *testing.T) {
	t.Parallel()
	e := &ast.EnumDecl{
		Name: ast.NewIdentifier(ast.RoleType, "Color"),
		Values: []ast.EnumValue{
			{Name: ast.NewIdentifier(ast.RoleField, "RED"), Value: 0},
		},
	}
	m := &ast.Message{
		Name:   ast.NewIdentifier(ast.RoleType, "M"),
		Fields: []ast.MessageField{&ast.MessageEnum{Enum: e}},
	}
	file := &ast.ProtobufFile{Declarations: []ast.Declaration{&ast.TopMessage{Message: m}}}

	region := diag.New()
	compiler.BuildNamespace(region, "f.proto", file)
	testutil.ExpectFalse(t, region.Failed())

	_, ok := file.Namespace.Lookup("M.Color")
	testutil.ExpectTrue(t, ok)
	_, ok = file.Namespace.Lookup("M.RED")
	testutil.ExpectTrue(t, ok)
}

func TestBuildNamespaceWrapsInPackage(t *testing.T) {
	t.Parallel()
	m := &ast.Message{Name: ast.NewIdentifier(ast.RoleType, "M")}
	file := &ast.ProtobufFile{
		Declarations:  []ast.Declaration{&ast.TopMessage{Message: m}},
		PackagePath: ast.QualifiedName{ast.NewIdentifier(ast.RoleType, "foo")},
	}

	region := diag.New()
	compiler.BuildNamespace(region, "f.proto", file)

	_, ok := file.Namespace.Lookup("foo.M")
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, "foo", m.Path.String())
}
