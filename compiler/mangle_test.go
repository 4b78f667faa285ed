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
	"go.protoschema.dev/schema/internal/testutil"
)

func TestMangleNamesCapitalizesTypesLowersFields(t *testing.T) {
	t.Parallel()
	m := &ast.Message{
		Name:   ast.NewIdentifier(ast.RoleType, "widget"),
		Fields: []ast.MessageField{field("Count", 1)},
	}
	e := &ast.EnumDecl{
		Name: ast.NewIdentifier(ast.RoleType, "color"),
		Values: []ast.EnumValue{
			{Name: ast.NewIdentifier(ast.RoleField, "RED"), Value: 0},
		},
	}
	file := &ast.ProtobufFile{
		Declarations: []ast.Declaration{
			&ast.TopMessage{Message: m},
			&ast.TopEnum{Enum: e},
		},
	}

	compiler.MangleNames(file)

	testutil.ExpectEq(t, "Widget", m.Name.Text())
	testutil.ExpectEq(t, "count", m.Fields[0].(*ast.Field).Name.Text())
	testutil.ExpectEq(t, "Color", e.Name.Text())
	testutil.ExpectEq(t, "RED", e.Values[0].Name.Text())
}

func TestMangleNamesIsIdempotent(t *testing.T) {
	t.Parallel()
	m := &ast.Message{Name: ast.NewIdentifier(ast.RoleType, "widget")}
	file := &ast.ProtobufFile{Declarations: []ast.Declaration{&ast.TopMessage{Message: m}}}

	compiler.MangleNames(file)
	once := m.Name.Text()
	compiler.MangleNames(file)
	testutil.ExpectEq(t, once, m.Name.Text())
}

func TestMangleNamesHandlesInlineEnum(t *testing.T) {
	t.Parallel()
	e := &ast.EnumDecl{Name: ast.NewIdentifier(ast.RoleType, "color")}
	m := &ast.Message{
		Name:   ast.NewIdentifier(ast.RoleType, "widget"),
		Fields: []ast.MessageField{&ast.MessageEnum{Enum: e}},
	}
	file := &ast.ProtobufFile{Declarations: []ast.Declaration{&ast.TopMessage{Message: m}}}

	compiler.MangleNames(file)
	testutil.ExpectEq(t, "Color", e.Name.Text())
}
