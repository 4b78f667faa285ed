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

package testutil

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"go.protoschema.dev/schema/ast"
	"go.protoschema.dev/schema/ir"
)

// bundleFixture is the YAML shape a test case declares its input Bundle
// in. There is no lexer/parser in this module, so fixtures describe the
// AST directly rather than protobuf source text.
type bundleFixture struct {
	Files []fileFixture `yaml:"files"`
}

type fileFixture struct {
	ID       string           `yaml:"id"`
	Package  string           `yaml:"package"`
	Imports  []string         `yaml:"imports"`
	Messages []messageFixture `yaml:"messages"`
	Enums    []enumFixture    `yaml:"enums"`
}

type messageFixture struct {
	Name        string           `yaml:"name"`
	Fields      []fieldFixture   `yaml:"fields"`
	Nested      []messageFixture `yaml:"nested"`
	NestedEnums []enumFixture    `yaml:"nested_enums"`
}

type fieldFixture struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Tag      int32  `yaml:"tag"`
	Modifier string `yaml:"modifier"`
	Packed   bool   `yaml:"packed"`
	Default  string `yaml:"default"`
}

type enumFixture struct {
	Name   string             `yaml:"name"`
	Values []enumValueFixture `yaml:"values"`
}

type enumValueFixture struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// LoadBundle parses a YAML bundle fixture into an *ast.Bundle ready to
// hand to compiler.Compile. Import literals in a fixture are taken to be
// file identifiers directly, since fixtures bypass the out-of-scope
// import-literal resolution a real front end would perform.
func LoadBundle(t *testing.T, yamlText string) *ast.Bundle {
	t.Helper()
	var fixture bundleFixture
	if err := yaml.Unmarshal([]byte(yamlText), &fixture); err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}

	bundle := &ast.Bundle{
		ImportMap: make(map[string]string),
		FileMap:   make(map[string]*ast.ProtobufFile),
	}
	for _, ff := range fixture.Files {
		bundle.Files = append(bundle.Files, ff.ID)
		bundle.FileMap[ff.ID] = buildFile(ff)
		for _, imp := range ff.Imports {
			bundle.ImportMap[imp] = imp
		}
	}
	return bundle
}

func buildFile(ff fileFixture) *ast.ProtobufFile {
	file := &ast.ProtobufFile{}
	if ff.Package != "" {
		file.Declarations = append(file.Declarations, &ast.PackageDecl{Path: qualifiedName(ff.Package)})
	}
	for _, imp := range ff.Imports {
		file.Declarations = append(file.Declarations, &ast.ImportDecl{Literal: imp})
	}
	for _, m := range ff.Messages {
		file.Declarations = append(file.Declarations, &ast.TopMessage{Message: buildMessage(m)})
	}
	for _, e := range ff.Enums {
		file.Declarations = append(file.Declarations, &ast.TopEnum{Enum: buildEnum(e)})
	}
	return file
}

func buildMessage(m messageFixture) *ast.Message {
	msg := &ast.Message{Name: ast.NewIdentifier(ast.RoleType, m.Name)}
	for _, f := range m.Fields {
		msg.Fields = append(msg.Fields, buildField(f))
	}
	for _, n := range m.Nested {
		msg.Fields = append(msg.Fields, &ast.Nested{Message: buildMessage(n)})
	}
	for _, e := range m.NestedEnums {
		msg.Fields = append(msg.Fields, &ast.MessageEnum{Enum: buildEnum(e)})
	}
	return msg
}

func buildEnum(e enumFixture) *ast.EnumDecl {
	enum := &ast.EnumDecl{Name: ast.NewIdentifier(ast.RoleType, e.Name)}
	for _, v := range e.Values {
		enum.Values = append(enum.Values, ast.EnumValue{
			Name:  ast.NewIdentifier(ast.RoleField, v.Name),
			Value: v.Value,
		})
	}
	return enum
}

func buildField(f fieldFixture) *ast.Field {
	field := &ast.Field{
		Name:     ast.NewIdentifier(ast.RoleField, f.Name),
		FieldTag: ast.FieldTag(f.Tag),
		Modifier: fieldModifier(f.Modifier),
		Type:     fieldTypeOf(f.Type),
	}
	if f.Packed {
		field.Options = append(field.Options, ast.Option{Name: "packed", Value: ast.OptBool(true)})
	}
	if f.Default != "" {
		field.Options = append(field.Options, ast.Option{Name: "default", Value: ast.OptString(f.Default)})
	}
	return field
}

func fieldModifier(s string) ast.Modifier {
	switch s {
	case "optional":
		return ast.Optional
	case "repeated":
		return ast.Repeated
	default:
		return ast.Required
	}
}

func fieldTypeOf(name string) ast.FieldType {
	if _, ok := ir.ScalarKindByName(name); ok {
		return ast.Builtin(name)
	}
	return ast.UnresolvedUserType{Name: name}
}

func qualifiedName(dotted string) ast.QualifiedName {
	var out ast.QualifiedName
	for _, part := range strings.Split(dotted, ".") {
		out = out.Append(ast.NewIdentifier(ast.RoleType, part))
	}
	return out
}
