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

package compiler

import (
	"go.protoschema.dev/schema/ast"
	"go.protoschema.dev/schema/diag"
)

// BuildNamespace is a scoped traversal with a localized mutable
// accumulator (the *ast.Namespace being built): entering a Message pushes
// a fresh scope, insertions happen against the current scope, and leaving
// a Message pops back to the caller's scope by simply returning the built
// *ast.Namespace — the accumulator never escapes the file being
// processed.
func BuildNamespace(region *diag.Region, fileID string, file *ast.ProtobufFile) {
	fileScope := ast.NewNamespace()
	sub := region.Sub()
	for _, decl := range file.Declarations {
		switch decl := decl.(type) {
		case *ast.TopMessage:
			m := decl.Message
			m.Path = file.PackagePath
			inner := buildMessageScope(sub, fileID, m)
			name := m.Name.Text()
			if !fileScope.Insert(name, ast.MessageEntry{Name: name, Inner: inner}) {
				sub.Emit(errDuplicateNameInScope(fileID, name))
			}
		case *ast.TopEnum:
			e := decl.Enum
			e.Path = file.PackagePath
			insertEnumEntries(sub, fileID, fileScope, e)
		}
	}
	file.Namespace = ast.WrapInPackage(file.PackagePath, fileScope)
}

func buildMessageScope(region *diag.Region, fileID string, m *ast.Message) *ast.Namespace {
	scope := ast.NewNamespace()
	for _, field := range m.Fields {
		switch field := field.(type) {
		case *ast.Field:
			name := field.Name.Text()
			if !scope.Insert(name, ast.FieldEntry{Name: name}) {
				region.Emit(errDuplicateNameInScope(fileID, name))
			}
		case *ast.Nested:
			nested := field.Message
			nested.Path = m.Path.Append(m.Name)
			inner := buildMessageScope(region, fileID, nested)
			name := nested.Name.Text()
			if !scope.Insert(name, ast.MessageEntry{Name: name, Inner: inner}) {
				region.Emit(errDuplicateNameInScope(fileID, name))
			}
		case *ast.MessageEnum:
			e := field.Enum
			e.Path = m.Path.Append(m.Name)
			insertEnumEntries(region, fileID, scope, e)
		}
	}
	return scope
}

// insertEnumEntries inserts an EnumEntry for e itself and a FieldEntry
// for every enumerator (protobuf hoists enum value names into the
// enclosing scope).
func insertEnumEntries(region *diag.Region, fileID string, scope *ast.Namespace, e *ast.EnumDecl) {
	name := e.Name.Text()
	if !scope.Insert(name, ast.EnumEntry{Name: name}) {
		region.Emit(errDuplicateNameInScope(fileID, name))
	}
	for _, value := range e.Values {
		valueName := value.Name.Text()
		if !scope.Insert(valueName, ast.FieldEntry{Name: valueName}) {
			region.Emit(errDuplicateNameInScope(fileID, valueName))
		}
	}
}
