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
	"strings"

	"go.protoschema.dev/schema/ast"
	"go.protoschema.dev/schema/diag"
)

// ResolveTypeNames rewrites every ast.UnresolvedUserType field type in
// file into a MessageType or EnumType, or emits a diagnostic explaining
// why it could not. Builtins are left untouched.
//
// Lookup of a name written inside a message at path P tries P itself,
// then each successively shorter prefix of P, then the root, stopping at
// the first scope in which the name (segment by segment, following any
// dots it already contains) resolves to something. This lets an
// unqualified reference to a sibling nested type resolve from inside the
// message that declares it, while a dotted reference can still reach
// across package boundaries.
func ResolveTypeNames(region *diag.Region, fileID string, file *ast.ProtobufFile) {
	ast.WalkMessages(file, func(m *ast.Message) {
		enclosing := m.Path.Append(m.Name)
		for _, item := range m.Fields {
			f, ok := item.(*ast.Field)
			if !ok {
				continue
			}
			unresolved, ok := f.Type.(ast.UnresolvedUserType)
			if !ok {
				continue
			}
			resolveFieldType(region, fileID, file.Namespace, enclosing, f, unresolved.Name)
		}
	})
}

func resolveFieldType(region *diag.Region, fileID string, global *ast.Namespace, enclosing ast.QualifiedName, f *ast.Field, name string) {
	for i := len(enclosing); i >= 0; i-- {
		candidate := enclosing[:i]
		entry, ok := global.Lookup(searchKey(candidate, name))
		if !ok {
			continue
		}
		ref := buildReference(candidate, name)
		switch entry.(type) {
		case ast.MessageEntry:
			f.Type = ast.MessageType{Ref: ref}
		case ast.EnumEntry:
			f.Type = ast.EnumType{Ref: ref}
		default:
			region.Emit(errNotAType(fileID, name))
		}
		return
	}
	region.Emit(errUnresolvedName(fileID, name))
}

func searchKey(candidate ast.QualifiedName, name string) string {
	if len(candidate) == 0 {
		return name
	}
	return candidate.String() + "." + name
}

// buildReference splits name on '.' and folds every segment but the last
// into candidate to produce the full package/outer-message path, leaving
// the final segment as the reference's leaf.
func buildReference(candidate ast.QualifiedName, name string) ast.FullyQualifiedReference {
	segments := strings.Split(name, ".")
	path := candidate
	for _, seg := range segments[:len(segments)-1] {
		path = path.Append(ast.NewIdentifier(ast.RoleType, seg))
	}
	leaf := ast.NewIdentifier(ast.RoleType, segments[len(segments)-1])
	return ast.FullyQualifiedReference{Package: path, Leaf: leaf}
}
