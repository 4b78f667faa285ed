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

package ir_test

import (
	"testing"

	"go.protoschema.dev/schema/ast"
	"go.protoschema.dev/schema/internal/testutil"
	"go.protoschema.dev/schema/ir"
)

func path(parts ...string) ast.QualifiedName {
	var q ast.QualifiedName
	for _, p := range parts {
		q = q.Append(ast.NewIdentifier(ast.RoleType, p))
	}
	return q
}

func TestMapInsertRejectsCollision(t *testing.T) {
	t.Parallel()
	m := ir.NewMap()
	foo := ir.MessageModule{Name: ast.FullyQualifiedReference{Leaf: ast.NewIdentifier(ast.RoleType, "Foo")}}
	bar := ir.EnumModule{Name: ast.FullyQualifiedReference{Leaf: ast.NewIdentifier(ast.RoleType, "Foo")}}

	testutil.ExpectTrue(t, m.Insert(path("Foo"), foo))
	testutil.ExpectFalse(t, m.Insert(path("Foo"), bar))
	testutil.ExpectEq(t, 1, m.Len())
}

func TestMapModulesPreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	m := ir.NewMap()
	m.Insert(path("Zeta"), ir.MessageModule{Name: ast.FullyQualifiedReference{Leaf: ast.NewIdentifier(ast.RoleType, "Zeta")}})
	m.Insert(path("Alpha"), ir.MessageModule{Name: ast.FullyQualifiedReference{Leaf: ast.NewIdentifier(ast.RoleType, "Alpha")}})

	got := m.Modules()
	testutil.ExpectEq(t, 2, len(got))
	testutil.ExpectEq(t, "Zeta", got[0].TypeName().String())
	testutil.ExpectEq(t, "Alpha", got[1].TypeName().String())
}

func TestMapGet(t *testing.T) {
	t.Parallel()
	m := ir.NewMap()
	foo := ir.MessageModule{Name: ast.FullyQualifiedReference{Leaf: ast.NewIdentifier(ast.RoleType, "Foo")}}
	m.Insert(path("pkg", "Foo"), foo)

	got, ok := m.Get(path("pkg", "Foo"))
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, foo.TypeName().String(), got.TypeName().String())

	_, ok = m.Get(path("pkg", "Missing"))
	testutil.ExpectFalse(t, ok)
}
