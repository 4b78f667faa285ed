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

package ast

// EnumValue is one `name = integer` enumerator.
type EnumValue struct {
	Name  Identifier
	Value int64
}

// EnumDecl is an enum declaration, top-level or nested inside a message.
type EnumDecl struct {
	Name   Identifier
	Values []EnumValue

	// Path is the enclosing path, set by the namespace builder.
	Path QualifiedName
}

func (e *EnumDecl) FullName() FullyQualifiedReference {
	return FullyQualifiedReference{Package: e.Path, Leaf: e.Name}
}
