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

// Package ast defines the name and identifier model shared by every stage
// of the schema-compiler pipeline: roles, qualified names, fully-qualified
// references, and the protobuf-shaped AST nodes those stages walk.
package ast

import "strings"

// Role tags an Identifier by its syntactic position, preventing a type name
// from being used where a field name is required and vice versa.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleType
	RoleField
	RolePackage
	RoleMethod
	RoleService
)

func (r Role) String() string {
	switch r {
	case RoleType:
		return "type"
	case RoleField:
		return "field"
	case RolePackage:
		return "package"
	case RoleMethod:
		return "method"
	case RoleService:
		return "service"
	}
	return "unknown"
}

// Identifier is a non-empty name tagged with the role it plays in the
// schema. Constructing one with an empty text is a precondition violation:
// the parser must never produce an empty identifier.
type Identifier struct {
	role Role
	text string
}

// NewIdentifier builds an Identifier, panicking if text is empty. An empty
// identifier can never occur in a well-formed AST handed in by the
// parser, so this is an internal invariant violation rather than a
// diagnosable error.
func NewIdentifier(role Role, text string) Identifier {
	if text == "" {
		panic("ast: empty identifier")
	}
	return Identifier{role: role, text: text}
}

func (id Identifier) Role() Role   { return id.role }
func (id Identifier) Text() string { return id.text }
func (id Identifier) String() string {
	return id.text
}

func (id Identifier) IsZero() bool {
	return id.text == ""
}

// WithText returns a copy of id with its text replaced, preserving role.
// Used by the name mangler to rewrite capitalization in place.
func (id Identifier) WithText(text string) Identifier {
	return Identifier{role: id.role, text: text}
}

// QualifiedName is an ordered sequence of Type-role identifiers. The empty
// QualifiedName denotes the root package.
type QualifiedName []Identifier

func (q QualifiedName) String() string {
	parts := make([]string, len(q))
	for i, id := range q {
		parts[i] = id.Text()
	}
	return strings.Join(parts, ".")
}

// Append returns a new QualifiedName with name appended, leaving q
// untouched.
func (q QualifiedName) Append(name Identifier) QualifiedName {
	out := make(QualifiedName, len(q)+1)
	copy(out, q)
	out[len(q)] = name
	return out
}

// Equal reports whether q and other name the same sequence of identifiers.
func (q QualifiedName) Equal(other QualifiedName) bool {
	if len(q) != len(other) {
		return false
	}
	for i := range q {
		if q[i].Text() != other[i].Text() {
			return false
		}
	}
	return true
}

// FullyQualifiedReference couples a package/outer-message path with a
// single leaf type name, unambiguously identifying a declaration across
// the whole bundle.
type FullyQualifiedReference struct {
	Package QualifiedName
	Leaf    Identifier
}

func (r FullyQualifiedReference) String() string {
	if len(r.Package) == 0 {
		return r.Leaf.Text()
	}
	return r.Package.String() + "." + r.Leaf.Text()
}

// Path returns the fully-qualified name as a single QualifiedName
// (package path with the leaf appended), the form used as an IR map key.
func (r FullyQualifiedReference) Path() QualifiedName {
	return r.Package.Append(r.Leaf)
}
