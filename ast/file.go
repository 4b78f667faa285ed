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

// Declaration is a top-level item of a ProtobufFile: Package, Import,
// TopMessage, TopEnum, TopService, or Option.
type Declaration interface {
	privDeclaration()
}

// PackageDecl names the file's package, e.g. `package foo.bar;`.
type PackageDecl struct {
	Path QualifiedName
}

func (*PackageDecl) privDeclaration() {}

// ImportDecl names another file by the literal string the parser carried
// over from the source text; the parser has already resolved it to a
// Bundle file identifier before the core pipeline runs.
type ImportDecl struct {
	Literal string
}

func (*ImportDecl) privDeclaration() {}

// TopMessage wraps a top-level message declaration.
type TopMessage struct {
	Message *Message
}

func (*TopMessage) privDeclaration() {}

// TopEnum wraps a top-level enum declaration.
type TopEnum struct {
	Enum *EnumDecl
}

func (*TopEnum) privDeclaration() {}

// TopService wraps a top-level service declaration. This core does not
// validate or lower service/method bodies; it exists so the declaration
// list and namespace accounting stay total over every kind of top-level
// item.
type TopService struct {
	Name Identifier
}

func (*TopService) privDeclaration() {}

// OptionDecl is a file-level option statement.
type OptionDecl struct {
	Option Option
}

func (*OptionDecl) privDeclaration() {}

// ProtobufFile is one parsed schema file.
type ProtobufFile struct {
	Declarations []Declaration

	// PackagePath is populated by the package extractor.
	PackagePath QualifiedName

	// Namespace is the per-stage annotation payload. It is nil until the
	// namespace builder runs, after which it holds the file's own
	// namespace wrapped by PackagePath; the bundle import resolver later
	// replaces it with the merged namespace.
	//
	// This models an evolving unit-then-Namespace payload as a concrete
	// nilable field, the idiomatic Go rendering of that small state
	// machine (see DESIGN.md).
	Namespace *Namespace
}

// Option is a single `name = value` pair attached to a declaration,
// field, or enum item.
type Option struct {
	Name  string
	Value OptionValue
}

// OptionValue is the tagged union of option literal shapes the parser can
// produce: OptString, OptBool, OptInt, OptReal.
type OptionValue interface {
	privOptionValue()
}

type OptString string

func (OptString) privOptionValue() {}

type OptBool bool

func (OptBool) privOptionValue() {}

type OptInt int64

func (OptInt) privOptionValue() {}

type OptReal float64

func (OptReal) privOptionValue() {}
