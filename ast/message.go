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

// FieldTag is a field's wire tag number. SyntheticTag is the placeholder
// tag synthesized for MessageField items that are not a Field (Nested,
// MessageEnum, inline option) so the field sorter can order them ahead of
// real fields.
type FieldTag int32

const SyntheticTag FieldTag = -1

// Modifier is a field's cardinality.
type Modifier uint8

const (
	Required Modifier = iota
	Optional
	Repeated
)

// FieldType is a field's declared type: a builtin scalar, an unresolved
// user-typed reference, or (once the type-name resolver has run) a
// resolved message/enum reference.
type FieldType interface {
	privFieldType()
}

// Builtin names one of the scalar types recognized directly by the
// grammar (int32, string, bytes, ...), by its spelling in source.
type Builtin string

func (Builtin) privFieldType() {}

// UnresolvedUserType is a field type reference as written, before the
// type-name resolver runs. The name may be dotted (`pkg.Outer.Inner`).
type UnresolvedUserType struct {
	Name string
}

func (UnresolvedUserType) privFieldType() {}

// MessageType is a field type resolved to a user message.
type MessageType struct {
	Ref FullyQualifiedReference
}

func (MessageType) privFieldType() {}

// EnumType is a field type resolved to a user enum.
type EnumType struct {
	Ref FullyQualifiedReference
}

func (EnumType) privFieldType() {}

// MessageField is one item in a message body: a Field, a Nested message,
// an inline MessageEnum, or an inline option/extension placeholder.
type MessageField interface {
	privMessageField()
	// Tag is the item's sort key for the field sorter: a Field's own tag,
	// or SyntheticTag for anything else.
	Tag() FieldTag
}

// Field is a single message field.
type Field struct {
	Modifier Modifier
	Type     FieldType
	Name     Identifier
	FieldTag FieldTag
	Options  []Option
}

func (*Field) privMessageField() {}
func (f *Field) Tag() FieldTag    { return f.FieldTag }

// Nested is a message declared inside another message.
type Nested struct {
	Message *Message
}

func (*Nested) privMessageField() {}
func (*Nested) Tag() FieldTag      { return SyntheticTag }

// MessageEnum is an enum declared inside a message.
type MessageEnum struct {
	Enum *EnumDecl
}

func (*MessageEnum) privMessageField() {}
func (*MessageEnum) Tag() FieldTag      { return SyntheticTag }

// InlineOption is a free-standing option or extension placeholder inside
// a message body (e.g. a `reserved`/`extensions` range statement). This
// core does not interpret its contents; it participates in field sorting
// only.
type InlineOption struct {
	Option Option
}

func (*InlineOption) privMessageField() {}
func (*InlineOption) Tag() FieldTag      { return SyntheticTag }

// Message is a message declaration: its own name, its field/nested-decl
// list, and (populated by the namespace builder) the QualifiedName of its
// enclosing scope.
type Message struct {
	Name   Identifier
	Fields []MessageField

	// Path is the enclosing path (package + outer message names), not
	// including the message's own name. Set by the namespace builder.
	Path QualifiedName
}

// FullName returns the message's own fully-qualified reference, valid
// once Path has been populated.
func (m *Message) FullName() FullyQualifiedReference {
	return FullyQualifiedReference{Package: m.Path, Leaf: m.Name}
}
