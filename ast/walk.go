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

// WalkMessages visits every Message reachable from file, top-level and
// nested, in declaration order, calling fn on each. Every stage that needs
// to visit every Message anywhere in the tree — the label validator, the
// field sorter, the name mangler, the type-name resolver, the lowering
// pass — shares this one traversal rather than re-deriving it.
func WalkMessages(file *ProtobufFile, fn func(*Message)) {
	for _, decl := range file.Declarations {
		if top, ok := decl.(*TopMessage); ok {
			walkMessage(top.Message, fn)
		}
	}
}

func walkMessage(m *Message, fn func(*Message)) {
	fn(m)
	for _, field := range m.Fields {
		if nested, ok := field.(*Nested); ok {
			walkMessage(nested.Message, fn)
		}
	}
}

// WalkEnums visits every EnumDecl reachable from file: top-level enums and
// every inline MessageEnum nested inside a message at any depth, in
// declaration order.
func WalkEnums(file *ProtobufFile, fn func(*EnumDecl)) {
	for _, decl := range file.Declarations {
		switch decl := decl.(type) {
		case *TopEnum:
			fn(decl.Enum)
		case *TopMessage:
			walkMessageEnums(decl.Message, fn)
		}
	}
}

func walkMessageEnums(m *Message, fn func(*EnumDecl)) {
	for _, field := range m.Fields {
		switch field := field.(type) {
		case *MessageEnum:
			fn(field.Enum)
		case *Nested:
			walkMessageEnums(field.Message, fn)
		}
	}
}

// WalkFields visits every *Field in m, including fields of nested
// messages, in declaration order.
func WalkFields(m *Message, fn func(*Field)) {
	for _, field := range m.Fields {
		switch field := field.(type) {
		case *Field:
			fn(field)
		case *Nested:
			WalkFields(field.Message, fn)
		}
	}
}
