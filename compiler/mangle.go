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
	"unicode"
	"unicode/utf8"

	"go.protoschema.dev/schema/ast"
)

// MangleNames upper-cases the first character of every Type-role
// identifier and lower-cases the first character of every Field-role
// identifier; identifiers of any other role are left untouched. Applying
// it twice is a no-op: the first-character rewrite is idempotent by
// construction.
func MangleNames(file *ast.ProtobufFile) {
	ast.WalkMessages(file, func(m *ast.Message) {
		m.Name = mangleIdentifier(m.Name)
		for _, field := range m.Fields {
			if f, ok := field.(*ast.Field); ok {
				f.Name = mangleIdentifier(f.Name)
			}
		}
	})
	ast.WalkEnums(file, func(e *ast.EnumDecl) {
		e.Name = mangleIdentifier(e.Name)
		for i := range e.Values {
			e.Values[i].Name = mangleIdentifier(e.Values[i].Name)
		}
	})
}

func mangleIdentifier(id ast.Identifier) ast.Identifier {
	switch id.Role() {
	case ast.RoleType:
		return id.WithText(withFirstRune(id.Text(), unicode.ToUpper))
	case ast.RoleField:
		return id.WithText(withFirstRune(id.Text(), unicode.ToLower))
	default:
		return id
	}
}

func withFirstRune(s string, f func(rune) rune) string {
	if s == "" {
		// The parser never produces an empty identifier. Guard here
		// rather than let utf8.DecodeRuneInString return RuneError
		// silently.
		panic("compiler: empty identifier")
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(f(r)) + s[size:]
}
