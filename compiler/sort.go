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
	"sort"

	"go.protoschema.dev/schema/ast"
)

// SortFields reorders each message's MessageField list (top-level or
// nested) so Fields appear sorted by FieldTag ascending, stably —
// non-Field items keep SyntheticTag and so sort ahead of fields while
// preserving their relative order among themselves.
func SortFields(file *ast.ProtobufFile) {
	ast.WalkMessages(file, func(m *ast.Message) {
		sort.SliceStable(m.Fields, func(i, j int) bool {
			return m.Fields[i].Tag() < m.Fields[j].Tag()
		})
	})
}
