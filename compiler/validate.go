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
	"go.protoschema.dev/schema/diag"
)

const (
	minFieldTag      = 1
	maxFieldTag      = 1<<29 - 1
	reservedTagStart = 19000
	reservedTagEnd   = 19999
)

// ValidateLabels emits a diagnostic for every out-of-range, reserved, or
// duplicate field tag, and every duplicate enum value, anywhere in file.
// It never mutates the AST.
func ValidateLabels(region *diag.Region, fileID string, file *ast.ProtobufFile) {
	ast.WalkMessages(file, func(m *ast.Message) {
		validateMessageTags(region, fileID, m)
	})
	ast.WalkEnums(file, func(e *ast.EnumDecl) {
		validateEnumValues(region, fileID, e)
	})
}

func validateMessageTags(region *diag.Region, fileID string, m *ast.Message) {
	var tags []int32
	for _, item := range m.Fields {
		f, ok := item.(*ast.Field)
		if !ok {
			continue
		}
		tag := int32(f.FieldTag)
		tags = append(tags, tag)
		if tag < minFieldTag || tag > maxFieldTag {
			region.Emit(errTagOutOfRange(fileID, tag))
			continue
		}
		if tag >= reservedTagStart && tag <= reservedTagEnd {
			region.Emit(errTagReserved(fileID, tag))
		}
	}
	for _, dup := range duplicates(tags) {
		region.Emit(errDuplicateTag(fileID, dup))
	}
}

func validateEnumValues(region *diag.Region, fileID string, e *ast.EnumDecl) {
	values := make([]int64, len(e.Values))
	for i, v := range e.Values {
		values[i] = v.Value
	}
	for _, dup := range duplicatesInt64(values) {
		region.Emit(errDuplicateEnumValue(fileID, dup))
	}
}

// duplicates reports the set of values (each once) that appear more than
// once in xs, found by comparing a sorted copy against its run-length
// collapse.
func duplicates(xs []int32) []int32 {
	if len(xs) < 2 {
		return nil
	}
	sorted := append([]int32(nil), xs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var dups []int32
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] && (len(dups) == 0 || dups[len(dups)-1] != sorted[i]) {
			dups = append(dups, sorted[i])
		}
	}
	return dups
}

func duplicatesInt64(xs []int64) []int64 {
	if len(xs) < 2 {
		return nil
	}
	sorted := append([]int64(nil), xs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var dups []int64
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] && (len(dups) == 0 || dups[len(dups)-1] != sorted[i]) {
			dups = append(dups, sorted[i])
		}
	}
	return dups
}
