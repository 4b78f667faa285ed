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
	"go.protoschema.dev/schema/ast"
	"go.protoschema.dev/schema/diag"
)

// ResolveImports merges each file's own namespace with the namespaces of
// every file it directly imports and returns the files in bundle order.
// The merge is non-transitive: a file sees the names an import exposes,
// not the names that import's own imports expose. After this runs the
// Bundle envelope can be discarded — every returned file carries its own
// fully merged namespace and no longer needs the others to resolve a
// name.
func ResolveImports(region *diag.Region, bundle *ast.Bundle) []*ast.ProtobufFile {
	sub := region.Sub()
	out := make([]*ast.ProtobufFile, 0, len(bundle.Files))
	for _, fileID := range bundle.Files {
		file := bundle.FileMap[fileID]
		merged := ast.NewNamespace()
		for _, key := range file.Namespace.Keys() {
			entry, _ := file.Namespace.Get(key)
			merged.Insert(key, entry)
		}
		for _, importID := range bundle.ImportsOf(fileID) {
			imported, ok := bundle.FileMap[importID]
			if !ok {
				continue
			}
			for _, key := range imported.Namespace.Keys() {
				entry, _ := imported.Namespace.Get(key)
				if !merged.Insert(key, entry) {
					sub.Emit(errDuplicateNameInImports(fileID, key))
				}
			}
		}
		file.Namespace = merged
		out = append(out, file)
	}
	return out
}
