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

// Bundle is the set of schema files participating in one compilation, with
// the import graph already resolved to file identifiers by the parser.
type Bundle struct {
	// Files lists file identifiers in a fixed order; that order determines
	// diagnostic and IR emission order everywhere downstream.
	Files []string

	// ImportMap maps an Import literal as written to the file identifier
	// it resolves to.
	ImportMap map[string]string

	// FileMap maps a file identifier to its ProtobufFile.
	FileMap map[string]*ProtobufFile
}

// ImportsOf returns the file identifiers directly imported by the file
// identified by fileID, in the import declaration order of that file.
func (b *Bundle) ImportsOf(fileID string) []string {
	file, ok := b.FileMap[fileID]
	if !ok {
		return nil
	}
	var out []string
	for _, decl := range file.Declarations {
		imp, ok := decl.(*ImportDecl)
		if !ok {
			continue
		}
		if resolved, ok := b.ImportMap[imp.Literal]; ok {
			out = append(out, resolved)
		}
	}
	return out
}
