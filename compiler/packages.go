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

// ExtractPackage lifts the file's package declaration (if any) to
// file.PackagePath. Package declarations are left in the declaration list
// untouched — only the summary is lifted.
func ExtractPackage(region *diag.Region, fileID string, file *ast.ProtobufFile) {
	var found []*ast.PackageDecl
	for _, decl := range file.Declarations {
		if pkg, ok := decl.(*ast.PackageDecl); ok {
			found = append(found, pkg)
		}
	}
	switch len(found) {
	case 0:
		file.PackagePath = ast.QualifiedName{}
	case 1:
		file.PackagePath = found[0].Path
	default:
		region.Emit(errMultiplePackages(fileID))
	}
}
