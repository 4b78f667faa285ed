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
	"fmt"

	"go.protoschema.dev/schema/diag"
)

// Diagnostic codes are grouped by the stage that raises them: 1xxx label
// validator, 2xxx package extractor, 3xxx namespace builder, 4xxx import
// resolver, 5xxx type resolver, 6xxx lowering.

func errDuplicateTag(file string, tag int32) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    1000,
		Message: fmt.Sprintf("Duplicate label number %d", tag),
		File:    file,
	}
}

func errTagOutOfRange(file string, tag int32) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    1001,
		Message: fmt.Sprintf("Field tag %d is out of range", tag),
		File:    file,
	}
}

func errTagReserved(file string, tag int32) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    1002,
		Message: "Field tag is in reserved range",
		File:    file,
	}
}

func errDuplicateEnumValue(file string, value int64) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    1003,
		Message: fmt.Sprintf("Duplicate enum value %d", value),
		File:    file,
	}
}

func errMultiplePackages(file string) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    2000,
		Message: "Multiple package declarations",
		File:    file,
	}
}

func errDuplicateNameInScope(file, name string) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    3000,
		Message: fmt.Sprintf("duplicate name %q", name),
		File:    file,
	}
}

func errDuplicateNameInImports(file, name string) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    4000,
		Message: fmt.Sprintf("duplicate name in imports: %q", name),
		File:    file,
	}
}

func errUnresolvedName(file, name string) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    5000,
		Message: fmt.Sprintf("Unresolved name: %s", name),
		File:    file,
	}
}

func errNotAType(file, name string) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    5001,
		Message: fmt.Sprintf("Not a type name: %s", name),
		File:    file,
	}
}

func errDuplicateDeclaration(path string) diag.Diagnostic {
	return diag.Diagnostic{
		Code:    6000,
		Message: fmt.Sprintf("Duplicate full-path declaration: %s", path),
	}
}
