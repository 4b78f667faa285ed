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

package compiler_test

import (
	"testing"

	"go.protoschema.dev/schema/compiler"
	"go.protoschema.dev/schema/internal/testutil"
	"go.protoschema.dev/schema/irtext"
)

func TestCompileSingleFileEndToEnd(t *testing.T) {
	t.Parallel()
	bundle := testutil.LoadBundle(t, `
files:
  - id: widget.proto
    package: shapes
    messages:
      - name: widget
        fields:
          - {name: Count, type: int32, tag: 1, modifier: required}
          - {name: Tags, type: string, tag: 2, modifier: repeated}
        nested:
          - name: part
            fields:
              - {name: Name, type: string, tag: 1, modifier: required}
`)

	result := compiler.Compile(bundle)
	testutil.ExpectEq(t, 0, len(result.Diagnostics))

	got := irtext.Encode(result.Modules.Modules())
	want := "message shapes.Widget {\n" +
		"\trequired int32 count = 1\n" +
		"\trepeated string tags = 2\n" +
		"}\n" +
		"message shapes.Widget.Part {\n" +
		"\trequired string name = 1\n" +
		"}\n"
	testutil.ExpectNoDiff(t, want, got)
}

func TestCompileCrossFileReference(t *testing.T) {
	t.Parallel()
	bundle := testutil.LoadBundle(t, `
files:
  - id: colors.proto
    package: colors
    enums:
      - name: color
        values:
          - {name: RED, value: 0}
  - id: widget.proto
    package: shapes
    imports: ["colors.proto"]
    messages:
      - name: widget
        fields:
          - {name: Shade, type: colors.Color, tag: 1, modifier: required}
`)

	result := compiler.Compile(bundle)
	testutil.ExpectEq(t, 0, len(result.Diagnostics))

	got := irtext.Encode(result.Modules.Modules())
	want := "enum colors.Color {\n" +
		"\tRED = 0\n" +
		"}\n" +
		"message shapes.Widget {\n" +
		"\trequired colors.Color shade = 1\n" +
		"}\n"
	testutil.ExpectNoDiff(t, want, got)
}

func TestCompileUnresolvedNameIsDiagnosed(t *testing.T) {
	t.Parallel()
	bundle := testutil.LoadBundle(t, `
files:
  - id: widget.proto
    messages:
      - name: widget
        fields:
          - {name: Shade, type: Missing, tag: 1, modifier: required}
`)

	result := compiler.Compile(bundle)
	testutil.ExpectEq(t, 1, len(result.Diagnostics))
	testutil.ExpectEq(t, uint32(5000), result.Diagnostics[0].Code)
}

func TestCompileDuplicateTagIsDiagnosed(t *testing.T) {
	t.Parallel()
	bundle := testutil.LoadBundle(t, `
files:
  - id: widget.proto
    messages:
      - name: widget
        fields:
          - {name: A, type: int32, tag: 1, modifier: required}
          - {name: B, type: int32, tag: 1, modifier: required}
`)

	result := compiler.Compile(bundle)
	testutil.ExpectEq(t, 1, len(result.Diagnostics))
	testutil.ExpectEq(t, uint32(1000), result.Diagnostics[0].Code)
}

func TestCompileEmptyBundleFailsBoundaryValidation(t *testing.T) {
	t.Parallel()
	bundle := testutil.LoadBundle(t, `files: []`)
	result := compiler.Compile(bundle)
	testutil.ExpectEq(t, 1, len(result.Diagnostics))
	testutil.ExpectEq(t, 0, result.Modules.Len())
}
