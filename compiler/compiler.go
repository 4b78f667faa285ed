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

// Package compiler runs a parsed Bundle through the semantic pipeline:
// label validation, field sorting, name mangling, package extraction,
// namespace construction, import merging, type-name resolution, and
// lowering into an ir.Map. Each stage runs over every file in the bundle
// and reports all of its problems into a shared diag.Region, so one bad
// file never hides that stage's diagnostics for the rest of the bundle.
// Once a stage has reported any diagnostic, Compile returns without
// running the later stages.
package compiler

import (
	validator "github.com/go-playground/validator/v10"

	"go.protoschema.dev/schema/ast"
	"go.protoschema.dev/schema/diag"
	"go.protoschema.dev/schema/ir"
)

// Result is everything Compile produces: the lowered declaration map
// (always non-nil, possibly incomplete if Diagnostics reports failures)
// and every diagnostic raised along the way.
type Result struct {
	Modules     *ir.Map
	Diagnostics []diag.Diagnostic
}

// boundaryShape is validated against an incoming Bundle before the
// pipeline runs, rejecting a bundle with no files or a file list
// containing an empty identifier — malformed input from whatever stands
// in front of this package, not a diagnosable schema error.
type boundaryShape struct {
	Files []string `validate:"required,min=1,dive,required"`
}

// Compile runs bundle through every stage and returns the resulting
// declaration map along with the diagnostics raised across all stages.
func Compile(bundle *ast.Bundle) Result {
	region := diag.New()

	if err := validator.New().Struct(boundaryShape{Files: bundle.Files}); err != nil {
		region.Emit(diag.Diagnostic{Code: 0, Message: err.Error()})
		return Result{Modules: ir.NewMap(), Diagnostics: region.Diagnostics()}
	}

	for _, fileID := range bundle.Files {
		ValidateLabels(region, fileID, bundle.FileMap[fileID])
	}
	if region.Failed() {
		return Result{Modules: ir.NewMap(), Diagnostics: region.Diagnostics()}
	}

	for _, fileID := range bundle.Files {
		file := bundle.FileMap[fileID]
		SortFields(file)
		MangleNames(file)
	}

	for _, fileID := range bundle.Files {
		ExtractPackage(region, fileID, bundle.FileMap[fileID])
	}
	if region.Failed() {
		return Result{Modules: ir.NewMap(), Diagnostics: region.Diagnostics()}
	}

	for _, fileID := range bundle.Files {
		BuildNamespace(region, fileID, bundle.FileMap[fileID])
	}
	if region.Failed() {
		return Result{Modules: ir.NewMap(), Diagnostics: region.Diagnostics()}
	}

	merged := ResolveImports(region, bundle)
	if region.Failed() {
		return Result{Modules: ir.NewMap(), Diagnostics: region.Diagnostics()}
	}

	for i, file := range merged {
		ResolveTypeNames(region, bundle.Files[i], file)
	}
	if region.Failed() {
		return Result{Modules: ir.NewMap(), Diagnostics: region.Diagnostics()}
	}

	modules := ir.NewMap()
	for _, file := range merged {
		Lower(region, file, modules)
	}
	return Result{Modules: modules, Diagnostics: region.Diagnostics()}
}
