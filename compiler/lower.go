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

	"go.protoschema.dev/schema/ast"
	"go.protoschema.dev/schema/diag"
	"go.protoschema.dev/schema/ir"
)

// Lower walks every Message and EnumDecl in file and inserts a lowered
// ir.Module for each into out, keyed by its fully-qualified path. It only
// ever runs on a file whose type resolution already succeeded with no
// diagnostics, so every field's Type is a Builtin, MessageType, or
// EnumType; an UnresolvedUserType reaching this stage is an invariant
// violation, not a diagnosable condition.
func Lower(region *diag.Region, file *ast.ProtobufFile, out *ir.Map) {
	sub := region.Sub()
	ast.WalkMessages(file, func(m *ast.Message) {
		lowerMessage(sub, m, out)
	})
	ast.WalkEnums(file, func(e *ast.EnumDecl) {
		lowerEnum(sub, e, out)
	})
}

func lowerMessage(region *diag.Region, m *ast.Message, out *ir.Map) {
	ref := m.FullName()
	mod := ir.MessageModule{Name: ref}
	for _, item := range m.Fields {
		f, ok := item.(*ast.Field)
		if !ok {
			continue
		}
		inner := lowerInner(f.Type)
		mod.Fields = append(mod.Fields, ir.Field{
			Name:    f.Name.Text(),
			Shape:   lowerShape(f.Modifier, inner, f.Options),
			Tag:     int32(f.FieldTag),
			Default: findOption(f.Options, "default"),
		})
	}
	if !out.Insert(ref.Path(), mod) {
		region.Emit(errDuplicateDeclaration(ref.Path().String()))
	}
}

func lowerEnum(region *diag.Region, e *ast.EnumDecl, out *ir.Map) {
	ref := e.FullName()
	mod := ir.EnumModule{Name: ref}
	for _, v := range e.Values {
		mod.Variants = append(mod.Variants, ir.EnumVariant{Name: v.Name.Text(), Value: v.Value})
	}
	if !out.Insert(ref.Path(), mod) {
		region.Emit(errDuplicateDeclaration(ref.Path().String()))
	}
}

// lowerInner never returns a failure: by the time lowering runs, stage 9
// has already turned every user-typed field into a MessageType or an
// EnumType, or halted the pipeline with a diagnostic before this stage
// ever started. Builtins pass through stage 9 unchecked; one that does not
// name a known scalar, like any unresolved type, panics here.
func lowerInner(ft ast.FieldType) ir.Inner {
	switch ft := ft.(type) {
	case ast.Builtin:
		kind, ok := ir.ScalarKindByName(string(ft))
		if !ok {
			panic(fmt.Sprintf("compiler: unknown builtin type %q reached lowering", string(ft)))
		}
		return ir.Scalar{Kind: kind}
	case ast.MessageType:
		return ir.UserMessage{Ref: ft.Ref}
	case ast.EnumType:
		return ir.UserEnum{Ref: ft.Ref}
	default:
		panic(fmt.Sprintf("compiler: unresolved field type %T reached lowering", ft))
	}
}

func lowerShape(mod ast.Modifier, inner ir.Inner, opts []ast.Option) ir.Shape {
	switch mod {
	case ast.Optional:
		return ir.OptionalShape{Inner: inner}
	case ast.Repeated:
		return ir.RepeatedShape{Inner: inner, Packed: packedOption(opts)}
	default:
		return ir.RequiredShape{Inner: inner}
	}
}

// packedOption reads the `packed` option, which the parser guarantees is
// boolean-shaped; a non-boolean value here is a fatal internal error, not
// something this stage can diagnose.
func packedOption(opts []ast.Option) bool {
	v := findOption(opts, "packed")
	if v == nil {
		return false
	}
	b, ok := v.(ast.OptBool)
	if !ok {
		panic(fmt.Sprintf("compiler: packed option has non-boolean value %T", v))
	}
	return bool(b)
}

func findOption(opts []ast.Option, name string) ast.OptionValue {
	for _, o := range opts {
		if o.Name == name {
			return o.Value
		}
	}
	return nil
}
