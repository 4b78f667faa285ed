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

// Package irtext renders a slice of ir.Module as deterministic, indented
// text, suitable as a test golden format: the same modules in the same
// order always produce byte-identical output.
package irtext

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.protoschema.dev/schema/ast"
	"go.protoschema.dev/schema/ir"
)

func Encode(modules []ir.Module) string {
	var buf strings.Builder
	EncodeTo(modules, &buf)
	return buf.String()
}

func EncodeTo(modules []ir.Module, w io.Writer) error {
	e := &encoder{w: w}
	for _, mod := range modules {
		if e.err != nil {
			break
		}
		e.visitModule(mod)
	}
	return e.err
}

type encoder struct {
	w      io.Writer
	indent int
	err    error
}

func (e *encoder) line(s string) {
	if indent := strings.Repeat("\t", e.indent); indent != "" {
		if _, err := io.WriteString(e.w, indent); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
		return
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		e.err = err
		return
	}
}

func (e *encoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *encoder) visitModule(mod ir.Module) {
	switch mod := mod.(type) {
	case ir.MessageModule:
		e.linef("message %s {", mod.Name.String())
		e.indent++
		for _, f := range mod.Fields {
			e.visitField(f)
		}
		e.indent--
		e.line("}")
	case ir.EnumModule:
		e.linef("enum %s {", mod.Name.String())
		e.indent++
		for _, v := range mod.Variants {
			e.linef("%s = %d", v.Name, v.Value)
		}
		e.indent--
		e.line("}")
	}
}

func (e *encoder) visitField(f ir.Field) {
	shape, inner := shapeText(f.Shape)
	s := fmt.Sprintf("%s %s %s = %d", shape, inner, f.Name, f.Tag)
	if f.Default != nil {
		s += fmt.Sprintf(" [default = %s]", optionText(f.Default))
	}
	e.line(s)
}

func shapeText(s ir.Shape) (string, string) {
	inner := innerText(s.InnerType())
	switch s := s.(type) {
	case ir.RequiredShape:
		return "required", inner
	case ir.OptionalShape:
		return "optional", inner
	case ir.RepeatedShape:
		if s.Packed {
			return "repeated packed", inner
		}
		return "repeated", inner
	}
	return "?", inner
}

func innerText(inner ir.Inner) string {
	switch inner := inner.(type) {
	case ir.Scalar:
		return inner.Kind.String()
	case ir.UserMessage:
		return inner.Ref.String()
	case ir.UserEnum:
		return inner.Ref.String()
	}
	return "?"
}

func optionText(v ast.OptionValue) string {
	switch v := v.(type) {
	case ast.OptString:
		return quote(string(v))
	case ast.OptBool:
		if bool(v) {
			return ".true"
		}
		return ".false"
	case ast.OptInt:
		return strconv.FormatInt(int64(v), 10)
	case ast.OptReal:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	return "?"
}

func quote(text string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, c := range text {
		if c == '\\' || c == '"' {
			buf.WriteByte('\\')
			buf.WriteRune(c)
			continue
		}
		if c == '\t' {
			buf.WriteString("\\t")
			continue
		}
		if c == '\n' {
			buf.WriteString("\\n")
			continue
		}
		if c < 0x20 || c == 0x7F {
			fmt.Fprintf(&buf, "\\x%02X", c)
			continue
		}
		buf.WriteRune(c)
	}
	buf.WriteByte('"')
	return buf.String()
}
