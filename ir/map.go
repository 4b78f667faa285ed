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

package ir

import "go.protoschema.dev/schema/ast"

// Map is the collision-checked map of fully-qualified path to Module.
// Insertion order is preserved so that downstream consumers (and irtext's
// golden dumps) see declarations in the same order every run.
type Map struct {
	byPath map[string]Module
	order  []string
}

func NewMap() *Map {
	return &Map{byPath: make(map[string]Module)}
}

// Insert adds mod under path. It returns false, leaving the map
// unchanged, if path is already occupied — the caller is expected to
// surface that as a "duplicate full-path declaration" diagnostic.
func (m *Map) Insert(path ast.QualifiedName, mod Module) bool {
	key := path.String()
	if _, exists := m.byPath[key]; exists {
		return false
	}
	m.byPath[key] = mod
	m.order = append(m.order, key)
	return true
}

func (m *Map) Get(path ast.QualifiedName) (Module, bool) {
	mod, ok := m.byPath[path.String()]
	return mod, ok
}

// Modules returns every Module in insertion order.
func (m *Map) Modules() []Module {
	out := make([]Module, len(m.order))
	for i, key := range m.order {
		out[i] = m.byPath[key]
	}
	return out
}

func (m *Map) Len() int {
	return len(m.byPath)
}
