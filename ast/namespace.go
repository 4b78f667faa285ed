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

import (
	"maps"
	"slices"
	"strings"
)

// NamespaceEntry is a value stored in a Namespace: a message (with its own
// nested namespace), an enum, or a field.
type NamespaceEntry interface {
	privNamespaceEntry()
	EntryName() string
}

type MessageEntry struct {
	Name  string
	Inner *Namespace
}

func (e MessageEntry) privNamespaceEntry() {}
func (e MessageEntry) EntryName() string   { return e.Name }

type EnumEntry struct {
	Name string
}

func (e EnumEntry) privNamespaceEntry() {}
func (e EnumEntry) EntryName() string   { return e.Name }

type FieldEntry struct {
	Name string
}

func (e FieldEntry) privNamespaceEntry() {}
func (e FieldEntry) EntryName() string   { return e.Name }

// Namespace is a single-level mapping from textual identifier to a
// NamespaceEntry; no two entries within one Namespace may share a key.
type Namespace struct {
	entries map[string]NamespaceEntry
}

func NewNamespace() *Namespace {
	return &Namespace{entries: make(map[string]NamespaceEntry)}
}

// Insert adds entry under key, returning false without modifying the
// namespace if key is already occupied.
func (ns *Namespace) Insert(key string, entry NamespaceEntry) bool {
	if _, exists := ns.entries[key]; exists {
		return false
	}
	ns.entries[key] = entry
	return true
}

func (ns *Namespace) Get(key string) (NamespaceEntry, bool) {
	entry, ok := ns.entries[key]
	return entry, ok
}

// Keys returns the namespace's keys in a fixed, deterministic order
// (lexical): nothing in this package lets Go's randomized map iteration
// leak into diagnostic ordering.
func (ns *Namespace) Keys() []string {
	return slices.Sorted(maps.Keys(ns.entries))
}

func (ns *Namespace) Len() int {
	return len(ns.entries)
}

// Lookup resolves a (possibly dotted) name by descending through nested
// MessageEntry namespaces one segment at a time.
func (ns *Namespace) Lookup(dottedName string) (NamespaceEntry, bool) {
	segments := strings.Split(dottedName, ".")
	cur := ns
	for i, seg := range segments {
		entry, ok := cur.entries[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return entry, true
		}
		msgEntry, ok := entry.(MessageEntry)
		if !ok {
			return nil, false
		}
		cur = msgEntry.Inner
	}
	return nil, false
}

// WrapInPackage right-folds ns under path: wrapping ns under [p1, p2, …,
// pk] produces nested MessageEntry wrappers so that looking up
// "p1.p2.….pk.X" terminates in ns's own lookup of "X".
func WrapInPackage(path QualifiedName, ns *Namespace) *Namespace {
	wrapped := ns
	for i := len(path) - 1; i >= 0; i-- {
		outer := NewNamespace()
		name := path[i].Text()
		outer.Insert(name, MessageEntry{Name: name, Inner: wrapped})
		wrapped = outer
	}
	return wrapped
}
