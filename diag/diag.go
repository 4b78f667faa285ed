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

// Package diag implements a scoped diagnostic aggregator: a region within
// which fallible operations emit diagnostics, so a single malformed
// declaration never hides the rest of a stage's findings. Every pipeline
// stage runs inside a Region.
package diag

import "fmt"

// Severity is always Error at this layer: nothing downstream of parsing
// treats a diagnostic as merely advisory.
type Severity uint8

const (
	Error Severity = iota
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	}
	return "unknown"
}

// Diagnostic is one reported problem: a human-readable message plus the
// file it was found in (empty when the stage operates on a single file
// already identified by its caller) and a stage-scoped numeric code for
// machine matching in tests.
type Diagnostic struct {
	Severity Severity
	Code     uint32
	Message  string
	File     string
}

func (d Diagnostic) String() string {
	if d.File == "" {
		return fmt.Sprintf("%s D%d: %s", d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s D%d: %s: %s", d.Severity, d.Code, d.File, d.Message)
}

func (d Diagnostic) Error() string { return d.String() }

// Region collects diagnostics emitted during a scoped operation.
// Diagnostics emitted into a sub-region (see Sub) are also forwarded to
// every ancestor region, so an outer stage sees everything its inner
// helpers reported without each helper needing to thread a return value
// back up by hand.
type Region struct {
	parent      *Region
	diagnostics []Diagnostic
}

// New starts a fresh top-level region.
func New() *Region {
	return &Region{}
}

// Sub opens a nested region whose diagnostics also propagate to r.
func (r *Region) Sub() *Region {
	return &Region{parent: r}
}

// Emit records d in r and in every ancestor of r, in emission order.
func (r *Region) Emit(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	if r.parent != nil {
		r.parent.Emit(d)
	}
}

// Failed reports whether any diagnostic was emitted into r.
func (r *Region) Failed() bool {
	return len(r.diagnostics) > 0
}

// Diagnostics returns every diagnostic emitted into r (including ones
// forwarded up from sub-regions), in emission order.
func (r *Region) Diagnostics() []Diagnostic {
	return r.diagnostics
}
