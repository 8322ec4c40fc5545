// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diag implements per-element diagnostic flags for batch model evaluation.
// Batch (elementwise) calls return one Status per input row so that one bad row
// cannot abort the remaining rows.
package diag

// Status is the per-element diagnostic of a batch model evaluation
type Status int

const (

	// Ok means the element converged and is inside the model's domain
	Ok Status = iota

	// NotConverged means the iteration budget was exhausted; the returned
	// value is the best iterate found
	NotConverged

	// Clamped means the iteration left the physical region and the result
	// was pulled back to the nearest physical value
	Clamped

	// OutOfDomain means the input violates the model's validity domain
	// (e.g. porosity above critical porosity)
	OutOfDomain

	// Degenerate means a limiting-case rule was applied to avoid a
	// division by zero (e.g. both phases with zero moduli)
	Degenerate
)

// String returns a short label for the status
func (o Status) String() string {
	switch o {
	case Ok:
		return "ok"
	case NotConverged:
		return "notconverged"
	case Clamped:
		return "clamped"
	case OutOfDomain:
		return "outofdomain"
	case Degenerate:
		return "degenerate"
	}
	return "unknown"
}

// AllOk tells whether every element of a batch is Ok
func AllOk(res []Status) bool {
	for _, s := range res {
		if s != Ok {
			return false
		}
	}
	return true
}

// Count returns the number of elements with the given status
func Count(res []Status, s Status) (n int) {
	for _, r := range res {
		if r == s {
			n++
		}
	}
	return
}
