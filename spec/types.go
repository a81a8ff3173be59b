// SPDX-License-Identifier: MIT

// Package spec holds the composition skeleton consumed by the derivation engine:
// the Stage, the ordered fragments of skeleton rows and the part heads.
//
// A Spec is an immutable snapshot. Editing a composition means building a new Spec;
// nothing in this package mutates one in place.
//
// Errors:
//
//	ErrInvalidSpec        - the skeleton breaks a structural rule (wraps the cause).
//	ErrEmptyFragment      - a fragment has no rows (it needs at least its leftover row).
//	ErrLeftoverProved     - a fragment's final (leftover) row is marked as proved.
//	ErrNoPartHeads        - the part-head list is empty.
//	ErrTooManyPartHeads   - generating the part-head group exceeded MaxPartHeads.
package spec

import (
	"errors"

	"github.com/katalvlaran/jigsaw/core"
)

// Sentinel errors for skeleton construction and loading.
var (
	// ErrInvalidSpec is the umbrella error for every rejected skeleton.
	ErrInvalidSpec = errors.New("spec: invalid composition skeleton")

	// ErrEmptyFragment indicates a fragment without any rows.
	ErrEmptyFragment = errors.New("spec: fragment has no rows")

	// ErrLeftoverProved indicates a fragment whose leftover row is marked as proved.
	ErrLeftoverProved = errors.New("spec: leftover row must not be proved")

	// ErrNoPartHeads indicates an empty part-head list.
	ErrNoPartHeads = errors.New("spec: no part heads")

	// ErrTooManyPartHeads indicates the generated part-head group is too large.
	ErrTooManyPartHeads = errors.New("spec: too many part heads")
)

// MaxPartHeads bounds the size of a generated part-head group.
const MaxPartHeads = 1 << 16

// SkelRow is one row of the skeleton, before part expansion.
//
// Call and Method are optional labels; the empty string means "no label".
// IsProved is false for rows that must be left out of truth checks, such as the
// fragment's leftover row.
type SkelRow struct {
	Row       core.Row
	Call      string
	Method    string
	IsLeadEnd bool
	IsProved  bool
}

// Frag is a contiguous block of skeleton rows placed on the editor canvas.
// The final row is the leftover row: it is never proved and is only used to test
// whether another fragment can follow this one.
type Frag struct {
	Rows    []SkelRow
	X, Y    float32
	IsMuted bool
}

// Leftover returns the fragment's final row.
func (f Frag) Leftover() SkelRow { return f.Rows[len(f.Rows)-1] }

// PartHeads is the ordered list of Rows that each generate one part of the
// composition. The first part head is conventionally rounds.
type PartHeads struct {
	rows []core.Row
}

// Spec is one immutable snapshot of a composition skeleton.
type Spec struct {
	stage     core.Stage
	frags     []Frag
	partHeads PartHeads
}
