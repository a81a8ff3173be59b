// SPDX-License-Identifier: MIT

package spec

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/core"
)

// New validates and assembles a Spec. The fragments are deep-copied, so the caller
// may reuse its slices afterwards.
//
// Checks:
//   - every fragment has at least one row, and its leftover row is unproved;
//   - every skeleton row and every part head has the given stage;
//   - there is at least one part head.
//
// Complexity: O(R + P) for R skeleton rows and P part heads.
func New(stage core.Stage, frags []Frag, partHeads PartHeads) (*Spec, error) {
	if partHeads.Len() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, ErrNoPartHeads)
	}
	for i, ph := range partHeads.rows {
		if err := core.CheckStages(stage, ph.Stage()); err != nil {
			return nil, fmt.Errorf("%w: part head %d: %w", ErrInvalidSpec, i, err)
		}
	}
	for fi, f := range frags {
		if len(f.Rows) == 0 {
			return nil, fmt.Errorf("%w: fragment %d: %w", ErrInvalidSpec, fi, ErrEmptyFragment)
		}
		if f.Leftover().IsProved {
			return nil, fmt.Errorf("%w: fragment %d: %w", ErrInvalidSpec, fi, ErrLeftoverProved)
		}
		for ri, r := range f.Rows {
			if err := core.CheckStages(stage, r.Row.Stage()); err != nil {
				return nil, fmt.Errorf("%w: fragment %d row %d: %w", ErrInvalidSpec, fi, ri, err)
			}
		}
	}

	return &Spec{stage: stage, frags: cloneFrags(frags), partHeads: partHeads}, nil
}

// Stage returns the number of bells shared by every row of s.
func (s *Spec) Stage() core.Stage { return s.stage }

// NumFrags returns the number of fragments.
func (s *Spec) NumFrags() int { return len(s.frags) }

// Frag returns a copy of fragment i, or false if i is out of range.
func (s *Spec) Frag(i int) (Frag, bool) {
	if i < 0 || i >= len(s.frags) {
		return Frag{}, false
	}

	return cloneFrag(s.frags[i]), true
}

// Frags returns a deep copy of every fragment.
func (s *Spec) Frags() []Frag { return cloneFrags(s.frags) }

// FragPos returns the canvas coordinates of fragment i.
func (s *Spec) FragPos(i int) (x, y float32, ok bool) {
	if i < 0 || i >= len(s.frags) {
		return 0, 0, false
	}

	return s.frags[i].X, s.frags[i].Y, true
}

// IsFragMuted reports whether fragment i is muted (excluded from proving).
func (s *Spec) IsFragMuted(i int) (muted, ok bool) {
	if i < 0 || i >= len(s.frags) {
		return false, false
	}

	return s.frags[i].IsMuted, true
}

// PartHeads returns the part heads of s.
func (s *Spec) PartHeads() PartHeads { return s.partHeads }

// Len returns the number of skeleton rows across all fragments, leftover rows
// included. Multiply by the number of parts for the fully expanded size.
func (s *Spec) Len() int {
	n := 0
	for _, f := range s.frags {
		n += len(f.Rows)
	}

	return n
}

// Clone returns an independent copy of s. Rows are immutable, so they are shared.
func (s *Spec) Clone() *Spec {
	return &Spec{stage: s.stage, frags: cloneFrags(s.frags), partHeads: s.partHeads.clone()}
}

func cloneFrags(frags []Frag) []Frag {
	out := make([]Frag, len(frags))
	for i, f := range frags {
		out[i] = cloneFrag(f)
	}

	return out
}

func cloneFrag(f Frag) Frag {
	f.Rows = append([]SkelRow(nil), f.Rows...)

	return f
}
