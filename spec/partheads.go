// SPDX-License-Identifier: MIT

package spec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jigsaw/core"
)

// PartHeadsFromRows uses rows verbatim as the part heads, in order.
// All rows must share one Stage.
func PartHeadsFromRows(rows []core.Row) (PartHeads, error) {
	if len(rows) == 0 {
		return PartHeads{}, ErrNoPartHeads
	}
	for i, r := range rows[1:] {
		if err := core.CheckStages(rows[0].Stage(), r.Stage()); err != nil {
			return PartHeads{}, fmt.Errorf("part head %d: %w", i+1, err)
		}
	}

	return PartHeads{rows: append([]core.Row(nil), rows...)}, nil
}

// GeneratePartHeads returns the group generated by gens on stage, starting with
// rounds and then in breadth-first discovery order. With a single generator g this
// is rounds, g, g², … (the closure of g rotated to start at rounds).
//
// Implementation:
//   - Stage 1: seed the queue with rounds.
//   - Stage 2: pop x, push x·g for every generator g not yet seen.
//
// Complexity: O(|G|·|gens|·n) for a group of size |G| on n bells.
func GeneratePartHeads(stage core.Stage, gens ...core.Row) (PartHeads, error) {
	for i, g := range gens {
		if err := core.CheckStages(stage, g.Stage()); err != nil {
			return PartHeads{}, fmt.Errorf("generator %d: %w", i, err)
		}
	}
	rounds := core.Rounds(stage)
	seen := map[core.Row]struct{}{rounds: {}}
	rows := []core.Row{rounds}
	for head := 0; head < len(rows); head++ {
		for _, g := range gens {
			next := rows[head].MulUnchecked(g)
			if _, ok := seen[next]; ok {
				continue
			}
			if len(rows) == MaxPartHeads {
				return PartHeads{}, fmt.Errorf("%w: more than %d", ErrTooManyPartHeads, MaxPartHeads)
			}
			seen[next] = struct{}{}
			rows = append(rows, next)
		}
	}

	return PartHeads{rows: rows}, nil
}

// ParsePartHeads reads a comma-separated list of generator rows and returns the
// group they generate on stage. An empty string gives a one-part composition.
//
//	ParsePartHeads("18234567", Major) → 7 part heads
func ParsePartHeads(s string, stage core.Stage) (PartHeads, error) {
	var gens []core.Row
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		r, err := core.ParseRow(field)
		if err != nil {
			return PartHeads{}, fmt.Errorf("part head %q: %w", strings.TrimSpace(field), err)
		}
		gens = append(gens, r)
	}

	return GeneratePartHeads(stage, gens...)
}

// Len returns the number of parts.
func (p PartHeads) Len() int { return len(p.rows) }

// Rows returns a copy of the part-head rows.
func (p PartHeads) Rows() []core.Row { return append([]core.Row(nil), p.rows...) }

// At returns part head i, or false if i is out of range.
func (p PartHeads) At(i int) (core.Row, bool) {
	if i < 0 || i >= len(p.rows) {
		return core.Row{}, false
	}

	return p.rows[i], true
}

// IsGroup reports whether the part heads are closed under multiplication. When they
// are, falseness repeats identically in every part.
// Complexity: O(P²·n).
func (p PartHeads) IsGroup() bool {
	set := make(map[core.Row]struct{}, len(p.rows))
	for _, r := range p.rows {
		set[r] = struct{}{}
	}
	for _, a := range p.rows {
		for _, b := range p.rows {
			if _, ok := set[a.MulUnchecked(b)]; !ok {
				return false
			}
		}
	}

	return true
}

// String joins the part heads with commas.
func (p PartHeads) String() string {
	parts := make([]string, len(p.rows))
	for i, r := range p.rows {
		parts[i] = r.String()
	}

	return strings.Join(parts, ",")
}

func (p PartHeads) clone() PartHeads { return PartHeads{rows: p.Rows()} }
