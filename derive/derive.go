// SPDX-License-Identifier: MIT

package derive

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/jigsaw/core"
	"github.com/katalvlaran/jigsaw/links"
	"github.com/katalvlaran/jigsaw/music"
	"github.com/katalvlaran/jigsaw/spec"
	"github.com/katalvlaran/jigsaw/truth"
)

// ExpandRow realizes one skeleton row in every part: partHead · row for each part
// head, in order. Stages are assumed to match (spec.New checks this once).
func ExpandRow(row core.Row, partHeads []core.Row) []core.Row {
	out := make([]core.Row, len(partHeads))
	for i, ph := range partHeads {
		out[i] = ph.MulUnchecked(row)
	}

	return out
}

// FromSpec derives the full display state of sp.
//
// Implementation:
//   - Stage 1: expand every skeleton row into every part and score its music.
//   - Stage 2: flatten the proved rows and prove them (truth.Prove).
//   - Stage 3: coalesce falseness groups into per-fragment ranges (truth.Coalesce).
//   - Stage 4: link fragments on their part-0 ends (links.Link).
//   - Stage 5: assemble the DerivedState.
//
// Errors:
//   - music.ErrBadMinRun if WithMusic carries an invalid option.
//
// Panics if a fragment's leftover row is marked as proved.
//
// Complexity: O(R·P·n·log(R·P)) for R skeleton rows, P parts and n bells, plus
// O(F²·n) for linking F fragments.
func FromSpec(sp *spec.Spec, opts ...Option) (*DerivedState, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	scorer, err := music.NewScorer(o.Music...)
	if err != nil {
		return nil, fmt.Errorf("derive: %w", err)
	}
	began := time.Now()

	partHeads := sp.PartHeads()
	expanded := expand(sp, partHeads.Rows(), scorer)

	flat, partLen := flattenProvedRows(expanded, sp.Len()*partHeads.Len())
	proof := truth.Prove(flat)
	ranges, numFalseGroups := truth.Coalesce(proof.Groups)

	fragLinks, linkGroups := links.Link(fragEnds(expanded))

	frags := make([]AnnotFrag, len(expanded))
	for i, expRows := range expanded {
		if expRows[len(expRows)-1].IsProved {
			panic(fmt.Sprintf("derive: leftover row of fragment %d is marked as proved", i))
		}
		x, y, _ := sp.FragPos(i)
		muted, _ := sp.IsFragMuted(i)
		frags[i] = AnnotFrag{
			FalseRowRanges: ranges[i],
			ExpRows:        expRows,
			IsProved:       !muted,
			LinkGroups:     linkGroups[i],
			X:              x,
			Y:              y,
		}
	}

	d := &DerivedState{
		Frags: frags,
		Links: fragLinks,
		Stats: Stats{
			PartLen:        partLen,
			NumFalseRows:   proof.NumFalseRows,
			NumFalseGroups: numFalseGroups,
		},
		PartHeads: partHeads,
		Stage:     sp.Stage(),
	}
	o.Logger.Debug("derived composition",
		zap.Stringer("stage", d.Stage),
		zap.Int("frags", len(frags)),
		zap.Int("parts", partHeads.Len()),
		zap.Int("part_len", partLen),
		zap.Int("false_rows", proof.NumFalseRows),
		zap.Int("false_groups", numFalseGroups),
		zap.Int("links", len(fragLinks)),
		zap.Duration("elapsed", time.Since(began)),
	)

	return d, nil
}

// expand realizes every fragment of sp. Rows of a muted fragment are never proved.
func expand(sp *spec.Spec, partHeads []core.Row, scorer *music.Scorer) [][]ExpandedRow {
	out := make([][]ExpandedRow, sp.NumFrags())
	for fi, f := range sp.Frags() {
		rows := make([]ExpandedRow, len(f.Rows))
		for ri, sr := range f.Rows {
			realized := ExpandRow(sr.Row, partHeads)
			rows[ri] = ExpandedRow{
				Call:            sr.Call,
				Method:          sr.Method,
				IsLeadEnd:       sr.IsLeadEnd,
				IsProved:        sr.IsProved && !f.IsMuted,
				Rows:            realized,
				MusicHighlights: scorer.Highlight(realized, sp.Stage()),
			}
		}
		out[fi] = rows
	}

	return out
}

// flattenProvedRows lists every realized row that should be proved with its origin,
// unsorted. partLen counts each proved skeleton row once, however many parts it
// expands into.
func flattenProvedRows(expanded [][]ExpandedRow, capHint int) (flat []truth.FlatRow, partLen int) {
	flat = make([]truth.FlatRow, 0, capHint)
	for fi, rows := range expanded {
		for ri, er := range rows {
			if !er.IsProved {
				continue
			}
			for part, r := range er.Rows {
				flat = append(flat, truth.FlatRow{
					Origin: truth.RowOrigin{Part: part, Frag: fi, Row: ri},
					Row:    r,
				})
			}
			partLen++
		}
	}

	return flat, partLen
}

// fragEnds picks the part-0 first and leftover rows of each fragment.
func fragEnds(expanded [][]ExpandedRow) []links.Ends {
	ends := make([]links.Ends, len(expanded))
	for i, rows := range expanded {
		ends[i] = links.Ends{
			First:    rows[0].Rows[0],
			Leftover: rows[len(rows)-1].Rows[0],
		}
	}

	return ends
}
