// SPDX-License-Identifier: MIT

package derive

import (
	"github.com/katalvlaran/jigsaw/core"
	"github.com/katalvlaran/jigsaw/links"
	"github.com/katalvlaran/jigsaw/spec"
	"github.com/katalvlaran/jigsaw/truth"
)

// ExpandedRow is one on-screen skeleton row together with its realization in every
// part.
type ExpandedRow struct {
	Call      string // optional call label, "" if none
	Method    string // optional method label, "" if none
	IsLeadEnd bool
	IsProved  bool

	// Rows holds one realized Row per part, in part-head order.
	Rows []core.Row

	// MusicHighlights lists, for every bell position, the parts whose row has music
	// covering that position.
	MusicHighlights [][]int
}

// AnnotFrag is one fragment with everything derived for it.
type AnnotFrag struct {
	FalseRowRanges []truth.FalseRowRange
	ExpRows        []ExpandedRow
	IsProved       bool // false when the fragment is muted
	LinkGroups     links.LinkGroups
	X, Y           float32
}

// Stats summarises a derivation.
type Stats struct {
	// PartLen counts proved skeleton rows once each, regardless of the number of parts.
	PartLen int

	// NumFalseRows counts every realized row involved in falseness.
	NumFalseRows int

	// NumFalseGroups counts the coalesced groups shown to the user.
	NumFalseGroups int
}

// DerivedState is the aggregate result of FromSpec.
type DerivedState struct {
	Frags     []AnnotFrag
	Links     []links.FragLink
	Stats     Stats
	PartHeads spec.PartHeads
	Stage     core.Stage
}

// Row returns the realized Row of part partInd at row rowInd of fragment fragInd,
// or false if any index is out of range.
func (d *DerivedState) Row(partInd, fragInd, rowInd int) (core.Row, bool) {
	if fragInd < 0 || fragInd >= len(d.Frags) {
		return core.Row{}, false
	}
	rows := d.Frags[fragInd].ExpRows
	if rowInd < 0 || rowInd >= len(rows) {
		return core.Row{}, false
	}
	parts := rows[rowInd].Rows
	if partInd < 0 || partInd >= len(parts) {
		return core.Row{}, false
	}

	return parts[partInd], true
}

// PartHead returns part head partInd, or false if there are not that many parts.
func (d *DerivedState) PartHead(partInd int) (core.Row, bool) { return d.PartHeads.At(partInd) }

// IsTrue reports whether the composition has no falseness.
func (d *DerivedState) IsTrue() bool { return d.Stats.NumFalseRows == 0 }

// LinkGraph builds the fragment graph of d's links.
func (d *DerivedState) LinkGraph() (*links.Graph, error) {
	return links.NewGraph(len(d.Frags), d.Links)
}
