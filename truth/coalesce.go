// SPDX-License-Identifier: MIT

package truth

import (
	"fmt"
	"slices"
)

// Coalesce merges positionally contiguous groups into ranges and returns them keyed
// by fragment index, along with the number of merged groups.
//
// Two consecutive groups (in CompareGroups order) are adjacent when they have the
// same size and each pair of locations, matched by sorted position, shares a fragment
// and differs by exactly one row. A run of adjacent groups forms one meta-group; each
// location pair of its first and last group becomes one FalseRowRange with
// Start ≤ End, tagged with the meta-group's id. Ids count up from 0.
//
// The input is sorted on a copy, so any group order is accepted.
func Coalesce(groups []Group) (map[int][]FalseRowRange, int) {
	ranges := make(map[int][]FalseRowRange)
	if len(groups) == 0 {
		return ranges, 0
	}
	sorted := slices.Clone(groups)
	slices.SortFunc(sorted, CompareGroups)

	groupID := 0
	first, last := sorted[0], sorted[0]
	for _, g := range sorted[1:] {
		if !adjacent(last, g) {
			addRanges(ranges, first, last, groupID)
			groupID++
			first = g
		}
		last = g
	}
	addRanges(ranges, first, last, groupID)

	return ranges, groupID + 1
}

// adjacent reports whether b continues a by exactly one row at every location.
func adjacent(a, b Group) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Frag != b[i].Frag {
			return false
		}
		if d := a[i].Row - b[i].Row; d != 1 && d != -1 {
			return false
		}
	}

	return true
}

// addRanges zips the first and last group of a meta-group into per-fragment ranges.
// The adjacency test guarantees equal sizes and matching fragments; a mismatch here
// is a bug in Coalesce, not bad input.
func addRanges(ranges map[int][]FalseRowRange, start, end Group, groupID int) {
	if len(start) != len(end) {
		panic(fmt.Sprintf("truth: meta-group %d spans groups of size %d and %d", groupID, len(start), len(end)))
	}
	for i := range start {
		s, e := start[i], end[i]
		if s.Frag != e.Frag {
			panic(fmt.Sprintf("truth: meta-group %d pairs %v with %v", groupID, s, e))
		}
		ranges[s.Frag] = append(ranges[s.Frag], FalseRowRange{
			Start: min(s.Row, e.Row),
			End:   max(s.Row, e.Row),
			Group: groupID,
		})
	}
}
