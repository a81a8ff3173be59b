// SPDX-License-Identifier: MIT

// Package links decides which fragments of a composition can follow one another and
// colours the joins so connected blocks are easy to spot.
//
// Fragment g can follow fragment f when the leftover row of f equals the first row
// of g. Only part 0 is compared: linking is a property of the skeleton, not of the
// part on display.
//
// Errors:
//
//	ErrFragOutOfRange - a link names a fragment index outside the graph.
package links

import (
	"errors"

	"github.com/katalvlaran/jigsaw/core"
)

// ErrFragOutOfRange indicates a FragLink endpoint outside [0, numFrags).
var ErrFragOutOfRange = errors.New("links: fragment index out of range")

// NoGroup marks a fragment end that no link touches.
const NoGroup = -1

// FragLink says fragment To can be joined onto the end of fragment From. Links that
// meet at the same row value share a Group.
type FragLink struct {
	From  int
	To    int
	Group int
}

// LinkGroups records the group touching the top and the bottom of one fragment, or
// NoGroup.
type LinkGroups struct {
	Top    int
	Bottom int
}

// Ends holds the part-0 rows of one fragment that matter for linking.
type Ends struct {
	First    core.Row // first row of the fragment
	Leftover core.Row // final, unproved row of the fragment
}

// Graph is the directed fragment graph induced by a set of FragLinks.
// succ[f] and pred[f] are sorted ascending.
type Graph struct {
	succ  [][]int
	pred  [][]int
	links []FragLink
}
