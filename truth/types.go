// SPDX-License-Identifier: MIT

package truth

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/jigsaw/core"
)

// RowOrigin identifies one realized row: which part, which fragment, which row of
// that fragment.
type RowOrigin struct {
	Part int
	Frag int
	Row  int
}

// Location drops the part index.
func (o RowOrigin) Location() RowLocation { return RowLocation{Frag: o.Frag, Row: o.Row} }

// RowLocation is a RowOrigin without its part. Locations order by fragment, then row;
// Coalesce depends on that order.
type RowLocation struct {
	Frag int
	Row  int
}

// Compare orders l before other by (Frag, Row). Returns -1, 0 or +1.
func (l RowLocation) Compare(other RowLocation) int {
	if c := cmp.Compare(l.Frag, other.Frag); c != 0 {
		return c
	}

	return cmp.Compare(l.Row, other.Row)
}

func (l RowLocation) String() string { return fmt.Sprintf("%d:%d", l.Frag, l.Row) }

// FlatRow pairs a realized Row with where it came from.
type FlatRow struct {
	Origin RowOrigin
	Row    core.Row
}

// Group is a set of locations whose realized rows are identical, sorted ascending.
type Group []RowLocation

// Proof is the result of Prove.
type Proof struct {
	// Groups holds each distinct falseness group once, sorted by Compare.
	Groups []Group

	// NumFalseRows counts every flattened row that belongs to some group,
	// including rows from groups that were deduplicated across parts.
	NumFalseRows int
}

// IsTrue reports whether no row repeats.
func (p Proof) IsTrue() bool { return len(p.Groups) == 0 }

// FalseRowRange marks rows Start..End (inclusive) of one fragment as belonging to
// falseness group Group.
type FalseRowRange struct {
	Start int
	End   int
	Group int
}
