// SPDX-License-Identifier: MIT

package links

import "github.com/katalvlaran/jigsaw/core"

// Link tests every ordered pair of fragments (f, g), f == g included, and records
// f → g whenever the leftover row of f equals the first row of g.
//
// Group ids are handed out the first time a row value is seen as a join point and
// reused for every later join on the same value, so all links through one row share
// a colour. Ids are local to this call.
//
// Returns the links in (from, to) order and, per fragment, the group touching its top
// and bottom (the last assignment wins when several links touch one end).
//
// Complexity: O(F²·n) for F fragments on n bells.
func Link(ends []Ends) ([]FragLink, []LinkGroups) {
	groupOf := make(map[core.Row]int)
	groups := make([]LinkGroups, len(ends))
	for i := range groups {
		groups[i] = LinkGroups{Top: NoGroup, Bottom: NoGroup}
	}

	var out []FragLink
	for i, f := range ends {
		for j, g := range ends {
			if f.Leftover != g.First {
				continue
			}
			group, ok := groupOf[f.Leftover]
			if !ok {
				group = len(groupOf)
				groupOf[f.Leftover] = group
			}
			out = append(out, FragLink{From: i, To: j, Group: group})
			groups[i].Bottom = group
			groups[j].Top = group
		}
	}

	return out, groups
}
