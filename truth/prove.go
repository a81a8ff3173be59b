// SPDX-License-Identifier: MIT

package truth

import (
	"slices"
	"strconv"
	"strings"
)

// Prove returns every distinct set of locations whose rows are identical.
//
// Implementation:
//   - Stage 1: sort a copy of flat by Row value only (stable, so equal rows keep
//     their flattened order).
//   - Stage 2: sweep runs of equal rows; each run of length ≥ 2 is a group.
//   - Stage 3: drop the part of each origin, sort the locations and deduplicate the
//     group by content (a closed part-head set repeats each group once per part).
//   - Stage 4: sort the groups so the output is deterministic and ready for Coalesce.
//
// The input slice is not modified.
func Prove(flat []FlatRow) Proof {
	sorted := slices.Clone(flat)
	slices.SortStableFunc(sorted, func(a, b FlatRow) int { return a.Row.Compare(b.Row) })

	seen := make(map[string]struct{})
	var (
		groups       []Group
		numFalseRows int
	)
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sorted[end].Row == sorted[start].Row {
			end++
		}
		if end-start > 1 {
			numFalseRows += end - start
			g := make(Group, 0, end-start)
			for _, fr := range sorted[start:end] {
				g = append(g, fr.Origin.Location())
			}
			slices.SortFunc(g, RowLocation.Compare)
			key := g.key()
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				groups = append(groups, g)
			}
		}
		start = end
	}
	slices.SortFunc(groups, CompareGroups)

	return Proof{Groups: groups, NumFalseRows: numFalseRows}
}

// CompareGroups orders groups lexicographically by location; a group that is a
// strict prefix of another sorts first.
func CompareGroups(a, b Group) int {
	return slices.CompareFunc(a, b, RowLocation.Compare)
}

// key renders g canonically for content deduplication. g must already be sorted.
func (g Group) key() string {
	var sb strings.Builder
	for i, l := range g {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(l.Frag))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(l.Row))
	}

	return sb.String()
}
