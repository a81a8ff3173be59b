// SPDX-License-Identifier: MIT

package links

import (
	"fmt"
	"slices"
)

// Visitation colours for round-block search.
const (
	white = iota // not yet visited
	gray         // on the current DFS path
	black        // fully explored
)

// NewGraph builds the fragment graph over numFrags fragments.
// Returns ErrFragOutOfRange if a link names an unknown fragment.
// Complexity: O(F + L log L).
func NewGraph(numFrags int, fragLinks []FragLink) (*Graph, error) {
	g := &Graph{
		succ:  make([][]int, numFrags),
		pred:  make([][]int, numFrags),
		links: slices.Clone(fragLinks),
	}
	for _, l := range fragLinks {
		if l.From < 0 || l.From >= numFrags || l.To < 0 || l.To >= numFrags {
			return nil, fmt.Errorf("%w: %d -> %d with %d fragments", ErrFragOutOfRange, l.From, l.To, numFrags)
		}
		g.succ[l.From] = append(g.succ[l.From], l.To)
		g.pred[l.To] = append(g.pred[l.To], l.From)
	}
	for f := range g.succ {
		slices.Sort(g.succ[f])
		g.succ[f] = slices.Compact(g.succ[f])
		slices.Sort(g.pred[f])
		g.pred[f] = slices.Compact(g.pred[f])
	}

	return g, nil
}

// NumFrags returns the number of fragments in g.
func (g *Graph) NumFrags() int { return len(g.succ) }

// Links returns a copy of the links g was built from.
func (g *Graph) Links() []FragLink { return slices.Clone(g.links) }

// Successors returns the fragments that can follow f, ascending. Nil if f is unknown.
func (g *Graph) Successors(f int) []int {
	if f < 0 || f >= len(g.succ) {
		return nil
	}

	return slices.Clone(g.succ[f])
}

// Predecessors returns the fragments that f can follow, ascending. Nil if f is unknown.
func (g *Graph) Predecessors(f int) []int {
	if f < 0 || f >= len(g.pred) {
		return nil
	}

	return slices.Clone(g.pred[f])
}

// RoundBlocks returns chains of fragments that link back to where they started,
// i.e. blocks that come round. Each block is closed ([a, b, …, a]) and rotated so its
// smallest fragment comes first; the list is sorted.
//
// Search is a three-colour DFS: every edge into a gray fragment closes one block, so
// each cycle of the graph has at least one block reported, but not every simple cycle
// of a densely linked graph is enumerated. A fragment linking to itself is a block of
// one ([f, f]).
//
// Complexity: O(F + L + C·K) for C blocks of average length K.
func (g *Graph) RoundBlocks() [][]int {
	state := make([]int, len(g.succ))
	path := make([]int, 0, len(g.succ))
	seen := make(map[string]struct{})
	var blocks [][]int

	var visit func(f int)
	visit = func(f int) {
		state[f] = gray
		path = append(path, f)
		for _, next := range g.succ[f] {
			switch state[next] {
			case white:
				visit(next)
			case gray:
				block := canonicalBlock(path[slices.Index(path, next):])
				sig := fmt.Sprint(block)
				if _, dup := seen[sig]; !dup {
					seen[sig] = struct{}{}
					blocks = append(blocks, block)
				}
			}
		}
		path = path[:len(path)-1]
		state[f] = black
	}
	for f := range g.succ {
		if state[f] == white {
			visit(f)
		}
	}
	slices.SortFunc(blocks, func(a, b []int) int { return slices.Compare(a, b) })

	return blocks
}

// canonicalBlock rotates the open cycle so its minimum comes first and closes it.
// Direction is kept: a directed cycle read backwards is a different block.
func canonicalBlock(open []int) []int {
	start := slices.Index(open, slices.Min(open))
	closed := make([]int, 0, len(open)+1)
	closed = append(closed, open[start:]...)
	closed = append(closed, open[:start]...)

	return append(closed, closed[0])
}
