// SPDX-License-Identifier: MIT

package core

// RunLen returns the length of the run at the start of bells: the longest prefix in
// which each bell is exactly one above (or exactly one below) the bell before it.
// An empty input has run length 0 and a single bell has run length 1.
//
//	RunLen(5678…) → 4
//	RunLen(4321…) → 4
//	RunLen(1357…) → 1
func RunLen(bells []Bell) int {
	if len(bells) < 2 {
		return len(bells)
	}
	step := bells[1].Index() - bells[0].Index()
	if step != 1 && step != -1 {
		return 1
	}
	n := 2
	for n < len(bells) && bells[n].Index()-bells[n-1].Index() == step {
		n++
	}

	return n
}

// RunLenFront returns the run length at the front (handstroke side) of r.
func (r Row) RunLenFront() int { return RunLen(r.Bells()) }

// RunLenBack returns the run length at the back of r, read from the last bell inwards.
func (r Row) RunLenBack() int {
	bells := r.Bells()
	for i, j := 0, len(bells)-1; i < j; i, j = i+1, j-1 {
		bells[i], bells[j] = bells[j], bells[i]
	}

	return RunLen(bells)
}
