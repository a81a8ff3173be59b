// SPDX-License-Identifier: MIT

// Package music scores the musical runs of realized rows, so a display can highlight
// the bell positions that form them.
//
// A run is a stretch of consecutive bells at the front or back of a row that steps
// up or down by one bell each place (5678, 4321, …). Runs of at least the minimum
// length (4 by default) are highlighted, once per part that shows them.
package music

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jigsaw/core"
)

// ErrBadMinRun indicates a minimum run length below 2.
var ErrBadMinRun = errors.New("music: minimum run length must be at least 2")

// DefaultMinRunLength is the shortest run that counts as music.
const DefaultMinRunLength = 4

// Option configures Highlight.
type Option func(*Options)

// Options holds scoring parameters.
type Options struct {
	// MinRunLength is the shortest front or back run that is highlighted.
	MinRunLength int

	err error
}

// DefaultOptions returns Options with MinRunLength = DefaultMinRunLength.
func DefaultOptions() Options {
	return Options{MinRunLength: DefaultMinRunLength}
}

// WithMinRunLength sets the shortest highlighted run. n < 2 is recorded and surfaced
// as ErrBadMinRun by NewScorer.
func WithMinRunLength(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMinRun, n)
			return
		}
		o.MinRunLength = n
	}
}

// Scorer highlights runs with a fixed set of Options.
type Scorer struct {
	opts Options
}

// NewScorer applies opts over DefaultOptions.
func NewScorer(opts ...Option) (*Scorer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Scorer{opts: o}, nil
}

// Highlight returns, for every bell position of stage, the parts whose row has music
// covering that position. rows holds one realized row per part, in part order.
//
// For each part:
//   - a front run of length f ≥ min marks positions [0, f);
//   - a back run of length b ≥ min marks positions [max(f, stage−b), stage).
//
// The max keeps a row whose front and back runs overlap (rounds, say) from marking
// the same position twice for one part.
//
// Complexity: O(P·n) for P parts on n bells.
func (s *Scorer) Highlight(rows []core.Row, stage core.Stage) [][]int {
	n := stage.Len()
	music := make([][]int, n)
	for part, r := range rows {
		front := r.RunLenFront()
		if front >= s.opts.MinRunLength {
			for i := 0; i < front; i++ {
				music[i] = append(music[i], part)
			}
		}
		back := r.RunLenBack()
		if back >= s.opts.MinRunLength {
			for i := max(n-back, front); i < n; i++ {
				music[i] = append(music[i], part)
			}
		}
	}

	return music
}

// Highlight scores rows with the default options.
func Highlight(rows []core.Row, stage core.Stage) [][]int {
	s := Scorer{opts: DefaultOptions()}

	return s.Highlight(rows, stage)
}
