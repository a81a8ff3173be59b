// SPDX-License-Identifier: MIT

package history

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/jigsaw/derive"
	"github.com/katalvlaran/jigsaw/spec"
)

// Sentinel errors for history construction.
var (
	// ErrNilSpec indicates a nil snapshot.
	ErrNilSpec = errors.New("history: nil spec")

	// ErrBadCapacity indicates a capacity below one snapshot.
	ErrBadCapacity = errors.New("history: capacity must be at least 1")
)

// DefaultCapacity is the number of snapshots kept when WithCapacity is not given.
const DefaultCapacity = 1000

// Option configures a History or a Session.
type Option func(*Options)

// Options holds history settings. err records the first invalid option.
type Options struct {
	Capacity int
	Logger   *zap.Logger
	Derive   []derive.Option

	err error
}

// DefaultOptions returns DefaultCapacity snapshots and a no-op logger.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity, Logger: zap.NewNop()}
}

// WithCapacity bounds the number of snapshots kept. n must be at least 1.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: got %d", ErrBadCapacity, n)
			}
			return
		}
		o.Capacity = n
	}
}

// WithLogger routes history logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDeriveOptions passes opts to every derivation a Session runs.
// A bare History ignores them.
func WithDeriveOptions(opts ...derive.Option) Option {
	return func(o *Options) { o.Derive = append(o.Derive, opts...) }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// History is a bounded, linear undo history of skeleton snapshots.
// It is not safe for concurrent use; Session adds locking.
type History struct {
	snaps    []*spec.Spec
	cur      int
	capacity int
	log      *zap.Logger
}

// New starts a history holding only initial.
func New(initial *spec.Spec, opts ...Option) (*History, error) {
	if initial == nil {
		return nil, ErrNilSpec
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return newHistory(initial, o), nil
}

func newHistory(initial *spec.Spec, o Options) *History {
	return &History{
		snaps:    []*spec.Spec{initial},
		capacity: o.Capacity,
		log:      o.Logger,
	}
}

// Current returns the snapshot under the cursor.
func (h *History) Current() *spec.Spec { return h.snaps[h.cur] }

// Len returns the number of snapshots kept.
func (h *History) Len() int { return len(h.snaps) }

// Index returns the cursor position, 0 being the oldest snapshot kept.
func (h *History) Index() int { return h.cur }

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool { return h.cur > 0 }

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool { return h.cur < len(h.snaps)-1 }

// Push records sp as a new edit after the cursor.
//
// Implementation:
//   - Stage 1: drop the redo tail (snapshots after the cursor).
//   - Stage 2: append sp and move the cursor onto it.
//   - Stage 3: if over capacity, forget the oldest snapshot.
func (h *History) Push(sp *spec.Spec) error {
	if sp == nil {
		return ErrNilSpec
	}
	dropped := len(h.snaps) - 1 - h.cur
	clear(h.snaps[h.cur+1:])
	h.snaps = append(h.snaps[:h.cur+1], sp)
	if len(h.snaps) > h.capacity {
		h.snaps[0] = nil
		h.snaps = h.snaps[1:]
	}
	h.cur = len(h.snaps) - 1
	h.log.Debug("history push",
		zap.Int("index", h.cur),
		zap.Int("len", len(h.snaps)),
		zap.Int("redo_dropped", dropped),
	)

	return nil
}

// Undo moves one step back. It returns false if the cursor is already on the oldest
// snapshot.
func (h *History) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.cur--
	h.log.Debug("history undo", zap.Int("index", h.cur))

	return true
}

// Redo moves one step forward. It returns false if the cursor is already on the
// newest snapshot.
func (h *History) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	h.cur++
	h.log.Debug("history redo", zap.Int("index", h.cur))

	return true
}
