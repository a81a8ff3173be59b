// SPDX-License-Identifier: MIT

package history

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/jigsaw/derive"
	"github.com/katalvlaran/jigsaw/spec"
)

// Session is an editing session: a History plus the derived state of its current
// snapshot. All methods are safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	hist    *History
	derived *derive.DerivedState
	opts    []derive.Option
}

// NewSession derives initial and starts a history holding it.
//
// Errors:
//   - ErrNilSpec if initial is nil.
//   - ErrBadCapacity from WithCapacity.
//   - any error from derive.FromSpec, such as an invalid music option.
func NewSession(initial *spec.Spec, opts ...Option) (*Session, error) {
	if initial == nil {
		return nil, ErrNilSpec
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	dopts := append([]derive.Option{derive.WithLogger(o.Logger)}, o.Derive...)
	d, err := derive.FromSpec(initial, dopts...)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	return &Session{hist: newHistory(initial, o), derived: d, opts: dopts}, nil
}

// Spec returns the current snapshot.
func (s *Session) Spec() *spec.Spec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hist.Current()
}

// Derived returns the derived state of the current snapshot.
func (s *Session) Derived() *derive.DerivedState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.derived
}

// Len returns the number of snapshots kept.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hist.Len()
}

// Edit derives sp and, on success, records it as the newest snapshot. On failure the
// session is left unchanged.
func (s *Session) Edit(sp *spec.Spec) error {
	if sp == nil {
		return ErrNilSpec
	}
	d, err := derive.FromSpec(sp, s.opts...)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.hist.Push(sp); err != nil {
		return err
	}
	s.derived = d

	return nil
}

// Apply builds the next snapshot from the current one with edit and records it as
// Edit does. The session stays locked while edit runs, so edits never interleave.
// An error from edit is returned unchanged and leaves the session as it was.
func (s *Session) Apply(edit func(cur *spec.Spec) (*spec.Spec, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := edit(s.hist.Current())
	if err != nil {
		return err
	}
	if next == nil {
		return ErrNilSpec
	}
	d, err := derive.FromSpec(next, s.opts...)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if err = s.hist.Push(next); err != nil {
		return err
	}
	s.derived = d

	return nil
}

// Undo steps back and re-derives. It returns false if there is nothing to undo.
func (s *Session) Undo() (bool, error) {
	return s.step((*History).Undo, (*History).Redo)
}

// Redo steps forward and re-derives. It returns false if there is nothing to redo.
func (s *Session) Redo() (bool, error) {
	return s.step((*History).Redo, (*History).Undo)
}

// step moves the cursor with move and re-derives. If derivation fails the cursor is
// put back with back.
func (s *Session) step(move, back func(*History) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !move(s.hist) {
		return false, nil
	}
	d, err := derive.FromSpec(s.hist.Current(), s.opts...)
	if err != nil {
		back(s.hist)
		return false, fmt.Errorf("history: %w", err)
	}
	s.derived = d

	return true, nil
}
