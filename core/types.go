// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for row construction and row algebra.
var (
	// ErrInvalidRow is the umbrella for every row-construction failure.
	ErrInvalidRow = errors.New("core: invalid row")

	// ErrDuplicateBell indicates a Bell would appear twice in a Row.
	ErrDuplicateBell = errors.New("core: duplicate bell")

	// ErrBellOutOfStage indicates a Bell does not fit within the Stage of a Row.
	ErrBellOutOfStage = errors.New("core: bell out of stage")

	// ErrIncompatibleStages indicates two Rows of different Stage were combined.
	ErrIncompatibleStages = errors.New("core: incompatible stages")
)

// DuplicateBellError reports a Bell that would appear twice in a Row
// (for example the '1' in "112345").
type DuplicateBellError struct {
	Bell Bell
}

func (e *DuplicateBellError) Error() string {
	return fmt.Sprintf("%v: bell %s would appear twice", ErrDuplicateBell, e.Bell)
}

// Is makes errors.Is match both ErrDuplicateBell and ErrInvalidRow.
func (e *DuplicateBellError) Is(target error) bool {
	return target == ErrDuplicateBell || target == ErrInvalidRow
}

// BellOutOfStageError reports a Bell outside the Stage of the Row being built
// (for example the '7' in "12745").
type BellOutOfStageError struct {
	Bell  Bell
	Stage Stage
}

func (e *BellOutOfStageError) Error() string {
	return fmt.Sprintf("%v: bell %s is not within stage %s", ErrBellOutOfStage, e.Bell, e.Stage)
}

// Is makes errors.Is match both ErrBellOutOfStage and ErrInvalidRow.
func (e *BellOutOfStageError) Is(target error) bool {
	return target == ErrBellOutOfStage || target == ErrInvalidRow
}

// IncompatibleStagesError reports that a Row of stage RHS was used to permute a Row
// of stage LHS.
type IncompatibleStagesError struct {
	LHS Stage // stage of the Row being permuted
	RHS Stage // stage of the Row doing the permuting
}

func (e *IncompatibleStagesError) Error() string {
	return fmt.Sprintf("%v: %s (lhs), %s (rhs)", ErrIncompatibleStages, e.LHS, e.RHS)
}

// Unwrap exposes ErrIncompatibleStages to errors.Is.
func (e *IncompatibleStagesError) Unwrap() error { return ErrIncompatibleStages }

// CheckStages returns nil if lhs == rhs, and an *IncompatibleStagesError otherwise.
func CheckStages(lhs, rhs Stage) error {
	if lhs == rhs {
		return nil
	}

	return &IncompatibleStagesError{LHS: lhs, RHS: rhs}
}
