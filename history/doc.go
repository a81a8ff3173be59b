// SPDX-License-Identifier: MIT

// Package history keeps the undo history of a composition being edited.
//
// 🔁 Model:
//
//	[s0] [s1] [s2] [s3]
//	           ▲
//	        current
//
// Every snapshot is an immutable *spec.Spec. Undo and Redo move the cursor; Push
// drops everything after the cursor, appends the new snapshot and moves onto it.
// When the history is full the oldest snapshot is forgotten.
//
// Session pairs a History with the derived state of its current snapshot and
// re-derives after every Edit, Undo and Redo, so the two never disagree.
//
// Errors:
//
//	ErrNilSpec      - a nil snapshot was passed in.
//	ErrBadCapacity  - WithCapacity was given a capacity below 1.
package history
