// SPDX-License-Identifier: MIT

// Package core defines the atomic primitives of change ringing: Bell, Stage and Row,
// together with the permutation algebra over Rows.
//
// 🚀 What is a Row?
//
//	A Row is one "change": every bell of a Stage, each appearing exactly once, in the
//	order they sound. Mathematically a Row is a permutation, so Rows can be
//	multiplied (one Row permutes another), inverted, and raised to powers.
//
// ✨ Guarantees:
//   - A Row is validated once, at construction (ParseRow, RowFromBells); every other
//     operation relies on that invariant instead of re-checking it.
//   - Rows are immutable values: no method mutates its receiver, accessors copy.
//   - Errors are values: invalid rows and mismatched stages are reported through
//     typed errors that unwrap to package sentinels.
//
// ⚙️ Usage:
//
//	ph, err := core.ParseRow("18234567")
//	if err != nil {
//		// *core.DuplicateBellError or *core.BellOutOfStageError
//	}
//	for _, r := range ph.Closure() {
//		fmt.Println(r) // 18234567, 17823456, ..., 12345678
//	}
//
// Complexity:
//
//   - Construction, Mul, Inverse, Compare: O(n) for n = Stage
//   - Closure: O(n·k) for a Row of order k (k divides n!)
package core
