// SPDX-License-Identifier: MIT

// Package truth finds falseness in an expanded composition and groups it for display.
//
// 🚀 What is falseness?
//
//	A composition is true when no provable row value occurs twice. Prove finds every
//	repeated value among the flattened rows of all parts, and Coalesce merges the
//	resulting groups into as few coloured ranges as possible.
//
// ✨ Pipeline:
//
//	[]FlatRow ──Prove──▶ []Group ──Coalesce──▶ map[frag][]FalseRowRange
//
// Exactness:
//
//	Prove sorts by row value, so every pair of equal rows ends up adjacent; no
//	repeat can be missed. Groups that recur identically in every part (the usual case
//	when the part heads form a group) are reported once.
//
// Complexity:
//
//   - Prove:    O(N log N · n) for N flattened rows of n bells
//   - Coalesce: O(G log G · k) for G groups of size k
package truth
