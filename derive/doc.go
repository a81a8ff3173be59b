// SPDX-License-Identifier: MIT

// Package derive turns a composition skeleton into everything a display needs:
// rows for every part, falseness ranges, fragment links, music highlights and
// summary statistics.
//
// 🚀 Pipeline:
//
//	spec.Spec
//	   │ ExpandRow (part head · skeleton row, per part)
//	   ▼
//	[][]ExpandedRow ──flatten──▶ truth.Prove ──▶ truth.Coalesce ──┐
//	   │                                                          │
//	   ├──▶ links.Link (part 0 only) ─────────────────────────────┤
//	   └──▶ music.Scorer (per skeleton row) ──────────────────────┴─▶ DerivedState
//
// ✨ Properties:
//   - FromSpec is a pure function of its input: no state survives between calls,
//     so it is rerun in full after every edit.
//   - The skeleton is trusted. Rows are not re-validated; a proved leftover row is a
//     contract breach upstream and panics.
//   - Single-threaded and lock-free. Callers must not mutate the Spec during a call
//     (spec.Spec is immutable, so this holds by construction).
package derive
