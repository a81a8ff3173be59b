// SPDX-License-Identifier: MIT

// Package jigsaw is the derivation engine behind a change-ringing composition
// editor: it takes a skeleton of rows and fragments and works out everything the
// editor shows about it.
//
// 🚀 What does jigsaw derive?
//
//	From a skeleton (Stage, fragments of rows, part heads) it produces:
//		• every row of every part (part head · skeleton row)
//		• truth: which rows repeat, grouped and coalesced into coloured ranges
//		• links: which fragment can follow which, and the blocks that come round
//		• music: front and back runs, per bell position and per part
//		• summary statistics (part length, false rows, false groups)
//
// ✨ Layout:
//
//	core/     - Bell, Stage, Row and the permutation algebra over Rows
//	spec/     - the immutable skeleton, part-head groups and the YAML loader
//	truth/    - the truth prover and the false-range coalescer
//	links/    - fragment linking and round-block detection
//	music/    - run highlighting
//	derive/   - the pipeline that ties them together (FromSpec)
//	history/  - undo/redo over skeleton snapshots, with a re-deriving Session
//	cmd/jigsaw - the command-line front end
//
// Quick example:
//
//	sp, _ := spec.LoadFile("comp.yaml")
//	d, _ := derive.FromSpec(sp)
//	fmt.Println(d.Stats.PartLen, d.IsTrue())
//
//	go install github.com/katalvlaran/jigsaw/cmd/jigsaw@latest
package jigsaw
