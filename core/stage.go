// SPDX-License-Identifier: MIT

package core

import "strconv"

// Stage is the number of bells in a composition. Every Row and Bell used together
// must share one Stage.
type Stage int

// Conventional stages.
const (
	Singles   Stage = 3
	Minimus   Stage = 4
	Doubles   Stage = 5
	Minor     Stage = 6
	Triples   Stage = 7
	Major     Stage = 8
	Caters    Stage = 9
	Royal     Stage = 10
	Cinques   Stage = 11
	Maximus   Stage = 12
	Sextuples Stage = 13
	Fourteen  Stage = 14
	Septuples Stage = 15
	Sixteen   Stage = 16
)

var stageNames = map[Stage]string{
	Singles:   "Singles",
	Minimus:   "Minimus",
	Doubles:   "Doubles",
	Minor:     "Minor",
	Triples:   "Triples",
	Major:     "Major",
	Caters:    "Caters",
	Royal:     "Royal",
	Cinques:   "Cinques",
	Maximus:   "Maximus",
	Sextuples: "Sextuples",
	Fourteen:  "Fourteen",
	Septuples: "Septuples",
	Sixteen:   "Sixteen",
}

// StageFromLen converts a row length into a Stage. It is total.
func StageFromLen(n int) Stage { return Stage(n) }

// Len returns the number of bells in s.
func (s Stage) Len() int { return int(s) }

// String returns the conventional name of s ("Major"), or "N bells" for stages
// without one.
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}

	return strconv.Itoa(int(s)) + " bells"
}
