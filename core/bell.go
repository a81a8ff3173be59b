// SPDX-License-Identifier: MIT

package core

import (
	"strconv"
	"strings"
)

// bellNames lists the conventional display name of every nameable Bell, in index order.
const bellNames = "1234567890ETABCDFGHJKLMNPQRSUVWXYZ"

// MaxNamedBells is the number of Bells that have a single-character display name.
const MaxNamedBells = len(bellNames)

// Bell is the identity of one bell, stored as a zero-based index.
// The treble (named '1') has index 0.
type Bell uint8

// Treble is the lightest bell of any Stage.
const Treble Bell = 0

// BellFromIndex returns the Bell with the given zero-based index.
// Complexity: O(1).
func BellFromIndex(i int) Bell { return Bell(i) }

// BellFromNumber returns the Bell with the given one-based number ('1' is number 1).
// Returns false for numbers below 1.
func BellFromNumber(n int) (Bell, bool) {
	if n < 1 || n > 1<<8 {
		return 0, false
	}

	return Bell(n - 1), true
}

// BellFromName parses a display name, returning false if r names no Bell.
// Complexity: O(MaxNamedBells).
func BellFromName(r rune) (Bell, bool) {
	i := strings.IndexRune(bellNames, r)
	if i < 0 {
		return 0, false
	}

	return Bell(i), true
}

// Index returns the zero-based index of b.
func (b Bell) Index() int { return int(b) }

// Number returns the one-based number of b.
func (b Bell) Number() int { return int(b) + 1 }

// Name returns the display name of b. Bells beyond MaxNamedBells have no
// single-character name and render as "<number>".
func (b Bell) Name() string {
	if int(b) < MaxNamedBells {
		return bellNames[b : b+1]
	}

	return "<" + strconv.Itoa(b.Number()) + ">"
}

// String implements fmt.Stringer.
func (b Bell) String() string { return b.Name() }
