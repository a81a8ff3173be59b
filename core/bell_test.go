// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/jigsaw/core"
)

// TestBellNames checks the conventional names round-trip through BellFromName.
func TestBellNames(t *testing.T) {
	cases := []struct {
		index int
		name  string
	}{
		{0, "1"}, {8, "9"}, {9, "0"}, {10, "E"}, {11, "T"}, {12, "A"}, {15, "D"},
	}
	for _, tc := range cases {
		b := core.BellFromIndex(tc.index)
		assert.Equal(t, tc.name, b.Name())
		assert.Equal(t, tc.index+1, b.Number())

		back, ok := core.BellFromName([]rune(tc.name)[0])
		assert.True(t, ok)
		assert.Equal(t, b, back)
	}
	assert.Equal(t, core.Treble, core.BellFromIndex(0))
}

// TestBellFromName_Unknown verifies that unknown runes yield no Bell.
func TestBellFromName_Unknown(t *testing.T) {
	for _, r := range []rune{' ', '|', 'x', 'I', '-'} {
		_, ok := core.BellFromName(r)
		assert.False(t, ok, "rune %q", r)
	}
}

// TestBellFromNumber checks the one-based constructor bounds.
func TestBellFromNumber(t *testing.T) {
	b, ok := core.BellFromNumber(1)
	assert.True(t, ok)
	assert.Equal(t, core.Treble, b)

	_, ok = core.BellFromNumber(0)
	assert.False(t, ok)

	assert.Equal(t, "<40>", core.BellFromIndex(39).Name())
}

// TestStage checks names and the len conversion.
func TestStage(t *testing.T) {
	assert.Equal(t, "Major", core.Major.String())
	assert.Equal(t, "Minimus", core.StageFromLen(4).String())
	assert.Equal(t, "22 bells", core.Stage(22).String())
	assert.Equal(t, 10, core.Royal.Len())
}
