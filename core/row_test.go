// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/core"
)

// allRows returns every Row on stage, in lexicographic order.
func allRows(stage core.Stage) []core.Row {
	n := stage.Len()
	var out []core.Row
	used := make([]bool, n)
	cur := make([]core.Bell, 0, n)
	var rec func()
	rec = func() {
		if len(cur) == n {
			out = append(out, core.RowFromBellsUnchecked(cur))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, core.BellFromIndex(i))
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()

	return out
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

// TestGenerators checks rounds, backrounds and queens on a few stages.
func TestGenerators(t *testing.T) {
	assert.Equal(t, "1234", core.Rounds(core.Minimus).String())
	assert.Equal(t, "123456789", core.Rounds(core.Caters).String())
	assert.Equal(t, "4321", core.Backrounds(core.Minimus).String())
	assert.Equal(t, "987654321", core.Backrounds(core.Caters).String())
	assert.Equal(t, "1324", core.Queens(core.Minimus).String())
	assert.Equal(t, "135792468", core.Queens(core.Caters).String())
	assert.Equal(t, "1357924680", core.Queens(core.Royal).String())
	assert.True(t, core.Rounds(core.Maximus).IsRounds())
	assert.Equal(t, core.Major, core.Rounds(core.Major).Stage())
}

// TestParseRow covers filtering of non-bell runes and both error kinds.
func TestParseRow(t *testing.T) {
	r, err := core.ParseRow("4321\t[65 78]")
	require.NoError(t, err)
	assert.Equal(t, "43216578", r.String())

	r, err = core.ParseRow("3|2|1  6|5|4  9|8|7")
	require.NoError(t, err)
	assert.Equal(t, "321654987", r.String())

	r, err = core.ParseRow("321 654 987 0")
	require.NoError(t, err)
	assert.Equal(t, core.Royal, r.Stage())
}

// TestParseRow_DuplicateBell verifies "112345" reports the second '1'.
func TestParseRow_DuplicateBell(t *testing.T) {
	_, err := core.ParseRow("112345")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateBell)
	assert.ErrorIs(t, err, core.ErrInvalidRow)
	assert.NotErrorIs(t, err, core.ErrBellOutOfStage)

	var dup *core.DuplicateBellError
	require.True(t, errors.As(err, &dup))
	one, _ := core.BellFromName('1')
	assert.Equal(t, one, dup.Bell)
}

// TestParseRow_BellOutOfStage verifies "12745" reports bell 7 on Doubles.
func TestParseRow_BellOutOfStage(t *testing.T) {
	_, err := core.ParseRow("12745")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBellOutOfStage)
	assert.ErrorIs(t, err, core.ErrInvalidRow)

	var oos *core.BellOutOfStageError
	require.True(t, errors.As(err, &oos))
	seven, _ := core.BellFromNumber(7)
	assert.Equal(t, seven, oos.Bell)
	assert.Equal(t, core.Doubles, oos.Stage)
	assert.Equal(t, "core: bell out of stage: bell 7 is not within stage Doubles", err.Error())

	_, err = core.ParseRow("5432")
	assert.ErrorIs(t, err, core.ErrBellOutOfStage)
}

// TestRowFromBells checks the checked and unchecked constructors.
func TestRowFromBells(t *testing.T) {
	bells := []core.Bell{0, 3, 4, 2, 1}
	r, err := core.RowFromBells(bells)
	require.NoError(t, err)
	assert.Equal(t, "14532", r.String())

	// Mutating the input must not affect the Row.
	bells[0] = 4
	assert.Equal(t, "14532", r.String())

	_, err = core.RowFromBells([]core.Bell{0, 3, 7, 2, 1})
	assert.ErrorIs(t, err, core.ErrBellOutOfStage)

	bad := core.RowFromBellsUnchecked([]core.Bell{3, 1, 0, 3})
	assert.Equal(t, "4214", bad.String())
}

// TestRoundTrip checks parse(display(r)) == r for every Row on five and six bells.
func TestRoundTrip(t *testing.T) {
	for _, stage := range []core.Stage{core.Doubles, core.Minor} {
		for _, r := range allRows(stage) {
			back, err := core.ParseRow(r.String())
			require.NoError(t, err)
			require.True(t, back.Equal(r), "round trip of %v", r)
		}
	}
	// Royal and above use '0', 'E', 'T'.
	r := core.Backrounds(core.Maximus)
	assert.Equal(t, "TE0987654321", r.String())
	back, err := core.ParseRow(r.String())
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

// TestMul covers the example product and stage mismatch.
func TestMul(t *testing.T) {
	got, err := core.MustParseRow("13425678").Mul(core.MustParseRow("43217568"))
	require.NoError(t, err)
	assert.Equal(t, core.MustParseRow("24317568"), got)

	_, err = core.MustParseRow("13425678").Mul(core.MustParseRow("4321"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrIncompatibleStages)
	assert.Equal(t, "core: incompatible stages: Major (lhs), Minimus (rhs)", err.Error())

	odd := core.MustParseRow("13475628").MulUnchecked(core.MustParseRow("4321"))
	assert.Equal(t, "7431", odd.String())
}

// TestMul_IncompatibleStagesCarriesBoth checks every mismatched pair of stages.
func TestMul_IncompatibleStagesCarriesBoth(t *testing.T) {
	for a := 1; a <= 12; a++ {
		for b := 1; b <= 12; b++ {
			if a == b {
				continue
			}
			lhs := core.Rounds(core.Stage(a))
			rhs := core.Backrounds(core.Stage(b))
			_, err := lhs.Mul(rhs)
			var inc *core.IncompatibleStagesError
			require.True(t, errors.As(err, &inc), "stages %d,%d", a, b)
			assert.Equal(t, core.Stage(a), inc.LHS)
			assert.Equal(t, core.Stage(b), inc.RHS)
		}
	}
}

// TestGroupAxioms checks associativity and inverses over all of S4, and inverses over S6.
func TestGroupAxioms(t *testing.T) {
	rows := allRows(core.Minimus)
	rounds := core.Rounds(core.Minimus)
	for _, a := range rows {
		inv := a.Inverse()
		require.Equal(t, rounds, a.MulUnchecked(inv))
		require.Equal(t, rounds, inv.MulUnchecked(a))
		for _, b := range rows {
			ab := a.MulUnchecked(b)
			for _, c := range rows {
				lhs := ab.MulUnchecked(c)
				rhs := a.MulUnchecked(b.MulUnchecked(c))
				require.Equal(t, lhs, rhs, "(%v·%v)·%v", a, b, c)
			}
		}
	}
	for _, a := range allRows(core.Minor) {
		prod, err := a.Mul(a.Inverse())
		require.NoError(t, err)
		require.True(t, prod.IsRounds())
	}
}

// TestInverse covers a few named inverses.
func TestInverse(t *testing.T) {
	assert.Equal(t, core.MustParseRow("142536"), core.MustParseRow("135246").Inverse())
	assert.Equal(t, core.Backrounds(core.Major), core.Backrounds(core.Major).Inverse())
	assert.Equal(t, core.MustParseRow("1423"), core.MustParseRow("1342").Inverse())
}

// TestClosure checks the fixed-treble cyclic part heads and the divisibility law.
func TestClosure(t *testing.T) {
	c := core.MustParseRow("18234567").Closure()
	require.Len(t, c, 7)
	want := []string{"18234567", "17823456", "16782345", "15678234", "14567823", "13456782", "12345678"}
	for i, w := range want {
		assert.Equal(t, w, c[i].String())
	}
	assert.Equal(t, 7, core.MustParseRow("18234567").Order())

	for _, stage := range []core.Stage{core.Singles, core.Minimus, core.Doubles} {
		for _, r := range allRows(stage) {
			cl := r.Closure()
			require.NotEmpty(t, cl)
			require.Equal(t, r, cl[0])
			require.True(t, cl[len(cl)-1].IsRounds())
			require.Equal(t, core.Rounds(stage), cl[len(cl)-1])
			require.Zero(t, factorial(stage.Len())%len(cl), "len(closure(%v)) = %d", r, len(cl))
			require.Equal(t, len(cl), r.Order())
		}
	}
}

// TestClosure_InvalidRowPanics verifies the iteration cap on a non-permutation.
func TestClosure_InvalidRowPanics(t *testing.T) {
	bad := core.RowFromBellsUnchecked([]core.Bell{1, 1, 2})
	assert.Panics(t, func() { bad.Closure() })
	assert.Panics(t, func() { bad.Order() })
}

// TestCompare checks lexicographic ordering and prefix ordering.
func TestCompare(t *testing.T) {
	a := core.MustParseRow("1234")
	b := core.MustParseRow("1243")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(core.Rounds(core.Minimus)))
	assert.Equal(t, -1, core.MustParseRow("123").Compare(a))
	assert.True(t, a.Equal(core.Rounds(core.Minimus)))
	assert.Equal(t, a.Key(), core.Rounds(core.Minimus).Key())
	assert.NotEqual(t, a.Key(), b.Key())
}

// TestFastHash checks the mixed-radix value and losslessness on six bells.
func TestFastHash(t *testing.T) {
	assert.Equal(t, uint64(0+1*3+2*9), core.Rounds(core.Singles).FastHash())

	seen := make(map[uint64]core.Row)
	for _, r := range allRows(core.Minor) {
		h := r.FastHash()
		prev, dup := seen[h]
		require.False(t, dup, "%v and %v collide", r, prev)
		require.Less(t, h, uint64(1<<16))
		seen[h] = r
	}
	assert.True(t, core.Rounds(core.Sixteen).FastHashIsLossless())
	assert.False(t, core.Rounds(core.Stage(17)).FastHashIsLossless())
}

// TestAccessors checks At and Bells copy semantics.
func TestAccessors(t *testing.T) {
	tittums := core.MustParseRow("15263748")
	six, _ := core.BellFromName('6')
	assert.Equal(t, six, tittums.At(3))

	bells := tittums.Bells()
	bells[0] = 7
	assert.Equal(t, "15263748", tittums.String())
	assert.Equal(t, "Row(15263748)", tittums.GoString())
}

// TestRunLen covers front and back runs.
func TestRunLen(t *testing.T) {
	r := core.MustParseRow("65871234")
	assert.Equal(t, 2, r.RunLenFront())
	assert.Equal(t, 4, r.RunLenBack())

	assert.Equal(t, 8, core.Rounds(core.Major).RunLenFront())
	assert.Equal(t, 8, core.Rounds(core.Major).RunLenBack())
	assert.Equal(t, 1, core.Queens(core.Major).RunLenFront())
	assert.Equal(t, 0, core.RunLen(nil))
	assert.Equal(t, 1, core.RunLen([]core.Bell{4}))
	assert.Equal(t, 5, core.MustParseRow("54321678").RunLenFront())
}
