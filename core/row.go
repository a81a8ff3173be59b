// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"strings"
)

// Row is one permutation of the bells of a Stage.
//
// A Row must contain every Bell below its Stage exactly once. This is checked by the
// constructors and then assumed everywhere else, the same way a Go string is assumed
// to hold whatever bytes it was built from. The bells live in an immutable string
// (one byte per bell), so Rows are comparable with == and usable as map keys.
// The zero Row is the empty row on stage 0.
type Row struct {
	bells string
}

// Rounds returns the identity Row (ascending order) on stage.
//
//	Rounds(Major) → 12345678
func Rounds(stage Stage) Row {
	buf := make([]byte, stage.Len())
	for i := range buf {
		buf[i] = byte(i)
	}

	return Row{bells: string(buf)}
}

// Backrounds returns the descending Row on stage.
//
//	Backrounds(Major) → 87654321
func Backrounds(stage Stage) Row {
	n := stage.Len()
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(n - 1 - i)
	}

	return Row{bells: string(buf)}
}

// Queens returns the odd bells ascending followed by the even bells ascending.
//
//	Queens(Major) → 13572468
func Queens(stage Stage) Row {
	n := stage.Len()
	buf := make([]byte, 0, n)
	for i := 0; i < n; i += 2 {
		buf = append(buf, byte(i))
	}
	for i := 1; i < n; i += 2 {
		buf = append(buf, byte(i))
	}

	return Row{bells: string(buf)}
}

// ParseRow reads a Row from text, skipping every rune that is not a bell name.
// Returns *DuplicateBellError or *BellOutOfStageError if the bells do not form a Row.
//
//	ParseRow("4321\t[65 78]") → 43216578
//	ParseRow("112345")        → DuplicateBell(1)
//	ParseRow("12745")         → BellOutOfStage(7, Doubles)
func ParseRow(s string) (Row, error) {
	bells := make([]Bell, 0, len(s))
	for _, r := range s {
		if b, ok := BellFromName(r); ok {
			bells = append(bells, b)
		}
	}

	return RowFromBells(bells)
}

// MustParseRow is like ParseRow but panics on error. Intended for constants and tests.
func MustParseRow(s string) Row {
	r, err := ParseRow(s)
	if err != nil {
		panic(fmt.Sprintf("core: MustParseRow(%q): %v", s, err))
	}

	return r
}

// RowFromBells builds a Row from bells, checking validity. The Stage of the result
// is len(bells).
func RowFromBells(bells []Bell) (Row, error) {
	if err := checkBells(bells); err != nil {
		return Row{}, err
	}

	return RowFromBellsUnchecked(bells), nil
}

// RowFromBellsUnchecked builds a Row without checking validity. Only use it when the
// input is known to be a permutation; algebra on an invalid Row gives meaningless
// (but memory-safe) results.
func RowFromBellsUnchecked(bells []Bell) Row {
	buf := make([]byte, len(bells))
	for i, b := range bells {
		buf[i] = byte(b)
	}

	return Row{bells: string(buf)}
}

// checkBells ticks each bell off a checklist of length len(bells). A bell past the
// end of the checklist is out of stage; a bell already ticked is a duplicate. A
// missing bell always shows up as one of those two, so no third case exists.
func checkBells(bells []Bell) error {
	stage := StageFromLen(len(bells))
	checklist := make([]bool, len(bells))
	for _, b := range bells {
		switch {
		case b.Index() >= len(checklist):
			return &BellOutOfStageError{Bell: b, Stage: stage}
		case checklist[b.Index()]:
			return &DuplicateBellError{Bell: b}
		default:
			checklist[b.Index()] = true
		}
	}

	return nil
}

// Stage returns the number of bells in r.
func (r Row) Stage() Stage { return StageFromLen(len(r.bells)) }

// At returns the Bell at position i. Panics if i is out of range.
func (r Row) At(i int) Bell { return Bell(r.bells[i]) }

// Bells returns a fresh copy of the bells of r.
func (r Row) Bells() []Bell {
	out := make([]Bell, len(r.bells))
	for i := 0; i < len(r.bells); i++ {
		out[i] = Bell(r.bells[i])
	}

	return out
}

// IsRounds reports whether r is the identity permutation, without allocating rounds.
func (r Row) IsRounds() bool {
	for i := 0; i < len(r.bells); i++ {
		if int(r.bells[i]) != i {
			return false
		}
	}

	return true
}

// Equal reports whether r and other hold the same bells in the same order.
func (r Row) Equal(other Row) bool { return r.bells == other.bells }

// Compare orders Rows lexicographically by bell index; a Row that is a strict prefix
// of another sorts first. Returns -1, 0 or +1.
func (r Row) Compare(other Row) int { return strings.Compare(r.bells, other.bells) }

// Key returns a lossless comparable key for r, stable across calls.
func (r Row) Key() string { return r.bells }

// Mul uses rhs to permute r: the bell at position i of the result is r[rhs[i]].
// Returns *IncompatibleStagesError if the stages differ.
//
//	13425678 · 43217568 → 24317568
func (r Row) Mul(rhs Row) (Row, error) {
	if err := CheckStages(r.Stage(), rhs.Stage()); err != nil {
		return Row{}, err
	}

	return r.MulUnchecked(rhs), nil
}

// MulUnchecked is Mul without the stage check. With mismatched stages the result is
// well-formed but meaningless; an index of rhs past the end of r panics.
func (r Row) MulUnchecked(rhs Row) Row {
	buf := make([]byte, len(rhs.bells))
	for i := 0; i < len(rhs.bells); i++ {
		buf[i] = r.bells[rhs.bells[i]]
	}

	return Row{bells: string(buf)}
}

// Inverse returns the unique Row inv with r·inv = inv·r = rounds.
//
//	Inverse(135246) → 142536
func (r Row) Inverse() Row {
	buf := make([]byte, len(r.bells))
	for i := 0; i < len(r.bells); i++ {
		buf[r.bells[i]] = byte(i)
	}

	return Row{bells: string(buf)}
}

// Closure returns r, r², r³, … up to and including rounds.
//
// The powers of r form a cyclic subgroup of the symmetric group on Stage bells, so by
// Lagrange the sequence reaches rounds after at most Stage! steps and its length
// divides Stage!. Exceeding that bound means r was built unchecked and is not a
// permutation; Closure panics rather than loop forever.
//
//	Closure(18234567) → [18234567 17823456 16782345 15678234 14567823 13456782 12345678]
func (r Row) Closure() []Row {
	limit := factorialSaturating(len(r.bells))
	closure := make([]Row, 0, 8)
	row := r
	for i := 0; ; i++ {
		if i >= limit {
			panic(fmt.Sprintf("core: closure of %v exceeded %d steps; row is not a permutation", r, limit))
		}
		closure = append(closure, row)
		if row.IsRounds() {
			return closure
		}
		row = row.MulUnchecked(r)
	}
}

// Order returns the number of elements of r.Closure() without materialising it.
func (r Row) Order() int {
	n := 1
	row := r
	limit := factorialSaturating(len(r.bells))
	for !row.IsRounds() {
		if n >= limit {
			panic(fmt.Sprintf("core: order of %v exceeded %d; row is not a permutation", r, limit))
		}
		row = row.MulUnchecked(r)
		n++
	}

	return n
}

// FastHash reads r as a mixed-radix number with base Stage, least significant digit
// first. Two different Rows hash equal only if the number overflows, which cannot
// happen while Stage^Stage fits the hash width:
//
//	16 bits: up to 6 bells
//	32 bits: up to 9 bells
//	64 bits: up to 16 bells
//
// Above 16 bells the hash wraps and may collide; use Key (or the Row itself) wherever
// identity matters.
func (r Row) FastHash() uint64 {
	var accum uint64
	multiplier := uint64(1)
	base := uint64(len(r.bells))
	for i := 0; i < len(r.bells); i++ {
		accum += uint64(r.bells[i]) * multiplier
		multiplier *= base
	}

	return accum
}

// FastHashIsLossless reports whether FastHash is collision-free on r's Stage.
func (r Row) FastHashIsLossless() bool { return len(r.bells) <= 16 }

// String renders the bell names left to right.
func (r Row) String() string {
	var sb strings.Builder
	sb.Grow(len(r.bells))
	for i := 0; i < len(r.bells); i++ {
		sb.WriteString(Bell(r.bells[i]).Name())
	}

	return sb.String()
}

// GoString renders r as Row(…) for %#v.
func (r Row) GoString() string { return "Row(" + r.String() + ")" }

// factorialSaturating returns n!, clamped to math.MaxInt.
func factorialSaturating(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		if f > math.MaxInt/i {
			return math.MaxInt
		}
		f *= i
	}

	return f
}
