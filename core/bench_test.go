// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/jigsaw/core"
)

// BenchmarkRow_Mul measures one product on twelve bells.
func BenchmarkRow_Mul(b *testing.B) {
	lhs := core.Queens(core.Maximus)
	rhs := core.Backrounds(core.Maximus)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lhs.Mul(rhs)
	}
}

// BenchmarkParseRow measures parsing with separator filtering.
func BenchmarkParseRow(b *testing.B) {
	const text = "1357 9E24 680T"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.ParseRow(text)
	}
}

// BenchmarkRow_Closure measures the closure of an order-11 cycle.
func BenchmarkRow_Closure(b *testing.B) {
	r := core.MustParseRow("1T234567890E")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Closure()
	}
}
