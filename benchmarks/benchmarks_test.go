package benchmarks

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/quagmt/u512"
	"github.com/quagmt/u512/internal/ref"
)

func mustOperand(s string) u512.U512 {
	x, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("bad literal: " + s)
	}
	return ref.FromBig(x)
}

const maxHex = "0x" + "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

func BenchmarkMulSmall(b *testing.B) {
	testcases := []struct {
		multiplicand string
		multiplier   uint64
	}{
		{"123456789", 7},
		{maxHex, 0xffffffffffffffff},
	}

	for _, tc := range testcases {
		v := mustOperand(tc.multiplicand)

		b.Run(fmt.Sprintf("%s*%d", tc.multiplicand, tc.multiplier), func(b *testing.B) {
			var product u512.U512
			b.ResetTimer()
			for range b.N {
				_ = u512.MulSmall(&product, &v, tc.multiplier)
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	testcases := []struct {
		name string
		a, b string
	}{
		{"small", "123456789", "987654321"},
		{"max_times_max", maxHex, maxHex},
	}

	for _, tc := range testcases {
		a, bb := mustOperand(tc.a), mustOperand(tc.b)

		b.Run(tc.name, func(b *testing.B) {
			var product, overflow u512.U512
			b.ResetTimer()
			for range b.N {
				u512.Mul(&product, &overflow, &a, &bb)
			}
		})
	}
}

func BenchmarkDivSmall(b *testing.B) {
	testcases := []struct {
		dividend string
		divisor  uint64
	}{
		{"123456789012345678901234567890", 7},
		{maxHex, 0xffffffffffffffff},
	}

	for _, tc := range testcases {
		v := mustOperand(tc.dividend)

		b.Run(fmt.Sprintf("%s/%d", tc.dividend, tc.divisor), func(b *testing.B) {
			var quotient u512.U512
			b.ResetTimer()
			for range b.N {
				_, _ = u512.DivSmall(&quotient, &v, tc.divisor)
			}
		})
	}
}

func BenchmarkDiv(b *testing.B) {
	testcases := []struct {
		name             string
		dividend, divisor string
	}{
		{"small_divisor", maxHex, "3"},
		{"two_word_divisor", maxHex, "0x10000000000000001"},
		{"equal_width", maxHex, "0x" + maxHex[3:]},
	}

	for _, tc := range testcases {
		dividend, divisor := mustOperand(tc.dividend), mustOperand(tc.divisor)

		b.Run(tc.name, func(b *testing.B) {
			var quotient, remainder u512.U512
			b.ResetTimer()
			for range b.N {
				_ = u512.Div(&quotient, &remainder, &dividend, &divisor)
			}
		})
	}
}
