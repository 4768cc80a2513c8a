package u512

import "math/bits"

// mulWords computes dst = src*multiplier for same-length big-endian word
// slices and returns the word that overflows past dst[0]. Shared by
// MulSmall (len==8) and Div's multiply-and-subtract step (len==n).
//
// Grounded on the teacher's u128.mul64Raw add-with-carry chain
// (bits.Mul64 + bits.Add64), generalized from a fixed two words to an
// arbitrary slice length.
func mulWords(dst, src []uint64, multiplier uint64) (overflow uint64) {
	var carry uint64
	for i := len(src) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(src[i], multiplier)

		var c0 uint64
		dst[i], c0 = bits.Add64(lo, carry, 0)
		carry = hi + c0
	}
	return carry
}

// addWords computes dst = a+b for same-length big-endian word slices and
// returns the carry out of the top word. dst may alias a.
func addWords(dst, a, b []uint64) (carry uint64) {
	for i := len(a) - 1; i >= 0; i-- {
		dst[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return carry
}

// subWords computes dst = a-b for same-length big-endian word slices and
// returns the borrow out of the top word. dst may alias a.
func subWords(dst, a, b []uint64) (borrow uint64) {
	for i := len(a) - 1; i >= 0; i-- {
		dst[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return borrow
}

// shlWithOverflow shifts src left by s bits (0 <= s < 64), writing the low
// 512 bits into dst and returning the bits that were shifted out past the
// top word. Used by Div's normalization step (D1) to extend the 512-bit
// dividend into the 9-word working buffer without losing any bits.
func shlWithOverflow(dst *U512, src *U512, s uint) (overflow uint64) {
	var out U512
	var carry uint64
	for i := 7; i >= 0; i-- {
		hi := src[i] >> (64 - s)
		out[i] = (src[i] << s) | carry
		carry = hi
	}
	*dst = out
	return carry
}

// greaterThan128 reports whether the 128-bit value (xHi:xLo) is strictly
// greater than (yHi:yLo). Used by Div's q-hat refinement test (Knuth D3).
func greaterThan128(xHi, xLo, yHi, yLo uint64) bool {
	if xHi != yHi {
		return xHi > yHi
	}
	return xLo > yLo
}
