package u512

import "math/bits"

// U512 is a 512-bit unsigned integer stored as eight 64-bit words in
// big-endian word order: for a U512 v, v[0] holds the most significant 64
// bits, v[7] the least significant. Bit b of the integer (0 = LSB,
// 511 = MSB) lives in v[7-b/64] at intra-word bit b%64.
//
// A U512 is a plain value type; callers own the storage and the package
// never allocates. Functions that compute a result take the destination
// as the first pointer argument, mirroring the "product/overflow out
// params" shape of the arithmetic core (see mul.go, div.go).
type U512 [8]uint64

// IsZero reports whether v is the zero value.
func (v *U512) IsZero() bool {
	return *v == U512{}
}

// Zero sets every word of dst to 0.
func Zero(dst *U512) {
	*dst = U512{}
}

// Copy duplicates src's eight words into dst.
func Copy(dst, src *U512) {
	*dst = *src
}

// FromUint64 builds a U512 whose value equals v.
func FromUint64(v uint64) U512 {
	return U512{7: v}
}

// Cmp compares a and b, returning -1, 0 or +1 for a<b, a==b, a>b.
func Cmp(a, b *U512) int {
	for i := 0; i < 8; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Msb returns the index of the most significant set bit (0..511), or -1
// if v is zero.
func Msb(v *U512) int {
	for i := 0; i < 8; i++ {
		if v[i] != 0 {
			return (7-i)*64 + bits.Len64(v[i]) - 1
		}
	}
	return -1
}

// Lsb returns the index of the least significant set bit (0..511), or -1
// if v is zero.
func Lsb(v *U512) int {
	for i := 7; i >= 0; i-- {
		if v[i] != 0 {
			return (7-i)*64 + bits.TrailingZeros64(v[i])
		}
	}
	return -1
}

// wordCount returns the number of non-zero leading words of v: 0 if v is
// zero, otherwise msb(v)/64 + 1. Used by Mul and Div to bound the
// schoolbook loops to the operands' significant words instead of always
// iterating all eight.
func wordCount(v *U512) int {
	m := Msb(v)
	if m < 0 {
		return 0
	}
	return m/64 + 1
}

// Add computes dst = a + b mod 2^512 and returns the carry out of the top
// word (0 or 1). dst may alias a or b.
func Add(dst, a, b *U512) uint64 {
	var carry uint64
	var out U512
	for i := 7; i >= 0; i-- {
		out[i], carry = bits.Add64(a[i], b[i], carry)
	}
	*dst = out
	return carry
}

// Sub computes dst = a - b mod 2^512 and returns the borrow out of the top
// word (0 or 1). dst may alias a or b.
func Sub(dst, a, b *U512) uint64 {
	var borrow uint64
	var out U512
	for i := 7; i >= 0; i-- {
		out[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	*dst = out
	return borrow
}

// Shl computes dst = src << k mod 2^512, for k in [0, 512]. dst may alias
// src.
func Shl(dst, src *U512, k uint) {
	if k >= 512 {
		*dst = U512{}
		return
	}

	words, bitShift := int(k/64), k%64
	var out U512
	if bitShift == 0 {
		for i := 0; i < 8-words; i++ {
			out[i] = src[i+words]
		}
	} else {
		for i := 0; i < 8-words; i++ {
			hi := src[i+words] << bitShift
			var lo uint64
			if i+words+1 < 8 {
				lo = src[i+words+1] >> (64 - bitShift)
			}
			out[i] = hi | lo
		}
	}
	*dst = out
}

// Shr computes dst = src >> k, for k in [0, 512]. dst may alias src.
func Shr(dst, src *U512, k uint) {
	if k >= 512 {
		*dst = U512{}
		return
	}

	words, bitShift := int(k/64), k%64
	var out U512
	if bitShift == 0 {
		for i := 7; i >= words; i-- {
			out[i] = src[i-words]
		}
	} else {
		for i := 7; i >= words; i-- {
			lo := src[i-words] >> bitShift
			var hi uint64
			if i-words-1 >= 0 {
				hi = src[i-words-1] << (64 - bitShift)
			}
			out[i] = hi | lo
		}
	}
	*dst = out
}

// And computes dst = a & b. dst may alias a or b.
func And(dst, a, b *U512) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

// Or computes dst = a | b. dst may alias a or b.
func Or(dst, a, b *U512) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

// Not computes dst = ^src. dst may alias src.
func Not(dst, src *U512) {
	for i := range dst {
		dst[i] = ^src[i]
	}
}
