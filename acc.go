package u512

import "math/bits"

// wideAcc is the 16-word (1024-bit) accumulator used by Mul to sum the
// 64 partial products of a schoolbook 512x512 multiply. Like U512, words
// are big-endian: wideAcc[0] is the most significant word (weight 2^960),
// wideAcc[15] the least significant (weight 2^0).
//
// This plays the role the teacher's u1024/ubig type was drafted for but
// never finished (see DESIGN.md): a fixed-width wide accumulator that
// never needs to fall back to math/big, because its width is bounded by
// the spec at 1024 bits rather than growing arbitrarily.
type wideAcc [16]uint64

// addAt adds v into acc at word index pos, rippling any carry into the
// more-significant words (lower indices) until it is absorbed. The core's
// invariant (the full 1024-bit product never overflows the accumulator)
// guarantees pos never goes negative while a carry is still pending.
func (acc *wideAcc) addAt(pos int, v uint64) {
	sum, carry := bits.Add64(acc[pos], v, 0)
	acc[pos] = sum
	for carry != 0 {
		pos--
		sum, carry = bits.Add64(acc[pos], carry, 0)
		acc[pos] = sum
	}
}

// addPair folds the 128-bit partial product a[i]*b[j] into the
// accumulator at word indices (i+j) for the high half and (i+j+1) for the
// low half, exactly as laid out by the Mul contract.
func (acc *wideAcc) addPair(a, b uint64, i, j int) {
	hi, lo := bits.Mul64(a, b)
	acc.addAt(i+j, hi)
	acc.addAt(i+j+1, lo)
}

// split separates the accumulator into overflow (high 512 bits) and
// product (low 512 bits).
func (acc *wideAcc) split() (overflow, product U512) {
	copy(overflow[:], acc[0:8])
	copy(product[:], acc[8:16])
	return overflow, product
}
