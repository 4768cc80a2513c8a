package u512

// MulSmall computes the exact 576-bit value multiplicand*multiplier,
// storing its low 512 bits in product and returning its high 64 bits as
// overflow. overflow is 0 whenever the mathematical product fits in 512
// bits. product may alias multiplicand (in-place update).
//
// Grounded on the teacher's u128.mul64Raw: bits.Mul64 for the 64x64->128
// partial product, bits.Add64 for the add-with-carry chain, generalized
// from two words to eight via mulWords (word.go).
func MulSmall(product, multiplicand *U512, multiplier uint64) (overflow uint64) {
	// Snapshot the multiplicand in case product aliases it.
	m := *multiplicand
	return mulWords(product[:], m[:], multiplier)
}

// Mul computes the full 1024-bit unsigned product a*b, splitting it into
// product (low 512 bits) and overflow (high 512 bits). Result is always
// exact; the operation never fails. product and overflow must be distinct
// from each other and from the inputs.
//
// Grounded on the teacher's u128.MulToU256 (128x128->256 widening
// multiply via bits.Mul64/bits.Add64) generalized to a 16-word
// accumulator (wideAcc, acc.go), and on the Alivers-guint Uint512.Mul
// double loop (other_examples) for the carry-propagation-into-higher-
// words shape.
func Mul(product, overflow, a, b *U512) {
	switch {
	case a.IsZero() || b.IsZero():
		*product, *overflow = U512{}, U512{}
		return
	case *a == FromUint64(1):
		*product, *overflow = *b, U512{}
		return
	case *b == FromUint64(1):
		*product, *overflow = *a, U512{}
		return
	}

	na, nb := wordCount(a), wordCount(b)
	// wordCount bounds the scan to each operand's significant words; the
	// per-word zero check below keeps this correct even when the bound
	// isn't tight (spec section 4.2 allows either).
	var acc wideAcc
	for i := 8 - na; i < 8; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 8 - nb; j < 8; j++ {
			if b[j] == 0 {
				continue
			}
			acc.addPair(a[i], b[j], i, j)
		}
	}

	*overflow, *product = acc.split()
}
