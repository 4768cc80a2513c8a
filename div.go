package u512

import "math/bits"

// DivSmall computes quotient = floor(dividend/divisor) and
// remainder = dividend mod divisor. If divisor is 0, both outputs are
// zeroed and ErrDivideByZero is returned. quotient may alias dividend.
//
// Grounded on the teacher's u128.QuoRem64 (a chained bits.Div64 walk over
// two words), generalized to eight words, most significant first: each
// step's remainder becomes the high half of the next 2-by-1 division, so
// it is always strictly less than divisor and the native divide never
// overflows (spec section 4.3).
func DivSmall(quotient, dividend *U512, divisor uint64) (remainder uint64, err error) {
	if divisor == 0 {
		*quotient = U512{}
		return 0, ErrDivideByZero
	}

	var q U512
	var r uint64
	for i := 0; i < 8; i++ {
		q[i], r = bits.Div64(r, dividend[i], divisor)
	}

	*quotient = q
	return r, nil
}

// Div computes quotient = floor(dividend/divisor) and
// remainder = dividend - quotient*divisor. If divisor is 0, both outputs
// are zeroed and ErrDivideByZero is returned; every other input produces
// a well-defined result without error.
//
// Grounded on the teacher's u128.QuoRem (trial-digit-by-division,
// compare-and-adjust, subtract, conditional add-back) generalized from a
// single-word divisor to Knuth TAOCP Vol.2 Algorithm D's general n-word
// case, cross-checked step-by-step against the reference divLarge in
// other_examples/bford-go's math/big nat.go.
func Div(quotient, remainder, dividend, divisor *U512) error {
	if divisor.IsZero() {
		*quotient, *remainder = U512{}, U512{}
		return ErrDivideByZero
	}

	if *divisor == FromUint64(1) {
		*quotient = *dividend
		*remainder = U512{}
		return nil
	}

	if Msb(divisor) < 64 {
		var q U512
		rem, _ := DivSmall(&q, dividend, divisor[7])
		*quotient = q
		*remainder = U512{7: rem}
		return nil
	}

	if Cmp(dividend, divisor) < 0 {
		*quotient = U512{}
		*remainder = *dividend
		return nil
	}

	divKnuth(quotient, remainder, dividend, divisor)
	return nil
}

// divKnuth implements Knuth Algorithm D (TAOCP Vol.2 section 4.3.1) for
// the general case: divisor spans at least two words and dividend is not
// smaller than divisor. Preconditions are enforced by Div's dispatch
// above.
func divKnuth(quotient, remainder, dividend, divisor *U512) {
	n := wordCount(divisor)  // significant words of divisor, 2..8
	ndiv := wordCount(dividend)
	m := ndiv - n // quotient has m+1 base-2^64 digits

	// D1. Normalize: shift divisor so its top word's high bit is set, and
	// shift dividend by the same amount into a 9-word buffer, preserving
	// the bits that would otherwise fall off the top. u is the window of
	// that buffer holding the dividend's ndiv significant words plus the
	// word above them that receives those shifted-out bits, so u[0] is
	// that extra word and u[ndiv] the least significant one.
	s := uint(bits.LeadingZeros64(divisor[8-n]))

	var normDivisor U512
	Shl(&normDivisor, divisor, s)
	v := normDivisor[8-n:]

	var uLow U512
	uTop := shlWithOverflow(&uLow, dividend, s)

	var uBuf [9]uint64
	uBuf[0] = uTop
	copy(uBuf[1:], uLow[:])
	u := uBuf[8-ndiv:]

	v1, v2 := v[0], v[1]
	var qBuf, pBuf [9]uint64
	q := qBuf[:m+1]
	p := pBuf[:n+1]

	for j := 0; j <= m; j++ {
		// D3. Estimate the trial digit q-hat.
		qhat := ^uint64(0) // b-1; correct as-is when u[j] == v1 (see below)
		if ujn := u[j]; ujn != v1 {
			var rhat uint64
			qhat, rhat = bits.Div64(ujn, u[j+1], v1)

			hi, lo := bits.Mul64(qhat, v2)
			for greaterThan128(hi, lo, rhat, u[j+2]) {
				qhat--
				prevRhat := rhat
				rhat += v1
				if rhat < prevRhat {
					// r-hat overflowed past b: it can no longer bound the
					// test above, so q-hat is already within 1 of exact.
					break
				}
				hi, lo = bits.Mul64(qhat, v2)
			}
		}

		// D4. Multiply and subtract: p := q-hat * normDivisor (n+1 words,
		// aligned with the window u[j:j+n+1]), then subtract it in place.
		p[0] = mulWords(p[1:], v, qhat)
		borrow := subWords(u[j:j+n+1], u[j:j+n+1], p)

		// D6. Add back: a borrow out of the window means q-hat was one
		// too large. Undo it by decrementing the digit and adding the
		// (normalized) divisor back in, discarding the final carry.
		if borrow != 0 {
			qhat--
			carry := addWords(u[j+1:j+n+1], u[j+1:j+n+1], v)
			u[j] += carry
		}

		// D5. Set the quotient digit.
		q[j] = qhat
	}

	// D8. De-normalize: the trailing n words of u hold the normalized
	// remainder; shift right by s to recover the true remainder.
	var normRem U512
	copy(normRem[8-n:], u[m+1:m+1+n])
	Shr(remainder, &normRem, s)

	var quot U512
	qBase := 8 - (m + 1)
	copy(quot[qBase:], q)
	*quotient = quot
}
