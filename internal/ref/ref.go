// Package ref is a math/big-backed oracle used by tests, fuzz targets and
// benchmarks to check the u512 package's multiply and divide against an
// independent implementation; cmd/u512calc also uses its U512/big.Int
// conversions.
//
// Adapted from the teacher's BInt (bint.go), which promotes a u128 to
// big.Int on overflow; here the promotion is unconditional since the
// whole point of this package is to be the "always correct, never fast"
// reference the arithmetic core is tested against.
package ref

import (
	"encoding/binary"
	"math/big"

	"github.com/quagmt/u512"
)

// ToBig converts v into a big.Int, grounded on the teacher's
// u128.ToBigInt (big-endian bytes via encoding/binary, then
// big.Int.SetBytes), generalized from two words to eight.
func ToBig(v *u512.U512) *big.Int {
	var buf [64]byte
	for i, w := range v {
		binary.BigEndian.PutUint64(buf[i*8:], w)
	}
	return new(big.Int).SetBytes(buf[:])
}

// FromBig converts a non-negative big.Int smaller than 2^512 into a
// U512. Values outside that range are truncated to their low 512 bits.
func FromBig(x *big.Int) u512.U512 {
	b := x.Bytes()
	var buf [64]byte
	if len(b) > 64 {
		b = b[len(b)-64:]
	}
	copy(buf[64-len(b):], b)

	var out u512.U512
	for i := 0; i < 8; i++ {
		out[i] = binary.BigEndian.Uint64(buf[i*8:])
	}
	return out
}

// MulOracle computes the exact 1024-bit product a*b via math/big and
// splits it into overflow (high 512 bits) and product (low 512 bits),
// mirroring u512.Mul's contract.
func MulOracle(a, b *u512.U512) (overflow, product u512.U512) {
	p := new(big.Int).Mul(ToBig(a), ToBig(b))

	mod := new(big.Int).Lsh(big.NewInt(1), 512)
	prod := new(big.Int).And(p, new(big.Int).Sub(mod, big.NewInt(1)))
	over := new(big.Int).Rsh(p, 512)

	return FromBig(over), FromBig(prod)
}

// DivOracle computes quotient and remainder via math/big, mirroring
// u512.Div's contract. divisor must be non-zero.
func DivOracle(dividend, divisor *u512.U512) (quotient, remainder u512.U512) {
	q, r := new(big.Int).QuoRem(ToBig(dividend), ToBig(divisor), new(big.Int))
	return FromBig(q), FromBig(r)
}
