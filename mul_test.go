package u512_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quagmt/u512"
	"github.com/quagmt/u512/internal/ref"
)

func TestMulSmall(t *testing.T) {
	testcases := []struct {
		name         string
		multiplicand string
		multiplier   uint64
	}{
		{"zero_times_anything", "0", 123456789},
		{"anything_times_zero", "123456789", 0},
		{"one", "1", 1},
		{"no_overflow", "1000000000000000000", 7},
		{"max_times_max_word", "0x" + maxHex, 0xffffffffffffffff},
		{"exact_512_boundary", "0x80000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", 2},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			x := mustBig(tc.multiplicand)
			v := ref.FromBig(x)

			var product u512.U512
			overflow := u512.MulSmall(&product, &v, tc.multiplier)

			want := new(big.Int).Mul(x, new(big.Int).SetUint64(tc.multiplier))
			mod := new(big.Int).Lsh(big.NewInt(1), 512)
			wantOverflow := new(big.Int).Rsh(want, 512)
			wantProduct := new(big.Int).And(want, new(big.Int).Sub(mod, big.NewInt(1)))

			require.Equal(t, wantOverflow.Uint64(), overflow)
			require.Equal(t, ref.FromBig(wantProduct), product)
		})
	}
}

func TestMulSmallAliasing(t *testing.T) {
	v := u512.FromUint64(21)
	overflow := u512.MulSmall(&v, &v, 2)
	require.Zero(t, overflow)
	require.Equal(t, u512.FromUint64(42), v)
}

const maxHex = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

func TestMul(t *testing.T) {
	testcases := []struct {
		name string
		a, b string
	}{
		{"zero_times_max", "0", "0x" + maxHex},
		{"one_times_max", "1", "0x" + maxHex},
		{"max_times_max", "0x" + maxHex, "0x" + maxHex},
		{"small_times_small", "6", "7"},
		{"power_of_two_squared", "0x80000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", "0x80000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := ref.FromBig(mustBig(tc.a)), ref.FromBig(mustBig(tc.b))
			wantOverflow, wantProduct := ref.MulOracle(&a, &b)

			var product, overflow u512.U512
			u512.Mul(&product, &overflow, &a, &b)

			require.Equal(t, wantOverflow, overflow, "overflow")
			require.Equal(t, wantProduct, product, "product")
		})
	}
}

func TestMulCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	mod := new(big.Int).Lsh(big.NewInt(1), 512)

	for i := 0; i < 200; i++ {
		a := ref.FromBig(new(big.Int).Rand(rng, mod))
		b := ref.FromBig(new(big.Int).Rand(rng, mod))

		var p1, o1, p2, o2 u512.U512
		u512.Mul(&p1, &o1, &a, &b)
		u512.Mul(&p2, &o2, &b, &a)

		require.Equal(t, p1, p2, "case %d", i)
		require.Equal(t, o1, o2, "case %d", i)
	}
}

func TestMulAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	mod := new(big.Int).Lsh(big.NewInt(1), 512)

	for i := 0; i < 500; i++ {
		a := ref.FromBig(new(big.Int).Rand(rng, mod))
		b := ref.FromBig(new(big.Int).Rand(rng, mod))

		wantOverflow, wantProduct := ref.MulOracle(&a, &b)

		var product, overflow u512.U512
		u512.Mul(&product, &overflow, &a, &b)

		require.Equal(t, wantOverflow, overflow, "case %d", i)
		require.Equal(t, wantProduct, product, "case %d", i)
	}
}

func FuzzMul(f *testing.F) {
	f.Add(make([]byte, 64), make([]byte, 64))
	f.Add(bytesOf(maxHex), bytesOf(maxHex))

	f.Fuzz(func(t *testing.T, rawA, rawB []byte) {
		a, b := bytesToU512(rawA), bytesToU512(rawB)

		wantOverflow, wantProduct := ref.MulOracle(&a, &b)

		var product, overflow u512.U512
		u512.Mul(&product, &overflow, &a, &b)

		require.Equal(t, wantOverflow, overflow)
		require.Equal(t, wantProduct, product)
	})
}

func bytesOf(hex string) []byte {
	return mustBig("0x" + hex).Bytes()
}

func bytesToU512(raw []byte) u512.U512 {
	x := new(big.Int).SetBytes(raw)
	mod := new(big.Int).Lsh(big.NewInt(1), 512)
	x.Mod(x, mod)
	return ref.FromBig(x)
}
