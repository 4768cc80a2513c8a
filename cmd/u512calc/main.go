// Command u512calc is a small flag-driven driver over the u512
// arithmetic core, exercising the package's public API the way the
// teacher's benchmarks package exercises udecimal from outside.
//
// Usage:
//
//	u512calc -op mul -a 0x... -b 0x...
//	u512calc -op div -a 0x... -b 0x...
//
// Operands are hex strings ("0x" optional). mul prints "overflow product";
// div prints "quotient remainder".
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/quagmt/u512"
	"github.com/quagmt/u512/internal/ref"
)

func main() {
	op := flag.String("op", "", "operation: mul or div")
	aFlag := flag.String("a", "", "first operand, hex")
	bFlag := flag.String("b", "", "second operand, hex")
	flag.Parse()

	if err := run(*op, *aFlag, *bFlag, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "u512calc:", err)
		os.Exit(1)
	}
}

func run(op, aStr, bStr string, out *os.File) error {
	a, err := parseOperand(aStr)
	if err != nil {
		return fmt.Errorf("operand a: %w", err)
	}
	b, err := parseOperand(bStr)
	if err != nil {
		return fmt.Errorf("operand b: %w", err)
	}

	switch op {
	case "mul":
		var product, overflow u512.U512
		u512.Mul(&product, &overflow, &a, &b)
		fmt.Fprintf(out, "0x%x 0x%x\n", ref.ToBig(&overflow), ref.ToBig(&product))
		return nil
	case "div":
		var quotient, remainder u512.U512
		if err := u512.Div(&quotient, &remainder, &a, &b); err != nil {
			return err
		}
		fmt.Fprintf(out, "0x%x 0x%x\n", ref.ToBig(&quotient), ref.ToBig(&remainder))
		return nil
	default:
		return fmt.Errorf("unknown op %q, want mul or div", op)
	}
}

func parseOperand(s string) (u512.U512, error) {
	x, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok || x.Sign() < 0 {
		return u512.U512{}, fmt.Errorf("invalid unsigned integer literal %q", s)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), 512)
	if x.Cmp(mod) >= 0 {
		return u512.U512{}, fmt.Errorf("operand %q does not fit in 512 bits", s)
	}
	return ref.FromBig(x), nil
}
