// Package u512 provides a zero-allocation, fixed-width 512-bit unsigned
// integer arithmetic core: full-width multiplication, single-word
// multiplication, full-width division (Knuth Algorithm D) and single-word
// division.
//
// # How it works
//
// A U512 is represented as eight 64-bit words in big-endian order
// (word 0 most significant, word 7 least significant). Every exported
// function is a pure, allocation-free operation over caller-owned buffers:
// it reads its input U512s and writes its output U512s in the same call,
// never retaining a reference. Buffers may be safely shared across
// goroutines as long as no two concurrent calls alias the same buffer.
//
// # Operations
//
//   - MulSmall: 512-bit by 64-bit multiply, 512-bit product plus 64-bit overflow.
//   - Mul: full 512-bit by 512-bit multiply, 1024-bit result split into product and overflow.
//   - DivSmall: 512-bit by 64-bit divide, 512-bit quotient plus 64-bit remainder.
//   - Div: full 512-bit by 512-bit divide via Knuth TAOCP Vol.2 Algorithm D.
//
// Division by zero is reported through ErrDivideByZero; every other input
// produces a well-defined result. Multiplication never fails.
package u512
