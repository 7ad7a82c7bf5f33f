package numerics

import (
	"math/big"
	"strconv"
)

// RadixForms holds the same integer rendered in the bases the demonstrator
// reports on.
type RadixForms struct {
	Decimal string
	Binary  string
	Octal   string
	Hex     string
}

// Radix renders n in decimal, binary (0b), octal (0o) and hex (0x).
func Radix(n int64) RadixForms {
	return RadixForms{
		Decimal: strconv.FormatInt(n, 10),
		Binary:  "0b" + strconv.FormatInt(n, 2),
		Octal:   "0o" + strconv.FormatInt(n, 8),
		Hex:     "0x" + strconv.FormatInt(n, 16),
	}
}

// PowInt returns base**exp as an arbitrary-precision integer. Exponents are
// clamped at zero; fixed-size integers would overflow well before 10**20.
func PowInt(base, exp int64) *big.Int {
	if exp < 0 {
		exp = 0
	}
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
}

// Factorial returns n! as an arbitrary-precision integer, with 0! = 1.
func Factorial(n int64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, n)
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	x := new(big.Int).Abs(big.NewInt(a))
	y := new(big.Int).Abs(big.NewInt(b))
	return new(big.Int).GCD(nil, nil, x, y).Int64()
}
