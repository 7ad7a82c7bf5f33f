package numerics

import (
	"fmt"
	"math"
	"math/big"
)

// RatFromString parses an exact rational from either "a/b" form or a decimal
// literal: "0.25" becomes 1/4.
func RatFromString(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a rational", ErrInvalidArgument, s)
	}
	return r, nil
}

// NewRat returns num/den, failing on a zero denominator.
func NewRat(num, den int64) (*big.Rat, error) {
	if den == 0 {
		return nil, fmt.Errorf("%w: zero denominator", ErrInvalidArgument)
	}
	return big.NewRat(num, den), nil
}

// RatFromFloat returns the exact rational value of f. Because f is a binary
// float, the result is the rational the bits actually encode: for 0.1+0.2
// that is 1351079888211149/2^52, not 3/10.
func RatFromFloat(f float64) (*big.Rat, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("%w: %v has no rational value", ErrInvalidArgument, f)
	}
	return new(big.Rat).SetFloat64(f), nil
}

// LimitDenominator returns the closest rational to r whose denominator does
// not exceed maxDen, using continued-fraction convergents. It recovers a
// "nice" fraction from a float artifact: the exact rational for 0.1+0.2
// limited to denominator 1000000 is 3/10.
func LimitDenominator(r *big.Rat, maxDen int64) (*big.Rat, error) {
	if maxDen < 1 {
		return nil, fmt.Errorf("%w: max denominator must be at least 1", ErrInvalidArgument)
	}
	limit := big.NewInt(maxDen)
	if r.Denom().Cmp(limit) <= 0 {
		return new(big.Rat).Set(r), nil
	}

	neg := r.Sign() < 0
	n := new(big.Int).Abs(r.Num())
	d := new(big.Int).Set(r.Denom())

	// Walk the continued-fraction expansion of n/d, tracking the last two
	// convergents p0/q0 and p1/q1, until the next denominator would pass
	// the limit.
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	a, rem, q2 := new(big.Int), new(big.Int), new(big.Int)
	for {
		a.QuoRem(n, d, rem)
		q2.Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(limit) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0 = p1, q1
		p1, q1 = p2, new(big.Int).Set(q2)
		n, d = d, new(big.Int).Set(rem)
	}

	// Two candidates bound r: the last convergent, and the best
	// semiconvergent that still fits under the limit.
	k := new(big.Int).Sub(limit, q0)
	k.Quo(k, q1)
	semiNum := new(big.Int).Mul(k, p1)
	semiNum.Add(semiNum, p0)
	semiDen := new(big.Int).Mul(k, q1)
	semiDen.Add(semiDen, q0)

	abs := new(big.Rat).Abs(r)
	bound1 := new(big.Rat).SetFrac(semiNum, semiDen)
	bound2 := new(big.Rat).SetFrac(p1, q1)

	d1 := new(big.Rat).Sub(bound1, abs)
	d2 := new(big.Rat).Sub(bound2, abs)
	best := bound1
	if d2.Abs(d2).Cmp(d1.Abs(d1)) <= 0 {
		best = bound2
	}
	if neg {
		best.Neg(best)
	}
	return best, nil
}
