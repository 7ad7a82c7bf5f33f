package numerics

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DecimalFromString parses a decimal literal exactly, with no binary
// rounding: DecimalFromString("0.1") is one tenth, not 0x1.999...p-04.
func DecimalFromString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a decimal", ErrInvalidArgument, s)
	}
	return d, nil
}

// DivideAtPrecision divides num by den keeping the given number of decimal
// digits, rounding half away from zero. Raising the precision retains more
// digits of a non-terminating quotient such as 1/7.
func DivideAtPrecision(num, den int64, digits int32) (decimal.Decimal, error) {
	if den == 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: zero divisor", ErrInvalidArgument)
	}
	return decimal.NewFromInt(num).DivRound(decimal.NewFromInt(den), digits), nil
}
