package facts

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"numfacts/internal/numerics"
)

// NumberFacts computes the numeric-type battery. All inputs are literals;
// an error here means a helper rejected a value it should have accepted and
// is treated as fatal by the caller.
func NumberFacts() ([]Section, error) {
	integers := Section{Title: "Integers"}
	integers.add("regular integer", 42)
	integers.add("big integer 10^20, arbitrary precision", numerics.PowInt(10, 20))
	radix := numerics.Radix(0b1010)
	integers.add("binary literal 0b1010 in decimal", radix.Decimal)
	integers.add("octal literal 0o52 in decimal", numerics.Radix(0o52).Decimal)
	integers.add("hex literal 0x2A in decimal", numerics.Radix(0x2A).Decimal)
	forty2 := numerics.Radix(42)
	integers.add("42 rendered back in each base",
		fmt.Sprintf("%s / %s / %s", forty2.Binary, forty2.Octal, forty2.Hex))
	integers.add("numeric equality is by value", "compare values, never addresses: 42 == 42 regardless of where it lives")

	floats := Section{Title: "Floating-Point Numbers"}
	floats.add("regular float", 3.14)
	floats.add("scientific notation of 3.14e10", numerics.Scientific(3.14e10))
	sum := 0.1 + 0.2
	floats.add("0.1 + 0.2", sum)
	floats.add("0.1 + 0.2 == 0.3 exactly", sum == 0.3)
	floats.add("0.1 + 0.2 within machine epsilon of 0.3",
		numerics.AlmostEqual(sum, 0.3, numerics.MachineEpsilon))
	floats.add("exact bits of 0.1 (hex float)", numerics.HexFloat(0.1))

	complexes := Section{Title: "Complex Numbers"}
	z := complex(3, 4)
	complexes.add("complex number z", z)
	complexes.add("real part", real(z))
	complexes.add("imaginary part", imag(z))
	complexes.add("conjugate", numerics.Conjugate(z))
	complexes.add("magnitude |z|", numerics.Magnitude(z))
	complexes.add("phase in radians", numerics.Phase(z))

	bools := Section{Title: "Booleans as Integers"}
	bools.add("true coerced to int", numerics.BoolToInt(true))
	bools.add("false coerced to int", numerics.BoolToInt(false))
	bools.add("1 + true", 1+numerics.BoolToInt(true))
	bools.add("true * 5", numerics.BoolToInt(true)*5)
	bools.add("false * 5", numerics.BoolToInt(false)*5)

	decimals := Section{Title: "Fixed-Precision Decimals"}
	tenth, err := numerics.DecimalFromString("0.1")
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	fifth, err := numerics.DecimalFromString("0.2")
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	three, err := numerics.DecimalFromString("0.3")
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	decSum := tenth.Add(fifth)
	decimals.add("decimal 0.1 + 0.2", decSum)
	decimals.add("decimal sum equals 0.3 exactly", decSum.Equal(three))
	sevenths5, err := numerics.DivideAtPrecision(1, 7, 5)
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	sevenths20, err := numerics.DivideAtPrecision(1, 7, 20)
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	decimals.add("1 / 7 at 5 digits", sevenths5)
	decimals.add("1 / 7 at 20 digits", sevenths20)

	rationals := Section{Title: "Exact Rationals"}
	third, err := numerics.NewRat(1, 3)
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	quarter, err := numerics.RatFromString("0.25")
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	rationals.add("rational 1/3", third)
	rationals.add(`rational from "0.25"`, quarter)
	rationals.add("1/3 + 1/4", new(big.Rat).Add(third, quarter))
	exact, err := numerics.RatFromFloat(sum)
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	rationals.add("float 0.1 + 0.2 as an exact rational", exact)
	limited, err := numerics.LimitDenominator(exact, 1_000_000)
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	rationals.add("same value with denominator limited to 10^6", limited)

	conversions := Section{Title: "Type Conversions"}
	conversions.add("int 42 to float64", float64(42))
	conversions.add("int 42 to complex128", complex(float64(42), 0))
	conversions.add("int 42 to bool by the zero test", 42 != 0)
	conversions.add("int 42 to decimal", decimal.NewFromInt(42))
	whole, err := numerics.NewRat(42, 1)
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	conversions.add("int 42 to rational", whole)
	threePointSeven := 3.7
	conversions.add("float to int truncates: int(3.7)", int(threePointSeven))
	pointOne, err := numerics.RatFromFloat(0.1)
	if err != nil {
		return nil, fmt.Errorf("number facts: %w", err)
	}
	conversions.add("exact rational behind the float 0.1", pointOne)

	mathFns := Section{Title: "Math Functions"}
	mathFns.add("square root of 16", math.Sqrt(16))
	mathFns.add("pi", math.Pi)
	mathFns.add("e", math.E)
	mathFns.add("floor of 3.7", math.Floor(3.7))
	mathFns.add("ceiling of 3.7", math.Ceil(3.7))
	mathFns.add("factorial of 5", numerics.Factorial(5))
	mathFns.add("gcd of 48 and 18", numerics.GCD(48, 18))

	coercion := Section{Title: "Mixed-Type Arithmetic"}
	coercion.add("ladder", "bool → int → float64 → complex128, each step explicit in Go")
	coercion.add("true + 2", numerics.BoolToInt(true)+2)
	coercion.add("3 + 4.5", 3 + 4.5)
	coercion.add("(3+4i) + 2", complex(3, 4)+2)

	limits := Section{Title: "Limits and Special Values"}
	limits.add("positive infinity", math.Inf(1))
	limits.add("negative infinity", math.Inf(-1))
	limits.add("NaN", math.NaN())
	limits.add("NaN == NaN", math.NaN() == math.NaN())
	limits.add("maximum float64", math.MaxFloat64)
	limits.add("smallest positive float64", math.SmallestNonzeroFloat64)
	limits.add("machine epsilon", numerics.MachineEpsilon)

	return []Section{
		integers, floats, complexes, bools, decimals,
		rationals, conversions, mathFns, coercion, limits,
	}, nil
}
