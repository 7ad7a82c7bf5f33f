package numerics

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadix(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want RadixForms
	}{
		{"the answer", 42, RadixForms{Decimal: "42", Binary: "0b101010", Octal: "0o52", Hex: "0x2a"}},
		{"binary literal value", 0b1010, RadixForms{Decimal: "10", Binary: "0b1010", Octal: "0o12", Hex: "0xa"}},
		{"zero", 0, RadixForms{Decimal: "0", Binary: "0b0", Octal: "0o0", Hex: "0x0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Radix(tt.n))
		})
	}

	t.Run("literal bases agree", func(t *testing.T) {
		assert.EqualValues(t, 42, 0o52)
		assert.EqualValues(t, 42, 0x2A)
		assert.EqualValues(t, 10, 0b1010)
	})
}

func TestPowInt(t *testing.T) {
	got := PowInt(10, 20)
	want, ok := new(big.Int).SetString("100000000000000000000", 10)
	require.True(t, ok)
	assert.Zero(t, got.Cmp(want))

	// past int64 range, still exact
	assert.Equal(t, 1, PowInt(2, 64).Cmp(big.NewInt(math.MaxInt64)))
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{0, 1}, {1, 1}, {5, 120}, {10, 3628800},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Factorial(tt.n).Int64())
	}
}

func TestGCD(t *testing.T) {
	assert.EqualValues(t, 6, GCD(48, 18))
	assert.EqualValues(t, 6, GCD(-48, 18))
	assert.EqualValues(t, 7, GCD(7, 0))
}

func TestFloatArtifacts(t *testing.T) {
	sum := 0.1 + 0.2

	t.Run("not bit-equal to 0.3", func(t *testing.T) {
		assert.False(t, sum == 0.3)
	})

	t.Run("within machine epsilon of 0.3", func(t *testing.T) {
		assert.True(t, AlmostEqual(sum, 0.3, MachineEpsilon))
		assert.False(t, AlmostEqual(sum, 0.4, MachineEpsilon))
	})

	t.Run("hex float of 0.1 shows the binary approximation", func(t *testing.T) {
		assert.Equal(t, "0x1.999999999999ap-04", HexFloat(0.1))
	})

	t.Run("scientific notation", func(t *testing.T) {
		assert.Equal(t, "3.14e+10", Scientific(3.14e10))
	})
}

func TestMachineEpsilon(t *testing.T) {
	assert.Equal(t, math.Pow(2, -52), MachineEpsilon)
	assert.NotEqual(t, 1.0, 1.0+MachineEpsilon)
}

func TestComplexHelpers(t *testing.T) {
	z := complex(3, 4)
	assert.Equal(t, 5.0, Magnitude(z))
	assert.Equal(t, complex(3, -4), Conjugate(z))
	assert.InDelta(t, math.Atan2(4, 3), Phase(z), 1e-15)
}

func TestBoolToInt(t *testing.T) {
	assert.Equal(t, 1, BoolToInt(true))
	assert.Equal(t, 0, BoolToInt(false))
	assert.Equal(t, 3, BoolToInt(true)+2)
	assert.Equal(t, 5, BoolToInt(true)*5)
	assert.Equal(t, 0, BoolToInt(false)*5)
}

func TestDecimal(t *testing.T) {
	t.Run("0.1 + 0.2 is exactly 0.3", func(t *testing.T) {
		a, err := DecimalFromString("0.1")
		require.NoError(t, err)
		b, err := DecimalFromString("0.2")
		require.NoError(t, err)
		c, err := DecimalFromString("0.3")
		require.NoError(t, err)
		assert.True(t, a.Add(b).Equal(c))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := DecimalFromString("not a number")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("precision retains digits", func(t *testing.T) {
		at5, err := DivideAtPrecision(1, 7, 5)
		require.NoError(t, err)
		at20, err := DivideAtPrecision(1, 7, 20)
		require.NoError(t, err)
		assert.Equal(t, "0.14286", at5.String())
		assert.Equal(t, "0.14285714285714285714", at20.String())
		assert.False(t, at5.Equal(at20))
	})

	t.Run("zero divisor", func(t *testing.T) {
		_, err := DivideAtPrecision(1, 0, 5)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRationals(t *testing.T) {
	t.Run("from decimal string", func(t *testing.T) {
		r, err := RatFromString("0.25")
		require.NoError(t, err)
		assert.Zero(t, r.Cmp(big.NewRat(1, 4)))
	})

	t.Run("from fraction string", func(t *testing.T) {
		r, err := RatFromString("7/12")
		require.NoError(t, err)
		assert.Zero(t, r.Cmp(big.NewRat(7, 12)))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := RatFromString("one quarter")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("zero denominator", func(t *testing.T) {
		_, err := NewRat(1, 0)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("exact arithmetic", func(t *testing.T) {
		third, err := NewRat(1, 3)
		require.NoError(t, err)
		quarter, err := NewRat(1, 4)
		require.NoError(t, err)
		sum := new(big.Rat).Add(third, quarter)
		assert.Zero(t, sum.Cmp(big.NewRat(7, 12)))
	})

	t.Run("from float is the binary value, not the literal", func(t *testing.T) {
		r, err := RatFromFloat(0.1 + 0.2)
		require.NoError(t, err)
		assert.NotZero(t, r.Cmp(big.NewRat(3, 10)))
		f, exact := r.Float64()
		assert.True(t, exact)
		assert.Equal(t, 0.1+0.2, f)
	})

	t.Run("rejects non-finite floats", func(t *testing.T) {
		_, err := RatFromFloat(math.Inf(1))
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = RatFromFloat(math.NaN())
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestLimitDenominator(t *testing.T) {
	t.Run("recovers 3/10 from the float artifact", func(t *testing.T) {
		exact, err := RatFromFloat(0.1 + 0.2)
		require.NoError(t, err)
		limited, err := LimitDenominator(exact, 1_000_000)
		require.NoError(t, err)
		assert.Zero(t, limited.Cmp(big.NewRat(3, 10)))
	})

	t.Run("pi convergents", func(t *testing.T) {
		pi, err := RatFromFloat(math.Pi)
		require.NoError(t, err)

		tests := []struct {
			maxDen int64
			want   *big.Rat
		}{
			{10, big.NewRat(22, 7)},
			{100, big.NewRat(311, 99)},
			{1000, big.NewRat(355, 113)},
		}
		for _, tt := range tests {
			got, err := LimitDenominator(pi, tt.maxDen)
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(tt.want), "maxDen=%d got=%s", tt.maxDen, got.RatString())
		}
	})

	t.Run("already under the limit is returned unchanged", func(t *testing.T) {
		r := big.NewRat(1, 3)
		got, err := LimitDenominator(r, 10)
		require.NoError(t, err)
		assert.Zero(t, got.Cmp(r))
		got.Num().SetInt64(5) // result must be a copy
		assert.Zero(t, r.Cmp(big.NewRat(1, 3)))
	})

	t.Run("negative values keep their sign", func(t *testing.T) {
		exact, err := RatFromFloat(-(0.1 + 0.2))
		require.NoError(t, err)
		limited, err := LimitDenominator(exact, 1_000_000)
		require.NoError(t, err)
		assert.Zero(t, limited.Cmp(big.NewRat(-3, 10)))
	})

	t.Run("limit below 1 is invalid", func(t *testing.T) {
		_, err := LimitDenominator(big.NewRat(1, 3), 0)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
