package numerics

import (
	"math"
	"strconv"
)

// MachineEpsilon is the gap between 1.0 and the next representable float64,
// 2^-52.
var MachineEpsilon = math.Nextafter(1, 2) - 1

// AlmostEqual reports whether a and b differ by at most eps. Bit equality is
// the wrong comparison for accumulated float sums; this is the one the facts
// use to show that 0.1+0.2 is near, but not exactly, 0.3.
func AlmostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// HexFloat renders f in hexadecimal floating-point notation (%x), exposing
// the exact bits behind a decimal literal such as 0.1.
func HexFloat(f float64) string {
	return strconv.FormatFloat(f, 'x', -1, 64)
}

// Scientific renders f in scientific notation with the shortest exact
// mantissa.
func Scientific(f float64) string {
	return strconv.FormatFloat(f, 'e', -1, 64)
}
