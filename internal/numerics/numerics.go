// Package numerics implements the numeric computations behind the number
// facts: radix renderings, big integers, floating-point artifacts, complex
// helpers, fixed-precision decimal division and exact rational arithmetic.
//
// Everything here is deterministic. The only failure mode is an invalid
// argument (a zero denominator, a non-finite float where a rational is
// wanted), reported via ErrInvalidArgument.
package numerics

import "errors"

// ErrInvalidArgument marks a division-like operation given an argument it
// cannot accept, such as a zero denominator.
var ErrInvalidArgument = errors.New("numerics: invalid argument")

// BoolToInt makes Go's bool-to-integer coercion explicit: true is 1 and
// false is 0, so BoolToInt(true)+2 == 3.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
