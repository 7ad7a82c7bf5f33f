// Package facts builds the ordered sections of labeled values the
// demonstrator prints: one battery for set algebra, one for numeric type
// behavior. All inputs are literals, so a battery always produces the same
// sections in the same order with the same rendered values.
package facts

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"numfacts/internal/set"
)

// Fact is a labeled computed value. Value is rendered by Render; sets render
// sorted so output is stable across runs.
type Fact struct {
	Label string
	Value any
}

// Render returns the display text for the fact's value.
func (f Fact) Render() string {
	return formatValue(f.Value)
}

// Section is an ordered group of facts under a heading. Ordering is for
// display only.
type Section struct {
	Title string
	Facts []Fact
}

func (s *Section) add(label string, value any) {
	s.Facts = append(s.Facts, Fact{Label: label, Value: value})
}

func formatValue(v any) string {
	switch x := v.(type) {
	case set.Set[int]:
		return set.Format(x)
	case set.Frozen[int]:
		return set.FormatFrozen(x)
	case *big.Int:
		return x.String()
	case *big.Rat:
		return x.RatString()
	case decimal.Decimal:
		return x.String()
	case complex128:
		return fmt.Sprintf("%v", x)
	case float64:
		return fmt.Sprintf("%v", x)
	case bool:
		return fmt.Sprintf("%t", x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
