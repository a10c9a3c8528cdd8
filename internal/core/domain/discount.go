package domain

import (
	"errors"
	"fmt"
)

// DiscountCode is static reference data: a code, the minimum gross order
// value (in INR, after conversion) required to use it, and the fraction of
// the gross it takes off.
type DiscountCode struct {
	Code         string
	MinAmountINR float64
	Fraction     float64
}

// DiscountTable maps codes to their definitions. Lookup is an exact,
// case-sensitive string match.
type DiscountTable map[string]DiscountCode

// DefaultDiscountTable returns the built-in promotion codes.
func DefaultDiscountTable() DiscountTable {
	return DiscountTable{
		"10OFF2000": {Code: "10OFF2000", MinAmountINR: 2000, Fraction: 0.10},
		"20OFF5000": {Code: "20OFF5000", MinAmountINR: 5000, Fraction: 0.20},
	}
}

var ErrInvalidDiscountCode = errors.New("invalid discount code")

// DiscountMinimumError reports a valid code applied to a cart whose gross
// total is below the code's minimum. The minimum is carried so the caller
// can surface it.
type DiscountMinimumError struct {
	Code         string
	MinAmountINR float64
}

func (e *DiscountMinimumError) Error() string {
	return fmt.Sprintf("code %s requires a minimum order of %.2f INR", e.Code, e.MinAmountINR)
}
