// Package age holds age classification rules.
package age

import (
	"math"

	"github.com/VladPetriv/category_manager/pkg/errs"
)

// AdultAge is the age from which a person is considered adult.
const AdultAge = 18

var (
	// ErrNegativeAge happens when age is lower than zero.
	ErrNegativeAge = errs.New("age can't be negative")
	// ErrInvalidAge happens when age is not a number.
	ErrInvalidAge = errs.New("age is not a number")
)

// IsAdult reports whether age is at least AdultAge.
func IsAdult(age float64) (bool, error) {
	if math.IsNaN(age) {
		return false, ErrInvalidAge
	}
	if age < 0 {
		return false, ErrNegativeAge
	}

	return age >= AdultAge, nil
}
