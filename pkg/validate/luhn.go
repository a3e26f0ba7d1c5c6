package validate

import (
	"math/rand/v2"
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NewRideNumber returns a random 11 digit number whose last digit is the
// Luhn check digit.
func NewRideNumber() (string, error) {
	base := strconv.FormatInt(1_000_000_000+rand.Int64N(9_000_000_000), 10)
	_, number, err := goluhn.Calculate(base)
	if err != nil {
		return "", err
	}
	return number, nil
}
