package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpSpace is the number of distinct 6-digit codes (000000–999999).
var otpSpace = big.NewInt(1000000)

// GenerateOtp returns a uniformly random 6-digit one-time code rendered as
// a fixed-width decimal string. Leading zeros are preserved: "000000" and
// "999999" are both valid outputs.
//
// The code is drawn from crypto/rand; an error is returned only if the
// system randomness source fails.
func GenerateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return "", fmt.Errorf("error generating one-time code: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
