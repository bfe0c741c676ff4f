package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateNumericCode produces a zero-padded random numeric code of the
// given length, suitable for one-time verification codes
func GenerateNumericCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n), nil
}
