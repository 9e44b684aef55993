package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateNumericOTP generates a random numeric OTP of the specified length.
// Each digit is drawn uniformly from 0-9, leading zeros included, so a
// 6-digit code covers the full "000000".."999999" range.
func GenerateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	buf := make([]byte, 1)
	for i := 0; i < length; i++ {
		// Rejection-sample so bytes 250-255 don't bias the low digits.
		for {
			if _, err := rand.Read(buf); err != nil {
				return "", fmt.Errorf("failed to generate random bytes: %w", err)
			}
			if buf[0] < 250 {
				break
			}
		}
		digits[i] = '0' + buf[0]%10
	}
	return string(digits), nil
}
