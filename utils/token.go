package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// GenerateSecureToken returns 2*length hex characters from crypto/rand.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateBookingRef builds "BK" + YYYYMMDDHHMMSS + 6 upper-case hex chars.
func GenerateBookingRef(now time.Time) (string, error) {
	suffix, err := GenerateSecureToken(3)
	if err != nil {
		return "", err
	}
	return "BK" + now.Format("20060102150405") + strings.ToUpper(suffix), nil
}
