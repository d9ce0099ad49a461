package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureToken(t *testing.T) {
	tok, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.Len(t, tok, 32)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestGenerateBookingRef(t *testing.T) {
	now := time.Date(2024, 7, 1, 13, 4, 5, 0, time.UTC)

	ref, err := GenerateBookingRef(now)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BK20240701130405[0-9A-F]{6}$`), ref)

	other, err := GenerateBookingRef(now)
	require.NoError(t, err)
	assert.NotEqual(t, ref, other)
}
