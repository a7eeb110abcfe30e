package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateNights(t *testing.T) {
	in, err := ParseDate("2025-12-01")
	require.NoError(t, err)
	out, err := ParseDate("2025-12-05")
	require.NoError(t, err)

	assert.Equal(t, 4, CalculateNights(in, out))
	assert.Equal(t, 0, CalculateNights(in, in), "same day is zero nights")
	assert.Equal(t, 0, CalculateNights(out, in), "reversed range is zero nights")
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2025-12-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("12/01/2025")
	assert.Error(t, err)
}

func TestNewConfirmationNumber(t *testing.T) {
	re := regexp.MustCompile(`^BK-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := NewConfirmationNumber()
		assert.Regexp(t, re, ref)
		assert.False(t, seen[ref], "confirmation numbers should not repeat: %s", ref)
		seen[ref] = true
	}
}
