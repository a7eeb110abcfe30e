package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for stay dates ("2025-12-01").
const DateLayout = "2006-01-02"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// ParseDate parses a YYYY-MM-DD stay date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("date is required")
	}
	return time.Parse(DateLayout, s)
}

// CalculateNights returns the number of nights between two stay dates.
// A same-day or reversed range counts as zero nights.
func CalculateNights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// NewConfirmationNumber produces a short reference like "BK-3F9A21BC".
func NewConfirmationNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK-" + strings.ToUpper(raw[:8])
}
