package utils

import (
	"strconv"
	"strings"
	"time"
)

// defaultTimeout bounds a run when the spec gives no usable duration.
const defaultTimeout = 5 * time.Minute

// ParseDuration parses a duration string like "5m", falling back to the
// default timeout for empty or invalid input.
func ParseDuration(d string) time.Duration {
	if d == "" {
		return defaultTimeout
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return defaultTimeout
	}
	return duration
}

// ParseValue coerces a raw cell to int, float, or bool, leaving anything
// else a string.
func ParseValue(s string) any {
	s = strings.TrimSpace(s)

	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// Numeric converts the types ParseValue and JSON decoding can produce to
// float64. Anything else counts as zero.
func Numeric(v any) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case float32:
		return float64(val)
	case float64:
		return val
	default:
		return 0
	}
}
