package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, ParseDuration("30s"))
	assert.Equal(t, 5*time.Minute, ParseDuration(""))
	assert.Equal(t, 5*time.Minute, ParseDuration("soon"))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, 42, ParseValue(" 42 "))
	assert.Equal(t, 22.5, ParseValue("22.5"))
	assert.Equal(t, true, ParseValue("TRUE"))
	assert.Equal(t, false, ParseValue("false"))
	assert.Equal(t, "hello", ParseValue("hello"))
}

func TestNumeric(t *testing.T) {
	assert.Equal(t, 1.0, Numeric(1))
	assert.Equal(t, 2.5, Numeric(2.5))
	assert.Equal(t, 3.0, Numeric(int64(3)))
	assert.Equal(t, 4.0, Numeric(int32(4)))
	assert.Equal(t, 0.0, Numeric("nope"))
	assert.Equal(t, 0.0, Numeric(nil))
}
