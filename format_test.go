package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-1, "-1"},
		{1234567890, "1234567890"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, string(appendInt(nil, tt.in)))
	}
}

func TestAppendUint(t *testing.T) {
	assert.Equal(t, "0", string(appendUint(nil, 0)))
	assert.Equal(t, "18446744073709551615", string(appendUint(nil, math.MaxUint64)))
}

func TestAppendFloatTruncate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100.0, "100"},           // whole numbers carry no fraction
		{99993.12345, "99993.1"}, // one digit, truncated not rounded
		{2.99, "2.9"},
		{0.01234, "0.0"}, // above epsilon, first digit is zero
		{1.00001, "1"},   // below epsilon, fraction dropped
		{-1.5, "-1.5"},
		{-0.25, "-0.2"}, // sign survives a zero integer part
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, string(appendFloatTruncate(nil, tt.in)), "input %v", tt.in)
	}
}

func TestAppendFloatPrecise(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100.0, "100"},
		{99993.0, "99993"},
		{0.1, "0.1"},
		{99993.12345, "99993.12345"},
		{-42.5, "-42.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, string(appendFloatPrecise(nil, tt.in)), "input %v", tt.in)
	}
}

func TestAppendFloatDispatch(t *testing.T) {
	assert.Equal(t, "2.99", string(appendFloat(nil, 2.99, FloatPrecise)))
	assert.Equal(t, "2.9", string(appendFloat(nil, 2.99, FloatTruncate)))
}
