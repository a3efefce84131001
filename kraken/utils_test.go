package kraken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{1.0, 2, "1.00"},
		{0.1, 8, "0.10000000"},
		{123.456, 0, "123"},
		{123.456, 2, "123.46"},
		// rounding is half away from zero
		{0.125, 2, "0.13"},
		{-0.125, 2, "-0.13"},
		{37500, 1, "37500.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDecimal(tt.value, tt.precision), "FormatDecimal(%v, %d)", tt.value, tt.precision)
	}
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.5, toFloat(1.5))
	assert.Equal(t, 1.5, toFloat("1.5"))
	assert.Equal(t, 0.0, toFloat(nil))
}
