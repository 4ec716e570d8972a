package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:05", 545},
		{"14:00", 840},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, in := range []string{"", "14", "24:00", "12:60", "ab:cd", "12:5x", "-1:00"} {
		_, err := ParseClock(in)

		var fErr *FormatError
		assert.ErrorAs(t, err, &fErr, "input %q", in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "14:30", FormatClock(870))
	// wraps past midnight, single-day model
	assert.Equal(t, "01:30", FormatClock(24*60+90))
}

func TestEndTime(t *testing.T) {
	end, err := EndTime("14:00", 120)
	require.NoError(t, err)
	assert.Equal(t, "16:00", end)

	end, err = EndTime("23:00", 90)
	require.NoError(t, err)
	assert.Equal(t, "00:30", end)

	_, err = EndTime("bogus", 90)
	require.Error(t, err)
}
