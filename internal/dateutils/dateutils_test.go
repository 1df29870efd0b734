package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	clock := FixedClock(time.Date(2023, time.April, 5, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "04/05/2023", Today(clock))

	clock = FixedClock(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "12/31/2024", Today(clock))
}

func TestTodayNilClockUsesSystemTime(t *testing.T) {
	expected := time.Now().Format(DateLayoutUS)
	assert.Equal(t, expected, Today(nil))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2023, time.January, 15, 8, 30, 0, 0, time.UTC)
	clock := FixedClock(at)

	assert.Equal(t, at, clock())
	assert.Equal(t, at, clock(), "fixed clock never advances")
}

func TestCleanDateString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  04/05/2023  ", "04/05/2023"},
		{"March   5,  2023", "March 5, 2023"},
		{"2023-11-02", "2023-11-02"},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, CleanDateString(tc.input))
	}
}
