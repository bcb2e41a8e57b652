package scenario

import (
	"testing"
	"time"
)

func TestNextHourETA(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		locale   string
		expected string
	}{
		{
			name:     "mid-hour rounds up, US locale",
			now:      time.Date(2025, 3, 10, 14, 25, 0, 0, time.UTC),
			locale:   "en-US",
			expected: "03:00 PM",
		},
		{
			name:     "top of hour still advances",
			now:      time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
			locale:   "en-US",
			expected: "03:00 PM",
		},
		{
			name:     "24-hour clock for German",
			now:      time.Date(2025, 3, 10, 14, 25, 0, 0, time.UTC),
			locale:   "de-DE",
			expected: "15:00",
		},
		{
			name:     "midnight rollover",
			now:      time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC),
			locale:   "de-DE",
			expected: "00:00",
		},
		{
			name:     "garbage locale falls back to English",
			now:      time.Date(2025, 3, 10, 8, 5, 0, 0, time.UTC),
			locale:   "???",
			expected: "09:00 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextHourETA(tt.now, tt.locale); got != tt.expected {
				t.Errorf("NextHourETA(%v, %q) = %q; want %q", tt.now, tt.locale, got, tt.expected)
			}
		})
	}
}
