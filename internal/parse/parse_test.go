package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingID(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  string
		expectErr bool
	}{
		{name: "Plain digits", raw: "1234567890123", expected: "1234567890123"},
		{name: "Surrounding spaces", raw: "  1234567890123 \n", expected: "1234567890123"},
		{name: "Grouped citizen id", raw: "1-2345-67890-12-3", expected: "1234567890123"},
		{name: "Grouped with spaces", raw: "1 2345 67890 12 3", expected: "1234567890123"},
		{name: "Non numeric kept as typed", raw: " BK-0042 ", expected: "BK-0042"},
		{name: "Empty", raw: "   ", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BookingID(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestAdmitDate(t *testing.T) {
	testCases := []struct {
		name      string
		day       int
		month     int
		yearBE    int
		expected  time.Time
		expectErr bool
	}{
		{name: "Regular date", day: 14, month: 10, yearBE: 2569, expected: time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)},
		{name: "Leap day", day: 29, month: 2, yearBE: 2567, expected: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{name: "Not a leap year", day: 29, month: 2, yearBE: 2569, expectErr: true},
		{name: "Day 31 in April", day: 31, month: 4, yearBE: 2568, expectErr: true},
		{name: "Month out of range", day: 1, month: 13, yearBE: 2568, expectErr: true},
		{name: "Day zero", day: 0, month: 1, yearBE: 2568, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AdmitDate(tc.day, tc.month, tc.yearBE, nil)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestYearBE(t *testing.T) {
	assert.Equal(t, 2569, YearBE(time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)))
}
