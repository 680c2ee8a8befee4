package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	separatorRe = regexp.MustCompile(`[\s\-]+`)
	digitsRe    = regexp.MustCompile(`^[0-9]+$`)
)

// buddhistEraOffset converts between Buddhist Era and Common Era years.
const buddhistEraOffset = 543

// BookingID normalizes a booking number typed by a visitor. Surrounding
// whitespace is dropped, and so are the spaces and hyphens people use to
// group the digits of a citizen id ("1-2345-67890-12-3").
func BookingID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("booking id is empty")
	}
	if digitsRe.MatchString(separatorRe.ReplaceAllString(s, "")) {
		s = separatorRe.ReplaceAllString(s, "")
	}
	return s, nil
}

// AdmitDate builds the admission date from the form's day, month and
// Buddhist Era year. Dates that do not exist, like 31 April, are rejected.
func AdmitDate(day, month, yearBE int, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month %d", month)
	}
	year := yearBE - buddhistEraOffset
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date %d/%d/%d", day, month, yearBE)
	}
	return d, nil
}

// YearBE returns the Buddhist Era year of t.
func YearBE(t time.Time) int {
	return t.Year() + buddhistEraOffset
}
