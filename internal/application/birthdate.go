package application

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseBirthDate parses a "D/M/YYYY" birth date: day, month and year
// separated by "/", exactly three segments. Components are not
// range-checked; out-of-range values roll over via time.Date (month 13
// of 2002 becomes January 2003), matching the behavior of the clients
// this API was built for.
func ParseBirthDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: birth date is required", ErrValidation)
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: birth date must be DD/MM/YYYY", ErrValidation)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birth date must be DD/MM/YYYY", ErrValidation)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birth date must be DD/MM/YYYY", ErrValidation)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birth date must be DD/MM/YYYY", ErrValidation)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
