package errors

import (
	"strconv"
	"strings"
)

// Bounds of the puzzle calendar.
const (
	FirstYear = 2015
	LastDay   = 25
)

// ParseYear parses and validates a puzzle year argument.
// Years before the first event are rejected; the upper bound is left to
// the caller, which knows the current date.
func ParseYear(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidArgument, "year must be a number, got %q", s)
	}
	if err := ValidateYear(y); err != nil {
		return 0, err
	}
	return y, nil
}

// ValidateYear rejects years before the first event.
func ValidateYear(year int) error {
	if year < FirstYear {
		return New(ErrCodeInvalidArgument, "year %d is before the first event (%d)", year, FirstYear)
	}
	return nil
}

// ParseDay parses and validates a day argument (1-25).
func ParseDay(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidArgument, "day must be a number, got %q", s)
	}
	if err := ValidateDay(d); err != nil {
		return 0, err
	}
	return d, nil
}

// ValidateDay checks 1 <= day <= 25.
func ValidateDay(day int) error {
	if day < 1 || day > LastDay {
		return New(ErrCodeInvalidArgument, "day must be between 1 and %d, got %d", LastDay, day)
	}
	return nil
}

// ParsePart parses and validates a part argument (1 or 2).
func ParsePart(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidArgument, "part must be a number, got %q", s)
	}
	if err := ValidatePart(p); err != nil {
		return 0, err
	}
	return p, nil
}

// ValidatePart checks part is 1 or 2.
func ValidatePart(part int) error {
	if part != 1 && part != 2 {
		return New(ErrCodeInvalidArgument, "part must be 1 or 2, got %d", part)
	}
	return nil
}

// ValidateSession checks that a session token looks like the hex cookie
// value the puzzle site issues.
func ValidateSession(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return New(ErrCodeUnauthorized, "session token is empty")
	}
	if len(token) < 32 {
		return New(ErrCodeUnauthorized, "session token too short")
	}
	for _, r := range token {
		if !isHex(r) {
			return New(ErrCodeUnauthorized, "session token must be hexadecimal")
		}
	}
	return nil
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
