package validation

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the wire format for due dates.
const DateLayout = "2006-01-02"

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinMaxLength checks if a trimmed string does not exceed max
// characters. Characters are counted as code points, matching the
// maxLength semantics of the snapshot schema.
func (v *Validator) IsWithinMaxLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func (v *Validator) ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// IsPastDate reports whether the given calendar date is strictly before
// today. Time-of-day is ignored on both sides.
func (v *Validator) IsPastDate(date time.Time) bool {
	now := timeNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
