// ABOUTME: This file provides calendar date validation and formatting
// ABOUTME: All document dates use the ISO YYYY-MM-DD form

package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for document dates.
const DateLayout = "2006-01-02"

// ValidateDate checks that s is a well-formed, real calendar date in
// YYYY-MM-DD form. Dates like "2023-02-29" are rejected.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	return nil
}

// FormatDate renders t as a document date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// PreviousDay returns the document date for the day before t, the date an
// ingestion cycle pulls by default.
func PreviousDay(t time.Time) string {
	return FormatDate(t.UTC().AddDate(0, 0, -1))
}
