package utils

import (
	"time"
)

// fhirDateLayouts covers the precisions a FHIR date/dateTime may arrive in.
// Sources routinely truncate to year or year-month.
var fhirDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseFHIRDate parses a FHIR date or dateTime string at any of its legal
// precisions. The boolean is false when the string is empty or unparseable.
func ParseFHIRDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range fhirDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AgeAt returns the age in whole years at the given reference date. A patient
// turning N exactly on the reference date is N.
func AgeAt(birthDate, asOf time.Time) int {
	years := asOf.Year() - birthDate.Year()
	anniversary := time.Date(asOf.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if asOf.Before(anniversary) {
		years--
	}
	return years
}

// AddMonths advances a date by a whole number of months, normalizing
// month-end overflow the way time.AddDate does.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}
