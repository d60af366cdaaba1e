package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFHIRDate(t *testing.T) {
	t.Run("accepts every legal precision", func(t *testing.T) {
		cases := map[string]string{
			"full dateTime": "2024-03-15T10:30:00Z",
			"local":         "2024-03-15T10:30:00",
			"date":          "2024-03-15",
			"year-month":    "2024-03",
			"year":          "2024",
		}
		for name, value := range cases {
			t.Run(name, func(t *testing.T) {
				parsed, ok := ParseFHIRDate(value)
				assert.True(t, ok)
				assert.Equal(t, 2024, parsed.Year())
			})
		}
	})

	t.Run("rejects empty and garbage input", func(t *testing.T) {
		_, ok := ParseFHIRDate("")
		assert.False(t, ok)
		_, ok = ParseFHIRDate("yesterday")
		assert.False(t, ok)
	})
}

func TestAgeAt(t *testing.T) {
	birthDate := time.Date(1976, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("the birthday itself counts as the new age", func(t *testing.T) {
		asOf := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 50, AgeAt(birthDate, asOf))
	})

	t.Run("one day before the birthday is the old age", func(t *testing.T) {
		asOf := time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 49, AgeAt(birthDate, asOf))
	})
}

func TestAddMonths(t *testing.T) {
	base := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC), AddMonths(base, -36))
	assert.Equal(t, time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC), AddMonths(base, 6))
}
