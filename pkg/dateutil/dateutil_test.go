package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAge(t *testing.T) {
	tests := []struct {
		name        string
		birthDate   time.Time
		atDate      time.Time
		expectedAge int
	}{
		{
			name:        "Same month and day",
			birthDate:   time.Date(1990, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 35,
		},
		{
			name:        "Day before birthday",
			birthDate:   time.Date(1990, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC),
			expectedAge: 34,
		},
		{
			name:        "Month after birthday",
			birthDate:   time.Date(1990, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedAge: 35,
		},
		{
			name:        "Leap day birth checked on Feb 28",
			birthDate:   time.Date(1988, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			expectedAge: 36,
		},
		{
			name:        "Leap day birth checked on Mar 1",
			birthDate:   time.Date(1988, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedAge: 37,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedAge, Age(tt.birthDate, tt.atDate))
		})
	}
}

func TestAddYears(t *testing.T) {
	birth := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2057, 6, 15, 0, 0, 0, 0, time.UTC), AddYears(birth, 67))

	leap := time.Date(1988, 2, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), AddYears(leap, 37))
	assert.Equal(t, 67, Age(birth, AddYears(birth, 67)))
}
