package scrape

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Day
	}{
		{"monday", time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC), Monday},
		{"thursday", time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC), Thursday},
		{"saturday", time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC), Saturday},
		{"sunday", time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC), Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayOf(tt.date))
		})
	}
}

func TestDayForms(t *testing.T) {
	assert.Equal(t, "Torstai", Thursday.Name())
	assert.Equal(t, "torstai", Thursday.lower())
	assert.Equal(t, "TORSTAI", Thursday.upper())
	assert.Equal(t, "torstaisin", Thursday.adessive())
	assert.Equal(t, "keskiviikkoisin", Wednesday.adessive())
}

func TestDayWeekend(t *testing.T) {
	assert.False(t, Friday.Weekend())
	assert.True(t, Saturday.Weekend())
	assert.True(t, Sunday.Weekend())
}

func TestIsOtherWeekday(t *testing.T) {
	tests := []struct {
		name string
		text string
		day  Day
		want bool
	}{
		{"another weekday", "perjantai", Thursday, true},
		{"same day", "torstai", Thursday, false},
		{"weekend name never bounds", "lauantai", Thursday, false},
		{"substring is not a match", "perjantain erikoinen", Thursday, false},
		{"unrelated text", "keittolounas", Thursday, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isOtherWeekday(tt.text, tt.day))
		})
	}
}
