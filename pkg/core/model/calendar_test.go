package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTermCalendar_StartsOnMonday(t *testing.T) {
	// 2025-09-03 is a Wednesday
	cal := NewTermCalendar(date(2025, time.September, 3))

	assert.Equal(t, date(2025, time.September, 1), cal.FirstMonday())
	assert.Equal(t, date(2025, time.September, 1), cal.Date(TermDay{Week: 0, Day: Monday}))
	assert.Equal(t, date(2025, time.October, 10), cal.Date(TermDay{Week: 5, Day: Friday}))
}

func TestTermCalendar_Locate(t *testing.T) {
	cal := NewTermCalendar(date(2025, time.September, 1))

	td, ok := cal.Locate(date(2025, time.September, 17))
	require.True(t, ok)
	assert.Equal(t, TermDay{Week: 2, Day: Wednesday}, td)

	_, ok = cal.Locate(date(2025, time.September, 6))
	assert.False(t, ok, "saturday is not a term day")

	_, ok = cal.Locate(date(2025, time.August, 29))
	assert.False(t, ok, "dates before the term are not term days")
}

func TestTermCalendar_RoundTrip(t *testing.T) {
	cal := NewTermCalendar(date(2026, time.February, 2))

	for week := 0; week < 18; week++ {
		for day := Monday; day <= Friday; day++ {
			td := TermDay{Week: week, Day: day}
			got, ok := cal.Locate(cal.Date(td))
			require.True(t, ok)
			assert.Equal(t, td, got)
		}
	}
}
