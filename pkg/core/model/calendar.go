package model

import "time"

// TermCalendar maps term days to calendar dates.
// Week 0 starts on the Monday of the week containing the term start.
type TermCalendar struct {
	firstMonday time.Time
}

func NewTermCalendar(termStart time.Time) *TermCalendar {
	y, m, d := termStart.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	// time.Weekday is Sunday based
	offset := (int(start.Weekday()) + 6) % 7
	return &TermCalendar{firstMonday: start.AddDate(0, 0, -offset)}
}

// FirstMonday returns the date of week 0, Monday
func (c *TermCalendar) FirstMonday() time.Time {
	return c.firstMonday
}

// Date returns the calendar date of a term day
func (c *TermCalendar) Date(td TermDay) time.Time {
	return c.firstMonday.AddDate(0, 0, td.Week*7+int(td.Day))
}

// Locate returns the term day a date falls on.
// Returns false for weekends and dates before week 0.
func (c *TermCalendar) Locate(date time.Time) (TermDay, bool) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if day.Before(c.firstMonday) {
		return TermDay{}, false
	}

	days := int(day.Sub(c.firstMonday).Hours() / 24)
	weekday := days % 7
	if weekday >= DaysPerWeek {
		return TermDay{}, false
	}
	return TermDay{Week: days / 7, Day: Weekday(weekday)}, true
}
