package sheetsclient

import (
	"fmt"
	"slices"
	"time"
)

const tabDateLayout = "Mon Jan 02 2006"

// TimetableRow is a single lesson in the published timetable
type TimetableRow struct {
	Week     int    // 1-based
	Day      string // e.g. "Monday"
	Date     string // Format: "2006-01-02", empty when the term has no start date
	Group    string
	Subject  string
	Teacher  string
	Semester int
	Hours    int
}

// PublishedTimetable represents the complete published timetable
type PublishedTimetable struct {
	// FirstMonday is week 0's Monday. Nil when the term has no start date.
	FirstMonday *time.Time
	Weeks       int
	RunID       string
	Rows        []TimetableRow
}

var timetableHeader = []interface{}{"Week", "Day", "Date", "Group", "Subject", "Teacher", "Semester", "Hours"}

// valuesWriter is the subset of the client used to publish
type valuesWriter interface {
	SheetTitles(spreadsheetID string) ([]string, error)
	CreateSheet(spreadsheetID, sheetTitle string) (int64, error)
	ClearValues(spreadsheetID, sheetRange string) error
	UpdateValues(spreadsheetID, sheetRange string, values [][]interface{}) error
}

// PublishTimetable writes the timetable to its own tab and returns the tab title.
// A tab from an earlier run of the same term is cleared and overwritten.
func (c *Client) PublishTimetable(spreadsheetID string, timetable *PublishedTimetable) (string, error) {
	return publishTimetable(c, spreadsheetID, timetable)
}

func publishTimetable(w valuesWriter, spreadsheetID string, timetable *PublishedTimetable) (string, error) {
	tabTitle := generateTabTitle(timetable.FirstMonday, timetable.Weeks)

	titles, err := w.SheetTitles(spreadsheetID)
	if err != nil {
		return "", err
	}

	if slices.Contains(titles, tabTitle) {
		if err := w.ClearValues(spreadsheetID, tabTitle); err != nil {
			return "", fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else if _, err := w.CreateSheet(spreadsheetID, tabTitle); err != nil {
		return "", fmt.Errorf("failed to create tab: %w", err)
	}

	if err := w.UpdateValues(spreadsheetID, fmt.Sprintf("%s!A1", tabTitle), timetableValues(timetable)); err != nil {
		return "", fmt.Errorf("failed to write timetable: %w", err)
	}

	return tabTitle, nil
}

// generateTabTitle names the tab after the term, e.g. "Timetable Mon Sep 01 2025 - Fri Jan 02 2026"
func generateTabTitle(firstMonday *time.Time, weeks int) string {
	if firstMonday == nil {
		return fmt.Sprintf("Timetable (%d weeks)", weeks)
	}

	lastFriday := firstMonday.AddDate(0, 0, (weeks-1)*7+4)
	return fmt.Sprintf("Timetable %s - %s", firstMonday.Format(tabDateLayout), lastFriday.Format(tabDateLayout))
}

// timetableValues lays out the tab: a run note on row 1, a blank row, the header on row 3
func timetableValues(timetable *PublishedTimetable) [][]interface{} {
	values := [][]interface{}{
		{fmt.Sprintf("Generated %s (run %s)", time.Now().UTC().Format(time.RFC3339), timetable.RunID)},
		{},
		timetableHeader,
	}

	for _, row := range timetable.Rows {
		values = append(values, []interface{}{
			row.Week, row.Day, row.Date, row.Group, row.Subject, row.Teacher, row.Semester, row.Hours,
		})
	}

	return values
}
