package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/term-timetable/pkg/clients/sheetsclient"
	"github.com/jakechorley/term-timetable/pkg/core/allocator"
	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// TimetablePublisher writes a timetable to a spreadsheet and returns the tab it wrote
type TimetablePublisher interface {
	PublishTimetable(spreadsheetID string, timetable *sheetsclient.PublishedTimetable) (string, error)
}

// PublishSchedule writes the generated schedule to the timetable spreadsheet
func PublishSchedule(result *GenerateScheduleResult, publisher TimetablePublisher, spreadsheetID string, logger *zap.Logger) (string, error) {
	if spreadsheetID == "" {
		return "", fmt.Errorf("timetableSheetID is not configured")
	}

	timetable := BuildPublishedTimetable(result)
	logger.Debug("Publishing timetable",
		zap.String("run_id", result.RunID),
		zap.Int("rows", len(timetable.Rows)))

	tab, err := publisher.PublishTimetable(spreadsheetID, timetable)
	if err != nil {
		return "", fmt.Errorf("failed to publish timetable: %w", err)
	}

	logger.Info("Timetable published", zap.String("run_id", result.RunID), zap.String("tab", tab))
	return tab, nil
}

// BuildPublishedTimetable flattens the schedule into one row per lesson
func BuildPublishedTimetable(result *GenerateScheduleResult) *sheetsclient.PublishedTimetable {
	timetable := &sheetsclient.PublishedTimetable{
		Weeks: result.WeeksPerSemester,
		RunID: result.RunID,
		Rows:  []sheetsclient.TimetableRow{},
	}

	if result.Calendar != nil {
		firstMonday := result.Calendar.FirstMonday()
		timetable.FirstMonday = &firstMonday
	}

	result.Outcome.Schedule.Each(func(day model.TermDay, group string, lesson allocator.Lesson) {
		timetable.Rows = append(timetable.Rows, sheetsclient.TimetableRow{
			Week:     day.Week + 1,
			Day:      day.Day.String(),
			Date:     FormatDate(result.Calendar, day),
			Group:    group,
			Subject:  lesson.Subject,
			Teacher:  lesson.Teacher,
			Semester: lesson.Semester,
			Hours:    lesson.Hours,
		})
	})

	return timetable
}

// FormatDate returns the calendar date of a term day, or "" without a calendar
func FormatDate(calendar *model.TermCalendar, day model.TermDay) string {
	if calendar == nil {
		return ""
	}
	return calendar.Date(day).Format(time.DateOnly)
}
