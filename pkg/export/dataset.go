package export

import (
	"strconv"
	"time"

	"github.com/jakechorley/term-timetable/pkg/core/allocator"
	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Column names of a schedule dataset
const (
	ColumnWeek     = "Week"
	ColumnDay      = "Day"
	ColumnDate     = "Date"
	ColumnGroup    = "Group"
	ColumnSubject  = "Subject"
	ColumnTeacher  = "Teacher"
	ColumnSemester = "Semester"
	ColumnHours    = "Hours"
)

// ScheduleDataset flattens a schedule into one row per lesson.
// The Date column is only present when a calendar is given.
func ScheduleDataset(schedule *allocator.Schedule, calendar *model.TermCalendar) Dataset {
	headers := []string{ColumnWeek, ColumnDay}
	if calendar != nil {
		headers = append(headers, ColumnDate)
	}
	headers = append(headers, ColumnGroup, ColumnSubject, ColumnTeacher, ColumnSemester, ColumnHours)

	data := Dataset{Headers: headers, Rows: []map[string]string{}}

	schedule.Each(func(day model.TermDay, group string, lesson allocator.Lesson) {
		row := map[string]string{
			ColumnWeek:     strconv.Itoa(day.Week + 1),
			ColumnDay:      day.Day.String(),
			ColumnGroup:    group,
			ColumnSubject:  lesson.Subject,
			ColumnTeacher:  lesson.Teacher,
			ColumnSemester: strconv.Itoa(lesson.Semester),
			ColumnHours:    strconv.Itoa(lesson.Hours),
		}
		if calendar != nil {
			row[ColumnDate] = calendar.Date(day).Format(time.DateOnly)
		}
		data.Rows = append(data.Rows, row)
	})

	return data
}

// ShortfallDataset lists the subjects that did not receive all of their hours
func ShortfallDataset(shortfalls []allocator.Shortfall) Dataset {
	data := Dataset{
		Headers: []string{ColumnGroup, ColumnSubject, ColumnSemester, "Scheduled", "Total", "Reason"},
		Rows:    make([]map[string]string, 0, len(shortfalls)),
	}
	for _, s := range shortfalls {
		data.Rows = append(data.Rows, map[string]string{
			ColumnGroup:    s.Group,
			ColumnSubject:  s.Subject,
			ColumnSemester: strconv.Itoa(s.Semester),
			"Scheduled":    strconv.Itoa(s.ScheduledHours),
			"Total":        strconv.Itoa(s.TotalHours),
			"Reason":       string(s.Reason),
		})
	}
	return data
}
