package export

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/jakechorley/term-timetable/pkg/core/allocator"
	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// TextRenderer prints a schedule for reading in a terminal
type TextRenderer struct {
	// Calendar adds the date next to each day name when set
	Calendar *model.TermCalendar
}

func NewTextRenderer(calendar *model.TermCalendar) *TextRenderer {
	return &TextRenderer{Calendar: calendar}
}

// Render writes every week, day and group in schedule order.
// Groups with no lessons that day are still listed.
func (r *TextRenderer) Render(w io.Writer, schedule *allocator.Schedule) error {
	out := bufio.NewWriter(w)

	for _, week := range schedule.Weeks {
		fmt.Fprintf(out, "\nWeek %d\n", week.Week+1)
		for _, day := range week.Days {
			fmt.Fprintf(out, "\n%s\n", r.dayLabel(model.TermDay{Week: week.Week, Day: day.Day}))
			for _, group := range day.Groups {
				fmt.Fprintf(out, "  Group %s:\n", group.Group)
				for _, lesson := range group.Lessons {
					fmt.Fprintf(out, "    - %s (Semester %d) with %s\n", lesson.Subject, lesson.Semester, lesson.Teacher)
				}
			}
		}
	}

	return out.Flush()
}

// RenderOutcome writes the shortfall report and any validation errors
func (r *TextRenderer) RenderOutcome(w io.Writer, outcome *allocator.AllocationOutcome) error {
	out := bufio.NewWriter(w)

	if outcome.Complete {
		fmt.Fprintf(out, "\nAll subjects received their hours (%d lessons)\n", outcome.Schedule.LessonCount())
		return out.Flush()
	}

	if len(outcome.Shortfalls) > 0 {
		fmt.Fprintf(out, "\nShortfalls (%d):\n", len(outcome.Shortfalls))
		for _, s := range outcome.Shortfalls {
			fmt.Fprintf(out, "  %s / %s: %d of %d hours scheduled (%s)\n",
				s.Group, s.Subject, s.ScheduledHours, s.TotalHours, s.Reason)
		}
	}

	if len(outcome.ValidationErrors) > 0 {
		fmt.Fprintf(out, "\nValidation errors (%d):\n", len(outcome.ValidationErrors))
		for _, e := range outcome.ValidationErrors {
			fmt.Fprintf(out, "  %s\n", e.Error())
		}
	}

	return out.Flush()
}

func (r *TextRenderer) dayLabel(day model.TermDay) string {
	if r.Calendar == nil {
		return day.Day.String()
	}
	return fmt.Sprintf("%s (%s)", day.Day, r.Calendar.Date(day).Format(time.DateOnly))
}
