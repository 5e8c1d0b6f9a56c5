package allocator

import (
	"fmt"

	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// CoreInvariantName is the criterion name reported for structural schedule errors
const CoreInvariantName = "CoreInvariant"

// AuditInput is the curriculum a schedule is validated against
type AuditInput struct {
	Teachers         []model.Teacher
	Subjects         []model.Subject
	BlackoutDays     []model.TermDay
	WeeksPerSemester int
}

// ValidateSchedule validates a schedule against the core invariants, the required eligibility
// rules and all provided criteria.
// Returns a slice of validation errors for any rule violations.
// An empty slice indicates the schedule is valid.
func ValidateSchedule(schedule *Schedule, input AuditInput, criteria []Criterion) []LessonValidationError {
	errors := validateCoreInvariants(schedule, input)

	// Run validation for each criterion
	for _, criterion := range append(requiredCriteria(), criteria...) {
		errors = append(errors, criterion.ValidateSchedule(schedule, input.Teachers)...)
	}

	return errors
}

type subjectKey struct {
	group   string
	subject string
}

// validateCoreInvariants checks rules that hold regardless of the configured criteria:
//   - lessons fall on teaching days inside the term
//   - lessons are filed under their own group and belong to a known subject
//   - at most one lesson per (group, subject, day)
//   - no lesson after a subject's hours are used up, and no more hours than declared
//   - every teacher exists
func validateCoreInvariants(schedule *Schedule, input AuditInput) []LessonValidationError {
	var errors []LessonValidationError
	if schedule == nil {
		return errors
	}

	blackout := make(map[model.TermDay]bool, len(input.BlackoutDays))
	for _, day := range input.BlackoutDays {
		blackout[day] = true
	}

	totals := make(map[subjectKey]int, len(input.Subjects))
	for _, subject := range input.Subjects {
		for _, group := range subject.Groups {
			totals[subjectKey{group, subject.Name}] = subject.TotalHours
		}
	}

	scheduled := make(map[subjectKey]int)
	seenOnDay := make(map[model.TermDay]map[subjectKey]bool)

	schedule.Each(func(day model.TermDay, group string, lesson Lesson) {
		report := func(format string, args ...any) {
			errors = append(errors, NewLessonValidationError(CoreInvariantName, day, lesson, fmt.Sprintf(format, args...)))
		}

		if input.WeeksPerSemester > 0 && (day.Week < 0 || day.Week >= input.WeeksPerSemester) {
			report("Lesson falls outside the %d-week term", input.WeeksPerSemester)
		}
		if !day.Day.IsValid() {
			report("Lesson falls on an invalid weekday")
		}
		if blackout[day] {
			report("Lesson scheduled on a blackout day")
		}
		if lesson.Group != group {
			report("Lesson for group %s is filed under group %s", lesson.Group, group)
		}
		if _, known := FindTeacher(input.Teachers, lesson.Teacher); !known {
			report("Unknown teacher %q", lesson.Teacher)
		}

		key := subjectKey{lesson.Group, lesson.Subject}
		total, known := totals[key]
		if !known {
			report("Group %s does not take subject %s", lesson.Group, lesson.Subject)
			return
		}

		if seenOnDay[day] == nil {
			seenOnDay[day] = make(map[subjectKey]bool)
		}
		if seenOnDay[day][key] {
			report("More than one lesson of the subject on the same day")
		}
		seenOnDay[day][key] = true

		if lesson.Hours < 1 {
			report("Lesson carries %d hours", lesson.Hours)
		}

		before := scheduled[key]
		scheduled[key] = before + lesson.Hours

		if before >= total {
			report("Lesson scheduled after all %d hours were used", total)
		} else if before+lesson.Hours > total {
			report("Scheduled hours %d exceed the declared total of %d", before+lesson.Hours, total)
		}
	})

	return errors
}
