package allocator

import (
	"github.com/jakechorley/term-timetable/pkg/core/curriculum"
	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// Allocator walks the term day by day and assigns lessons with configurable criteria
type Allocator struct {
	criteria []Criterion
	extra    []Criterion
	state    *TermState
	schedule *Schedule
	index    *curriculum.SubjectIndex
}

// AllocationConfig contains the configuration for an allocation run
type AllocationConfig struct {
	// Criteria are extra vetoes. A teacher must always teach the subject, be assigned to the
	// group and work on the weekday before these are consulted.
	Criteria []Criterion

	// Teachers in declaration order
	Teachers []model.Teacher

	// Index holds each group's subjects for the current semester
	Index *curriculum.SubjectIndex

	// BlackoutDays are days on which no group is taught
	BlackoutDays []model.TermDay

	// WeeksPerSemester is the length of the term. Zero selects DefaultWeeksPerSemester.
	WeeksPerSemester int
}

// Allocate runs the main allocation loop to generate the schedule
func Allocate(config AllocationConfig) (*AllocationOutcome, error) {

	// Initialise allocator
	allocator, err := InitAllocation(config)
	if err != nil {
		return nil, err
	}

	for week := 0; week < allocator.state.WeeksPerSemester; week++ {
		// Week entry is present even when every day is blacked out
		weekSchedule := WeekSchedule{Week: week, Days: []DaySchedule{}}

		for day := model.Monday; day <= model.Friday; day++ {
			slot := model.TermDay{Week: week, Day: day}
			if allocator.state.IsBlackout(slot) {
				continue
			}
			weekSchedule.Days = append(weekSchedule.Days, allocator.allocateDay(slot))
		}

		allocator.schedule.Weeks = append(allocator.schedule.Weeks, weekSchedule)
	}

	// Build outcome report
	return allocator.buildOutcome(), nil
}

// allocateDay schedules every group for one teaching day
func (a *Allocator) allocateDay(slot model.TermDay) DaySchedule {
	daySchedule := DaySchedule{Day: slot.Day, Groups: make([]GroupLessons, 0, len(a.state.Groups))}

	for _, group := range a.state.Groups {
		daySchedule.Groups = append(daySchedule.Groups, GroupLessons{
			Group:   group.Name,
			Lessons: a.allocateGroupDay(group, slot),
		})
	}

	return daySchedule
}

// allocateGroupDay gives each pending subject of the group at most one lesson on the day
func (a *Allocator) allocateGroupDay(group *GroupState, slot model.TermDay) []Lesson {
	lessons := []Lesson{}
	retired := false

	for _, subject := range group.Pending {
		if subject.RemainingHours <= 0 {
			continue
		}

		teacher, ok := a.findTeacher(subject, slot)
		if !ok {
			continue
		}

		lessons = append(lessons, a.scheduleLesson(subject, teacher))

		if subject.RemainingHours <= 0 {
			completedOn := slot
			subject.CompletedOn = &completedOn
			retired = true
		}
	}

	// Retired subjects leave the pending set once the group's day is done
	if retired {
		group.compact()
	}

	return lessons
}

// findTeacher returns the first teacher in declaration order passing the required and configured criteria
func (a *Allocator) findTeacher(subject *SubjectState, slot model.TermDay) (model.Teacher, bool) {
	for _, teacher := range a.state.Teachers {
		if IsTeacherEligible(a.state, subject, teacher, slot, a.criteria) {
			return teacher, true
		}
	}
	return model.Teacher{}, false
}

// scheduleLesson deducts one lesson's hours from the subject's budget
func (a *Allocator) scheduleLesson(subject *SubjectState, teacher model.Teacher) Lesson {
	hours := min(subject.HoursPerWeek, subject.RemainingHours)
	subject.RemainingHours -= hours
	subject.LessonCount++

	return Lesson{
		Group:    subject.Group,
		Subject:  subject.Subject,
		Teacher:  teacher.Name,
		Semester: subject.Semester,
		Hours:    hours,
	}
}

// buildOutcome creates the final allocation outcome report
func (a *Allocator) buildOutcome() *AllocationOutcome {
	// Initialize with empty slices (not nil) for easier consumption
	outcome := &AllocationOutcome{
		Schedule:         a.schedule,
		States:           a.state.States,
		Shortfalls:       []Shortfall{},
		ValidationErrors: []LessonValidationError{},
	}

	for _, state := range a.state.States {
		if state.RemainingHours <= 0 {
			continue
		}

		reason := ReasonTermEnded
		if state.LessonCount == 0 {
			reason = ReasonNoEligibleTeacher
		}

		outcome.Shortfalls = append(outcome.Shortfalls, Shortfall{
			Group:          state.Group,
			Subject:        state.Subject,
			Semester:       state.Semester,
			TotalHours:     state.TotalHours,
			ScheduledHours: state.ScheduledHours(),
			RemainingHours: state.RemainingHours,
			Reason:         reason,
		})
	}

	var subjects []model.Subject
	if a.index != nil {
		subjects = a.index.All()
	}

	// Run validation
	outcome.ValidationErrors = append(outcome.ValidationErrors, ValidateSchedule(a.schedule, AuditInput{
		Teachers:         a.state.Teachers,
		Subjects:         subjects,
		BlackoutDays:     blackoutList(a.state),
		WeeksPerSemester: a.state.WeeksPerSemester,
	}, a.extra)...)

	outcome.Complete = len(outcome.Shortfalls) == 0 && len(outcome.ValidationErrors) == 0

	return outcome
}

func blackoutList(state *TermState) []model.TermDay {
	days := make([]model.TermDay, 0, len(state.blackout))
	for day := range state.blackout {
		days = append(days, day)
	}
	return days
}
