package allocator

import "github.com/jakechorley/term-timetable/pkg/core/model"

// DefaultWeeksPerSemester is used when an AllocationConfig leaves WeeksPerSemester unset
const DefaultWeeksPerSemester = 18

// HoursPerWeek spreads a subject's total hours evenly over the term, rounding up.
// Always at least 1.
func HoursPerWeek(totalHours, weeksPerSemester int) int {
	if weeksPerSemester < 1 {
		weeksPerSemester = 1
	}
	perWeek := (totalHours + weeksPerSemester - 1) / weeksPerSemester
	return max(1, perWeek)
}

// SubjectState tracks the hour budget of one subject for one group during allocation
type SubjectState struct {
	Group    string
	Subject  string
	Semester int

	TotalHours   int
	HoursPerWeek int

	// RemainingHours starts at TotalHours and never increases
	RemainingHours int

	// LessonCount is the number of lessons scheduled so far
	LessonCount int

	// CompletedOn is the day the last hour was scheduled, nil while hours remain
	CompletedOn *model.TermDay
}

func newSubjectState(group string, subject model.Subject, weeksPerSemester int) *SubjectState {
	return &SubjectState{
		Group:          group,
		Subject:        subject.Name,
		Semester:       subject.Semester,
		TotalHours:     subject.TotalHours,
		HoursPerWeek:   HoursPerWeek(subject.TotalHours, weeksPerSemester),
		RemainingHours: subject.TotalHours,
	}
}

// ScheduledHours is the number of hours already placed in the schedule
func (s *SubjectState) ScheduledHours() int {
	return s.TotalHours - s.RemainingHours
}

// IsRetired reports whether the subject has left its group's pending set
func (s *SubjectState) IsRetired() bool {
	return s.CompletedOn != nil
}

// GroupState holds the subjects a group still has hours for, in index order
type GroupState struct {
	Name    string
	Pending []*SubjectState
}

// compact drops retired subjects from the pending set, keeping order
func (g *GroupState) compact() {
	pending := g.Pending[:0]
	for _, subject := range g.Pending {
		if !subject.IsRetired() {
			pending = append(pending, subject)
		}
	}
	// Clear the tail so retired states are not retained by the backing array
	for i := len(pending); i < len(g.Pending); i++ {
		g.Pending[i] = nil
	}
	g.Pending = pending
}

// TermState is the working state of one allocation run
type TermState struct {
	WeeksPerSemester int

	// Teachers in declaration order, which is the tie-break between eligible teachers
	Teachers []model.Teacher

	// Groups in index order
	Groups []*GroupState

	// States holds every subject state in index order, including retired ones
	States []*SubjectState

	blackout map[model.TermDay]bool
}

// IsBlackout reports whether no teaching happens on the given day
func (ts *TermState) IsBlackout(day model.TermDay) bool {
	return ts.blackout[day]
}

// SubjectState returns the state of a group's subject, or nil if the group does not take it
func (ts *TermState) SubjectState(group, subject string) *SubjectState {
	for _, state := range ts.States {
		if state.Group == group && state.Subject == subject {
			return state
		}
	}
	return nil
}

// Lesson is one scheduled session of a subject for a group
type Lesson struct {
	Group    string `json:"group"`
	Subject  string `json:"subject"`
	Teacher  string `json:"teacher"`
	Semester int    `json:"semester"`
	// Hours deducted from the subject's budget by this lesson
	Hours int `json:"hours"`
}

// GroupLessons is a group's lessons for one day, possibly empty
type GroupLessons struct {
	Group   string   `json:"group"`
	Lessons []Lesson `json:"lessons"`
}

// DaySchedule holds an entry for every indexed group on a teaching day
type DaySchedule struct {
	Day    model.Weekday  `json:"day"`
	Groups []GroupLessons `json:"groups"`
}

// Lessons returns the lessons of the given group on this day
func (d *DaySchedule) Lessons(group string) []Lesson {
	for _, entry := range d.Groups {
		if entry.Group == group {
			return entry.Lessons
		}
	}
	return nil
}

// WeekSchedule holds the teaching days of a week. Blackout days have no entry.
type WeekSchedule struct {
	Week int           `json:"week"`
	Days []DaySchedule `json:"days"`
}

// Day returns the schedule of a weekday, or nil if it is a blackout day
func (w *WeekSchedule) Day(day model.Weekday) *DaySchedule {
	for i := range w.Days {
		if w.Days[i].Day == day {
			return &w.Days[i]
		}
	}
	return nil
}

// Schedule is the generated timetable, one entry per term week
type Schedule struct {
	Weeks []WeekSchedule `json:"weeks"`
}

// Each calls fn for every lesson in chronological order.
// The group argument is the entry the lesson is filed under.
func (s *Schedule) Each(fn func(day model.TermDay, group string, lesson Lesson)) {
	if s == nil {
		return
	}
	for _, week := range s.Weeks {
		for _, daySchedule := range week.Days {
			td := model.TermDay{Week: week.Week, Day: daySchedule.Day}
			for _, entry := range daySchedule.Groups {
				for _, lesson := range entry.Lessons {
					fn(td, entry.Group, lesson)
				}
			}
		}
	}
}

// LessonCount returns the total number of lessons in the schedule
func (s *Schedule) LessonCount() int {
	count := 0
	s.Each(func(model.TermDay, string, Lesson) { count++ })
	return count
}

// Week returns the schedule of a week index, or nil if out of range
func (s *Schedule) Week(week int) *WeekSchedule {
	for i := range s.Weeks {
		if s.Weeks[i].Week == week {
			return &s.Weeks[i]
		}
	}
	return nil
}
