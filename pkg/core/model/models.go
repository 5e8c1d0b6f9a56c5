package model

import (
	"fmt"
	"slices"
)

// Weekday indexes the teaching days of a week, Monday first
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// DaysPerWeek is the number of teaching days in every week of a term
const DaysPerWeek = 5

var weekdayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Friday
}

func (d Weekday) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// TermDay addresses one teaching day of the term by week index and weekday
type TermDay struct {
	Week int     `json:"week"`
	Day  Weekday `json:"day"`
}

func (td TermDay) String() string {
	return fmt.Sprintf("week %d %s", td.Week+1, td.Day)
}

// SemesterHours is the total number of hours a subject requires in one semester
type SemesterHours struct {
	Semester int
	Hours    int
}

// SubjectPlan is one subject of a specialty together with its per-semester hour totals
type SubjectPlan struct {
	Name      string
	Semesters []SemesterHours
}

// HoursFor returns the total hours required in the given semester.
// The second return value is false when the subject is not taught that semester.
func (p SubjectPlan) HoursFor(semester int) (int, bool) {
	for _, sh := range p.Semesters {
		if sh.Semester == semester {
			return sh.Hours, true
		}
	}
	return 0, false
}

// Specialty is a curriculum shared read-only by every group studying it
type Specialty struct {
	Name     string
	Subjects []SubjectPlan
}

// Teacher delivers a single subject to a fixed set of groups
type Teacher struct {
	Name    string
	Subject string
	Groups  []string
	// PreferredDays restricts the weekdays the teacher works. Empty means every weekday.
	PreferredDays []Weekday
}

func (t Teacher) Teaches(subject string) bool {
	return t.Subject == subject
}

func (t Teacher) CanTeachGroup(group string) bool {
	return slices.Contains(t.Groups, group)
}

// AvailableOn reports whether the teacher works on the given weekday
func (t Teacher) AvailableOn(day Weekday) bool {
	return len(t.PreferredDays) == 0 || slices.Contains(t.PreferredDays, day)
}

// Group is a cohort of students following one specialty.
// Specialty is nil when the group's specialty is not part of the curriculum.
type Group struct {
	Name      string
	Specialty *Specialty
	Semester  int
}

// Subject is a subject a group must take in its current semester
type Subject struct {
	Name       string
	TotalHours int
	// Groups holds the owning group names. Expansion always produces exactly one.
	Groups   []string
	Semester int
}

// Curriculum is everything the allocator needs to know about who teaches what to whom
type Curriculum struct {
	Specialties []*Specialty
	Teachers    []Teacher
	Groups      []Group
}
