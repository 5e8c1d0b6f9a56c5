package allocator

import (
	"fmt"

	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// LessonValidationError describes a lesson that breaks a scheduling rule
type LessonValidationError struct {
	Week          int           `json:"week"`
	Day           model.Weekday `json:"day"`
	Group         string        `json:"group"`
	Subject       string        `json:"subject"`
	Teacher       string        `json:"teacher"`
	CriterionName string        `json:"criterion"`
	Description   string        `json:"description"`
}

func (e LessonValidationError) Error() string {
	return fmt.Sprintf("%s: week %d %s, group %s, subject %s: %s",
		e.CriterionName, e.Week+1, e.Day, e.Group, e.Subject, e.Description)
}

// NewLessonValidationError builds a validation error for a lesson on a day
func NewLessonValidationError(criterion string, day model.TermDay, lesson Lesson, description string) LessonValidationError {
	return LessonValidationError{
		Week:          day.Week,
		Day:           day.Day,
		Group:         lesson.Group,
		Subject:       lesson.Subject,
		Teacher:       lesson.Teacher,
		CriterionName: criterion,
		Description:   description,
	}
}

// Criterion defines the interface for teacher eligibility rules
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// IsTeacherEligible determines if a teacher may deliver the subject on the given day
	// This acts as a veto - if ANY criterion returns false, the teacher is not considered
	IsTeacherEligible(state *TermState, subject *SubjectState, teacher model.Teacher, day model.TermDay) bool

	// ValidateSchedule checks every lesson of a finished schedule against this criterion
	// Lessons whose teacher is unknown are skipped; the core audit reports those
	ValidateSchedule(schedule *Schedule, teachers []model.Teacher) []LessonValidationError
}

// FindTeacher returns the first teacher with the given name
func FindTeacher(teachers []model.Teacher, name string) (model.Teacher, bool) {
	for _, teacher := range teachers {
		if teacher.Name == name {
			return teacher, true
		}
	}
	return model.Teacher{}, false
}

// IsTeacherEligible checks a teacher against every criterion
func IsTeacherEligible(state *TermState, subject *SubjectState, teacher model.Teacher, day model.TermDay, criteria []Criterion) bool {
	for _, criterion := range criteria {
		if !criterion.IsTeacherEligible(state, subject, teacher, day) {
			return false
		}
	}
	return true
}
