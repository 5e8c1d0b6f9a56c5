package allocator

import (
	"fmt"

	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// requiredCriteria are applied to every run and every audit ahead of any configured criteria
func requiredCriteria() []Criterion {
	return []Criterion{
		NewTeachesSubjectCriterion(),
		NewTeachesGroupCriterion(),
		NewPreferredDaysCriterion(),
	}
}

// TeachesSubjectCriterion only lets a teacher deliver the subject they teach.
//
// Validity:
//   - Returns false unless the teacher's subject matches the subject being scheduled
type TeachesSubjectCriterion struct{}

func NewTeachesSubjectCriterion() *TeachesSubjectCriterion {
	return &TeachesSubjectCriterion{}
}

func (c *TeachesSubjectCriterion) Name() string {
	return "TeachesSubject"
}

func (c *TeachesSubjectCriterion) IsTeacherEligible(state *TermState, subject *SubjectState, teacher model.Teacher, day model.TermDay) bool {
	return teacher.Teaches(subject.Subject)
}

func (c *TeachesSubjectCriterion) ValidateSchedule(schedule *Schedule, teachers []model.Teacher) []LessonValidationError {
	var errors []LessonValidationError

	schedule.Each(func(day model.TermDay, _ string, lesson Lesson) {
		teacher, ok := FindTeacher(teachers, lesson.Teacher)
		if !ok || teacher.Teaches(lesson.Subject) {
			return
		}
		errors = append(errors, NewLessonValidationError(c.Name(), day, lesson,
			fmt.Sprintf("Teacher %s teaches %s, not %s", teacher.Name, teacher.Subject, lesson.Subject)))
	})

	return errors
}

// TeachesGroupCriterion restricts teachers to the groups they are assigned.
//
// Validity:
//   - Returns false if the group is not in the teacher's group list
type TeachesGroupCriterion struct{}

func NewTeachesGroupCriterion() *TeachesGroupCriterion {
	return &TeachesGroupCriterion{}
}

func (c *TeachesGroupCriterion) Name() string {
	return "TeachesGroup"
}

func (c *TeachesGroupCriterion) IsTeacherEligible(state *TermState, subject *SubjectState, teacher model.Teacher, day model.TermDay) bool {
	return teacher.CanTeachGroup(subject.Group)
}

func (c *TeachesGroupCriterion) ValidateSchedule(schedule *Schedule, teachers []model.Teacher) []LessonValidationError {
	var errors []LessonValidationError

	schedule.Each(func(day model.TermDay, _ string, lesson Lesson) {
		teacher, ok := FindTeacher(teachers, lesson.Teacher)
		if !ok || teacher.CanTeachGroup(lesson.Group) {
			return
		}
		errors = append(errors, NewLessonValidationError(c.Name(), day, lesson,
			fmt.Sprintf("Teacher %s is not assigned to group %s", teacher.Name, lesson.Group)))
	})

	return errors
}

// PreferredDaysCriterion keeps teachers to the weekdays they work.
//
// Validity:
//   - Teachers without preferred days are eligible every weekday
//   - Otherwise returns false unless the session's weekday is listed
type PreferredDaysCriterion struct{}

func NewPreferredDaysCriterion() *PreferredDaysCriterion {
	return &PreferredDaysCriterion{}
}

func (c *PreferredDaysCriterion) Name() string {
	return "PreferredDays"
}

func (c *PreferredDaysCriterion) IsTeacherEligible(state *TermState, subject *SubjectState, teacher model.Teacher, day model.TermDay) bool {
	return teacher.AvailableOn(day.Day)
}

func (c *PreferredDaysCriterion) ValidateSchedule(schedule *Schedule, teachers []model.Teacher) []LessonValidationError {
	var errors []LessonValidationError

	schedule.Each(func(day model.TermDay, _ string, lesson Lesson) {
		teacher, ok := FindTeacher(teachers, lesson.Teacher)
		if !ok || teacher.AvailableOn(day.Day) {
			return
		}
		errors = append(errors, NewLessonValidationError(c.Name(), day, lesson,
			fmt.Sprintf("Teacher %s does not work on %s", teacher.Name, day.Day)))
	})

	return errors
}
