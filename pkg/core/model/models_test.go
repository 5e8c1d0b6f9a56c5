package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Friday", Friday.String())
	assert.Equal(t, "Weekday(7)", Weekday(7).String())
	assert.False(t, Weekday(-1).IsValid())
	assert.True(t, Wednesday.IsValid())
}

func TestSubjectPlanHoursFor(t *testing.T) {
	plan := SubjectPlan{
		Name:      "Math",
		Semesters: []SemesterHours{{Semester: 1, Hours: 72}, {Semester: 2, Hours: 54}},
	}

	hours, ok := plan.HoursFor(2)
	assert.True(t, ok)
	assert.Equal(t, 54, hours)

	_, ok = plan.HoursFor(3)
	assert.False(t, ok)
}

func TestTeacherEligibility(t *testing.T) {
	teacher := Teacher{
		Name:          "Ivanov",
		Subject:       "Math",
		Groups:        []string{"IT-21", "IT-22"},
		PreferredDays: []Weekday{Monday, Wednesday},
	}

	assert.True(t, teacher.Teaches("Math"))
	assert.False(t, teacher.Teaches("English"))
	assert.True(t, teacher.CanTeachGroup("IT-22"))
	assert.False(t, teacher.CanTeachGroup("IT-23"))
	assert.True(t, teacher.AvailableOn(Wednesday))
	assert.False(t, teacher.AvailableOn(Tuesday))

	anyDay := Teacher{Name: "Smirnov", Subject: "English"}
	for d := Monday; d <= Friday; d++ {
		assert.True(t, anyDay.AvailableOn(d), d.String())
	}
}
