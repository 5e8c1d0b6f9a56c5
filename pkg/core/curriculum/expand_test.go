package curriculum

import (
	"testing"

	"github.com/jakechorley/term-timetable/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itSpecialty() *model.Specialty {
	return &model.Specialty{
		Name: "IT",
		Subjects: []model.SubjectPlan{
			{Name: "Math", Semesters: []model.SemesterHours{{Semester: 1, Hours: 72}, {Semester: 2, Hours: 54}}},
			{Name: "Programming", Semesters: []model.SemesterHours{{Semester: 1, Hours: 108}, {Semester: 2, Hours: 90}}},
			{Name: "English", Semesters: []model.SemesterHours{{Semester: 1, Hours: 36}, {Semester: 2, Hours: 36}}},
		},
	}
}

func TestExpandSubjects(t *testing.T) {
	it := itSpecialty()
	groups := []model.Group{
		{Name: "IT-21", Specialty: it, Semester: 1},
		{Name: "IT-22", Specialty: it, Semester: 2},
	}

	subjects := ExpandSubjects(groups)
	require.Len(t, subjects, 6)

	assert.Equal(t, model.Subject{Name: "Math", TotalHours: 72, Groups: []string{"IT-21"}, Semester: 1}, subjects[0])
	assert.Equal(t, model.Subject{Name: "Programming", TotalHours: 108, Groups: []string{"IT-21"}, Semester: 1}, subjects[1])
	assert.Equal(t, model.Subject{Name: "English", TotalHours: 36, Groups: []string{"IT-21"}, Semester: 1}, subjects[2])
	assert.Equal(t, model.Subject{Name: "Math", TotalHours: 54, Groups: []string{"IT-22"}, Semester: 2}, subjects[3])
	assert.Equal(t, "IT-22", subjects[5].Groups[0])
}

func TestExpandSubjects_SkipsMissingSemester(t *testing.T) {
	specialty := &model.Specialty{
		Name: "Design",
		Subjects: []model.SubjectPlan{
			{Name: "Drawing", Semesters: []model.SemesterHours{{Semester: 1, Hours: 36}}},
			{Name: "History", Semesters: []model.SemesterHours{{Semester: 3, Hours: 18}}},
		},
	}

	subjects := ExpandSubjects([]model.Group{{Name: "D-11", Specialty: specialty, Semester: 3}})
	require.Len(t, subjects, 1)
	assert.Equal(t, "History", subjects[0].Name)
}

func TestExpandSubjects_NilSpecialty(t *testing.T) {
	subjects := ExpandSubjects([]model.Group{
		{Name: "X-1", Specialty: nil, Semester: 1},
		{Name: "IT-21", Specialty: itSpecialty(), Semester: 1},
	})

	require.Len(t, subjects, 3)
	for _, s := range subjects {
		assert.Equal(t, []string{"IT-21"}, s.Groups)
	}
}

func TestExpandSubjects_NoDeduplicationAcrossGroups(t *testing.T) {
	it := itSpecialty()
	subjects := ExpandSubjects([]model.Group{
		{Name: "IT-21", Specialty: it, Semester: 1},
		{Name: "IT-23", Specialty: it, Semester: 1},
	})

	assert.Len(t, subjects, 6)
}
