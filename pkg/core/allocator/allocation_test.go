package allocator

import (
	"testing"

	"github.com/jakechorley/term-timetable/pkg/core/curriculum"
	"github.com/jakechorley/term-timetable/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vetoCriterion rejects every teacher whose name is listed
type vetoCriterion struct {
	vetoed map[string]bool
	calls  int
}

func (c *vetoCriterion) Name() string {
	return "veto"
}

func (c *vetoCriterion) IsTeacherEligible(state *TermState, subject *SubjectState, teacher model.Teacher, day model.TermDay) bool {
	c.calls++
	return !c.vetoed[teacher.Name]
}

func (c *vetoCriterion) ValidateSchedule(schedule *Schedule, teachers []model.Teacher) []LessonValidationError {
	return nil
}

func indexOf(subjects ...model.Subject) *curriculum.SubjectIndex {
	return curriculum.NewSubjectIndex(subjects)
}

func subject(group, name string, hours int) model.Subject {
	return model.Subject{Name: name, TotalHours: hours, Groups: []string{group}, Semester: 1}
}

func TestAllocate_InvalidWeeks(t *testing.T) {
	tests := []struct {
		name  string
		weeks int
	}{
		{"negative", -1},
		{"one past the maximum", MaxWeeksPerSemester + 1},
		{"huge", 1 << 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Allocate(AllocationConfig{WeeksPerSemester: tt.weeks, Index: indexOf()})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidWeeks)
			assert.Nil(t, outcome)
		})
	}
}

func TestAllocate_MaxWeeks(t *testing.T) {
	outcome, err := Allocate(AllocationConfig{WeeksPerSemester: MaxWeeksPerSemester, Index: indexOf()})
	require.NoError(t, err)
	assert.Len(t, outcome.Schedule.Weeks, MaxWeeksPerSemester)
}

func TestAllocate_DefaultWeeks(t *testing.T) {
	outcome, err := Allocate(AllocationConfig{Index: indexOf()})
	require.NoError(t, err)
	assert.Len(t, outcome.Schedule.Weeks, DefaultWeeksPerSemester)
	assert.True(t, outcome.Complete)
}

func TestAllocate_FirstEligibleTeacherWins(t *testing.T) {
	outcome, err := Allocate(AllocationConfig{
		Teachers:         []model.Teacher{{Name: "First", Subject: "Math", Groups: []string{"A"}}, {Name: "Second", Subject: "Math", Groups: []string{"A"}}},
		Index:            indexOf(subject("A", "Math", 10)),
		WeeksPerSemester: 2,
	})
	require.NoError(t, err)

	outcome.Schedule.Each(func(_ model.TermDay, _ string, lesson Lesson) {
		assert.Equal(t, "First", lesson.Teacher)
	})
}

func TestAllocate_CriterionVeto(t *testing.T) {
	veto := &vetoCriterion{vetoed: map[string]bool{"First": true}}

	outcome, err := Allocate(AllocationConfig{
		Criteria:         []Criterion{veto},
		Teachers:         []model.Teacher{{Name: "First", Subject: "Math", Groups: []string{"A"}}, {Name: "Second", Subject: "Math", Groups: []string{"A"}}},
		Index:            indexOf(subject("A", "Math", 10)),
		WeeksPerSemester: 2,
	})
	require.NoError(t, err)

	require.Positive(t, outcome.Schedule.LessonCount())
	outcome.Schedule.Each(func(_ model.TermDay, _ string, lesson Lesson) {
		assert.Equal(t, "Second", lesson.Teacher)
	})
	assert.Positive(t, veto.calls)
}

func TestAllocate_RetiresSubjectWhenExhausted(t *testing.T) {
	// 5 hours over 2 weeks: 3 hours per week, so Monday takes 3 and Tuesday the last 2
	outcome, err := Allocate(AllocationConfig{
		Teachers:         []model.Teacher{{Name: "T", Subject: "Math", Groups: []string{"A"}}},
		Index:            indexOf(subject("A", "Math", 5)),
		WeeksPerSemester: 2,
	})
	require.NoError(t, err)

	week0 := outcome.Schedule.Week(0)
	require.NotNil(t, week0)
	assert.Equal(t, []Lesson{{Group: "A", Subject: "Math", Teacher: "T", Semester: 1, Hours: 3}}, week0.Day(model.Monday).Lessons("A"))
	assert.Equal(t, []Lesson{{Group: "A", Subject: "Math", Teacher: "T", Semester: 1, Hours: 2}}, week0.Day(model.Tuesday).Lessons("A"))
	assert.Empty(t, week0.Day(model.Wednesday).Lessons("A"))

	require.Len(t, outcome.States, 1)
	state := outcome.States[0]
	assert.Equal(t, 0, state.RemainingHours)
	assert.Equal(t, 2, state.LessonCount)
	require.NotNil(t, state.CompletedOn)
	assert.Equal(t, model.TermDay{Week: 0, Day: model.Tuesday}, *state.CompletedOn)
	assert.Equal(t, 2, outcome.Schedule.LessonCount())
	assert.True(t, outcome.Complete)
}

func TestAllocate_BlackoutDaysHaveNoEntry(t *testing.T) {
	outcome, err := Allocate(AllocationConfig{
		Teachers:         []model.Teacher{{Name: "T", Subject: "Math", Groups: []string{"A"}}},
		Index:            indexOf(subject("A", "Math", 36)),
		BlackoutDays:     []model.TermDay{{Week: 0, Day: model.Monday}, {Week: 40, Day: model.Monday}},
		WeeksPerSemester: 18,
	})
	require.NoError(t, err)

	week0 := outcome.Schedule.Week(0)
	require.Len(t, week0.Days, 4)
	assert.Nil(t, week0.Day(model.Monday))
	assert.Equal(t, model.Tuesday, week0.Days[0].Day)

	// The out-of-range blackout is ignored
	assert.Len(t, outcome.Schedule.Week(17).Days, 5)
}

func TestAllocate_GroupEntryPresentWhenEmpty(t *testing.T) {
	outcome, err := Allocate(AllocationConfig{
		Teachers:         []model.Teacher{{Name: "T", Subject: "Math", Groups: []string{"A"}}},
		Index:            indexOf(subject("A", "Math", 2), subject("B", "Chemistry", 10)),
		WeeksPerSemester: 2,
	})
	require.NoError(t, err)

	for _, week := range outcome.Schedule.Weeks {
		for _, day := range week.Days {
			require.Len(t, day.Groups, 2)
			assert.Equal(t, "A", day.Groups[0].Group)
			assert.Equal(t, "B", day.Groups[1].Group)
			assert.NotNil(t, day.Groups[1].Lessons)
			assert.Empty(t, day.Groups[1].Lessons)
		}
	}

	require.Len(t, outcome.Shortfalls, 1)
	assert.Equal(t, Shortfall{
		Group: "B", Subject: "Chemistry", Semester: 1,
		TotalHours: 10, ScheduledHours: 0, RemainingHours: 10,
		Reason: ReasonNoEligibleTeacher,
	}, outcome.Shortfalls[0])
	assert.False(t, outcome.Complete)
}

func TestAllocate_TermEndedShortfall(t *testing.T) {
	// Monday-only teacher and week 1's Monday blacked out: one 3 hour lesson of a 6 hour subject
	outcome, err := Allocate(AllocationConfig{
		Teachers: []model.Teacher{{Name: "T", Subject: "Math", Groups: []string{"A"}, PreferredDays: []model.Weekday{model.Monday}}},
		Index:    indexOf(subject("A", "Math", 6)),
		BlackoutDays: []model.TermDay{
			{Week: 1, Day: model.Monday},
		},
		WeeksPerSemester: 2,
	})
	require.NoError(t, err)

	require.Len(t, outcome.Shortfalls, 1)
	assert.Equal(t, ReasonTermEnded, outcome.Shortfalls[0].Reason)
	assert.Equal(t, 3, outcome.Shortfalls[0].ScheduledHours)
	assert.Equal(t, 3, outcome.Shortfalls[0].RemainingHours)
}

func TestAllocate_ZeroHourSubject(t *testing.T) {
	outcome, err := Allocate(AllocationConfig{
		Teachers:         []model.Teacher{{Name: "T", Subject: "Math", Groups: []string{"A"}}},
		Index:            indexOf(subject("A", "Math", 0)),
		WeeksPerSemester: 3,
	})
	require.NoError(t, err)

	assert.Zero(t, outcome.Schedule.LessonCount())
	assert.Empty(t, outcome.Shortfalls)
	require.Len(t, outcome.States, 1)
	assert.False(t, outcome.States[0].IsRetired())
	assert.Equal(t, 1, outcome.States[0].HoursPerWeek)
}

func TestAllocate_OneLessonPerSubjectPerDay(t *testing.T) {
	outcome, err := Allocate(AllocationConfig{
		Teachers:         []model.Teacher{{Name: "T1", Subject: "Math", Groups: []string{"A"}}, {Name: "T2", Subject: "Math", Groups: []string{"A"}}},
		Index:            indexOf(subject("A", "Math", 100)),
		WeeksPerSemester: 4,
	})
	require.NoError(t, err)

	for _, week := range outcome.Schedule.Weeks {
		for _, day := range week.Days {
			assert.LessOrEqual(t, len(day.Lessons("A")), 1)
		}
	}
	// 100 hours over 4 weeks = 25 per lesson, done after four lessons
	assert.Equal(t, 4, outcome.Schedule.LessonCount())
}
