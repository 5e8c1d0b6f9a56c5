package e2e

import (
	"testing"

	"github.com/jakechorley/term-timetable/pkg/core/allocator"
	"github.com/jakechorley/term-timetable/pkg/core/curriculum"
	"github.com/jakechorley/term-timetable/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itSpecialty() *model.Specialty {
	return &model.Specialty{
		Name: "Information Technology",
		Subjects: []model.SubjectPlan{
			{Name: "Math", Semesters: []model.SemesterHours{{Semester: 1, Hours: 72}, {Semester: 2, Hours: 54}}},
			{Name: "Programming", Semesters: []model.SemesterHours{{Semester: 1, Hours: 108}, {Semester: 2, Hours: 90}}},
			{Name: "English", Semesters: []model.SemesterHours{{Semester: 1, Hours: 36}, {Semester: 2, Hours: 36}}},
		},
	}
}

func demoConfig() allocator.AllocationConfig {
	it := itSpecialty()
	groups := []model.Group{
		{Name: "IT-21", Specialty: it, Semester: 1},
		{Name: "IT-22", Specialty: it, Semester: 2},
	}
	both := []string{"IT-21", "IT-22"}

	return allocator.AllocationConfig{
		Teachers: []model.Teacher{
			{Name: "Ivanov", Subject: "Math", Groups: both, PreferredDays: []model.Weekday{model.Monday, model.Wednesday, model.Friday}},
			{Name: "Petrova", Subject: "Programming", Groups: both, PreferredDays: []model.Weekday{model.Tuesday, model.Thursday}},
			{Name: "Smirnov", Subject: "English", Groups: both, PreferredDays: []model.Weekday{model.Monday, model.Wednesday}},
		},
		Index: curriculum.BuildIndex(groups),
		BlackoutDays: []model.TermDay{
			{Week: 5, Day: model.Monday},
			{Week: 10, Day: model.Thursday},
		},
		WeeksPerSemester: 18,
	}
}

func TestAllocator_DemoCurriculum(t *testing.T) {
	config := demoConfig()

	outcome, err := allocator.Allocate(config)
	require.NoError(t, err)

	assert.True(t, outcome.Complete)
	assert.Empty(t, outcome.Shortfalls)
	assert.Empty(t, outcome.ValidationErrors)
	require.Len(t, outcome.Schedule.Weeks, 18)
	assert.Equal(t, 108, outcome.Schedule.LessonCount())

	// Blackout days drop out of their weeks
	assert.Len(t, outcome.Schedule.Week(5).Days, 4)
	assert.Nil(t, outcome.Schedule.Week(5).Day(model.Monday))
	assert.Len(t, outcome.Schedule.Week(10).Days, 4)
	assert.Nil(t, outcome.Schedule.Week(10).Day(model.Thursday))

	completed := map[string]model.TermDay{}
	for _, state := range outcome.States {
		assert.Equal(t, 0, state.RemainingHours, state.Group+"/"+state.Subject)
		assert.Equal(t, 18, state.LessonCount, state.Group+"/"+state.Subject)
		require.NotNil(t, state.CompletedOn)
		completed[state.Group+"/"+state.Subject] = *state.CompletedOn
	}

	assert.Equal(t, model.TermDay{Week: 6, Day: model.Monday}, completed["IT-21/Math"])
	assert.Equal(t, model.TermDay{Week: 8, Day: model.Thursday}, completed["IT-21/Programming"])
	assert.Equal(t, model.TermDay{Week: 9, Day: model.Monday}, completed["IT-22/English"])
}

func TestAllocator_MathScenarioCompletesOnEighteenthLessonDay(t *testing.T) {
	group := model.Group{
		Name:     "IT-21",
		Semester: 1,
		Specialty: &model.Specialty{Name: "IT", Subjects: []model.SubjectPlan{
			{Name: "Math", Semesters: []model.SemesterHours{{Semester: 1, Hours: 72}}},
		}},
	}

	outcome, err := allocator.Allocate(allocator.AllocationConfig{
		Teachers:         []model.Teacher{{Name: "Ivanov", Subject: "Math", Groups: []string{"IT-21"}}},
		Index:            curriculum.BuildIndex([]model.Group{group}),
		WeeksPerSemester: 18,
	})
	require.NoError(t, err)

	require.Len(t, outcome.States, 1)
	state := outcome.States[0]
	assert.Equal(t, 4, state.HoursPerWeek)
	assert.Equal(t, 18, state.LessonCount)
	require.NotNil(t, state.CompletedOn)
	assert.Equal(t, model.TermDay{Week: 3, Day: model.Wednesday}, *state.CompletedOn)

	// Nothing is scheduled after the subject retires
	assert.Empty(t, outcome.Schedule.Week(3).Day(model.Thursday).Lessons("IT-21"))
	assert.Empty(t, outcome.Schedule.Week(17).Day(model.Friday).Lessons("IT-21"))
	assert.True(t, outcome.Complete)
}

func TestAllocator_PreferredDaysNeverOccur(t *testing.T) {
	group := model.Group{
		Name:     "IT-21",
		Semester: 1,
		Specialty: &model.Specialty{Name: "IT", Subjects: []model.SubjectPlan{
			{Name: "Math", Semesters: []model.SemesterHours{{Semester: 1, Hours: 72}}},
		}},
	}

	// Every Friday of the term is blacked out
	var fridays []model.TermDay
	for week := 0; week < 18; week++ {
		fridays = append(fridays, model.TermDay{Week: week, Day: model.Friday})
	}

	outcome, err := allocator.Allocate(allocator.AllocationConfig{
		Teachers: []model.Teacher{
			{Name: "Ivanov", Subject: "Math", Groups: []string{"IT-21"}, PreferredDays: []model.Weekday{model.Friday}},
		},
		Index:            curriculum.BuildIndex([]model.Group{group}),
		BlackoutDays:     fridays,
		WeeksPerSemester: 18,
	})
	require.NoError(t, err)

	assert.Zero(t, outcome.Schedule.LessonCount())
	assert.Equal(t, 72, outcome.States[0].RemainingHours)
	require.Len(t, outcome.Shortfalls, 1)
	assert.Equal(t, allocator.ReasonNoEligibleTeacher, outcome.Shortfalls[0].Reason)
	assert.False(t, outcome.Complete)
}

func TestAllocator_FullyBlackedOutWeek(t *testing.T) {
	config := demoConfig()
	for day := model.Monday; day <= model.Friday; day++ {
		config.BlackoutDays = append(config.BlackoutDays, model.TermDay{Week: 2, Day: day})
	}

	outcome, err := allocator.Allocate(config)
	require.NoError(t, err)

	week := outcome.Schedule.Week(2)
	require.NotNil(t, week)
	assert.Empty(t, week.Days)
	assert.Len(t, outcome.Schedule.Weeks, 18)
}

func TestAllocator_Properties(t *testing.T) {
	config := demoConfig()
	// Six weeks with weeks 1-4 blacked out leaves too few days for every subject
	config.WeeksPerSemester = 6
	for week := 1; week <= 4; week++ {
		for day := model.Monday; day <= model.Friday; day++ {
			config.BlackoutDays = append(config.BlackoutDays, model.TermDay{Week: week, Day: day})
		}
	}

	outcome, err := allocator.Allocate(config)
	require.NoError(t, err)

	blackout := map[model.TermDay]bool{}
	for _, day := range config.BlackoutDays {
		blackout[day] = true
	}

	scheduled := map[string]int{}
	outcome.Schedule.Each(func(day model.TermDay, group string, lesson allocator.Lesson) {
		assert.False(t, blackout[day], "lesson on blackout day %v", day)

		teacher, ok := allocator.FindTeacher(config.Teachers, lesson.Teacher)
		require.True(t, ok)
		assert.True(t, teacher.Teaches(lesson.Subject))
		assert.True(t, teacher.CanTeachGroup(group))
		assert.True(t, teacher.AvailableOn(day.Day))

		scheduled[group+"/"+lesson.Subject] += lesson.Hours
	})

	for _, state := range outcome.States {
		key := state.Group + "/" + state.Subject
		assert.LessOrEqual(t, scheduled[key], state.TotalHours, key)
		assert.Equal(t, state.ScheduledHours(), scheduled[key], key)
		assert.GreaterOrEqual(t, state.RemainingHours, 0, key)
	}

	assert.Empty(t, outcome.ValidationErrors)
	assert.Len(t, outcome.Shortfalls, 6)
	for _, shortfall := range outcome.Shortfalls {
		assert.Equal(t, allocator.ReasonTermEnded, shortfall.Reason)
		assert.Equal(t, shortfall.TotalHours, shortfall.ScheduledHours+shortfall.RemainingHours)
	}
}

func TestAllocator_Deterministic(t *testing.T) {
	first, err := allocator.Allocate(demoConfig())
	require.NoError(t, err)
	second, err := allocator.Allocate(demoConfig())
	require.NoError(t, err)

	assert.Equal(t, first.Schedule, second.Schedule)
}
