package allocator

import (
	"testing"

	"github.com/jakechorley/term-timetable/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTermState_BuildsStatesInIndexOrder(t *testing.T) {
	index := indexOf(
		subject("A", "Math", 90),
		subject("A", "English", 36),
		subject("B", "Math", 1),
	)

	state := InitTermState(index, nil, nil, 18)

	require.Len(t, state.Groups, 2)
	assert.Equal(t, "A", state.Groups[0].Name)
	require.Len(t, state.Groups[0].Pending, 2)
	assert.Equal(t, "English", state.Groups[0].Pending[1].Subject)

	require.Len(t, state.States, 3)
	assert.Equal(t, 5, state.States[0].HoursPerWeek)
	assert.Equal(t, 2, state.States[1].HoursPerWeek)
	assert.Equal(t, 1, state.States[2].HoursPerWeek)
	assert.Equal(t, 90, state.States[0].RemainingHours)

	assert.Same(t, state.States[2], state.SubjectState("B", "Math"))
	assert.Nil(t, state.SubjectState("B", "English"))
}

func TestInitTermState_DuplicateSubjectReplacesInPlace(t *testing.T) {
	index := indexOf(
		subject("A", "Math", 10),
		subject("A", "English", 20),
		subject("A", "Math", 4),
	)

	state := InitTermState(index, nil, nil, 2)

	require.Len(t, state.Groups[0].Pending, 2)
	assert.Equal(t, "Math", state.Groups[0].Pending[0].Subject)
	assert.Equal(t, 4, state.Groups[0].Pending[0].TotalHours)

	require.Len(t, state.States, 2)
	assert.Same(t, state.Groups[0].Pending[0], state.States[0])
}

func TestInitTermState_Blackout(t *testing.T) {
	state := InitTermState(nil, nil, []model.TermDay{
		{Week: 5, Day: model.Monday},
		{Week: 18, Day: model.Monday},
		{Week: 2, Day: model.Weekday(6)},
	}, 18)

	assert.True(t, state.IsBlackout(model.TermDay{Week: 5, Day: model.Monday}))
	assert.False(t, state.IsBlackout(model.TermDay{Week: 5, Day: model.Tuesday}))
	assert.Len(t, state.blackout, 1)
	assert.Empty(t, state.Groups)
}

func TestGroupState_Compact(t *testing.T) {
	done := model.TermDay{Week: 1, Day: model.Friday}
	a := &SubjectState{Subject: "a"}
	b := &SubjectState{Subject: "b", CompletedOn: &done}
	c := &SubjectState{Subject: "c"}
	group := &GroupState{Name: "G", Pending: []*SubjectState{a, b, c}}

	group.compact()

	assert.Equal(t, []*SubjectState{a, c}, group.Pending)
}
