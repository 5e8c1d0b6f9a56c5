package allocator

import (
	"errors"
	"fmt"

	"github.com/jakechorley/term-timetable/pkg/core/curriculum"
	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// MaxWeeksPerSemester is the longest term a run accepts
const MaxWeeksPerSemester = 53

// ErrInvalidWeeks is returned when a run is configured with fewer than one week or more than
// MaxWeeksPerSemester
var ErrInvalidWeeks = errors.New("weeks per semester must be between 1 and 53")

// InitAllocation validates the configuration and builds the working state for a run
func InitAllocation(config AllocationConfig) (*Allocator, error) {
	weeks := config.WeeksPerSemester
	if weeks == 0 {
		weeks = DefaultWeeksPerSemester
	}
	if weeks < 1 || weeks > MaxWeeksPerSemester {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWeeks, config.WeeksPerSemester)
	}

	state := InitTermState(config.Index, config.Teachers, config.BlackoutDays, weeks)

	return &Allocator{
		criteria: append(requiredCriteria(), config.Criteria...),
		extra:    config.Criteria,
		state:    state,
		schedule: &Schedule{Weeks: []WeekSchedule{}},
		index:    config.Index,
	}, nil
}

// InitTermState creates one subject state per indexed (group, subject) pair.
//
// A subject that appears twice for the same group replaces the earlier state in place,
// keeping the earlier position. Blackout days outside the term are ignored.
func InitTermState(index *curriculum.SubjectIndex, teachers []model.Teacher, blackoutDays []model.TermDay, weeks int) *TermState {
	state := &TermState{
		WeeksPerSemester: weeks,
		Teachers:         teachers,
		Groups:           []*GroupState{},
		States:           []*SubjectState{},
		blackout:         make(map[model.TermDay]bool, len(blackoutDays)),
	}

	for _, day := range blackoutDays {
		if day.Week < 0 || day.Week >= weeks || !day.Day.IsValid() {
			continue
		}
		state.blackout[day] = true
	}

	if index == nil {
		return state
	}

	for _, groupName := range index.Groups() {
		group := &GroupState{Name: groupName}
		positions := make(map[string]int)

		for _, subject := range index.Subjects(groupName) {
			subjectState := newSubjectState(groupName, subject, weeks)

			if pos, dup := positions[subject.Name]; dup {
				replaced := group.Pending[pos]
				group.Pending[pos] = subjectState
				for i, existing := range state.States {
					if existing == replaced {
						state.States[i] = subjectState
						break
					}
				}
				continue
			}

			positions[subject.Name] = len(group.Pending)
			group.Pending = append(group.Pending, subjectState)
			state.States = append(state.States, subjectState)
		}

		state.Groups = append(state.Groups, group)
	}

	return state
}
