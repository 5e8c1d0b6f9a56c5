package server

import (
	"fmt"
	"time"

	"github.com/jakechorley/term-timetable/internal/config"
	"github.com/jakechorley/term-timetable/pkg/core/allocator"
	"github.com/jakechorley/term-timetable/pkg/core/model"
	"github.com/jakechorley/term-timetable/pkg/core/services"
)

// GenerateScheduleRequest carries a full curriculum plus the term parameters
type GenerateScheduleRequest struct {
	config.CurriculumFile
	BlackoutDays []config.BlackoutDay `json:"blackoutDays"`
	// WeeksPerSemester of zero selects the default term length
	WeeksPerSemester int    `json:"weeksPerSemester" binding:"min=0,max=53"`
	TermStart        string `json:"termStart" binding:"omitempty,datetime=2006-01-02"`
}

// Validate checks the curriculum and that every blackout day falls inside the term
func (r *GenerateScheduleRequest) Validate() error {
	if err := config.ValidateCurriculum(&r.CurriculumFile); err != nil {
		return err
	}

	weeks := r.weeks()
	for i, day := range r.BlackoutDays {
		if day.Week < 0 || day.Week >= weeks {
			return fmt.Errorf("blackoutDays[%d]: week %d is outside a %d-week term", i, day.Week, weeks)
		}
		if !model.Weekday(day.Day).IsValid() {
			return fmt.Errorf("blackoutDays[%d]: day %d is not a weekday (0-4)", i, day.Day)
		}
	}

	return nil
}

// RunParams converts the request into generation parameters
func (r *GenerateScheduleRequest) RunParams() (services.RunParams, error) {
	params := services.RunParams{WeeksPerSemester: r.WeeksPerSemester}

	for _, day := range r.BlackoutDays {
		params.BlackoutDays = append(params.BlackoutDays, model.TermDay{Week: day.Week, Day: model.Weekday(day.Day)})
	}

	if r.TermStart != "" {
		start, err := time.Parse(time.DateOnly, r.TermStart)
		if err != nil {
			return services.RunParams{}, fmt.Errorf("invalid termStart %q: %w", r.TermStart, err)
		}
		params.Calendar = model.NewTermCalendar(start)
	}

	return params, nil
}

func (r *GenerateScheduleRequest) weeks() int {
	if r.WeeksPerSemester == 0 {
		return allocator.DefaultWeeksPerSemester
	}
	return r.WeeksPerSemester
}

// ScheduleResponse is the data of a schedule response
type ScheduleResponse struct {
	RunID            string                            `json:"runId"`
	WeeksPerSemester int                               `json:"weeksPerSemester"`
	FirstMonday      string                            `json:"firstMonday,omitempty"`
	BlackoutDays     []model.TermDay                   `json:"blackoutDays"`
	Complete         bool                              `json:"complete"`
	Schedule         *allocator.Schedule               `json:"schedule"`
	Shortfalls       []allocator.Shortfall             `json:"shortfalls"`
	ValidationErrors []allocator.LessonValidationError `json:"validationErrors"`
}

func newScheduleResponse(result *services.GenerateScheduleResult) ScheduleResponse {
	resp := ScheduleResponse{
		RunID:            result.RunID,
		WeeksPerSemester: result.WeeksPerSemester,
		BlackoutDays:     result.BlackoutDays,
		Complete:         result.Outcome.Complete,
		Schedule:         result.Outcome.Schedule,
		Shortfalls:       result.Outcome.Shortfalls,
		ValidationErrors: result.Outcome.ValidationErrors,
	}
	if resp.BlackoutDays == nil {
		resp.BlackoutDays = []model.TermDay{}
	}
	if result.Calendar != nil {
		resp.FirstMonday = result.Calendar.FirstMonday().Format(time.DateOnly)
	}
	return resp
}

func scheduleMeta(result *services.GenerateScheduleResult) map[string]interface{} {
	return map[string]interface{}{
		"lessons":     result.Outcome.Schedule.LessonCount(),
		"generatedAt": result.GeneratedAt.Format(time.RFC3339),
	}
}
