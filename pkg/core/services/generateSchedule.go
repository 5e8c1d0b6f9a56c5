package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/term-timetable/internal/config"
	"github.com/jakechorley/term-timetable/pkg/core/allocator"
	"github.com/jakechorley/term-timetable/pkg/core/curriculum"
	"github.com/jakechorley/term-timetable/pkg/core/model"
	"github.com/jakechorley/term-timetable/pkg/db"
)

// RunParams are the term parameters of one generation run
type RunParams struct {
	// WeeksPerSemester of zero selects the allocator default
	WeeksPerSemester int
	BlackoutDays     []model.TermDay
	// Calendar maps term days to dates. Nil when no term start is known.
	Calendar *model.TermCalendar
}

// GenerateScheduleResult contains a generated schedule and the inputs it was generated from
type GenerateScheduleResult struct {
	RunID            string
	GeneratedAt      time.Time
	WeeksPerSemester int
	Calendar         *model.TermCalendar
	BlackoutDays     []model.TermDay
	Curriculum       *model.Curriculum
	Subjects         []model.Subject
	Outcome          *allocator.AllocationOutcome
}

// RunParamsFromConfig resolves the term parameters from configuration
func RunParamsFromConfig(cfg *config.Config) (RunParams, error) {
	blackoutDays, err := ResolveBlackoutDays(cfg)
	if err != nil {
		return RunParams{}, fmt.Errorf("failed to resolve blackout days: %w", err)
	}

	params := RunParams{
		WeeksPerSemester: cfg.WeeksPerSemester,
		BlackoutDays:     blackoutDays,
	}

	termStart, err := cfg.TermStartDate()
	if err != nil {
		return RunParams{}, err
	}
	if termStart != nil {
		params.Calendar = model.NewTermCalendar(*termStart)
	}

	return params, nil
}

// GenerateSchedule loads the curriculum and allocates a term using the configured parameters
func GenerateSchedule(ctx context.Context, store db.CurriculumStore, cfg *config.Config, logger *zap.Logger) (*GenerateScheduleResult, error) {
	params, err := RunParamsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return GenerateScheduleWith(ctx, store, params, logger)
}

// GenerateScheduleWith loads the curriculum and allocates a term
func GenerateScheduleWith(ctx context.Context, store db.CurriculumStore, params RunParams, logger *zap.Logger) (*GenerateScheduleResult, error) {
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	logger.Debug("Starting generateSchedule",
		zap.Int("weeks_per_semester", params.WeeksPerSemester),
		zap.Int("blackout_days", len(params.BlackoutDays)))

	cur, err := LoadCurriculum(ctx, store, logger)
	if err != nil {
		return nil, err
	}

	subjects := curriculum.ExpandSubjects(cur.Groups)
	logger.Debug("Expanded subjects", zap.Int("count", len(subjects)))

	outcome, err := allocator.Allocate(allocator.AllocationConfig{
		Teachers:         cur.Teachers,
		Index:            curriculum.NewSubjectIndex(subjects),
		BlackoutDays:     params.BlackoutDays,
		WeeksPerSemester: params.WeeksPerSemester,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate schedule: %w", err)
	}

	weeks := len(outcome.Schedule.Weeks)

	for _, shortfall := range outcome.Shortfalls {
		logger.Warn("Subject did not receive all of its hours",
			zap.String("group", shortfall.Group),
			zap.String("subject", shortfall.Subject),
			zap.Int("scheduled_hours", shortfall.ScheduledHours),
			zap.Int("total_hours", shortfall.TotalHours),
			zap.String("reason", string(shortfall.Reason)))
	}

	for _, validationErr := range outcome.ValidationErrors {
		logger.Warn("Schedule validation error", zap.String("error", validationErr.Error()))
	}

	logger.Info("Schedule generated",
		zap.Int("weeks", weeks),
		zap.Int("lessons", outcome.Schedule.LessonCount()),
		zap.Int("shortfalls", len(outcome.Shortfalls)),
		zap.Bool("complete", outcome.Complete))

	return &GenerateScheduleResult{
		RunID:            runID,
		GeneratedAt:      time.Now().UTC(),
		WeeksPerSemester: weeks,
		Calendar:         params.Calendar,
		BlackoutDays:     params.BlackoutDays,
		Curriculum:       cur,
		Subjects:         subjects,
		Outcome:          outcome,
	}, nil
}
