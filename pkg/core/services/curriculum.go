package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/term-timetable/pkg/core/model"
	"github.com/jakechorley/term-timetable/pkg/db"
)

// LoadCurriculum reads every curriculum record from the store and assembles the model
func LoadCurriculum(ctx context.Context, store db.CurriculumStore, logger *zap.Logger) (*model.Curriculum, error) {
	logger.Debug("Fetching subject hours")
	subjectHours, err := store.GetSubjectHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject hours: %w", err)
	}

	logger.Debug("Fetching teachers")
	teachers, err := store.GetTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teachers: %w", err)
	}

	logger.Debug("Fetching groups")
	groups, err := store.GetGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}

	logger.Debug("Fetched curriculum records",
		zap.Int("subject_hours", len(subjectHours)),
		zap.Int("teachers", len(teachers)),
		zap.Int("groups", len(groups)))

	return BuildCurriculum(subjectHours, teachers, groups, logger)
}

// BuildCurriculum converts store records into the curriculum model.
// Specialties and their subjects keep first-seen order. A group whose specialty is unknown
// is kept without a specialty and offered nothing. Two rows for the same specialty, subject and
// semester are an error.
func BuildCurriculum(subjectHours []db.SubjectHours, teachers []db.Teacher, groups []db.Group, logger *zap.Logger) (*model.Curriculum, error) {
	curriculum := &model.Curriculum{
		Specialties: []*model.Specialty{},
		Teachers:    make([]model.Teacher, 0, len(teachers)),
		Groups:      make([]model.Group, 0, len(groups)),
	}

	specialties := make(map[string]*model.Specialty)
	for _, row := range subjectHours {
		specialty, ok := specialties[row.Specialty]
		if !ok {
			specialty = &model.Specialty{Name: row.Specialty}
			specialties[row.Specialty] = specialty
			curriculum.Specialties = append(curriculum.Specialties, specialty)
		}

		hours := model.SemesterHours{Semester: row.Semester, Hours: row.Hours}
		if i := subjectPosition(specialty, row.Subject); i >= 0 {
			if _, dup := specialty.Subjects[i].HoursFor(row.Semester); dup {
				return nil, fmt.Errorf("specialty %q: duplicate hours for %q semester %d", row.Specialty, row.Subject, row.Semester)
			}
			specialty.Subjects[i].Semesters = append(specialty.Subjects[i].Semesters, hours)
			continue
		}
		specialty.Subjects = append(specialty.Subjects, model.SubjectPlan{
			Name:      row.Subject,
			Semesters: []model.SemesterHours{hours},
		})
	}

	for _, row := range teachers {
		days := make([]model.Weekday, 0, len(row.PreferredDays))
		for _, d := range row.PreferredDays {
			day := model.Weekday(d)
			if !day.IsValid() {
				return nil, fmt.Errorf("teacher %q: preferred day %d is not a weekday (0-4)", row.Name, d)
			}
			days = append(days, day)
		}

		curriculum.Teachers = append(curriculum.Teachers, model.Teacher{
			Name:          row.Name,
			Subject:       row.Subject,
			Groups:        row.Groups,
			PreferredDays: days,
		})
	}

	seen := make(map[string]bool, len(groups))
	for _, row := range groups {
		if seen[row.Name] {
			return nil, fmt.Errorf("duplicate group %q", row.Name)
		}
		seen[row.Name] = true

		specialty := specialties[row.Specialty]
		if specialty == nil {
			logger.Warn("Group has an unknown specialty, no subjects will be offered",
				zap.String("group", row.Name),
				zap.String("specialty", row.Specialty))
		}

		curriculum.Groups = append(curriculum.Groups, model.Group{
			Name:      row.Name,
			Specialty: specialty,
			Semester:  row.Semester,
		})
	}

	return curriculum, nil
}

func subjectPosition(specialty *model.Specialty, subject string) int {
	for i, plan := range specialty.Subjects {
		if plan.Name == subject {
			return i
		}
	}
	return -1
}
