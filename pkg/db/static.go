package db

import (
	"context"
	"slices"

	"github.com/jakechorley/term-timetable/internal/config"
)

// StaticStore serves a curriculum that is already in memory, such as a YAML file
// or an HTTP request body
type StaticStore struct {
	subjectHours []SubjectHours
	teachers     []Teacher
	groups       []Group
}

// NewStaticStore flattens a curriculum file into store records
func NewStaticStore(file *config.CurriculumFile) *StaticStore {
	store := &StaticStore{}

	for _, specialty := range file.Specialties {
		for _, subject := range specialty.Subjects {
			for _, hours := range subject.Hours {
				store.subjectHours = append(store.subjectHours, SubjectHours{
					Specialty: specialty.Name,
					Subject:   subject.Name,
					Semester:  hours.Semester,
					Hours:     hours.Hours,
				})
			}
		}
	}

	for _, teacher := range file.Teachers {
		store.teachers = append(store.teachers, Teacher{
			Name:          teacher.Name,
			Subject:       teacher.Subject,
			Groups:        slices.Clone(teacher.Groups),
			PreferredDays: slices.Clone(teacher.PreferredDays),
		})
	}

	for _, group := range file.Groups {
		store.groups = append(store.groups, Group{
			Name:      group.Name,
			Specialty: group.Specialty,
			Semester:  group.Semester,
		})
	}

	return store
}

// NewFileStore loads a curriculum YAML file
func NewFileStore(path string) (*StaticStore, error) {
	file, err := config.LoadCurriculumFromPath(path)
	if err != nil {
		return nil, err
	}
	return NewStaticStore(file), nil
}

func (s *StaticStore) GetSubjectHours(ctx context.Context) ([]SubjectHours, error) {
	return s.subjectHours, nil
}

func (s *StaticStore) GetTeachers(ctx context.Context) ([]Teacher, error) {
	return s.teachers, nil
}

func (s *StaticStore) GetGroups(ctx context.Context) ([]Group, error) {
	return s.groups, nil
}
