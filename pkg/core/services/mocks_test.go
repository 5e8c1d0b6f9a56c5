package services

import (
	"context"

	"github.com/jakechorley/term-timetable/pkg/clients/sheetsclient"
	"github.com/jakechorley/term-timetable/pkg/db"
)

// mockStore implements db.CurriculumStore
type mockStore struct {
	subjectHours []db.SubjectHours
	teachers     []db.Teacher
	groups       []db.Group
	err          error
}

func (m *mockStore) GetSubjectHours(ctx context.Context) ([]db.SubjectHours, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.subjectHours, nil
}

func (m *mockStore) GetTeachers(ctx context.Context) ([]db.Teacher, error) {
	return m.teachers, nil
}

func (m *mockStore) GetGroups(ctx context.Context) ([]db.Group, error) {
	return m.groups, nil
}

func demoStore() *mockStore {
	both := []string{"IT-21", "IT-22"}
	return &mockStore{
		subjectHours: []db.SubjectHours{
			{Specialty: "IT", Subject: "Math", Semester: 1, Hours: 72},
			{Specialty: "IT", Subject: "Math", Semester: 2, Hours: 54},
			{Specialty: "IT", Subject: "Programming", Semester: 1, Hours: 108},
			{Specialty: "IT", Subject: "Programming", Semester: 2, Hours: 90},
			{Specialty: "IT", Subject: "English", Semester: 1, Hours: 36},
			{Specialty: "IT", Subject: "English", Semester: 2, Hours: 36},
		},
		teachers: []db.Teacher{
			{Name: "Ivanov", Subject: "Math", Groups: both, PreferredDays: []int{0, 2, 4}},
			{Name: "Petrova", Subject: "Programming", Groups: both, PreferredDays: []int{1, 3}},
			{Name: "Smirnov", Subject: "English", Groups: both, PreferredDays: []int{0, 2}},
		},
		groups: []db.Group{
			{Name: "IT-21", Specialty: "IT", Semester: 1},
			{Name: "IT-22", Specialty: "IT", Semester: 2},
		},
	}
}

// mockPublisher records the published timetable
type mockPublisher struct {
	spreadsheetID string
	timetable     *sheetsclient.PublishedTimetable
	err           error
}

func (m *mockPublisher) PublishTimetable(spreadsheetID string, timetable *sheetsclient.PublishedTimetable) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.spreadsheetID = spreadsheetID
	m.timetable = timetable
	return "Timetable", nil
}
