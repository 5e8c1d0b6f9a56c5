package services

import (
	"github.com/jakechorley/term-timetable/pkg/core/allocator"
	"github.com/jakechorley/term-timetable/pkg/core/model"
)

// SubjectSummary describes one subject a group takes this semester
type SubjectSummary struct {
	Group        string
	Subject      string
	Semester     int
	TotalHours   int
	HoursPerWeek int
}

// SummariseSubjects lists each expanded subject with the hours it is taught per week
func SummariseSubjects(subjects []model.Subject, weeksPerSemester int) []SubjectSummary {
	if weeksPerSemester == 0 {
		weeksPerSemester = allocator.DefaultWeeksPerSemester
	}

	summaries := make([]SubjectSummary, 0, len(subjects))
	for _, subject := range subjects {
		for _, group := range subject.Groups {
			summaries = append(summaries, SubjectSummary{
				Group:        group,
				Subject:      subject.Name,
				Semester:     subject.Semester,
				TotalHours:   subject.TotalHours,
				HoursPerWeek: allocator.HoursPerWeek(subject.TotalHours, weeksPerSemester),
			})
		}
	}
	return summaries
}
