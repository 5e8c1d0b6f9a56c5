package curriculum

import "github.com/jakechorley/term-timetable/pkg/core/model"

// ExpandSubjects derives the subjects each group takes in its current semester.
//
// Groups are visited in order and each group's specialty plans in declaration order.
// A plan without an entry for the group's semester is not offered and is skipped, as is
// every plan of a group whose specialty is nil.
func ExpandSubjects(groups []model.Group) []model.Subject {
	var subjects []model.Subject

	for _, group := range groups {
		if group.Specialty == nil {
			continue
		}

		for _, plan := range group.Specialty.Subjects {
			hours, ok := plan.HoursFor(group.Semester)
			if !ok {
				continue
			}

			subjects = append(subjects, model.Subject{
				Name:       plan.Name,
				TotalHours: hours,
				Groups:     []string{group.Name},
				Semester:   group.Semester,
			})
		}
	}

	return subjects
}
