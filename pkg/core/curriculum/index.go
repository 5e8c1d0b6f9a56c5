package curriculum

import "github.com/jakechorley/term-timetable/pkg/core/model"

// SubjectIndex partitions subjects by owning group.
// Groups keep the order in which they were first seen and subjects keep production order.
type SubjectIndex struct {
	groups   []string
	subjects map[string][]model.Subject
}

// NewSubjectIndex groups the subjects by each of their owning groups
func NewSubjectIndex(subjects []model.Subject) *SubjectIndex {
	idx := &SubjectIndex{subjects: make(map[string][]model.Subject)}

	for _, subject := range subjects {
		for _, group := range subject.Groups {
			if _, seen := idx.subjects[group]; !seen {
				idx.groups = append(idx.groups, group)
			}
			idx.subjects[group] = append(idx.subjects[group], subject)
		}
	}

	return idx
}

// BuildIndex expands the groups' subjects and indexes them
func BuildIndex(groups []model.Group) *SubjectIndex {
	return NewSubjectIndex(ExpandSubjects(groups))
}

// Groups returns the indexed group names in first-seen order.
// Groups without any subject do not appear.
func (idx *SubjectIndex) Groups() []string {
	out := make([]string, len(idx.groups))
	copy(out, idx.groups)
	return out
}

// Subjects returns the subjects of a group in production order
func (idx *SubjectIndex) Subjects(group string) []model.Subject {
	return idx.subjects[group]
}

// All returns every indexed subject, group by group
func (idx *SubjectIndex) All() []model.Subject {
	var all []model.Subject
	for _, group := range idx.groups {
		all = append(all, idx.subjects[group]...)
	}
	return all
}

func (idx *SubjectIndex) Len() int {
	return len(idx.groups)
}
