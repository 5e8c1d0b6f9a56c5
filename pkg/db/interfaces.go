package db

import "context"

// CurriculumStore defines the read operations every curriculum source supports.
// The SheetsSQL-backed db.DB, postgres.DB and db.StaticStore implement this interface.
// Records are returned in declaration order, which drives allocation order.
type CurriculumStore interface {
	GetSubjectHours(ctx context.Context) ([]SubjectHours, error)
	GetTeachers(ctx context.Context) ([]Teacher, error)
	GetGroups(ctx context.Context) ([]Group, error)
}
