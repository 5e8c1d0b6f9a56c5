package db

import (
	"context"
	"fmt"

	"github.com/jakechorley/term-timetable/pkg/sheetssql"
)

// DB reads the curriculum from a spreadsheet using SheetsSQL
type DB struct {
	ssql *sheetssql.DB
}

// NewDB creates a new database instance
func NewDB(ssql *sheetssql.DB) *DB {
	return &DB{ssql: ssql}
}

// CurriculumSchema describes the curriculum tabs
func CurriculumSchema() (*sheetssql.Schema, error) {
	return sheetssql.SchemaFromModels(SubjectHours{}, Teacher{}, Group{})
}

// GetSubjectHours retrieves all subject hour records
func (db *DB) GetSubjectHours(ctx context.Context) ([]SubjectHours, error) {
	rows, err := sheetssql.GetTableAs[SubjectHours](db.ssql, sheetssql.TableName(SubjectHours{}))
	if err != nil {
		return nil, fmt.Errorf("failed to get subject hours: %w", err)
	}
	return rows, nil
}

// GetTeachers retrieves all teacher records
func (db *DB) GetTeachers(ctx context.Context) ([]Teacher, error) {
	rows, err := sheetssql.GetTableAs[Teacher](db.ssql, sheetssql.TableName(Teacher{}))
	if err != nil {
		return nil, fmt.Errorf("failed to get teachers: %w", err)
	}
	return rows, nil
}

// GetGroups retrieves all group records
func (db *DB) GetGroups(ctx context.Context) ([]Group, error) {
	rows, err := sheetssql.GetTableAs[Group](db.ssql, sheetssql.TableName(Group{}))
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	return rows, nil
}
