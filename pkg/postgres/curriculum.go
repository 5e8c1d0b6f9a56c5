package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/term-timetable/pkg/db"
)

// GetSubjectHours retrieves all subject hour records in insertion order
func (d *DB) GetSubjectHours(ctx context.Context) ([]db.SubjectHours, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT specialty, subject, semester, hours
		FROM specialty_subject_hours
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subject hours: %w", err)
	}
	defer rows.Close()

	var records []db.SubjectHours
	for rows.Next() {
		var r db.SubjectHours
		if err := rows.Scan(&r.Specialty, &r.Subject, &r.Semester, &r.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan subject hours: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject hours: %w", err)
	}

	return records, nil
}

// GetTeachers retrieves all teacher records in insertion order
func (d *DB) GetTeachers(ctx context.Context) ([]db.Teacher, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT name, subject, groups, preferred_days
		FROM teacher
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teachers: %w", err)
	}
	defer rows.Close()

	var teachers []db.Teacher
	for rows.Next() {
		var t db.Teacher
		var days []int32
		if err := rows.Scan(&t.Name, &t.Subject, &t.Groups, &days); err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		for _, day := range days {
			t.PreferredDays = append(t.PreferredDays, int(day))
		}
		teachers = append(teachers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teachers: %w", err)
	}

	return teachers, nil
}

// GetGroups retrieves all student groups in insertion order
func (d *DB) GetGroups(ctx context.Context) ([]db.Group, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT name, specialty, semester
		FROM student_group
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var groups []db.Group
	for rows.Next() {
		var g db.Group
		if err := rows.Scan(&g.Name, &g.Specialty, &g.Semester); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}

	return groups, nil
}
