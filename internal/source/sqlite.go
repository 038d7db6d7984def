package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/coursedeck/internal/catalog"
	"github.com/jask/coursedeck/internal/database/repository"
)

// SQLiteSource reads the catalog from the local database.
type SQLiteSource struct {
	depts *repository.DepartmentRepo
	sems  *repository.SemesterRepo
	subs  *repository.SubjectRepo
}

func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{
		depts: repository.NewDepartmentRepo(db),
		sems:  repository.NewSemesterRepo(db),
		subs:  repository.NewSubjectRepo(db),
	}
}

func (s *SQLiteSource) Departments(ctx context.Context) ([]catalog.Department, error) {
	rows, err := s.depts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", catalog.Departments, err)
	}
	out := make([]catalog.Department, 0, len(rows))
	for _, r := range rows {
		out = append(out, catalog.Department{ID: r.ID, Name: r.Name, Code: r.Code})
	}
	if err := catalog.ValidateAll(string(catalog.Departments), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteSource) Semesters(ctx context.Context) ([]catalog.Semester, error) {
	rows, err := s.sems.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", catalog.Semesters, err)
	}
	out := make([]catalog.Semester, 0, len(rows))
	for _, r := range rows {
		out = append(out, catalog.Semester{ID: r.ID, Name: r.Name, Department: r.DepartmentID})
	}
	if err := catalog.ValidateAll(string(catalog.Semesters), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteSource) Subjects(ctx context.Context) ([]catalog.Subject, error) {
	rows, err := s.subs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", catalog.Subjects, err)
	}
	out := make([]catalog.Subject, 0, len(rows))
	for _, r := range rows {
		out = append(out, catalog.Subject{ID: r.ID, Name: r.Name, Semester: r.SemesterID})
	}
	if err := catalog.ValidateAll(string(catalog.Subjects), out); err != nil {
		return nil, err
	}
	return out, nil
}
