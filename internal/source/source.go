// Package source is the fetch boundary of the catalog: every implementation
// returns records that passed catalog validation.
package source

import (
	"context"

	"github.com/jask/coursedeck/internal/catalog"
)

// Source loads the three catalog collections. The calls are independent; a
// caller may issue them in any order or concurrently.
type Source interface {
	Departments(ctx context.Context) ([]catalog.Department, error)
	Semesters(ctx context.Context) ([]catalog.Semester, error)
	Subjects(ctx context.Context) ([]catalog.Subject, error)
}

// Snapshot is the result of loading every collection.
type Snapshot struct {
	Departments []catalog.Department
	Semesters   []catalog.Semester
	Subjects    []catalog.Subject
}

// LoadAll fetches the three collections one after another and stops at the
// first error.
func LoadAll(ctx context.Context, src Source) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.Departments, err = src.Departments(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Semesters, err = src.Semesters(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Subjects, err = src.Subjects(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
