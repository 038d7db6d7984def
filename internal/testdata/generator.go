// Package testdata generates synthetic catalogs for tests.
package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jask/coursedeck/internal/catalog"
	"github.com/jask/coursedeck/internal/database/repository"
)

// Options shapes a generated catalog.
type Options struct {
	Departments     int
	SemestersPer    int
	SubjectsPer     int
	OrphanSemesters int
	OrphanSubjects  int
}

// Catalog is a generated set of flat collections.
type Catalog struct {
	Departments []catalog.Department
	Semesters   []catalog.Semester
	Subjects    []catalog.Subject
}

var subjectNames = []string{
	"Algorithms", "Databases", "Compilers", "Networks", "Statistics",
	"Thermodynamics", "Signals", "Marketing", "Accounting", "Ethics",
}

// Generate builds a catalog from seed. Children are shuffled so they are not
// grouped by parent, and orphans point at ids that do not exist.
func Generate(seed int64, opts Options) Catalog {
	r := rand.New(rand.NewSource(seed))
	var c Catalog
	for d := 0; d < opts.Departments; d++ {
		deptID := fmt.Sprintf("d%d", d)
		c.Departments = append(c.Departments, catalog.Department{ID: deptID, Name: fmt.Sprintf("Department %d", d), Code: fmt.Sprintf("D%d", d)})
		for s := 0; s < opts.SemestersPer; s++ {
			semID := fmt.Sprintf("%s-s%d", deptID, s)
			c.Semesters = append(c.Semesters, catalog.Semester{ID: semID, Name: fmt.Sprintf("Semester %d", s+1), Department: deptID})
			for x := 0; x < opts.SubjectsPer; x++ {
				name := subjectNames[r.Intn(len(subjectNames))]
				c.Subjects = append(c.Subjects, catalog.Subject{ID: fmt.Sprintf("%s-x%d", semID, x), Name: fmt.Sprintf("%s %d", name, x), Semester: semID})
			}
		}
	}
	for i := 0; i < opts.OrphanSemesters; i++ {
		c.Semesters = append(c.Semesters, catalog.Semester{ID: fmt.Sprintf("orphan-s%d", i), Name: "Orphan Semester", Department: fmt.Sprintf("missing-d%d", i)})
	}
	for i := 0; i < opts.OrphanSubjects; i++ {
		c.Subjects = append(c.Subjects, catalog.Subject{ID: fmt.Sprintf("orphan-x%d", i), Name: "Orphan Subject", Semester: fmt.Sprintf("missing-s%d", i)})
	}
	r.Shuffle(len(c.Semesters), func(i, j int) { c.Semesters[i], c.Semesters[j] = c.Semesters[j], c.Semesters[i] })
	r.Shuffle(len(c.Subjects), func(i, j int) { c.Subjects[i], c.Subjects[j] = c.Subjects[j], c.Subjects[i] })
	return c
}

// Repos bundles repos used by Seed.
type Repos struct {
	Departments *repository.DepartmentRepo
	Semesters   *repository.SemesterRepo
	Subjects    *repository.SubjectRepo
}

// Seed writes c in order, so listing it back preserves the generated order.
func Seed(ctx context.Context, repos Repos, c Catalog) error {
	for i, d := range c.Departments {
		if err := repos.Departments.Upsert(ctx, repository.Department{ID: d.ID, Name: d.Name, Code: d.Code, Position: i}); err != nil {
			return err
		}
	}
	for i, s := range c.Semesters {
		if err := repos.Semesters.Upsert(ctx, repository.Semester{ID: s.ID, Name: s.Name, DepartmentID: s.Department, Position: i}); err != nil {
			return err
		}
	}
	for i, s := range c.Subjects {
		if err := repos.Subjects.Upsert(ctx, repository.Subject{ID: s.ID, Name: s.Name, SemesterID: s.Semester, Position: i}); err != nil {
			return err
		}
	}
	return nil
}
