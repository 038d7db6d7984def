package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/coursedeck/internal/database/repository"
)

// baselineCatalog is "Department [CODE] > Semester > Subject" paths.
var baselineCatalog = []string{
	"Computer Science [CS] > Semester 1 > Programming Fundamentals",
	"Computer Science [CS] > Semester 1 > Discrete Mathematics",
	"Computer Science [CS] > Semester 2 > Data Structures",
	"Computer Science [CS] > Semester 2 > Algorithms",
	"Computer Science [CS] > Semester 3 > Operating Systems",
	"Computer Science [CS] > Semester 3 > Databases",
	"Electrical Engineering [EE] > Semester 1 > Circuit Analysis",
	"Electrical Engineering [EE] > Semester 1 > Calculus I",
	"Electrical Engineering [EE] > Semester 2 > Signals and Systems",
	"Business Administration [BA] > Semester 1 > Principles of Management",
	"Business Administration [BA] > Semester 1 > Financial Accounting",
	"Business Administration [BA] > Semester 2 > Marketing",
}

// SeedID derives a stable id for a catalog node from its kind and path.
func SeedID(kind string, path ...string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+strings.Join(path, ">"))).String()
}

// SeedDefaults ensures a baseline catalog exists for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	depts := repository.NewDepartmentRepo(db)
	if n, err := depts.Count(ctx); err == nil && n > 0 {
		return nil
	}
	sems := repository.NewSemesterRepo(db)
	subs := repository.NewSubjectRepo(db)

	seen := map[string]struct{}{}
	for idx, path := range baselineCatalog {
		parts := strings.Split(path, ">")
		if len(parts) != 3 {
			return fmt.Errorf("seed: malformed path %q", path)
		}
		deptName, code := splitCode(strings.TrimSpace(parts[0]))
		semName := strings.TrimSpace(parts[1])
		subName := strings.TrimSpace(parts[2])

		deptID := SeedID("dept", deptName)
		semID := SeedID("sem", deptName, semName)
		if _, ok := seen[deptID]; !ok {
			if err := depts.Upsert(ctx, repository.Department{ID: deptID, Name: deptName, Code: code, Position: idx}); err != nil {
				return fmt.Errorf("seed department %s: %w", deptName, err)
			}
			seen[deptID] = struct{}{}
		}
		if _, ok := seen[semID]; !ok {
			if err := sems.Upsert(ctx, repository.Semester{ID: semID, Name: semName, DepartmentID: deptID, Position: idx}); err != nil {
				return fmt.Errorf("seed semester %s: %w", semName, err)
			}
			seen[semID] = struct{}{}
		}
		sub := repository.Subject{ID: SeedID("sub", deptName, semName, subName), Name: subName, SemesterID: semID, Position: idx}
		if err := subs.Upsert(ctx, sub); err != nil {
			return fmt.Errorf("seed subject %s: %w", subName, err)
		}
	}
	return nil
}

// splitCode turns "Name [CODE]" into ("Name", "CODE").
func splitCode(s string) (string, string) {
	open := strings.LastIndex(s, "[")
	if open < 0 || !strings.HasSuffix(s, "]") {
		return s, ""
	}
	return strings.TrimSpace(s[:open]), s[open+1 : len(s)-1]
}
