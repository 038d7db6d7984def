package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jask/coursedeck/internal/database"
	"github.com/jask/coursedeck/internal/database/repository"
)

// ImportService loads catalog rows from CSV into the local database.
type ImportService struct {
	Departments *repository.DepartmentRepo
	Semesters   *repository.SemesterRepo
	Subjects    *repository.SubjectRepo
}

type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// Row kinds accepted in the first column.
const (
	KindDepartment = "department"
	KindSemester   = "semester"
	KindSubject    = "subject"
)

// ImportCSV reads rows of kind, id, name, parent[, code]. parent is the
// department id for semesters and the semester id for subjects; it is not
// checked. An empty id is derived from kind, parent and name so re-imports
// update in place. A repeated id within one file is skipped. Bad rows are
// collected in the result and do not stop the import; their line numbers count
// comment and blank lines.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	res := ImportResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	csvr.Comment = '#'

	seen := map[string]struct{}{}
	first := true
	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError already names its line.
			res.Errors = append(res.Errors, err)
			continue
		}
		line, _ := csvr.FieldPos(0)
		header := first && strings.EqualFold(strings.TrimSpace(rec[0]), "kind")
		first = false
		if header {
			continue
		}
		if len(rec) < 4 { // kind, id, name, parent
			res.Errors = append(res.Errors, fmt.Errorf("line %d: expected at least 4 columns", line))
			continue
		}
		kind := strings.ToLower(strings.TrimSpace(rec[0]))
		id, name, parent := strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2]), strings.TrimSpace(rec[3])
		if id == "" {
			if name == "" {
				res.Errors = append(res.Errors, fmt.Errorf("line %d: id or name required", line))
				continue
			}
			id = database.SeedID(kind, parent, name)
		}
		key := kind + ":" + id
		if _, dup := seen[key]; dup {
			res.Skipped++
			continue
		}
		seen[key] = struct{}{}

		if err := s.upsert(ctx, kind, id, name, parent, rec, line); err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d %s: %w", line, kind, err))
			continue
		}
		res.Imported++
	}
	return res, nil
}

func (s *ImportService) upsert(ctx context.Context, kind, id, name, parent string, rec []string, pos int) error {
	switch kind {
	case KindDepartment:
		code := ""
		if len(rec) > 4 {
			code = strings.TrimSpace(rec[4])
		}
		return s.Departments.Upsert(ctx, repository.Department{ID: id, Name: name, Code: code, Position: pos})
	case KindSemester:
		return s.Semesters.Upsert(ctx, repository.Semester{ID: id, Name: name, DepartmentID: parent, Position: pos})
	case KindSubject:
		return s.Subjects.Upsert(ctx, repository.Subject{ID: id, Name: name, SemesterID: parent, Position: pos})
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
}
