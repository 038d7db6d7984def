package catalog

// SemestersOf returns the semesters whose department is departmentID, in order.
func SemestersOf(semesters []Semester, departmentID string) []Semester {
	var out []Semester
	for _, s := range semesters {
		if s.Department == departmentID {
			out = append(out, s)
		}
	}
	return out
}

// SubjectsOf returns the subjects whose semester is semesterID, in order.
func SubjectsOf(subjects []Subject, semesterID string) []Subject {
	var out []Subject
	for _, s := range subjects {
		if s.Semester == semesterID {
			out = append(out, s)
		}
	}
	return out
}

// OrphanReport lists children whose parent reference matches nothing.
type OrphanReport struct {
	Semesters []Semester
	Subjects  []Subject
}

// Empty reports whether no orphans were found.
func (r OrphanReport) Empty() bool { return len(r.Semesters) == 0 && len(r.Subjects) == 0 }

// Orphans finds semesters with a dangling department and subjects with a
// dangling semester. A subject under an orphaned semester is not an orphan
// itself; it is unreachable through its parent instead.
func Orphans(departments []Department, semesters []Semester, subjects []Subject) OrphanReport {
	deptIDs := make(map[string]struct{}, len(departments))
	for _, d := range departments {
		deptIDs[d.ID] = struct{}{}
	}
	semIDs := make(map[string]struct{}, len(semesters))
	var rep OrphanReport
	for _, s := range semesters {
		semIDs[s.ID] = struct{}{}
		if _, ok := deptIDs[s.Department]; !ok {
			rep.Semesters = append(rep.Semesters, s)
		}
	}
	for _, s := range subjects {
		if _, ok := semIDs[s.Semester]; !ok {
			rep.Subjects = append(rep.Subjects, s)
		}
	}
	return rep
}

// PathOf finds the department and semester a subject is rendered under.
// It returns false when any link in the chain is missing.
func PathOf(departments []Department, semesters []Semester, subjects []Subject, subjectID string) (deptID, semID string, ok bool) {
	for _, sub := range subjects {
		if sub.ID != subjectID {
			continue
		}
		for _, sem := range semesters {
			if sem.ID != sub.Semester {
				continue
			}
			for _, d := range departments {
				if d.ID == sem.Department {
					return d.ID, sem.ID, true
				}
			}
		}
	}
	return "", "", false
}
