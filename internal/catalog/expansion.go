package catalog

// Expansion is the drill-down state of the catalog tree: at most one
// department and at most one semester under it. Empty strings mean collapsed.
type Expansion struct {
	Department string
	Semester   string
}

// ToggleDepartment collapses d if it is expanded, otherwise expands d and
// drops any semester expansion.
func (e Expansion) ToggleDepartment(d string) Expansion {
	if e.Department == d {
		return Expansion{}
	}
	return Expansion{Department: d}
}

// ToggleSemester collapses s if it is expanded, otherwise expands s under the
// current department. With no department expanded it is a no-op.
func (e Expansion) ToggleSemester(s string) Expansion {
	if e.Department == "" {
		return e
	}
	if e.Semester == s {
		return Expansion{Department: e.Department}
	}
	return Expansion{Department: e.Department, Semester: s}
}

// Reveal expands d and s together.
func (e Expansion) Reveal(d, s string) Expansion {
	return Expansion{Department: d, Semester: s}
}

func (e Expansion) Collapsed() bool { return e.Department == "" }
