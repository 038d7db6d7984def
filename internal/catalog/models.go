// Package catalog holds the course catalog records and the browsing model built
// on top of them: the store, the hierarchy resolver, the expansion controller
// and the selection dispatcher.
package catalog

// Department is a top-level catalog grouping.
type Department struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Semester groups subjects under a department.
type Semester struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Subject is the leaf a user ultimately selects.
type Subject struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name"`
	Semester string `json:"semester"`
}

// Label returns the name, falling back to the id for unnamed semesters.
func (s Semester) Label() string {
	if s.Name == "" {
		return s.ID
	}
	return s.Name
}

// Label returns the name, falling back to the id.
func (s Subject) Label() string {
	if s.Name == "" {
		return s.ID
	}
	return s.Name
}

// Label renders "CODE Name" when a code is present.
func (d Department) Label() string {
	name := d.Name
	if name == "" {
		name = d.ID
	}
	if d.Code == "" {
		return name
	}
	return d.Code + " " + name
}
