package repository

import "time"

// Department represents a department row.
type Department struct {
	ID        string
	Name      string
	Code      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Semester represents a semester row. DepartmentID is not a foreign key.
type Semester struct {
	ID           string
	Name         string
	DepartmentID string
	Position     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subject represents a subject row. SemesterID is not a foreign key.
type Subject struct {
	ID         string
	Name       string
	SemesterID string
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
