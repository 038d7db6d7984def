package tui

import "github.com/jask/coursedeck/internal/catalog"

// Load messages carry the generation they were issued under; a refresh bumps
// the generation and older results are dropped.

type departmentsMsg struct {
	gen  int
	list []catalog.Department
}

type semestersMsg struct {
	gen  int
	list []catalog.Semester
}

type subjectsMsg struct {
	gen  int
	list []catalog.Subject
}

type loadErrMsg struct {
	gen        int
	collection catalog.Collection
	err        error
}

type navigatedMsg struct {
	nav catalog.Navigation
}

type errMsg struct{ error }
