package catalog

import "slices"

// Collection names one of the three catalog collections.
type Collection string

const (
	Departments Collection = "departments"
	Semesters   Collection = "semesters"
	Subjects    Collection = "subjects"
)

// Status is the load state of a single collection.
type Status int

const (
	Loading Status = iota
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// Store holds the three catalog collections and a per-collection load state.
// It is owned by a single event loop and is not safe for concurrent use.
type Store struct {
	departments []Department
	semesters   []Semester
	subjects    []Subject

	status map[Collection]Status
	errs   map[Collection]string
}

// NewStore returns a store with every collection loading.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset drops every record and returns all collections to Loading.
func (s *Store) Reset() {
	s.departments, s.semesters, s.subjects = nil, nil, nil
	s.status = map[Collection]Status{Departments: Loading, Semesters: Loading, Subjects: Loading}
	s.errs = map[Collection]string{}
}

func (s *Store) SetDepartments(list []Department) {
	s.departments = slices.Clone(list)
	s.loaded(Departments)
}

func (s *Store) SetSemesters(list []Semester) {
	s.semesters = slices.Clone(list)
	s.loaded(Semesters)
}

func (s *Store) SetSubjects(list []Subject) {
	s.subjects = slices.Clone(list)
	s.loaded(Subjects)
}

// Fail records a fetch failure for one collection. Its records are dropped;
// the other collections are untouched.
func (s *Store) Fail(c Collection, err error) {
	switch c {
	case Departments:
		s.departments = nil
	case Semesters:
		s.semesters = nil
	case Subjects:
		s.subjects = nil
	}
	s.status[c] = Failed
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	s.errs[c] = msg
}

func (s *Store) loaded(c Collection) {
	s.status[c] = Loaded
	delete(s.errs, c)
}

// Status reports the load state of c.
func (s *Store) Status(c Collection) Status { return s.status[c] }

// Err returns the stored error string for c, or "" when c has not failed.
func (s *Store) Err(c Collection) string { return s.errs[c] }

// Departments returns a copy of the loaded departments in fetch order.
func (s *Store) Departments() []Department { return slices.Clone(s.departments) }

// Semesters returns a copy of the loaded semesters in fetch order.
func (s *Store) Semesters() []Semester { return slices.Clone(s.semesters) }

// Subjects returns a copy of the loaded subjects in fetch order.
func (s *Store) Subjects() []Subject { return slices.Clone(s.subjects) }

// Ready reports whether every collection has finished, successfully or not.
func (s *Store) Ready() bool {
	for _, c := range []Collection{Departments, Semesters, Subjects} {
		if s.status[c] == Loading {
			return false
		}
	}
	return true
}
