package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleCatalog() ([]Department, []Semester, []Subject) {
	depts := []Department{
		{ID: "1", Name: "CS", Code: "CSE"},
		{ID: "2", Name: "Maths"},
	}
	sems := []Semester{
		{ID: "s1", Name: "Fall", Department: "1"},
		{ID: "s2", Name: "Fall", Department: "2"},
		{ID: "s3", Name: "Spring", Department: "1"},
		{ID: "s4", Name: "Lost", Department: "9"},
	}
	subs := []Subject{
		{ID: "x1", Name: "Algo", Semester: "s1"},
		{ID: "x2", Name: "Calculus", Semester: "s2"},
		{ID: "x3", Name: "Compilers", Semester: "s3"},
		{ID: "x4", Name: "Databases", Semester: "s1"},
		{ID: "x5", Name: "Ghost", Semester: "s9"},
		{ID: "x6", Name: "Stranded", Semester: "s4"},
	}
	return depts, sems, subs
}

func TestSemestersOfPreservesOrder(t *testing.T) {
	_, sems, _ := sampleCatalog()

	got := SemestersOf(sems, "1")
	require.Equal(t, []Semester{sems[0], sems[2]}, got)

	require.Empty(t, SemestersOf(sems, "missing"))
	require.Empty(t, SemestersOf(nil, "1"))
}

func TestSubjectsOfPreservesOrder(t *testing.T) {
	_, _, subs := sampleCatalog()

	got := SubjectsOf(subs, "s1")
	require.Equal(t, []Subject{subs[0], subs[3]}, got)

	for _, s := range SubjectsOf(subs, "s2") {
		require.Equal(t, "s2", s.Semester)
	}
}

func TestResolverReturnsExactSubset(t *testing.T) {
	_, sems, subs := sampleCatalog()
	for _, dept := range []string{"1", "2", "9", ""} {
		got := SemestersOf(sems, dept)
		want := 0
		for _, s := range sems {
			if s.Department == dept {
				want++
			}
		}
		require.Len(t, got, want, "department %q", dept)
	}
	for _, sem := range []string{"s1", "s2", "s3", "s4", "s9"} {
		got := SubjectsOf(subs, sem)
		for _, s := range got {
			require.Equal(t, sem, s.Semester)
		}
	}
}

func TestOrphans(t *testing.T) {
	depts, sems, subs := sampleCatalog()
	rep := Orphans(depts, sems, subs)
	require.False(t, rep.Empty())
	require.Equal(t, []Semester{sems[3]}, rep.Semesters)
	require.Equal(t, []Subject{subs[4]}, rep.Subjects)

	require.True(t, Orphans(depts, sems[:3], subs[:4]).Empty())
}

func TestPathOf(t *testing.T) {
	depts, sems, subs := sampleCatalog()

	d, s, ok := PathOf(depts, sems, subs, "x3")
	require.True(t, ok)
	require.Equal(t, "1", d)
	require.Equal(t, "s3", s)

	_, _, ok = PathOf(depts, sems, subs, "x5")
	require.False(t, ok, "subject with missing semester")
	_, _, ok = PathOf(depts, sems, subs, "x6")
	require.False(t, ok, "subject under orphaned semester")
	_, _, ok = PathOf(depts, sems, subs, "nope")
	require.False(t, ok)
}

func TestExpansionTransitions(t *testing.T) {
	var e Expansion
	require.True(t, e.Collapsed())

	e = e.ToggleDepartment("1")
	require.Equal(t, Expansion{Department: "1"}, e)

	e = e.ToggleSemester("s1")
	require.Equal(t, Expansion{Department: "1", Semester: "s1"}, e)

	e = e.ToggleSemester("s3")
	require.Equal(t, Expansion{Department: "1", Semester: "s3"}, e)

	e = e.ToggleSemester("s3")
	require.Equal(t, Expansion{Department: "1"}, e)

	e = e.ToggleDepartment("1")
	require.True(t, e.Collapsed())
}

func TestSwitchingDepartmentDropsSemester(t *testing.T) {
	e := Expansion{}.ToggleDepartment("1").ToggleSemester("s1")
	e = e.ToggleDepartment("2")
	require.Equal(t, "2", e.Department)
	require.Empty(t, e.Semester)
}

func TestToggleDepartmentTwiceIsIdentity(t *testing.T) {
	for _, start := range []Expansion{{}, {Department: "1"}} {
		got := start.ToggleDepartment("1").ToggleDepartment("1")
		require.Equal(t, start, got)
	}
	// from another department the first toggle switches, the second collapses
	got := Expansion{Department: "2"}.ToggleDepartment("1").ToggleDepartment("1")
	require.True(t, got.Collapsed())
}

func TestToggleSemesterWithoutDepartmentIsNoop(t *testing.T) {
	require.Equal(t, Expansion{}, Expansion{}.ToggleSemester("s1"))
}

func TestDispatcherSelect(t *testing.T) {
	tests := []struct {
		name string
		d    Dispatcher
		id   string
		sub  string
		want string
	}{
		{name: "default route", d: Dispatcher{}, id: "x1", sub: "Algo", want: "/subjects/x1"},
		{name: "with name", d: Dispatcher{IncludeName: true}, id: "x1", sub: "Algo", want: "/subjects/x1?name=Algo"},
		{name: "query route", d: Dispatcher{Route: "/subject"}, id: "x1", want: "/subject?subjectId=x1"},
		{name: "escaped id", d: Dispatcher{Route: "/s/{id}"}, id: "a b", want: "/s/a%20b"},
		{name: "unknown id passes through", d: Dispatcher{}, id: "does-not-exist", want: "/subjects/does-not-exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := tt.d.Select(tt.id, tt.sub)
			require.Equal(t, tt.want, nav.String())
			require.Equal(t, tt.id, nav.SubjectID)
		})
	}

	nav := Dispatcher{}.Select("x1", "")
	require.Equal(t, "http://localhost:3000/subjects/x1", nav.URL("http://localhost:3000/"))
}

func TestStoreCollectionsAreIndependent(t *testing.T) {
	s := NewStore()
	require.False(t, s.Ready())

	depts, sems, _ := sampleCatalog()
	s.SetDepartments(depts)
	s.SetSemesters(sems)
	s.Fail(Subjects, errors.New("boom"))

	require.True(t, s.Ready())
	require.Equal(t, Loaded, s.Status(Departments))
	require.Equal(t, Failed, s.Status(Subjects))
	require.Equal(t, "boom", s.Err(Subjects))
	require.Empty(t, s.Err(Departments))
	require.Len(t, s.Departments(), 2)
	require.Empty(t, s.Subjects())

	// projections are copies
	got := s.Departments()
	got[0].Name = "changed"
	require.Equal(t, "CS", s.Departments()[0].Name)

	s.Reset()
	require.Equal(t, Loading, s.Status(Departments))
	require.Empty(t, s.Departments())
	require.Empty(t, s.Err(Subjects))
}

func TestValidateAll(t *testing.T) {
	require.NoError(t, ValidateAll("departments", []Department{{ID: "1"}}))
	err := ValidateAll("subjects", []Subject{{ID: "x1"}, {Name: "no id"}})
	require.ErrorIs(t, err, ErrInvalidRecord)
	require.Contains(t, err.Error(), "subjects #1")

	err = ValidateAll("departments", []Department{{ID: "1", Name: "CS"}, {ID: "1", Name: "CS copy"}, {ID: "2"}})
	require.ErrorIs(t, err, ErrInvalidRecord)
	require.Contains(t, err.Error(), "departments: duplicate id")
	require.NoError(t, ValidateAll[Semester]("semesters", nil))
}

func TestSearchSubjects(t *testing.T) {
	depts, sems, subs := sampleCatalog()

	got := SearchSubjects(depts, sems, subs, "comp")
	require.NotEmpty(t, got)
	require.Equal(t, "x3", got[0].Subject.ID)
	require.Equal(t, "1", got[0].Department)
	require.Equal(t, "s3", got[0].Semester)

	require.Empty(t, SearchSubjects(depts, sems, subs, "ghost"), "orphans are not searchable")
	require.Empty(t, SearchSubjects(depts, sems, subs, "  "))

	exact := SearchSubjects(depts, sems, subs, "algo")
	require.Equal(t, "x1", exact[0].Subject.ID)
}

func TestFuzzyMatchScoreComparesRunes(t *testing.T) {
	ok, _ := fuzzyMatchScore("Ã©", "é")
	require.False(t, ok, "é shares a leading byte with Ã but is a different letter")

	ok, score := fuzzyMatchScore("Économie", "éco")
	require.True(t, ok)
	require.Equal(t, 3+10+3+3, score)

	ok, _ = fuzzyMatchScore("Ökonomie", "oko")
	require.False(t, ok)
}
