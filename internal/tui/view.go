package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/coursedeck/internal/catalog"
)

type rowKind int

const (
	rowDepartment rowKind = iota
	rowSemester
	rowSubject
	rowNotice
	rowError
)

// row is one rendered line of the catalog tree.
type row struct {
	kind     rowKind
	depth    int
	id       string
	name     string
	label    string
	expanded bool
}

func rowKey(kind rowKind, id string) string {
	switch kind {
	case rowDepartment:
		return "d:" + id
	case rowSemester:
		return "s:" + id
	case rowSubject:
		return "x:" + id
	}
	return ""
}

func (r row) key() string { return rowKey(r.kind, r.id) }

func (r row) selectable() bool { return r.kind <= rowSubject }

// rows flattens the visible tree. Children are resolved by parent id on every
// call; a child whose parent is missing never appears.
func (a *App) rows() []row {
	if r, ok := a.collectionRow(catalog.Departments, 0); ok {
		return []row{r}
	}
	depts := a.store.Departments()
	if len(depts) == 0 {
		return []row{{kind: rowNotice, label: "no departments"}}
	}
	semesters := a.store.Semesters()
	subjects := a.store.Subjects()

	out := make([]row, 0, len(depts))
	for _, d := range depts {
		open := a.expansion.Department == d.ID
		out = append(out, row{kind: rowDepartment, id: d.ID, name: d.Name, label: d.Label(), expanded: open})
		if open {
			out = append(out, a.semesterRows(semesters, subjects, d.ID)...)
		}
	}
	return out
}

func (a *App) semesterRows(semesters []catalog.Semester, subjects []catalog.Subject, deptID string) []row {
	if r, ok := a.collectionRow(catalog.Semesters, 1); ok {
		return []row{r}
	}
	children := catalog.SemestersOf(semesters, deptID)
	if len(children) == 0 {
		return []row{{kind: rowNotice, depth: 1, label: "no semesters"}}
	}
	var out []row
	for _, s := range children {
		open := a.expansion.Semester == s.ID
		out = append(out, row{kind: rowSemester, depth: 1, id: s.ID, name: s.Name, label: s.Label(), expanded: open})
		if open {
			out = append(out, a.subjectRows(subjects, s.ID)...)
		}
	}
	return out
}

func (a *App) subjectRows(subjects []catalog.Subject, semID string) []row {
	if r, ok := a.collectionRow(catalog.Subjects, 2); ok {
		return []row{r}
	}
	children := catalog.SubjectsOf(subjects, semID)
	if len(children) == 0 {
		return []row{{kind: rowNotice, depth: 2, label: "no subjects"}}
	}
	out := make([]row, 0, len(children))
	for _, s := range children {
		out = append(out, row{kind: rowSubject, depth: 2, id: s.ID, name: s.Name, label: s.Label()})
	}
	return out
}

// collectionRow stands in for a collection that is still loading or failed.
func (a *App) collectionRow(c catalog.Collection, depth int) (row, bool) {
	switch a.store.Status(c) {
	case catalog.Loading:
		return row{kind: rowNotice, depth: depth, label: "loading " + string(c) + "..."}, true
	case catalog.Failed:
		return row{kind: rowError, depth: depth, label: a.store.Err(c)}, true
	}
	return row{}, false
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Course Catalog"))
	b.WriteString("\n\n")

	rows := a.rows()
	cursor := a.cursorIndex(rows)
	start, end := a.window(len(rows), cursor)
	for i := start; i < end; i++ {
		b.WriteString(a.renderRow(rows[i], i == cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())
	return b.String()
}

// window returns the slice of rows that fits the terminal with the cursor in view.
func (a *App) window(n, cursor int) (int, int) {
	avail := a.height - 5
	if a.height == 0 || avail <= 0 || n <= avail {
		return 0, n
	}
	start := 0
	if cursor >= avail {
		start = cursor - avail + 1
	}
	return start, start + avail
}

func (a *App) renderRow(r row, selected bool) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	indent := strings.Repeat("  ", r.depth)

	var text string
	switch r.kind {
	case rowDepartment:
		text = marker(r.expanded) + departmentStyle.Render(r.label)
	case rowSemester:
		text = marker(r.expanded) + semesterStyle.Render(r.label)
	case rowSubject:
		text = "  " + subjectStyle.Render(r.label)
	case rowError:
		text = errorStyle.Render(r.label)
	default:
		text = noticeStyle.Render(r.label)
	}
	line := prefix + indent + text
	if a.width > 0 {
		line = ansi.Truncate(line, a.width, "…")
	}
	return line
}

func marker(expanded bool) string {
	if expanded {
		return "▾ "
	}
	return "▸ "
}

func (a *App) renderFooter() string {
	if a.searching {
		return a.search.View() + "\n" + a.help.View(searchKeyMap{a.keys})
	}
	status := ""
	if a.status != "" {
		flat := strings.ReplaceAll(a.status, "\n", " ")
		if a.statusErr {
			status = statusErrStyle.Render(flat)
		} else {
			status = statusStyle.Render(flat)
		}
		if a.width > 0 {
			status = ansi.Truncate(status, a.width, "…")
		}
	}
	return status + "\n" + a.help.View(a.keys)
}
