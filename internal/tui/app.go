// Package tui is the interactive catalog browser.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/coursedeck/internal/catalog"
	"github.com/jask/coursedeck/internal/navigate"
	"github.com/jask/coursedeck/internal/source"
)

const defaultTimeout = 10 * time.Second

// Options configures the browser.
type Options struct {
	Source     source.Source
	Dispatcher catalog.Dispatcher
	// Navigator runs each selection. When nil the browser quits on the first
	// selection and the caller reads it from Navigation.
	Navigator navigate.Navigator
	Timeout   time.Duration
	Logger    zerolog.Logger
}

// App ties the catalog store, expansion state and dispatcher to the terminal.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	src        source.Source
	store      *catalog.Store
	expansion  catalog.Expansion
	dispatcher catalog.Dispatcher
	navigator  navigate.Navigator
	timeout    time.Duration
	log        zerolog.Logger

	keys      keyMap
	help      help.Model
	search    textinput.Model
	searching bool

	gen        int
	refreshing bool
	cursorKey  string
	width      int
	height     int
	status     string
	statusErr  bool
	selected   *catalog.Navigation
}

func New(ctx context.Context, opts Options) *App {
	ctx, cancel := context.WithCancel(ctx)
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "subject name"
	ti.CharLimit = 128

	return &App{
		ctx:        ctx,
		cancel:     cancel,
		src:        opts.Source,
		store:      catalog.NewStore(),
		dispatcher: opts.Dispatcher,
		navigator:  opts.Navigator,
		timeout:    timeout,
		log:        opts.Logger,
		keys:       newKeyMap(),
		help:       help.New(),
		search:     ti,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadAll()
}

// Navigation returns the selection that ended the program, if any.
func (a *App) Navigation() (catalog.Navigation, bool) {
	if a.selected == nil {
		return catalog.Navigation{}, false
	}
	return *a.selected, true
}

// Store exposes the catalog store, read-only by convention.
func (a *App) Store() *catalog.Store { return a.store }

// Expansion reports the current drill-down state.
func (a *App) Expansion() catalog.Expansion { return a.expansion }

func (a *App) loadAll() tea.Cmd {
	gen := a.gen
	return tea.Batch(a.loadDepartments(gen), a.loadSemesters(gen), a.loadSubjects(gen))
}

func (a *App) loadDepartments(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
		defer cancel()
		list, err := a.src.Departments(ctx)
		if err == nil {
			err = catalog.ValidateAll(string(catalog.Departments), list)
		}
		if err != nil {
			return loadErrMsg{gen: gen, collection: catalog.Departments, err: err}
		}
		return departmentsMsg{gen: gen, list: list}
	}
}

func (a *App) loadSemesters(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
		defer cancel()
		list, err := a.src.Semesters(ctx)
		if err == nil {
			err = catalog.ValidateAll(string(catalog.Semesters), list)
		}
		if err != nil {
			return loadErrMsg{gen: gen, collection: catalog.Semesters, err: err}
		}
		return semestersMsg{gen: gen, list: list}
	}
}

func (a *App) loadSubjects(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
		defer cancel()
		list, err := a.src.Subjects(ctx)
		if err == nil {
			err = catalog.ValidateAll(string(catalog.Subjects), list)
		}
		if err != nil {
			return loadErrMsg{gen: gen, collection: catalog.Subjects, err: err}
		}
		return subjectsMsg{gen: gen, list: list}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case tea.KeyMsg:
		if a.searching {
			return a.updateSearch(m)
		}
		return a.handleKey(m)
	case departmentsMsg:
		if m.gen == a.gen {
			a.store.SetDepartments(m.list)
			a.log.Debug().Int("count", len(m.list)).Msg("departments loaded")
			a.settle()
		}
	case semestersMsg:
		if m.gen == a.gen {
			a.store.SetSemesters(m.list)
			a.log.Debug().Int("count", len(m.list)).Msg("semesters loaded")
			a.settle()
		}
	case subjectsMsg:
		if m.gen == a.gen {
			a.store.SetSubjects(m.list)
			a.log.Debug().Int("count", len(m.list)).Msg("subjects loaded")
			a.settle()
		}
	case loadErrMsg:
		if m.gen != a.gen {
			return a, nil
		}
		a.log.Error().Err(m.err).Str("collection", string(m.collection)).Msg("catalog fetch failed")
		a.store.Fail(m.collection, m.err)
		a.settle()
	case navigatedMsg:
		a.setStatus("opened "+m.nav.String(), false)
	case errMsg:
		a.setStatus("error: "+m.Error(), true)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.cancel()
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		a.move(-1)
	case key.Matches(m, a.keys.Down):
		a.move(1)
	case key.Matches(m, a.keys.Toggle):
		return a.activate()
	case key.Matches(m, a.keys.Collapse):
		a.collapse()
	case key.Matches(m, a.keys.Refresh):
		a.gen++
		a.refreshing = true
		a.store.Reset()
		a.setStatus("refreshing...", false)
		return a, a.loadAll()
	case key.Matches(m, a.keys.Search):
		a.searching = true
		a.search.SetValue("")
		return a, a.search.Focus()
	}
	return a, nil
}

func (a *App) updateSearch(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		a.cancel()
		return a, tea.Quit
	case "esc":
		a.searching = false
		a.search.Blur()
		return a, nil
	case "enter":
		a.searching = false
		a.search.Blur()
		a.reveal(a.search.Value())
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	return a, cmd
}

// reveal expands the path to the best subject match and moves the cursor there.
func (a *App) reveal(query string) {
	matches := catalog.SearchSubjects(a.store.Departments(), a.store.Semesters(), a.store.Subjects(), query)
	if len(matches) == 0 {
		a.setStatus(fmt.Sprintf("no subject matches %q", query), true)
		return
	}
	best := matches[0]
	a.expansion = a.expansion.Reveal(best.Department, best.Semester)
	a.cursorKey = rowKey(rowSubject, best.Subject.ID)
	a.setStatus(fmt.Sprintf("%d match(es) for %q", len(matches), query), false)
}

func (a *App) activate() (tea.Model, tea.Cmd) {
	rows := a.rows()
	idx := a.cursorIndex(rows)
	if idx < 0 {
		return a, nil
	}
	r := rows[idx]
	a.cursorKey = r.key()
	switch r.kind {
	case rowDepartment:
		a.expansion = a.expansion.ToggleDepartment(r.id)
	case rowSemester:
		a.expansion = a.expansion.ToggleSemester(r.id)
	case rowSubject:
		nav := a.dispatcher.Select(r.id, r.name)
		a.selected = &nav
		a.log.Info().Str("subject", r.id).Str("target", nav.String()).Msg("subject selected")
		if a.navigator == nil {
			a.cancel()
			return a, tea.Quit
		}
		return a, a.navigateCmd(nav)
	}
	return a, nil
}

// collapse closes the innermost expanded node and puts the cursor on it.
func (a *App) collapse() {
	e := a.expansion
	switch {
	case e.Collapsed():
		return
	case e.Semester != "":
		a.expansion = e.ToggleSemester(e.Semester)
		a.cursorKey = rowKey(rowSemester, e.Semester)
	default:
		a.expansion = e.ToggleDepartment(e.Department)
		a.cursorKey = rowKey(rowDepartment, e.Department)
	}
}

// settle ends a refresh once every collection has arrived or failed.
func (a *App) settle() {
	if !a.refreshing || !a.store.Ready() {
		return
	}
	a.refreshing = false
	for _, c := range []catalog.Collection{catalog.Departments, catalog.Semesters, catalog.Subjects} {
		if a.store.Status(c) == catalog.Failed {
			a.setStatus("refresh finished with errors", true)
			return
		}
	}
	a.setStatus("catalog refreshed", false)
}

func (a *App) navigateCmd(nav catalog.Navigation) tea.Cmd {
	return func() tea.Msg {
		if err := a.navigator.Navigate(a.ctx, nav); err != nil {
			return errMsg{err}
		}
		return navigatedMsg{nav: nav}
	}
}

// move steps the cursor over selectable rows, stopping at either end.
func (a *App) move(delta int) {
	rows := a.rows()
	idx := a.cursorIndex(rows)
	if idx < 0 {
		return
	}
	a.cursorKey = rows[idx].key()
	for i := idx + delta; i >= 0 && i < len(rows); i += delta {
		if rows[i].selectable() {
			a.cursorKey = rows[i].key()
			return
		}
	}
}

// cursorIndex locates the cursor row. When the remembered row is no longer
// visible the first selectable row takes over; -1 means nothing is selectable.
func (a *App) cursorIndex(rows []row) int {
	first := -1
	for i, r := range rows {
		if !r.selectable() {
			continue
		}
		if r.key() == a.cursorKey {
			return i
		}
		if first < 0 {
			first = i
		}
	}
	return first
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}
