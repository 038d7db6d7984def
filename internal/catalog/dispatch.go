package catalog

import (
	"net/url"
	"strings"
)

// DefaultRoute is the subject route used when none is configured.
const DefaultRoute = "/subjects/{id}"

// Navigation is the target produced by selecting a subject.
type Navigation struct {
	Path      string
	Query     url.Values
	SubjectID string
}

// String renders the path with its query string, if any.
func (n Navigation) String() string {
	if len(n.Query) == 0 {
		return n.Path
	}
	return n.Path + "?" + n.Query.Encode()
}

// URL resolves the navigation against base. An empty base yields the bare path.
func (n Navigation) URL(base string) string {
	return strings.TrimRight(base, "/") + n.String()
}

// Dispatcher turns subject selections into navigation targets.
type Dispatcher struct {
	// Route is the path template; "{id}" is replaced by the escaped subject id.
	Route string
	// IncludeName adds the subject name as the "name" query parameter.
	IncludeName bool
}

// Select builds the navigation for a subject. The id is not checked against
// the catalog.
func (d Dispatcher) Select(subjectID, subjectName string) Navigation {
	route := d.Route
	if route == "" {
		route = DefaultRoute
	}
	nav := Navigation{SubjectID: subjectID}
	if strings.Contains(route, "{id}") {
		nav.Path = strings.ReplaceAll(route, "{id}", url.PathEscape(subjectID))
	} else {
		nav.Path = route
		nav.Query = url.Values{"subjectId": {subjectID}}
	}
	if d.IncludeName && subjectName != "" {
		if nav.Query == nil {
			nav.Query = url.Values{}
		}
		nav.Query.Set("name", subjectName)
	}
	return nav
}
