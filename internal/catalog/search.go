package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is a ranked search hit.
type Match struct {
	Subject    Subject
	Department string
	Semester   string
	Score      int
	Distance   int
}

// SearchSubjects ranks reachable subjects against query. Subjects whose
// semester or department is missing are skipped. Higher score wins; ties go to
// the smaller edit distance, then to catalog order.
func SearchSubjects(departments []Department, semesters []Semester, subjects []Subject, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	reachable := reachableSemesters(departments, semesters)
	var out []Match
	for _, sub := range subjects {
		deptID, found := reachable[sub.Semester]
		if !found {
			continue
		}
		ok, score := fuzzyMatchScore(sub.Label(), query)
		if !ok {
			continue
		}
		out = append(out, Match{
			Subject:    sub,
			Department: deptID,
			Semester:   sub.Semester,
			Score:      score,
			Distance:   levenshtein.ComputeDistance(strings.ToLower(sub.Label()), strings.ToLower(query)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Distance < out[j].Distance
	})
	return out
}

// reachableSemesters maps each semester id to the department it renders under.
// The first semester with a given id and a known department wins.
func reachableSemesters(departments []Department, semesters []Semester) map[string]string {
	deptIDs := make(map[string]struct{}, len(departments))
	for _, d := range departments {
		deptIDs[d.ID] = struct{}{}
	}
	out := make(map[string]string, len(semesters))
	for _, s := range semesters {
		if _, ok := deptIDs[s.Department]; !ok {
			continue
		}
		if _, seen := out[s.ID]; !seen {
			out[s.ID] = s.Department
		}
	}
	return out
}

// fuzzyMatchScore reports whether every query rune appears in label in order,
// scoring prefix hits, runs of consecutive matches and exact matches.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := []rune(strings.ToLower(label))
	queryLower := []rune(strings.ToLower(query))

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}
