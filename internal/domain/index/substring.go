package index

import (
	"sort"
	"strings"

	"github.com/corey/acro/internal/ports"
)

// SearchSubstring returns every entry having an acronym or alias that
// contains query (case-insensitive), each entry once, sorted by acronym.
func SearchSubstring(idx *AcronymIndex, query string) []*ports.Entry {
	q := foldKey(query)
	if q == "" || idx == nil {
		return nil
	}

	var results []*ports.Entry
	for _, e := range idx.Entries() {
		if containsKey(e, q) {
			results = append(results, e)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := strings.ToUpper(results[i].Acronym), strings.ToUpper(results[j].Acronym)
		if a != b {
			return a < b
		}
		return results[i].Acronym < results[j].Acronym
	})
	return results
}

func containsKey(e *ports.Entry, q string) bool {
	if strings.Contains(foldKey(e.Acronym), q) {
		return true
	}
	for _, a := range e.Aliases {
		if strings.Contains(foldKey(a), q) {
			return true
		}
	}
	return false
}
