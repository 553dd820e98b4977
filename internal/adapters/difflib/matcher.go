// Package difflib implements ports.TermMatcher with the Ratcliff/Obershelp
// "gestalt" similarity of github.com/pmezard/go-difflib. Ratio is
// 2*M/T where M is the number of characters in matching blocks and T the total
// length of both strings, so 0.55 rejects pairs that share less than about
// half their characters.
package difflib

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Matcher ranks candidates the way Python's difflib.get_close_matches does:
// cheap upper bounds first, then the full ratio, best score first and ties
// broken by the larger term.
type Matcher struct{}

// NewMatcher returns a stateless close-match ranker.
func NewMatcher() *Matcher {
	return &Matcher{}
}

type scored struct {
	term  string
	score float64
}

// CloseMatches returns up to n candidates with ratio >= cutoff, best first.
func (m *Matcher) CloseMatches(query string, candidates []string, n int, cutoff float64) []string {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}

	sm := difflib.NewMatcher(nil, nil)
	// seq2 is cached by the matcher; the query stays fixed across candidates.
	sm.SetSeq2(runes(query))

	var hits []scored
	for _, c := range candidates {
		sm.SetSeq1(runes(c))
		if sm.RealQuickRatio() < cutoff || sm.QuickRatio() < cutoff {
			continue
		}
		if r := sm.Ratio(); r >= cutoff {
			hits = append(hits, scored{term: c, score: r})
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].term > hits[j].term
	})
	if len(hits) > n {
		hits = hits[:n]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.term
	}
	return out
}

// Ratio returns the similarity of a and b in [0, 1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

// runes splits s into one sequence element per character.
func runes(s string) []string {
	return strings.Split(s, "")
}
