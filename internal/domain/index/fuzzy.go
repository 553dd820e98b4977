package index

import (
	"strings"

	"github.com/corey/acro/internal/ports"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultLimit is the result cap used when a caller passes limit <= 0.
	DefaultLimit = 3

	// DefaultCutoff rejects terms differing in more than about half their characters.
	DefaultCutoff = 0.55
)

// FuzzySearcher matches a query against every searchable term of the indexed
// entries and maps the best terms back to distinct entries.
type FuzzySearcher struct {
	matcher ports.TermMatcher
	cutoff  float64
}

// NewFuzzySearcher returns a searcher using matcher for similarity ranking.
// A cutoff outside (0, 1] falls back to DefaultCutoff.
func NewFuzzySearcher(matcher ports.TermMatcher, cutoff float64) *FuzzySearcher {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}
	return &FuzzySearcher{matcher: matcher, cutoff: cutoff}
}

// Cutoff returns the similarity threshold in use.
func (s *FuzzySearcher) Cutoff() float64 { return s.cutoff }

// Search returns up to limit distinct entries, most relevant first.
//
// Algorithm:
//  1. Normalize the query (trim, NFKC, upper case)
//  2. Build the search pool: acronym, aliases, related acronyms and every
//     whitespace token of definition/description/category, each mapped to
//     the entry that produced it (last registration wins)
//  3. Ask the matcher for up to 2*limit close terms
//  4. Map terms back to entries, skipping entries already collected
//
// No term over the cutoff is a normal outcome and yields an empty result.
func (s *FuzzySearcher) Search(idx *AcronymIndex, query string, limit int) []*ports.Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := NormalizeQuery(query)
	if q == "" || idx == nil {
		return nil
	}

	pool := BuildSearchPool(idx)
	// More distinct entries than terms can never come back.
	if n := pool.Len(); limit > n {
		limit = n
	}
	if limit == 0 {
		return nil
	}
	terms := s.matcher.CloseMatches(q, pool.Terms(), 2*limit, s.cutoff)

	results := make([]*ports.Entry, 0, limit)
	seen := make(map[*ports.Entry]bool, limit)
	for _, term := range terms {
		e := pool.Owner(term)
		if e == nil || seen[e] {
			continue
		}
		seen[e] = true
		results = append(results, e)
		if len(results) >= limit {
			break
		}
	}
	return results
}

// SearchPool maps each upper-cased searchable term to the entry that
// registered it last. It lives for a single search.
type SearchPool struct {
	owner map[string]*ports.Entry
	terms []string // first-registration order
}

// BuildSearchPool harvests terms from every indexed entry, in catalog order.
func BuildSearchPool(idx *AcronymIndex) *SearchPool {
	p := &SearchPool{owner: make(map[string]*ports.Entry)}
	for _, e := range idx.Entries() {
		p.add(e.Acronym, e)
		for _, a := range e.Aliases {
			p.add(a, e)
		}
		for _, r := range e.RelatedAcronyms {
			p.add(r, e)
		}
		for _, text := range []*string{e.Definition, e.Description, e.Category} {
			if text == nil {
				continue
			}
			for _, word := range strings.Fields(*text) {
				p.add(word, e)
			}
		}
	}
	return p
}

func (p *SearchPool) add(term string, e *ports.Entry) {
	t := strings.ToUpper(norm.NFKC.String(strings.TrimSpace(term)))
	if t == "" {
		return
	}
	if _, ok := p.owner[t]; !ok {
		p.terms = append(p.terms, t)
	}
	p.owner[t] = e
}

// Terms returns every distinct term in the pool.
func (p *SearchPool) Terms() []string { return p.terms }

// Owner returns the entry a term maps to, or nil.
func (p *SearchPool) Owner(term string) *ports.Entry { return p.owner[term] }

// Len returns the number of distinct terms.
func (p *SearchPool) Len() int { return len(p.terms) }
