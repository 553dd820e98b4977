// Package ahocorasick implements ports.PatternMatcher using an Aho-Corasick automaton.
// It wraps the petar-dambovaliev/aho-corasick library for O(n + m + z) matching,
// used to spot catalog acronyms mentioned inside definition and description text.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Matcher finds whole-word, case-sensitive occurrences of a keyword set.
// Build() compiles an automaton; Match() returns matching keywords.
type Matcher struct {
	automaton aho.AhoCorasick
	keywords  []string
	built     bool
}

// NewMatcher returns a matcher compiled for keywords.
func NewMatcher(keywords []string) *Matcher {
	m := &Matcher{}
	m.Build(keywords)
	return m
}

// Build compiles the Aho-Corasick automaton from the given keywords.
// Leftmost-longest semantics make "TCP/IP" win over "TCP" at the same offset.
func (m *Matcher) Build(keywords []string) {
	m.keywords = make([]string, len(keywords))
	copy(m.keywords, keywords)
	m.built = false
	if len(m.keywords) == 0 {
		return
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchOnlyWholeWords: true,
		MatchKind:           aho.LeftMostLongestMatch,
		DFA:                 true,
	})
	m.automaton = builder.Build(m.keywords)
	m.built = true
}

// Match returns the distinct keywords found in content, in order of first occurrence.
func (m *Matcher) Match(content string) []string {
	if !m.built || len(m.keywords) == 0 || content == "" {
		return nil
	}
	matches := m.automaton.FindAll(content)
	if len(matches) == 0 {
		return nil
	}

	// Deduplicate by keyword
	seen := make(map[string]bool, len(matches))
	var result []string
	for i := range matches {
		kw := m.keywords[matches[i].Pattern()]
		if !seen[kw] {
			seen[kw] = true
			result = append(result, kw)
		}
	}
	return result
}

// Rebuild replaces the automaton with a new set of keywords.
func (m *Matcher) Rebuild(keywords []string) {
	m.Build(keywords)
}

// Len returns the number of compiled keywords.
func (m *Matcher) Len() int {
	return len(m.keywords)
}
