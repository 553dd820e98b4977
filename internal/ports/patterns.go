package ports

// PatternMatcher finds keywords in content using multi-pattern matching (Aho-Corasick).
// A single pass over the content finds all matching keywords simultaneously,
// regardless of how many keywords are in the set.
//
// The matcher must be rebuilt when the keyword set changes (after any catalog
// mutation, together with the acronym index).
type PatternMatcher interface {
	// Match returns the distinct keywords found in content, in order of first
	// occurrence. Only whole-word occurrences count. Returns nil if none match.
	Match(content string) []string

	// Rebuild replaces the entire keyword set and reconstructs the automaton.
	Rebuild(keywords []string)
}

// TermMatcher ranks candidate terms by approximate similarity to a query.
// The similarity metric and its scale are the implementation's choice, but
// cutoff is always a normalized similarity in (0, 1].
type TermMatcher interface {
	// CloseMatches returns up to n candidates whose similarity to query is at
	// least cutoff, best first. Returns nil when nothing clears the cutoff.
	CloseMatches(query string, candidates []string, n int, cutoff float64) []string
}
