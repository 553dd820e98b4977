package index

import (
	"strings"

	"github.com/corey/acro/internal/ports"
)

// Mentions finds other catalog entries whose acronym or alias appears, as a
// whole word and with the same spelling, in an entry's definition or
// description. It complements the hand-maintained related_acronyms list.
type Mentions struct {
	idx     *AcronymIndex
	matcher ports.PatternMatcher
}

// NewMentions compiles the acronyms and aliases of idx into matcher.
// Single-character names are left out; they match too much prose.
func NewMentions(idx *AcronymIndex, matcher ports.PatternMatcher) *Mentions {
	seen := make(map[string]bool)
	var keywords []string
	for _, e := range idx.Entries() {
		names := append([]string{e.Acronym}, e.Aliases...)
		for _, n := range names {
			n = strings.TrimSpace(n)
			if len([]rune(n)) < 2 || seen[n] {
				continue
			}
			seen[n] = true
			keywords = append(keywords, n)
		}
	}
	matcher.Rebuild(keywords)
	return &Mentions{idx: idx, matcher: matcher}
}

// Of returns the entries mentioned by e, in order of first mention, without e
// itself and without entries e already lists in related_acronyms.
func (m *Mentions) Of(e *ports.Entry) []*ports.Entry {
	text := strings.TrimSpace(ports.Value(e.Definition) + "\n" + ports.Value(e.Description))
	if text == "" {
		return nil
	}

	skip := map[*ports.Entry]bool{e: true}
	for _, r := range e.RelatedAcronyms {
		if rel, ok := Resolve(m.idx, r); ok {
			skip[rel] = true
		}
	}

	var out []*ports.Entry
	for _, kw := range m.matcher.Match(text) {
		target, ok := Resolve(m.idx, kw)
		if !ok || skip[target] {
			continue
		}
		skip[target] = true
		out = append(out, target)
	}
	return out
}
