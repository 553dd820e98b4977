package index

import (
	"strings"

	"github.com/corey/acro/internal/ports"
	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery trims, applies NFKC (so full-width and compatibility forms
// compare equal to their plain forms) and upper-cases a user query.
func NormalizeQuery(q string) string {
	return strings.ToUpper(norm.NFKC.String(strings.TrimSpace(q)))
}

// Resolve returns the entry whose acronym or alias equals query,
// case-insensitively. The second result is false when nothing matches.
func Resolve(idx *AcronymIndex, query string) (*ports.Entry, bool) {
	k := foldKey(query)
	if k == "" || idx == nil {
		return nil, false
	}
	return idx.Lookup(k)
}

// foldKey is shared by the index builder and Resolve so any case or width
// variant of a stored key resolves to it. Entry.Matches uses the same form.
func foldKey(s string) string {
	return ports.FoldKey(s)
}
