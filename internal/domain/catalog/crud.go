package catalog

import (
	"strings"

	"github.com/corey/acro/internal/ports"
)

// MiscCategory is the bucket an added entry lands in when it names no category.
const MiscCategory = "Misc"

// Add appends entry to the bucket named by its category, creating the bucket
// at the end of the catalog if needed. Duplicate acronyms are not checked.
func Add(cat *ports.Catalog, entry *ports.Entry) *ports.Catalog {
	name := MiscCategory
	if c := strings.TrimSpace(ports.Value(entry.Category)); c != "" {
		name = c
	}
	b := cat.EnsureBucket(name)
	b.Entries = append(b.Entries, entry)
	return cat
}

// Update applies changes to the first entry whose acronym or any alias equals
// acronym, compared by ports.FoldKey like lookup. Scanning stops at the first match, so a later
// duplicate is never reached. The entry stays in its bucket even if the
// category field changes. Returns false if nothing matched.
func Update(cat *ports.Catalog, acronym string, changes ports.Changes) (*ports.Catalog, bool) {
	b, i := find(cat, acronym)
	if b == nil {
		return cat, false
	}
	changes.Apply(b.Entries[i])
	return cat, true
}

// Delete removes the first entry matching acronym (same rule as Update),
// keeping the order of the remaining entries. A bucket left empty is removed.
// Returns false if nothing matched.
func Delete(cat *ports.Catalog, acronym string) (*ports.Catalog, bool) {
	b, i := find(cat, acronym)
	if b == nil {
		return cat, false
	}
	b.Entries = append(b.Entries[:i], b.Entries[i+1:]...)
	if len(b.Entries) == 0 {
		cat.RemoveBucket(b.Name)
	}
	return cat, true
}

// Find returns the first entry matching acronym by primary name or alias.
func Find(cat *ports.Catalog, acronym string) (*ports.Entry, bool) {
	b, i := find(cat, acronym)
	if b == nil {
		return nil, false
	}
	return b.Entries[i], true
}

func find(cat *ports.Catalog, acronym string) (*ports.Category, int) {
	key := strings.TrimSpace(acronym)
	if key == "" {
		return nil, -1
	}
	for _, b := range cat.Categories {
		for i, e := range b.Entries {
			if e.Matches(key) {
				return b, i
			}
		}
	}
	return nil, -1
}
