// Package index derives the lookup structures from a catalog: the acronym/alias
// index, the category view, exact resolution, substring and fuzzy search.
//
// Every structure here is disposable. The app rebuilds it after each load and
// after each catalog mutation; nothing is persisted.
package index

import "github.com/corey/acro/internal/ports"

// Collision records a key that was claimed by one entry and later overwritten
// by a different entry. The later entry wins.
type Collision struct {
	Key      string       // lower-cased acronym or alias
	Kept     *ports.Entry // entry the key now resolves to
	Replaced *ports.Entry // entry that lost the key
}

// AcronymIndex maps lower(acronym) and lower(alias) to the owning entry.
// Several keys may point at the same entry.
type AcronymIndex struct {
	keys       map[string]*ports.Entry
	entries    []*ports.Entry // distinct indexed entries, catalog order
	collisions []Collision
	skipped    int
}

// BuildAcronymIndex indexes every entry with a non-blank acronym under its
// lower-cased acronym and each lower-cased alias. Last write wins on a key
// collision; collisions between different entries are recorded. Entries
// without an acronym are skipped and counted, never failing the build.
func BuildAcronymIndex(cat *ports.Catalog) *AcronymIndex {
	idx := &AcronymIndex{keys: make(map[string]*ports.Entry)}
	if cat == nil {
		return idx
	}

	for _, b := range cat.Categories {
		for _, e := range b.Entries {
			if !e.HasAcronym() {
				idx.skipped++
				continue
			}
			idx.entries = append(idx.entries, e)
			idx.put(foldKey(e.Acronym), e)
			for _, alias := range e.Aliases {
				if k := foldKey(alias); k != "" {
					idx.put(k, e)
				}
			}
		}
	}
	return idx
}

func (x *AcronymIndex) put(key string, e *ports.Entry) {
	if prev, ok := x.keys[key]; ok && prev != e {
		x.collisions = append(x.collisions, Collision{Key: key, Kept: e, Replaced: prev})
	}
	x.keys[key] = e
}

// Lookup returns the entry stored under an already lower-cased key.
func (x *AcronymIndex) Lookup(key string) (*ports.Entry, bool) {
	e, ok := x.keys[key]
	return e, ok
}

// Entries returns the distinct indexed entries in catalog order.
func (x *AcronymIndex) Entries() []*ports.Entry { return x.entries }

// Keys returns every index key. Order is unspecified.
func (x *AcronymIndex) Keys() []string {
	keys := make([]string, 0, len(x.keys))
	for k := range x.keys {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of keys (acronyms plus aliases).
func (x *AcronymIndex) Len() int { return len(x.keys) }

// Collisions returns every key overwrite between distinct entries, in build order.
func (x *AcronymIndex) Collisions() []Collision { return x.collisions }

// Skipped returns how many entries had no acronym and were left out.
func (x *AcronymIndex) Skipped() int { return x.skipped }

// CategoryIndex is a read view of the catalog's buckets. It shares the
// catalog's slices: it is not a copy.
type CategoryIndex struct {
	cat *ports.Catalog
}

// BuildCategoryIndex returns the category view of cat.
func BuildCategoryIndex(cat *ports.Catalog) CategoryIndex {
	if cat == nil {
		cat = ports.NewCatalog()
	}
	return CategoryIndex{cat: cat}
}

// Names returns category names in catalog order.
func (c CategoryIndex) Names() []string { return c.cat.Names() }

// Entries returns the entries of one category, or nil if it does not exist.
func (c CategoryIndex) Entries(name string) []*ports.Entry {
	if b := c.cat.Bucket(name); b != nil {
		return b.Entries
	}
	return nil
}

// Count returns the number of entries in one category.
func (c CategoryIndex) Count(name string) int { return len(c.Entries(name)) }
