// Package catalog holds the canonical catalog operations: normalizing loaded
// data into category buckets, the add/update/delete mutator, and the field
// list every presenter renders.
package catalog

import (
	"fmt"

	"github.com/corey/acro/internal/ports"
)

// DefaultCategory is the bucket a bare list of entries is wrapped under.
const DefaultCategory = "default"

// Normalize resolves a raw catalog into canonical category buckets.
//
// Rules:
//  1. RawList -> a single DefaultCategory bucket
//  2. RawSingle under a key -> one-element bucket
//  3. RawEntries -> passed through in order
//  4. RawInvalid -> *MalformedCatalogError naming the category
//
// A key that appears twice is merged into the first bucket of that name.
// Entries are not validated here; an entry without an acronym is kept and
// skipped later by the index builder.
func Normalize(raw ports.RawCatalog) (*ports.Catalog, error) {
	cat := ports.NewCatalog()

	switch r := raw.(type) {
	case nil:
		return cat, nil

	case ports.RawList:
		b := cat.EnsureBucket(DefaultCategory)
		b.Entries = append(b.Entries, compact(r)...)
		return cat, nil

	case ports.RawMapping:
		for _, rb := range r {
			switch v := rb.Value.(type) {
			case ports.RawEntries:
				b := cat.EnsureBucket(rb.Name)
				b.Entries = append(b.Entries, compact(v)...)
			case ports.RawSingle:
				b := cat.EnsureBucket(rb.Name)
				if v.Entry != nil {
					b.Entries = append(b.Entries, v.Entry)
				}
			case ports.RawInvalid:
				return nil, &MalformedCatalogError{Category: rb.Name, Reason: "value is a " + v.Kind + ", want a list of entries or an entry"}
			default:
				return nil, &MalformedCatalogError{Category: rb.Name, Reason: fmt.Sprintf("unsupported value %T", rb.Value)}
			}
		}
		return cat, nil
	}

	return nil, fmt.Errorf("%w: unsupported root %T", ErrMalformedCatalog, raw)
}

// compact drops nil placeholders (e.g. an empty "- " list item).
func compact(entries []*ports.Entry) []*ports.Entry {
	out := make([]*ports.Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
