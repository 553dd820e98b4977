package ports

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is one acronym record. Acronym is the primary key; every other field is
// optional. Optional strings are nil when the source had no value, and optional
// lists are nil when absent and non-nil (possibly empty) when present. The
// distinction survives load, normalization and save.
type Entry struct {
	Acronym         string
	Definition      *string
	Category        *string
	Description     *string
	Aliases         []string
	Origin          *string
	RelatedAcronyms []string
	Notes           *string
}

// Text returns a pointer to s, for building optional Entry fields.
func Text(s string) *string {
	return &s
}

// Value dereferences an optional field, returning "" when absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// HasAcronym reports whether the entry carries a usable primary key.
func (e *Entry) HasAcronym() bool {
	return e != nil && strings.TrimSpace(e.Acronym) != ""
}

// FoldKey is the identity form of an acronym or alias: trimmed, NFKC
// normalized (full-width and compatibility forms become plain) and case
// folded. Two names denote the same key when their FoldKey is equal.
func FoldKey(s string) string {
	return strings.ToLower(strings.ToUpper(norm.NFKC.String(strings.TrimSpace(s))))
}

// Matches reports whether key names this entry, either as its acronym or as
// one of its aliases, compared by FoldKey.
func (e *Entry) Matches(key string) bool {
	k := FoldKey(key)
	if e == nil || k == "" {
		return false
	}
	if e.HasAcronym() && FoldKey(e.Acronym) == k {
		return true
	}
	for _, a := range e.Aliases {
		if FoldKey(a) == k {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := &Entry{Acronym: e.Acronym}
	c.Definition = cloneText(e.Definition)
	c.Category = cloneText(e.Category)
	c.Description = cloneText(e.Description)
	c.Origin = cloneText(e.Origin)
	c.Notes = cloneText(e.Notes)
	c.Aliases = cloneList(e.Aliases)
	c.RelatedAcronyms = cloneList(e.RelatedAcronyms)
	return c
}

func cloneText(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneList(l []string) []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l))
	copy(out, l)
	return out
}

// Category is one named bucket of entries. Entry order is file order.
type Category struct {
	Name    string
	Entries []*Entry
}

// Catalog is the canonical category -> entries mapping. Categories keep the
// order they were loaded or created in, which is the display and save order.
// An Entry belongs to exactly one Category.
type Catalog struct {
	Categories []*Category
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Bucket returns the category with the given name, or nil.
func (c *Catalog) Bucket(name string) *Category {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat
		}
	}
	return nil
}

// EnsureBucket returns the named category, appending an empty one if absent.
func (c *Catalog) EnsureBucket(name string) *Category {
	if cat := c.Bucket(name); cat != nil {
		return cat
	}
	cat := &Category{Name: name}
	c.Categories = append(c.Categories, cat)
	return cat
}

// RemoveBucket drops the named category. Returns false if it was not present.
func (c *Catalog) RemoveBucket(name string) bool {
	for i, cat := range c.Categories {
		if cat.Name == name {
			c.Categories = append(c.Categories[:i], c.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns category names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// Entries returns every entry in catalog order (category order, then entry order).
func (c *Catalog) Entries() []*Entry {
	var out []*Entry
	for _, cat := range c.Categories {
		out = append(out, cat.Entries...)
	}
	return out
}

// Len returns the total number of entries across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Entries)
	}
	return n
}

// Contains reports whether e (by identity) is held by some category.
func (c *Catalog) Contains(e *Entry) bool {
	for _, cat := range c.Categories {
		for _, x := range cat.Entries {
			if x == e {
				return true
			}
		}
	}
	return false
}
