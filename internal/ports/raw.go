package ports

// RawCatalog is the loosely-shaped catalog a data source hands over before
// normalization. It is one of:
//
//	RawList     a bare sequence of entries
//	RawMapping  an ordered mapping of category name -> RawValue
//
// The normalizer resolves it once into a *Catalog; nothing downstream re-checks shape.
type RawCatalog interface {
	rawCatalog()
}

// RawList is a catalog file whose root is a plain sequence of entries.
type RawList []*Entry

// RawMapping is a catalog file whose root is a mapping. Buckets keep file order.
type RawMapping []RawBucket

func (RawList) rawCatalog()    {}
func (RawMapping) rawCatalog() {}

// RawBucket is one key of a RawMapping.
type RawBucket struct {
	Name  string
	Value RawValue
}

// RawValue is the value under a category key: RawEntries, RawSingle or RawInvalid.
type RawValue interface {
	rawValue()
}

// RawEntries is a sequence of entries under one category.
type RawEntries []*Entry

// RawSingle is a single entry mapping stored directly under a category.
type RawSingle struct {
	Entry *Entry
}

// RawInvalid is a category value that is neither a sequence nor an entry
// mapping. Kind describes what was found (e.g. "scalar").
type RawInvalid struct {
	Kind string
}

func (RawEntries) rawValue() {}
func (RawSingle) rawValue()  {}
func (RawInvalid) rawValue() {}
