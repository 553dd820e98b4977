package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformedCatalog marks a catalog whose structure cannot be normalized.
var ErrMalformedCatalog = errors.New("malformed catalog")

// MalformedCatalogError reports which category held an unusable value. An
// empty Category means the document as a whole has the wrong shape.
type MalformedCatalogError struct {
	Category string
	Reason   string
}

func (e *MalformedCatalogError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedCatalog, e.Reason)
	}
	return fmt.Sprintf("%s: category %q: %s", ErrMalformedCatalog, e.Category, e.Reason)
}

func (e *MalformedCatalogError) Unwrap() error {
	return ErrMalformedCatalog
}
