// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces and the catalog types, never on concrete adapters.
package ports

// CatalogStore reads and writes the catalog file. The whole file is the unit of
// read and write: there are no partial updates.
//
// Crash safety: Save and WriteBytes must replace the file atomically (write to a
// sibling temp file, then rename). A crash mid-write must leave the previous
// version intact.
type CatalogStore interface {
	// Path returns the location of the catalog file.
	Path() string

	// Load decodes the file into its raw, not yet normalized shape.
	// A missing or empty file yields an empty RawMapping, not an error.
	Load() (RawCatalog, error)

	// Save overwrites the file with the canonical form of cat.
	Save(cat *Catalog) error

	// Bytes returns the current file contents. Returns nil, nil if the file
	// does not exist.
	Bytes() ([]byte, error)

	// WriteBytes overwrites the file with data verbatim (used by undo).
	WriteBytes(data []byte) error
}

// History keeps previous versions of catalog files so an overwrite can be
// undone. Snapshots are scoped by catalog path; IDs increase monotonically
// within a path.
type History interface {
	// Snapshot stores data as the newest version for catalogPath.
	Snapshot(catalogPath string, data []byte, reason string) (uint64, error)

	// List returns snapshot metadata (without Data), newest first.
	List(catalogPath string) ([]Snapshot, error)

	// Get returns one snapshot including Data. Returns nil, nil if absent.
	Get(catalogPath string, id uint64) (*Snapshot, error)

	// Delete removes one snapshot. Deleting a missing snapshot is not an error.
	Delete(catalogPath string, id uint64) error

	// Prune keeps the newest keep snapshots and removes the rest.
	// Returns how many were removed.
	Prune(catalogPath string, keep int) (int, error)

	// Forget removes every snapshot of catalogPath. Idempotent.
	Forget(catalogPath string) error
}

// Snapshot is one stored version of a catalog file.
type Snapshot struct {
	ID        uint64 `json:"id"`
	Reason    string `json:"reason"`
	CreatedAt int64  `json:"created_at"` // unix seconds
	Size      int    `json:"size"`
	Data      []byte `json:"data,omitempty"`
}
