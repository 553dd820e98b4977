package app

import (
	"os"
	"path/filepath"
)

// StateDirName is the directory created beside the catalog file.
const StateDirName = ".acro"

// Paths holds all resolved filesystem paths for the .acro/ state directory.
// All fields are pre-computed strings: zero-alloc access after construction.
type Paths struct {
	Catalog string // the catalog file itself (absolute)

	Root      string // .acro/
	HistoryDB string // .acro/history.db

	LogDir    string // .acro/log/
	BrowseLog string // .acro/log/acro.log
}

// NewPaths constructs all resolved paths from the catalog file location.
func NewPaths(catalogPath string) *Paths {
	if abs, err := filepath.Abs(catalogPath); err == nil {
		catalogPath = abs
	}
	root := filepath.Join(filepath.Dir(catalogPath), StateDirName)
	return &Paths{
		Catalog: catalogPath,

		Root:      root,
		HistoryDB: filepath.Join(root, "history.db"),

		LogDir:    filepath.Join(root, "log"),
		BrowseLog: filepath.Join(root, "log", "acro.log"),
	}
}

// EnsureDirs creates all subdirectories under .acro/. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.LogDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}

// OpenLog opens the browser log for appending, creating directories as needed.
func (p *Paths) OpenLog() (*os.File, error) {
	if err := p.EnsureDirs(); err != nil {
		return nil, err
	}
	return os.OpenFile(p.BrowseLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
