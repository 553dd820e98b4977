// Package app wires together all adapters and domain logic.
// An App owns one catalog snapshot and its indexes; every mutation goes
// through it so the indexes are rebuilt and the file is saved in one step.
package app

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/corey/acro/internal/adapters/ahocorasick"
	"github.com/corey/acro/internal/adapters/bbolt"
	"github.com/corey/acro/internal/adapters/difflib"
	"github.com/corey/acro/internal/adapters/yamlfile"
	"github.com/corey/acro/internal/domain/catalog"
	"github.com/corey/acro/internal/domain/index"
	"github.com/corey/acro/internal/logger"
	"github.com/corey/acro/internal/ports"
)

var (
	// ErrNoHistory is returned by Undo when there is nothing to restore.
	ErrNoHistory = errors.New("no history to undo")

	// ErrMissingAcronym rejects entries without a primary key.
	ErrMissingAcronym = errors.New("acronym is required")
)

// App is the top-level container. It is not safe for concurrent use: the
// CLI and the browser each own one App and drive it from one goroutine.
type App struct {
	Config Config
	Paths  *Paths

	Store ports.CatalogStore

	Catalog    *ports.Catalog
	Index      *index.AcronymIndex
	Categories index.CategoryIndex
	Fuzzy      *index.FuzzySearcher

	history  ports.History // nil = open bbolt per operation
	patterns ports.PatternMatcher
	mentions *index.Mentions
	log      *slog.Logger
	digest   [sha256.Size]byte // of the bytes last loaded or saved
}

// Options holds initialization parameters for the App. Zero values select
// the production adapters.
type Options struct {
	Config   Config
	Store    ports.CatalogStore   // default: yamlfile store at Config.Catalog
	History  ports.History        // default: bbolt at Paths.HistoryDB, opened per write
	Matcher  ports.TermMatcher    // default: difflib
	Patterns ports.PatternMatcher // default: Aho-Corasick
	Logger   *slog.Logger
}

// New creates an App and loads the catalog.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store := opts.Store
	if store == nil {
		store = yamlfile.NewStore(cfg.Catalog)
	}
	matcher := opts.Matcher
	if matcher == nil {
		matcher = difflib.NewMatcher()
	}
	patterns := opts.Patterns
	if patterns == nil {
		patterns = ahocorasick.NewMatcher(nil)
	}
	log := opts.Logger
	if log == nil {
		log = logger.WithComponent("app")
	}

	a := &App{
		Config:   cfg,
		Paths:    NewPaths(store.Path()),
		Store:    store,
		Fuzzy:    index.NewFuzzySearcher(matcher, cfg.Cutoff),
		history:  opts.History,
		patterns: patterns,
		log:      log,
	}
	if err := a.Reload(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reload re-reads the catalog file and rebuilds every index.
func (a *App) Reload() error {
	data, err := a.Store.Bytes()
	if err != nil {
		return err
	}
	raw, err := a.Store.Load()
	if err != nil {
		return err
	}
	cat, err := catalog.Normalize(raw)
	if err != nil {
		return fmt.Errorf("load %s: %w", a.Store.Path(), err)
	}
	a.Catalog = cat
	a.digest = sha256.Sum256(data)
	a.reindex()
	a.log.Debug("catalog loaded",
		"path", a.Store.Path(),
		"categories", len(cat.Categories),
		"entries", cat.Len(),
		"keys", a.Index.Len())
	return nil
}

func (a *App) reindex() {
	a.Index = index.BuildAcronymIndex(a.Catalog)
	a.Categories = index.BuildCategoryIndex(a.Catalog)
	a.mentions = index.NewMentions(a.Index, a.patterns)
	if n := a.Index.Skipped(); n > 0 {
		a.log.Debug("entries without acronym skipped", "count", n)
	}
	for _, c := range a.Index.Collisions() {
		a.log.Debug("key collision", "key", c.Key, "kept", c.Kept.Acronym, "replaced", c.Replaced.Acronym)
	}
}

// Stale reports whether the catalog file differs from what this App last
// loaded or saved. Used to ignore watcher events caused by our own writes.
func (a *App) Stale() (bool, error) {
	data, err := a.Store.Bytes()
	if err != nil {
		return false, err
	}
	return sha256.Sum256(data) != a.digest, nil
}

// Lookup resolves an exact acronym or alias.
func (a *App) Lookup(query string) (*ports.Entry, bool) {
	return index.Resolve(a.Index, query)
}

// Search returns up to limit fuzzy matches; limit <= 0 uses the configured limit.
func (a *App) Search(query string, limit int) []*ports.Entry {
	return a.Fuzzy.Search(a.Index, query, a.Config.EffectiveLimit(limit))
}

// Substring returns every entry whose acronym or alias contains query.
func (a *App) Substring(query string) []*ports.Entry {
	return index.SearchSubstring(a.Index, query)
}

// Mentions returns the other entries named in e's definition or description.
func (a *App) Mentions(e *ports.Entry) []*ports.Entry {
	return a.mentions.Of(e)
}

// Add appends e to the bucket named by its category and saves.
func (a *App) Add(e *ports.Entry) error {
	if !e.HasAcronym() {
		return ErrMissingAcronym
	}
	e.Acronym = strings.TrimSpace(e.Acronym)
	catalog.Add(a.Catalog, e)
	return a.commit("add " + e.Acronym)
}

// Update applies changes to the first entry matching acronym and saves.
// Returns the updated entry, or false if nothing matched.
func (a *App) Update(acronym string, changes ports.Changes) (*ports.Entry, bool, error) {
	e, ok := catalog.Find(a.Catalog, acronym)
	if !ok {
		return nil, false, nil
	}
	if changes.Acronym != nil && strings.TrimSpace(*changes.Acronym) == "" {
		return nil, true, ErrMissingAcronym
	}
	for _, f := range changes.Clear {
		if f == ports.FieldAcronym {
			return nil, true, ErrMissingAcronym
		}
	}
	if changes.IsEmpty() {
		return e, true, nil
	}
	catalog.Update(a.Catalog, acronym, changes)
	return e, true, a.commit("edit " + e.Acronym)
}

// Delete removes the first entry matching acronym and saves.
func (a *App) Delete(acronym string) (bool, error) {
	e, ok := catalog.Find(a.Catalog, acronym)
	if !ok {
		return false, nil
	}
	catalog.Delete(a.Catalog, acronym)
	return true, a.commit("delete " + e.Acronym)
}

// commit snapshots the file as it is on disk, saves the in-memory catalog
// and rebuilds the indexes. A failed save reloads the file so memory and
// disk agree again. History failures are logged and do not block the save.
func (a *App) commit(reason string) error {
	prev, err := a.Store.Bytes()
	if err != nil {
		a.reloadAfterFailure()
		return err
	}
	if err := a.withHistory(func(h ports.History) error {
		if _, err := h.Snapshot(a.Paths.Catalog, prev, reason); err != nil {
			return err
		}
		_, err := h.Prune(a.Paths.Catalog, a.Config.HistoryKeep)
		return err
	}); err != nil {
		a.log.Warn("history not recorded", "reason", reason, "err", err)
	}

	if err := a.Store.Save(a.Catalog); err != nil {
		a.reloadAfterFailure()
		return fmt.Errorf("save: %w", err)
	}
	if data, err := a.Store.Bytes(); err == nil {
		a.digest = sha256.Sum256(data)
	}
	a.reindex()
	a.log.Info("catalog saved", "reason", reason, "entries", a.Catalog.Len())
	return nil
}

func (a *App) reloadAfterFailure() {
	if err := a.Reload(); err != nil {
		a.log.Error("reload after failed write", "err", err)
	}
}

// History lists the saved versions of the catalog, newest first.
func (a *App) History() ([]ports.Snapshot, error) {
	var out []ports.Snapshot
	err := a.withHistory(func(h ports.History) error {
		var err error
		out, err = h.List(a.Paths.Catalog)
		return err
	})
	return out, err
}

// Undo restores the catalog file to the newest snapshot, drops that
// snapshot and reloads. Returns ErrNoHistory when there is none.
func (a *App) Undo() (*ports.Snapshot, error) {
	var restored *ports.Snapshot
	err := a.withHistory(func(h ports.History) error {
		list, err := h.List(a.Paths.Catalog)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return ErrNoHistory
		}
		snap, err := h.Get(a.Paths.Catalog, list[0].ID)
		if err != nil {
			return err
		}
		if snap == nil {
			return ErrNoHistory
		}
		if err := a.Store.WriteBytes(snap.Data); err != nil {
			return err
		}
		restored = snap
		return h.Delete(a.Paths.Catalog, snap.ID)
	})
	if err != nil {
		return nil, err
	}
	if err := a.Reload(); err != nil {
		return restored, err
	}
	a.log.Info("undo", "snapshot", restored.ID, "reason", restored.Reason)
	return restored, nil
}

// ClearHistory drops every saved version of the catalog file.
func (a *App) ClearHistory() error {
	err := a.withHistory(func(h ports.History) error {
		return h.Forget(a.Paths.Catalog)
	})
	if err == nil {
		a.log.Info("history cleared", "catalog", a.Paths.Catalog)
	}
	return err
}

// withHistory runs fn against the injected history, or opens the bbolt
// store for the duration of fn so the lock is never held between commands.
func (a *App) withHistory(fn func(ports.History) error) error {
	if a.history != nil {
		return fn(a.history)
	}
	if err := a.Paths.EnsureDirs(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	store, err := bbolt.NewStore(a.Paths.HistoryDB)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// Report summarizes catalog health.
type Report struct {
	Path       string
	Categories int
	Entries    int
	Keys       int
	Skipped    int
	Collisions []index.Collision
}

// Healthy reports whether the catalog has no skipped entries or collisions.
func (r Report) Healthy() bool {
	return r.Skipped == 0 && len(r.Collisions) == 0
}

// Doctor inspects the loaded catalog.
func (a *App) Doctor() Report {
	return Report{
		Path:       a.Store.Path(),
		Categories: len(a.Catalog.Categories),
		Entries:    a.Catalog.Len(),
		Keys:       a.Index.Len(),
		Skipped:    a.Index.Skipped(),
		Collisions: a.Index.Collisions(),
	}
}

// View returns the category view of the loaded catalog.
func (a *App) View() index.CategoryIndex {
	return a.Categories
}
