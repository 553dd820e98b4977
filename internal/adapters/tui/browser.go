// Package tui is the full-screen catalog browser: a menu, category and
// entry lists with an incremental fuzzy filter, an entry detail view, and
// popups for add, edit, delete and search.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/corey/acro/internal/domain/index"
	"github.com/corey/acro/internal/ports"
	"github.com/gdamore/tcell/v2"
)

// Service is what the browser needs from the application.
type Service interface {
	View() index.CategoryIndex
	Lookup(query string) (*ports.Entry, bool)
	Search(query string, limit int) []*ports.Entry
	Mentions(e *ports.Entry) []*ports.Entry
	Add(e *ports.Entry) error
	Update(acronym string, changes ports.Changes) (*ports.Entry, bool, error)
	Delete(acronym string) (bool, error)
	Reload() error
	Stale() (bool, error)
}

// Options configures a Browser.
type Options struct {
	Limit  int // fuzzy result count; 0 uses the service default
	Logger *slog.Logger
}

// Browser drives one tcell screen. All methods must be called from the
// goroutine running Run, except NotifyChange.
type Browser struct {
	screen tcell.Screen
	svc    Service
	limit  int
	log    *slog.Logger

	stack  []*view
	modal  *modal
	status string
	done   bool
}

// New creates a browser on an initialized screen, showing the main menu.
func New(screen tcell.Screen, svc Service, opts Options) *Browser {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	b := &Browser{screen: screen, svc: svc, limit: opts.Limit, log: log}
	b.push(newMenuView())
	return b
}

// Run draws and handles events until the user quits.
func (b *Browser) Run() error {
	b.Draw()
	for !b.done {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		b.HandleEvent(ev)
		if !b.done {
			b.Draw()
		}
	}
	return nil
}

// NotifyChange asks the browser to re-check the catalog file. Safe to call
// from any goroutine; the check runs on the event loop.
func (b *Browser) NotifyChange() {
	if err := b.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		b.log.Debug("change notification dropped", "err", err)
	}
}

// Done reports whether the user has quit.
func (b *Browser) Done() bool { return b.done }

// Status returns the current status line.
func (b *Browser) Status() string { return b.status }

// HandleEvent applies one event. Returns false once the browser is done.
func (b *Browser) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		b.screen.Sync()
	case *tcell.EventInterrupt:
		b.checkExternalChange()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			b.done = true
			break
		}
		if b.modal != nil {
			b.handleModalKey(ev)
			break
		}
		b.status = ""
		b.top().handleKey(b, ev)
	}
	return !b.done
}

func (b *Browser) checkExternalChange() {
	stale, err := b.svc.Stale()
	if err != nil {
		b.log.Warn("stat catalog", "err", err)
		return
	}
	if !stale {
		return
	}
	if err := b.svc.Reload(); err != nil {
		b.log.Warn("reload catalog", "err", err)
		b.status = "Reload failed: " + err.Error()
		return
	}
	b.log.Info("catalog reloaded after external change")
	b.refresh()
	b.status = "Catalog changed on disk, reloaded"
}

func (b *Browser) top() *view { return b.stack[len(b.stack)-1] }

func (b *Browser) push(v *view) {
	v.load(b)
	b.stack = append(b.stack, v)
}

// pop leaves the current view; popping the menu quits.
func (b *Browser) pop() {
	if len(b.stack) == 1 {
		b.done = true
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// refresh reloads every view on the stack from the service, dropping
// detail views whose entry no longer exists.
func (b *Browser) refresh() {
	kept := b.stack[:0]
	for _, v := range b.stack {
		if v.load(b) {
			kept = append(kept, v)
		}
	}
	b.stack = kept
}

func (b *Browser) openEntry(e *ports.Entry) {
	b.push(newDetailView(e))
}

func (b *Browser) fail(action string, err error) {
	b.log.Warn(action+" failed", "err", err)
	b.message("Error", fmt.Sprintf("%s failed: %v", action, err))
}
