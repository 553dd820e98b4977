package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/corey/acro/internal/domain/catalog"
	"github.com/corey/acro/internal/ports"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type modalKind int

const (
	modalPrompt modalKind = iota
	modalConfirm
	modalMessage
)

// modal is a centered popup that takes every key until it closes.
type modal struct {
	kind    modalKind
	title   string
	text    string
	input   []rune
	submit  func(string) // modalPrompt
	confirm func()       // modalConfirm, on "y"
}

func (b *Browser) prompt(title, text, initial string, submit func(string)) {
	b.modal = &modal{kind: modalPrompt, title: title, text: text, input: []rune(initial), submit: submit}
}

func (b *Browser) ask(title, text string, confirm func()) {
	b.modal = &modal{kind: modalConfirm, title: title, text: text, confirm: confirm}
}

func (b *Browser) message(title, text string) {
	b.modal = &modal{kind: modalMessage, title: title, text: text}
}

func (b *Browser) handleModalKey(ev *tcell.EventKey) {
	m := b.modal
	switch m.kind {
	case modalMessage:
		b.modal = nil
	case modalConfirm:
		b.modal = nil
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y') {
			m.confirm()
			return
		}
		b.status = "Cancelled"
	case modalPrompt:
		switch ev.Key() {
		case tcell.KeyEnter:
			b.modal = nil
			m.submit(strings.TrimSpace(string(m.input)))
		case tcell.KeyEscape:
			b.modal = nil
			b.status = "Cancelled"
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tcell.KeyCtrlU:
			m.input = m.input[:0]
		case tcell.KeyRune:
			m.input = append(m.input, ev.Rune())
		}
	}
}

func (m *modal) draw(s tcell.Screen, sw, sh int) {
	width := max(uniseg.StringWidth(m.text)+10, 30)
	if m.kind == modalPrompt {
		width = max(width, uniseg.StringWidth(string(m.input))+6)
	}
	lines := wrap(m.text, min(width, sw-4)-4)
	height := len(lines) + 4
	if m.kind == modalPrompt {
		height = max(height+2, 8)
	}
	r := centered(sw, sh, width, height, 2)
	drawBox(s, r, m.title)
	for i, l := range lines {
		drawText(s, r.x+2, r.y+2+i, r.w-4, styleNormal, l)
	}
	if m.kind != modalPrompt {
		return
	}

	// The input row scrolls so the end of the text stays visible.
	y := r.y + 2 + len(lines) + 1
	field := r.w - 4
	text := string(m.input)
	for uniseg.StringWidth(text) >= field && text != "" {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
	}
	fill(s, rect{x: r.x + 2, y: y, w: field, h: 1}, styleInput)
	used := drawText(s, r.x+2, y, field, styleInput, text)
	s.ShowCursor(r.x+2+used, y)
}

// promptAcronym asks for an acronym or alias and hands the matching entry
// to next.
func (b *Browser) promptAcronym(title string, next func(*ports.Entry)) {
	b.prompt(title, "Acronym:", "", func(q string) {
		if q == "" {
			b.status = "Cancelled"
			return
		}
		e, ok := b.svc.Lookup(q)
		if !ok {
			b.message(title, fmt.Sprintf("No entry for %q.", q))
			return
		}
		next(e)
	})
}

func fieldPrompt(f ports.Field) string {
	if f.IsList() {
		return catalog.Label(f) + " (comma-separated):"
	}
	return catalog.Label(f) + ":"
}

// promptFields asks for each field in turn, prefilled from base when set,
// then calls done with every answer.
func (b *Browser) promptFields(title string, fields []ports.Field, base *ports.Entry, values map[ports.Field]string, done func(map[ports.Field]string)) {
	if len(fields) == 0 {
		done(values)
		return
	}
	f := fields[0]
	initial := ""
	if base != nil {
		initial, _ = ports.FieldText(base, f)
	}
	b.prompt(title, fieldPrompt(f), initial, func(v string) {
		values[f] = v
		b.promptFields(title, fields[1:], base, values, done)
	})
}

// startAdd collects a new entry field by field. An empty acronym cancels;
// other empty answers leave the field absent.
func (b *Browser) startAdd() {
	b.prompt(menuAdd, fieldPrompt(ports.FieldAcronym), "", func(acronym string) {
		if acronym == "" {
			b.status = "Cancelled"
			return
		}
		values := map[ports.Field]string{}
		b.promptFields(menuAdd, ports.Fields[1:], nil, values, func(values map[ports.Field]string) {
			e := &ports.Entry{Acronym: acronym}
			var changes ports.Changes
			for f, v := range values {
				if v != "" {
					changes.Set(f, v)
				}
			}
			changes.Apply(e)
			if err := b.svc.Add(e); err != nil {
				b.fail("Add", err)
				b.refresh()
				return
			}
			b.log.Info("entry added", "acronym", e.Acronym)
			b.refresh()
			b.openEntry(e)
			b.status = "Added " + e.Acronym
		})
	})
}

// startEdit walks every field of e, prefilled with its current value.
// Unchanged answers are skipped; a cleared answer removes the field.
func (b *Browser) startEdit(e *ports.Entry) {
	title := "Edit " + e.Acronym
	b.promptFields(title, ports.Fields, e, map[ports.Field]string{}, func(values map[ports.Field]string) {
		var changes ports.Changes
		for _, f := range ports.Fields {
			v := values[f]
			if old, _ := ports.FieldText(e, f); v == strings.TrimSpace(old) {
				continue
			}
			if v == "" {
				changes.Clear = append(changes.Clear, f)
				continue
			}
			changes.Set(f, v)
		}
		if changes.IsEmpty() {
			b.status = "No changes"
			return
		}

		updated, ok, err := b.svc.Update(e.Acronym, changes)
		if err != nil {
			b.fail("Edit", err)
			b.refresh()
			return
		}
		if !ok {
			b.message(title, fmt.Sprintf("No entry for %q.", e.Acronym))
			return
		}
		b.log.Info("entry updated", "acronym", updated.Acronym)
		for _, v := range b.stack {
			if v.kind == viewDetail && v.entry == e {
				v.acronym = updated.Acronym
			}
		}
		b.refresh()
		b.status = "Saved " + updated.Acronym
	})
}

func (b *Browser) confirmDelete(e *ports.Entry) {
	acronym := e.Acronym
	b.ask(menuDelete, fmt.Sprintf("Delete %s? [y/N]", acronym), func() {
		ok, err := b.svc.Delete(acronym)
		if err != nil {
			b.fail("Delete", err)
			b.refresh()
			return
		}
		if !ok {
			b.message(menuDelete, fmt.Sprintf("No entry for %q.", acronym))
			return
		}
		b.log.Info("entry deleted", "acronym", acronym)
		b.refresh()
		b.status = "Deleted " + acronym
	})
}

// startSearch opens an exact match directly, otherwise lists fuzzy matches.
func (b *Browser) startSearch() {
	b.prompt(menuSearch, "Search:", "", func(q string) {
		if q == "" {
			b.status = "Cancelled"
			return
		}
		if e, ok := b.svc.Lookup(q); ok {
			b.openEntry(e)
			return
		}
		if len(b.svc.Search(q, b.limit)) == 0 {
			b.message(menuSearch, fmt.Sprintf("No matches for %q.", q))
			return
		}
		b.push(newResultsView(q))
	})
}

// Draw renders the current view, the footer and any open popup.
func (b *Browser) Draw() {
	s := b.screen
	s.Clear()
	s.HideCursor()
	w, h := s.Size()
	if w < 8 || h < 5 {
		s.Show()
		return
	}

	v := b.top()
	drawBox(s, rect{x: 0, y: 0, w: w, h: h - 1}, v.title)
	v.draw(s, rect{x: 2, y: 1, w: w - 4, h: h - 3})

	footer, style := v.help(), styleDim
	if b.status != "" {
		footer, style = b.status, styleLabel
	}
	drawText(s, 1, h-1, w-2, style, footer)

	if b.modal != nil {
		b.modal.draw(s, w, h)
	}
	s.Show()
}
