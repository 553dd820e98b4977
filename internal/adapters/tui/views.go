package tui

import (
	"fmt"
	"strings"

	"github.com/corey/acro/internal/domain/catalog"
	"github.com/corey/acro/internal/ports"
	"github.com/gdamore/tcell/v2"
	"github.com/sahilm/fuzzy"
)

type viewKind int

const (
	viewMenu viewKind = iota
	viewCategories
	viewEntries
	viewDetail
	viewResults
)

// Menu labels, in display order.
const (
	menuBrowse = "Browse Acronyms"
	menuAdd    = "Add Acronym"
	menuEdit   = "Edit Acronym"
	menuDelete = "Delete Acronym"
	menuSearch = "Search"
	menuQuit   = "Quit"
)

type item struct {
	label    string
	entry    *ports.Entry
	category string
	action   func(*Browser)
}

type listState struct {
	cursor int // index into visible
	offset int // first visible row
}

type view struct {
	kind  viewKind
	title string

	items   []item
	visible []int // indexes into items after filtering
	list    listState
	rows    int // list rows at last draw

	filter    []rune
	filtering bool

	category string       // viewEntries
	acronym  string       // viewDetail
	entry    *ports.Entry // viewDetail
	mentions []*ports.Entry
	scroll   int
	query    string // viewResults
}

func newMenuView() *view {
	return &view{
		kind:  viewMenu,
		title: "Acronym Reference",
		items: []item{
			{label: menuBrowse, action: func(b *Browser) { b.push(newCategoriesView()) }},
			{label: menuAdd, action: func(b *Browser) { b.startAdd() }},
			{label: menuEdit, action: func(b *Browser) { b.promptAcronym(menuEdit, b.startEdit) }},
			{label: menuDelete, action: func(b *Browser) { b.promptAcronym(menuDelete, b.confirmDelete) }},
			{label: menuSearch, action: func(b *Browser) { b.startSearch() }},
			{label: menuQuit, action: func(b *Browser) { b.done = true }},
		},
	}
}

func newCategoriesView() *view {
	return &view{kind: viewCategories, title: "Categories"}
}

func newEntriesView(category string) *view {
	return &view{kind: viewEntries, title: category, category: category}
}

func newDetailView(e *ports.Entry) *view {
	return &view{kind: viewDetail, title: e.Acronym, acronym: e.Acronym, entry: e}
}

func newResultsView(query string) *view {
	return &view{kind: viewResults, title: fmt.Sprintf("Results for %q", query), query: query}
}

func entryLabel(e *ports.Entry) string {
	if d := ports.Value(e.Definition); d != "" {
		return fmt.Sprintf("%-8s %s", e.Acronym, d)
	}
	return e.Acronym
}

func entryItems(entries []*ports.Entry) []item {
	items := make([]item, 0, len(entries))
	for _, e := range entries {
		if !e.HasAcronym() {
			continue
		}
		items = append(items, item{label: entryLabel(e), entry: e})
	}
	return items
}

// load fills the view from the service. Returns false when the view no
// longer has anything to show.
func (v *view) load(b *Browser) bool {
	switch v.kind {
	case viewCategories:
		cats := b.svc.View()
		v.items = v.items[:0]
		for _, name := range cats.Names() {
			v.items = append(v.items, item{
				label:    fmt.Sprintf("%s (%d)", name, cats.Count(name)),
				category: name,
			})
		}
	case viewEntries:
		v.items = entryItems(b.svc.View().Entries(v.category))
	case viewResults:
		v.items = entryItems(b.svc.Search(v.query, b.limit))
	case viewDetail:
		e, ok := b.svc.Lookup(v.acronym)
		if !ok {
			return false
		}
		v.entry = e
		v.title = e.Acronym
		v.mentions = b.svc.Mentions(e)
		return true
	}
	v.applyFilter()
	return true
}

// applyFilter recomputes visible from the filter text. Matches are ordered
// best first; an empty filter shows every item in order.
func (v *view) applyFilter() {
	v.visible = v.visible[:0]
	if len(v.filter) == 0 {
		for i := range v.items {
			v.visible = append(v.visible, i)
		}
	} else {
		labels := make([]string, len(v.items))
		for i, it := range v.items {
			labels[i] = it.label
		}
		for _, m := range fuzzy.Find(string(v.filter), labels) {
			v.visible = append(v.visible, m.Index)
		}
	}
	v.moveTo(v.list.cursor)
}

func (v *view) moveTo(i int) {
	if i >= len(v.visible) {
		i = len(v.visible) - 1
	}
	if i < 0 {
		i = 0
	}
	v.list.cursor = i
	v.list.offset = scroll(i, v.list.offset, v.rows)
}

// selected returns the item under the cursor.
func (v *view) selected() (item, bool) {
	if v.list.cursor >= len(v.visible) {
		return item{}, false
	}
	return v.items[v.visible[v.list.cursor]], true
}

func (v *view) handleKey(b *Browser, ev *tcell.EventKey) {
	if v.filtering {
		v.handleFilterKey(ev)
		return
	}
	if v.kind == viewDetail {
		v.handleDetailKey(b, ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyUp:
		v.moveTo(v.list.cursor - 1)
	case tcell.KeyDown:
		v.moveTo(v.list.cursor + 1)
	case tcell.KeyPgUp:
		v.moveTo(v.list.cursor - max(v.rows, 1))
	case tcell.KeyPgDn:
		v.moveTo(v.list.cursor + max(v.rows, 1))
	case tcell.KeyHome:
		v.moveTo(0)
	case tcell.KeyEnd:
		v.moveTo(len(v.visible) - 1)
	case tcell.KeyEnter, tcell.KeyRight:
		v.activate(b)
	case tcell.KeyLeft:
		b.pop()
	case tcell.KeyEscape:
		if len(v.filter) > 0 {
			v.filter = v.filter[:0]
			v.applyFilter()
			return
		}
		b.pop()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			v.moveTo(v.list.cursor - 1)
		case 'j':
			v.moveTo(v.list.cursor + 1)
		case 'g':
			v.moveTo(0)
		case 'G':
			v.moveTo(len(v.visible) - 1)
		case 'l', ' ':
			v.activate(b)
		case 'h', 'q':
			b.pop()
		case '/':
			if v.kind != viewMenu {
				v.filtering = true
			}
		case 'e':
			if it, ok := v.selected(); ok && it.entry != nil {
				b.startEdit(it.entry)
			}
		case 'd':
			if it, ok := v.selected(); ok && it.entry != nil {
				b.confirmDelete(it.entry)
			}
		}
	}
}

func (v *view) handleFilterKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		v.filtering = false
	case tcell.KeyEscape:
		v.filtering = false
		v.filter = v.filter[:0]
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(v.filter) > 0 {
			v.filter = v.filter[:len(v.filter)-1]
		}
	case tcell.KeyUp:
		v.moveTo(v.list.cursor - 1)
		return
	case tcell.KeyDown:
		v.moveTo(v.list.cursor + 1)
		return
	case tcell.KeyRune:
		v.filter = append(v.filter, ev.Rune())
	default:
		return
	}
	v.list.cursor = 0
	v.applyFilter()
}

func (v *view) activate(b *Browser) {
	it, ok := v.selected()
	if !ok {
		return
	}
	switch {
	case it.action != nil:
		it.action(b)
	case it.entry != nil:
		b.openEntry(it.entry)
	case v.kind == viewCategories:
		b.push(newEntriesView(it.category))
	}
}

func (v *view) handleDetailKey(b *Browser, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		v.scroll--
	case tcell.KeyDown:
		v.scroll++
	case tcell.KeyLeft, tcell.KeyEscape:
		b.pop()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			v.scroll--
		case 'j':
			v.scroll++
		case 'h', 'q':
			b.pop()
		case 'e':
			b.startEdit(v.entry)
		case 'd':
			b.confirmDelete(v.entry)
		}
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}

func (v *view) help() string {
	switch {
	case v.filtering:
		return "type to filter  enter keep  esc clear"
	case v.kind == viewMenu:
		return "j/k move  enter select  q quit"
	case v.kind == viewDetail:
		return "j/k scroll  e edit  d delete  q back"
	case v.kind == viewCategories:
		return "j/k move  enter open  / filter  q back"
	default:
		return "j/k move  enter open  / filter  e edit  d delete  q back"
	}
}

// detailLines renders the entry as wrapped, styled lines.
func (v *view) detailLines(width int) ([]string, []tcell.Style) {
	var lines []string
	var styles []tcell.Style
	add := func(text string, style tcell.Style) {
		lines = append(lines, text)
		styles = append(styles, style)
	}
	for _, f := range catalog.DisplayFields(v.entry) {
		add(f.Label+":", styleLabel)
		style := styleNormal
		if f.Empty {
			style = styleDim
		}
		for _, l := range wrap(f.Value, width-2) {
			add("  "+l, style)
		}
	}
	add("Mentions:", styleLabel)
	if len(v.mentions) == 0 {
		add("  "+catalog.NoValue, styleDim)
	} else {
		names := make([]string, len(v.mentions))
		for i, m := range v.mentions {
			names[i] = m.Acronym
		}
		for _, l := range wrap(strings.Join(names, ", "), width-2) {
			add("  "+l, styleNormal)
		}
	}
	return lines, styles
}

func (v *view) draw(s tcell.Screen, r rect) {
	if v.kind == viewDetail {
		lines, styles := v.detailLines(r.w)
		if limit := len(lines) - r.h; v.scroll > limit {
			v.scroll = max(limit, 0)
		}
		for row := 0; row < r.h && v.scroll+row < len(lines); row++ {
			i := v.scroll + row
			drawText(s, r.x, r.y+row, r.w, styles[i], lines[i])
		}
		return
	}

	if v.filtering || len(v.filter) > 0 {
		drawText(s, r.x, r.y, r.w, styleInput, "/"+string(v.filter))
		r.y += 2
		r.h -= 2
	}
	v.rows = r.h
	v.list.offset = scroll(v.list.cursor, v.list.offset, r.h)

	if len(v.visible) == 0 {
		msg := "No entries"
		if len(v.filter) > 0 {
			msg = "No matches"
		}
		drawText(s, r.x, r.y, r.w, styleDim, msg)
		return
	}
	for row := 0; row < r.h; row++ {
		i := v.list.offset + row
		if i >= len(v.visible) {
			break
		}
		style := styleNormal
		if i == v.list.cursor {
			style = styleSelected
			fill(s, rect{x: r.x, y: r.y + row, w: r.w, h: 1}, style)
		}
		drawText(s, r.x+1, r.y+row, r.w-1, style, v.items[v.visible[i]].label)
	}
}
