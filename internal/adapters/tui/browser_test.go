package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/corey/acro/internal/app"
	"github.com/corey/acro/internal/logger"
	"github.com/corey/acro/internal/ports"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Browser: menu, lists, filter, detail, popups and live reload
// Expectation: every flow is driven by key events alone and every mutation
// reaches the service; the screen shows what the state says.
// =============================================================================

const testCatalog = `Security:
  - acronym: IDS
    definition: Intrusion Detection System
    aliases: [ID-Sys]
    related_acronyms: [IPS]
  - acronym: IPS
    definition: Intrusion Prevention System
    description: Blocks traffic that IDS flags, often paired with a SIEM tool.
  - acronym: SIEM
    definition: Security Information and Event Management
Networking:
  - acronym: TCP
    definition: Transmission Control Protocol
`

func newTestBrowser(t *testing.T) (*Browser, *app.App, tcell.SimulationScreen) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acronyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0644))

	cfg := app.DefaultConfig()
	cfg.Catalog = path
	a, err := app.New(app.Options{Config: cfg, Logger: logger.Discard()})
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	b := New(screen, a, Options{Logger: logger.Discard()})
	b.Draw()
	return b, a, screen
}

func key(b *Browser, k tcell.Key) {
	b.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
	b.Draw()
}

func typeText(b *Browser, s string) {
	for _, r := range s {
		b.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	b.Draw()
}

func screenText(s tcell.SimulationScreen) string {
	w, h := s.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// chooseMenu moves the menu cursor to label and selects it.
func chooseMenu(t *testing.T, b *Browser, label string) {
	t.Helper()
	require.Equal(t, viewMenu, b.top().kind)
	key(b, tcell.KeyHome)
	for i, it := range b.top().items {
		if it.label == label {
			for j := 0; j < i; j++ {
				typeText(b, "j")
			}
			key(b, tcell.KeyEnter)
			return
		}
	}
	t.Fatalf("no menu item %q", label)
}

// answer submits one prompt, replacing its prefilled text.
func answer(b *Browser, text string) {
	key(b, tcell.KeyCtrlU)
	typeText(b, text)
	key(b, tcell.KeyEnter)
}

func TestBrowser_MenuShowsItems(t *testing.T) {
	_, _, screen := newTestBrowser(t)
	text := screenText(screen)
	for _, label := range []string{menuBrowse, menuAdd, menuEdit, menuDelete, menuSearch, menuQuit} {
		assert.Contains(t, text, label)
	}
	assert.Contains(t, text, "╭")
	assert.Contains(t, text, "╯")
}

func TestBrowser_BrowseToDetail(t *testing.T) {
	b, _, screen := newTestBrowser(t)

	chooseMenu(t, b, menuBrowse)
	assert.Equal(t, viewCategories, b.top().kind)
	text := screenText(screen)
	assert.Contains(t, text, "Security (3)")
	assert.Contains(t, text, "Networking (1)")

	typeText(b, "l")
	assert.Equal(t, viewEntries, b.top().kind)
	assert.Equal(t, "Security", b.top().category)
	assert.Contains(t, screenText(screen), "Intrusion Prevention System")

	typeText(b, "j")
	key(b, tcell.KeyEnter)
	require.Equal(t, viewDetail, b.top().kind)
	assert.Equal(t, "IPS", b.top().entry.Acronym)

	text = screenText(screen)
	assert.Contains(t, text, "Definition:")
	assert.Contains(t, text, "Aliases:")
	assert.Contains(t, text, "None", "absent fields still render")
	assert.Contains(t, text, "Mentions:")
	assert.Contains(t, text, "IDS, SIEM")
}

func TestBrowser_BackAndQuit(t *testing.T) {
	b, _, _ := newTestBrowser(t)
	chooseMenu(t, b, menuBrowse)
	typeText(b, "l")
	assert.Len(t, b.stack, 3)

	key(b, tcell.KeyEscape)
	assert.Equal(t, viewCategories, b.top().kind)
	typeText(b, "h")
	assert.Equal(t, viewMenu, b.top().kind)
	assert.False(t, b.Done())

	typeText(b, "q")
	assert.True(t, b.Done())
}

func TestBrowser_QuitItemAndCtrlC(t *testing.T) {
	b, _, _ := newTestBrowser(t)
	chooseMenu(t, b, menuQuit)
	assert.True(t, b.Done())

	b, _, _ = newTestBrowser(t)
	chooseMenu(t, b, menuBrowse)
	assert.False(t, b.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.True(t, b.Done())
}

func TestBrowser_CursorClamps(t *testing.T) {
	b, _, _ := newTestBrowser(t)
	typeText(b, "kkk")
	assert.Equal(t, 0, b.top().list.cursor)
	typeText(b, "G")
	assert.Equal(t, 5, b.top().list.cursor)
	typeText(b, "jj")
	assert.Equal(t, 5, b.top().list.cursor)
	typeText(b, "g")
	assert.Equal(t, 0, b.top().list.cursor)
}

func TestBrowser_FilterEntries(t *testing.T) {
	b, _, screen := newTestBrowser(t)
	chooseMenu(t, b, menuBrowse)
	typeText(b, "l")

	typeText(b, "/manag")
	assert.True(t, b.top().filtering)
	assert.Contains(t, screenText(screen), "/manag")
	key(b, tcell.KeyEnter)
	assert.False(t, b.top().filtering)

	it, ok := b.top().selected()
	require.True(t, ok)
	assert.Equal(t, "SIEM", it.entry.Acronym)

	// Esc first clears the filter, then leaves the view.
	key(b, tcell.KeyEscape)
	assert.Equal(t, viewEntries, b.top().kind)
	assert.Len(t, b.top().visible, 3)
	key(b, tcell.KeyEscape)
	assert.Equal(t, viewCategories, b.top().kind)
}

func TestBrowser_FilterNoMatches(t *testing.T) {
	b, _, screen := newTestBrowser(t)
	chooseMenu(t, b, menuBrowse)
	typeText(b, "/qqqq")
	assert.Empty(t, b.top().visible)
	assert.Contains(t, screenText(screen), "No matches")

	key(b, tcell.KeyBackspace2)
	key(b, tcell.KeyBackspace2)
	key(b, tcell.KeyBackspace2)
	key(b, tcell.KeyBackspace2)
	assert.Len(t, b.top().visible, 2)
}

func TestBrowser_SearchExactOpensDetail(t *testing.T) {
	b, _, _ := newTestBrowser(t)
	chooseMenu(t, b, menuSearch)
	require.NotNil(t, b.modal)

	answer(b, "id-sys")
	require.Equal(t, viewDetail, b.top().kind)
	assert.Equal(t, "IDS", b.top().entry.Acronym)
}

func TestBrowser_SearchFuzzyListsResults(t *testing.T) {
	b, _, screen := newTestBrowser(t)
	chooseMenu(t, b, menuSearch)
	answer(b, "TCPP")

	require.Equal(t, viewResults, b.top().kind)
	require.NotEmpty(t, b.top().items)
	assert.Equal(t, "TCP", b.top().items[0].entry.Acronym)
	assert.Contains(t, screenText(screen), `Results for "TCPP"`)

	key(b, tcell.KeyEnter)
	assert.Equal(t, viewDetail, b.top().kind)
}

func TestBrowser_SearchNoMatches(t *testing.T) {
	b, _, screen := newTestBrowser(t)
	chooseMenu(t, b, menuSearch)
	answer(b, "zzzzzzzz")

	require.NotNil(t, b.modal)
	assert.Equal(t, modalMessage, b.modal.kind)
	assert.Contains(t, screenText(screen), "No matches")

	typeText(b, "x")
	assert.Nil(t, b.modal)
	assert.Equal(t, viewMenu, b.top().kind)
}

func TestBrowser_PromptEscapeCancels(t *testing.T) {
	b, _, _ := newTestBrowser(t)
	chooseMenu(t, b, menuSearch)
	typeText(b, "IDS")
	key(b, tcell.KeyEscape)
	assert.Nil(t, b.modal)
	assert.Equal(t, "Cancelled", b.Status())
	assert.Equal(t, viewMenu, b.top().kind)
}

func TestBrowser_AddEntry(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	chooseMenu(t, b, menuAdd)

	answer(b, "DNS")
	answer(b, "Domain Name System")
	answer(b, "Networking")
	for i := 0; i < 5; i++ {
		key(b, tcell.KeyEnter) // description, aliases, origin, related, notes
	}

	assert.Nil(t, b.modal)
	assert.Equal(t, "Added DNS", b.Status())
	require.Equal(t, viewDetail, b.top().kind)

	e, ok := a.Lookup("dns")
	require.True(t, ok)
	assert.Equal(t, "Domain Name System", ports.Value(e.Definition))
	assert.Nil(t, e.Description, "empty answers leave fields absent")
	assert.Nil(t, e.Aliases)
	assert.Equal(t, 2, a.View().Count("Networking"))
}

func TestBrowser_AddEmptyAcronymCancels(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	chooseMenu(t, b, menuAdd)
	key(b, tcell.KeyEnter)

	assert.Nil(t, b.modal)
	assert.Equal(t, "Cancelled", b.Status())
	assert.Equal(t, 4, a.Catalog.Len())
}

func TestBrowser_EditFromDetail(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	chooseMenu(t, b, menuSearch)
	answer(b, "IDS")
	require.Equal(t, viewDetail, b.top().kind)

	typeText(b, "e")
	require.NotNil(t, b.modal)
	assert.Equal(t, "IDS", string(b.modal.input), "prompts are prefilled")

	// Keep the acronym, replace the definition, keep the rest.
	key(b, tcell.KeyEnter)
	answer(b, "Intrusion Detection Sensor")
	for i := 0; i < 6; i++ {
		key(b, tcell.KeyEnter)
	}

	assert.Equal(t, "Saved IDS", b.Status())
	e, ok := a.Lookup("IDS")
	require.True(t, ok)
	assert.Equal(t, "Intrusion Detection Sensor", ports.Value(e.Definition))
	assert.Equal(t, []string{"ID-Sys"}, e.Aliases, "untouched fields are kept")
	assert.Equal(t, viewDetail, b.top().kind)
}

func TestBrowser_EditRenameKeepsDetail(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	chooseMenu(t, b, menuSearch)
	answer(b, "TCP")

	typeText(b, "e")
	answer(b, "TCP/IP")
	for i := 0; i < 7; i++ {
		key(b, tcell.KeyEnter)
	}

	require.Equal(t, viewDetail, b.top().kind)
	assert.Equal(t, "TCP/IP", b.top().entry.Acronym)
	_, ok := a.Lookup("TCP")
	assert.False(t, ok)
}

func TestBrowser_EditClearsField(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	chooseMenu(t, b, menuEdit)
	answer(b, "IPS")

	key(b, tcell.KeyEnter) // acronym
	key(b, tcell.KeyEnter) // definition
	key(b, tcell.KeyEnter) // category
	answer(b, "")          // description
	for i := 0; i < 4; i++ {
		key(b, tcell.KeyEnter)
	}

	e, ok := a.Lookup("IPS")
	require.True(t, ok)
	assert.Nil(t, e.Description)
}

func TestBrowser_EditWithoutChanges(t *testing.T) {
	b, _, _ := newTestBrowser(t)
	chooseMenu(t, b, menuEdit)
	answer(b, "SIEM")
	for i := 0; i < 8; i++ {
		key(b, tcell.KeyEnter)
	}
	assert.Equal(t, "No changes", b.Status())
}

func TestBrowser_EditUnknownAcronym(t *testing.T) {
	b, _, screen := newTestBrowser(t)
	chooseMenu(t, b, menuEdit)
	answer(b, "NOPE")

	require.NotNil(t, b.modal)
	assert.Equal(t, modalMessage, b.modal.kind)
	assert.Contains(t, screenText(screen), `No entry for "NOPE"`)
}

func TestBrowser_DeleteConfirmed(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	chooseMenu(t, b, menuDelete)
	answer(b, "SIEM")
	require.NotNil(t, b.modal)
	assert.Equal(t, modalConfirm, b.modal.kind)

	typeText(b, "y")
	assert.Equal(t, "Deleted SIEM", b.Status())
	_, ok := a.Lookup("SIEM")
	assert.False(t, ok)
}

func TestBrowser_DeleteDeclined(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	chooseMenu(t, b, menuDelete)
	answer(b, "SIEM")
	typeText(b, "n")

	assert.Equal(t, "Cancelled", b.Status())
	_, ok := a.Lookup("SIEM")
	assert.True(t, ok)
}

func TestBrowser_DeleteFromDetailPops(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	chooseMenu(t, b, menuBrowse)
	typeText(b, "j")
	key(b, tcell.KeyEnter) // Networking
	key(b, tcell.KeyEnter) // TCP
	require.Equal(t, viewDetail, b.top().kind)

	typeText(b, "d")
	typeText(b, "y")

	assert.Equal(t, viewEntries, b.top().kind, "detail of a deleted entry closes")
	assert.Empty(t, b.top().items)
	assert.Equal(t, 0, a.View().Count("Networking"))
}

func TestBrowser_ExternalChangeReloads(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	chooseMenu(t, b, menuBrowse)

	updated := testCatalog + "  - acronym: UDP\n    definition: User Datagram Protocol\n"
	require.NoError(t, os.WriteFile(a.Paths.Catalog, []byte(updated), 0644))

	b.HandleEvent(tcell.NewEventInterrupt(nil))
	assert.Equal(t, "Catalog changed on disk, reloaded", b.Status())
	_, ok := a.Lookup("UDP")
	assert.True(t, ok)

	items := b.top().items
	require.Len(t, items, 2)
	assert.Equal(t, "Networking (2)", items[1].label)
}

func TestBrowser_OwnWritesDoNotReload(t *testing.T) {
	b, _, _ := newTestBrowser(t)
	chooseMenu(t, b, menuDelete)
	answer(b, "TCP")
	typeText(b, "y")
	require.Equal(t, "Deleted TCP", b.Status())

	b.HandleEvent(tcell.NewEventInterrupt(nil))
	assert.Equal(t, "Deleted TCP", b.Status(), "our own save is not a change")
}

func TestBrowser_ExternalChangeMalformed(t *testing.T) {
	b, a, _ := newTestBrowser(t)
	require.NoError(t, os.WriteFile(a.Paths.Catalog, []byte("Security: oops\n"), 0644))

	b.HandleEvent(tcell.NewEventInterrupt(nil))
	assert.True(t, strings.HasPrefix(b.Status(), "Reload failed: "))
	_, ok := a.Lookup("IDS")
	assert.True(t, ok, "the last good catalog stays loaded")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"abcd", "ef"}, wrap("abcdef", 4))
	assert.Equal(t, []string{"a", "b"}, wrap("a\nb", 10))
	assert.Equal(t, []string{""}, wrap("", 10))
}

func TestWrap_WideCharactersInNarrowPane(t *testing.T) {
	done := make(chan []string, 1)
	go func() { done <- wrap("漢字", 1) }()

	select {
	case got := <-done:
		assert.Equal(t, []string{"漢", "字"}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("wrap did not return")
	}

	assert.Equal(t, []string{"ab", "漢", "字c"}, wrap("ab漢字c", 3))
	assert.Equal(t, []string{"x", "漢", "字"}, wrap("x 漢字", 1))
}

func TestSplitWidth(t *testing.T) {
	head, tail := splitWidth("漢字", 1)
	assert.Equal(t, "漢", head)
	assert.Equal(t, "字", tail)

	head, tail = splitWidth("e\u0301tude", 2)
	assert.Equal(t, "e\u0301t", head, "combining marks stay with their base")
	assert.Equal(t, "ude", tail)
}

func TestScroll(t *testing.T) {
	assert.Equal(t, 0, scroll(3, 0, 5))
	assert.Equal(t, 1, scroll(5, 0, 5))
	assert.Equal(t, 2, scroll(2, 4, 5))
}

func TestCentered(t *testing.T) {
	r := centered(80, 24, 30, 8, 2)
	assert.Equal(t, rect{x: 25, y: 8, w: 30, h: 8}, r)

	r = centered(20, 10, 30, 8, 2)
	assert.Equal(t, 16, r.w)
	assert.Equal(t, 6, r.h)
}
