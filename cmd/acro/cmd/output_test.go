package cmd

import (
	"strings"
	"testing"

	"github.com/corey/acro/internal/ports"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Output formatting: entries, misses, fuzzy headers, partial listings
// Expectation: every field is printed in canonical order with "None" for
// absent values; plain output carries no escape codes.
// =============================================================================

func testEntry() *ports.Entry {
	return &ports.Entry{
		Acronym:     "IDS",
		Definition:  ports.Text("Intrusion Detection System"),
		Description: ports.Text("Monitors traffic."),
		Aliases:     []string{"ID-Sys", "NIDS"},
	}
}

func TestFormatEntry_Plain(t *testing.T) {
	got := formatEntry(testEntry(), nil, newPalette(false))
	want := separator + "\n" +
		"Acronym: IDS\n" +
		"Definition: Intrusion Detection System\n" +
		"Category: None\n" +
		"Description:\nMonitors traffic.\n" +
		"Aliases: ID-Sys, NIDS\n" +
		"Origin: None\n" +
		"Related Acronyms: None\n" +
		"Notes: None\n" +
		separator + "\n"
	assert.Equal(t, want, got)
	assert.Len(t, separator, 60)
}

func TestFormatEntry_Mentions(t *testing.T) {
	mentions := []*ports.Entry{{Acronym: "SIEM"}, {Acronym: "IPS"}}
	got := formatEntry(testEntry(), mentions, newPalette(false))
	assert.Contains(t, got, "See also: SIEM, IPS\n")
}

func TestFormatEntry_EmptyListIsNone(t *testing.T) {
	e := &ports.Entry{Acronym: "X1", Aliases: []string{}}
	got := formatEntry(e, nil, newPalette(false))
	assert.Contains(t, got, "Aliases: None\n")
}

func TestFormatEntry_Color(t *testing.T) {
	got := formatEntry(testEntry(), nil, newPalette(true))
	assert.Contains(t, got, colorCyan+colorBold+"Acronym:"+colorReset+" IDS")
	assert.Contains(t, got, colorMagenta+separator+colorReset)
	assert.Contains(t, got, colorGray+"None"+colorReset)
}

func TestFormatNotFound(t *testing.T) {
	got := formatNotFound("idz", newPalette(false))
	assert.Contains(t, got, "❌ Acronym 'IDZ' not found.")
	assert.Contains(t, got, "Tip: Try using -f for fuzzy matching:\n    acro idz -f\n")
	assert.True(t, strings.HasSuffix(got, separator+"\n"))
}

func TestFormatMatches(t *testing.T) {
	results := []*ports.Entry{{Acronym: "IDS"}, {Acronym: "IPS"}}
	got := formatMatches("idz", results, newPalette(false))
	assert.Contains(t, got, "No exact match for 'IDZ'")
	assert.Contains(t, got, "Closest matches:\n\n  • IDS\n  • IPS\n")
	assert.Contains(t, got, "Showing similar entries:")
}

func TestFormatMatches_None(t *testing.T) {
	got := formatMatches("qqq", nil, newPalette(false))
	assert.Contains(t, got, "No similar acronyms found.")
	assert.NotContains(t, got, "Closest matches")
}

func TestFormatPartial(t *testing.T) {
	hits := []*ports.Entry{testEntry(), {Acronym: "NIDS"}}
	got := formatPartial("ids", hits, newPalette(false))
	assert.Contains(t, got, "2 acronyms containing 'IDS'")
	assert.Contains(t, got, "  IDS        Intrusion Detection System\n")
	assert.Contains(t, got, "  NIDS       None\n")

	assert.Equal(t, "No acronyms containing 'ZZ'.\n", formatPartial("zz", nil, newPalette(false)))
}
