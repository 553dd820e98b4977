package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Entry changes: overwrite, clear, textual assignment
// Expectation: set fields replace (lists never merge), Clear runs last,
// absent stays distinct from empty.
// =============================================================================

func sampleEntry() *Entry {
	return &Entry{
		Acronym:    "IDS",
		Definition: Text("Intrusion Detection System"),
		Aliases:    []string{"ID-Sys"},
		Notes:      Text("keep"),
	}
}

func TestChanges_ApplyOverwritesAndReplacesLists(t *testing.T) {
	e := sampleEntry()
	Changes{
		Definition: Text("Intrusion Detection Sensor"),
		Aliases:    []string{"NIDS"},
	}.Apply(e)

	assert.Equal(t, "Intrusion Detection Sensor", Value(e.Definition))
	assert.Equal(t, []string{"NIDS"}, e.Aliases, "lists are replaced, not merged")
	assert.Equal(t, "keep", Value(e.Notes))
	assert.Equal(t, "IDS", e.Acronym)
}

func TestChanges_ClearRunsAfterSet(t *testing.T) {
	e := sampleEntry()
	Changes{Notes: Text("new"), Clear: []Field{FieldNotes, FieldAliases}}.Apply(e)
	assert.Nil(t, e.Notes)
	assert.Nil(t, e.Aliases)
}

func TestChanges_ApplyCopiesValues(t *testing.T) {
	aliases := []string{"A1"}
	def := Text("x")
	e := &Entry{Acronym: "A"}
	Changes{Aliases: aliases, Definition: def}.Apply(e)

	aliases[0] = "changed"
	*def = "changed"
	assert.Equal(t, []string{"A1"}, e.Aliases)
	assert.Equal(t, "x", Value(e.Definition))
}

func TestChanges_IsEmpty(t *testing.T) {
	assert.True(t, Changes{}.IsEmpty())
	assert.False(t, Changes{Clear: []Field{FieldOrigin}}.IsEmpty())
	assert.False(t, Changes{Aliases: []string{}}.IsEmpty(), "an explicit empty list is a change")
}

func TestChanges_Set(t *testing.T) {
	var c Changes
	c.Set(FieldCategory, "Security")
	c.Set(FieldRelatedAcronyms, " IPS, ,SIEM ")
	c.Set(FieldAliases, "")

	assert.Equal(t, "Security", Value(c.Category))
	assert.Equal(t, []string{"IPS", "SIEM"}, c.RelatedAcronyms)
	require.NotNil(t, c.Aliases)
	assert.Empty(t, c.Aliases)
}

func TestParseField(t *testing.T) {
	f, err := ParseField("related_acronyms")
	require.NoError(t, err)
	assert.Equal(t, FieldRelatedAcronyms, f)
	assert.True(t, f.IsList())
	assert.False(t, FieldNotes.IsList())

	_, err = ParseField("Related")
	assert.Error(t, err)
}

func TestFieldText(t *testing.T) {
	e := sampleEntry()
	e.RelatedAcronyms = []string{}

	v, ok := FieldText(e, FieldAliases)
	assert.Equal(t, "ID-Sys", v)
	assert.True(t, ok)

	v, ok = FieldText(e, FieldRelatedAcronyms)
	assert.Equal(t, "", v)
	assert.True(t, ok, "present but empty")

	_, ok = FieldText(e, FieldOrigin)
	assert.False(t, ok)
}

func TestEntry_MatchesAndClone(t *testing.T) {
	e := sampleEntry()
	assert.True(t, e.Matches("ids"))
	assert.True(t, e.Matches("id-sys"))
	assert.False(t, e.Matches("IPS"))
	assert.True(t, e.Matches("ＩＤＳ"), "full-width form")
	assert.True(t, e.Matches(" ｉｄ－ｓｙｓ "), "full-width alias, padded")
	assert.False(t, e.Matches("  "))

	c := e.Clone()
	c.Aliases[0] = "other"
	*c.Definition = "other"
	assert.Equal(t, "ID-Sys", e.Aliases[0])
	assert.Equal(t, "Intrusion Detection System", Value(e.Definition))
	assert.Nil(t, c.Origin)
}

func TestFoldKey(t *testing.T) {
	assert.Equal(t, "ids", FoldKey(" IDS "))
	assert.Equal(t, "ids", FoldKey("ＩＤＳ"))
	assert.Equal(t, "id-sys", FoldKey("ｉｄ－Ｓｙｓ"))
	assert.Equal(t, "", FoldKey("   "))
}

func TestCatalog_Buckets(t *testing.T) {
	cat := NewCatalog()
	sec := cat.EnsureBucket("Security")
	sec.Entries = append(sec.Entries, sampleEntry())
	cat.EnsureBucket("Networking")
	assert.Same(t, sec, cat.EnsureBucket("Security"))
	assert.Equal(t, []string{"Security", "Networking"}, cat.Names())
	assert.Equal(t, 1, cat.Len())
	assert.True(t, cat.Contains(sec.Entries[0]))

	assert.True(t, cat.RemoveBucket("Networking"))
	assert.False(t, cat.RemoveBucket("Networking"))
	assert.Equal(t, []string{"Security"}, cat.Names())
}
