package ts

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const germanSample = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE TS>
<TS version="2.1" language="de_DE">
<context>
    <name>SnapshotListPage</name>
    <message>
        <location filename="../qml/Main.qml" line="13"/>
        <source>Snapshot #%1 deleted</source>
        <translation>Schnappschuss #%1 gelöscht</translation>
    </message>
    <message>
        <source>Failed to delete snapshot #%1: %2</source>
        <translation>Schnappschuss #%1 konnte nicht gelöscht werden: %2</translation>
    </message>
    <message>
        <source>Refresh</source>
        <translation type="unfinished"></translation>
    </message>
</context>
<context>
    <name>SnapshotDetailDialog</name>
    <message>
        <source>Type:</source>
        <translation>Typ:</translation>
    </message>
    <message>
        <source>Type:</source>
        <translation>Art:</translation>
    </message>
    <message>
        <source>Snapshot rollback completed.\nPlease reboot the system.</source>
        <translation>Snapshot-Rollback abgeschlossen.\nBitte starten Sie das System neu.</translation>
    </message>
</context>
</TS>
`

func parseSample(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := Parse(strings.NewReader(germanSample))
	require.NoError(t, err)
	return catalog
}

func TestParse(t *testing.T) {
	catalog := parseSample(t)

	assert.Equal(t, "2.1", catalog.Version)
	assert.Equal(t, "de_DE", catalog.Language)
	assert.Len(t, catalog.Contexts, 2)
	assert.Equal(t, 6, catalog.Len())

	first := catalog.Contexts[0].Messages[0]
	assert.Equal(t, []Location{{Filename: "../qml/Main.qml", Line: 13}}, first.Locations)
	assert.Equal(t, "Snapshot #%1 deleted", first.Source)
	assert.Equal(t, "Schnappschuss #%1 gelöscht", first.Translation.Text)

	refresh := catalog.Find("SnapshotListPage", "Refresh")
	require.NotNil(t, refresh)
	assert.Equal(t, TypeUnfinished, refresh.Translation.Type)
	assert.False(t, refresh.Translation.Usable())
}

func TestParseErrors(t *testing.T) {
	type scenario struct {
		name  string
		input string
	}

	scenarios := []scenario{
		{"empty document", ""},
		{"unclosed element", `<TS version="2.1"><context><name>A</name>`},
		{"wrong root", `<?xml version="1.0"?><resources></resources>`},
		{"mismatched tags", `<TS><context><name>A</context></TS>`},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			catalog, err := Parse(strings.NewReader(s.input))
			assert.Nil(t, catalog)
			assert.Error(t, err)
		})
	}
}

func TestRoundTripPreservesTriples(t *testing.T) {
	catalog := parseSample(t)

	out, err := catalog.Marshal()
	require.NoError(t, err)

	reparsed, err := ParseBytes(out)
	require.NoError(t, err)

	assert.Equal(t, catalog.Triples(), reparsed.Triples())
	assert.Equal(t, catalog.Contexts[0].Messages[0].Locations, reparsed.Contexts[0].Messages[0].Locations)
	assert.Equal(t, TypeUnfinished, reparsed.Find("SnapshotListPage", "Refresh").Translation.Type)
}

func TestRoundTripKeepsPaddedContextName(t *testing.T) {
	input := `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE TS>
<TS version="2.1" language="de_DE">
<context>
    <name> SnapshotItem </name>
    <message>
        <source>Important</source>
        <translation>Wichtig</translation>
    </message>
</context>
</TS>
`
	catalog, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, " SnapshotItem ", catalog.Contexts[0].Name)

	out, err := catalog.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), "<name> SnapshotItem </name>")

	reparsed, err := ParseBytes(out)
	require.NoError(t, err)
	assert.Equal(t, catalog.Triples(), reparsed.Triples())

	// lookups do not care about the padding
	assert.NotNil(t, catalog.Find("SnapshotItem", "Important"))
	assert.Equal(t, "Wichtig", NewTranslator(catalog).Translate("SnapshotItem", "Important"))
	assert.Empty(t, catalog.Validate())
}

func TestMarshalFormat(t *testing.T) {
	catalog := New("ja_JP")
	msg := catalog.Add("RestorePreviewDialog", "Progress: %1 / %2", "進捗: %1 / %2")
	msg.Locations = []Location{{Filename: "pkg/gui/restore.go", Line: 42}}
	catalog.Add("AboutDialog", `See <a href="x">x</a> & more`, "")

	out, err := catalog.Marshal()
	require.NoError(t, err)

	expected := `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE TS>
<TS version="2.1" language="ja_JP">
<context>
    <name>RestorePreviewDialog</name>
    <message>
        <location filename="pkg/gui/restore.go" line="42"/>
        <source>Progress: %1 / %2</source>
        <translation>進捗: %1 / %2</translation>
    </message>
</context>
<context>
    <name>AboutDialog</name>
    <message>
        <source>See &lt;a href=&quot;x&quot;&gt;x&lt;/a&gt; &amp; more</source>
        <translation></translation>
    </message>
</context>
</TS>
`
	assert.Equal(t, expected, string(out))
}

func TestNumerusRoundTrip(t *testing.T) {
	input := `<TS version="2.1" language="de">
<context>
    <name>SnapshotListPage</name>
    <message numerus="yes">
        <source>Deleted %n snapshot(s)</source>
        <translation>
            <numerusform>%n Schnappschuss gelöscht</numerusform>
            <numerusform>%n Schnappschüsse gelöscht</numerusform>
        </translation>
    </message>
</context>
</TS>`

	catalog, err := ParseBytes([]byte(input))
	require.NoError(t, err)

	msg := catalog.Contexts[0].Messages[0]
	assert.True(t, msg.Numerus)
	assert.Equal(t, []string{"%n Schnappschuss gelöscht", "%n Schnappschüsse gelöscht"}, msg.Translation.NumerusForms)

	out, err := catalog.Marshal()
	require.NoError(t, err)
	reparsed, err := ParseBytes(out)
	require.NoError(t, err)
	assert.Equal(t, msg.Translation.NumerusForms, reparsed.Contexts[0].Messages[0].Translation.NumerusForms)
}

func TestPlaceholders(t *testing.T) {
	type scenario struct {
		input    string
		expected []int
	}

	scenarios := []scenario{
		{"no placeholders", []int{}},
		{"Snapshot #%1 deleted", []int{1}},
		{"%2 failed, %1 succeeded, %2 again", []int{1, 2}},
		{"%L1 bytes", []int{1}},
		{"100% done", []int{}},
		{"%12 items", []int{12}},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, Placeholders(s.input), s.input)
	}
}

func TestArg(t *testing.T) {
	type scenario struct {
		format   string
		args     []any
		expected string
	}

	scenarios := []scenario{
		{"Snapshot #%1 deleted", []any{42}, "Snapshot #42 deleted"},
		{"Deletion completed: %1 succeeded, %2 failed", []any{3, 1}, "Deletion completed: 3 succeeded, 1 failed"},
		{"削除完了: 成功 %1個、失敗 %2個", []any{3, 1}, "削除完了: 成功 3個、失敗 1個"},
		{"Progress: %1 / %2", []any{5}, "Progress: 5 / %2"},
		{"%2 before %1", []any{"a", "b"}, "b before a"},
		{"no args %1", nil, "no args %1"},
		{"value with %1", []any{"%2"}, "value with %2"},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, Arg(s.format, s.args...), s.format)
	}
}

func TestValidate(t *testing.T) {
	catalog := parseSample(t)
	catalog.Contexts = append(catalog.Contexts, &Context{Name: " "})
	catalog.Add("SnapshotItem", "Prev: #%1", "Vorherige: #%1 %3")

	issues := catalog.Validate()

	errs := issues.Filter(SeverityError)
	assert.True(t, issues.HasErrors())
	assert.Len(t, errs, 2)
	assert.Equal(t, "context has no name", errs[0].Message)
	assert.Equal(t, "Prev: #%1", errs[1].Source)
	assert.Contains(t, errs[1].Message, "%3")

	warnings := issues.Filter(SeverityWarning)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "Type:", warnings[0].Source)

	infos := issues.Filter(SeverityInfo)
	assert.Len(t, infos, 1)
	assert.Equal(t, "Refresh", infos[0].Source)
}

func TestValidateCleanCatalog(t *testing.T) {
	catalog := New("de_DE")
	catalog.Add("SnapshotListPage", "Deleted %1 snapshot(s)", "%1 Schnappschüsse gelöscht")
	catalog.Add("SnapshotListPage", "Refresh", "Aktualisieren")

	assert.Empty(t, catalog.Validate())
}

func TestTranslator(t *testing.T) {
	translator := NewTranslator(parseSample(t))

	assert.Equal(t, "de_DE", translator.Language())
	assert.Equal(t, "Schnappschuss #7 gelöscht", translator.Translate("SnapshotListPage", "Snapshot #%1 deleted", 7))
	// duplicates resolve to the first entry
	assert.Equal(t, "Typ:", translator.Translate("SnapshotDetailDialog", "Type:"))
	// unfinished translations fall back to the source
	assert.Equal(t, "Refresh", translator.Translate("SnapshotListPage", "Refresh"))
	// unknown context falls back to the source
	assert.Equal(t, "Snapshot #3 deleted", translator.Translate("Elsewhere", "Snapshot #%1 deleted", 3))
	// escapes are expanded and real line breaks match them
	assert.Equal(
		t,
		"Snapshot-Rollback abgeschlossen.\nBitte starten Sie das System neu.",
		translator.Translate("SnapshotDetailDialog", "Snapshot rollback completed.\nPlease reboot the system."),
	)
}

func TestTranslatorMerge(t *testing.T) {
	base := New("de_DE")
	base.Add("Main", "Refresh", "Aktualisieren")
	base.Add("Main", "Close", "Schließen")

	override := New("de_DE")
	override.Add("Main", "Refresh", "Neu laden")

	translator := NewTranslator(base, override)

	assert.Equal(t, 2, translator.Len())
	assert.Equal(t, "Neu laden", translator.Translate("Main", "Refresh"))
	assert.Equal(t, "Schließen", translator.Translate("Main", "Close"))
}

func TestTranslatorNil(t *testing.T) {
	var translator *Translator
	assert.Equal(t, "Deleted 2 snapshot(s)", translator.Translate("Main", "Deleted %1 snapshot(s)", 2))
	assert.Equal(t, 0, translator.Len())
}

func TestTranslatorConcurrentReaders(t *testing.T) {
	translator := NewTranslator(parseSample(t))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.Equal(t, "Schnappschuss #1 gelöscht", translator.Translate("SnapshotListPage", "Snapshot #%1 deleted", 1))
		}(i)
	}
	wg.Wait()
}

func TestSync(t *testing.T) {
	catalog := parseSample(t)

	entries := []Entry{
		{Context: "SnapshotListPage", Source: "Snapshot #%1 deleted"},
		{Context: "SnapshotListPage", Source: "Create Snapshot", Location: &Location{Filename: "pkg/gui/snapshots_panel.go", Line: 10}},
		{Context: "SnapshotDetailDialog", Source: "Type:"},
	}

	synced := Sync(catalog, entries)

	kept := synced.Find("SnapshotListPage", "Snapshot #%1 deleted")
	require.NotNil(t, kept)
	assert.Equal(t, "Schnappschuss #%1 gelöscht", kept.Translation.Text)
	assert.Equal(t, TypeFinished, kept.Translation.Type)

	added := synced.Find("SnapshotListPage", "Create Snapshot")
	require.NotNil(t, added)
	assert.Equal(t, TypeUnfinished, added.Translation.Type)
	assert.Equal(t, []Location{{Filename: "pkg/gui/snapshots_panel.go", Line: 10}}, added.Locations)

	gone := synced.Find("SnapshotListPage", "Failed to delete snapshot #%1: %2")
	require.NotNil(t, gone)
	assert.Equal(t, TypeVanished, gone.Translation.Type)
	assert.Equal(t, "Schnappschuss #%1 konnte nicht gelöscht werden: %2", gone.Translation.Text)

	// the duplicate Type: entries collapse into the first one
	assert.Len(t, synced.FindContext("SnapshotDetailDialog").Messages, 2)
	assert.Equal(t, "Typ:", synced.Find("SnapshotDetailDialog", "Type:").Translation.Text)

	stats := Stats(synced)
	assert.Equal(t, 2, stats.Finished)
	assert.Equal(t, 1, stats.Unfinished)
	assert.Equal(t, 3, stats.Vanished)
	assert.Equal(t, 6, stats.Total)

	// the input is untouched
	assert.Equal(t, TypeFinished, catalog.Find("SnapshotListPage", "Failed to delete snapshot #%1: %2").Translation.Type)
}

func TestStats(t *testing.T) {
	stats := Stats(parseSample(t))

	assert.Equal(t, Statistics{
		Language:   "de_DE",
		Finished:   5,
		Unfinished: 1,
		Total:      6,
	}, stats)
	assert.InDelta(t, 83.33, stats.Percent(), 0.01)
}
