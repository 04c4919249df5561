package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lintSample = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE TS>
<TS version="2.1" language="de_DE">
<context>
    <name>Gui</name>
    <message>
        <source>Snapshot #%1</source>
        <translation>Schnappschuss #%2</translation>
    </message>
    <message>
        <source>Refresh</source>
        <translation type="unfinished"></translation>
    </message>
</context>
</TS>
`

func writeCatalog(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLintCatalogs(t *testing.T) {
	path := writeCatalog(t, "lazysnapper_de.ts", lintSample)

	var out bytes.Buffer
	failed, err := LintCatalogs(&out, []string{path})

	require.NoError(t, err)
	assert.True(t, failed)
	assert.Contains(t, out.String(), "translation uses %2 which the source does not have")
	assert.Contains(t, out.String(), "translation missing or unfinished")
}

func TestLintCatalogsMissingFile(t *testing.T) {
	var out bytes.Buffer
	_, err := LintCatalogs(&out, []string{filepath.Join(t.TempDir(), "nope.ts")})
	assert.Error(t, err)
}

func TestSyncCatalogCreatesMissingCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lazysnapper_fr.ts")

	var out bytes.Buffer
	require.NoError(t, SyncCatalog(&out, path))

	catalog, err := ts.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", catalog.Language)

	stats := ts.Stats(catalog)
	assert.Equal(t, 0, stats.Finished)
	assert.Greater(t, stats.Unfinished, 0)
	assert.Contains(t, out.String(), "0 finished")
}

func TestSyncCatalogMarksVanished(t *testing.T) {
	path := writeCatalog(t, "lazysnapper_de.ts", lintSample)

	require.NoError(t, SyncCatalog(&bytes.Buffer{}, path))

	catalog, err := ts.ParseFile(path)
	require.NoError(t, err)
	msg := catalog.Find("Gui", "Snapshot #%1")
	require.NotNil(t, msg)
	assert.Equal(t, ts.TypeVanished, msg.Translation.Type)
	assert.Equal(t, "Schnappschuss #%2", msg.Translation.Text)
}

func TestCatalogStats(t *testing.T) {
	path := writeCatalog(t, "lazysnapper_de.ts", lintSample)

	var table bytes.Buffer
	require.NoError(t, CatalogStats(&table, []string{path}, false))
	assert.Contains(t, table.String(), "de_DE")
	assert.Contains(t, table.String(), "50.0%")

	var yamlOut bytes.Buffer
	require.NoError(t, CatalogStats(&yamlOut, []string{path}, true))
	assert.Contains(t, yamlOut.String(), "language: de_DE")
	assert.Contains(t, yamlOut.String(), "finished: 1")
}
