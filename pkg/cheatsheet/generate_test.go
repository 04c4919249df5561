package cheatsheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAtDir(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	dir := filepath.Join(t.TempDir(), "keybindings")

	generateAtDir(dir)

	english, err := os.ReadFile(filepath.Join(dir, "Keybindings_en.md"))
	require.NoError(t, err)
	assert.Contains(t, string(english), "# lazysnapper menu")
	assert.Contains(t, string(english), "## Snapshots")
	assert.Contains(t, string(english), "<kbd>q</kbd>")

	for _, lang := range []string{"de", "ja"} {
		_, err := os.Stat(filepath.Join(dir, "Keybindings_"+lang+".md"))
		assert.NoError(t, err, lang)
	}

	content, err := obtainContent(dir)
	require.NoError(t, err)
	assert.Contains(t, content, "Keybindings_en.md")

	var out bytes.Buffer
	upToDate, err := compareWithGenerated(dir, &out)
	require.NoError(t, err)
	assert.True(t, upToDate)
	assert.Empty(t, out.String())
}

func TestDiffCheatsheets(t *testing.T) {
	expected := map[string]string{
		"Keybindings_en.md": "a\nb\n",
		"Keybindings_de.md": "x\n",
	}
	actual := map[string]string{
		"Keybindings_en.md": "a\nc\n",
		"Keybindings_de.md": "x\n",
		"Keybindings_fr.md": "old\n",
	}

	var out bytes.Buffer
	upToDate, err := diffCheatsheets(&out, expected, actual)

	require.NoError(t, err)
	assert.False(t, upToDate)
	assert.Contains(t, out.String(), "--- expected/Keybindings_en.md")
	assert.Contains(t, out.String(), "+c")
	assert.Contains(t, out.String(), "+++ actual/Keybindings_fr.md")
	assert.NotContains(t, out.String(), "Keybindings_de.md")
}

func TestObtainContentMissingDir(t *testing.T) {
	content, err := obtainContent(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, content)
}
