package cheatsheet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/lazycore/pkg/utils"
	"github.com/pmezard/go-difflib/difflib"
)

var cheatsheetFileRegexp = regexp.MustCompile(`^Keybindings_\w+\.md$`)

// Check regenerates the cheatsheets into a scratch dir and diffs them against
// the committed ones, one file at a time.
func Check() {
	upToDate, err := compareWithGenerated(GetKeybindingsDir(), os.Stdout)
	if err != nil {
		fmt.Printf("Error occurred while checking if cheatsheets are up to date: %v\n", err)
		os.Exit(1)
	}

	if !upToDate {
		fmt.Printf(
			"\nCheatsheets are out of date. Please run `%s` at the project root and commit the changes.\n",
			generateCheatsheetCmd,
		)
		os.Exit(1)
	}

	fmt.Println("\nCheatsheets are up to date")
}

func GetKeybindingsDir() string {
	return filepath.Join(utils.GetLazyRootDirectory(), "docs", "keybindings")
}

func compareWithGenerated(dir string, w io.Writer) (bool, error) {
	tmpDir, err := os.MkdirTemp("", "lazysnapper_cheatsheet")
	if err != nil {
		return false, err
	}
	defer os.RemoveAll(tmpDir)

	generateAtDir(tmpDir)

	expected, err := obtainContent(tmpDir)
	if err != nil {
		return false, err
	}
	if len(expected) == 0 {
		return false, errors.New("no cheatsheets were generated")
	}

	actual, err := obtainContent(dir)
	if err != nil {
		return false, err
	}

	return diffCheatsheets(w, expected, actual)
}

// writes a unified diff per stale file and reports whether everything matched
func diffCheatsheets(w io.Writer, expected map[string]string, actual map[string]string) (bool, error) {
	names := make([]string, 0, len(expected)+len(actual))
	for name := range expected {
		names = append(names, name)
	}
	for name := range actual {
		if _, ok := expected[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	upToDate := true
	for _, name := range names {
		if expected[name] == actual[name] {
			continue
		}
		upToDate = false

		if err := difflib.WriteUnifiedDiff(w, difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected[name]),
			B:        difflib.SplitLines(actual[name]),
			FromFile: "expected/" + name,
			ToFile:   "actual/" + name,
			Context:  1,
		}); err != nil {
			return false, err
		}
	}

	return upToDate, nil
}

// file name -> content of every cheatsheet in dir. A missing dir has none.
func obtainContent(dir string) (map[string]string, error) {
	content := map[string]string{}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return content, nil
	}
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !cheatsheetFileRegexp.MatchString(entry.Name()) {
			continue
		}
		bytes, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		content[entry.Name()] = string(bytes)
	}

	return content, nil
}
