package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/samber/lo"
)

// LintCatalogs prints every issue found in the given .ts files and returns
// whether any of them is an error
func LintCatalogs(w io.Writer, paths []string) (bool, error) {
	failed := false
	for _, path := range paths {
		catalog, err := ts.ParseFile(path)
		if err != nil {
			return failed, err
		}

		issues := catalog.Validate()
		for _, issue := range issues {
			fmt.Fprintf(w, "%s: %s\n", path, issue)
		}
		if issues.HasErrors() {
			failed = true
		}
	}
	return failed, nil
}

// SyncCatalog brings the catalog at path in line with the strings lazysnapper
// asks for, creating it when it does not exist yet
func SyncCatalog(w io.Writer, path string) error {
	catalog, err := loadOrCreateCatalog(path)
	if err != nil {
		return err
	}

	synced := ts.Sync(catalog, i18n.CatalogEntries())
	if err := synced.WriteFile(path); err != nil {
		return err
	}

	stats := ts.Stats(synced)
	fmt.Fprintf(w, "%s: %d finished, %d unfinished, %d vanished\n", path, stats.Finished, stats.Unfinished, stats.Vanished)
	return nil
}

func loadOrCreateCatalog(path string) (*ts.Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ts.New(i18n.LanguageOfFilename(filepath.Base(path))), nil
		}
		return nil, errors.Wrap(err, 0)
	}
	return ts.ParseFile(path)
}

type catalogStats struct {
	File       string        `yaml:"file"`
	Statistics ts.Statistics `yaml:",inline"`
	Percent    float64       `yaml:"percent"`
}

// CatalogStats prints per-file translation progress, as a table or as yaml
func CatalogStats(w io.Writer, paths []string, asYaml bool) error {
	allStats := make([]catalogStats, 0, len(paths))
	for _, path := range paths {
		catalog, err := ts.ParseFile(path)
		if err != nil {
			return err
		}
		stats := ts.Stats(catalog)
		allStats = append(allStats, catalogStats{File: path, Statistics: stats, Percent: stats.Percent()})
	}

	if asYaml {
		out, err := utils.MarshalIntoYaml(allStats)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		_, err = w.Write(out)
		return err
	}

	rows := [][]string{{"file", "language", "finished", "unfinished", "vanished", "obsolete", "done"}}
	rows = append(rows, lo.Map(allStats, func(s catalogStats, _ int) []string {
		return []string{
			s.File,
			s.Statistics.Language,
			strconv.Itoa(s.Statistics.Finished),
			strconv.Itoa(s.Statistics.Unfinished),
			strconv.Itoa(s.Statistics.Vanished),
			strconv.Itoa(s.Statistics.Obsolete),
			fmt.Sprintf("%.1f%%", s.Percent),
		}
	})...)

	table, err := utils.RenderTable(rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
