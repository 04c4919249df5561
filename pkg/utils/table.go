package utils

import (
	"strings"

	"github.com/go-errors/errors"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

// RenderTable aligns rows into columns separated by a space. Every row needs
// the same number of cells. The last column isn't padded so that long
// descriptions don't drag trailing whitespace along.
func RenderTable(rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}
	if !displayArraysAligned(rows) {
		return "", errors.New("Each item must return the same number of strings to display")
	}

	padWidths := getPadWidths(rows)
	return strings.Join(getPaddedDisplayStrings(rows, padWidths), "\n"), nil
}

// widths of every column but the last
func getPadWidths(rows [][]string) []int {
	columns := len(rows[0]) - 1
	if columns <= 0 {
		return []int{}
	}

	return lo.Times(columns, func(column int) int {
		return lo.Max(lo.Map(rows, func(row []string, _ int) int {
			return runewidth.StringWidth(Decolorise(row[column]))
		}))
	})
}

func getPaddedDisplayStrings(rows [][]string, padWidths []int) []string {
	return lo.Map(rows, func(row []string, _ int) string {
		if len(row) == 0 {
			return ""
		}
		var b strings.Builder
		for column, width := range padWidths {
			b.WriteString(WithPadding(row[column], width))
			b.WriteString(" ")
		}
		b.WriteString(row[len(padWidths)])
		return b.String()
	})
}

func displayArraysAligned(rows [][]string) bool {
	return lo.EveryBy(rows, func(row []string) bool {
		return len(row) == len(rows[0])
	})
}
