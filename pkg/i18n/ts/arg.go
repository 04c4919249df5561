package ts

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// %1..%99, optionally with Qt's L (localised number) modifier
var placeholderRegex = regexp.MustCompile(`%L?(\d{1,2})`)

// Placeholders returns the distinct placeholder numbers used in s, sorted.
func Placeholders(s string) []int {
	matches := placeholderRegex.FindAllStringSubmatch(s, -1)
	numbers := lo.FilterMap(matches, func(match []string, _ int) (int, bool) {
		n, err := strconv.Atoi(match[1])
		return n, err == nil && n > 0
	})
	numbers = lo.Uniq(numbers)
	sort.Ints(numbers)
	return numbers
}

// Arg replaces %N with args[N-1]. Placeholders without a matching argument are
// left untouched so a missing value is visible rather than silently empty.
func Arg(s string, args ...any) string {
	if len(args) == 0 || !strings.Contains(s, "%") {
		return s
	}

	return placeholderRegex.ReplaceAllStringFunc(s, func(match string) string {
		n, err := strconv.Atoi(strings.TrimLeft(match, "%L"))
		if err != nil || n < 1 || n > len(args) {
			return match
		}
		return fmt.Sprint(args[n-1])
	})
}

// expandEscapes turns the literal escapes used in catalog sources into the
// characters they stand for.
func expandEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return escapeExpander.Replace(s)
}

var escapeExpander = strings.NewReplacer(`\n`, "\n", `\t`, "\t")
