package panels

import (
	"strings"

	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/samber/lo"
)

// filterTerm is one whitespace separated word of the filter needle. A term
// like `type:pre` only looks at the item's `type` field, `#12` is short for
// `number:12` and anything else is searched for in every cell.
type filterTerm struct {
	field string
	value string
}

type filterQuery []filterTerm

func parseFilterQuery(needle string) filterQuery {
	return lo.Map(strings.Fields(strings.ToLower(needle)), func(word string, _ int) filterTerm {
		if strings.HasPrefix(word, "#") && len(word) > 1 {
			return filterTerm{field: "number", value: word[1:]}
		}
		if field, value, ok := strings.Cut(word, ":"); ok && field != "" {
			return filterTerm{field: field, value: value}
		}
		return filterTerm{value: word}
	})
}

// matches requires every term to match. Field values must match exactly,
// free text only needs to be contained in one of the cells.
func (q filterQuery) matches(cells []string, fields map[string]string) bool {
	return lo.EveryBy(q, func(term filterTerm) bool {
		if term.field == "" {
			return lo.SomeBy(cells, func(cell string) bool {
				return strings.Contains(strings.ToLower(utils.Decolorise(cell)), term.value)
			})
		}

		value, ok := fields[term.field]
		if !ok {
			return false
		}
		return strings.ToLower(value) == term.value
	})
}
