package main

import (
	"fmt"
	"sort"

	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
)

func main() {
	fmt.Println(getOutstandingTranslations())
}

// lists, per shipped catalog, the strings that still need a translator
func getOutstandingTranslations() string {
	languages := []string{}
	for lang := range i18n.GetTranslationSets() {
		if lang != i18n.EN {
			languages = append(languages, lang)
		}
	}
	sort.Strings(languages)

	output := ""
	for _, lang := range languages {
		catalog, err := i18n.EmbeddedCatalog(lang)
		if err != nil {
			output += fmt.Sprintf("%s: %v\n\n", lang, err)
			continue
		}

		output += lang + ":\n"
		ts.Sync(catalog, i18n.CatalogEntries()).Each(func(ctx *ts.Context, msg *ts.Message) {
			if msg.Translation.Type == ts.TypeVanished || msg.Translation.Type == ts.TypeObsolete {
				return
			}
			if !msg.Translation.Usable() {
				output += fmt.Sprintf("[%s] %s\n", ctx.Name, msg.Source)
			}
		})
		output += "\n"
	}
	return output
}
