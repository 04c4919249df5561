// Package cheatsheet writes docs/keybindings/Keybindings_{{.LANG}}.md, a
// keybindings cheatsheet for every language we ship a catalog for.
//
// To regenerate the cheatsheets run:
//
//	go run scripts/cheatsheet/main.go generate
package cheatsheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jesseduffield/lazysnapper/pkg/app"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/gui"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/samber/lo"
)

const generateCheatsheetCmd = "go run scripts/cheatsheet/main.go generate"

type bindingSection struct {
	title    string
	bindings []*gui.Binding
}

func Generate() {
	generateAtDir(GetKeybindingsDir())
}

// generateAtDir panics on failure: it only runs from scripts and tests
func generateAtDir(dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	appConfig, err := config.NewAppConfig("lazysnapper", "", "", "", "", true)
	if err != nil {
		panic(err)
	}

	for lang := range i18n.GetTranslationSets() {
		appConfig.UserConfig.Gui.Language = lang
		cheatsheetApp, err := app.NewApp(appConfig, "")
		if err != nil {
			panic(err)
		}
		cheatsheetApp.Gui.SetupFakeGui()

		sections, err := getBindingSections(cheatsheetApp)
		if err != nil {
			panic(err)
		}

		content := fmt.Sprintf(
			"_This file is auto-generated. To update, make the changes in the "+
				"pkg/i18n directory and then run `%s` from the project root._\n\n%s",
			generateCheatsheetCmd,
			formatSections(cheatsheetApp.Tr, sections),
		)

		path := filepath.Join(dir, "Keybindings_"+lang+".md")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			panic(err)
		}
	}
}

func sectionTitles(tr *i18n.TranslationSet) map[string]string {
	return map[string]string{
		"":          tr.GlobalTitle,
		"main":      tr.MainTitle,
		"status":    tr.StatusTitle,
		"configs":   tr.ConfigsTitle,
		"snapshots": tr.SnapshotsTitle,
		"files":     tr.FilesTitle,
		"menu":      tr.MenuTitle,
		"filter":    tr.LcFilter,
	}
}

// getBindingSections groups the described bindings by view, in the order each
// view first shows up. Bindings the user disabled are left out.
func getBindingSections(cheatsheetApp *app.App) ([]*bindingSection, error) {
	bindings, err := cheatsheetApp.Gui.GetInitialKeybindings(cheatsheetApp.Gui.KeybindingOpts())
	if err != nil {
		return nil, err
	}

	titles := sectionTitles(cheatsheetApp.Tr)
	sections := []*bindingSection{}

	described := lo.Filter(bindings, func(binding *gui.Binding, _ int) bool {
		return binding.Description != "" && binding.Key != nil
	})

	for _, binding := range described {
		title := titles[binding.ViewName]
		section, found := lo.Find(sections, func(s *bindingSection) bool { return s.title == title })
		if !found {
			section = &bindingSection{title: title}
			sections = append(sections, section)
		}
		section.bindings = append(section.bindings, binding)
	}

	return sections, nil
}

func formatSections(tr *i18n.TranslationSet, sections []*bindingSection) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# lazysnapper %s\n", tr.Menu)

	for _, section := range sections {
		fmt.Fprintf(&builder, "\n## %s\n\n<pre>\n", section.title)
		for _, binding := range section.bindings {
			fmt.Fprintf(&builder, "  <kbd>%s</kbd>: %s\n", binding.GetKey(), binding.Description)
		}
		builder.WriteString("</pre>\n")
	}

	return builder.String()
}
