package i18n

import (
	"embed"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// ISO 639-1 codes of the languages we ship catalogs for.
const (
	// English
	EN = "en"
	// German
	DE = "de"
	// Japanese
	JA = "ja"
)

const (
	catalogPrefix = "lazysnapper_"
	catalogSuffix = ".ts"
)

//go:embed translations/*.ts
var embeddedCatalogs embed.FS

// NewTranslationSetFromConfig resolves the configured language, 'auto'
// meaning the one from the environment. Catalogs found in searchDirs are
// layered over the embedded ones.
func NewTranslationSetFromConfig(log *logrus.Entry, configLanguage string, searchDirs ...string) (*TranslationSet, error) {
	if configLanguage == "auto" {
		language := detectLanguage(jibber_jabber.DetectLanguage)

		return NewTranslationSet(log, language, searchDirs...), nil
	}

	if _, ok := matchLanguage(configLanguage, getSupportedLanguages(searchDirs...)); ok {
		return NewTranslationSet(log, configLanguage, searchDirs...), nil
	}

	return NewTranslationSet(log, EN), errors.New("Language not found: " + configLanguage)
}

// NewTranslationSet builds the set for the given language tag, falling back
// to english for every string the catalogs do not translate.
func NewTranslationSet(log *logrus.Entry, languageTag string, searchDirs ...string) *TranslationSet {
	log.Info("language: " + languageTag)

	baseSet := englishSet()

	lang, ok := matchLanguage(languageTag, getSupportedLanguages(searchDirs...))
	if !ok || lang == EN {
		return &baseSet
	}

	translator := loadTranslator(log, lang, searchDirs...)
	otherSet := localise(baseSet, translator)

	_ = mergo.Merge(&baseSet, otherSet, mergo.WithOverride)

	return &baseSet
}

// SearchDirs lists the directories that may hold catalogs, in increasing
// order of precedence.
func SearchDirs(userDir string) []string {
	dirs := []string{}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), "..", "share", "lazysnapper", "translations"))
	}
	dirs = append(dirs, "/usr/share/lazysnapper/translations")
	if userDir != "" {
		dirs = append(dirs, userDir)
	}
	return dirs
}

// GetTranslationSets gets all the translation sets, keyed by language code
func GetTranslationSets() map[string]TranslationSet {
	log := logrus.NewEntry(logrus.New())
	log.Logger.SetLevel(logrus.ErrorLevel)

	sets := map[string]TranslationSet{EN: englishSet()}
	for _, lang := range embeddedLanguages() {
		sets[lang] = *NewTranslationSet(log, lang)
	}
	return sets
}

// CatalogEntries lists every (context, source) pair the application asks the
// catalogs for.
func CatalogEntries() []ts.Entry {
	entries := []ts.Entry{}
	eachTaggedField(englishSet(), func(_ int, context, source string) {
		entries = append(entries, ts.Entry{
			Context: context,
			Source:  strings.ReplaceAll(source, "\n", `\n`),
			Location: &ts.Location{
				Filename: "pkg/i18n/english.go",
			},
		})
	})
	return entries
}

// CatalogFilename is the name a catalog for the given language is stored
// under.
func CatalogFilename(lang string) string {
	return catalogPrefix + lang + catalogSuffix
}

// EmbeddedCatalog returns the catalog compiled into the binary.
func EmbeddedCatalog(lang string) (*ts.Catalog, error) {
	data, err := embeddedCatalogs.ReadFile("translations/" + CatalogFilename(lang))
	if err != nil {
		return nil, errors.Errorf("no embedded catalog for '%s'", lang)
	}
	return ts.ParseBytes(data)
}

func loadTranslator(log *logrus.Entry, lang string, searchDirs ...string) *ts.Translator {
	translator := ts.NewTranslator()

	if catalog, err := EmbeddedCatalog(lang); err == nil {
		translator.Merge(ts.NewTranslator(catalog))
	}

	for _, dir := range searchDirs {
		path := filepath.Join(dir, CatalogFilename(lang))
		if _, err := os.Stat(path); err != nil {
			continue
		}
		catalog, err := ts.ParseFile(path)
		if err != nil {
			log.Warn(err.Error())
			continue
		}
		translator.Merge(ts.NewTranslator(catalog))
	}

	return translator
}

// localise returns a set holding only the strings the translator knows.
func localise(base TranslationSet, translator *ts.Translator) TranslationSet {
	localised := TranslationSet{}
	target := reflect.ValueOf(&localised).Elem()

	eachTaggedField(base, func(index int, context, source string) {
		if _, ok := translator.Lookup(context, source); !ok {
			return
		}
		target.Field(index).SetString(translator.Translate(context, source))
	})

	return localised
}

func eachTaggedField(set TranslationSet, f func(index int, context, source string)) {
	value := reflect.ValueOf(set)
	t := value.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		context, ok := field.Tag.Lookup("ts")
		if !ok || field.Type.Kind() != reflect.String {
			continue
		}
		f(i, context, value.Field(i).String())
	}
}

// getSupportedLanguages returns english, every embedded catalog and any
// catalog dropped into one of the search directories.
func getSupportedLanguages(searchDirs ...string) []string {
	languages := append([]string{EN}, embeddedLanguages()...)
	for _, dir := range searchDirs {
		matches, _ := filepath.Glob(filepath.Join(dir, catalogPrefix+"*"+catalogSuffix))
		languages = append(languages, lo.Map(matches, func(path string, _ int) string {
			return LanguageOfFilename(filepath.Base(path))
		})...)
	}
	return lo.Uniq(languages)
}

func embeddedLanguages() []string {
	entries, err := embeddedCatalogs.ReadDir("translations")
	if err != nil {
		return nil
	}
	languages := lo.Map(entries, func(entry os.DirEntry, _ int) string {
		return LanguageOfFilename(entry.Name())
	})
	sort.Strings(languages)
	return languages
}

// LanguageOfFilename is the inverse of CatalogFilename
func LanguageOfFilename(name string) string {
	return strings.TrimSuffix(strings.TrimPrefix(name, catalogPrefix), catalogSuffix)
}

// matchLanguage maps a POSIX locale or BCP 47 tag onto the best supported
// language, e.g. de_DE.UTF-8 to de.
func matchLanguage(tag string, supported []string) (string, bool) {
	tag, _, _ = strings.Cut(tag, ".")
	tag, _, _ = strings.Cut(tag, "@")
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" || tag == "C" || tag == "POSIX" {
		return EN, false
	}

	desired, err := language.Parse(tag)
	if err != nil {
		return EN, false
	}

	languages := []string{}
	tags := []language.Tag{}
	for _, lang := range supported {
		parsed, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
		if err != nil {
			continue
		}
		languages = append(languages, lang)
		tags = append(tags, parsed)
	}
	if len(tags) == 0 {
		return EN, false
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired)
	if confidence == language.No {
		return EN, false
	}
	return languages[index], true
}

// detectLanguage extracts user language from environment
func detectLanguage(langDetector func() (string, error)) string {
	if userLang, err := langDetector(); err == nil {
		return userLang
	}

	return "C"
}
