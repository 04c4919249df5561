package ts

import (
	"strings"

	"github.com/sasha-s/go-deadlock"
)

// Translator is the lookup table built from one or more catalogs. It is safe
// for concurrent use.
type Translator struct {
	mutex        deadlock.RWMutex
	language     string
	translations map[string]string
}

// key ignores whitespace around the context name, which is kept verbatim in
// the catalog so it is written back unchanged
func key(context, source string) string {
	return strings.TrimSpace(context) + "\x04" + normaliseKey(source)
}

// NewTranslator builds a table from the usable translations of the given
// catalogs. Within a catalog the first translation of a (context, source)
// pair wins; a later catalog overrides an earlier one.
func NewTranslator(catalogs ...*Catalog) *Translator {
	t := &Translator{translations: map[string]string{}}
	for _, catalog := range catalogs {
		t.Merge(newCatalogTranslator(catalog))
	}
	return t
}

func newCatalogTranslator(catalog *Catalog) *Translator {
	t := &Translator{
		language:     catalog.Language,
		translations: make(map[string]string, catalog.Len()),
	}
	catalog.Each(func(ctx *Context, msg *Message) {
		if !msg.Translation.Usable() {
			return
		}
		k := key(ctx.Name, msg.Source)
		if _, ok := t.translations[k]; ok {
			return
		}
		t.translations[k] = msg.Translation.Value()
	})
	return t
}

// Merge copies every translation of other into t, replacing existing ones.
func (t *Translator) Merge(other *Translator) {
	if other == nil || other == t {
		return
	}

	other.mutex.RLock()
	defer other.mutex.RUnlock()
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if other.language != "" {
		t.language = other.language
	}
	for k, v := range other.translations {
		t.translations[k] = v
	}
}

// Lookup returns the raw translation, without argument substitution.
func (t *Translator) Lookup(context, source string) (string, bool) {
	if t == nil {
		return "", false
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	value, ok := t.translations[key(context, source)]
	return value, ok
}

// Translate resolves source in context, falling back to source itself, then
// substitutes the positional arguments.
func (t *Translator) Translate(context, source string, args ...any) string {
	value, ok := t.Lookup(context, source)
	if !ok {
		value = source
	}
	return Arg(expandEscapes(value), args...)
}

func (t *Translator) Len() int {
	if t == nil {
		return 0
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.translations)
}

// Language is the language of the last merged catalog that declared one.
func (t *Translator) Language() string {
	if t == nil {
		return ""
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.language
}
