// Package ts reads, writes, validates and looks up Qt Linguist translation
// catalogs (.ts files).
//
// A catalog groups messages by context. Each message is keyed by its English
// source string, so the same source may appear under several contexts with
// different translations. Catalogs found in the wild sometimes repeat a
// (context, source) pair inside one context; those are kept as-is when
// parsing and resolved first-wins at lookup time.
package ts

import (
	"strings"
)

// TranslationType mirrors the type attribute of a <translation> element.
type TranslationType string

const (
	// TypeFinished is the absent attribute: the translation is done.
	TypeFinished   TranslationType = ""
	TypeUnfinished TranslationType = "unfinished"
	// TypeObsolete is what lupdate writes for messages removed from the sources.
	TypeObsolete TranslationType = "obsolete"
	// TypeVanished is the newer lupdate spelling of obsolete.
	TypeVanished TranslationType = "vanished"
)

// Catalog is a whole .ts document.
type Catalog struct {
	Version        string
	Language       string
	SourceLanguage string
	Contexts       []*Context
}

// Context is a named group of messages, usually one UI screen.
type Context struct {
	Name     string
	Comment  string
	Messages []*Message
}

type Location struct {
	Filename string
	Line     int
}

type Message struct {
	Locations         []Location
	Source            string
	OldSource         string
	Comment           string
	ExtraComment      string
	TranslatorComment string
	// Numerus marks a plural message whose translation is given as
	// NumerusForms rather than Text.
	Numerus     bool
	Translation Translation
}

type Translation struct {
	Text         string
	Type         TranslationType
	NumerusForms []string
}

// Usable reports whether a translation should be shown to the user.
func (t Translation) Usable() bool {
	if t.Type != TypeFinished {
		return false
	}
	if len(t.NumerusForms) > 0 {
		return t.NumerusForms[0] != ""
	}
	return t.Text != ""
}

// Value is the display text of a translation. For numerus messages this is
// the first form.
func (t Translation) Value() string {
	if len(t.NumerusForms) > 0 {
		return t.NumerusForms[0]
	}
	return t.Text
}

// New returns an empty catalog for the given language, e.g. "de_DE".
func New(language string) *Catalog {
	return &Catalog{
		Version:  "2.1",
		Language: language,
	}
}

// Context returns the first context with the given name, creating it at the
// end of the catalog when there is none.
func (c *Catalog) Context(name string) *Context {
	if ctx := c.FindContext(name); ctx != nil {
		return ctx
	}
	ctx := &Context{Name: name}
	c.Contexts = append(c.Contexts, ctx)
	return ctx
}

// FindContext returns the first context with the given name or nil.
func (c *Catalog) FindContext(name string) *Context {
	for _, ctx := range c.Contexts {
		if sameContext(ctx.Name, name) {
			return ctx
		}
	}
	return nil
}

// Add appends a finished translation of source to the named context.
func (c *Catalog) Add(context, source, translation string) *Message {
	msg := &Message{
		Source:      source,
		Translation: Translation{Text: translation},
	}
	ctx := c.Context(context)
	ctx.Messages = append(ctx.Messages, msg)
	return msg
}

// Find returns the first message for (context, source), looking through every
// context element carrying that name.
func (c *Catalog) Find(context, source string) *Message {
	key := normaliseKey(source)
	for _, ctx := range c.Contexts {
		if !sameContext(ctx.Name, context) {
			continue
		}
		for _, msg := range ctx.Messages {
			if normaliseKey(msg.Source) == key {
				return msg
			}
		}
	}
	return nil
}

// Each calls f for every message in document order.
func (c *Catalog) Each(f func(ctx *Context, msg *Message)) {
	for _, ctx := range c.Contexts {
		for _, msg := range ctx.Messages {
			f(ctx, msg)
		}
	}
}

// Triple is the (context, source, translation) view of a message.
type Triple struct {
	Context     string
	Source      string
	Translation string
}

// Triples flattens the catalog in document order.
func (c *Catalog) Triples() []Triple {
	triples := []Triple{}
	c.Each(func(ctx *Context, msg *Message) {
		triples = append(triples, Triple{
			Context:     ctx.Name,
			Source:      msg.Source,
			Translation: msg.Translation.Value(),
		})
	})
	return triples
}

// Len is the number of messages in the catalog.
func (c *Catalog) Len() int {
	n := 0
	for _, ctx := range c.Contexts {
		n += len(ctx.Messages)
	}
	return n
}

// normaliseKey makes a real line break and the two character escape \n
// equivalent, since catalogs store multi-line sources either way.
func sameContext(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

func normaliseKey(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}
