package ts

import (
	"github.com/samber/lo"
)

// Entry is a string the application asks to have translated.
type Entry struct {
	Context  string
	Source   string
	Location *Location
}

// Sync brings catalog in line with the strings the application uses, the way
// lupdate does. Messages that are no longer used are kept as vanished so no
// translation work is lost; new strings are added as unfinished. The input
// catalog is not modified.
func Sync(catalog *Catalog, entries []Entry) *Catalog {
	result := &Catalog{
		Version:        catalog.Version,
		Language:       catalog.Language,
		SourceLanguage: catalog.SourceLanguage,
	}

	wanted := lo.KeyBy(entries, func(entry Entry) string {
		return key(entry.Context, entry.Source)
	})
	placed := map[string]bool{}

	for _, entry := range entries {
		k := key(entry.Context, entry.Source)
		if placed[k] {
			continue
		}
		placed[k] = true

		ctx := result.Context(entry.Context)
		msg := catalog.Find(entry.Context, entry.Source)
		if msg == nil {
			msg = &Message{
				Source:      entry.Source,
				Translation: Translation{Type: TypeUnfinished},
			}
		} else {
			msg = msg.clone()
			if msg.Translation.Type == TypeObsolete || msg.Translation.Type == TypeVanished {
				msg.Translation.Type = TypeUnfinished
			}
		}
		if entry.Location != nil {
			msg.Locations = []Location{*entry.Location}
		}
		ctx.Messages = append(ctx.Messages, msg)
	}

	// whatever is left over is kept, marked vanished, in its original order
	catalog.Each(func(ctx *Context, msg *Message) {
		k := key(ctx.Name, msg.Source)
		if _, ok := wanted[k]; ok {
			return
		}
		leftover := msg.clone()
		if leftover.Translation.Type != TypeObsolete {
			leftover.Translation.Type = TypeVanished
		}
		target := result.Context(ctx.Name)
		target.Messages = append(target.Messages, leftover)
	})

	return result
}

func (m *Message) clone() *Message {
	c := *m
	c.Locations = append([]Location(nil), m.Locations...)
	c.Translation.NumerusForms = append([]string(nil), m.Translation.NumerusForms...)
	return &c
}
