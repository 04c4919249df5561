package ts

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
)

const header = `<?xml version="1.0" encoding="utf-8"?>` + "\n" + `<!DOCTYPE TS>` + "\n"

// the same set lupdate escapes; encoding/xml would also turn line breaks
// into &#xA; which translators do not expect to see
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return textEscaper.Replace(s)
}

// Marshal renders the catalog the way Qt's lupdate does: four space indents
// and self-closing location elements.
func (c *Catalog) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo implements io.WriterTo.
func (c *Catalog) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	version := c.Version
	if version == "" {
		version = "2.1"
	}

	cw.str(header)
	cw.str(`<TS version="` + escape(version) + `"`)
	if c.Language != "" {
		cw.str(` language="` + escape(c.Language) + `"`)
	}
	if c.SourceLanguage != "" {
		cw.str(` sourcelanguage="` + escape(c.SourceLanguage) + `"`)
	}
	cw.str(">\n")

	for _, ctx := range c.Contexts {
		writeContext(cw, ctx)
	}
	cw.str("</TS>\n")

	if cw.err == nil {
		cw.err = cw.w.(*bufio.Writer).Flush()
	}
	if cw.err != nil {
		return cw.n, errors.Wrap(cw.err, 0)
	}
	return cw.n, nil
}

func writeContext(cw *countingWriter, ctx *Context) {
	cw.str("<context>\n")
	cw.element(1, "name", ctx.Name)
	if ctx.Comment != "" {
		cw.element(1, "comment", ctx.Comment)
	}
	for _, msg := range ctx.Messages {
		writeMessage(cw, msg)
	}
	cw.str("</context>\n")
}

func writeMessage(cw *countingWriter, msg *Message) {
	if msg.Numerus {
		cw.line(1, `<message numerus="yes">`)
	} else {
		cw.line(1, "<message>")
	}

	for _, loc := range msg.Locations {
		attrs := `filename="` + escape(loc.Filename) + `"`
		if loc.Line != 0 {
			attrs += ` line="` + strconv.Itoa(loc.Line) + `"`
		}
		cw.line(2, "<location "+attrs+"/>")
	}

	cw.element(2, "source", msg.Source)
	if msg.OldSource != "" {
		cw.element(2, "oldsource", msg.OldSource)
	}
	if msg.Comment != "" {
		cw.element(2, "comment", msg.Comment)
	}
	if msg.ExtraComment != "" {
		cw.element(2, "extracomment", msg.ExtraComment)
	}
	if msg.TranslatorComment != "" {
		cw.element(2, "translatorcomment", msg.TranslatorComment)
	}

	open := "<translation"
	if msg.Translation.Type != TypeFinished {
		open += ` type="` + string(msg.Translation.Type) + `"`
	}

	switch {
	case len(msg.Translation.NumerusForms) > 0:
		cw.line(2, open+">")
		for _, form := range msg.Translation.NumerusForms {
			cw.element(3, "numerusform", form)
		}
		cw.line(2, "</translation>")
	case msg.Translation.Text == "" && msg.Translation.Type != TypeFinished:
		cw.line(2, open+"></translation>")
	default:
		cw.line(2, open+">"+escape(msg.Translation.Text)+"</translation>")
	}

	cw.line(1, "</message>")
}

// WriteFile writes the catalog to path, replacing any existing file.
func (c *Catalog) WriteFile(path string) error {
	content, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

// countingWriter remembers the first error so the render functions don't have
// to check after every line.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) str(s string) {
	if cw.err != nil {
		return
	}
	n, err := io.WriteString(cw.w, s)
	cw.n += int64(n)
	cw.err = err
}

func (cw *countingWriter) line(depth int, s string) {
	cw.str(strings.Repeat("    ", depth) + s + "\n")
}

func (cw *countingWriter) element(depth int, name, text string) {
	cw.line(depth, fmt.Sprintf("<%s>%s</%s>", name, escape(text), name))
}
