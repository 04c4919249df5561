package ts

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"github.com/go-errors/errors"
)

type xmlTS struct {
	XMLName        xml.Name     `xml:"TS"`
	Version        string       `xml:"version,attr"`
	Language       string       `xml:"language,attr"`
	SourceLanguage string       `xml:"sourcelanguage,attr"`
	Contexts       []xmlContext `xml:"context"`
}

type xmlContext struct {
	Name     string       `xml:"name"`
	Comment  string       `xml:"comment"`
	Messages []xmlMessage `xml:"message"`
}

type xmlMessage struct {
	Numerus           string         `xml:"numerus,attr"`
	Locations         []xmlLocation  `xml:"location"`
	Source            string         `xml:"source"`
	OldSource         string         `xml:"oldsource"`
	Comment           string         `xml:"comment"`
	ExtraComment      string         `xml:"extracomment"`
	TranslatorComment string         `xml:"translatorcomment"`
	Translation       xmlTranslation `xml:"translation"`
}

type xmlLocation struct {
	Filename string `xml:"filename,attr"`
	Line     string `xml:"line,attr"`
}

type xmlTranslation struct {
	Type  string   `xml:"type,attr"`
	Text  string   `xml:",chardata"`
	Forms []string `xml:"numerusform"`
}

// Parse decodes a .ts document. Malformed XML and a root element other than
// <TS> are errors; duplicate messages are not.
func Parse(r io.Reader) (*Catalog, error) {
	var doc xmlTS
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty translation catalog")
		}
		return nil, errors.Errorf("malformed translation catalog: %v", err)
	}

	catalog := &Catalog{
		Version:        doc.Version,
		Language:       doc.Language,
		SourceLanguage: doc.SourceLanguage,
		Contexts:       make([]*Context, 0, len(doc.Contexts)),
	}

	for _, xc := range doc.Contexts {
		ctx := &Context{
			Name:     xc.Name,
			Comment:  xc.Comment,
			Messages: make([]*Message, 0, len(xc.Messages)),
		}
		for _, xm := range xc.Messages {
			ctx.Messages = append(ctx.Messages, convertMessage(xm))
		}
		catalog.Contexts = append(catalog.Contexts, ctx)
	}

	return catalog, nil
}

func convertMessage(xm xmlMessage) *Message {
	msg := &Message{
		Source:            xm.Source,
		OldSource:         xm.OldSource,
		Comment:           xm.Comment,
		ExtraComment:      xm.ExtraComment,
		TranslatorComment: xm.TranslatorComment,
		Numerus:           xm.Numerus == "yes",
		Translation: Translation{
			Type: TranslationType(xm.Translation.Type),
		},
	}

	for _, loc := range xm.Locations {
		// relative lines ("+3") only make sense next to a previous location,
		// we keep the offset as an absolute number
		line, _ := strconv.Atoi(loc.Line)
		msg.Locations = append(msg.Locations, Location{Filename: loc.Filename, Line: line})
	}

	if len(xm.Translation.Forms) > 0 {
		msg.Translation.NumerusForms = xm.Translation.Forms
	} else {
		msg.Translation.Text = xm.Translation.Text
	}

	return msg
}

// ParseBytes is Parse for in-memory documents, like embedded catalogs.
func ParseBytes(data []byte) (*Catalog, error) {
	return Parse(bytes.NewReader(data))
}

func ParseFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	defer f.Close()

	catalog, err := Parse(f)
	if err != nil {
		return nil, errors.Errorf("%s: %v", path, err)
	}
	return catalog, nil
}
