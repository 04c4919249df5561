package utils

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

// MarshalIntoYaml renders any struct as yaml, e.g. for a snapshot's raw tab
func MarshalIntoYaml(data interface{}) ([]byte, error) {
	return yaml.MarshalWithOptions(data, yaml.IndentSequence(true))
}

func ansi(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

func yamlProperty(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{Prefix: ansi(attr), Suffix: ansi(color.Reset)}
	}
}

// ColoredYamlString highlights keys in cyan, strings in green and numbers
// and booleans in magenta
func ColoredYamlString(str string) string {
	var p printer.Printer
	p.MapKey = yamlProperty(color.FgCyan)
	p.String = yamlProperty(color.FgGreen)
	p.Bool = yamlProperty(color.FgMagenta)
	p.Number = yamlProperty(color.FgMagenta)
	return p.PrintTokens(lexer.Tokenize(str))
}
