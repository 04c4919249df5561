package utils

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/fatih/color"
	"github.com/jesseduffield/gocui"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
	"github.com/spkg/bom"
)

// SplitLines splits snapper output into lines, dropping carriage returns and
// the trailing empty line
func SplitLines(multilineString string) []string {
	trimmed := strings.TrimSuffix(strings.ReplaceAll(multilineString, "\r", ""), "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

// WithPadding pads a string to the given display width. Wide runes (the
// Japanese translation is full of them) count as two columns.
func WithPadding(str string, padding int) string {
	width := runewidth.StringWidth(Decolorise(str))
	if padding < width {
		return str
	}
	return str + strings.Repeat(" ", padding-width)
}

// ColoredString paints str with a single attribute
func ColoredString(str string, colorAttribute color.Attribute) string {
	// fatih/color has no default attribute, so FgWhite stands in for "leave it
	// alone" to keep light terminals readable
	if colorAttribute == color.FgWhite {
		return str
	}
	return MultiColoredString(str, colorAttribute)
}

// MultiColoredString paints str with all of the given attributes, e.g. bold
// green for the current config
func MultiColoredString(str string, colorAttributes ...color.Attribute) string {
	return color.New(colorAttributes...).Sprint(str)
}

var decoloriseRegex = regexp.MustCompile(`\x1B\[([0-9]{1,3}(;[0-9]{1,3})*)?[mK]`)

// Decolorise strips a string of color
func Decolorise(str string) string {
	return decoloriseRegex.ReplaceAllString(str, "")
}

// NormalizeLinefeeds turns windows line endings into unix ones and drops
// lone carriage returns
func NormalizeLinefeeds(str string) string {
	return strings.ReplaceAll(strings.ReplaceAll(str, "\r\n", "\n"), "\r", "")
}

// CleanString strips a byte order mark and normalises line feeds, which is
// what we want before writing command output or file contents to a view
func CleanString(s string) string {
	return NormalizeLinefeeds(string(bom.Clean([]byte(s))))
}

var loaderFrames = []string{"|", "/", "-", "\\"}

// Loader returns the spinner frame for the current time. Frames change every
// 50ms so a status line redrawn on a ticker appears to spin.
func Loader() string {
	return loaderFrames[time.Now().UnixMilli()/50%int64(len(loaderFrames))]
}

// ResolvePlaceholderString fills in {{key}} placeholders. Unknown
// placeholders stay as they are.
func ResolvePlaceholderString(str string, arguments map[string]string) string {
	replacements := make([]string, 0, len(arguments)*2)
	for key, value := range arguments {
		replacements = append(replacements, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(replacements...).Replace(str)
}

// ApplyTemplate fills in a custom command template. A broken template is
// returned unchanged so the user sees what they wrote.
func ApplyTemplate(str string, object interface{}) string {
	tmpl, err := template.New("").Parse(str)
	if err != nil {
		return str
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, object); err != nil {
		return str
	}
	return buf.String()
}

var gocuiAttributes = map[string]gocui.Attribute{
	"default":   gocui.ColorDefault,
	"black":     gocui.ColorBlack,
	"red":       gocui.ColorRed,
	"green":     gocui.ColorGreen,
	"yellow":    gocui.ColorYellow,
	"blue":      gocui.ColorBlue,
	"magenta":   gocui.ColorMagenta,
	"cyan":      gocui.ColorCyan,
	"white":     gocui.ColorWhite,
	"bold":      gocui.AttrBold,
	"reverse":   gocui.AttrReverse,
	"underline": gocui.AttrUnderline,
}

// GetGocuiAttribute maps a colour name from the user config, e.g. "green" or
// "bold", to a view attribute. Unknown names give white.
func GetGocuiAttribute(key string) gocui.Attribute {
	if value, ok := gocuiAttributes[key]; ok {
		return value
	}
	return gocui.ColorWhite
}

// FormatMapItem renders one "key: value" line of a details view
func FormatMapItem(padding int, k string, v interface{}) string {
	return fmt.Sprintf("%s%s %v\n", strings.Repeat(" ", padding), ColoredString(k+":", color.FgYellow), v)
}

// FormatMap renders a map sorted by key, e.g. a snapshot's userdata
func FormatMap(padding int, m map[string]string) string {
	if len(m) == 0 {
		return "none\n"
	}

	keys := lo.Keys(m)
	sort.Strings(keys)

	return "\n" + strings.Join(lo.Map(keys, func(key string, _ int) string {
		return FormatMapItem(padding, key, m[key])
	}), "")
}
