package presentation

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/jesseduffield/lazysnapper/pkg/theme"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/mcuadros/go-lookup"
)

const (
	importantMarker = "★"
	selectedMarker  = "●"
)

// GetSnapshotDisplayStrings returns one cell per configured column, preceded
// by a marker cell for selection and importance
func GetSnapshotDisplayStrings(guiConfig *config.GuiConfig, th *theme.Theme, tr *i18n.TranslationSet, snapshot *commands.Snapshot, selected bool) []string {
	cells := make([]string, 0, len(guiConfig.SnapshotColumns)+1)
	cells = append(cells, snapshotMarker(th, snapshot, selected))

	for _, column := range guiConfig.SnapshotColumns {
		cells = append(cells, snapshotCell(guiConfig, th, tr, snapshot, column.Path))
	}

	return cells
}

func snapshotMarker(th *theme.Theme, snapshot *commands.Snapshot, selected bool) string {
	marker := " "
	if selected {
		marker = utils.ColoredString(selectedMarker, color.FgCyan)
	}
	if snapshot.Important() {
		return marker + th.Colorize(theme.Important, importantMarker)
	}
	return marker + " "
}

func snapshotCell(guiConfig *config.GuiConfig, th *theme.Theme, tr *i18n.TranslationSet, snapshot *commands.Snapshot, path string) string {
	value, err := lookup.LookupString(snapshot, path)
	if err != nil {
		return "?"
	}

	switch v := value.Interface().(type) {
	case time.Time:
		return FormatDate(v, guiConfig.DateFormat)
	case commands.SnapshotType:
		return th.Colorize(SnapshotTypeRole(v), SnapshotTypeLabel(tr, v))
	case commands.CleanupAlgorithm:
		return string(v)
	case string:
		if path == "Description" && v == "" {
			return utils.ColoredString(tr.NoDescription, color.FgHiBlack)
		}
		return v
	case int:
		if path == "PreNumber" && v <= 0 {
			return ""
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}

// FormatDate renders a zero date as an empty string
func FormatDate(date time.Time, format string) string {
	if date.IsZero() {
		return ""
	}
	if format == "" {
		format = time.DateTime
	}
	return date.Local().Format(format)
}

func SnapshotTypeLabel(tr *i18n.TranslationSet, snapshotType commands.SnapshotType) string {
	switch snapshotType {
	case commands.SnapshotPre:
		return tr.Pre
	case commands.SnapshotPost:
		return tr.Post
	default:
		return tr.Single
	}
}

func SnapshotTypeRole(snapshotType commands.SnapshotType) theme.Role {
	switch snapshotType {
	case commands.SnapshotSingle:
		return theme.SnapshotSingle
	case commands.SnapshotPre:
		return theme.SnapshotPre
	case commands.SnapshotPost:
		return theme.SnapshotPost
	default:
		return theme.SnapshotDefault
	}
}

func detailTypeLabel(tr *i18n.TranslationSet, snapshotType commands.SnapshotType) string {
	switch snapshotType {
	case commands.SnapshotSingle:
		return tr.DetailSingle
	case commands.SnapshotPre:
		return tr.DetailPre
	case commands.SnapshotPost:
		return tr.DetailPost
	default:
		return tr.DetailUnknown
	}
}

// RenderSnapshotDetails is the content of the Details tab
func RenderSnapshotDetails(tr *i18n.TranslationSet, th *theme.Theme, dateFormat string, snapshot *commands.Snapshot) string {
	user := snapshot.User
	if user == "" {
		user = tr.DetailUnknown
	}

	cleanup := string(snapshot.Cleanup)
	if cleanup == "" {
		cleanup = "-"
	}

	typeLabel := th.Colorize(SnapshotTypeRole(snapshot.Type), detailTypeLabel(tr, snapshot.Type))
	if snapshot.Important() {
		typeLabel += " " + th.Colorize(theme.Important, importantMarker+" "+tr.Important)
	}

	var b strings.Builder
	b.WriteString(utils.FormatMapItem(0, strings.TrimSuffix(tr.NumberLabel, ":"), fmt.Sprintf("#%d", snapshot.Number)))
	b.WriteString(utils.FormatMapItem(0, strings.TrimSuffix(tr.DetailTypeLabel, ":"), typeLabel))
	b.WriteString(utils.FormatMapItem(0, strings.TrimSuffix(tr.DateTimeLabel, ":"), FormatDate(snapshot.Date, dateFormat)))
	b.WriteString(utils.FormatMapItem(0, strings.TrimSuffix(tr.DetailUserLabel, ":"), user))
	b.WriteString(utils.FormatMapItem(0, strings.TrimSuffix(tr.CleanupLabel, ":"), cleanup))
	if snapshot.Type == commands.SnapshotPost && snapshot.PreNumber > 0 {
		b.WriteString(utils.FormatMapItem(0, strings.TrimSuffix(tr.PreviousSnapshotLabel, ":"), fmt.Sprintf("#%d", snapshot.PreNumber)))
	}

	description := snapshot.Description
	if description == "" {
		description = tr.DetailNoDescription
	}
	b.WriteString("\n" + utils.ColoredString(tr.DescriptionTitle, color.Bold) + "\n")
	b.WriteString("  " + description + "\n")

	b.WriteString("\n" + utils.ColoredString(tr.UserDataTitle, color.Bold) + ": ")
	b.WriteString(utils.FormatMap(2, snapshot.Userdata))

	return b.String()
}

// RenderSnapshotYaml is the content of the Raw tab
func RenderSnapshotYaml(snapshot *commands.Snapshot) (string, error) {
	out, err := utils.MarshalIntoYaml(snapshot)
	if err != nil {
		return "", err
	}
	return utils.ColoredYamlString(string(out)), nil
}
