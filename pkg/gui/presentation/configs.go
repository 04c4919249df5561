package presentation

import (
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jesseduffield/asciigraph"
	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/samber/lo"
)

func GetConfigDisplayStrings(cfg *commands.Config, current bool) []string {
	name := cfg.Name
	if current {
		name = utils.MultiColoredString(name, color.FgGreen, color.Bold)
	}
	return []string{name, utils.ColoredString(cfg.Subvolume, color.FgHiBlack)}
}

// RenderConfigInfo is the content of the Info tab of a snapper config
func RenderConfigInfo(tr *i18n.TranslationSet, cfg *commands.Config, rootConfigured bool, snapshotCount int) string {
	configured := tr.No
	if rootConfigured {
		configured = tr.Yes
	}

	lines := []string{
		ts.Arg(tr.CurrentConfig, utils.ColoredString(cfg.Name, color.FgGreen)),
		"",
		strings.TrimSuffix(utils.FormatMapItem(0, tr.SubvolumeLabel, cfg.Subvolume), "\n"),
		strings.TrimSuffix(utils.FormatMapItem(0, tr.RootConfiguredLabel, configured), "\n"),
	}
	// only the selected config has its snapshots loaded
	if snapshotCount >= 0 {
		lines = append(lines, ts.Arg(tr.TotalSnapshots, snapshotCount))
	}

	return strings.Join(lines, "\n")
}

// SnapshotsPerDay buckets snapshots by local calendar day. The last bucket is
// today; snapshots older than days are ignored.
func SnapshotsPerDay(snapshots []*commands.Snapshot, days int, now time.Time) []float64 {
	if days <= 0 {
		return []float64{}
	}

	counts := make([]float64, days)
	today := startOfDay(now)
	for _, snapshot := range snapshots {
		if snapshot.Date.IsZero() {
			continue
		}
		age := int(today.Sub(startOfDay(snapshot.Date)).Hours() / 24)
		if age < 0 || age >= days {
			continue
		}
		counts[days-1-age]++
	}
	return counts
}

func startOfDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

// RenderTimeline plots SnapshotsPerDay for the Timeline tab
func RenderTimeline(tr *i18n.TranslationSet, snapshots []*commands.Snapshot, days int, now time.Time, width int) string {
	data := SnapshotsPerDay(snapshots, days, now)
	if len(data) == 0 {
		return tr.NothingToDisplay
	}

	options := []asciigraph.Option{
		asciigraph.Height(10),
		asciigraph.Min(0),
		asciigraph.Max(lo.Max(append(data, 1))),
		asciigraph.Caption(ts.Arg(tr.SnapshotsPerDay, days)),
	}
	if width > 10 {
		options = append(options, asciigraph.Width(width-10))
	}

	return "\n" + utils.ColoredString(asciigraph.Plot(data, options...), color.FgGreen)
}
