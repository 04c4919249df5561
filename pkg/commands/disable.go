package commands

import (
	"strings"

	"github.com/samber/lo"
)

const disableSnapshotsEnvKey = "DISABLE_SNAPSHOTS"

// disableKey maps a snapshot type to the word DISABLE_SNAPSHOTS uses for it.
// Pre and post snapshots are always taken as a pair, hence "around".
func disableKey(snapshotType SnapshotType) string {
	if snapshotType == SnapshotSingle {
		return "single"
	}
	return "around"
}

// CreateSnapshotAllowed reads DISABLE_SNAPSHOTS, e.g. "single,around" or "all".
// Case, dashes, underscores and dots are ignored.
func (c *OSCommand) CreateSnapshotAllowed(snapshotType SnapshotType) bool {
	value := c.getenv(disableSnapshotsEnvKey)
	if value == "" {
		return true
	}

	value = strings.NewReplacer("-", "", "_", "", ".", "").Replace(strings.ToLower(value))
	disabled := lo.Filter(strings.Split(value, ","), func(s string, _ int) bool { return s != "" })

	if lo.Contains(disabled, "all") {
		return false
	}
	return !lo.Contains(disabled, disableKey(snapshotType))
}
