package commands

import (
	"strings"
	"time"
)

// SnapshotType is the kind of a snapper snapshot
type SnapshotType string

const (
	SnapshotSingle SnapshotType = "single"
	SnapshotPre    SnapshotType = "pre"
	SnapshotPost   SnapshotType = "post"
)

// ParseSnapshotType treats anything snapper might add later as a single snapshot
func ParseSnapshotType(value string) SnapshotType {
	switch SnapshotType(strings.TrimSpace(value)) {
	case SnapshotPre:
		return SnapshotPre
	case SnapshotPost:
		return SnapshotPost
	default:
		return SnapshotSingle
	}
}

// CleanupAlgorithm decides which of snapper's cleanup jobs may remove a snapshot.
// The zero value means no cleanup.
type CleanupAlgorithm string

const (
	CleanupNone     CleanupAlgorithm = ""
	CleanupNumber   CleanupAlgorithm = "number"
	CleanupTimeline CleanupAlgorithm = "timeline"
)

func ParseCleanupAlgorithm(value string) CleanupAlgorithm {
	switch CleanupAlgorithm(strings.TrimSpace(value)) {
	case CleanupNumber:
		return CleanupNumber
	case CleanupTimeline:
		return CleanupTimeline
	default:
		return CleanupNone
	}
}

// Snapshot is one row of `snapper list`. Number 0, the running system, is
// never represented by a Snapshot.
type Snapshot struct {
	Number      int
	Type        SnapshotType
	PreNumber   int
	Date        time.Time
	User        string
	Cleanup     CleanupAlgorithm
	Description string
	Userdata    map[string]string
}

// Important tells us whether the snapshot was flagged with important=yes
func (s *Snapshot) Important() bool {
	return s.Userdata["important"] == "yes"
}

// Config is a snapper configuration, i.e. one snapshotted subvolume
type Config struct {
	Name      string
	Subvolume string
}

// FileChangeType is what happened to a path between a snapshot and now
type FileChangeType int

const (
	FileModified FileChangeType = iota
	FileCreated
	FileDeleted
	FileTypeChanged
)

func (t FileChangeType) String() string {
	switch t {
	case FileCreated:
		return "created"
	case FileDeleted:
		return "deleted"
	case FileTypeChanged:
		return "typeChanged"
	default:
		return "modified"
	}
}

// FileChange is one line of `snapper status`
type FileChange struct {
	// Status holds snapper's flags, e.g. "c...." or "+....", always five wide
	Status string
	Path   string
	Type   FileChangeType
}

// ParseChangeType looks at the first status flag only
func ParseChangeType(status string) FileChangeType {
	if status == "" {
		return FileModified
	}
	switch status[0] {
	case '+':
		return FileCreated
	case '-':
		return FileDeleted
	case 'c', 'm':
		return FileModified
	case 't':
		return FileTypeChanged
	default:
		return FileModified
	}
}

// DeleteResult reports the outcome of deleting several snapshots
type DeleteResult struct {
	Succeeded []int
	Failed    []int
	Errors    map[int]error
}

// CreateOptions describes a snapshot to create
type CreateOptions struct {
	Type        SnapshotType
	Description string
	// PreNumber is required for post snapshots
	PreNumber int
	Cleanup   CleanupAlgorithm
	Important bool
}
