package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	DefaultSnapshotStoreDir = "/var/lib/lazysnapper"
	snapshotFilePrefix      = "pre_snapshot_"
	snapshotFileSuffix      = ".id"
)

// FsSnapshotStore remembers the number of a pre snapshot between the
// `lazysnapper pre` and `lazysnapper post` invocations of e.g. a package
// manager hook. One file per purpose.
type FsSnapshotStore struct {
	Log *logrus.Entry
	Dir string
}

func NewFsSnapshotStore(log *logrus.Entry, dir string) *FsSnapshotStore {
	if dir == "" {
		dir = DefaultSnapshotStoreDir
	}
	return &FsSnapshotStore{Log: log, Dir: dir}
}

// ValidatePurpose rejects purposes that would not name a plain file inside
// the store dir
func ValidatePurpose(purpose string) error {
	if purpose == "" || purpose == "." || purpose == ".." || strings.ContainsAny(purpose, `/\`+"\x00") {
		return NewComplexError(InvalidArgument, fmt.Sprintf("invalid snapshot purpose %q", purpose))
	}
	return nil
}

func (s *FsSnapshotStore) path(purpose string) (string, error) {
	if err := ValidatePurpose(purpose); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, snapshotFilePrefix+purpose+snapshotFileSuffix), nil
}

// Save writes number for purpose, creating the store dir if needed
func (s *FsSnapshotStore) Save(purpose string, number int) error {
	path, err := s.path(purpose)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return WrapError(err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(number)), 0o644); err != nil {
		return WrapError(err)
	}
	s.Log.Debugf("saved snapshot number %d to %s", number, path)
	return nil
}

// Load returns -1 when nothing usable was saved for purpose
func (s *FsSnapshotStore) Load(purpose string) int {
	path, err := s.path(purpose)
	if err != nil {
		s.Log.Warn(err)
		return -1
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.Log.Warn(err)
		}
		return -1
	}

	number, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		s.Log.Warnf("could not parse snapshot number from %s: %q", path, content)
		return -1
	}
	return number
}

// Clean removes the file for purpose. A missing file is not an error.
func (s *FsSnapshotStore) Clean(purpose string) error {
	path, err := s.path(purpose)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return WrapError(err)
	}
	return nil
}
