package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	snapperDateLayout       = "2006-01-02 15:04:05"
	defaultRestoreBatchSize = 100
	snapshotColumns         = "number,type,pre-number,date,user,cleanup,description,userdata"
)

// SnapperCommand is our main snapper interface. Every call goes through the
// snapper binary; the selected config is passed with -c.
type SnapperCommand struct {
	Log       *logrus.Entry
	OSCommand *OSCommand
	Tr        *i18n.TranslationSet
	Config    *config.AppConfig

	mutex      deadlock.RWMutex
	configName string
	configs    []*Config
	changes    map[string][]*FileChange

	refreshGroup singleflight.Group
}

// CommandObject is what we pass to our template resolvers when we are running a custom command.
// We do not guarantee that all fields will be populated: just the ones that make sense for the current context
type CommandObject struct {
	Snapper  string
	Config   *Config
	Snapshot *Snapshot
}

// NewSnapperCommand creates a SnapperCommand working on the given snapper config
func NewSnapperCommand(log *logrus.Entry, osCommand *OSCommand, tr *i18n.TranslationSet, appConfig *config.AppConfig, configName string) *SnapperCommand {
	if configName == "" {
		configName = appConfig.UserConfig.Snapper.DefaultConfig
	}
	return &SnapperCommand{
		Log:        log,
		OSCommand:  osCommand,
		Tr:         tr,
		Config:     appConfig,
		configName: configName,
		changes:    map[string][]*FileChange{},
	}
}

// NewCommandObject takes a command object and returns a default command object with the passed command object merged in
func (c *SnapperCommand) NewCommandObject(obj CommandObject) CommandObject {
	defaultObj := CommandObject{
		Snapper: c.binary(),
		Config:  &Config{Name: c.ConfigName()},
	}
	_ = mergo.Merge(&defaultObj, obj, mergo.WithOverride)
	return defaultObj
}

func (c *SnapperCommand) ConfigName() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.configName
}

// SetConfigName switches the snapper config all further calls act on
func (c *SnapperCommand) SetConfigName(name string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.configName = name
}

func (c *SnapperCommand) binary() string {
	if binary := c.Config.UserConfig.Snapper.Binary; binary != "" {
		return binary
	}
	return "snapper"
}

func (c *SnapperCommand) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.Config.UserConfig.Snapper.CommandTimeout
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *SnapperCommand) run(ctx context.Context, args ...string) (string, error) {
	output, err := c.OSCommand.RunArgsWithOutput(ctx, c.binary(), args...)
	if err != nil && errors.Is(err, exec.ErrNotFound) {
		return output, errors.New(ts.Arg(c.Tr.SnapperNotFound, c.binary()))
	}
	return output, err
}

// runWithConfig prefixes args with -c <config> and bounds the call by the
// configured command timeout
func (c *SnapperCommand) runWithConfig(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.run(ctx, append([]string{"-c", c.ConfigName()}, args...)...)
}

// IsConfigured tells us whether snapper has a root config for the given filesystem root
func (c *SnapperCommand) IsConfigured(ctx context.Context, root string) (bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	output, err := c.run(ctx, "--no-dbus", "--root", root, "--csvout", "list-configs", "--columns", "config,subvolume")
	if err != nil {
		return false, err
	}
	return strings.Contains(output, "root,"), nil
}

// GetConfigs returns the snapper configs. The result is remembered so that
// diffs can find a config's subvolume.
func (c *SnapperCommand) GetConfigs(ctx context.Context) ([]*Config, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	output, err := c.run(ctx, "--no-dbus", "--csvout", "list-configs", "--columns", "config,subvolume")
	if err != nil {
		return nil, err
	}

	records, err := readCSV(output)
	if err != nil {
		return nil, err
	}

	configs := lo.FilterMap(records, func(record []string, _ int) (*Config, bool) {
		if len(record) < 2 || record[0] == "" {
			return nil, false
		}
		return &Config{Name: record[0], Subvolume: record[1]}, true
	})

	c.mutex.Lock()
	c.configs = configs
	c.mutex.Unlock()

	return configs, nil
}

func (c *SnapperCommand) subvolume(ctx context.Context) (string, error) {
	c.mutex.RLock()
	configs := c.configs
	c.mutex.RUnlock()

	if len(configs) == 0 {
		var err error
		if configs, err = c.GetConfigs(ctx); err != nil {
			return "", err
		}
	}

	name := c.ConfigName()
	cfg, ok := lo.Find(configs, func(cfg *Config) bool { return cfg.Name == name })
	if !ok {
		return "", errors.New(ts.Arg(c.Tr.SnapperNotConfigured, name))
	}
	return cfg.Subvolume, nil
}

// GetSnapshots lists the snapshots of the current config. Concurrent callers
// share a single snapper invocation.
func (c *SnapperCommand) GetSnapshots(ctx context.Context) ([]*Snapshot, error) {
	return c.GetSnapshotsOf(ctx, c.ConfigName())
}

// GetSnapshotsOf lists the snapshots of configName, whatever config is current
func (c *SnapperCommand) GetSnapshotsOf(ctx context.Context, configName string) ([]*Snapshot, error) {
	result, err, _ := c.refreshGroup.Do(configName, func() (interface{}, error) {
		ctx, cancel := c.withTimeout(ctx)
		defer cancel()
		output, err := c.run(ctx, "-c", configName, "--csvout", "--iso", "list", "--columns", snapshotColumns)
		if err != nil {
			return nil, err
		}
		return c.parseSnapshots(output)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*Snapshot), nil
}

func (c *SnapperCommand) parseSnapshots(output string) ([]*Snapshot, error) {
	records, err := readCSV(output)
	if err != nil {
		return nil, err
	}

	snapshots := []*Snapshot{}
	for _, record := range records {
		if len(record) < 7 {
			continue
		}

		number, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil || number == 0 {
			continue
		}

		preNumber, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			preNumber = -1
		}

		var date time.Time
		if dateStr := strings.TrimSpace(record[3]); dateStr != "" {
			date, err = time.ParseInLocation(snapperDateLayout, dateStr, time.Local)
			if err != nil {
				c.Log.Warnf("could not parse date of snapshot %d: %q", number, dateStr)
			}
		}

		userdata := map[string]string{}
		if len(record) > 7 {
			userdata = parseUserdata(record[7])
		}

		snapshots = append(snapshots, &Snapshot{
			Number:      number,
			Type:        ParseSnapshotType(record[1]),
			PreNumber:   preNumber,
			Date:        date,
			User:        record[4],
			Cleanup:     ParseCleanupAlgorithm(record[5]),
			Description: record[6],
			Userdata:    userdata,
		})
	}

	return snapshots, nil
}

// readCSV parses snapper's --csvout output, dropping the header row
func readCSV(output string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(output))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, WrapError(err)
	}
	if len(records) == 0 {
		return records, nil
	}
	return records[1:], nil
}

// parseUserdata reads "key=value,key2=value2"
func parseUserdata(value string) map[string]string {
	userdata := map[string]string{}
	for _, pair := range strings.Split(value, ",") {
		key, val, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			continue
		}
		userdata[key] = strings.TrimSpace(val)
	}
	return userdata
}

// CreateSnapshot creates a snapshot and returns its number
func (c *SnapperCommand) CreateSnapshot(ctx context.Context, opts CreateOptions) (int, error) {
	if !c.OSCommand.CreateSnapshotAllowed(opts.Type) {
		return 0, NewComplexError(SnapshotsDisabled, c.Tr.SnapshotsDisabled)
	}

	args := []string{"create", "--type", string(opts.Type), "--print-number", "--description", opts.Description}

	if opts.Type == SnapshotPost {
		snapshots, err := c.GetSnapshots(ctx)
		if err != nil {
			return 0, err
		}
		if !lo.ContainsBy(snapshots, func(s *Snapshot) bool { return s.Number == opts.PreNumber }) {
			return 0, NewComplexError(SnapshotNotFound, c.Tr.PreviousNotFound)
		}
		args = append(args, "--pre-number", strconv.Itoa(opts.PreNumber))
	}

	if opts.Cleanup != CleanupNone {
		args = append(args, "--cleanup-algorithm", string(opts.Cleanup))
	}

	if opts.Important {
		args = append(args, "--userdata", "important=yes")
	}

	output, err := c.runWithConfig(ctx, args...)
	if err != nil {
		return 0, err
	}

	number, err := strconv.Atoi(strings.TrimSpace(output))
	if err != nil {
		return 0, errors.Errorf("unexpected output from snapper create: %q", output)
	}
	return number, nil
}

func (c *SnapperCommand) DeleteSnapshot(ctx context.Context, number int) error {
	_, err := c.runWithConfig(ctx, "delete", strconv.Itoa(number))
	return err
}

// DeleteSnapshots deletes one snapshot at a time so that one failure does not
// stop the rest. Newest go first so that a post snapshot goes before its pre.
func (c *SnapperCommand) DeleteSnapshots(ctx context.Context, numbers []int) DeleteResult {
	result := DeleteResult{Succeeded: []int{}, Failed: []int{}, Errors: map[int]error{}}
	for _, number := range sortedSnapshotNumbers(numbers) {
		if err := c.DeleteSnapshot(ctx, number); err != nil {
			c.Log.Error(err)
			result.Failed = append(result.Failed, number)
			result.Errors[number] = err
			continue
		}
		result.Succeeded = append(result.Succeeded, number)
	}
	return result
}

func (c *SnapperCommand) RollbackSnapshot(ctx context.Context, number int) error {
	_, err := c.runWithConfig(ctx, "rollback", strconv.Itoa(number))
	return err
}

func (c *SnapperCommand) changesKey(number int) string {
	return fmt.Sprintf("%s:%d", c.ConfigName(), number)
}

// GetFileChanges lists what changed between snapshot number and the running system
func (c *SnapperCommand) GetFileChanges(ctx context.Context, number int) ([]*FileChange, error) {
	output, err := c.runWithConfig(ctx, "status", fmt.Sprintf("%d..0", number))
	if err != nil {
		return nil, err
	}

	changes := parseFileChanges(output)

	c.mutex.Lock()
	c.changes[c.changesKeyLocked(number)] = changes
	c.mutex.Unlock()

	return changes, nil
}

func (c *SnapperCommand) changesKeyLocked(number int) string {
	return fmt.Sprintf("%s:%d", c.configName, number)
}

// InvalidateFileChanges forgets the change list of snapshot number, e.g. after a restore
func (c *SnapperCommand) InvalidateFileChanges(number int) {
	key := c.changesKey(number)
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.changes, key)
}

func parseFileChanges(output string) []*FileChange {
	changes := []*FileChange{}
	for _, line := range utils.SplitLines(output) {
		fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
		if len(fields) < 2 {
			continue
		}
		status := fields[0]
		path := strings.TrimSpace(fields[1])
		if path == "" {
			continue
		}
		if len(status) < 5 {
			status += strings.Repeat(".", 5-len(status))
		}
		changes = append(changes, &FileChange{
			Status: status,
			Path:   path,
			Type:   ParseChangeType(status),
		})
	}
	return changes
}

// GetFileDiff returns a unified diff from the file as it is in snapshot number
// to the file as it is now. Paths that are not part of the snapshot's change
// list give an empty diff.
func (c *SnapperCommand) GetFileDiff(ctx context.Context, number int, path string) (string, error) {
	c.mutex.RLock()
	changes, ok := c.changes[c.changesKeyLocked(number)]
	c.mutex.RUnlock()

	if !ok {
		var err error
		if changes, err = c.GetFileChanges(ctx, number); err != nil {
			return "", err
		}
	}

	path = normalisePath(path)
	if !lo.ContainsBy(changes, func(change *FileChange) bool { return normalisePath(change.Path) == path }) {
		return "", nil
	}

	subvolume, err := c.subvolume(ctx)
	if err != nil {
		return "", err
	}

	snapshotPath := SnapshotFilePath(subvolume, number, path)

	before, err := readDiffSide(snapshotPath)
	if err != nil {
		return "", err
	}
	after, err := readDiffSide(path)
	if err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: snapshotPath,
		ToFile:   path,
		Context:  3,
	})
}

// SnapshotPath is the directory holding snapshot number of the current config
func (c *SnapperCommand) SnapshotPath(ctx context.Context, number int) (string, error) {
	subvolume, err := c.subvolume(ctx)
	if err != nil {
		return "", err
	}
	return SnapshotDir(subvolume, number), nil
}

// SnapshotDir is where snapper mounts snapshot number of the subvolume
func SnapshotDir(subvolume string, number int) string {
	return filepath.Join(subvolume, ".snapshots", strconv.Itoa(number), "snapshot")
}

// SnapshotFilePath is where the live path lives inside snapshot number
func SnapshotFilePath(subvolume string, number int, path string) string {
	rel := path
	if subvolume != "/" {
		rel = strings.TrimPrefix(path, strings.TrimSuffix(subvolume, "/"))
	}
	return filepath.Join(SnapshotDir(subvolume, number), rel)
}

// readDiffSide treats a missing file, or a directory, as empty
func readDiffSide(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", WrapError(err)
	}
	if info.IsDir() {
		return "", nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", WrapError(err)
	}
	return string(content), nil
}

// RestoreFiles undoes the changes to paths since snapshot number, in batches.
// onProgress is called after every batch. A failed batch does not stop the
// others but the restore as a whole then fails. Cancelling ctx stops the
// restore between batches; the batch in flight always runs to completion.
func (c *SnapperCommand) RestoreFiles(ctx context.Context, number int, paths []string, onProgress func(processed int, total int, message string)) error {
	if len(paths) == 0 {
		return errors.New(c.Tr.NoFilesSelected)
	}
	if c.ConfigName() == "" || number <= 0 {
		return NewComplexError(InvalidArgument, fmt.Sprintf("cannot restore from snapshot %d of config '%s'", number, c.ConfigName()))
	}

	batchSize := c.Config.UserConfig.Snapper.RestoreBatchSize
	if batchSize <= 0 {
		batchSize = defaultRestoreBatchSize
	}

	defer c.InvalidateFileChanges(number)

	batches := lo.Chunk(paths, batchSize)
	total := len(paths)
	processed := 0
	failed := 0

	for i, batch := range batches {
		if ctx.Err() != nil {
			return ErrRestoreCancelled
		}

		args := append([]string{"-c", c.ConfigName(), "undochange", fmt.Sprintf("%d..0", number)}, batch...)
		if _, err := c.run(context.WithoutCancel(ctx), args...); err != nil {
			c.Log.Errorf("batch %d/%d failed: %v", i+1, len(batches), err)
			failed += len(batch)
		}

		processed += len(batch)
		if onProgress != nil {
			onProgress(processed, total, ts.Arg(c.Tr.BatchCompleted, i+1, len(batches)))
		}
	}

	if failed > 0 {
		return errors.New(ts.Arg(c.Tr.RestoreFailed, failed, total))
	}
	return nil
}

func sortedSnapshotNumbers(numbers []int) []int {
	sorted := lo.Uniq(numbers)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted
}
