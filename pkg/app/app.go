package app

import (
	"context"

	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/gui"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/jesseduffield/lazysnapper/pkg/log"
	"github.com/jesseduffield/lazysnapper/pkg/theme"
	"github.com/sirupsen/logrus"
)

// App struct
type App struct {
	Config         *config.AppConfig
	Log            *logrus.Entry
	OSCommand      *commands.OSCommand
	SnapperCommand *commands.SnapperCommand
	Gui            *gui.Gui
	Tr             *i18n.TranslationSet
	Theme          *theme.Theme
	ErrorChan      chan error
}

// NewApp bootstrap a new application. An empty configName falls back to the
// default config from the user config.
func NewApp(config *config.AppConfig, configName string) (*App, error) {
	app := &App{
		Config:    config,
		ErrorChan: make(chan error),
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Gui.Language, i18n.SearchDirs(config.TranslationsDir())...)
	if err != nil {
		return app, err
	}
	app.OSCommand = commands.NewOSCommand(app.Log, config)
	app.SnapperCommand = commands.NewSnapperCommand(app.Log, app.OSCommand, app.Tr, config, configName)
	app.Theme = theme.New(config.UserConfig.Gui.Theme)

	app.Gui, err = gui.NewGui(app.Log, app.SnapperCommand, app.OSCommand, app.Tr, config, app.Theme, app.ErrorChan)
	if err != nil {
		return app, err
	}
	return app, nil
}

func (app *App) Run() error {
	return app.Gui.Run()
}

func (app *App) snapshotStore() *commands.FsSnapshotStore {
	return commands.NewFsSnapshotStore(app.Log, app.Config.UserConfig.Snapper.PreSnapshotDir)
}

// CreatePreSnapshot creates a pre snapshot and remembers its number under
// purpose so a later CreatePostSnapshot can pair with it
func (app *App) CreatePreSnapshot(ctx context.Context, purpose string, description string) (int, error) {
	if err := commands.ValidatePurpose(purpose); err != nil {
		return 0, err
	}

	number, err := app.SnapperCommand.CreateSnapshot(ctx, commands.CreateOptions{
		Type:        commands.SnapshotPre,
		Description: description,
		Cleanup:     commands.CleanupNumber,
	})
	if err != nil {
		return 0, err
	}

	if err := app.snapshotStore().Save(purpose, number); err != nil {
		return number, err
	}
	return number, nil
}

// CreatePostSnapshot pairs a post snapshot with the pre snapshot saved under
// purpose, then forgets it
func (app *App) CreatePostSnapshot(ctx context.Context, purpose string, description string) (int, error) {
	store := app.snapshotStore()

	preNumber := store.Load(purpose)
	if preNumber < 0 {
		return 0, commands.NewComplexError(commands.SnapshotNotFound, app.Tr.PreviousNotFound)
	}

	number, err := app.SnapperCommand.CreateSnapshot(ctx, commands.CreateOptions{
		Type:        commands.SnapshotPost,
		Description: description,
		PreNumber:   preNumber,
		Cleanup:     commands.CleanupNumber,
	})
	if err != nil {
		// a pre snapshot that snapper no longer knows about will never pair
		if commands.HasErrorCode(err, commands.SnapshotNotFound) {
			if cleanErr := store.Clean(purpose); cleanErr != nil {
				app.Log.Warn(cleanErr)
			}
		}
		return 0, err
	}

	return number, store.Clean(purpose)
}

// KnownError turns errors we expect, mostly snapper refusing to run, into a
// message for the user instead of a stack trace
func (app *App) KnownError(err error) (string, bool) {
	switch commands.ClassifyError(err) {
	case commands.ConfigUnknown:
		return app.Tr.NoSnapperConfig, true
	case commands.ConfigMissing:
		return ts.Arg(app.Tr.SnapperNotConfigured, app.SnapperCommand.ConfigName()), true
	case commands.PermissionDenied:
		return app.Tr.RequiresAdmin, true
	default:
		return "", false
	}
}
