package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, respond func(args []string) (string, string)) (*App, *[][]string) {
	t.Setenv("DISABLE_SNAPSHOTS", "")

	appConfig := commands.NewDummyAppConfig()
	appConfig.ConfigDir = t.TempDir()
	appConfig.UserConfig.Snapper.PreSnapshotDir = filepath.Join(t.TempDir(), "store")

	app, err := NewApp(appConfig, "root")
	require.NoError(t, err)

	return app, commands.FakeSnapper(app.OSCommand, respond)
}

func hasArg(args []string, arg string) bool {
	for _, a := range args {
		if a == arg {
			return true
		}
	}
	return false
}

func TestNewApp(t *testing.T) {
	app, _ := newTestApp(t, func([]string) (string, string) { return "", "" })

	assert.NotNil(t, app.Config)
	assert.NotNil(t, app.Log)
	assert.NotNil(t, app.OSCommand)
	assert.NotNil(t, app.SnapperCommand)
	assert.NotNil(t, app.Tr)
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, app.ErrorChan)
	assert.NotNil(t, app.Gui)
	assert.Equal(t, "root", app.SnapperCommand.ConfigName())
}

func TestPreAndPostSnapshot(t *testing.T) {
	app, calls := newTestApp(t, func(args []string) (string, string) {
		switch {
		case hasArg(args, "list"):
			return "number,type,pre-number,date,user,cleanup,description,userdata\n7,pre,,2024-01-16 08:00:00,root,number,zypper,\n", ""
		case hasArg(args, "pre"):
			return "7\n", ""
		case hasArg(args, "post"):
			return "8\n", ""
		}
		return "", ""
	})
	ctx := context.Background()
	store := app.snapshotStore()

	pre, err := app.CreatePreSnapshot(ctx, "zypp", "zypper in vim")
	require.NoError(t, err)
	assert.Equal(t, 7, pre)
	assert.Equal(t, 7, store.Load("zypp"))

	post, err := app.CreatePostSnapshot(ctx, "zypp", "zypper in vim")
	require.NoError(t, err)
	assert.Equal(t, 8, post)
	assert.Equal(t, -1, store.Load("zypp"))

	postCall := (*calls)[len(*calls)-1]
	assert.Equal(t, []string{
		"-c", "root", "create", "--type", "post", "--print-number", "--description", "zypper in vim",
		"--pre-number", "7", "--cleanup-algorithm", "number",
	}, postCall)
}

func TestPreSnapshotInvalidPurpose(t *testing.T) {
	app, calls := newTestApp(t, func([]string) (string, string) { return "7\n", "" })

	_, err := app.CreatePreSnapshot(context.Background(), "../../etc/cron.d/x", "")
	assert.True(t, commands.HasErrorCode(err, commands.InvalidArgument))
	assert.Empty(t, *calls, "no snapshot is created for a purpose we cannot store")
}

func TestPostSnapshotWithoutPre(t *testing.T) {
	app, calls := newTestApp(t, func([]string) (string, string) { return "", "" })

	_, err := app.CreatePostSnapshot(context.Background(), "zypp", "")
	assert.True(t, commands.HasErrorCode(err, commands.SnapshotNotFound))
	assert.Empty(t, *calls)
}

func TestPostSnapshotForgetsVanishedPre(t *testing.T) {
	app, _ := newTestApp(t, func(args []string) (string, string) {
		if hasArg(args, "list") {
			return "number,type,pre-number,date,user,cleanup,description,userdata\n", ""
		}
		return "", ""
	})
	store := app.snapshotStore()
	require.NoError(t, store.Save("zypp", 3))

	_, err := app.CreatePostSnapshot(context.Background(), "zypp", "")
	assert.True(t, commands.HasErrorCode(err, commands.SnapshotNotFound))
	assert.Equal(t, -1, store.Load("zypp"))
}

func TestAppKnownErrorHandling(t *testing.T) {
	app, _ := newTestApp(t, func([]string) (string, string) { return "", "" })

	type scenario struct {
		name         string
		errorMessage string
		expectKnown  bool
		expectedText string
	}

	scenarios := []scenario{
		{"unknown config", "Unknown config.", true, app.Tr.NoSnapperConfig},
		{"missing root config", "The config 'root' does not exist.", true, "Snapper is not configured for root. Create a config with 'snapper create-config'."},
		{"no permissions", "No permissions.", true, app.Tr.RequiresAdmin},
		{"permission denied", "open /.snapshots: permission denied", true, app.Tr.RequiresAdmin},
		{"unknown error", "some unknown error message", false, ""},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			text, known := app.KnownError(errors.New(s.errorMessage))

			assert.Equal(t, s.expectKnown, known)
			assert.Equal(t, s.expectedText, text)
		})
	}
}
