package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/lazysnapper/pkg/app"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/yaml"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false
	snapperConfig string
	language      string

	purpose     = "default"
	description string

	catalogFile string
	statsAsYaml = false
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("lazysnapper")
	flaggy.SetDescription("The lazier way to manage snapper snapshots")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/jesseduffield/lazysnapper"

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "a boolean")
	flaggy.String(&snapperConfig, "s", "snapper-config", "The snapper config to start with")
	flaggy.String(&language, "l", "language", "Override the interface language, e.g. de or ja")
	flaggy.SetVersion(info)

	preCmd := flaggy.NewSubcommand("pre")
	preCmd.Description = "Create a pre snapshot and remember its number"
	postCmd := flaggy.NewSubcommand("post")
	postCmd.Description = "Create the post snapshot matching the last pre snapshot"
	for _, cmd := range []*flaggy.Subcommand{preCmd, postCmd} {
		cmd.String(&purpose, "p", "purpose", "Pairs pre and post snapshots, e.g. the name of a package manager hook")
		cmd.String(&description, "D", "description", "The snapshot description")
		flaggy.AttachSubcommand(cmd, 1)
	}

	tsCmd := flaggy.NewSubcommand("ts")
	tsCmd.Description = "Work with Qt Linguist translation catalogs. Extra files go after --"
	lintCmd := flaggy.NewSubcommand("lint")
	lintCmd.Description = "Report problems in catalogs"
	syncCmd := flaggy.NewSubcommand("sync")
	syncCmd.Description = "Add missing strings to a catalog and mark removed ones as vanished"
	statsCmd := flaggy.NewSubcommand("stats")
	statsCmd.Description = "Show translation progress"
	statsCmd.Bool(&statsAsYaml, "y", "yaml", "Print yaml instead of a table")
	for _, cmd := range []*flaggy.Subcommand{lintCmd, syncCmd, statsCmd} {
		cmd.AddPositionalValue(&catalogFile, "file", 1, true, "The .ts file")
		tsCmd.AttachSubcommand(cmd, 1)
	}
	flaggy.AttachSubcommand(tsCmd, 1)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	if tsCmd.Used {
		os.Exit(runCatalogCommand(lintCmd, syncCmd, statsCmd))
	}

	appConfig, err := config.NewAppConfig("lazysnapper", version, commit, date, buildSource, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}
	if language != "" {
		appConfig.UserConfig.Gui.Language = language
	}

	app, err := app.NewApp(appConfig, snapperConfig)
	if err == nil {
		switch {
		case preCmd.Used:
			err = printNumber(app.CreatePreSnapshot(context.Background(), purpose, description))
		case postCmd.Used:
			err = printNumber(app.CreatePostSnapshot(context.Background(), purpose, description))
		default:
			err = app.Run()
		}
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			log.Println(errMessage)
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		app.Log.Error(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}

func printNumber(number int, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(number)
	return nil
}

func runCatalogCommand(lintCmd, syncCmd, statsCmd *flaggy.Subcommand) int {
	files := append([]string{catalogFile}, flaggy.DefaultParser.TrailingArguments...)

	var err error
	switch {
	case lintCmd.Used:
		var failed bool
		failed, err = app.LintCatalogs(os.Stdout, files)
		if err == nil && failed {
			return 1
		}
	case syncCmd.Used:
		for _, file := range files {
			if err = app.SyncCatalog(os.Stdout, file); err != nil {
				break
			}
		}
	case statsCmd.Used:
		err = app.CatalogStats(os.Stdout, files, statsAsYaml)
	default:
		flaggy.ShowHelpAndExit("")
	}

	if err != nil {
		log.Println(err.Error())
		return 1
	}
	return 0
}
