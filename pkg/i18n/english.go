package i18n

// TranslationSet is a set of localised strings for a given language.
//
// The ts tag names the catalog context a string is looked up in. The
// english value doubles as the catalog source text, so changing an english
// string orphans its translations until the catalogs are synced again.
type TranslationSet struct {
	AppTitle string `ts:"Main"`

	NoFilesSelected  string `ts:"FileChangeModel"`
	RestoreFailed    string `ts:"FileChangeModel"`
	BatchCompleted   string `ts:"FileChangeModel"`
	RestoreCancelled string `ts:"FileChangeModel"`

	SnapshotList           string `ts:"SnapshotListPage"`
	SnapshotCreated        string `ts:"SnapshotListPage"`
	SnapshotDeleted        string `ts:"SnapshotListPage"`
	DeleteSnapshotFailed   string `ts:"SnapshotListPage"`
	DeletedSnapshots       string `ts:"SnapshotListPage"`
	DeletionCompleted      string `ts:"SnapshotListPage"`
	AppName                string `ts:"SnapshotListPage"`
	SelectedCount          string `ts:"SnapshotListPage"`
	Refresh                string `ts:"SnapshotListPage"`
	DeleteSelected         string `ts:"SnapshotListPage"`
	CreateSnapshot         string `ts:"SnapshotListPage"`
	DarkMode               string `ts:"SnapshotListPage"`
	TotalSnapshots         string `ts:"SnapshotListPage"`
	NoSnapshots            string `ts:"SnapshotListPage"`
	AboutApp               string `ts:"SnapshotListPage"`
	DescriptionPrompt      string `ts:"SnapshotListPage"`
	EnterDescription       string `ts:"SnapshotListPage"`
	SingleSnapshot         string `ts:"SnapshotListPage"`
	PreSnapshot            string `ts:"SnapshotListPage"`
	PreSnapshotHint        string `ts:"SnapshotListPage"`
	DescriptionRequired    string `ts:"SnapshotListPage"`
	Confirmation           string `ts:"SnapshotListPage"`
	ConfirmDeleteSnapshot  string `ts:"SnapshotListPage"`
	ConfirmDeleteSnapshots string `ts:"SnapshotListPage"`
	CannotBeUndone         string `ts:"SnapshotListPage"`
	RequiresAdmin          string `ts:"SnapshotListPage"`
	ErrorTitle             string `ts:"SnapshotListPage"`

	NoDescription  string `ts:"SnapshotItem"`
	Important      string `ts:"SnapshotItem"`
	TypeLabel      string `ts:"SnapshotItem"`
	Single         string `ts:"SnapshotItem"`
	Pre            string `ts:"SnapshotItem"`
	Post           string `ts:"SnapshotItem"`
	UserLabel      string `ts:"SnapshotItem"`
	Unknown        string `ts:"SnapshotItem"`
	PreviousNumber string `ts:"SnapshotItem"`
	DateValue      string `ts:"SnapshotItem"`
	StartValue     string `ts:"SnapshotItem"`
	EndValue       string `ts:"SnapshotItem"`
	CleanupValue   string `ts:"SnapshotItem"`
	Details        string `ts:"SnapshotItem"`

	SnapshotDetails       string `ts:"SnapshotDetailDialog"`
	BasicInformation      string `ts:"SnapshotDetailDialog"`
	NumberLabel           string `ts:"SnapshotDetailDialog"`
	DetailTypeLabel       string `ts:"SnapshotDetailDialog"`
	DetailSingle          string `ts:"SnapshotDetailDialog"`
	DetailPre             string `ts:"SnapshotDetailDialog"`
	DetailPost            string `ts:"SnapshotDetailDialog"`
	DateTimeLabel         string `ts:"SnapshotDetailDialog"`
	DetailUserLabel       string `ts:"SnapshotDetailDialog"`
	DetailUnknown         string `ts:"SnapshotDetailDialog"`
	CleanupLabel          string `ts:"SnapshotDetailDialog"`
	PreviousSnapshotLabel string `ts:"SnapshotDetailDialog"`
	DescriptionTitle      string `ts:"SnapshotDetailDialog"`
	DetailNoDescription   string `ts:"SnapshotDetailDialog"`
	UserDataTitle         string `ts:"SnapshotDetailDialog"`
	RestoreFiles          string `ts:"SnapshotDetailDialog"`
	SystemRollback        string `ts:"SnapshotDetailDialog"`
	Close                 string `ts:"SnapshotDetailDialog"`
	RollbackConfirmation  string `ts:"SnapshotDetailDialog"`
	ConfirmRollback       string `ts:"SnapshotDetailDialog"`
	RollbackExplanation   string `ts:"SnapshotDetailDialog"`
	RollbackRequiresAdmin string `ts:"SnapshotDetailDialog"`
	RollbackSuccessTitle  string `ts:"SnapshotDetailDialog"`
	RollbackCompleted     string `ts:"SnapshotDetailDialog"`
	RollbackErrorTitle    string `ts:"SnapshotDetailDialog"`
	RollbackFailed        string `ts:"SnapshotDetailDialog"`

	SnapshotOverview       string `ts:"RestorePreviewDialog"`
	RootFilesystem         string `ts:"RestorePreviewDialog"`
	RestorePreviewHint     string `ts:"RestorePreviewDialog"`
	LoadingDiff            string `ts:"RestorePreviewDialog"`
	NewFileCreated         string `ts:"RestorePreviewDialog"`
	FileDeleted            string `ts:"RestorePreviewDialog"`
	NoDiffFound            string `ts:"RestorePreviewDialog"`
	NoDifferences          string `ts:"RestorePreviewDialog"`
	Cancel                 string `ts:"RestorePreviewDialog"`
	RestoreSelected        string `ts:"RestorePreviewDialog"`
	RestoreConfirmation    string `ts:"RestorePreviewDialog"`
	ConfirmRestoreSelected string `ts:"RestorePreviewDialog"`
	RestoreExplanation     string `ts:"RestorePreviewDialog"`
	OverwriteWarning       string `ts:"RestorePreviewDialog"`
	RestoringFiles         string `ts:"RestorePreviewDialog"`
	RestoringPleaseWait    string `ts:"RestorePreviewDialog"`
	RestoreProgress        string `ts:"RestorePreviewDialog"`
	RestoreSuccessTitle    string `ts:"RestorePreviewDialog"`
	RestoreCompleted       string `ts:"RestorePreviewDialog"`
	NoMoreDifferences      string `ts:"RestorePreviewDialog"`

	AboutTitle       string `ts:"AboutDialog"`
	AboutDescription string `ts:"AboutDialog"`
	AboutLicense     string `ts:"AboutDialog"`
	AboutIssues      string `ts:"AboutDialog"`

	NotEnoughSpace       string `ts:"Gui"`
	StatusTitle          string `ts:"Gui"`
	ConfigsTitle         string `ts:"Gui"`
	SnapshotsTitle       string `ts:"Gui"`
	FilesTitle           string `ts:"Gui"`
	MainTitle            string `ts:"Gui"`
	GlobalTitle          string `ts:"Gui"`
	MenuTitle            string `ts:"Gui"`
	InfoTitle            string `ts:"Gui"`
	DiffTitle            string `ts:"Gui"`
	ChangesTitle         string `ts:"Gui"`
	TimelineTitle        string `ts:"Gui"`
	RawTitle             string `ts:"Gui"`
	ConfigTitle          string `ts:"Gui"`
	CreditsTitle         string `ts:"Gui"`
	CustomCommandTitle   string `ts:"Gui"`
	SnapshotTypeTitle    string `ts:"Gui"`
	NothingToDisplay     string `ts:"Gui"`
	NoConfigs            string `ts:"Gui"`
	NoFileChanges        string `ts:"Gui"`
	SnapshotsPerDay      string `ts:"Gui"`
	CurrentConfig        string `ts:"Gui"`
	ChangeSummary        string `ts:"Gui"`
	SubvolumeLabel       string `ts:"Gui"`
	RootConfiguredLabel  string `ts:"Gui"`
	NoSnapperConfig      string `ts:"Gui"`
	Navigate             string `ts:"Gui"`
	Execute              string `ts:"Gui"`
	Scroll               string `ts:"Gui"`
	Quit                 string `ts:"Gui"`
	Menu                 string `ts:"Gui"`
	Return               string `ts:"Gui"`
	Confirm              string `ts:"Gui"`
	FocusMain            string `ts:"Gui"`
	LcFilter             string `ts:"Gui"`
	GotoTop              string `ts:"Gui"`
	GotoBottom           string `ts:"Gui"`
	FilterPrompt         string `ts:"Gui"`
	PreviousContext      string `ts:"Gui"`
	NextContext          string `ts:"Gui"`
	LcNextScreenMode     string `ts:"Gui"`
	LcPrevScreenMode     string `ts:"Gui"`
	OpenConfig           string `ts:"Gui"`
	EditConfig           string `ts:"Gui"`
	LcAbout              string `ts:"Gui"`
	LcRefresh            string `ts:"Gui"`
	ToggleTheme          string `ts:"Gui"`
	SelectConfig         string `ts:"Gui"`
	LcCreateSnapshot     string `ts:"Gui"`
	LcCreateImportant    string `ts:"Gui"`
	LcCreatePre          string `ts:"Gui"`
	LcCreatePost         string `ts:"Gui"`
	LcRemove             string `ts:"Gui"`
	LcRemoveSelected     string `ts:"Gui"`
	LcToggleSelect       string `ts:"Gui"`
	LcRollback           string `ts:"Gui"`
	LcViewFiles          string `ts:"Gui"`
	LcOpenShell          string `ts:"Gui"`
	RunCustomCommand     string `ts:"Gui"`
	LcToggleCheck        string `ts:"Gui"`
	LcCheckAll           string `ts:"Gui"`
	LcUncheckAll         string `ts:"Gui"`
	LcToggleCollapse     string `ts:"Gui"`
	LcRestore            string `ts:"Gui"`
	ConfirmQuit          string `ts:"Gui"`
	PostSnapshotPrompt   string `ts:"Gui"`
	PreviousNotFound     string `ts:"Gui"`
	SnapshotsDisabled    string `ts:"Gui"`
	SnapperNotFound      string `ts:"Gui"`
	SnapperNotConfigured string `ts:"Gui"`
	NoSnapshotSelected   string `ts:"Gui"`
	ErrorOccurred        string `ts:"Gui"`
	CannotKillChildError string `ts:"Gui"`
	PressEnterToReturn   string `ts:"Gui"`
	CreatingStatus       string `ts:"Gui"`
	DeletingStatus       string `ts:"Gui"`
	RollingBackStatus    string `ts:"Gui"`
	RestoringStatus      string `ts:"Gui"`
	RunningCustomCommand string `ts:"Gui"`
	LightMode            string `ts:"Gui"`
	SystemMode           string `ts:"Gui"`
	No                   string `ts:"Gui"`
	Yes                  string `ts:"Gui"`
}

func englishSet() TranslationSet {
	return TranslationSet{
		AppTitle: "lazysnapper - Snapshot Manager",

		NoFilesSelected:  "No files selected for restoration",
		RestoreFailed:    "Failed to restore %1 out of %2 files",
		BatchCompleted:   "Batch %1/%2 completed",
		RestoreCancelled: "Restore cancelled",

		SnapshotList:           "Snapshot List",
		SnapshotCreated:        "Snapshot created successfully",
		SnapshotDeleted:        "Snapshot #%1 deleted",
		DeleteSnapshotFailed:   "Failed to delete snapshot #%1: %2",
		DeletedSnapshots:       "Deleted %1 snapshot(s)",
		DeletionCompleted:      "Deletion completed: %1 succeeded, %2 failed",
		AppName:                "lazysnapper",
		SelectedCount:          "%1 selected",
		Refresh:                "Refresh",
		DeleteSelected:         "Delete Selected",
		CreateSnapshot:         "Create Snapshot",
		DarkMode:               "Dark Mode",
		TotalSnapshots:         "Total Snapshots: %1",
		NoSnapshots:            "No snapshots available",
		AboutApp:               "About lazysnapper",
		DescriptionPrompt:      "Description:",
		EnterDescription:       "Enter snapshot description",
		SingleSnapshot:         "Single Snapshot",
		PreSnapshot:            "Pre Snapshot",
		PreSnapshotHint:        "Pre snapshot can be paired with post snapshot later",
		DescriptionRequired:    "Please enter a description",
		Confirmation:           "Confirmation",
		ConfirmDeleteSnapshot:  "Delete selected snapshot?",
		ConfirmDeleteSnapshots: "Delete %1 snapshots?",
		CannotBeUndone:         "This operation cannot be undone.",
		RequiresAdmin:          "Note: This operation requires administrator privileges.",
		ErrorTitle:             "Error",

		NoDescription:  "(No description)",
		Important:      "Important",
		TypeLabel:      "Type:",
		Single:         "Single",
		Pre:            "Pre",
		Post:           "Post",
		UserLabel:      "User:",
		Unknown:        "Unknown",
		PreviousNumber: "Prev: #%1",
		DateValue:      "Date: %1",
		StartValue:     "Start: %1",
		EndValue:       "End: %1",
		CleanupValue:   "Cleanup: %1",
		Details:        "Details",

		SnapshotDetails:       "Snapshot Details",
		BasicInformation:      "Basic Information",
		NumberLabel:           "Number:",
		DetailTypeLabel:       "Type:",
		DetailSingle:          "Single",
		DetailPre:             "Pre",
		DetailPost:            "Post",
		DateTimeLabel:         "Date/Time:",
		DetailUserLabel:       "User:",
		DetailUnknown:         "Unknown",
		CleanupLabel:          "Cleanup:",
		PreviousSnapshotLabel: "Previous Snapshot:",
		DescriptionTitle:      "Description",
		DetailNoDescription:   "(No description)",
		UserDataTitle:         "User Data",
		RestoreFiles:          "Restore Files",
		SystemRollback:        "System Rollback",
		Close:                 "Close",
		RollbackConfirmation:  "Confirmation",
		ConfirmRollback:       "Rollback to snapshot #%1?",
		RollbackExplanation:   "This operation will restore the system to the selected snapshot state.",
		RollbackRequiresAdmin: "Note: This operation requires administrator privileges.",
		RollbackSuccessTitle:  "Success",
		RollbackCompleted:     "Snapshot rollback completed.\nPlease reboot the system.",
		RollbackErrorTitle:    "Error",
		RollbackFailed:        "Rollback failed: %1",

		SnapshotOverview:       "Snapshot Overview",
		RootFilesystem:         "Root Filesystem",
		RestorePreviewHint:     "Shows the system state after applying the specified snapshot",
		LoadingDiff:            "Loading diff...",
		NewFileCreated:         "New file created.",
		FileDeleted:            "File deleted.",
		NoDiffFound:            "No diff found.",
		NoDifferences:          "No differences with snapshot",
		Cancel:                 "Cancel",
		RestoreSelected:        "Restore Selected",
		RestoreConfirmation:    "Confirmation",
		ConfirmRestoreSelected: "Restore selected files/directories?",
		RestoreExplanation:     "This will restore selected files and directories to snapshot #%1 state.",
		OverwriteWarning:       "Warning: This may overwrite current files.",
		RestoringFiles:         "Restoring Files",
		RestoringPleaseWait:    "Restoring files. Please wait...",
		RestoreProgress:        "Progress: %1 / %2",
		RestoreSuccessTitle:    "Success",
		RestoreCompleted:       "File/directory restoration completed.",
		NoMoreDifferences:      "No more differences with snapshot.",

		AboutTitle:       "About lazysnapper",
		AboutDescription: "A terminal application for managing Btrfs/Snapper filesystem snapshots on Linux.",
		AboutLicense:     "This program is licensed under the MIT License.",
		AboutIssues:      "Issues: %1",

		NotEnoughSpace:       "Not enough space to render panels",
		StatusTitle:          "Status",
		ConfigsTitle:         "Configs",
		SnapshotsTitle:       "Snapshots",
		FilesTitle:           "Files",
		MainTitle:            "Main",
		GlobalTitle:          "Global",
		MenuTitle:            "Menu",
		InfoTitle:            "Info",
		DiffTitle:            "Diff",
		ChangesTitle:         "Changes",
		TimelineTitle:        "Timeline",
		RawTitle:             "Raw",
		ConfigTitle:          "Config",
		CreditsTitle:         "About",
		CustomCommandTitle:   "Custom Command:",
		SnapshotTypeTitle:    "Snapshot type",
		NothingToDisplay:     "Nothing to display",
		NoConfigs:            "No snapper configs",
		NoFileChanges:        "No file changes",
		SnapshotsPerDay:      "snapshots per day, last %1 days",
		CurrentConfig:        "Config: %1",
		ChangeSummary:        "%1 created, %2 deleted, %3 modified, %4 type changed",
		SubvolumeLabel:       "Subvolume",
		RootConfiguredLabel:  "Root configured",
		NoSnapperConfig:      "No snapper configuration found",
		Navigate:             "navigate",
		Execute:              "execute",
		Scroll:               "scroll",
		Quit:                 "quit",
		Menu:                 "menu",
		Return:               "return",
		Confirm:              "Confirm",
		FocusMain:            "focus main panel",
		LcFilter:             "filter list",
		GotoTop:              "go to top",
		GotoBottom:           "go to bottom",
		FilterPrompt:         "filter",
		PreviousContext:      "previous tab",
		NextContext:          "next tab",
		LcNextScreenMode:     "next screen mode (normal/half/fullscreen)",
		LcPrevScreenMode:     "prev screen mode",
		OpenConfig:           "open lazysnapper config",
		EditConfig:           "edit lazysnapper config",
		LcAbout:              "about",
		LcRefresh:            "refresh",
		ToggleTheme:          "toggle theme (dark/light/system)",
		SelectConfig:         "select config",
		LcCreateSnapshot:     "create snapshot",
		LcCreateImportant:    "create important snapshot",
		LcCreatePre:          "create pre snapshot",
		LcCreatePost:         "create post snapshot for the selected pre snapshot",
		LcRemove:             "delete snapshot",
		LcRemoveSelected:     "delete selected snapshots",
		LcToggleSelect:       "toggle selection",
		LcRollback:           "rollback system",
		LcViewFiles:          "view changed files",
		LcOpenShell:          "open shell in snapshot",
		RunCustomCommand:     "run predefined custom command",
		LcToggleCheck:        "toggle check",
		LcCheckAll:           "check all",
		LcUncheckAll:         "uncheck all",
		LcToggleCollapse:     "collapse/expand directory",
		LcRestore:            "restore checked files",
		ConfirmQuit:          "Are you sure you want to quit?",
		PostSnapshotPrompt:   "Description for the post snapshot of #%1",
		PreviousNotFound:     "Previous snapshot was not found.",
		SnapshotsDisabled:    "Snapshots of this kind are disabled by DISABLE_SNAPSHOTS",
		SnapperNotFound:      "Could not run '%1'. Is snapper installed and on your PATH?",
		SnapperNotConfigured: "Snapper is not configured for %1. Create a config with 'snapper create-config'.",
		NoSnapshotSelected:   "No snapshot selected",
		ErrorOccurred:        "An error occurred! Please create an issue at https://github.com/jesseduffield/lazysnapper/issues",
		CannotKillChildError: "Waited three seconds for child process to stop. There may be an orphan process that continues to run on your system.",
		PressEnterToReturn:   "Press enter to return to lazysnapper",
		CreatingStatus:       "creating",
		DeletingStatus:       "deleting",
		RollingBackStatus:    "rolling back",
		RestoringStatus:      "restoring",
		RunningCustomCommand: "running custom command",
		LightMode:            "Light Mode",
		SystemMode:           "System",
		No:                   "no",
		Yes:                  "yes",
	}
}
