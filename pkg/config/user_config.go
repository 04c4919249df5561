package config

// KeybindingConfig contains all keybinding configurations for lazysnapper
type KeybindingConfig struct {
	Universal KeybindingUniversalConfig `yaml:"universal"`
	Status    KeybindingStatusConfig    `yaml:"status"`
	Configs   KeybindingConfigsConfig   `yaml:"configs"`
	Snapshots KeybindingSnapshotsConfig `yaml:"snapshots"`
	Files     KeybindingFilesConfig     `yaml:"files"`
	Main      KeybindingMainConfig      `yaml:"main"`
	Menu      KeybindingMenuConfig      `yaml:"menu"`
	Filter    KeybindingFilterConfig    `yaml:"filter"`
}

// KeybindingUniversalConfig contains keybindings that are available globally
type KeybindingUniversalConfig struct {
	Quit               string `yaml:"quit,omitempty"`
	QuitAlt            string `yaml:"quitAlt,omitempty"`
	Return             string `yaml:"return,omitempty"`
	ScrollUpMain       string `yaml:"scrollUpMain,omitempty"`
	ScrollDownMain     string `yaml:"scrollDownMain,omitempty"`
	ScrollUpMainAlt1   string `yaml:"scrollUpMainAlt1,omitempty"`
	ScrollDownMainAlt1 string `yaml:"scrollDownMainAlt1,omitempty"`
	ScrollUpMainAlt2   string `yaml:"scrollUpMainAlt2,omitempty"`
	ScrollDownMainAlt2 string `yaml:"scrollDownMainAlt2,omitempty"`
	ScrollLeftMain     string `yaml:"scrollLeftMain,omitempty"`
	ScrollRightMain    string `yaml:"scrollRightMain,omitempty"`
	JumpToTopMain      string `yaml:"jumpToTopMain,omitempty"`
	JumpToBottomMain   string `yaml:"jumpToBottomMain,omitempty"`
	OpenMenu           string `yaml:"openMenu,omitempty"`
	OpenMenuAlt        string `yaml:"openMenuAlt,omitempty"`
	Refresh            string `yaml:"refresh,omitempty"`
	NextScreenMode     string `yaml:"nextScreenMode,omitempty"`
	PrevScreenMode     string `yaml:"prevScreenMode,omitempty"`
	PrevItem           string `yaml:"prevItem,omitempty"`
	NextItem           string `yaml:"nextItem,omitempty"`
	PrevItemAlt        string `yaml:"prevItemAlt,omitempty"`
	NextItemAlt        string `yaml:"nextItemAlt,omitempty"`
	GotoTop            string `yaml:"gotoTop,omitempty"`
	GotoBottom         string `yaml:"gotoBottom,omitempty"`
	PrevPanel          string `yaml:"prevPanel,omitempty"`
	NextPanel          string `yaml:"nextPanel,omitempty"`
	PrevPanelAlt       string `yaml:"prevPanelAlt,omitempty"`
	NextPanelAlt       string `yaml:"nextPanelAlt,omitempty"`
	TogglePanel        string `yaml:"togglePanel,omitempty"`
	TogglePanelAlt     string `yaml:"togglePanelAlt,omitempty"`
	EnterMain          string `yaml:"enterMain,omitempty"`
	PrevMainTab        string `yaml:"prevMainTab,omitempty"`
	NextMainTab        string `yaml:"nextMainTab,omitempty"`
	Filter             string `yaml:"filter,omitempty"`
	ToggleTheme        string `yaml:"toggleTheme,omitempty"`
	GoToStatus         string `yaml:"goToStatus,omitempty"`
	GoToConfigs        string `yaml:"goToConfigs,omitempty"`
	GoToSnapshots      string `yaml:"goToSnapshots,omitempty"`
	GoToFiles          string `yaml:"goToFiles,omitempty"`
}

// KeybindingStatusConfig contains keybindings for the status panel
type KeybindingStatusConfig struct {
	About      string `yaml:"about,omitempty"`
	EditConfig string `yaml:"editConfig,omitempty"`
	OpenConfig string `yaml:"openConfig,omitempty"`
}

// KeybindingConfigsConfig contains keybindings for the snapper configs panel
type KeybindingConfigsConfig struct {
	Select string `yaml:"select,omitempty"`
}

// KeybindingSnapshotsConfig contains keybindings for the snapshots panel
type KeybindingSnapshotsConfig struct {
	Create          string `yaml:"create,omitempty"`
	CreateImportant string `yaml:"createImportant,omitempty"`
	CreatePre       string `yaml:"createPre,omitempty"`
	CreatePost      string `yaml:"createPost,omitempty"`
	Remove          string `yaml:"remove,omitempty"`
	RemoveSelected  string `yaml:"removeSelected,omitempty"`
	ToggleSelect    string `yaml:"toggleSelect,omitempty"`
	Rollback        string `yaml:"rollback,omitempty"`
	ViewFiles       string `yaml:"viewFiles,omitempty"`
	OpenShell       string `yaml:"openShell,omitempty"`
	CustomCommand   string `yaml:"customCommand,omitempty"`
}

// KeybindingFilesConfig contains keybindings for the restore preview panel
type KeybindingFilesConfig struct {
	ToggleCheck    string `yaml:"toggleCheck,omitempty"`
	CheckAll       string `yaml:"checkAll,omitempty"`
	UncheckAll     string `yaml:"uncheckAll,omitempty"`
	ToggleCollapse string `yaml:"toggleCollapse,omitempty"`
	Restore        string `yaml:"restore,omitempty"`
}

// KeybindingMainConfig contains keybindings for the main panel
type KeybindingMainConfig struct {
	Return         string `yaml:"return,omitempty"`
	ScrollLeft     string `yaml:"scrollLeft,omitempty"`
	ScrollRight    string `yaml:"scrollRight,omitempty"`
	ScrollLeftAlt  string `yaml:"scrollLeftAlt,omitempty"`
	ScrollRightAlt string `yaml:"scrollRightAlt,omitempty"`
}

// KeybindingMenuConfig contains keybindings for menus
type KeybindingMenuConfig struct {
	Close     string `yaml:"close,omitempty"`
	CloseAlt  string `yaml:"closeAlt,omitempty"`
	Select    string `yaml:"select,omitempty"`
	SelectAlt string `yaml:"selectAlt,omitempty"`
	Confirm   string `yaml:"confirm,omitempty"`
}

// KeybindingFilterConfig contains keybindings for the filter prompt
type KeybindingFilterConfig struct {
	Confirm string `yaml:"confirm,omitempty"`
	Escape  string `yaml:"escape,omitempty"`
}

// GetDefaultKeybindings returns the default keybinding configuration
func GetDefaultKeybindings() KeybindingConfig {
	return KeybindingConfig{
		Universal: KeybindingUniversalConfig{
			Quit:               "q",
			QuitAlt:            "<c-c>",
			Return:             "<esc>",
			ScrollUpMain:       "<pgup>",
			ScrollDownMain:     "<pgdown>",
			ScrollUpMainAlt1:   "<c-u>",
			ScrollDownMainAlt1: "<c-d>",
			ScrollUpMainAlt2:   "K",
			ScrollDownMainAlt2: "J",
			ScrollLeftMain:     "H",
			ScrollRightMain:    "L",
			JumpToTopMain:      "<home>",
			JumpToBottomMain:   "<end>",
			OpenMenu:           "x",
			OpenMenuAlt:        "?",
			Refresh:            "<c-r>",
			NextScreenMode:     "+",
			PrevScreenMode:     "_",
			PrevItem:           "<up>",
			NextItem:           "<down>",
			PrevItemAlt:        "k",
			NextItemAlt:        "j",
			GotoTop:            "<",
			GotoBottom:         ">",
			PrevPanel:          "<left>",
			NextPanel:          "<right>",
			PrevPanelAlt:       "h",
			NextPanelAlt:       "l",
			TogglePanel:        "<tab>",
			TogglePanelAlt:     "<backtab>",
			EnterMain:          "<c-e>",
			PrevMainTab:        "[",
			NextMainTab:        "]",
			Filter:             "/",
			ToggleTheme:        "T",
			GoToStatus:         "1",
			GoToConfigs:        "2",
			GoToSnapshots:      "3",
			GoToFiles:          "4",
		},
		Status: KeybindingStatusConfig{
			About:      "a",
			EditConfig: "e",
			OpenConfig: "o",
		},
		Configs: KeybindingConfigsConfig{
			Select: "<enter>",
		},
		Snapshots: KeybindingSnapshotsConfig{
			Create:          "n",
			CreateImportant: "i",
			CreatePre:       "p",
			CreatePost:      "P",
			Remove:          "d",
			RemoveSelected:  "D",
			ToggleSelect:    " ",
			Rollback:        "R",
			ViewFiles:       "<enter>",
			OpenShell:       "o",
			CustomCommand:   "c",
		},
		Files: KeybindingFilesConfig{
			ToggleCheck:    " ",
			CheckAll:       "a",
			UncheckAll:     "A",
			ToggleCollapse: "<enter>",
			Restore:        "r",
		},
		Main: KeybindingMainConfig{
			Return:         "<esc>",
			ScrollLeft:     "<left>",
			ScrollRight:    "<right>",
			ScrollLeftAlt:  "h",
			ScrollRightAlt: "l",
		},
		Menu: KeybindingMenuConfig{
			Close:     "<esc>",
			CloseAlt:  "q",
			Select:    " ",
			SelectAlt: "y",
			Confirm:   "<enter>",
		},
		Filter: KeybindingFilterConfig{
			Confirm: "<enter>",
			Escape:  "<esc>",
		},
	}
}
