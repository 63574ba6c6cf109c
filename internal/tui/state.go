package tui

// ViewState is the screen the dashboard is showing.
type ViewState int

// Dashboard screens.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateDetail
	ViewStateError
	ViewStateQuitting
)

func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// SortField orders the company list.
type SortField int

// Sort fields, cycled with 's'.
const (
	SortByName SortField = iota
	SortByEmissions
	numSortFields
)

func (f SortField) String() string {
	if f == SortByEmissions {
		return "Emissions"
	}
	return "Name"
}

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keySort     = "s"
	keyTheme    = "t"
	keyExport   = "e"
	keyRetry    = "r"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
)

// Layout defaults used before the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 30
	minListHeight = 5
	listChrome    = 6
	minChartWidth = 40
	maxChartWidth = 120
)
