package tui

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbonhub-app/carbonhub/internal/api"
	"github.com/carbonhub-app/carbonhub/internal/emissions"
	"github.com/carbonhub-app/carbonhub/internal/logging"
	"github.com/carbonhub-app/carbonhub/internal/report"
	"github.com/carbonhub-app/carbonhub/internal/theme"
	listview "github.com/carbonhub-app/carbonhub/internal/tui/list"
)

// DataSource is the read side of the emissions API used by the dashboard.
type DataSource interface {
	Companies(ctx context.Context) ([]api.Company, error)
	Dashboard(ctx context.Context, companyID string) (*api.Series, error)
}

// CompaniesLoadedMsg carries the result of the company list request.
type CompaniesLoadedMsg struct {
	Companies []api.Company
	Err       error
}

// SeriesLoadedMsg carries the result of a company's series request.
type SeriesLoadedMsg struct {
	CompanyID string
	Series    *api.Series
	Err       error
}

// ExportedMsg reports the outcome of a CSV export.
type ExportedMsg struct {
	Path string
	Err  error
}

// ThemeChangedMsg reports a theme toggle.
type ThemeChangedMsg struct {
	Theme theme.Theme
	Err   error
}

// Options configure a DashboardModel.
type Options struct {
	Source    DataSource
	Themes    *theme.Manager
	Theme     theme.Theme
	ExportDir string
	Now       func() time.Time
}

// DashboardModel is the Bubble Tea model of the interactive dashboard.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	ctx       context.Context
	source    DataSource
	themes    *theme.Manager
	theme     theme.Theme
	styles    Styles
	exportDir string
	now       func() time.Time

	state ViewState
	err   error

	all        []api.Company
	list       *listview.Model[api.Company]
	filter     textinput.Model
	showFilter bool
	sortBy     SortField

	selected *api.Company
	series   *api.Series
	tab      emissions.PeriodKind

	loading LoadingState
	status  string

	width  int
	height int
}

// NewDashboardModel returns a model that starts by loading the company list.
func NewDashboardModel(ctx context.Context, opts Options) DashboardModel {
	t := opts.Theme
	if t == "" {
		t = theme.Default
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := DashboardModel{
		ctx:       ctx,
		source:    opts.Source,
		themes:    opts.Themes,
		theme:     t,
		styles:    NewStyles(t),
		exportDir: opts.ExportDir,
		now:       now,
		state:     ViewStateLoading,
		filter:    newTextInput(),
		sortBy:    SortByName,
		tab:       emissions.PeriodAnnual,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.loading = NewLoadingState("Loading companies...", m.styles.Palette.Primary)
	m.list = listview.New(nil, m.listHeight(), m.width, m.renderCompanyRow)
	return m
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "name, industry or location"
	ti.CharLimit = 64
	ti.Prompt = ""
	return ti
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Tick(), m.loadCompanies())
}

// Update implements tea.Model.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetHeight(m.listHeight())
		m.list.SetRender(m.renderCompanyRow)
		return m, nil
	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd
	case CompaniesLoadedMsg:
		return m.handleCompaniesLoaded(msg)
	case SeriesLoadedMsg:
		return m.handleSeriesLoaded(msg)
	case ExportedMsg:
		return m.handleExported(msg)
	case ThemeChangedMsg:
		return m.handleThemeChanged(msg)
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			return m.quit()
		}
		if m.showFilter {
			return m.handleFilterInput(msg)
		}
		switch m.state {
		case ViewStateList:
			return m.handleListKeypress(msg)
		case ViewStateDetail:
			return m.handleDetailKeypress(msg)
		case ViewStateError:
			return m.handleErrorKeypress(msg)
		case ViewStateLoading:
			if msg.String() == keyQuit {
				return m.quit()
			}
		case ViewStateQuitting:
		}
	}
	return m, nil
}

func (m DashboardModel) quit() (tea.Model, tea.Cmd) {
	m.state = ViewStateQuitting
	return m, tea.Quit
}

func (m DashboardModel) handleCompaniesLoaded(msg CompaniesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logging.FromContext(m.ctx).Error().Err(msg.Err).Msg("company list request failed")
		m.state = ViewStateError
		m.err = msg.Err
		return m, nil
	}
	m.all = msg.Companies
	m.refreshList()
	m.state = ViewStateList
	m.err = nil
	return m, nil
}

func (m DashboardModel) handleSeriesLoaded(msg SeriesLoadedMsg) (tea.Model, tea.Cmd) {
	if m.selected == nil || msg.CompanyID != m.selected.ID {
		return m, nil
	}
	if msg.Err != nil {
		logging.FromContext(m.ctx).Error().Err(msg.Err).Str("company_id", msg.CompanyID).Msg("emissions request failed")
		m.state = ViewStateError
		m.err = msg.Err
		return m, nil
	}
	m.series = msg.Series
	m.state = ViewStateDetail
	m.err = nil
	return m, nil
}

func (m DashboardModel) handleExported(msg ExportedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.status = "Export failed: " + msg.Err.Error()
		return m, nil
	}
	m.status = "Exported to " + msg.Path
	return m, nil
}

func (m DashboardModel) handleThemeChanged(msg ThemeChangedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.status = "Theme not saved: " + msg.Err.Error()
	}
	m.theme = msg.Theme
	m.styles = NewStyles(msg.Theme)
	m.list.SetRender(m.renderCompanyRow)
	return m, nil
}

func (m DashboardModel) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter:
		m.showFilter = false
		m.filter.Blur()
		return m, nil
	case keyEsc:
		m.showFilter = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.refreshList()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refreshList()
	return m, cmd
}

func (m DashboardModel) handleListKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit:
		return m.quit()
	case keyEnter:
		company, ok := m.list.SelectedItem()
		if !ok {
			return m, nil
		}
		return m.openCompany(company)
	case keySlash:
		m.showFilter = true
		m.filter.Focus()
		return m, textinput.Blink
	case keySort:
		m.sortBy = (m.sortBy + 1) % numSortFields
		m.refreshList()
		return m, nil
	case keyTheme:
		return m, m.toggleTheme()
	case keyEsc:
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.refreshList()
		}
		return m, nil
	default:
		m.list.Update(msg)
		return m, nil
	}
}

func (m DashboardModel) handleDetailKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kinds := emissions.PeriodKinds()
	switch msg.String() {
	case keyQuit:
		return m.quit()
	case keyEsc:
		m.state = ViewStateList
		m.status = ""
		return m, nil
	case keyTab:
		m.tab = kinds[(slices.Index(kinds, m.tab)+1)%len(kinds)]
	case keyShiftTab:
		m.tab = kinds[(slices.Index(kinds, m.tab)+len(kinds)-1)%len(kinds)]
	case "1", "2", "3":
		m.tab = kinds[int(msg.String()[0]-'1')]
	case keyExport:
		return m, m.exportCSV()
	case keyTheme:
		return m, m.toggleTheme()
	case keyRetry:
		return m.openCompany(*m.selected)
	}
	return m, nil
}

func (m DashboardModel) handleErrorKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit:
		return m.quit()
	case keyRetry:
		if m.selected != nil {
			return m.openCompany(*m.selected)
		}
		m.state = ViewStateLoading
		m.loading = m.loading.WithMessage("Loading companies...")
		return m, tea.Batch(m.loading.Tick(), m.loadCompanies())
	case keyEsc:
		if len(m.all) > 0 {
			m.state = ViewStateList
			m.selected = nil
			m.err = nil
		}
	}
	return m, nil
}

func (m DashboardModel) openCompany(c api.Company) (tea.Model, tea.Cmd) {
	m.selected = &c
	m.series = nil
	m.status = ""
	m.tab = emissions.PeriodAnnual
	m.state = ViewStateLoading
	m.loading = m.loading.WithMessage("Loading emissions for " + c.Name + "...")
	return m, tea.Batch(m.loading.Tick(), m.loadSeries(c.ID))
}

func (m DashboardModel) loadCompanies() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		companies, err := source.Companies(ctx)
		return CompaniesLoadedMsg{Companies: companies, Err: err}
	}
}

func (m DashboardModel) loadSeries(companyID string) tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		series, err := source.Dashboard(ctx, companyID)
		return SeriesLoadedMsg{CompanyID: companyID, Series: series, Err: err}
	}
}

func (m DashboardModel) toggleTheme() tea.Cmd {
	ctx, themes, current := m.ctx, m.themes, m.theme
	return func() tea.Msg {
		if themes == nil {
			return ThemeChangedMsg{Theme: current.Toggled()}
		}
		next, err := themes.Toggle(ctx)
		return ThemeChangedMsg{Theme: next, Err: err}
	}
}

func (m DashboardModel) exportCSV() tea.Cmd {
	if m.selected == nil {
		return nil
	}
	name, kind, dir := m.selected.Name, m.tab, m.exportDir
	points := m.points()
	now := m.now()
	return func() tea.Msg {
		if len(points) == 0 {
			return ExportedMsg{Err: report.ErrNoData}
		}
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ExportedMsg{Err: err}
		}
		path := filepath.Join(dir, report.FileName(name, kind, report.FormatCSV, now))
		content := emissions.ExportCSV(points, name, kind.String(), now)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return ExportedMsg{Err: err}
		}
		return ExportedMsg{Path: path}
	}
}

// points returns the normalized series of the active tab.
func (m DashboardModel) points() []emissions.ChartPoint {
	if m.series == nil {
		return nil
	}
	return emissions.Normalize(m.tab, m.series.Records(m.tab))
}

// refreshList applies the filter and sort to the full company list.
func (m *DashboardModel) refreshList() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	visible := make([]api.Company, 0, len(m.all))
	for _, c := range m.all {
		if query == "" || matchesCompany(c, query) {
			visible = append(visible, c)
		}
	}

	switch m.sortBy {
	case SortByEmissions:
		slices.SortStableFunc(visible, func(a, b api.Company) int {
			switch {
			case a.AnnualEmissions > b.AnnualEmissions:
				return -1
			case a.AnnualEmissions < b.AnnualEmissions:
				return 1
			default:
				return 0
			}
		})
	default:
		slices.SortStableFunc(visible, func(a, b api.Company) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}
	m.list.SetItems(visible)
}

func matchesCompany(c api.Company, query string) bool {
	for _, field := range []string{c.Name, c.Industry, c.Location} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (m DashboardModel) listHeight() int {
	return max(m.height-listChrome, minListHeight)
}

// State returns the current screen.
func (m DashboardModel) State() ViewState {
	return m.state
}

// Tab returns the active period tab of the detail view.
func (m DashboardModel) Tab() emissions.PeriodKind {
	return m.tab
}

// Theme returns the active theme.
func (m DashboardModel) Theme() theme.Theme {
	return m.theme
}

// Visible returns the filtered and sorted company list.
func (m DashboardModel) Visible() []api.Company {
	return m.list.Items()
}

// Err returns the error shown on the error screen.
func (m DashboardModel) Err() error {
	return m.err
}

// Run starts the dashboard on the terminal and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewDashboardModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
