package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonhub-app/carbonhub/internal/api"
	"github.com/carbonhub-app/carbonhub/internal/emissions"
	"github.com/carbonhub-app/carbonhub/internal/prefs"
	"github.com/carbonhub-app/carbonhub/internal/theme"
)

var fixedNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

type fakeSource struct {
	companies []api.Company
	series    map[string]*api.Series
	err       error
}

func (f *fakeSource) Companies(context.Context) ([]api.Company, error) {
	return f.companies, f.err
}

func (f *fakeSource) Dashboard(_ context.Context, id string) (*api.Series, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.series[id], nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		companies: []api.Company{
			{ID: "2", Name: "Blue Energy", Industry: "Energy", Location: "Texas", AnnualEmissions: 300},
			{ID: "1", Name: "Acme Steel", Industry: "Steel", Location: "Ohio", AnnualEmissions: 120},
			{ID: "3", Name: "cedar Foods", Industry: "Food", Location: "Oregon", AnnualEmissions: 40},
		},
		series: map[string]*api.Series{
			"1": {
				CompanyID: "1",
				Annual: []emissions.Record{
					emissions.AnnualRecord(2021, 100),
					emissions.AnnualRecord(2022, 110),
					emissions.AnnualRecord(2023, 120),
				},
				Monthly: []emissions.Record{
					emissions.MonthlyRecord("2024-01", 9),
					emissions.MonthlyRecord("2024-02", 11),
				},
			},
		},
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m DashboardModel, msg tea.Msg) (DashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(DashboardModel)
	require.True(t, ok)
	return dm, cmd
}

func names(companies []api.Company) []string {
	out := make([]string, len(companies))
	for i, c := range companies {
		out[i] = c.Name
	}
	return out
}

func loadedModel(t *testing.T, src *fakeSource) DashboardModel {
	t.Helper()
	m := NewDashboardModel(context.Background(), Options{Source: src, Now: func() time.Time { return fixedNow }, ExportDir: t.TempDir()})
	require.Equal(t, ViewStateLoading, m.State())
	assert.Contains(t, m.View(), "Loading companies")

	m, _ = update(t, m, m.loadCompanies()())
	require.Equal(t, ViewStateList, m.State())
	return m
}

func openAcme(t *testing.T, m DashboardModel, src *fakeSource) DashboardModel {
	t.Helper()
	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	require.Equal(t, ViewStateLoading, m.State())

	m, _ = update(t, m, m.loadSeries("1")())
	require.Equal(t, ViewStateDetail, m.State())
	return m
}

func TestDashboardSortAndFilter(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	assert.Equal(t, []string{"Acme Steel", "Blue Energy", "cedar Foods"}, names(m.Visible()))

	m, _ = update(t, m, keyPress("s"))
	assert.Equal(t, []string{"Blue Energy", "Acme Steel", "cedar Foods"}, names(m.Visible()))
	assert.Contains(t, m.View(), "Sort: Emissions")

	m, _ = update(t, m, keyPress("s"))
	assert.Equal(t, "Acme Steel", m.Visible()[0].Name)

	m, _ = update(t, m, keyPress("/"))
	m, _ = update(t, m, keyPress("TEX"))
	assert.Equal(t, []string{"Blue Energy"}, names(m.Visible()))
	assert.Contains(t, m.View(), "Filtered: 1/3")

	m, _ = update(t, m, keyPress("enter"))
	assert.Equal(t, []string{"Blue Energy"}, names(m.Visible()), "enter keeps the filter")

	m, _ = update(t, m, keyPress("esc"))
	assert.Len(t, m.Visible(), 3)
}

func TestDashboardFilterNoMatch(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	m, _ = update(t, m, keyPress("/"))
	m, _ = update(t, m, keyPress("zzz"))
	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), "No companies match")

	m, _ = update(t, m, keyPress("esc"))
	assert.Len(t, m.Visible(), 3)
}

func TestDashboardDetailTabs(t *testing.T) {
	src := newFakeSource()
	m := openAcme(t, loadedModel(t, src), src)

	view := m.View()
	assert.Contains(t, view, "Acme Steel")
	assert.Contains(t, view, "Annual emissions")
	assert.Contains(t, view, "Increasing")
	assert.Equal(t, emissions.PeriodAnnual, m.Tab())

	m, _ = update(t, m, keyPress("tab"))
	assert.Equal(t, emissions.PeriodMonthly, m.Tab())
	assert.Contains(t, m.View(), "Monthly emissions")

	m, _ = update(t, m, keyPress("3"))
	assert.Equal(t, emissions.PeriodDaily, m.Tab())
	assert.Contains(t, m.View(), "No daily emissions data available")

	m, _ = update(t, m, keyPress("tab"))
	assert.Equal(t, emissions.PeriodAnnual, m.Tab(), "tab wraps around")

	m, _ = update(t, m, keyPress("shift+tab"))
	assert.Equal(t, emissions.PeriodDaily, m.Tab())

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, ViewStateList, m.State())
}

func TestDashboardIgnoresStaleSeries(t *testing.T) {
	src := newFakeSource()
	m := openAcme(t, loadedModel(t, src), src)

	m, _ = update(t, m, SeriesLoadedMsg{CompanyID: "2", Err: errors.New("late failure")})
	assert.Equal(t, ViewStateDetail, m.State())
}

func TestDashboardExport(t *testing.T) {
	src := newFakeSource()
	m := openAcme(t, loadedModel(t, src), src)
	m, _ = update(t, m, keyPress("2"))

	_, cmd := update(t, m, keyPress("e"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(ExportedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, "acme-steel_monthly_20240601-080000.csv", filepath.Base(msg.Path))

	data, err := os.ReadFile(msg.Path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "Company: Acme Steel\nData Type: monthly\n"))
	assert.Contains(t, content, "2024-02,11")

	m, _ = update(t, m, msg)
	assert.Contains(t, m.View(), "Exported to")
}

func TestDashboardExportEmptyTab(t *testing.T) {
	src := newFakeSource()
	m := openAcme(t, loadedModel(t, src), src)
	m, _ = update(t, m, keyPress("3"))

	_, cmd := update(t, m, keyPress("e"))
	msg, ok := cmd().(ExportedMsg)
	require.True(t, ok)
	require.Error(t, msg.Err)

	m, _ = update(t, m, msg)
	assert.Contains(t, m.View(), "Export failed")
}

func TestDashboardErrors(t *testing.T) {
	src := &fakeSource{err: errors.New("HTTP error! status: 500")}
	m := NewDashboardModel(context.Background(), Options{Source: src})

	m, _ = update(t, m, m.loadCompanies()())
	assert.Equal(t, ViewStateError, m.State())
	require.Error(t, m.Err())
	assert.Contains(t, m.View(), "HTTP error! status: 500")

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, ViewStateError, m.State(), "nothing to go back to")

	m, cmd := update(t, m, keyPress("r"))
	assert.Equal(t, ViewStateLoading, m.State())
	assert.NotNil(t, cmd)

	src.err = nil
	src.companies = newFakeSource().companies
	m, _ = update(t, m, m.loadCompanies()())
	assert.Equal(t, ViewStateList, m.State())
	assert.NoError(t, m.Err())
}

func TestDashboardSeriesError(t *testing.T) {
	src := newFakeSource()
	m := loadedModel(t, src)
	m, _ = update(t, m, keyPress("enter"))

	m, _ = update(t, m, SeriesLoadedMsg{CompanyID: "1", Err: api.ErrCompanyNotFound})
	assert.Equal(t, ViewStateError, m.State())
	assert.Contains(t, m.View(), "esc back")

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, ViewStateList, m.State())
}

func TestDashboardThemeToggle(t *testing.T) {
	store := prefs.NewMemoryStore()
	src := newFakeSource()
	m := NewDashboardModel(context.Background(), Options{
		Source: src,
		Themes: theme.NewManager(store, theme.Dark),
		Theme:  theme.Dark,
	})
	m, _ = update(t, m, m.loadCompanies()())

	_, cmd := update(t, m, keyPress("t"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, theme.Light, m.Theme())

	saved, ok, err := store.Get(context.Background(), theme.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", saved)
}

func TestDashboardThemeToggleWithoutManager(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	_, cmd := update(t, m, keyPress("t"))
	m, _ = update(t, m, cmd())
	assert.Equal(t, theme.Light, m.Theme())
}

func TestDashboardQuit(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	m, cmd := update(t, m, keyPress("q"))
	assert.Equal(t, ViewStateQuitting, m.State())
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())

	m = NewDashboardModel(context.Background(), Options{Source: newFakeSource()})
	m, _ = update(t, m, keyPress("ctrl+c"))
	assert.Equal(t, ViewStateQuitting, m.State())
}

func TestDashboardWindowResize(t *testing.T) {
	m := loadedModel(t, newFakeSource())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 8})
	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))

	view := m.View()
	assert.Contains(t, view, "> cedar Foods")
}
