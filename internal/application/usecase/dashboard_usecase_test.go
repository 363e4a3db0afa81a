package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	console  *fakeConsole
	sources  *fakeSources
	config   *fakeConfigRepo
	exporter *fakeExporter
	uc       *DashboardUseCase
}

func newTestDeps(datasets entity.Datasets) *testDeps {
	d := &testDeps{
		console:  &fakeConsole{},
		sources:  &fakeSources{repo: &fakeDatasetRepo{datasets: datasets}},
		config:   &fakeConfigRepo{},
		exporter: &fakeExporter{},
	}
	d.uc = NewDashboardUseCase(d.sources, d.exporter, d.config, d.console)
	return d
}

func TestResolveSettingsPrecedence(t *testing.T) {
	d := newTestDeps(nil)
	d.config.env = &types.Config{Source: "http", DataPath: "https://env/data.json", Dir: "/env", Timeout: "3s", Profile: "env"}
	d.config.file = &types.Config{
		DataPath: "file.json",
		Pages:    []string{"fees"},
		Timeout:  "7s",
		Charts:   []types.ChartSpec{{Kind: "fee-totals", ID: "x", Dataset: "X"}},
		Priority: types.FeePriority{Mandatory: []string{"Green Fee"}},
	}

	settings, err := d.uc.ResolveSettings(&types.CLIArgs{ConfigFile: "cfg.toml", Source: "file", ReportName: "out"})
	require.NoError(t, err)

	args := settings.Args
	assert.Equal(t, "file", args.Source)
	assert.Equal(t, "file.json", args.DataPath)
	assert.Equal(t, []string{"fees"}, args.Pages)
	assert.Equal(t, 7*time.Second, args.Timeout)
	assert.Equal(t, "/env", args.Dir)
	assert.Equal(t, "env", args.Profile)
	assert.Equal(t, "out", args.ReportName)
	assert.Len(t, settings.Charts, 1)
	assert.Equal(t, []string{"Green Fee"}, settings.Priority.Mandatory)
}

func TestResolveSettingsDefaults(t *testing.T) {
	d := newTestDeps(nil)

	settings, err := d.uc.ResolveSettings(&types.CLIArgs{})
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, settings.Args.Timeout)
	assert.Equal(t, DefaultDataPath, settings.Args.DataPath)
	assert.Empty(t, settings.Charts)
}

func TestResolveSettingsConfigFileError(t *testing.T) {
	d := newTestDeps(nil)
	_, err := d.uc.ResolveSettings(&types.CLIArgs{ConfigFile: "missing.yaml"})
	assert.Error(t, err)
}

func TestBuildPageContinuesAfterMissingData(t *testing.T) {
	d := newTestDeps(nil)
	specs := []types.ChartSpec{
		{Kind: "fiscal-year", ID: "missing", Dataset: "FY99_Expense", Fields: "expense"},
		{Kind: "fiscal-year", ID: "chart_Expense26", Dataset: "FY26_Expense", Fields: "expense"},
		{Kind: "comparison", ID: "cmp", PriorDataset: "FY24_Expense", Dataset: "FY26_Expense", Fields: "expense"},
	}

	report := d.uc.BuildPage(PageBudget, specs, budgetFixture(), types.FeePriority{})

	assert.Equal(t, PageBudget, report.Page)
	require.Len(t, report.Charts, 1)
	assert.Equal(t, "chart_Expense26", report.Charts[0].ID)
	assert.Empty(t, report.Comparisons)
	assert.Equal(t, []string{"missing", "cmp"}, report.Failed)
	assert.Equal(t, []string{"Missing data: FY99_Expense", "Missing data: FY24_Expense"}, d.console.errors)
}

func TestBuildPageFeeTableWarnings(t *testing.T) {
	d := newTestDeps(nil)
	ds := entity.Datasets{
		"Totals": {
			{"category": "Net Tuition", "amount": 1.0},
			{"category": "Net Tuition", "amount": 2.0},
		},
	}
	specs := []types.ChartSpec{{Kind: "fee-table", ID: "t", Dataset: "Totals", MandatoryDataset: "Mandatory"}}

	report := d.uc.BuildPage(PageFees, specs, ds, types.FeePriority{})

	require.Len(t, report.FeeTables, 1)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 2.0, report.FeeTables[0].GrandTotal)
	assert.Contains(t, d.console.warnings, "Missing data: Mandatory (treated as empty)")
	assert.Contains(t, d.console.warnings, "Duplicate category 'Net Tuition' in Totals: last value wins")
}

func TestRunDashboard(t *testing.T) {
	d := newTestDeps(budgetFixture())

	err := d.uc.RunDashboard(context.Background(), &types.CLIArgs{
		DataPath:   "data.json",
		ReportName: "budget",
		ReportType: []string{"json", "pdf", "html", "docx"},
		Dir:        "/tmp/out",
	})
	require.NoError(t, err)

	assert.Equal(t, "data.json", d.sources.location)
	assert.True(t, d.sources.repo.deadline)

	// 3 fiscal year + 3 comparisons (two panels each) + fee totals + 3 breakdowns
	assert.Len(t, d.console.charts, 3+6+1+3)
	assert.Len(t, d.console.tables, 1)
	assert.Empty(t, d.console.errors)

	assert.Equal(t, []string{"json", "pdf", "html"}, d.exporter.calls)
	require.Len(t, d.exporter.reports, 3)
	assert.Equal(t, PageFees, d.exporter.reports[2].Page)
	assert.Contains(t, d.console.warnings, "Unsupported report type: docx")
	assert.Contains(t, d.console.success, "Successfully exported to JSON: /tmp/out/budget.json")
}

func TestRunDashboardQuietSkipsDisplay(t *testing.T) {
	d := newTestDeps(budgetFixture())

	err := d.uc.RunDashboard(context.Background(), &types.CLIArgs{Pages: []string{"budget"}, Quiet: true})
	require.NoError(t, err)
	assert.Empty(t, d.console.charts)
	assert.Empty(t, d.exporter.calls)
}

func TestRunDashboardLoadError(t *testing.T) {
	d := newTestDeps(nil)
	d.sources.repo.err = errors.New("boom")

	err := d.uc.RunDashboard(context.Background(), &types.CLIArgs{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestLoadDatasetsSkippedDatasetIsWarning(t *testing.T) {
	d := newTestDeps(entity.Datasets{"AWS_Cost_Current": {}})
	d.sources.repo.err = &types.SkippedDatasetError{Dataset: "AWS_Budgets", Err: errors.New("AccessDenied")}

	ds, err := d.uc.LoadDatasets(context.Background(), &RunSettings{Args: types.CLIArgs{Timeout: time.Second}})
	require.NoError(t, err)
	assert.Contains(t, ds, "AWS_Cost_Current")
	require.Len(t, d.console.warnings, 1)
	assert.Contains(t, d.console.warnings[0], "AWS_Budgets")
	assert.Contains(t, d.console.warnings[0], "AccessDenied")
}

func TestRunDashboardUnknownPage(t *testing.T) {
	d := newTestDeps(budgetFixture())

	err := d.uc.RunDashboard(context.Background(), &types.CLIArgs{Pages: []string{"forecast"}})
	assert.ErrorIs(t, err, types.ErrUnknownPage)
}
