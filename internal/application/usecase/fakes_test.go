package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/domain/repository"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
)

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeTable struct{}

func (fakeTable) AddColumn(string, ...interface{}) {}
func (fakeTable) AddRow(...interface{})            {}
func (fakeTable) Render() string                   { return "" }

type fakeConsole struct {
	infos    []string
	warnings []string
	errors   []string
	success  []string
	charts   []entity.Chart
	tables   []entity.FeeTable
}

func (c *fakeConsole) Print(...interface{})          {}
func (c *fakeConsole) Printf(string, ...interface{}) {}
func (c *fakeConsole) Println(...interface{})        {}

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle     { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface    { return fakeTable{} }
func (c *fakeConsole) DisplayChart(chart entity.Chart)      { c.charts = append(c.charts, chart) }
func (c *fakeConsole) DisplayFeeTable(table entity.FeeTable) { c.tables = append(c.tables, table) }

type fakeDatasetRepo struct {
	datasets entity.Datasets
	err      error
	deadline bool
}

func (r *fakeDatasetRepo) LoadDatasets(ctx context.Context) (entity.Datasets, error) {
	_, r.deadline = ctx.Deadline()
	return r.datasets, r.err
}

func (r *fakeDatasetRepo) Describe() string { return "fake" }

type fakeSources struct {
	repo     *fakeDatasetRepo
	source   string
	location string
	profile  string
}

func (f *fakeSources) NewDatasetRepository(source, location, profile string) (repository.DatasetRepository, error) {
	f.source, f.location, f.profile = source, location, profile
	return f.repo, nil
}

type fakeConfigRepo struct {
	file *types.Config
	env  *types.Config
}

func (f *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	if f.file == nil {
		return nil, fmt.Errorf("no config file")
	}
	return f.file, nil
}

func (f *fakeConfigRepo) LoadEnvDefaults(string) (*types.Config, error) {
	if f.env == nil {
		return &types.Config{}, nil
	}
	return f.env, nil
}

type fakeExporter struct {
	calls   []string
	reports []entity.PageReport
}

func (e *fakeExporter) record(kind string, reports []entity.PageReport, filename, dir string) (string, error) {
	e.calls = append(e.calls, kind)
	e.reports = reports
	return dir + "/" + filename + "." + kind, nil
}

func (e *fakeExporter) ExportToJSON(r []entity.PageReport, f, d string) (string, error) {
	return e.record("json", r, f, d)
}

func (e *fakeExporter) ExportToYAML(r []entity.PageReport, f, d string) (string, error) {
	return e.record("yaml", r, f, d)
}

func (e *fakeExporter) ExportToCSV(r []entity.PageReport, f, d string) (string, error) {
	return e.record("csv", r, f, d)
}

func (e *fakeExporter) ExportToPDF(r []entity.PageReport, f, d string) (string, error) {
	return e.record("pdf", r, f, d)
}

func (e *fakeExporter) ExportToXLSX(r []entity.PageReport, f, d string) (string, error) {
	return e.record("xlsx", r, f, d)
}

func (e *fakeExporter) ExportToHTML(r []entity.PageReport, f, d string) (string, error) {
	return e.record("html", r, f, d)
}

// budgetFixture covers every dataset the default pages read.
func budgetFixture() entity.Datasets {
	return entity.Datasets{
		"FY26_Operating_Revenue": {
			{"revenueType": "Tuition", "revenueAmount": 300.0, "color": "#111"},
			{"revenueType": "Grants", "revenueAmount": 100.0},
			{"revenueType": "Sales", "revenueAmount": 600.0},
		},
		"FY25_Operating_Revenue": {
			{"revenueType": "Tuition", "revenueAmount": 250.0},
			{"revenueType": "Grants", "revenueAmount": 250.0},
		},
		"FY26_Non-operating_Revenue": {
			{"revenueType": "Gifts", "revenueAmount": 1500000.0},
		},
		"FY25_Non-operating_Revenue": {
			{"revenueType": "Gifts", "revenueAmount": 0.0},
		},
		"FY26_Expense": {
			{"expenseType": "Salaries", "expenseAmount": 12500000.0, "percentChange": -4.2},
			{"expenseType": "Utilities", "expenseAmount": 100000.0, "percentChange": 3.0},
		},
		"FY25_Expense": {
			{"expenseType": "Salaries", "expenseAmount": 13000000.0},
			{"expenseType": "Utilities", "expenseAmount": 97000.0},
		},
		"FY26_TuitionAndStudentFees_Totals": {
			{"category": "Net Tuition", "amount": 1000.0},
			{"category": "Laboratory & Supplemental Fees", "amount": 50.0},
			{"category": "Mandatory Fee", "amount": 30.0},
			{"category": "Program, Course Related & Other Fees", "amount": 20.0},
		},
		"FY26_MandatoryFees": {
			{"category": "Green Fee", "amount": 10.0},
			{"category": "Advising Fee", "amount": 20.0},
		},
		"FY26_ProgramCourseOtherFees": {
			{"category": "Student Teaching Fee", "amount": 5.0},
			{"category": "Application Fee", "amount": 15.0},
		},
	}
}
