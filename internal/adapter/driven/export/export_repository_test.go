package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
)

func sampleReports() []entity.PageReport {
	expense := entity.Chart{
		ID: "chart_Expense26", Kind: entity.ChartFiscalYear, Title: "FY26 Expense", Dataset: "FY26_Expense",
		Total:  1000,
		Center: entity.CenterLabel{Caption: "TOTAL EXPENSE", Value: "$1.0k"},
		Bars: []entity.Bar{
			{Category: "Utilities", Amount: 250, Label: "$250", Color: "#ff0000"},
			{Category: "Salaries <core>", Amount: 750, Label: "$750"},
		},
		Slices: []entity.Slice{
			{Category: "Utilities", Percent: 25, Label: "25.0%"},
			{Category: "Salaries <core>", Percent: 75, Label: "75.0%"},
		},
	}
	current := expense
	current.ID = "chart_ExpenseChange26"
	current.Center.Change = "+10.0% vs 2025"
	current.Center.Increase = true

	return []entity.PageReport{
		{Page: "budget", Charts: []entity.Chart{expense}, Failed: []string{"chart_Missing"}},
		{Page: "cuts", Comparisons: []entity.ComparisonChart{{Title: "Expense", Prior: expense, Current: current}}},
		{Page: "fees", FeeTables: []entity.FeeTable{{
			ID: "studentFeesTable",
			Rows: []entity.FeeRow{
				{Kind: entity.FeeRowHead, Label: "Division", Formatted: "Total"},
				{Kind: entity.FeeRowSection, Label: "Net Tuition", Amount: 100, Formatted: "$ 100.00"},
				{Kind: entity.FeeRowTotal, Label: "Total Tuition and Student Fees", Amount: 100, Formatted: "$ 100.00"},
			},
			GrandTotal: 100,
			HTML:       `<div class="fees-row fees-head"><div>Division</div><div class="fees-num">Total</div></div>`,
		}}},
	}
}

func newTestRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{now: func() time.Time {
		return time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	}}
}

func TestGenerateFilename(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	name, err := newTestRepo().generateFilename("budget", dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "budget_20260301_103000.csv"), name)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExportToJSON(t *testing.T) {
	path, err := newTestRepo().ExportToJSON(sampleReports(), "budget", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []entity.PageReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "chart_Expense26", decoded[0].Charts[0].ID)
	assert.Equal(t, []string{"chart_Missing"}, decoded[0].Failed)
	assert.Equal(t, 100.0, decoded[2].FeeTables[0].GrandTotal)
}

func TestExportToYAML(t *testing.T) {
	path, err := newTestRepo().ExportToYAML(sampleReports(), "budget", t.TempDir())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".yaml"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []entity.PageReport
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "+10.0% vs 2025", decoded[1].Comparisons[0].Current.Center.Change)
}

func TestExportToCSV(t *testing.T) {
	path, err := newTestRepo().ExportToCSV(sampleReports(), "budget", t.TempDir())
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, csvHeaders, records[0])
	// 3 linhas por gráfico (2 barras + total), 3 gráficos, 2 linhas da tabela
	assert.Len(t, records, 1+9+2)
	assert.Equal(t, []string{"budget", "chart_Expense26", "fiscal-year", "FY26 Expense", "Utilities", "250.00", "$250", "25.0%", ""}, records[1])
	assert.Equal(t, "TOTAL", records[3][4])
	assert.Equal(t, "Total Tuition and Student Fees", records[len(records)-1][4])
}

func TestExportToXLSX(t *testing.T) {
	path, err := newTestRepo().ExportToXLSX(sampleReports(), "budget", t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(xlsxSheet, "E1")
	require.NoError(t, err)
	assert.Equal(t, "Category", header)

	category, err := f.GetCellValue(xlsxSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "Utilities", category)

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1+9+2)
}

func TestExportToHTML(t *testing.T) {
	path, err := newTestRepo().ExportToHTML(sampleReports(), "budget", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, `id="chart_Expense26"`)
	assert.Contains(t, html, "Salaries &lt;core&gt;")
	assert.Contains(t, html, "rgb(255,0,0)")
	assert.Contains(t, html, `<div class="fees-row fees-head">`)
	assert.Contains(t, html, "10.0% vs 2025")
	assert.Contains(t, html, "chart_Missing")
}

func TestExportToPDF(t *testing.T) {
	path, err := newTestRepo().ExportToPDF(sampleReports(), "budget", t.TempDir())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "Total", cleanRichTags("[bold]Total[/bold]"))
	assert.Equal(t, "red", cleanRichTags("\x1b[31mred\x1b[0m"))
}

func TestParseHexColor(t *testing.T) {
	r, g, b, ok := parseHexColor("#1f77b4")
	require.True(t, ok)
	assert.Equal(t, []int{31, 119, 180}, []int{r, g, b})

	_, _, _, ok = parseHexColor("nope")
	assert.False(t, ok)
}
