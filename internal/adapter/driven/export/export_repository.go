package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/domain/repository"
	"gopkg.in/yaml.v3"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// exportRow é uma linha achatada de um gráfico ou tabela, usada por CSV e XLSX.
type exportRow struct {
	Page     string
	ChartID  string
	Kind     string
	Title    string
	Category string
	Amount   float64
	Label    string
	Share    string
	Change   string
}

var csvHeaders = []string{"Page", "Chart", "Kind", "Title", "Category", "Amount", "Label", "Share", "Change"}

func chartRows(page string, chart entity.Chart) []exportRow {
	shares := make(map[string]string, len(chart.Slices))
	for _, s := range chart.Slices {
		shares[s.Category] = s.Label
	}

	rows := make([]exportRow, 0, len(chart.Bars)+1)
	for _, bar := range chart.Bars {
		rows = append(rows, exportRow{
			Page:     page,
			ChartID:  chart.ID,
			Kind:     string(chart.Kind),
			Title:    chart.Title,
			Category: bar.Category,
			Amount:   bar.Amount,
			Label:    bar.Label,
			Share:    shares[bar.Category],
			Change:   bar.ChangeLabel,
		})
	}

	total := exportRow{
		Page:     page,
		ChartID:  chart.ID,
		Kind:     string(chart.Kind),
		Title:    chart.Title,
		Category: "TOTAL",
		Amount:   chart.Total,
		Label:    chart.Center.Value,
		Change:   chart.Center.Change,
	}
	return append(rows, total)
}

// flattenReports converte os relatórios em linhas na ordem de exibição.
func flattenReports(reports []entity.PageReport) []exportRow {
	var rows []exportRow
	for _, report := range reports {
		for _, chart := range report.Charts {
			rows = append(rows, chartRows(report.Page, chart)...)
		}
		for _, cmp := range report.Comparisons {
			rows = append(rows, chartRows(report.Page, cmp.Prior)...)
			rows = append(rows, chartRows(report.Page, cmp.Current)...)
		}
		for _, table := range report.FeeTables {
			for _, feeRow := range table.Rows {
				if feeRow.Kind == entity.FeeRowHead {
					continue
				}
				rows = append(rows, exportRow{
					Page:     report.Page,
					ChartID:  table.ID,
					Kind:     string(entity.ChartFeeTable),
					Title:    string(feeRow.Kind),
					Category: feeRow.Label,
					Amount:   feeRow.Amount,
					Label:    feeRow.Formatted,
				})
			}
		}
	}
	return rows
}

func (r *ExportRepositoryImpl) ExportToCSV(reports []entity.PageReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeaders); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range flattenReports(reports) {
		record := []string{
			row.Page,
			row.ChartID,
			row.Kind,
			cleanRichTags(row.Title),
			row.Category,
			strconv.FormatFloat(row.Amount, 'f', 2, 64),
			row.Label,
			row.Share,
			row.Change,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(reports []entity.PageReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reports); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToYAML(reports []entity.PageReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "yaml")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating YAML file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(reports); err != nil {
		return "", fmt.Errorf("error encoding YAML data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("error closing YAML encoder: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	timestamp := now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

// parseHexColor converte "#rrggbb" em RGB. ok é false para cores ausentes ou inválidas.
func parseHexColor(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
