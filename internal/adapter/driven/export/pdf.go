package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

var (
	headerColor     = [3]int{40, 40, 40}
	headerTextColor = [3]int{255, 255, 255}
	bodyTextColor   = [3]int{50, 50, 50}
	lineColor       = [3]int{200, 200, 200}
	defaultBarColor = [3]int{31, 119, 180}
	increaseColor   = [3]int{0, 150, 80}
	decreaseColor   = [3]int{200, 40, 40}
)

// Dimensões do desenho de barras, em mm.
const (
	pdfLabelWidth = 60.0
	pdfBarMax     = 90.0
	pdfValueWidth = 40.0
	pdfRowHeight  = 6.0
)

func (r *ExportRepositoryImpl) ExportToPDF(reports []entity.PageReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	generated := time.Now().Format("2006-01-02")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Budget Dashboard | %s", generated)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	for _, report := range reports {
		pdf.AddPage()

		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr("  "+strings.ToUpper(report.Page)), "", 1, "L", true, 0, "")
		pdf.Ln(6)

		for _, chart := range report.Charts {
			drawChart(pdf, tr, chart)
		}
		for _, cmp := range report.Comparisons {
			drawChart(pdf, tr, cmp.Prior)
			drawChart(pdf, tr, cmp.Current)
		}
		for _, table := range report.FeeTables {
			drawFeeTable(pdf, tr, table)
		}

		if len(report.Failed) > 0 {
			pdf.SetFont("Arial", "I", 9)
			pdf.SetTextColor(decreaseColor[0], decreaseColor[1], decreaseColor[2])
			pdf.MultiCell(0, 5, tr("Not rendered (missing data): "+strings.Join(report.Failed, ", ")), "", "L", false)
		}
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func drawChart(pdf *gofpdf.Fpdf, tr func(string) string, chart entity.Chart) {
	// título + rótulo central + barras
	needed := 30 + float64(len(chart.Bars))*pdfRowHeight
	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+needed > pageHeight-20 {
		pdf.AddPage()
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, tr(chart.Title))
	pdf.Ln(7)

	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(3)

	if chart.Center.Caption != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		caption := strings.ReplaceAll(chart.Center.Caption, "\n", " ")
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", caption, chart.Center.Value)), "", 1, "L", false, 0, "")
		if chart.Center.Change != "" {
			c := decreaseColor
			if chart.Center.Increase {
				c = increaseColor
			}
			pdf.SetTextColor(c[0], c[1], c[2])
			pdf.CellFormat(0, 6, tr(chart.Center.Change), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	maxAmount := 0.0
	for _, bar := range chart.Bars {
		if bar.Amount > maxAmount {
			maxAmount = bar.Amount
		}
	}

	shares := make(map[string]entity.Slice, len(chart.Slices))
	for _, s := range chart.Slices {
		shares[s.Category] = s
	}

	pdf.SetFont("Arial", "", 9)
	for _, bar := range chart.Bars {
		x, y := pdf.GetX(), pdf.GetY()

		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(pdfLabelWidth, pdfRowHeight, tr(truncate(bar.Category, 38)), "", 0, "L", false, 0, "")

		width := 0.0
		if maxAmount > 0 && bar.Amount > 0 {
			width = bar.Amount / maxAmount * pdfBarMax
		}
		red, green, blue, ok := parseHexColor(bar.Color)
		if !ok {
			red, green, blue = defaultBarColor[0], defaultBarColor[1], defaultBarColor[2]
		}
		if width > 0 {
			pdf.SetFillColor(red, green, blue)
			pdf.Rect(x+pdfLabelWidth, y+1, width, pdfRowHeight-2, "F")
		}

		value := bar.Label
		if s, ok := shares[bar.Category]; ok && !s.LabelHidden {
			value += "  " + s.Label
		}
		if bar.ChangeLabel != "" {
			value += " " + bar.ChangeLabel
		}
		pdf.SetXY(x+pdfLabelWidth+pdfBarMax+2, y)
		pdf.CellFormat(pdfValueWidth, pdfRowHeight, tr(value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func drawFeeTable(pdf *gofpdf.Fpdf, tr func(string) string, table entity.FeeTable) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, "Tuition and Student Fees")
	pdf.Ln(9)

	for _, row := range table.Rows {
		style := ""
		fill := false
		indent := ""
		switch row.Kind {
		case entity.FeeRowHead:
			style = "B"
			fill = true
			pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
			pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		case entity.FeeRowSection, entity.FeeRowTotal:
			style = "B"
			fill = true
			pdf.SetFillColor(240, 240, 240)
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		case entity.FeeRowSub:
			indent = "    "
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		default:
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		}

		pdf.SetFont("Arial", style, 9)
		pdf.CellFormat(140, pdfRowHeight, tr(indent+row.Label), "B", 0, "L", fill, 0, "")
		pdf.CellFormat(50, pdfRowHeight, tr(row.Formatted), "B", 1, "R", fill, 0, "")
	}
	pdf.Ln(6)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
