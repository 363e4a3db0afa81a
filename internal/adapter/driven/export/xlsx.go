package export

import (
	"fmt"
	"path/filepath"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Dashboard"

func (r *ExportRepositoryImpl) ExportToXLSX(reports []entity.PageReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return "", fmt.Errorf("error preparing XLSX sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#282828"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
	})
	// 4 = "#,##0.00"
	amountStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4})

	for i, header := range csvHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(xlsxSheet, cell, header)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(csvHeaders))
	f.SetCellStyle(xlsxSheet, "A1", lastCol+"1", headerStyle)

	row := 2
	for _, er := range flattenReports(reports) {
		values := []interface{}{
			er.Page, er.ChartID, er.Kind, er.Title, er.Category, er.Amount, er.Label, er.Share, er.Change,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(xlsxSheet, cell, v)
		}
		f.SetCellStyle(xlsxSheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), amountStyle)
		if er.Category == "TOTAL" || er.Title == string(entity.FeeRowTotal) || er.Title == string(entity.FeeRowSection) {
			f.SetCellStyle(xlsxSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), totalStyle)
		}
		row++
	}

	f.SetColWidth(xlsxSheet, "A", "C", 14)
	f.SetColWidth(xlsxSheet, "D", "E", 36)
	f.SetColWidth(xlsxSheet, "F", "I", 16)
	f.SetPanes(xlsxSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}
