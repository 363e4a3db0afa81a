package repository

import (
	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToJSON(reports []entity.PageReport, filename string, outputDir string) (string, error)
	ExportToYAML(reports []entity.PageReport, filename string, outputDir string) (string, error)
	ExportToCSV(reports []entity.PageReport, filename string, outputDir string) (string, error)
	ExportToPDF(reports []entity.PageReport, filename string, outputDir string) (string, error)
	ExportToXLSX(reports []entity.PageReport, filename string, outputDir string) (string, error)
	ExportToHTML(reports []entity.PageReport, filename string, outputDir string) (string, error)
}
