package repository

import (
	"github.com/diillson/aws-cost-insight-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.AnalysisReport, filename string, outputDir string) (string, error)
}
