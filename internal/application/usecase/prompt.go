package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diillson/aws-cost-insight-go/internal/domain/entity"
)

// Marcadores que delimitam os blocos de dados dentro do prompt.
const (
	costRecordsStartMarker  = "=== COST_RECORDS_JSON START ==="
	costRecordsEndMarker    = "=== COST_RECORDS_JSON END ==="
	summaryStatsStartMarker = "=== SUMMARY_STATS START ==="
	summaryStatsEndMarker   = "=== SUMMARY_STATS END ==="
)

// promptRecord é a forma serializada de um CostRecord dentro do prompt.
type promptRecord struct {
	Date    string  `json:"date"`
	Service string  `json:"service"`
	Cost    float64 `json:"cost"`
}

// BuildAnalysisPrompt monta o prompt enviado ao modelo. É uma função pura
// e determinística: cada registro aparece exatamente uma vez, na mesma
// ordem em que foi retornado pelo Cost Explorer.
func BuildAnalysisPrompt(records []entity.CostRecord, stats entity.SummaryStats, budgets []entity.BudgetInfo, language string) (string, error) {
	rows := make([]promptRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, promptRecord{
			Date:    rec.Date.Format("2006-01-02"),
			Service: rec.Service,
			Cost:    rec.Cost,
		})
	}

	rowsJSON, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding cost records for prompt: %w", err)
	}

	statsJSON, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding summary stats for prompt: %w", err)
	}

	if language == "" {
		language = "English"
	}

	var sb strings.Builder

	sb.WriteString("You are an AWS cost analysis expert. Below is per-service, per-day AWS cost data.\n")
	sb.WriteString(fmt.Sprintf("Goal: produce an easy-to-read cost analysis report in %s. Free format, but it must include:\n", language))
	sb.WriteString("  1) Anomaly detection: identify which services/dates spiked or dropped compared to usual, with numeric justification (day-over-day, versus mean).\n")
	sb.WriteString("  2) Overall trend summary: whether total cost for the period is rising, falling or stable, and which services likely drive it.\n")
	sb.WriteString("  3) Follow-up action items: concrete checks for the operations team (logs, reserved/spot usage, data transfer volumes).\n")
	sb.WriteString("  4) (Optional) Cost-saving suggestions, briefly.\n\n")
	sb.WriteString("Important figures should keep the original number in parentheses.\n\n")

	sb.WriteString(costRecordsStartMarker + "\n")
	sb.Write(rowsJSON)
	sb.WriteString("\n" + costRecordsEndMarker + "\n\n")

	sb.WriteString(summaryStatsStartMarker + "\n")
	sb.Write(statsJSON)
	sb.WriteString("\n" + summaryStatsEndMarker + "\n")

	if len(budgets) > 0 {
		sb.WriteString("\nConfigured AWS budgets for this account:\n")
		for _, b := range budgets {
			line := fmt.Sprintf("- %s: limit $%.2f, actual $%.2f", b.Name, b.Limit, b.Actual)
			if b.Forecast > 0 {
				line += fmt.Sprintf(", forecast $%.2f", b.Forecast)
			}
			sb.WriteString(line + "\n")
		}
	}

	sb.WriteString("\nNotes:\n")
	sb.WriteString("- Base the analysis only on the data provided; mark uncertain conclusions as estimates.\n")
	sb.WriteString(fmt.Sprintf("- Write the report in %s.\n", language))

	return sb.String(), nil
}
