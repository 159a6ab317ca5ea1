package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-cost-insight-go/internal/domain/entity"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildAnalysisPromptIncludesEveryRecordOnce(t *testing.T) {
	records := []entity.CostRecord{
		{Date: day("2024-01-01"), Service: "Amazon EC2", Cost: 12.5},
		{Date: day("2024-01-02"), Service: "Amazon S3", Cost: 3.75},
		{Date: day("2024-01-02"), Service: "Amazon EC2", Cost: 340.0},
	}
	stats := ComputeSummaryStats(records)

	prompt, err := BuildAnalysisPrompt(records, stats, nil, "English")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(prompt, `"2024-01-01"`))
	assert.Equal(t, 2, strings.Count(prompt, `"2024-01-02"`))
	assert.Equal(t, 2, strings.Count(prompt, `"Amazon EC2"`))
	assert.Equal(t, 1, strings.Count(prompt, `"Amazon S3"`))
	assert.Equal(t, 1, strings.Count(prompt, "12.5"))
	assert.Equal(t, 1, strings.Count(prompt, "3.75"))
	assert.Equal(t, 1, strings.Count(prompt, "340"))
}

func TestBuildAnalysisPromptPreservesRecordOrder(t *testing.T) {
	records := []entity.CostRecord{
		{Date: day("2024-01-03"), Service: "AWS Lambda", Cost: 1.0},
		{Date: day("2024-01-01"), Service: "Amazon S3", Cost: 2.0},
		{Date: day("2024-01-02"), Service: "Amazon EC2", Cost: 3.0},
	}

	prompt, err := BuildAnalysisPrompt(records, ComputeSummaryStats(records), nil, "English")
	require.NoError(t, err)

	// A ordem de entrada deve sobreviver inalterada dentro do bloco JSON.
	posLambda := strings.Index(prompt, "AWS Lambda")
	posS3 := strings.Index(prompt, "Amazon S3")
	posEC2 := strings.Index(prompt, "Amazon EC2")
	require.NotEqual(t, -1, posLambda)
	require.NotEqual(t, -1, posS3)
	require.NotEqual(t, -1, posEC2)
	assert.Less(t, posLambda, posS3)
	assert.Less(t, posS3, posEC2)
}

func TestBuildAnalysisPromptContainsMarkersAndStats(t *testing.T) {
	records := []entity.CostRecord{
		{Date: day("2024-02-01"), Service: "Amazon EC2", Cost: 10.0},
		{Date: day("2024-02-02"), Service: "Amazon EC2", Cost: 30.0},
	}
	stats := ComputeSummaryStats(records)

	prompt, err := BuildAnalysisPrompt(records, stats, nil, "Korean")
	require.NoError(t, err)

	assert.Contains(t, prompt, "=== COST_RECORDS_JSON START ===")
	assert.Contains(t, prompt, "=== COST_RECORDS_JSON END ===")
	assert.Contains(t, prompt, "=== SUMMARY_STATS START ===")
	assert.Contains(t, prompt, "=== SUMMARY_STATS END ===")
	assert.Contains(t, prompt, `"count": 2`)
	assert.Contains(t, prompt, `"total": 40`)
	assert.Contains(t, prompt, "Write the report in Korean.")
}

func TestBuildAnalysisPromptIncludesBudgets(t *testing.T) {
	records := []entity.CostRecord{
		{Date: day("2024-02-01"), Service: "Amazon EC2", Cost: 10.0},
	}
	budgets := []entity.BudgetInfo{
		{Name: "monthly-cap", Limit: 500, Actual: 420.5, Forecast: 610},
	}

	prompt, err := BuildAnalysisPrompt(records, ComputeSummaryStats(records), budgets, "")
	require.NoError(t, err)

	assert.Contains(t, prompt, "monthly-cap")
	assert.Contains(t, prompt, "limit $500.00")
	assert.Contains(t, prompt, "actual $420.50")
	assert.Contains(t, prompt, "forecast $610.00")
	// Sem idioma configurado, o relatório sai em inglês.
	assert.Contains(t, prompt, "Write the report in English.")
}
