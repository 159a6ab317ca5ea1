package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/diillson/aws-cost-insight-go/internal/domain/entity"
	"github.com/diillson/aws-cost-insight-go/internal/domain/repository"
	"github.com/diillson/aws-cost-insight-go/internal/shared/types"
)

// ReportUseCase orquestra o fluxo principal: consulta de custos no Cost
// Explorer seguida de uma chamada ao modelo de linguagem, nessa ordem,
// uma vez por execução.
type ReportUseCase struct {
	billingRepo  repository.BillingRepository
	analyzerRepo repository.AnalyzerRepository
	exportRepo   repository.ExportRepository
	console      types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	billingRepo repository.BillingRepository,
	analyzerRepo repository.AnalyzerRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		billingRepo:  billingRepo,
		analyzerRepo: analyzerRepo,
		exportRepo:   exportRepo,
		console:      console,
	}
}

// ResolveProfile determines which AWS profile to use based on CLI args.
func (uc *ReportUseCase) ResolveProfile(args *types.CLIArgs) (string, error) {
	availableProfiles := uc.billingRepo.GetAWSProfiles()
	if len(availableProfiles) == 0 {
		return "", types.ErrNoProfilesFound
	}

	if args.Profile != "" {
		for _, p := range availableProfiles {
			if p == args.Profile {
				return p, nil
			}
		}
		return "", fmt.Errorf("profile '%s' not found in AWS configuration", args.Profile)
	}

	for _, p := range availableProfiles {
		if p == "default" {
			return "default", nil
		}
	}

	uc.console.LogWarning("No default profile found. Using profile '%s'.", availableProfiles[0])
	return availableProfiles[0], nil
}

// ResolvePeriod calcula o intervalo de consulta. TimeRange > 0 cobre os
// últimos N dias; 0 cobre o mês corrente, como o Cost Explorer apresenta.
func ResolvePeriod(timeRange int, now time.Time) (time.Time, time.Time) {
	today := now.UTC().Truncate(24 * time.Hour)
	end := today.AddDate(0, 0, 1) // Cost Explorer trata End como exclusivo

	if timeRange > 0 {
		return today.AddDate(0, 0, -timeRange), end
	}

	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, end
}

// RunReport executa a funcionalidade principal: busca registros de custo,
// monta o prompt, chama o modelo e imprime (e opcionalmente exporta) o
// relatório. Qualquer falha aborta a execução.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	profile, err := uc.ResolveProfile(args)
	if err != nil {
		return err
	}

	start, end := ResolvePeriod(args.TimeRange, time.Now())

	status := uc.console.Status(fmt.Sprintf("Fetching cost data for profile %s...", profile))

	records, err := uc.billingRepo.GetCostRecords(ctx, profile, start, end, args.Granularity, args.Tag)
	if err != nil {
		status.Stop()
		return err
	}

	// Lista vazia é tratada como falha antes de qualquer chamada ao modelo,
	// em vez de gerar um relatório sem dados.
	if len(records) == 0 {
		status.Stop()
		return &types.GenerationError{Err: types.ErrNoCostRecords}
	}

	status.Update("Fetching account metadata...")
	accountID, err := uc.billingRepo.GetAccountID(ctx, profile)
	if err != nil {
		uc.console.LogWarning("Could not resolve account ID for profile %s: %s", profile, err)
		accountID = "Unknown"
	}

	var budgets []entity.BudgetInfo
	if args.WithBudgets {
		status.Update("Fetching budgets...")
		budgets, err = uc.billingRepo.GetBudgets(ctx, profile)
		if err != nil {
			uc.console.LogWarning("Could not fetch budgets for profile %s: %s", profile, err)
		}
	}

	status.Stop()

	report := entity.CostReport{
		AccountID:   accountID,
		Records:     records,
		PeriodStart: start,
		PeriodEnd:   end,
		Granularity: args.Granularity,
		Budgets:     budgets,
	}

	uc.displayCostSummary(report)

	stats := ComputeSummaryStats(records)

	prompt, err := BuildAnalysisPrompt(records, stats, budgets, args.Language)
	if err != nil {
		return err
	}

	if args.DryRun {
		uc.console.LogInfo("Dry run: prompt below was not sent to the model.")
		uc.console.Println(prompt)
		return nil
	}

	status = uc.console.Status(fmt.Sprintf("Generating report with %s...", uc.analyzerRepo.Model()))
	narrative, err := uc.analyzerRepo.Analyze(ctx, prompt)
	status.Stop()
	if err != nil {
		return err
	}

	uc.console.DisplayReportPanel("AI Cost Analysis Report", narrative)

	analysisReport := entity.AnalysisReport{
		Profile:     profile,
		AccountID:   accountID,
		PeriodStart: start,
		PeriodEnd:   end,
		Records:     records,
		Stats:       stats,
		Model:       uc.analyzerRepo.Model(),
		Language:    args.Language,
		Narrative:   narrative,
		GeneratedAt: time.Now().UTC(),
	}

	uc.exportReport(analysisReport, args)

	return nil
}

// displayCostSummary imprime a tabela de custos por serviço e o gráfico
// de barras por dia antes da análise do modelo.
func (uc *ReportUseCase) displayCostSummary(report entity.CostReport) {
	table := uc.console.CreateTable()
	table.AddColumn("Date")
	table.AddColumn("Service")
	table.AddColumn("Cost (USD)")

	for _, rec := range report.Records {
		table.AddRow(
			rec.Date.Format("2006-01-02"),
			rec.Service,
			fmt.Sprintf("$%.4f", rec.Cost),
		)
	}

	uc.console.Print(table.Render())

	dailyTotals := report.DailyTotals()
	uiTotals := make([]types.DailyTotal, len(dailyTotals))
	for i, dt := range dailyTotals {
		uiTotals[i] = types.DailyTotal{Date: dt.Date, Cost: dt.Cost}
	}
	uc.console.DisplayDailyCostBars(uiTotals)
}

// exportReport exporta o relatório nos formatos pedidos. Falha de exportação
// não aborta a execução; o relatório já foi exibido.
func (uc *ReportUseCase) exportReport(report entity.AnalysisReport, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}
}
