package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-cost-insight-go/internal/domain/entity"
	"github.com/diillson/aws-cost-insight-go/internal/shared/types"
)

// --- Fakes dos adaptadores para testar o caso de uso isoladamente ---

type fakeBillingRepo struct {
	profiles []string
	records  []entity.CostRecord
	budgets  []entity.BudgetInfo
	err      error
}

func (f *fakeBillingRepo) GetAWSProfiles() []string {
	if f.profiles == nil {
		return []string{"default"}
	}
	return f.profiles
}

func (f *fakeBillingRepo) GetAccountID(ctx context.Context, profile string) (string, error) {
	return "123456789012", nil
}

func (f *fakeBillingRepo) GetCostRecords(ctx context.Context, profile string, start, end time.Time, granularity string, tags []string) ([]entity.CostRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeBillingRepo) GetBudgets(ctx context.Context, profile string) ([]entity.BudgetInfo, error) {
	return f.budgets, nil
}

type fakeAnalyzerRepo struct {
	calls    int
	prompts  []string
	response string
	err      error
}

func (f *fakeAnalyzerRepo) Analyze(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeAnalyzerRepo) Model() string { return "fake-model" }

type fakeExportRepo struct {
	csvCalls  int
	jsonCalls int
	pdfCalls  int
	last      entity.AnalysisReport
}

func (f *fakeExportRepo) ExportToCSV(report entity.AnalysisReport, filename, outputDir string) (string, error) {
	f.csvCalls++
	f.last = report
	return "/tmp/fake.csv", nil
}

func (f *fakeExportRepo) ExportToJSON(report entity.AnalysisReport, filename, outputDir string) (string, error) {
	f.jsonCalls++
	f.last = report
	return "/tmp/fake.json", nil
}

func (f *fakeExportRepo) ExportToPDF(report entity.AnalysisReport, filename, outputDir string) (string, error) {
	f.pdfCalls++
	f.last = report
	return "/tmp/fake.pdf", nil
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeTable struct{}

func (fakeTable) AddColumn(string, ...interface{}) {}
func (fakeTable) AddRow(...interface{})            {}
func (fakeTable) Render() string                   { return "" }

type fakeConsole struct {
	printed    []string
	panelTitle string
	panelBody  string
}

func (f *fakeConsole) Print(a ...interface{})                 { f.printed = append(f.printed, fmt.Sprint(a...)) }
func (f *fakeConsole) Printf(format string, a ...interface{}) {}
func (f *fakeConsole) Println(a ...interface{}) {
	f.printed = append(f.printed, fmt.Sprintln(a...))
}
func (f *fakeConsole) LogInfo(format string, a ...interface{})    {}
func (f *fakeConsole) LogWarning(format string, a ...interface{}) {}
func (f *fakeConsole) LogError(format string, a ...interface{})   {}
func (f *fakeConsole) LogSuccess(format string, a ...interface{}) {}
func (f *fakeConsole) Status(message string) types.StatusHandle   { return fakeStatus{} }
func (f *fakeConsole) CreateTable() types.TableInterface          { return fakeTable{} }
func (f *fakeConsole) DisplayDailyCostBars([]types.DailyTotal)    {}
func (f *fakeConsole) DisplayReportPanel(title, body string) {
	f.panelTitle = title
	f.panelBody = body
}

func sampleRecords() []entity.CostRecord {
	return []entity.CostRecord{
		{Date: day("2024-01-01"), Service: "EC2", Cost: 12.50},
		{Date: day("2024-01-02"), Service: "EC2", Cost: 340.00},
	}
}

func TestRunReportEmptyRecordsFailsFast(t *testing.T) {
	analyzer := &fakeAnalyzerRepo{response: "should never be used"}
	uc := NewReportUseCase(&fakeBillingRepo{}, analyzer, &fakeExportRepo{}, &fakeConsole{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{})
	require.Error(t, err)

	var genErr *types.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, types.ErrNoCostRecords)

	// Nenhuma chamada de rede deve acontecer sem dados.
	assert.Zero(t, analyzer.calls)
}

func TestRunReportSurfacesAnomalyFromModel(t *testing.T) {
	billing := &fakeBillingRepo{records: sampleRecords()}
	analyzer := &fakeAnalyzerRepo{
		response: "Anomaly detected: EC2 spend on 2024-01-02 jumped to $340.00, far above the $12.50 baseline.",
	}
	console := &fakeConsole{}
	uc := NewReportUseCase(billing, analyzer, &fakeExportRepo{}, console)

	err := uc.RunReport(context.Background(), &types.CLIArgs{Language: "English"})
	require.NoError(t, err)

	require.Equal(t, 1, analyzer.calls)
	assert.Contains(t, console.panelBody, "340.00")
	assert.Contains(t, strings.ToLower(console.panelBody), "anomaly")
}

func TestRunReportPromptPreservesBillingOrder(t *testing.T) {
	billing := &fakeBillingRepo{records: sampleRecords()}
	analyzer := &fakeAnalyzerRepo{response: "report"}
	uc := NewReportUseCase(billing, analyzer, &fakeExportRepo{}, &fakeConsole{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{})
	require.NoError(t, err)

	require.Len(t, analyzer.prompts, 1)
	prompt := analyzer.prompts[0]
	posFirst := strings.Index(prompt, "2024-01-01")
	posSecond := strings.Index(prompt, "2024-01-02")
	require.NotEqual(t, -1, posFirst)
	require.NotEqual(t, -1, posSecond)
	assert.Less(t, posFirst, posSecond)
}

func TestRunReportBillingErrorAbortsRun(t *testing.T) {
	billing := &fakeBillingRepo{
		err: &types.BillingQueryError{Profile: "default", Err: errors.New("throttled")},
	}
	analyzer := &fakeAnalyzerRepo{response: "unused"}
	uc := NewReportUseCase(billing, analyzer, &fakeExportRepo{}, &fakeConsole{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{})

	var billingErr *types.BillingQueryError
	require.ErrorAs(t, err, &billingErr)
	assert.Zero(t, analyzer.calls)
}

func TestRunReportGenerationErrorAbortsRun(t *testing.T) {
	billing := &fakeBillingRepo{records: sampleRecords()}
	analyzer := &fakeAnalyzerRepo{
		err: &types.GenerationError{Model: "fake-model", Err: errors.New("upstream 500")},
	}
	exporter := &fakeExportRepo{}
	uc := NewReportUseCase(billing, analyzer, exporter, &fakeConsole{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{
		ReportName: "report",
		ReportType: []string{"json"},
	})

	var genErr *types.GenerationError
	require.ErrorAs(t, err, &genErr)
	// Falha antes do relatório: nada deve ser exportado.
	assert.Zero(t, exporter.jsonCalls)
}

func TestRunReportDryRunSkipsModelCall(t *testing.T) {
	billing := &fakeBillingRepo{records: sampleRecords()}
	console := &fakeConsole{}
	uc := NewReportUseCase(billing, nil, &fakeExportRepo{}, console)

	err := uc.RunReport(context.Background(), &types.CLIArgs{DryRun: true})
	require.NoError(t, err)

	// O prompt é impresso no console em vez de ser enviado ao modelo.
	joined := strings.Join(console.printed, "\n")
	assert.Contains(t, joined, "=== COST_RECORDS_JSON START ===")
}

func TestRunReportExportsRequestedFormats(t *testing.T) {
	billing := &fakeBillingRepo{records: sampleRecords()}
	analyzer := &fakeAnalyzerRepo{response: "narrative text"}
	exporter := &fakeExportRepo{}
	uc := NewReportUseCase(billing, analyzer, exporter, &fakeConsole{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{
		ReportName: "cost-report",
		ReportType: []string{"csv", "json"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, exporter.csvCalls)
	assert.Equal(t, 1, exporter.jsonCalls)
	assert.Zero(t, exporter.pdfCalls)
	assert.Equal(t, "narrative text", exporter.last.Narrative)
	assert.Equal(t, "fake-model", exporter.last.Model)
	assert.Len(t, exporter.last.Records, 2)
}

func TestResolveProfile(t *testing.T) {
	uc := NewReportUseCase(&fakeBillingRepo{profiles: []string{"default", "prod"}}, nil, nil, &fakeConsole{})

	profile, err := uc.ResolveProfile(&types.CLIArgs{})
	require.NoError(t, err)
	assert.Equal(t, "default", profile)

	profile, err = uc.ResolveProfile(&types.CLIArgs{Profile: "prod"})
	require.NoError(t, err)
	assert.Equal(t, "prod", profile)

	_, err = uc.ResolveProfile(&types.CLIArgs{Profile: "missing"})
	assert.Error(t, err)
}

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	start, end := ResolvePeriod(7, now)
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), end)

	// Sem time-range, o período é o mês corrente.
	start, end = ResolvePeriod(0, now)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), end)
}
