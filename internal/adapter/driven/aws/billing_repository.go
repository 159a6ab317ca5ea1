package aws

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-cost-insight-go/internal/domain/entity"
	"github.com/diillson/aws-cost-insight-go/internal/domain/repository"
	"github.com/diillson/aws-cost-insight-go/internal/shared/types"
)

// BillingRepositoryImpl implementa o BillingRepository com cache de clientes.
type BillingRepositoryImpl struct {
	cfgCache    map[string]aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewBillingRepository cria uma nova implementação do BillingRepository.
func NewBillingRepository() repository.BillingRepository {
	return &BillingRepositoryImpl{
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]interface{}),
	}
}

func (r *BillingRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *BillingRepositoryImpl) getServiceClient(ctx context.Context, profile, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s", profile, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return nil, err
	}

	// Cost Explorer e Budgets são globais e atendem apenas em us-east-1.
	regionalCfg := cfg.Copy()
	regionalCfg.Region = "us-east-1"

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(regionalCfg)
	case "costexplorer":
		client = costexplorer.NewFromConfig(regionalCfg)
	case "budgets":
		client = budgets.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

func (r *BillingRepositoryImpl) GetAWSProfiles() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return []string{"default"}
	}

	credentialsPath := filepath.Join(homeDir, ".aws", "credentials")
	configPath := filepath.Join(homeDir, ".aws", "config")

	profiles := make(map[string]bool)
	profileRegex := regexp.MustCompile(`\[([^]]+)\]`)

	parseFile := func(path string, isConfig bool) {
		content, err := os.ReadFile(path)
		if err != nil {
			return
		}
		matches := profileRegex.FindAllStringSubmatch(string(content), -1)
		for _, match := range matches {
			profileName := match[1]
			if isConfig {
				profileName = strings.TrimPrefix(profileName, "profile ")
			}
			profiles[profileName] = true
		}
	}

	parseFile(credentialsPath, false)
	parseFile(configPath, true)

	if len(profiles) == 0 {
		profiles["default"] = true
	}

	result := make([]string, 0, len(profiles))
	for profile := range profiles {
		result = append(result, profile)
	}
	sort.Strings(result)
	return result
}

func (r *BillingRepositoryImpl) GetAccountID(ctx context.Context, profile string) (string, error) {
	client, err := r.getServiceClient(ctx, profile, "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(*sts.Client)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %s: %w", profile, err)
	}
	return *result.Account, nil
}

// GetCostRecords consulta o Cost Explorer e retorna registros (data, serviço,
// custo) em ordem cronológica. Intervalos inválidos falham com
// BillingQueryError antes de qualquer chamada de rede.
func (r *BillingRepositoryImpl) GetCostRecords(ctx context.Context, profile string, start, end time.Time, granularity string, tags []string) ([]entity.CostRecord, error) {
	if err := ValidateDateRange(start, end); err != nil {
		return nil, &types.BillingQueryError{Profile: profile, Err: err}
	}

	gran, err := parseGranularity(granularity)
	if err != nil {
		return nil, &types.BillingQueryError{Profile: profile, Err: err}
	}

	filter, err := parseTagFilter(tags)
	if err != nil {
		return nil, &types.BillingQueryError{Profile: profile, Err: err}
	}

	client, err := r.getServiceClient(ctx, profile, "costexplorer")
	if err != nil {
		return nil, &types.BillingQueryError{Profile: profile, Err: err}
	}
	ceClient := client.(*costexplorer.Client)

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: gran,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
		},
		Filter: filter,
	}

	var records []entity.CostRecord
	for {
		result, err := ceClient.GetCostAndUsage(ctx, input)
		if err != nil {
			return nil, &types.BillingQueryError{Profile: profile, Err: err}
		}

		records = append(records, recordsFromResults(result.ResultsByTime)...)

		if result.NextPageToken == nil {
			break
		}
		input.NextPageToken = result.NextPageToken
	}

	return records, nil
}

// recordsFromResults normaliza a resposta do Cost Explorer em CostRecords,
// preservando a ordem cronológica dos períodos retornados pela API.
func recordsFromResults(results []ceTypes.ResultByTime) []entity.CostRecord {
	var records []entity.CostRecord

	for _, period := range results {
		if period.TimePeriod == nil || period.TimePeriod.Start == nil {
			continue
		}
		date, err := time.Parse("2006-01-02", *period.TimePeriod.Start)
		if err != nil {
			continue
		}

		for _, group := range period.Groups {
			if len(group.Keys) == 0 {
				continue
			}
			metric, ok := group.Metrics["UnblendedCost"]
			if !ok || metric.Amount == nil {
				continue
			}
			cost, err := strconv.ParseFloat(*metric.Amount, 64)
			if err != nil {
				continue
			}
			if cost < 0.0001 {
				continue
			}
			records = append(records, entity.CostRecord{
				Date:    date,
				Service: group.Keys[0],
				Cost:    cost,
			})
		}
	}

	return records
}

// ValidateDateRange rejeita intervalos invertidos ou vazios localmente,
// em vez de deixar a API retornar uma lista vazia em silêncio.
func ValidateDateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("date range is not set")
	}
	if !start.Before(end) {
		return fmt.Errorf("invalid date range: start %s is not before end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return nil
}

func parseGranularity(granularity string) (ceTypes.Granularity, error) {
	switch strings.ToUpper(granularity) {
	case "", "DAILY":
		return ceTypes.GranularityDaily, nil
	case "MONTHLY":
		return ceTypes.GranularityMonthly, nil
	default:
		return "", fmt.Errorf("unsupported granularity: %s", granularity)
	}
}

func parseTagFilter(tags []string) (*ceTypes.Expression, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	var expressions []ceTypes.Expression
	for _, t := range tags {
		parts := strings.SplitN(t, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid tag format: %s", t)
		}
		expressions = append(expressions, ceTypes.Expression{
			Tags: &ceTypes.TagValues{
				Key:    aws.String(parts[0]),
				Values: []string{parts[1]},
			},
		})
	}

	if len(expressions) == 1 {
		return &expressions[0], nil
	}

	return &ceTypes.Expression{And: expressions}, nil
}

func (r *BillingRepositoryImpl) GetBudgets(ctx context.Context, profile string) ([]entity.BudgetInfo, error) {
	client, err := r.getServiceClient(ctx, profile, "budgets")
	if err != nil {
		return nil, err
	}
	budgetsClient := client.(*budgets.Client)

	accountID, err := r.GetAccountID(ctx, profile)
	if err != nil {
		return nil, err
	}

	result, err := budgetsClient.DescribeBudgets(ctx, &budgets.DescribeBudgetsInput{
		AccountId: aws.String(accountID),
	})
	if err != nil {
		return nil, nil // Not a fatal error
	}

	budgetsData := []entity.BudgetInfo{}
	for _, budget := range result.Budgets {
		b := entity.BudgetInfo{Name: *budget.BudgetName}
		if budget.BudgetLimit != nil {
			b.Limit, _ = strconv.ParseFloat(*budget.BudgetLimit.Amount, 64)
		}
		if budget.CalculatedSpend != nil {
			if budget.CalculatedSpend.ActualSpend != nil {
				b.Actual, _ = strconv.ParseFloat(*budget.CalculatedSpend.ActualSpend.Amount, 64)
			}
			if budget.CalculatedSpend.ForecastedSpend != nil {
				b.Forecast, _ = strconv.ParseFloat(*budget.CalculatedSpend.ForecastedSpend.Amount, 64)
			}
		}
		budgetsData = append(budgetsData, b)
	}

	return budgetsData, nil
}
