package repository

import (
	"context"
	"time"

	"github.com/diillson/aws-cost-insight-go/internal/domain/entity"
)

// BillingRepository defines the interface for AWS billing API interactions.
type BillingRepository interface {
	// Profile Operations
	GetAWSProfiles() []string
	GetAccountID(ctx context.Context, profile string) (string, error)

	// Cost Operations
	GetCostRecords(ctx context.Context, profile string, start, end time.Time, granularity string, tags []string) ([]entity.CostRecord, error)

	// Budget Operations
	GetBudgets(ctx context.Context, profile string) ([]entity.BudgetInfo, error)
}
