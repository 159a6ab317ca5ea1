package usecase

import (
	"math"

	"github.com/diillson/aws-cost-insight-go/internal/domain/entity"
)

// ComputeSummaryStats calcula as estatísticas locais (contagem, total,
// média e desvio padrão populacional) sobre os custos dos registros.
// Essas estatísticas entram no prompt como contexto para o modelo.
func ComputeSummaryStats(records []entity.CostRecord) entity.SummaryStats {
	stats := entity.SummaryStats{Count: len(records)}
	if len(records) == 0 {
		return stats
	}

	for _, rec := range records {
		stats.Total += rec.Cost
	}
	stats.Mean = stats.Total / float64(len(records))

	if len(records) > 1 {
		var variance float64
		for _, rec := range records {
			diff := rec.Cost - stats.Mean
			variance += diff * diff
		}
		variance /= float64(len(records))
		stats.StdDev = math.Sqrt(variance)
	}

	return stats
}
