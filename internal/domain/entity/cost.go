package entity

import "time"

// CostRecord represents the spend for a single AWS service on a single day.
type CostRecord struct {
	Date    time.Time `json:"date"`
	Service string    `json:"service"`
	Cost    float64   `json:"cost"`
}

// CostReport contains the ordered cost records returned by Cost Explorer
// for one query, plus the context needed to present them.
type CostReport struct {
	AccountID   string       `json:"account_id,omitempty"`
	Records     []CostRecord `json:"records"`
	PeriodStart time.Time    `json:"period_start"`
	PeriodEnd   time.Time    `json:"period_end"`
	Granularity string       `json:"granularity"`
	Budgets     []BudgetInfo `json:"budgets,omitempty"`
}

// DailyTotals agrega os registros por dia, preservando a ordem cronológica.
// Usado para o gráfico de barras no console antes da análise.
func (r CostReport) DailyTotals() []DailyCost {
	totals := []DailyCost{}
	index := map[string]int{}

	for _, rec := range r.Records {
		day := rec.Date.Format("2006-01-02")
		if i, ok := index[day]; ok {
			totals[i].Cost += rec.Cost
			continue
		}
		index[day] = len(totals)
		totals = append(totals, DailyCost{Date: day, Cost: rec.Cost})
	}

	return totals
}

// DailyCost representa o custo total de todos os serviços em um dia.
type DailyCost struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}
