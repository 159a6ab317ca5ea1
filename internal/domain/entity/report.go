package entity

import "time"

// SummaryStats são estatísticas locais calculadas sobre os registros de
// custo e embutidas no prompt como contexto adicional para o modelo.
type SummaryStats struct {
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdev"`
}

// AnalysisReport é o resultado final de uma execução: o texto narrativo
// retornado pelo modelo junto com os dados que o geraram.
type AnalysisReport struct {
	Profile     string       `json:"profile"`
	AccountID   string       `json:"account_id,omitempty"`
	PeriodStart time.Time    `json:"period_start"`
	PeriodEnd   time.Time    `json:"period_end"`
	Records     []CostRecord `json:"records"`
	Stats       SummaryStats `json:"stats"`
	Model       string       `json:"model"`
	Language    string       `json:"language"`
	Narrative   string       `json:"narrative"`
	GeneratedAt time.Time    `json:"generated_at"`
}
