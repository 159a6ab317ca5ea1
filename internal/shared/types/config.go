package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile     string   `json:"profile" yaml:"profile" toml:"profile"`
	TimeRange   int      `json:"time_range" yaml:"time_range" toml:"time_range"`
	Granularity string   `json:"granularity" yaml:"granularity" toml:"granularity"`
	Tag         []string `json:"tag" yaml:"tag" toml:"tag"`
	Language    string   `json:"language" yaml:"language" toml:"language"`
	Model       string   `json:"model" yaml:"model" toml:"model"`
	MaxTokens   int      `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`
	WithBudgets bool     `json:"with_budgets" yaml:"with_budgets" toml:"with_budgets"`
	ReportName  string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType  []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir         string   `json:"dir" yaml:"dir" toml:"dir"`
}
