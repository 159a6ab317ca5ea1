package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	Profile     string
	TimeRange   int
	Granularity string
	Tag         []string
	Language    string
	Model       string
	MaxTokens   int
	WithBudgets bool
	DryRun      bool
	ReportName  string
	ReportType  []string
	Dir         string
}
