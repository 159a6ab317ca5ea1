package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/aws-cost-insight-go/pkg/version"

	"github.com/diillson/aws-cost-insight-go/internal/application/usecase"
	"github.com/diillson/aws-cost-insight-go/internal/domain/repository"
	"github.com/diillson/aws-cost-insight-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// AnalyzerFactory cria o repositório do modelo a partir dos argumentos
// parseados. A credencial é injetada por quem monta a aplicação.
type AnalyzerFactory func(model string, maxTokens int) (repository.AnalyzerRepository, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd         *cobra.Command
	billingRepo     repository.BillingRepository
	exportRepo      repository.ExportRepository
	configRepo      repository.ConfigRepository
	console         types.ConsoleInterface
	analyzerFactory AnalyzerFactory
	version         string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "aws-cost-insight",
		Short:   "AI-powered AWS cost anomaly reports",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Insight version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile to use (default: 'default')")
	rootCmd.PersistentFlags().IntP("time-range", "t", 0, "Time range for cost data in days (default: current month)")
	rootCmd.PersistentFlags().StringP("granularity", "G", "DAILY", "Cost Explorer granularity: DAILY or MONTHLY")
	rootCmd.PersistentFlags().StringSliceP("tag", "g", nil, "Cost allocation tag to filter resources, e.g., --tag Team=DevOps")
	rootCmd.PersistentFlags().StringP("language", "l", "English", "Language for the generated report")
	rootCmd.PersistentFlags().StringP("model", "m", "", "OpenAI model used to generate the report")
	rootCmd.PersistentFlags().Int("max-tokens", 0, "Maximum tokens for the generated report")
	rootCmd.PersistentFlags().Bool("with-budgets", false, "Include AWS budget status as context for the analysis")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the prompt without calling the model")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetRepositories injeta os adaptadores usados pelo caso de uso.
func (app *CLIApp) SetRepositories(
	billingRepo repository.BillingRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
	analyzerFactory AnalyzerFactory,
) {
	app.billingRepo = billingRepo
	app.exportRepo = exportRepo
	app.configRepo = configRepo
	app.console = console
	app.analyzerFactory = analyzerFactory
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	profile, _ := app.rootCmd.Flags().GetString("profile")
	timeRange, _ := app.rootCmd.Flags().GetInt("time-range")
	granularity, _ := app.rootCmd.Flags().GetString("granularity")
	tag, _ := app.rootCmd.Flags().GetStringSlice("tag")
	language, _ := app.rootCmd.Flags().GetString("language")
	model, _ := app.rootCmd.Flags().GetString("model")
	maxTokens, _ := app.rootCmd.Flags().GetInt("max-tokens")
	withBudgets, _ := app.rootCmd.Flags().GetBool("with-budgets")
	dryRun, _ := app.rootCmd.Flags().GetBool("dry-run")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		Profile:     profile,
		TimeRange:   timeRange,
		Granularity: granularity,
		Tag:         tag,
		Language:    language,
		Model:       model,
		MaxTokens:   maxTokens,
		WithBudgets: withBudgets,
		DryRun:      dryRun,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
	}

	// Valores do arquivo de configuração preenchem o que as flags não definiram.
	if configFile != "" {
		config, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, config)
	}

	if args.Dir != "" {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	}

	return args, nil
}

// mergeConfig aplica valores do arquivo de configuração aos argumentos
// que não foram definidos na linha de comando.
func mergeConfig(args *types.CLIArgs, config *types.Config) {
	if args.Profile == "" {
		args.Profile = config.Profile
	}
	if args.TimeRange == 0 {
		args.TimeRange = config.TimeRange
	}
	if config.Granularity != "" && args.Granularity == "DAILY" {
		args.Granularity = config.Granularity
	}
	if len(args.Tag) == 0 {
		args.Tag = config.Tag
	}
	if config.Language != "" && args.Language == "English" {
		args.Language = config.Language
	}
	if args.Model == "" {
		args.Model = config.Model
	}
	if args.MaxTokens == 0 {
		args.MaxTokens = config.MaxTokens
	}
	if !args.WithBudgets {
		args.WithBudgets = config.WithBudgets
	}
	if args.ReportName == "" {
		args.ReportName = config.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = config.ReportType
	}
	if args.Dir == "" {
		args.Dir = config.Dir
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// O analisador só é construído quando a execução realmente vai chamar
	// o modelo; dry-run não exige credencial.
	var analyzerRepo repository.AnalyzerRepository
	if !cliArgs.DryRun {
		analyzerRepo, err = app.analyzerFactory(cliArgs.Model, cliArgs.MaxTokens)
		if err != nil {
			return err
		}
	}

	reportUseCase := usecase.NewReportUseCase(
		app.billingRepo,
		analyzerRepo,
		app.exportRepo,
		app.console,
	)

	ctx := context.Background()
	return reportUseCase.RunReport(ctx, cliArgs)
}
