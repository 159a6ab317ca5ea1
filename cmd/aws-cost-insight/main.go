package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-cost-insight-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-insight-go/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-insight-go/internal/adapter/driven/export"
	openaiAdapter "github.com/diillson/aws-cost-insight-go/internal/adapter/driven/openai"
	"github.com/diillson/aws-cost-insight-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-cost-insight-go/internal/domain/repository"
	"github.com/diillson/aws-cost-insight-go/pkg/console"
	"github.com/diillson/aws-cost-insight-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	billingRepo := aws.NewBillingRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// A credencial do modelo é lida do ambiente uma única vez, aqui na
	// montagem; o caminho de chamada recebe a configuração já validada.
	apiKey := os.Getenv("OPENAI_API_KEY")
	analyzerFactory := func(model string, maxTokens int) (repository.AnalyzerRepository, error) {
		return openaiAdapter.NewAnalyzerRepository(openaiAdapter.AnalyzerConfig{
			APIKey:    apiKey,
			Model:     model,
			MaxTokens: maxTokens,
		})
	}

	app.SetRepositories(billingRepo, exportRepo, configRepo, consoleImpl, analyzerFactory)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
