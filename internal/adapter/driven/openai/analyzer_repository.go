package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/diillson/aws-cost-insight-go/internal/domain/repository"
	"github.com/diillson/aws-cost-insight-go/internal/shared/types"
)

const (
	DefaultModel     = "gpt-4.1-mini"
	DefaultMaxTokens = 800
)

// AnalyzerConfig carrega a configuração do cliente validada uma única vez
// na inicialização. A credencial nunca é lida do ambiente dentro do caminho
// de chamada; quem monta a aplicação injeta o valor aqui.
type AnalyzerConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}

// AnalyzerRepositoryImpl implementa o AnalyzerRepository sobre a API de
// chat completion da OpenAI.
type AnalyzerRepositoryImpl struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewAnalyzerRepository valida a configuração e cria o cliente.
// Credencial ausente é um ConfigurationError, antes de qualquer rede.
func NewAnalyzerRepository(cfg AnalyzerConfig) (repository.AnalyzerRepository, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &types.ConfigurationError{
			Field: "api_key",
			Err:   errors.New("OPENAI_API_KEY environment variable is not set"),
		}
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &AnalyzerRepositoryImpl{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Model retorna o identificador do modelo configurado.
func (r *AnalyzerRepositoryImpl) Model() string {
	return r.model
}

// Analyze faz uma única chamada de chat completion com o prompt fornecido.
// Falha de chamada ou resposta vazia viram GenerationError; sem retry.
func (r *AnalyzerRepositoryImpl) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     r.model,
		MaxTokens: r.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", &types.GenerationError{Model: r.model, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &types.GenerationError{
			Model: r.model,
			Err:   errors.New("completion response contains no choices"),
		}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", &types.GenerationError{
			Model: r.model,
			Err:   fmt.Errorf("completion response is empty"),
		}
	}

	return text, nil
}
