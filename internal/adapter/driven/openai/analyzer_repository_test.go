package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-cost-insight-go/internal/shared/types"
)

// fakeCompletionServer simula o endpoint de chat completion.
func fakeCompletionServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "upstream failure", status)
			return
		}
		resp := map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  DefaultModel,
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]string{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestNewAnalyzerRepositoryRequiresAPIKey(t *testing.T) {
	_, err := NewAnalyzerRepository(AnalyzerConfig{})

	var cfgErr *types.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "api_key", cfgErr.Field)

	_, err = NewAnalyzerRepository(AnalyzerConfig{APIKey: "   "})
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewAnalyzerRepositoryDefaults(t *testing.T) {
	repo, err := NewAnalyzerRepository(AnalyzerConfig{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, repo.Model())
}

func TestAnalyzeReturnsModelResponse(t *testing.T) {
	server := fakeCompletionServer(t, "EC2 spend on 2024-01-02 ($340.00) is an anomaly versus the $12.50 baseline.", http.StatusOK)
	defer server.Close()

	repo, err := NewAnalyzerRepository(AnalyzerConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)

	text, err := repo.Analyze(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Contains(t, text, "340.00")
	assert.Contains(t, text, "anomaly")
}

func TestAnalyzeEmptyResponseIsGenerationError(t *testing.T) {
	server := fakeCompletionServer(t, "   \n ", http.StatusOK)
	defer server.Close()

	repo, err := NewAnalyzerRepository(AnalyzerConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)

	_, err = repo.Analyze(context.Background(), "analyze this")

	var genErr *types.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, DefaultModel, genErr.Model)
}

func TestAnalyzeUpstreamFailureIsGenerationError(t *testing.T) {
	server := fakeCompletionServer(t, "", http.StatusInternalServerError)
	defer server.Close()

	repo, err := NewAnalyzerRepository(AnalyzerConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)

	_, err = repo.Analyze(context.Background(), "analyze this")

	var genErr *types.GenerationError
	require.ErrorAs(t, err, &genErr)
}
