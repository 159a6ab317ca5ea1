package repository

import "context"

// AnalyzerRepository defines the interface for the language model that
// turns a formatted prompt into a narrative cost report.
type AnalyzerRepository interface {
	// Analyze envia o prompt ao modelo e retorna o texto gerado.
	// Uma única chamada síncrona, sem retry e sem streaming.
	Analyze(ctx context.Context, prompt string) (string, error)

	// Model retorna o identificador do modelo configurado.
	Model() string
}
