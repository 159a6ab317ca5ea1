package types

import (
	"errors"
	"fmt"
)

var (
	ErrNoProfilesFound = errors.New("no AWS profiles found. Please configure AWS CLI first")
	ErrNoCostRecords   = errors.New("no cost records returned for the requested period")
)

// BillingQueryError indica falha ao consultar a API de billing da AWS
// (intervalo inválido, falha de autenticação, throttling).
type BillingQueryError struct {
	Profile string
	Err     error
}

func (e *BillingQueryError) Error() string {
	if e.Profile != "" {
		return fmt.Sprintf("billing query failed for profile %s: %s", e.Profile, e.Err)
	}
	return fmt.Sprintf("billing query failed: %s", e.Err)
}

func (e *BillingQueryError) Unwrap() error { return e.Err }

// ConfigurationError indica configuração ausente ou inválida detectada
// na inicialização, antes de qualquer chamada de rede.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration (%s): %s", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// GenerationError indica falha na chamada ao modelo de linguagem ou
// uma resposta vazia/inválida retornada por ele.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("report generation failed (model %s): %s", e.Model, e.Err)
	}
	return fmt.Sprintf("report generation failed: %s", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
