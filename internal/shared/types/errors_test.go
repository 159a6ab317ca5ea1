package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomyWrapping(t *testing.T) {
	cause := errors.New("throttled")

	var err error = &BillingQueryError{Profile: "prod", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "prod")

	err = &ConfigurationError{Field: "api_key", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "api_key")

	err = &GenerationError{Model: "gpt-4.1-mini", Err: ErrNoCostRecords}
	assert.ErrorIs(t, err, ErrNoCostRecords)
	assert.Contains(t, err.Error(), "gpt-4.1-mini")
}
