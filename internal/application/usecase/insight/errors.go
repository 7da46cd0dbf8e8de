// Package insight contains the AI insight use cases.
package insight

import (
	"context"
	"errors"
	"strings"
	"time"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// Error code constants for insight generation failures.
const (
	ErrCodeAIServiceUnavailable = "AI_SERVICE_UNAVAILABLE"
	ErrCodeAIRateLimited        = "AI_RATE_LIMITED"
	ErrCodeAIAuthError          = "AI_AUTH_ERROR"
	ErrCodeAITimeout            = "AI_TIMEOUT"
	ErrCodeAIParseError         = "AI_PARSE_ERROR"
	ErrCodeAIUnknownError       = "AI_UNKNOWN_ERROR"
)

// errorMessages contains Portuguese error messages for each error code.
var errorMessages = map[string]string{
	ErrCodeAIServiceUnavailable: "O servico de inteligencia artificial esta temporariamente indisponivel. Tente novamente mais tarde.",
	ErrCodeAIRateLimited:        "Limite de requisicoes atingido. Aguarde alguns minutos e tente novamente.",
	ErrCodeAIAuthError:          "Erro de configuracao do servico de IA. Por favor, contate o suporte.",
	ErrCodeAITimeout:            "A geracao dos insights demorou mais do que o esperado. Tente novamente.",
	ErrCodeAIParseError:         "A resposta da IA veio em um formato inesperado. Tente novamente.",
	ErrCodeAIUnknownError:       "Ocorreu um erro inesperado ao gerar os insights. Tente novamente.",
}

// ProcessingError is a classified insight generation failure.
type ProcessingError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
	Err       error     `json:"-"`
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

// Unwrap returns the underlying error.
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// classificationRule maps error text fragments to a code.
type classificationRule struct {
	code      string
	retryable bool
	fragments []string
}

// Rules are checked in order; the first match wins.
var classificationRules = []classificationRule{
	{ErrCodeAIRateLimited, true, []string{"rate limit", "quota", "429", "resource exhausted"}},
	{ErrCodeAIAuthError, false, []string{"401", "403", "invalid api key", "unauthorized", "authentication"}},
	{ErrCodeAIServiceUnavailable, true, []string{"connection", "network", "dial", "timeout", "unavailable", "503"}},
	{ErrCodeAIParseError, true, []string{"parse", "json", "unmarshal", "decode"}},
}

// classifyError converts a generation error into a ProcessingError with a
// code, a Portuguese message and a retryable flag.
func classifyError(err error, now time.Time) *ProcessingError {
	newError := func(code string, retryable bool) *ProcessingError {
		return &ProcessingError{
			Code:      code,
			Message:   errorMessages[code],
			Retryable: retryable,
			Timestamp: now,
			Err:       err,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newError(ErrCodeAITimeout, true)
	}
	if errors.Is(err, domainerror.ErrMalformedInsight) {
		return newError(ErrCodeAIParseError, true)
	}

	errStr := strings.ToLower(err.Error())
	for _, rule := range classificationRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(errStr, fragment) {
				return newError(rule.code, rule.retryable)
			}
		}
	}

	return newError(ErrCodeAIUnknownError, true)
}
