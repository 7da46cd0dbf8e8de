// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// AIInsight is the structured text returned by the insight generator.
// Field names follow the generator's wire format.
type AIInsight struct {
	Dicas       []string  `json:"dicas"`
	Previsoes   []string  `json:"previsoes"`
	Resumo      string    `json:"resumo"`
	GeneratedAt time.Time `json:"generated_at"`
}
