// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiConfig configures the Gemini insight service.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// GeminiService implements the AIInsightService using Google Gemini.
type GeminiService struct {
	apiKey      string
	modelName   string
	temperature float32
	timeout     time.Duration
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(cfg GeminiConfig) *GeminiService {
	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:      cfg.APIKey,
		modelName:   modelName,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Generate sends the financial snapshot to Gemini and parses the tips,
// forecasts and summary it returns.
func (s *GeminiService) Generate(ctx context.Context, snapshot *adapter.InsightSnapshot) (*entity.AIInsight, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrInsightServiceUnavailable
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(s.temperature)
	model.ResponseMIMEType = "application/json"

	prompt, err := buildInsightPrompt(snapshot)
	if err != nil {
		return nil, err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return parseInsightResponse(resp)
}

// buildInsightPrompt creates the prompt for Gemini.
func buildInsightPrompt(snapshot *adapter.InsightSnapshot) (string, error) {
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`Voce e um planejador financeiro pessoal. Analise as transacoes, orcamentos e metas do usuario abaixo.

IMPORTANTE - IDIOMA:
- Todas as respostas devem ser em Portugues Brasileiro
- Valores monetarios em reais (R$)

Sua tarefa:
1. "dicas": de 3 a 5 dicas praticas e especificas para melhorar as financas do usuario
2. "previsoes": de 2 a 4 previsoes para os proximos meses com base nos padroes de gasto
3. "resumo": um paragrafo curto resumindo a situacao financeira atual

REGRAS:
- Cite categorias e valores reais dos dados quando possivel
- Valores negativos sao despesas, positivos sao receitas
- Considere orcamentos estourados e metas atrasadas como prioridade
- Nao invente transacoes que nao estao nos dados

DADOS:
`)
	sb.Write(payload)
	sb.WriteString(`

Responda APENAS com um objeto JSON no formato:
{"dicas": ["..."], "previsoes": ["..."], "resumo": "..."}`)

	return sb.String(), nil
}

// geminiInsight is the JSON shape the model is asked to return.
type geminiInsight struct {
	Dicas     []string `json:"dicas"`
	Previsoes []string `json:"previsoes"`
	Resumo    string   `json:"resumo"`
}

// parseInsightResponse extracts the insight from Gemini's response.
func parseInsightResponse(resp *genai.GenerateContentResponse) (*entity.AIInsight, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: no response from gemini", domainerror.ErrMalformedInsight)
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	return parseInsightText(textContent)
}

// parseInsightText decodes the model's text reply, tolerating markdown fences.
func parseInsightText(textContent string) (*entity.AIInsight, error) {
	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return nil, fmt.Errorf("%w: no text content in response", domainerror.ErrMalformedInsight)
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var parsed geminiInsight
	if err := json.Unmarshal([]byte(textContent), &parsed); err != nil {
		return nil, errors.Join(domainerror.ErrMalformedInsight, fmt.Errorf("failed to parse JSON response: %w", err))
	}

	return &entity.AIInsight{
		Dicas:     compactLines(parsed.Dicas),
		Previsoes: compactLines(parsed.Previsoes),
		Resumo:    strings.TrimSpace(parsed.Resumo),
	}, nil
}

func compactLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
