package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

func TestRedisInsightCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewRedisInsightCache(client, time.Hour)
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		got, err := cache.Get(ctx, "insights:missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("hit until ttl expires", func(t *testing.T) {
		insight := &entity.AIInsight{
			Dicas:     []string{"Corte assinaturas"},
			Previsoes: []string{"Gastos estaveis"},
			Resumo:    "Tudo certo.",
		}
		require.NoError(t, cache.Set(ctx, "insights:a", insight))

		got, err := cache.Get(ctx, "insights:a")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, insight.Resumo, got.Resumo)

		server.FastForward(2 * time.Hour)
		got, err = cache.Get(ctx, "insights:a")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt entry is a miss", func(t *testing.T) {
		require.NoError(t, server.Set("insights:bad", "{not json"))
		got, err := cache.Get(ctx, "insights:bad")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestParseInsightText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantDicas int
	}{
		{
			name:      "plain json",
			input:     `{"dicas":["a","b"],"previsoes":["c"],"resumo":"r"}`,
			wantDicas: 2,
		},
		{
			name:      "fenced json with blank tips",
			input:     "```json\n{\"dicas\":[\"a\",\" \"],\"previsoes\":[\"c\"],\"resumo\":\" r \"}\n```",
			wantDicas: 1,
		},
		{name: "empty", input: "  ", wantErr: true},
		{name: "not json", input: "Aqui estao suas dicas", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInsightText(tt.input)

			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrMalformedInsight) {
					t.Errorf("expected ErrMalformedInsight, got %v", err)
				}
				return
			}
			require.NoError(t, err)
			assert.Len(t, got.Dicas, tt.wantDicas)
			assert.Equal(t, "r", got.Resumo)
		})
	}
}

func TestBuildInsightPrompt(t *testing.T) {
	prompt, err := buildInsightPrompt(&adapter.InsightSnapshot{
		Transactions: []adapter.InsightTransaction{{Date: "2024-03-01", Description: "Mercado", Amount: "-80.00", Category: "mercado"}},
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, `"amount": "-80.00"`)
	assert.Contains(t, prompt, `"dicas"`)
}

func TestGeminiService_Unconfigured(t *testing.T) {
	svc := NewGeminiService(GeminiConfig{})

	assert.False(t, svc.IsAvailable())
	_, err := svc.Generate(context.Background(), &adapter.InsightSnapshot{})
	assert.ErrorIs(t, err, domainerror.ErrInsightServiceUnavailable)
}

func TestTokenService(t *testing.T) {
	svc := NewTokenService("secret")
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.IssueAccessToken(userID, "ana@example.com", time.Minute)
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "ana@example.com", claims.Email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenService("other").IssueAccessToken(userID, "", time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(context.Background(), token)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := svc.IssueAccessToken(userID, "", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(context.Background(), token)
		assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
		assert.NotErrorIs(t, err, domainerror.ErrInvalidToken)
	})
}
