package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise/emi-engine/internal/domain"
)

var (
	testTerms = domain.LoanTerms{
		Principal:         50000,
		AnnualRatePercent: 7.5,
		TenureYears:       5,
	}
	testSummary = domain.LoanSummary{
		MonthlyPayment: 1001.90,
		TotalInterest:  10113.85,
		TotalPayable:   60113.85,
		Principal:      50000,
		PeriodCount:    60,
	}
)

func TestExplain_UpstreamResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "1001.90")

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "Your payment is steady at 1001.90 a month."}},
			},
		})
	}))
	defer server.Close()

	a := NewOpenAIAdvisor(server.URL, "test-key", "gpt-4o-mini", 300, 5*time.Second, nil)

	commentary := a.Explain(context.Background(), testTerms, testSummary)
	assert.Equal(t, "Your payment is steady at 1001.90 a month.", commentary)
}

func TestExplain_FallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	a := NewOpenAIAdvisor(server.URL, "test-key", "gpt-4o-mini", 300, 5*time.Second, nil)

	commentary := a.Explain(context.Background(), testTerms, testSummary)
	assert.Contains(t, commentary, "fixed payment of 1001.90")
}

func TestExplain_DisabledWithoutAPIKey(t *testing.T) {
	a := NewOpenAIAdvisor("https://api.openai.com/v1/chat/completions", "", "gpt-4o-mini", 300, 5*time.Second, nil)

	commentary := a.Explain(context.Background(), testTerms, testSummary)
	assert.NotEmpty(t, commentary)
	assert.Contains(t, commentary, "60 months")
}
