// Package advisor produces free-text commentary on a computed loan. It is a
// best-effort collaborator: the numeric engine never depends on it, and any
// failure here degrades to deterministic fallback text.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/finwise/emi-engine/internal/domain"
)

// Advisor turns a computed summary into commentary for the borrower.
type Advisor interface {
	Explain(ctx context.Context, terms domain.LoanTerms, summary domain.LoanSummary) string
}

type OpenAIAdvisor struct {
	apiKey     string
	apiURL     string
	model      string
	maxTokens  int
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewOpenAIAdvisor(apiURL, apiKey, model string, maxTokens int, timeout time.Duration, logger *zap.Logger) *OpenAIAdvisor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OpenAIAdvisor{
		apiKey:    apiKey,
		apiURL:    apiURL,
		model:     model,
		maxTokens: maxTokens,
		enabled:   apiKey != "",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Explain returns commentary on the loan. When the upstream service is
// disabled or fails, it falls back to a locally generated explanation so the
// caller always gets usable text.
func (a *OpenAIAdvisor) Explain(ctx context.Context, terms domain.LoanTerms, summary domain.LoanSummary) string {
	if !a.enabled {
		return fallbackCommentary(terms, summary)
	}

	prompt := fmt.Sprintf(`Analyze this loan and give the borrower a clear, practical explanation.

LOAN DETAILS:
- Principal: %.2f
- Annual interest rate: %.2f%%
- Tenure: %d years (%d monthly payments)
- Fixed monthly payment: %.2f
- Total interest over the life of the loan: %.2f
- Total amount payable: %.2f

INSTRUCTIONS:
1. Explain what the fixed monthly payment means for the borrower's budget.
2. Put the total interest in perspective relative to the principal.
3. Mention how early payments are mostly interest and later ones mostly principal.

Write 3-4 plain sentences that anyone can understand.`,
		terms.Principal, terms.AnnualRatePercent, terms.TenureYears, summary.PeriodCount,
		summary.MonthlyPayment, summary.TotalInterest, summary.TotalPayable)

	commentary, err := a.callChat(ctx, prompt)
	if err != nil {
		a.logger.Warn("advisory call failed, using fallback commentary", zap.Error(err))
		return fallbackCommentary(terms, summary)
	}

	return commentary
}

func (a *OpenAIAdvisor) callChat(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a financial advisor who explains fixed-rate amortizing loans in plain language. Be precise with the numbers you are given, never invent figures, and keep explanations short and practical.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: a.maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", a.apiKey))

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("advisory API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from advisory API")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func fallbackCommentary(terms domain.LoanTerms, summary domain.LoanSummary) string {
	interestShare := summary.TotalInterest / terms.Principal * 100

	return fmt.Sprintf(
		"Borrowing %.2f at %.2f%% over %d years means a fixed payment of %.2f every month for %d months. "+
			"Over the life of the loan you will pay %.2f in interest, about %.1f%% of the amount borrowed, "+
			"for a total outlay of %.2f. Early installments go mostly toward interest; the principal share "+
			"grows with every payment until the balance reaches zero.",
		terms.Principal, terms.AnnualRatePercent, terms.TenureYears,
		summary.MonthlyPayment, summary.PeriodCount,
		summary.TotalInterest, interestShare, summary.TotalPayable)
}
