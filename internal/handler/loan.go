package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/finwise/emi-engine/internal/domain"
	"github.com/finwise/emi-engine/internal/service"
	customError "github.com/finwise/emi-engine/pkg/errors"
	"github.com/finwise/emi-engine/pkg/money"
	"github.com/finwise/emi-engine/pkg/response"
)

type LoanHandler struct {
	service   *service.LoanService
	validator *validator.Validate
	logger    *zap.Logger
}

func NewLoanHandler(service *service.LoanService, logger *zap.Logger) *LoanHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LoanHandler{
		service:   service,
		validator: validator.New(),
		logger:    logger,
	}
}

// CalculateLoan handles POST /api/v1/loans/calculate
func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	terms, ok := h.decodeTerms(w, r)
	if !ok {
		return
	}

	summary, schedule, err := h.service.Calculate(r.Context(), terms)
	if err != nil {
		h.writeError(w, err)
		return
	}

	rounded := roundEntries(schedule)

	response.Success(w, domain.CalculateLoanResponse{
		CalculationID:     uuid.New(),
		Summary:           roundSummary(*summary),
		Schedule:          rounded,
		YearlyCheckpoints: domain.YearlyCheckpoints(rounded),
	})
}

// AdviseLoan handles POST /api/v1/loans/advice
func (h *LoanHandler) AdviseLoan(w http.ResponseWriter, r *http.Request) {
	terms, ok := h.decodeTerms(w, r)
	if !ok {
		return
	}

	summary, commentary, err := h.service.Advise(r.Context(), terms)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, domain.AdviceResponse{
		Summary:    roundSummary(*summary),
		Commentary: commentary,
	})
}

func (h *LoanHandler) decodeTerms(w http.ResponseWriter, r *http.Request) (domain.LoanTerms, bool) {
	var terms domain.LoanTerms
	if err := json.NewDecoder(r.Body).Decode(&terms); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return terms, false
	}

	if err := h.validator.Struct(terms); err != nil {
		response.BadRequest(w, "invalid loan terms", err)
		return terms, false
	}

	return terms, true
}

func (h *LoanHandler) writeError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if errors.As(err, &businessErr) {
		switch businessErr.Code {
		case customError.ErrCodeInvalidInput, customError.ErrCodeLimitExceeded:
			response.BadRequest(w, businessErr.Message, businessErr.Err)
			return
		}
	}

	h.logger.Error("loan calculation failed", zap.Error(err))
	response.InternalServerError(w, "calculation failed", err)
}

// Money fields are rounded for display only; the engine's full-precision
// values stay internal.

func roundSummary(summary domain.LoanSummary) domain.LoanSummary {
	summary.MonthlyPayment = money.Round2(summary.MonthlyPayment)
	summary.TotalInterest = money.Round2(summary.TotalInterest)
	summary.TotalPayable = money.Round2(summary.TotalPayable)
	summary.Principal = money.Round2(summary.Principal)
	return summary
}

func roundEntries(schedule []domain.ScheduleEntry) []domain.ScheduleEntry {
	rounded := make([]domain.ScheduleEntry, len(schedule))
	for i, entry := range schedule {
		entry.Payment = money.Round2(entry.Payment)
		entry.PrincipalPortion = money.Round2(entry.PrincipalPortion)
		entry.InterestPortion = money.Round2(entry.InterestPortion)
		entry.OutstandingBalance = money.Round2(entry.OutstandingBalance)
		rounded[i] = entry
	}
	return rounded
}
