package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/finwise/emi-engine/internal/advisor"
	"github.com/finwise/emi-engine/internal/config"
	"github.com/finwise/emi-engine/internal/domain"
	"github.com/finwise/emi-engine/internal/engine"
	"github.com/finwise/emi-engine/internal/repository"
	"github.com/finwise/emi-engine/pkg/dates"
	customError "github.com/finwise/emi-engine/pkg/errors"
)

// CacheKeyPrefix namespaces memoized summaries in the cache; the flush job
// matches on it.
const CacheKeyPrefix = "emi:"

type LoanService struct {
	cache   repository.SummaryCache
	advisor advisor.Advisor
	config  *config.Config
	logger  *zap.Logger
}

func NewLoanService(
	cache repository.SummaryCache,
	advisor advisor.Advisor,
	config *config.Config,
	logger *zap.Logger,
) *LoanService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LoanService{
		cache:   cache,
		advisor: advisor,
		config:  config,
		logger:  logger,
	}
}

// Calculate derives the loan summary and full amortization schedule for the
// given terms. The summary is memoized by input tuple; the engine is pure,
// so cache failures are logged and ignored rather than surfaced.
func (s *LoanService) Calculate(ctx context.Context, terms domain.LoanTerms) (*domain.LoanSummary, []domain.ScheduleEntry, error) {
	if err := s.checkLimits(terms); err != nil {
		return nil, nil, err
	}

	start, err := s.resolveStart(terms.StartMonth)
	if err != nil {
		return nil, nil, customError.WrapInvalidInput(err)
	}

	summary, err := s.summarize(ctx, terms)
	if err != nil {
		return nil, nil, err
	}

	schedule, err := engine.ComputeSchedule(
		terms.Principal, terms.AnnualRatePercent, terms.TenureYears,
		summary.MonthlyPayment, start,
	)
	if err != nil {
		return nil, nil, customError.WrapInvalidInput(err)
	}

	return summary, schedule, nil
}

// Advise computes the summary for the terms and asks the advisor for
// commentary. The advisor is best effort and never affects the numbers.
func (s *LoanService) Advise(ctx context.Context, terms domain.LoanTerms) (*domain.LoanSummary, string, error) {
	if err := s.checkLimits(terms); err != nil {
		return nil, "", err
	}

	summary, err := s.summarize(ctx, terms)
	if err != nil {
		return nil, "", err
	}

	commentary := s.advisor.Explain(ctx, terms, *summary)

	return summary, commentary, nil
}

func (s *LoanService) summarize(ctx context.Context, terms domain.LoanTerms) (*domain.LoanSummary, error) {
	key := cacheKey(terms)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var summary domain.LoanSummary
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
		s.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
	}

	summary, err := engine.ComputeSummary(terms.Principal, terms.AnnualRatePercent, terms.TenureYears)
	if err != nil {
		// The engine only fails on invalid terms; label it here so other
		// error classes out of this method can never map to a 400.
		return nil, customError.WrapInvalidInput(err)
	}

	if encoded, err := json.Marshal(summary); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			s.logger.Warn("failed to cache loan summary", zap.String("key", key), zap.Error(err))
		}
	}

	return &summary, nil
}

func (s *LoanService) checkLimits(terms domain.LoanTerms) error {
	limits := s.config.Business

	if terms.Principal > limits.MaxPrincipal {
		return customError.WrapLimitExceeded("principal", limits.MaxPrincipal)
	}
	if terms.AnnualRatePercent > limits.MaxRatePercent {
		return customError.WrapLimitExceeded("annual rate", limits.MaxRatePercent)
	}
	if terms.TenureYears > limits.MaxTenureYears {
		return customError.WrapLimitExceeded("tenure", float64(limits.MaxTenureYears))
	}

	return nil
}

func (s *LoanService) resolveStart(startMonth string) (time.Time, error) {
	if startMonth == "" {
		return time.Now(), nil
	}

	start, err := dates.ParseMonth(startMonth)
	if err != nil {
		return time.Time{}, customError.ErrInvalidStartDate
	}

	return start, nil
}

// cacheKey encodes the exact input tuple. Floats use the shortest
// round-tripping representation so distinct terms can never share a key.
func cacheKey(terms domain.LoanTerms) string {
	return fmt.Sprintf("%s%s:%s:%d",
		CacheKeyPrefix,
		strconv.FormatFloat(terms.Principal, 'g', -1, 64),
		strconv.FormatFloat(terms.AnnualRatePercent, 'g', -1, 64),
		terms.TenureYears)
}
