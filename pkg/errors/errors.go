package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")
	ErrInvalidRate      = errors.New("interest rate must not be negative")
	ErrInvalidTenure    = errors.New("tenure must be greater than zero")
	ErrInvalidPayment   = errors.New("monthly payment must be greater than zero")
	ErrInvalidStartDate = errors.New("start month must be in YYYY-MM format")
	ErrLimitExceeded    = errors.New("input exceeds configured limit")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeLimitExceeded = "LIMIT_EXCEEDED"
	ErrCodeCacheError    = "CACHE_ERROR"
	ErrCodeAdvisorError  = "ADVISOR_ERROR"
)

// Wrap common errors with business context

func WrapInvalidInput(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidInput,
		"loan terms are invalid",
		err,
	)
}

func WrapLimitExceeded(field string, limit float64) *BusinessError {
	return NewBusinessError(
		ErrCodeLimitExceeded,
		fmt.Sprintf("%s exceeds the maximum allowed value of %.2f", field, limit),
		ErrLimitExceeded,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}

func WrapAdvisorError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeAdvisorError,
		"advisory service failed",
		err,
	)
}
