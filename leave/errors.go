/*
errors.go - Centralized error types for the leave core

PURPOSE:
  All failure kinds in one place. Every core operation returns one of
  these as an explicit value; nothing is thrown across the transport
  boundary. The boundary layer decides how to render them.

ERROR CATEGORIES:
  1. Validation errors - unknown employee, malformed date, invalid range
  2. Balance errors    - insufficient remaining balance (carries context)

USAGE:
  if errors.Is(err, leave.ErrInsufficientBalance) {
      var ib *leave.InsufficientBalanceError
      errors.As(err, &ib) // ib.Available is the caller's remaining balance
  }
*/
package leave

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownEmployee is returned when an employee id is not in the directory.
	ErrUnknownEmployee = errors.New("unknown employee")

	// ErrMalformedDate is returned when a date string does not parse as
	// a calendar date (year-month-day).
	ErrMalformedDate = errors.New("malformed date")

	// ErrInvalidRange is returned when the requested span is not positive
	// (end date before start date).
	ErrInvalidRange = errors.New("invalid date range: end before start")

	// ErrInsufficientBalance is returned when the requested span exceeds
	// the remaining balance. The structured form carries the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnknownEmployeeError reports which id failed the directory lookup.
type UnknownEmployeeError struct {
	EmployeeID EmployeeID
}

func (e *UnknownEmployeeError) Error() string {
	return fmt.Sprintf("unknown employee: %s", e.EmployeeID)
}

func (e *UnknownEmployeeError) Unwrap() error { return ErrUnknownEmployee }

// InsufficientBalanceError provides details about a balance shortage.
// Available is the caller's current remaining balance, reported back so
// the denial message can include it.
type InsufficientBalanceError struct {
	EmployeeID EmployeeID
	Available  decimal.Decimal
	Requested  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: requested %s days, %s remaining",
		e.Requested, e.Available)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownEmployee) ||
		errors.Is(err, ErrMalformedDate) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInsufficientBalance)
}
