/*
engine.go - Leave accounting engine

PURPOSE:
  The engine is the sole mutator of the balance ledger and the request
  history. It validates an apply_leave call, computes the day span,
  checks the balance, and commits the decrement plus the history append
  as one atomic unit.

CRITICAL INVARIANTS:
  1. Balance never goes negative: span > balance is rejected before any write
  2. No partial mutation: every failure path leaves ledger and history untouched
  3. Check-then-act is serialized: concurrent callers cannot both pass the
     balance check against a stale value and overdraw

VALIDATION ORDER (first failing check wins):
  1. employee exists in the directory   -> UnknownEmployeeError
  2. both dates parse                   -> ErrMalformedDate
  3. span (end - start + 1) >= 1        -> ErrInvalidRange
  4. span <= remaining balance          -> InsufficientBalanceError

LOCKING:
  A single mutex serializes Apply across all employees. Throughput is a
  handful of calls per second at most; a per-employee lock is not worth
  the bookkeeping.
*/
package leave

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NoHistorySentinel is the single line returned when an employee has no
// recorded requests. Callers always receive at least one line.
const NoHistorySentinel = "No leave history found."

// Engine orchestrates validation, balance adjustment, and history append.
type Engine struct {
	mu    sync.Mutex // serializes Apply's check-then-act
	dir   *Directory
	store Store
	now   func() time.Time
}

// NewEngine creates an engine over the given directory and store.
func NewEngine(dir *Directory, store Store) *Engine {
	return &Engine{dir: dir, store: store, now: time.Now}
}

// SetClock overrides the engine clock. Tests only.
func (e *Engine) SetClock(now func() time.Time) { e.now = now }

// =============================================================================
// APPLY - Validate and atomically approve a leave request
// =============================================================================

// Apply validates a leave request and, on success, decrements the
// employee's balance by the inclusive day span and appends exactly one
// history record. On any failure nothing is mutated.
func (e *Engine) Apply(ctx context.Context, id EmployeeID, startDate, endDate, reason string) (*Approval, error) {
	emp, ok := e.dir.Lookup(id)
	if !ok {
		return nil, &UnknownEmployeeError{EmployeeID: id}
	}

	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}

	span := SpanDays(start, end)
	if span < 1 {
		return nil, fmt.Errorf("%w (%s to %s)", ErrInvalidRange, start, end)
	}
	requested := decimal.NewFromInt(int64(span))

	e.mu.Lock()
	defer e.mu.Unlock()

	balance, _, err := e.store.Balance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading balance for %s: %w", id, err)
	}
	if requested.GreaterThan(balance) {
		return nil, &InsufficientBalanceError{
			EmployeeID: id,
			Available:  balance,
			Requested:  requested,
		}
	}

	req := Request{
		ID:         uuid.NewString(),
		EmployeeID: id,
		Name:       emp.Name,
		Start:      start,
		End:        end,
		Reason:     reason,
		CreatedAt:  e.now(),
	}
	newBalance := balance.Sub(requested)
	if err := e.store.Approve(ctx, req, newBalance); err != nil {
		return nil, fmt.Errorf("recording approval for %s: %w", id, err)
	}

	return &Approval{Request: req, Span: span, NewBalance: newBalance}, nil
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// BalanceStatement is the check_balance outcome.
type BalanceStatement struct {
	Employee Employee
	Balance  decimal.Decimal
}

// Statement renders the caller-facing balance line.
func (b BalanceStatement) Statement() string {
	return fmt.Sprintf("%s has %s days of leave remaining.", b.Employee.Name, b.Balance)
}

// Balance returns the current remaining balance for an employee.
// Read-only; a missing ledger entry reads as zero.
func (e *Engine) Balance(ctx context.Context, id EmployeeID) (*BalanceStatement, error) {
	emp, ok := e.dir.Lookup(id)
	if !ok {
		return nil, &UnknownEmployeeError{EmployeeID: id}
	}
	balance, _, err := e.store.Balance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading balance for %s: %w", id, err)
	}
	return &BalanceStatement{Employee: emp, Balance: balance}, nil
}

// History returns the employee's request summaries in insertion order as
// a restartable sequence. An employee with no history yields the single
// sentinel line rather than an empty sequence.
func (e *Engine) History(ctx context.Context, id EmployeeID) (iter.Seq[string], error) {
	if _, ok := e.dir.Lookup(id); !ok {
		return nil, &UnknownEmployeeError{EmployeeID: id}
	}
	reqs, err := e.store.History(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading history for %s: %w", id, err)
	}
	return func(yield func(string) bool) {
		if len(reqs) == 0 {
			yield(NoHistorySentinel)
			return
		}
		for _, r := range reqs {
			if !yield(r.Summary()) {
				return
			}
		}
	}, nil
}
