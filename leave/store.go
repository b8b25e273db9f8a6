package leave

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// STORE - Persistence boundary for balances and history
// =============================================================================

// Store persists the balance ledger and the request history.
//
// INVARIANTS:
//   - History is append-only: no update, no delete.
//   - Approve is atomic: the balance write and the history append are
//     observed together or not at all.
//
// The engine serializes check-then-act above this interface; Store
// implementations only need the write path itself to be atomic.
type Store interface {
	// Balance returns the remaining balance for an employee. The bool is
	// false when the employee has no ledger entry; callers treat that as
	// a zero balance, not an error.
	Balance(ctx context.Context, id EmployeeID) (decimal.Decimal, bool, error)

	// Grant sets the starting balance for an employee. Used only at seed
	// time, before the engine starts serving requests.
	Grant(ctx context.Context, id EmployeeID, amount decimal.Decimal) error

	// Approve records an approved request: writes the new balance and
	// appends the history record in one atomic step.
	Approve(ctx context.Context, req Request, newBalance decimal.Decimal) error

	// History returns the employee's requests in insertion order.
	History(ctx context.Context, id EmployeeID) ([]Request, error)

	// Close releases store resources.
	Close() error
}
