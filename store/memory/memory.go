// Package memory provides the in-process Store implementation. This is
// the default store: all state is process-lifetime only.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/joyamit/leave-manager/leave"
)

// =============================================================================
// MEMORY STORE - Maps guarded by a RWMutex
// =============================================================================

type Store struct {
	mu       sync.RWMutex
	balances map[leave.EmployeeID]decimal.Decimal
	history  []leave.Request
}

func New() *Store {
	return &Store{
		balances: make(map[leave.EmployeeID]decimal.Decimal),
	}
}

// Balance returns the remaining balance. Missing entries read as zero
// with ok=false.
func (s *Store) Balance(_ context.Context, id leave.EmployeeID) (decimal.Decimal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.balances[id]
	if !ok {
		return decimal.Zero, false, nil
	}
	return b, true, nil
}

// Grant sets the starting balance for an employee.
func (s *Store) Grant(_ context.Context, id leave.EmployeeID, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[id] = amount
	return nil
}

// Approve writes the new balance and appends the history record under one
// lock acquisition, so readers never observe one without the other.
func (s *Store) Approve(_ context.Context, req leave.Request, newBalance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[req.EmployeeID] = newBalance
	s.history = append(s.history, req)
	return nil
}

// History returns the employee's requests in insertion order.
func (s *Store) History(_ context.Context, id leave.EmployeeID) ([]leave.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []leave.Request
	for _, r := range s.history {
		if r.EmployeeID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) Close() error { return nil }

var _ leave.Store = (*Store)(nil)
