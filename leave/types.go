/*
Package leave implements the leave accounting core.

PURPOSE:
  Domain types and the accounting engine for employee leave: a static
  employee directory, a per-employee remaining-balance ledger, and an
  append-only history of approved requests.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: directory entry (id + display name), immutable after startup
  - Date: calendar day with no time component (ledger granularity)
  - Request: immutable record of one approved leave request

DESIGN PRINCIPLES:
  1. Immutability: history records are appended, never edited or deleted
  2. Precision: balances use decimal.Decimal, spans are whole days
  3. Type Safety: EmployeeID is a distinct type, not a bare string

SEE ALSO:
  - engine.go: validation and atomic balance adjustment
  - store.go: persistence boundary for balances and history
*/
package leave

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string

// Employee is a directory entry. Created once at startup, never mutated.
type Employee struct {
	ID   EmployeeID
	Name string
}

// =============================================================================
// DATE - Calendar day, no time component
// =============================================================================

// DateLayout is the wire format for all calendar dates in the system.
const DateLayout = "2006-01-02"

// Date is a calendar day. The zero value is the zero time.
type Date struct {
	Time time.Time
}

// ParseDate parses a year-month-day string. Anything that does not parse
// as DateLayout is a malformed date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return Date{Time: t}, nil
}

// NewDate builds a Date from components, normalized to UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(other Date) bool { return d.normalize().Before(other.normalize()) }
func (d Date) Equal(other Date) bool  { return d.normalize().Equal(other.normalize()) }
func (d Date) After(other Date) bool  { return d.normalize().After(other.normalize()) }
func (d Date) OnOrAfter(other Date) bool {
	return d.After(other) || d.Equal(other)
}
func (d Date) IsZero() bool { return d.Time.IsZero() }

func (d Date) String() string { return d.normalize().Format(DateLayout) }

// SpanDays returns the inclusive number of calendar days between start and
// end. Equal dates span exactly one day. A negative or zero result means
// end is before start and the span is invalid.
func SpanDays(start, end Date) int {
	return int(end.normalize().Sub(start.normalize()).Hours()/24) + 1
}

// =============================================================================
// REQUEST - Immutable history record
// =============================================================================

// Request is one approved leave request. The employee name is denormalized
// at creation time so history survives directory changes across releases.
type Request struct {
	ID         string
	EmployeeID EmployeeID
	Name       string
	Start      Date
	End        Date
	Reason     string
	CreatedAt  time.Time
}

// Summary renders the one-line history form shown to callers.
func (r Request) Summary() string {
	return fmt.Sprintf("%s to %s - %s", r.Start, r.End, r.Reason)
}

// =============================================================================
// APPROVAL - Successful apply_leave outcome
// =============================================================================

// Approval is returned by the engine when a request is accepted.
type Approval struct {
	Request    Request
	Span       int
	NewBalance decimal.Decimal
}

// Confirmation renders the caller-facing approval message.
func (a Approval) Confirmation() string {
	return fmt.Sprintf("Leave approved for %s from %s to %s.", a.Request.Name, a.Request.Start, a.Request.End)
}
