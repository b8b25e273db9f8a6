package leave_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joyamit/leave-manager/leave"
	"github.com/joyamit/leave-manager/store/memory"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestEngine(t *testing.T) (*leave.Engine, *memory.Store) {
	t.Helper()

	dir := leave.NewDirectory([]leave.Employee{
		{ID: "E001", Name: "Amit"},
		{ID: "E002", Name: "Sneha"},
		{ID: "E003", Name: "Rahul"},
	})
	st := memory.New()
	ctx := context.Background()
	require.NoError(t, st.Grant(ctx, "E001", decimal.NewFromInt(12)))
	require.NoError(t, st.Grant(ctx, "E002", decimal.NewFromInt(8)))
	require.NoError(t, st.Grant(ctx, "E003", decimal.NewFromInt(15)))

	return leave.NewEngine(dir, st), st
}

func balanceOf(t *testing.T, st *memory.Store, id leave.EmployeeID) int64 {
	t.Helper()
	b, _, err := st.Balance(context.Background(), id)
	require.NoError(t, err)
	return b.IntPart()
}

func collect(seq func(func(string) bool)) []string {
	var out []string
	for s := range seq {
		out = append(out, s)
	}
	return out
}

// =============================================================================
// APPLY - SUCCESS PATH
// =============================================================================

func TestEngine_Apply_DecrementsBalanceBySpan(t *testing.T) {
	// GIVEN: E001 has 12 days
	// WHEN: applying for 2025-01-01..2025-01-05 (5 days inclusive)
	// THEN: approved, balance becomes 7, exactly one history record

	engine, st := newTestEngine(t)
	ctx := context.Background()

	approval, err := engine.Apply(ctx, "E001", "2025-01-01", "2025-01-05", "vacation")
	require.NoError(t, err)

	assert.Equal(t, 5, approval.Span)
	assert.Equal(t, int64(7), approval.NewBalance.IntPart())
	assert.Contains(t, approval.Confirmation(), "Amit")
	assert.Equal(t, int64(7), balanceOf(t, st, "E001"))

	history, err := st.History(ctx, "E001")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "vacation", history[0].Reason)
	assert.NotEmpty(t, history[0].ID)
}

func TestEngine_Apply_SameDayIsOneDay(t *testing.T) {
	// Equal start and end dates span exactly one day and are valid.

	engine, st := newTestEngine(t)

	approval, err := engine.Apply(context.Background(), "E002", "2025-03-10", "2025-03-10", "appointment")
	require.NoError(t, err)

	assert.Equal(t, 1, approval.Span)
	assert.Equal(t, int64(7), balanceOf(t, st, "E002"))
}

func TestEngine_Apply_ExactBalanceDrainsToZero(t *testing.T) {
	// Span equal to the remaining balance is allowed; zero is not negative.

	engine, st := newTestEngine(t)

	_, err := engine.Apply(context.Background(), "E002", "2025-06-01", "2025-06-08", "trip")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balanceOf(t, st, "E002"))
}

func TestEngine_Apply_RepeatedUntilDenied(t *testing.T) {
	// GIVEN: E001 with 12 days
	// WHEN: three identical 5-day requests
	// THEN: 12 -> 7 -> 2, then denial reporting balance 2, balance unchanged

	engine, st := newTestEngine(t)
	ctx := context.Background()

	a1, err := engine.Apply(ctx, "E001", "2025-01-01", "2025-01-05", "vacation")
	require.NoError(t, err)
	assert.Equal(t, int64(7), a1.NewBalance.IntPart())

	a2, err := engine.Apply(ctx, "E001", "2025-01-01", "2025-01-05", "again")
	require.NoError(t, err)
	assert.Equal(t, int64(2), a2.NewBalance.IntPart())

	_, err = engine.Apply(ctx, "E001", "2025-01-01", "2025-01-05", "once more")
	require.Error(t, err)

	var ib *leave.InsufficientBalanceError
	require.ErrorAs(t, err, &ib)
	assert.Equal(t, int64(2), ib.Available.IntPart())
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.Equal(t, int64(2), balanceOf(t, st, "E001"))
}

// =============================================================================
// APPLY - FAILURE PATHS (no state mutation on any of them)
// =============================================================================

func TestEngine_Apply_UnknownEmployee(t *testing.T) {
	engine, st := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Apply(ctx, "E999", "2025-01-01", "2025-01-05", "vacation")
	assert.ErrorIs(t, err, leave.ErrUnknownEmployee)

	// Unknown employee wins over malformed dates: validation is ordered.
	_, err = engine.Apply(ctx, "E999", "not-a-date", "also-not", "vacation")
	assert.ErrorIs(t, err, leave.ErrUnknownEmployee)

	history, err := st.History(ctx, "E999")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestEngine_Apply_MalformedDate(t *testing.T) {
	engine, st := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Apply(ctx, "E001", "01/05/2025", "2025-01-05", "vacation")
	assert.ErrorIs(t, err, leave.ErrMalformedDate)

	_, err = engine.Apply(ctx, "E001", "2025-01-01", "2025-13-40", "vacation")
	assert.ErrorIs(t, err, leave.ErrMalformedDate)

	assert.Equal(t, int64(12), balanceOf(t, st, "E001"))
}

func TestEngine_Apply_EndBeforeStart(t *testing.T) {
	// End before start yields a non-positive span and must be rejected,
	// never recorded as negative consumption.

	engine, st := newTestEngine(t)

	_, err := engine.Apply(context.Background(), "E001", "2025-01-05", "2025-01-01", "time travel")
	assert.ErrorIs(t, err, leave.ErrInvalidRange)
	assert.Equal(t, int64(12), balanceOf(t, st, "E001"))

	history, err := st.History(context.Background(), "E001")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestEngine_Apply_InsufficientBalance_NoPartialMutation(t *testing.T) {
	engine, st := newTestEngine(t)
	ctx := context.Background()

	// 10 days requested against 8 remaining.
	_, err := engine.Apply(ctx, "E002", "2025-07-01", "2025-07-10", "long trip")
	require.Error(t, err)

	var ib *leave.InsufficientBalanceError
	require.ErrorAs(t, err, &ib)
	assert.Equal(t, int64(8), ib.Available.IntPart())
	assert.Equal(t, int64(10), ib.Requested.IntPart())

	assert.Equal(t, int64(8), balanceOf(t, st, "E002"))
	history, err := st.History(ctx, "E002")
	require.NoError(t, err)
	assert.Empty(t, history)
}

// =============================================================================
// CONCURRENCY - check-then-act must be serialized
// =============================================================================

func TestEngine_Apply_ConcurrentCallersNeverOverdraw(t *testing.T) {
	// GIVEN: E003 has 15 days
	// WHEN: 10 goroutines each request 2 days concurrently
	// THEN: exactly 7 approvals succeed (14 days), balance ends at 1,
	//       and it is never negative

	engine, st := newTestEngine(t)
	ctx := context.Background()

	const callers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	approved := 0

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Apply(ctx, "E003", "2025-09-01", "2025-09-02", "sprint recovery")
			if err == nil {
				mu.Lock()
				approved++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 7, approved)
	assert.Equal(t, int64(1), balanceOf(t, st, "E003"))

	history, err := st.History(ctx, "E003")
	require.NoError(t, err)
	assert.Len(t, history, 7)
}

// =============================================================================
// BALANCE / HISTORY READS
// =============================================================================

func TestEngine_Balance(t *testing.T) {
	engine, _ := newTestEngine(t)

	stmt, err := engine.Balance(context.Background(), "E002")
	require.NoError(t, err)
	assert.Equal(t, "Sneha", stmt.Employee.Name)
	assert.Equal(t, "Sneha has 8 days of leave remaining.", stmt.Statement())

	_, err = engine.Balance(context.Background(), "E999")
	assert.ErrorIs(t, err, leave.ErrUnknownEmployee)
}

func TestEngine_History_SentinelWhenEmpty(t *testing.T) {
	// No matching records yields a single sentinel line, never an empty
	// sequence: callers always receive at least one line.

	engine, _ := newTestEngine(t)

	lines, err := engine.History(context.Background(), "E001")
	require.NoError(t, err)
	assert.Equal(t, []string{leave.NoHistorySentinel}, collect(lines))
}

func TestEngine_History_FormatsAndOrders(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Apply(ctx, "E001", "2025-01-01", "2025-01-05", "vacation")
	require.NoError(t, err)

	lines, err := engine.History(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01 to 2025-01-05 - vacation"}, collect(lines))

	// Later requests append in call order, regardless of leave dates.
	_, err = engine.Apply(ctx, "E001", "2024-02-01", "2024-02-02", "past conference")
	require.NoError(t, err)

	lines, err = engine.History(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-01-01 to 2025-01-05 - vacation",
		"2024-02-01 to 2024-02-02 - past conference",
	}, collect(lines))

	// The sequence is restartable: ranging again yields the same lines.
	assert.Len(t, collect(lines), 2)
}

func TestEngine_History_UnknownEmployee(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.History(context.Background(), "E999")
	assert.ErrorIs(t, err, leave.ErrUnknownEmployee)
}
