/*
Package sqlite provides a SQLite-backed Store implementation.

PURPOSE:
  Same contract as store/memory, persisted through database/sql. Opened
  with ":memory:" the state stays process-lifetime only; given a file
  path it survives restarts, which is useful for local poking even
  though the service does not rely on it.

APPEND-ONLY ENFORCEMENT:
  No UPDATE or DELETE ever touches the requests table. The only writes
  are the INSERT in Approve and the balance upsert that rides in the
  same SQL transaction.

KEY TABLES:
  balances:  one row per employee, remaining days as decimal text
  requests:  immutable history, insertion order via rowid

CONCURRENCY:
  The engine serializes writes above this store. WAL mode keeps readers
  from blocking behind the writer.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/joyamit/leave-manager/leave"
)

// Store implements leave.Store using SQLite.
type Store struct {
	db *sql.DB
}

// New opens (and migrates) a SQLite store. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases from vanishing
	// between pool checkouts.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS balances (
		employee_id TEXT PRIMARY KEY,
		remaining   TEXT NOT NULL
	);

	-- Requests (append-only history)
	CREATE TABLE IF NOT EXISTS requests (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		name        TEXT NOT NULL,
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		reason      TEXT,
		created_at  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_requests_employee ON requests(employee_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// STORE INTERFACE
// =============================================================================

func (s *Store) Balance(ctx context.Context, id leave.EmployeeID) (decimal.Decimal, bool, error) {
	var remaining string
	err := s.db.QueryRowContext(ctx,
		`SELECT remaining FROM balances WHERE employee_id = ?`, string(id),
	).Scan(&remaining)
	if err == sql.ErrNoRows {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	b, err := decimal.NewFromString(remaining)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt balance for %s: %w", id, err)
	}
	return b, true, nil
}

func (s *Store) Grant(ctx context.Context, id leave.EmployeeID, amount decimal.Decimal) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO balances (employee_id, remaining) VALUES (?, ?)
		 ON CONFLICT(employee_id) DO UPDATE SET remaining = excluded.remaining`,
		string(id), amount.String(),
	)
	return err
}

// Approve runs the balance write and the history append in one SQL
// transaction.
func (s *Store) Approve(ctx context.Context, req leave.Request, newBalance decimal.Decimal) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO balances (employee_id, remaining) VALUES (?, ?)
		 ON CONFLICT(employee_id) DO UPDATE SET remaining = excluded.remaining`,
		string(req.EmployeeID), newBalance.String(),
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO requests (id, employee_id, name, start_date, end_date, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, string(req.EmployeeID), req.Name,
		req.Start.String(), req.End.String(), req.Reason,
		req.CreatedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) History(ctx context.Context, id leave.EmployeeID) ([]leave.Request, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, name, start_date, end_date, reason, created_at
		 FROM requests WHERE employee_id = ? ORDER BY rowid`, string(id),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []leave.Request
	for rows.Next() {
		var r leave.Request
		var empID, start, end, created string
		if err := rows.Scan(&r.ID, &empID, &r.Name, &start, &end, &r.Reason, &created); err != nil {
			return nil, err
		}
		r.EmployeeID = leave.EmployeeID(empID)
		if r.Start, err = leave.ParseDate(start); err != nil {
			return nil, fmt.Errorf("corrupt start date for request %s: %w", r.ID, err)
		}
		if r.End, err = leave.ParseDate(end); err != nil {
			return nil, fmt.Errorf("corrupt end date for request %s: %w", r.ID, err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("corrupt created_at for request %s: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

var _ leave.Store = (*Store)(nil)
