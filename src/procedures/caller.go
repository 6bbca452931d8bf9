// Package procedures is the boundary to the customer databases. Every
// business operation is a positional call to a stored procedure whose
// contract is owned by the database, not by this application.
package procedures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"backoffice/src/metrics"
	"backoffice/src/utils"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by Get when the procedure produced no row.
var ErrNotFound = errors.New("record not found")

var validName = regexp.MustCompile(`^[a-z_][a-z0-9_.]*$`)

// Result is the row every save/delete procedure returns.
type Result struct {
	ID      int64  `db:"id"`
	Code    int    `db:"result_code"`
	Message string `db:"message"`
}

// ProcedureError is a call the procedure itself rejected (result_code <> 0).
// Its message was written for end users and can be shown as is.
type ProcedureError struct {
	Procedure string
	Code      int
	Message   string
}

func (e *ProcedureError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Procedure, e.Code, e.Message)
}

type Caller interface {
	// Exec runs a procedure that returns nothing.
	Exec(ctx context.Context, name string, args ...interface{}) error
	// Select scans every returned row into dest, a pointer to a slice.
	Select(ctx context.Context, dest interface{}, name string, args ...interface{}) error
	// Get scans the single returned row into dest.
	Get(ctx context.Context, dest interface{}, name string, args ...interface{}) error
	// Save runs an upsert/delete procedure and checks its result row.
	Save(ctx context.Context, name string, args ...interface{}) (*Result, error)
}

type caller struct {
	db       *sqlx.DB
	customer string
}

// NewCaller returns a Caller bound to the database of one customer.
func NewCaller(db *sqlx.DB, customer string) Caller {
	return &caller{db: db, customer: customer}
}

// Statement renders the positional call for name with n arguments.
func Statement(verb, name string, n int) (string, error) {
	if !validName.MatchString(name) {
		return "", fmt.Errorf("invalid procedure name %q", name)
	}
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("%s %s(%s)", verb, name, strings.Join(placeholders, ", ")), nil
}

func (c *caller) Exec(ctx context.Context, name string, args ...interface{}) error {
	query, err := Statement("CALL", name, len(args))
	if err != nil {
		return err
	}
	start := time.Now()
	_, err = c.db.ExecContext(ctx, query, args...)
	return c.finish(ctx, name, start, err)
}

func (c *caller) Select(ctx context.Context, dest interface{}, name string, args ...interface{}) error {
	query, err := Statement("SELECT * FROM", name, len(args))
	if err != nil {
		return err
	}
	start := time.Now()
	err = c.db.SelectContext(ctx, dest, query, args...)
	return c.finish(ctx, name, start, err)
}

func (c *caller) Get(ctx context.Context, dest interface{}, name string, args ...interface{}) error {
	query, err := Statement("SELECT * FROM", name, len(args))
	if err != nil {
		return err
	}
	start := time.Now()
	err = c.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordProcedureCall(name, "ok", time.Since(start))
		return ErrNotFound
	}
	return c.finish(ctx, name, start, err)
}

func (c *caller) Save(ctx context.Context, name string, args ...interface{}) (*Result, error) {
	query, err := Statement("SELECT * FROM", name, len(args))
	if err != nil {
		return nil, err
	}
	start := time.Now()
	var result Result
	err = c.db.GetContext(ctx, &result, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("%s returned no result row", name)
	}
	if err != nil {
		return nil, c.finish(ctx, name, start, err)
	}
	if result.Code != 0 {
		metrics.RecordProcedureCall(name, "rejected", time.Since(start))
		utils.LoggerFromContext(ctx).WithFields(logrus.Fields{
			"procedure":   name,
			"customer":    c.customer,
			"result_code": result.Code,
		}).Info(result.Message)
		return &result, &ProcedureError{Procedure: name, Code: result.Code, Message: result.Message}
	}
	return &result, c.finish(ctx, name, start, nil)
}

func (c *caller) finish(ctx context.Context, name string, start time.Time, err error) error {
	if err == nil {
		metrics.RecordProcedureCall(name, "ok", time.Since(start))
		return nil
	}
	metrics.RecordProcedureCall(name, "error", time.Since(start))
	utils.LoggerFromContext(ctx).WithFields(logrus.Fields{
		"procedure": name,
		"customer":  c.customer,
		"duration":  time.Since(start).String(),
	}).WithError(err).Error("stored procedure call failed")
	return fmt.Errorf("%s: %w", name, err)
}
