package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/database"
)

// Statement is a parameter-bound SQL statement. Values never appear in SQL.
type Statement struct {
	SQL  string
	Args []any
}

// Field is one column/value pair of an insert.
type Field struct {
	Column string
	Value  any
}

// F is shorthand for building a Field.
func F(column string, value any) Field {
	return Field{Column: column, Value: value}
}

// Gateway is the only component that talks to the store. Every call
// acquires a connection (or transaction) for its own duration and releases
// it before returning, and every driver error leaves it classified as an
// apperr.AppError.
type Gateway struct {
	db  *sql.DB
	log *slog.Logger
}

// NewGateway wraps an open pool.
func NewGateway(db *sql.DB, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{db: db, log: log}
}

// Session is a scoped transaction handed to the function passed to Do.
type Session struct {
	tx *sql.Tx
	gw *Gateway
}

// Do runs fn inside a transaction. The transaction commits when fn returns
// nil and rolls back when fn returns an error or panics.
func (g *Gateway) Do(ctx context.Context, fn func(*Session) error) (err error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return g.classify("begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				g.log.Warn("rollback failed", "error", rbErr)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = g.classify("commit", cErr)
		}
	}()

	return fn(&Session{tx: tx, gw: g})
}

// Insert adds one row to table and returns its generated key. Tables whose
// key is supplied by the caller return 0. Identifiers are checked before a
// transaction is opened.
func (g *Gateway) Insert(ctx context.Context, table string, fields ...Field) (int64, error) {
	t, q, args, err := insertStatement(table, fields)
	if err != nil {
		return 0, err
	}
	var id int64
	err = g.Do(ctx, func(s *Session) error {
		var err error
		id, err = s.exec(ctx, t, q, args)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Insert adds one row inside the session's transaction.
func (s *Session) Insert(ctx context.Context, table string, fields ...Field) (int64, error) {
	t, q, args, err := insertStatement(table, fields)
	if err != nil {
		return 0, err
	}
	return s.exec(ctx, t, q, args)
}

func (s *Session) exec(ctx context.Context, t database.Table, q string, args []any) (int64, error) {
	res, err := s.tx.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, s.gw.classify("insert into "+t.Name, err)
	}
	if t.Key == "" {
		return 0, nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.gw.classify("insert into "+t.Name, err)
	}
	return id, nil
}

// QueryRow scans a single row inside the session's transaction.
func (s *Session) QueryRow(ctx context.Context, st Statement, dest ...any) error {
	err := s.tx.QueryRowContext(ctx, st.SQL, st.Args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return s.gw.classify("query", err)
}

// Query runs st and calls scan once per row, in order.
func (g *Gateway) Query(ctx context.Context, st Statement, scan func(*sql.Rows) error) error {
	rows, err := g.db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		return g.classify("query", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return g.classify("scan", err)
		}
	}
	return g.classify("query", rows.Err())
}

// QueryRow scans a single row. sql.ErrNoRows is returned unchanged so
// repositories can map it to their own not-found error.
func (g *Gateway) QueryRow(ctx context.Context, st Statement, dest ...any) error {
	err := g.db.QueryRowContext(ctx, st.SQL, st.Args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return g.classify("query", err)
}

// Count returns the number of rows in a registered table.
func (g *Gateway) Count(ctx context.Context, table string) (int64, error) {
	t, ok := database.Lookup(table)
	if !ok {
		return 0, apperr.NewValidationError("unknown table", table)
	}
	var n int64
	if err := g.QueryRow(ctx, Statement{SQL: "SELECT COUNT(*) FROM " + t.Name}, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// Ping checks that the store is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.classify("ping", g.db.PingContext(ctx))
}

func insertStatement(table string, fields []Field) (database.Table, string, []any, error) {
	t, ok := database.Lookup(table)
	if !ok {
		return t, "", nil, apperr.NewValidationError("unknown table", table)
	}
	if len(fields) == 0 {
		return t, "", nil, apperr.NewValidationError("no fields to insert", table)
	}

	cols := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		if !t.HasColumn(f.Column) {
			return t, "", nil, apperr.NewValidationError("unknown column", table+"."+f.Column)
		}
		cols = append(cols, f.Column)
		args = append(args, f.Value)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.Name, strings.Join(cols, ", "), placeholders)
	return t, q, args, nil
}

// MySQL server error numbers that mean the store rejected the data.
var constraintErrors = map[uint16]string{
	1062: "duplicate key",
	1048: "column cannot be null",
	1364: "missing value for column",
	1216: "foreign key violation",
	1217: "foreign key violation",
	1451: "row is still referenced",
	1452: "referenced row does not exist",
	1264: "value out of range",
	1366: "incorrect value",
	1292: "incorrect date or time value",
	1406: "value too long",
	3819: "check constraint violated",
}

// MySQL server error numbers that mean the store cannot serve the request.
var connectionErrors = map[uint16]bool{
	1040: true, // too many connections
	1045: true, // access denied
	1049: true, // unknown database
	1053: true, // server shutdown
}

// classify turns a driver error into an AppError. Already classified errors
// pass through. The original error stays in the chain.
func (g *Gateway) classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.Get(err); ok {
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if reason, ok := constraintErrors[myErr.Number]; ok {
			g.log.Warn("store rejected write", "op", op, "reason", reason, "code", myErr.Number)
			return apperr.NewConstraintViolation(op+": "+reason, err)
		}
		if connectionErrors[myErr.Number] {
			g.log.Error("store unavailable", "op", op, "code", myErr.Number, "error", err)
			return apperr.NewConnectionError(op+": store unavailable", err)
		}
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		g.log.Error("store unreachable", "op", op, "error", err)
		return apperr.NewConnectionError(op+": store unreachable", err)
	}

	g.log.Error("store error", "op", op, "error", err)
	return apperr.NewInternalError(op+" failed", err)
}
