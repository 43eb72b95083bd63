package repository

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/database"
)

func newMockGateway(t *testing.T) (*Gateway, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewGateway(db, slog.New(slog.NewTextHandler(io.Discard, nil))), mock
}

func TestInsertBindsValues(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trainers (trainer_name, trainer_email) VALUES (?, ?)")).
		WithArgs("Sam'; DROP TABLE trainers; --", "sam@example.com").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	id, err := gw.Insert(context.Background(), database.TableTrainers,
		F("trainer_name", "Sam'; DROP TABLE trainers; --"),
		F("trainer_email", "sam@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestInsertWithoutGeneratedKey(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO workout_equipment_usage").
		WithArgs(1, 2, 30).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := gw.Insert(context.Background(), database.TableEquipmentUsage,
		F("equipment_id", 1), F("workout_id", 2), F("usage_duration", 30))
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestInsertRejectsUnknownIdentifiers(t *testing.T) {
	gw, _ := newMockGateway(t)
	ctx := context.Background()

	_, err := gw.Insert(ctx, "users; DROP TABLE users", F("user_name", "x"))
	assert.True(t, apperr.IsValidation(err))

	_, err = gw.Insert(ctx, database.TableUsers, F("user_name) VALUES ('x'); --", "x"))
	assert.True(t, apperr.IsValidation(err))

	_, err = gw.Insert(ctx, database.TableUsers)
	assert.True(t, apperr.IsValidation(err))
}

func TestInsertValidatesBeforeTouchingStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()
	require.NoError(t, db.Close())
	gw := NewGateway(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err = gw.Insert(context.Background(), database.TableUsers, F("password_hash", "x"))
	assert.True(t, apperr.IsValidation(err))
	assert.False(t, apperr.IsConnection(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertForeignKeyViolation(t *testing.T) {
	gw, mock := newMockGateway(t)

	fkErr := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnError(fkErr)
	mock.ExpectRollback()

	_, err := gw.Insert(context.Background(), database.TableUsers,
		F("membership_id", 999), F("user_name", "Ann"))
	require.Error(t, err)
	assert.True(t, apperr.IsConstraintViolation(err))

	var myErr *mysql.MySQLError
	require.True(t, errors.As(err, &myErr))
	assert.Equal(t, uint16(1452), myErr.Number)
}

func TestClassify(t *testing.T) {
	gw, _ := newMockGateway(t)

	cases := []struct {
		name string
		err  error
		want apperr.Type
	}{
		{"duplicate", &mysql.MySQLError{Number: 1062}, apperr.TypeConstraintViolation},
		{"check", &mysql.MySQLError{Number: 3819}, apperr.TypeConstraintViolation},
		{"bad date", &mysql.MySQLError{Number: 1292}, apperr.TypeConstraintViolation},
		{"access denied", &mysql.MySQLError{Number: 1045}, apperr.TypeConnection},
		{"invalid conn", mysql.ErrInvalidConn, apperr.TypeConnection},
		{"deadline", context.DeadlineExceeded, apperr.TypeConnection},
		{"syntax", &mysql.MySQLError{Number: 1064}, apperr.TypeInternal},
		{"other", errors.New("boom"), apperr.TypeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := gw.classify("op", tc.err)
			appErr, ok := apperr.Get(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, appErr.Type)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	assert.NoError(t, gw.classify("op", nil))

	already := apperr.NewValidationError("bad")
	assert.Same(t, already, gw.classify("op", already))
}

func TestBeginFailureIsConnectionError(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin().WillReturnError(mysql.ErrInvalidConn)

	_, err := gw.Insert(context.Background(), database.TableTrainers, F("trainer_name", "Sam"))
	assert.True(t, apperr.IsConnection(err))
}

func TestDoRollsBackOnError(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO memberships").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectRollback()

	sentinel := errors.New("second insert failed")
	err := gw.Do(context.Background(), func(s *Session) error {
		if _, err := s.Insert(context.Background(), database.TableMemberships, F("membership_type", "Gold")); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestDoRollsBackOnPanic(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = gw.Do(context.Background(), func(*Session) error { panic("boom") })
	})
}

func TestCommitFailure(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(mysql.ErrInvalidConn)

	err := gw.Do(context.Background(), func(*Session) error { return nil })
	assert.True(t, apperr.IsConnection(err))
}

func TestQueryScansInOrder(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectQuery("SELECT label").WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"label"}).AddRow("a").AddRow("b").AddRow("c"))

	var got []string
	err := gw.Query(context.Background(), Statement{SQL: "SELECT label FROM t WHERE x = ?", Args: []any{5}},
		func(rows *sql.Rows) error {
			var s string
			if err := rows.Scan(&s); err != nil {
				return err
			}
			got = append(got, s)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestQueryRowError(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectQuery("SELECT label").
		WillReturnRows(sqlmock.NewRows([]string{"label"}).AddRow("a").RowError(0, mysql.ErrInvalidConn))

	err := gw.Query(context.Background(), Statement{SQL: "SELECT label FROM t"},
		func(*sql.Rows) error { return nil })
	assert.True(t, apperr.IsConnection(err))
}

func TestCount(t *testing.T) {
	gw, mock := newMockGateway(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(4))

	n, err := gw.Count(context.Background(), database.TableUsers)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = gw.Count(context.Background(), "nope")
	assert.True(t, apperr.IsValidation(err))
}
