package report

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/observability"
	"github.com/iliyamo/gym-management/internal/repository"
)

// Engine runs reports against the store. It never writes.
type Engine struct {
	gw  *repository.Gateway
	now func() time.Time
	log *slog.Logger
}

func NewEngine(gw *repository.Gateway, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{gw: gw, now: time.Now, log: log}
}

// WithClock returns a copy of e that reads the current time from now.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	cp := *e
	cp.now = now
	return &cp
}

// run builds the statement for kind and scans every row with scan. The
// result is empty, never nil, when no rows match.
func run[T any](ctx context.Context, e *Engine, kind Kind, p Params, scan func(*sql.Rows, *T) error) ([]T, error) {
	started := time.Now()

	st, err := Build(kind, p, e.now())
	if err != nil {
		observability.ObserveReport(string(kind), outcome(err), started, 0)
		return nil, err
	}

	out := make([]T, 0)
	err = e.gw.Query(ctx, st, func(rows *sql.Rows) error {
		var row T
		if err := scan(rows, &row); err != nil {
			return err
		}
		out = append(out, row)
		return nil
	})
	observability.ObserveReport(string(kind), outcome(err), started, len(out))
	if err != nil {
		e.log.Warn("report failed", "kind", kind, "error", err)
		return nil, err
	}

	e.log.Debug("report done", "kind", kind, "rows", len(out), "took", time.Since(started))
	return out, nil
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if appErr, ok := apperr.Get(err); ok {
		return string(appErr.Type)
	}
	return string(apperr.TypeInternal)
}

// Run dispatches to the typed method for kind.
func (e *Engine) Run(ctx context.Context, kind Kind, p Params) (any, error) {
	switch kind {
	case MembershipDistribution:
		return e.MembershipDistribution(ctx)
	case AttendanceTrend:
		return e.AttendanceTrend(ctx, p.From, p.To)
	case TrainerPerformance:
		return e.TrainerPerformance(ctx)
	case EquipmentUsage:
		return e.EquipmentUsage(ctx, p.Month)
	case RevenueTrend:
		return e.RevenueTrend(ctx)
	case Churn:
		return e.Churn(ctx)
	case HealthProgress:
		return e.HealthProgress(ctx)
	case MostActiveUsers:
		return e.MostActiveUsers(ctx, p.From, p.To)
	}
	return nil, apperr.NewValidationError("unknown report", string(kind))
}

func (e *Engine) MembershipDistribution(ctx context.Context) ([]MembershipDistributionRow, error) {
	return run(ctx, e, MembershipDistribution, Params{}, func(rows *sql.Rows, r *MembershipDistributionRow) error {
		return rows.Scan(&r.MembershipType, &r.TotalUsers)
	})
}

// AttendanceTrend counts check-ins per day between from and to inclusive.
func (e *Engine) AttendanceTrend(ctx context.Context, from, to string) ([]AttendanceTrendRow, error) {
	return run(ctx, e, AttendanceTrend, Params{From: from, To: to}, func(rows *sql.Rows, r *AttendanceTrendRow) error {
		return rows.Scan(&r.VisitDate, &r.TotalVisits)
	})
}

func (e *Engine) TrainerPerformance(ctx context.Context) ([]TrainerPerformanceRow, error) {
	return run(ctx, e, TrainerPerformance, Params{}, func(rows *sql.Rows, r *TrainerPerformanceRow) error {
		return rows.Scan(&r.TrainerID, &r.TrainerName, &r.TotalPlans, &r.AvgRating)
	})
}

// EquipmentUsage reports usage for workouts in month (YYYY-MM).
func (e *Engine) EquipmentUsage(ctx context.Context, month string) ([]EquipmentUsageRow, error) {
	return run(ctx, e, EquipmentUsage, Params{Month: month}, func(rows *sql.Rows, r *EquipmentUsageRow) error {
		return rows.Scan(&r.EquipmentID, &r.EquipmentName, &r.UsageCount, &r.AvgDuration)
	})
}

func (e *Engine) RevenueTrend(ctx context.Context) ([]RevenueTrendRow, error) {
	return run(ctx, e, RevenueTrend, Params{}, func(rows *sql.Rows, r *RevenueTrendRow) error {
		return rows.Scan(&r.Month, &r.TotalRevenue)
	})
}

// Churn lists users whose last check-in is older than three months, or who
// never checked in.
func (e *Engine) Churn(ctx context.Context) ([]ChurnRow, error) {
	return run(ctx, e, Churn, Params{}, func(rows *sql.Rows, r *ChurnRow) error {
		var last sql.NullTime
		if err := rows.Scan(&r.UserID, &r.UserName, &last); err != nil {
			return err
		}
		if last.Valid {
			t := last.Time
			r.LastVisit = &t
		}
		return nil
	})
}

func (e *Engine) HealthProgress(ctx context.Context) ([]HealthProgressRow, error) {
	return run(ctx, e, HealthProgress, Params{}, func(rows *sql.Rows, r *HealthProgressRow) error {
		return rows.Scan(&r.UserStatusID, &r.UserID, &r.UserName, &r.Weight, &r.Height, &r.FatPercentage, &r.BMI, &r.TimeMeasured)
	})
}

// MostActiveUsers returns the top users by check-ins between start and end
// inclusive. start after end is a validation error and no query runs.
func (e *Engine) MostActiveUsers(ctx context.Context, start, end string) ([]ActiveUserRow, error) {
	return run(ctx, e, MostActiveUsers, Params{From: start, To: end}, func(rows *sql.Rows, r *ActiveUserRow) error {
		return rows.Scan(&r.UserID, &r.UserName, &r.TotalVisits)
	})
}
