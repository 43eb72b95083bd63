//go:build integration

package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mysqlcontainer "github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
	"github.com/iliyamo/gym-management/internal/report"
	"github.com/iliyamo/gym-management/internal/repository"
)

type stack struct {
	db     *sql.DB
	gw     *repository.Gateway
	repos  *repository.Repos
	svc    *Service
	engine *report.Engine
}

func startMySQL(t *testing.T) stack {
	t.Helper()
	ctx := context.Background()

	ctr, err := mysqlcontainer.Run(ctx, "mysql:8.0.36",
		mysqlcontainer.WithDatabase("gym"),
		mysqlcontainer.WithUsername("gym"),
		mysqlcontainer.WithPassword("gym"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	dsn, err := ctr.ConnectionString(ctx, "parseTime=true", "loc=UTC")
	require.NoError(t, err)
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, database.EnsureSchema(ctx, db, log))
	require.NoError(t, database.EnsureSchema(ctx, db, log), "schema setup must be repeatable")

	gw := repository.NewGateway(db, log)
	repos := repository.NewRepos(gw)
	return stack{
		db:     db,
		gw:     gw,
		repos:  repos,
		svc:    New(repos, log),
		engine: report.NewEngine(gw, log),
	}
}

func TestIntegrationStore(t *testing.T) {
	s := startMySQL(t)
	ctx := context.Background()

	m, err := s.svc.CreateMembership(ctx, MembershipInput{
		Type: "Gold", Price: 120, ValidPeriodDays: 30, DiscountAmount: 5,
		VIP: &VIPInput{SpaAccess: true, FreeGuestPasses: 2, PersonalTrainerDiscount: 10},
	})
	require.NoError(t, err)

	t.Run("membership round trip", func(t *testing.T) {
		got, err := s.repos.Memberships.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, *m, *got)
	})

	t.Run("vip membership cannot gain a basic row", func(t *testing.T) {
		_, err := s.gw.Insert(ctx, database.TableBasicMembership,
			repository.F("membership_id", m.ID),
			repository.F("tier", string(model.TierBasic)),
			repository.F("max_sessions_per_month", 4),
			repository.F("gym_access_hours", 8))
		assert.True(t, apperr.IsConstraintViolation(err))
	})

	dob := "1991-07-04"
	u, err := s.svc.RegisterUser(ctx, UserInput{MembershipID: m.ID, Name: "Ann", Email: "ann@example.com", DateOfBirth: dob})
	require.NoError(t, err)

	t.Run("user round trip", func(t *testing.T) {
		got, err := s.repos.Users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, *u, *got)
	})

	t.Run("unknown membership leaves users unchanged", func(t *testing.T) {
		before, err := s.gw.Count(ctx, database.TableUsers)
		require.NoError(t, err)

		_, err = s.svc.RegisterUser(ctx, UserInput{MembershipID: 999999, Name: "Ghost"})
		assert.True(t, apperr.IsConstraintViolation(err))

		after, err := s.gw.Count(ctx, database.TableUsers)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("health metrics round trip", func(t *testing.T) {
		st, err := s.svc.RecordHealthMetrics(ctx, HealthMetricsInput{UserID: u.ID, Weight: 70, Height: 1.75, FatPercentage: 20})
		require.NoError(t, err)
		got, err := s.repos.Health.GetByID(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, *st, *got)
		assert.InDelta(t, 22.86, got.BMI, 0.01)
	})

	t.Run("session round trip", func(t *testing.T) {
		tr, err := s.svc.CreateTrainer(ctx, TrainerInput{Name: "Sam"})
		require.NoError(t, err)
		ss, err := s.svc.ScheduleSession(ctx, SessionInput{TrainerID: tr.ID, UserID: u.ID, SessionDate: "2026-04-02", StartTime: "07:00", EndTime: "08:00"})
		require.NoError(t, err)
		got, err := s.repos.Sessions.GetByID(ctx, ss.ID)
		require.NoError(t, err)
		assert.Equal(t, *ss, *got)
	})

	t.Run("user without attendance churns", func(t *testing.T) {
		rows, err := s.engine.Churn(ctx)
		require.NoError(t, err)
		var found bool
		for _, r := range rows {
			if r.UserID == u.ID {
				found = true
				assert.Nil(t, r.LastVisit)
			}
		}
		assert.True(t, found)
	})

	t.Run("trainer without feedback reports zero", func(t *testing.T) {
		tr, err := s.svc.CreateTrainer(ctx, TrainerInput{Name: "Rita"})
		require.NoError(t, err)
		_, err = s.svc.AssignTrainingPlan(ctx, TrainingPlanInput{TrainerID: tr.ID, UserID: u.ID, Details: "mobility", DurationDays: 14})
		require.NoError(t, err)

		rows, err := s.engine.TrainerPerformance(ctx)
		require.NoError(t, err)
		var found bool
		for _, r := range rows {
			if r.TrainerID == tr.ID {
				found = true
				assert.Equal(t, int64(1), r.TotalPlans)
				assert.Zero(t, r.AvgRating)
			}
		}
		assert.True(t, found)
	})

	t.Run("attendance trend counts inclusive days", func(t *testing.T) {
		in := time.Date(2026, 2, 28, 23, 30, 0, 0, time.UTC)
		_, err := s.svc.LogAttendance(ctx, AttendanceInput{UserID: u.ID, CheckInTime: &in})
		require.NoError(t, err)

		rows, err := s.engine.AttendanceTrend(ctx, "2026-02-28", "2026-02-28")
		require.NoError(t, err)
		assert.Equal(t, []report.AttendanceTrendRow{{VisitDate: "2026-02-28", TotalVisits: 1}}, rows)

		rows, err = s.engine.AttendanceTrend(ctx, "2019-01-01", "2019-01-31")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("revenue months ascend", func(t *testing.T) {
		for _, d := range []time.Time{
			time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC),
		} {
			_, err := s.svc.RecordPayment(ctx, PaymentInput{UserID: u.ID, Amount: 50, Method: model.PaymentCash, PaymentDate: &d})
			require.NoError(t, err)
		}
		rows, err := s.engine.RevenueTrend(ctx)
		require.NoError(t, err)
		assert.Equal(t, []report.RevenueTrendRow{{Month: "2026-01", TotalRevenue: 50}, {Month: "2026-02", TotalRevenue: 100}}, rows)
	})
}
