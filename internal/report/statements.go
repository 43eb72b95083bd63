package report

import (
	"time"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/repository"
)

const (
	// DefaultRangeDays is the span of a date range when From is omitted.
	DefaultRangeDays = 30
	// TopActiveUsers caps the most active users report.
	TopActiveUsers = 10

	churnMonths  = 3
	healthMonths = 6
)

// Params are the optional report parameters. From and To are inclusive
// YYYY-MM-DD days; Month is YYYY-MM.
type Params struct {
	From  string
	To    string
	Month string
}

const (
	membershipDistributionSQL = `SELECT m.membership_type, COUNT(u.user_id) AS total_users
FROM users u
JOIN memberships m ON m.membership_id = u.membership_id
GROUP BY m.membership_type
ORDER BY m.membership_type`

	attendanceTrendSQL = `SELECT DATE_FORMAT(check_in_time, '%Y-%m-%d') AS visit_date, COUNT(*) AS total_visits
FROM attendance_logs
WHERE check_in_time >= ? AND check_in_time < ?
GROUP BY visit_date
ORDER BY visit_date`

	// Plans and feedback are aggregated separately so neither count is
	// multiplied by the other's rows.
	trainerPerformanceSQL = `SELECT t.trainer_id, t.trainer_name,
       COALESCE(p.total_plans, 0) AS total_plans,
       COALESCE(f.avg_rating, 0) AS avg_rating
FROM trainers t
LEFT JOIN (SELECT trainer_id, COUNT(*) AS total_plans FROM personal_training_plans GROUP BY trainer_id) p
       ON p.trainer_id = t.trainer_id
LEFT JOIN (SELECT trainer_id, AVG(rating) AS avg_rating FROM feedback GROUP BY trainer_id) f
       ON f.trainer_id = t.trainer_id
ORDER BY avg_rating DESC, t.trainer_id`

	equipmentUsageSQL = `SELECT e.equipment_id, e.equipment_name, COUNT(*) AS usage_count, AVG(a.usage_duration) AS avg_duration
FROM workout_equipment e
JOIN workout_equipment_usage a ON a.equipment_id = e.equipment_id
JOIN workout_sessions w ON w.workout_id = a.workout_id
WHERE w.workout_time >= ? AND w.workout_time < ?
GROUP BY e.equipment_id, e.equipment_name
ORDER BY usage_count DESC, e.equipment_id`

	revenueTrendSQL = `SELECT DATE_FORMAT(payment_date, '%Y-%m') AS month, SUM(amount) AS total_revenue
FROM payments
GROUP BY month
ORDER BY month`

	churnSQL = `SELECT u.user_id, u.user_name, MAX(a.check_in_time) AS last_visit
FROM users u
LEFT JOIN attendance_logs a ON a.user_id = u.user_id
GROUP BY u.user_id, u.user_name
HAVING last_visit IS NULL OR last_visit < ?
ORDER BY u.user_id`

	healthProgressSQL = `SELECT s.user_status_id, u.user_id, u.user_name, s.weight, s.height, s.fat_percentage, s.bmi, s.time_measured
FROM user_status s
JOIN users u ON u.user_id = s.user_id
WHERE s.time_measured >= ?
ORDER BY s.time_measured DESC, s.user_status_id`

	mostActiveUsersSQL = `SELECT u.user_id, u.user_name, COUNT(a.log_id) AS total_visits
FROM users u
JOIN attendance_logs a ON a.user_id = u.user_id
WHERE a.check_in_time >= ? AND a.check_in_time < ?
GROUP BY u.user_id, u.user_name
ORDER BY total_visits DESC, u.user_id
LIMIT ?`
)

// Build returns the statement for kind. Parameter errors are reported as
// validation errors before any statement exists. now anchors the default
// range, the default month and the churn and health windows.
func Build(kind Kind, p Params, now time.Time) (repository.Statement, error) {
	now = now.UTC()

	switch kind {
	case MembershipDistribution:
		return repository.Statement{SQL: membershipDistributionSQL}, nil

	case AttendanceTrend:
		from, until, err := dayRange(p, now)
		if err != nil {
			return repository.Statement{}, err
		}
		return repository.Statement{SQL: attendanceTrendSQL, Args: []any{from, until}}, nil

	case TrainerPerformance:
		return repository.Statement{SQL: trainerPerformanceSQL}, nil

	case EquipmentUsage:
		start, err := month(p.Month, now)
		if err != nil {
			return repository.Statement{}, err
		}
		return repository.Statement{SQL: equipmentUsageSQL, Args: []any{start, start.AddDate(0, 1, 0)}}, nil

	case RevenueTrend:
		return repository.Statement{SQL: revenueTrendSQL}, nil

	case Churn:
		return repository.Statement{SQL: churnSQL, Args: []any{now.AddDate(0, -churnMonths, 0)}}, nil

	case HealthProgress:
		return repository.Statement{SQL: healthProgressSQL, Args: []any{now.AddDate(0, -healthMonths, 0)}}, nil

	case MostActiveUsers:
		from, until, err := dayRange(p, now)
		if err != nil {
			return repository.Statement{}, err
		}
		return repository.Statement{SQL: mostActiveUsersSQL, Args: []any{from, until, TopActiveUsers}}, nil
	}
	return repository.Statement{}, apperr.NewValidationError("unknown report", string(kind))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayRange turns the inclusive From/To days into the half-open interval
// [from 00:00, day after To 00:00). To defaults to today and From to
// DefaultRangeDays before To.
func dayRange(p Params, now time.Time) (time.Time, time.Time, error) {
	to := startOfDay(now)
	if p.To != "" {
		t, err := time.Parse(time.DateOnly, p.To)
		if err != nil {
			return time.Time{}, time.Time{}, apperr.NewValidationError("invalid end date", "to must be YYYY-MM-DD")
		}
		to = t
	}

	from := to.AddDate(0, 0, -DefaultRangeDays)
	if p.From != "" {
		f, err := time.Parse(time.DateOnly, p.From)
		if err != nil {
			return time.Time{}, time.Time{}, apperr.NewValidationError("invalid start date", "from must be YYYY-MM-DD")
		}
		from = f
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, apperr.NewValidationError("start date is after end date",
			from.Format(time.DateOnly)+" > "+to.Format(time.DateOnly))
	}
	return from, to.AddDate(0, 0, 1), nil
}

// month parses YYYY-MM into the first instant of that month. Empty means
// the month containing now.
func month(v string, now time.Time) (time.Time, error) {
	if v == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return time.Time{}, apperr.NewValidationError("invalid month", "month must be YYYY-MM")
	}
	return t, nil
}
