// Package report is the reporting engine. Every report is a read-only,
// parameter-bound statement chosen by Kind; Build produces the statement
// and Engine runs it through the persistence gateway and scans typed rows.
package report

import (
	"strings"

	"github.com/iliyamo/gym-management/internal/apperr"
)

// Kind names a report.
type Kind string

const (
	MembershipDistribution Kind = "membership_distribution"
	AttendanceTrend        Kind = "attendance_trend"
	TrainerPerformance     Kind = "trainer_performance"
	EquipmentUsage         Kind = "equipment_usage"
	RevenueTrend           Kind = "revenue_trend"
	Churn                  Kind = "churn"
	HealthProgress         Kind = "health_progress"
	MostActiveUsers        Kind = "most_active_users"
)

// Kinds lists every report in menu order.
var Kinds = []Kind{
	MembershipDistribution,
	AttendanceTrend,
	TrainerPerformance,
	EquipmentUsage,
	RevenueTrend,
	Churn,
	HealthProgress,
	MostActiveUsers,
}

// ParseKind accepts a kind in snake_case or kebab-case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", apperr.NewValidationError("unknown report", s)
}

// Slug is the kebab-case form used in URLs.
func (k Kind) Slug() string {
	return strings.ReplaceAll(string(k), "_", "-")
}
