package report

import "time"

type MembershipDistributionRow struct {
	MembershipType string `json:"membership_type"`
	TotalUsers     int64  `json:"total_users"`
}

type AttendanceTrendRow struct {
	VisitDate   string `json:"visit_date"`
	TotalVisits int64  `json:"total_visits"`
}

// TrainerPerformanceRow reports AvgRating 0 for trainers without feedback.
type TrainerPerformanceRow struct {
	TrainerID   uint64  `json:"trainer_id"`
	TrainerName string  `json:"trainer_name"`
	TotalPlans  int64   `json:"total_plans"`
	AvgRating   float64 `json:"avg_rating"`
}

type EquipmentUsageRow struct {
	EquipmentID   uint64  `json:"equipment_id"`
	EquipmentName string  `json:"equipment_name"`
	UsageCount    int64   `json:"usage_count"`
	AvgDuration   float64 `json:"avg_duration"`
}

type RevenueTrendRow struct {
	Month        string  `json:"month"`
	TotalRevenue float64 `json:"total_revenue"`
}

// ChurnRow has a nil LastVisit for users who never checked in.
type ChurnRow struct {
	UserID    uint64     `json:"user_id"`
	UserName  string     `json:"user_name"`
	LastVisit *time.Time `json:"last_visit"`
}

type HealthProgressRow struct {
	UserStatusID  uint64    `json:"user_status_id"`
	UserID        uint64    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Weight        float64   `json:"weight"`
	Height        float64   `json:"height"`
	FatPercentage float64   `json:"fat_percentage"`
	BMI           float64   `json:"bmi"`
	TimeMeasured  time.Time `json:"time_measured"`
}

type ActiveUserRow struct {
	UserID      uint64 `json:"user_id"`
	UserName    string `json:"user_name"`
	TotalVisits int64  `json:"total_visits"`
}
