package service

import "time"

// Inputs are the typed fields collected by the presentation layer for each
// write operation. Timestamps left nil default to the current time. Dates
// are YYYY-MM-DD strings. Amounts and measurements carry at most two
// decimal places.

type MembershipInput struct {
	Type            string      `json:"membership_type" validate:"required,max=50"`
	Price           float64     `json:"price" validate:"gte=0,lt=100000000,cents"`
	ValidPeriodDays int         `json:"valid_period" validate:"gte=1"`
	DiscountAmount  float64     `json:"discount_amount" validate:"gte=0,lt=100000000,cents"`
	VIP             *VIPInput   `json:"vip,omitempty"`
	Basic           *BasicInput `json:"basic,omitempty"`
}

type VIPInput struct {
	SpaAccess               bool    `json:"spa_access"`
	FreeGuestPasses         int     `json:"free_guest_passes" validate:"gte=0"`
	PersonalTrainerDiscount float64 `json:"personal_trainer_discount" validate:"gte=0,lt=100000000,cents"`
}

type BasicInput struct {
	MaxSessionsPerMonth int `json:"max_sessions_per_month" validate:"gte=1"`
	GymAccessHours      int `json:"gym_access_hours" validate:"gte=1,lte=24"`
}

type UserInput struct {
	MembershipID     uint64     `json:"membership_id" validate:"required"`
	Name             string     `json:"user_name" validate:"required,max=100"`
	Email            string     `json:"user_email" validate:"omitempty,email,max=100"`
	Phone            string     `json:"user_phone_number" validate:"omitempty,max=20"`
	DateOfBirth      string     `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
}

type TrainerInput struct {
	Name           string `json:"trainer_name" validate:"required,max=100"`
	Specialization string `json:"trainer_specialization" validate:"max=100"`
	Phone          string `json:"trainer_phone_number" validate:"omitempty,max=20"`
	Email          string `json:"trainer_email" validate:"omitempty,email,max=100"`
}

type AttendanceInput struct {
	UserID       uint64     `json:"user_id" validate:"required"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}

type WorkoutInput struct {
	UserID          uint64     `json:"user_id" validate:"required"`
	WorkoutTime     *time.Time `json:"workout_time,omitempty"`
	DurationMinutes int        `json:"workout_duration" validate:"gte=1"`
	CaloriesBurned  float64    `json:"calories_burned" validate:"gte=0,lt=100000000,cents"`
}

type EquipmentInput struct {
	Name                string `json:"equipment_name" validate:"required,max=100"`
	Category            string `json:"equipment_category" validate:"max=50"`
	LastMaintenanceDate string `json:"last_maintenance_date" validate:"omitempty,datetime=2006-01-02"`
}

type EquipmentUsageInput struct {
	EquipmentID          uint64 `json:"equipment_id" validate:"required"`
	WorkoutID            uint64 `json:"workout_id" validate:"required"`
	UsageDurationMinutes int    `json:"usage_duration" validate:"gte=1"`
}

type PaymentInput struct {
	UserID      uint64     `json:"user_id" validate:"required"`
	Amount      float64    `json:"amount" validate:"gt=0,lt=100000000,cents"`
	Method      string     `json:"payment_method" validate:"required,oneof='Credit Card' 'Debit Card' 'Cash' 'Bank Transfer'"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

type SessionInput struct {
	TrainerID   uint64 `json:"trainer_id" validate:"required"`
	UserID      uint64 `json:"user_id" validate:"required"`
	SessionDate string `json:"session_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,clock"`
	EndTime     string `json:"end_time" validate:"required,clock"`
}

type TrainingPlanInput struct {
	TrainerID    uint64 `json:"trainer_id" validate:"required"`
	UserID       uint64 `json:"user_id" validate:"required"`
	Details      string `json:"plan_details" validate:"required"`
	StartDate    string `json:"plan_start_date" validate:"omitempty,datetime=2006-01-02"`
	DurationDays int    `json:"duration" validate:"gte=1"`
	Status       string `json:"progress_status" validate:"omitempty,oneof='In Progress' 'Completed'"`
}

type FeedbackInput struct {
	UserID       uint64     `json:"user_id" validate:"required"`
	TrainerID    uint64     `json:"trainer_id" validate:"required"`
	Rating       float64    `json:"rating" validate:"gte=1,lte=5,cents"`
	Comments     string     `json:"comments" validate:"max=2000"`
	FeedbackTime *time.Time `json:"feedback_time,omitempty"`
}

type HealthMetricsInput struct {
	UserID        uint64     `json:"user_id" validate:"required"`
	Weight        float64    `json:"weight" validate:"gt=0,lt=1000,cents"`
	Height        float64    `json:"height" validate:"gte=0.01,lt=10,cents"`
	FatPercentage float64    `json:"fat_percentage" validate:"gte=0,lte=100,cents"`
	TimeMeasured  *time.Time `json:"time_measured,omitempty"`
}
