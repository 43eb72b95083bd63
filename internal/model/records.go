package model

import (
	"math"
	"time"
)

// UserStatus is a health measurement. BMI is derived from Weight and Height
// when the row is written.
type UserStatus struct {
	ID            uint64
	UserID        uint64
	Weight        float64 // kg
	Height        float64 // m
	FatPercentage float64
	BMI           float64
	TimeMeasured  time.Time
}

// BMI returns weight / height², rounded to two decimals as stored in the
// DECIMAL(5,2) column. Height must be positive; callers validate first.
func BMI(weightKg, heightM float64) float64 {
	return math.Round(weightKg/(heightM*heightM)*100) / 100
}

// Payment methods accepted by the front desk.
const (
	PaymentCreditCard   = "Credit Card"
	PaymentDebitCard    = "Debit Card"
	PaymentCash         = "Cash"
	PaymentBankTransfer = "Bank Transfer"
)

// Payment is money received from a user.
type Payment struct {
	ID          uint64
	UserID      uint64
	Amount      float64
	PaymentDate time.Time
	Method      string
}

// Training plan progress states.
const (
	PlanInProgress = "In Progress"
	PlanCompleted  = "Completed"
)

// TrainingPlan is a personal training plan assigned by a trainer.
type TrainingPlan struct {
	ID           uint64
	TrainerID    uint64
	UserID       uint64
	Details      string
	StartDate    time.Time
	DurationDays int
	Status       string
}

// Feedback is a user's rating of a trainer.
type Feedback struct {
	ID           uint64
	UserID       uint64
	TrainerID    uint64
	Rating       float64
	Comments     string
	FeedbackTime time.Time
}
