package model

import "time"

// WorkoutSession is one workout performed by a user.
type WorkoutSession struct {
	ID              uint64
	UserID          uint64
	WorkoutTime     time.Time
	DurationMinutes int
	CaloriesBurned  float64
}

// Equipment is a piece of gym equipment (workout_equipment).
type Equipment struct {
	ID                  uint64
	Name                string
	Category            string
	LastMaintenanceDate *time.Time
}

// EquipmentUsage links a piece of equipment to a workout session. The pair
// (EquipmentID, WorkoutID) is the primary key.
type EquipmentUsage struct {
	EquipmentID          uint64
	WorkoutID            uint64
	UsageDurationMinutes int
}

// AttendanceLog records a visit. CheckOutTime is nil while the member is
// still inside.
type AttendanceLog struct {
	ID           uint64
	UserID       uint64
	CheckInTime  time.Time
	CheckOutTime *time.Time
}

// SessionSchedule is a booked trainer session. StartTime and EndTime are
// wall-clock times in HH:MM:SS form.
type SessionSchedule struct {
	ID          uint64
	TrainerID   uint64
	UserID      uint64
	SessionDate time.Time
	StartTime   string
	EndTime     string
}
