package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gym-management/internal/model"
)

// CreateMembership handles POST /v1/memberships.
func (h *GymHandler) CreateMembership(c echo.Context) error {
	return create(c, h.Service.CreateMembership, func(m *model.Membership) any { return idResponse{m.ID} })
}

// RegisterUser handles POST /v1/users.
func (h *GymHandler) RegisterUser(c echo.Context) error {
	return create(c, h.Service.RegisterUser, func(u *model.User) any { return idResponse{u.ID} })
}

// CreateTrainer handles POST /v1/trainers.
func (h *GymHandler) CreateTrainer(c echo.Context) error {
	return create(c, h.Service.CreateTrainer, func(t *model.Trainer) any { return idResponse{t.ID} })
}

// LogAttendance handles POST /v1/attendance.
func (h *GymHandler) LogAttendance(c echo.Context) error {
	return create(c, h.Service.LogAttendance, func(a *model.AttendanceLog) any { return idResponse{a.ID} })
}

// RecordWorkout handles POST /v1/workouts.
func (h *GymHandler) RecordWorkout(c echo.Context) error {
	return create(c, h.Service.RecordWorkout, func(w *model.WorkoutSession) any { return idResponse{w.ID} })
}

// CreateEquipment handles POST /v1/equipment.
func (h *GymHandler) CreateEquipment(c echo.Context) error {
	return create(c, h.Service.CreateEquipment, func(e *model.Equipment) any { return idResponse{e.ID} })
}

// RecordEquipmentUsage handles POST /v1/equipment-usage. The identity is
// the equipment/workout pair.
func (h *GymHandler) RecordEquipmentUsage(c echo.Context) error {
	return create(c, h.Service.RecordEquipmentUsage, func(u *model.EquipmentUsage) any {
		return map[string]uint64{"equipment_id": u.EquipmentID, "workout_id": u.WorkoutID}
	})
}

// RecordPayment handles POST /v1/payments.
func (h *GymHandler) RecordPayment(c echo.Context) error {
	return create(c, h.Service.RecordPayment, func(p *model.Payment) any { return idResponse{p.ID} })
}

// ScheduleSession handles POST /v1/sessions.
func (h *GymHandler) ScheduleSession(c echo.Context) error {
	return create(c, h.Service.ScheduleSession, func(s *model.SessionSchedule) any { return idResponse{s.ID} })
}

// AssignTrainingPlan handles POST /v1/training-plans.
func (h *GymHandler) AssignTrainingPlan(c echo.Context) error {
	return create(c, h.Service.AssignTrainingPlan, func(p *model.TrainingPlan) any { return idResponse{p.ID} })
}

// SubmitFeedback handles POST /v1/feedback.
func (h *GymHandler) SubmitFeedback(c echo.Context) error {
	return create(c, h.Service.SubmitFeedback, func(f *model.Feedback) any { return idResponse{f.ID} })
}

// RecordHealthMetrics handles POST /v1/health-metrics.
func (h *GymHandler) RecordHealthMetrics(c echo.Context) error {
	return create(c, h.Service.RecordHealthMetrics, func(s *model.UserStatus) any { return idResponse{s.ID} })
}
