package service

import (
	"context"
	"time"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/model"
)

// LogAttendance stores a visit. A check-out earlier than the check-in is
// stored as given and logged.
func (s *Service) LogAttendance(ctx context.Context, in AttendanceInput) (*model.AttendanceLog, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "attendance", 0, nil, err)
	}

	a := model.AttendanceLog{UserID: in.UserID, CheckInTime: s.stamp(in.CheckInTime)}
	if in.CheckOutTime != nil {
		out := s.stamp(in.CheckOutTime)
		a.CheckOutTime = &out
		if out.Before(a.CheckInTime) {
			s.log.Warn("check-out before check-in", "user_id", a.UserID, "check_in", a.CheckInTime, "check_out", out)
		}
	}

	err := s.repos.Attendance.Create(ctx, &a)
	if err := s.done(ctx, "attendance", a.ID, map[string]any{"user_id": a.UserID}, err); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) RecordWorkout(ctx context.Context, in WorkoutInput) (*model.WorkoutSession, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "workout", 0, nil, err)
	}

	w := model.WorkoutSession{
		UserID:          in.UserID,
		WorkoutTime:     s.stamp(in.WorkoutTime),
		DurationMinutes: in.DurationMinutes,
		CaloriesBurned:  in.CaloriesBurned,
	}
	err := s.repos.Workouts.Create(ctx, &w)
	if err := s.done(ctx, "workout", w.ID, map[string]any{"user_id": w.UserID}, err); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Service) CreateEquipment(ctx context.Context, in EquipmentInput) (*model.Equipment, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "equipment", 0, nil, err)
	}
	maint, err := parseDate("last_maintenance_date", in.LastMaintenanceDate)
	if err == nil {
		err = s.notInFuture("last_maintenance_date", maint)
	}
	if err != nil {
		return nil, s.done(ctx, "equipment", 0, nil, err)
	}

	e := model.Equipment{Name: in.Name, Category: in.Category, LastMaintenanceDate: maint}
	err = s.repos.Equipment.Create(ctx, &e)
	if err := s.done(ctx, "equipment", e.ID, nil, err); err != nil {
		return nil, err
	}
	return &e, nil
}

// RecordEquipmentUsage links equipment to a workout. Recording the same
// pair twice is a constraint violation.
func (s *Service) RecordEquipmentUsage(ctx context.Context, in EquipmentUsageInput) (*model.EquipmentUsage, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "equipment_usage", 0, nil, err)
	}

	u := model.EquipmentUsage{
		EquipmentID:          in.EquipmentID,
		WorkoutID:            in.WorkoutID,
		UsageDurationMinutes: in.UsageDurationMinutes,
	}
	err := s.repos.Equipment.CreateUsage(ctx, &u)
	attrs := map[string]any{"equipment_id": u.EquipmentID, "workout_id": u.WorkoutID}
	if err := s.done(ctx, "equipment_usage", 0, attrs, err); err != nil {
		return nil, err
	}
	return &u, nil
}

// ScheduleSession books a trainer session. Times are normalised to
// HH:MM:SS and the session must end after it starts.
func (s *Service) ScheduleSession(ctx context.Context, in SessionInput) (*model.SessionSchedule, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "session", 0, nil, err)
	}
	date, err := parseDate("session_date", in.SessionDate)
	if err != nil {
		return nil, s.done(ctx, "session", 0, nil, err)
	}
	start, end := clockSeconds(in.StartTime), clockSeconds(in.EndTime)
	if end <= start {
		err := apperr.NewValidationError("validation failed", "end_time must be after start_time")
		return nil, s.done(ctx, "session", 0, nil, err)
	}

	ss := model.SessionSchedule{
		TrainerID:   in.TrainerID,
		UserID:      in.UserID,
		SessionDate: *date,
		StartTime:   formatClock(start),
		EndTime:     formatClock(end),
	}
	err = s.repos.Sessions.Create(ctx, &ss)
	attrs := map[string]any{"trainer_id": ss.TrainerID, "user_id": ss.UserID}
	if err := s.done(ctx, "session", ss.ID, attrs, err); err != nil {
		return nil, err
	}
	return &ss, nil
}

// clockSeconds converts a validated HH:MM[:SS] value to seconds after
// midnight.
func clockSeconds(v string) int {
	layout := "15:04"
	if len(v) == len("15:04:05") {
		layout = time.TimeOnly
	}
	t, _ := time.Parse(layout, v)
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func formatClock(sec int) string {
	return time.Date(0, 1, 1, 0, 0, sec, 0, time.UTC).Format(time.TimeOnly)
}
