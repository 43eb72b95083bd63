package repository

import (
	"context"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

// WorkoutRepo stores workout sessions.
type WorkoutRepo struct{ gw *Gateway }

func NewWorkoutRepo(gw *Gateway) *WorkoutRepo { return &WorkoutRepo{gw: gw} }

func (r *WorkoutRepo) Create(ctx context.Context, w *model.WorkoutSession) error {
	id, err := r.gw.Insert(ctx, database.TableWorkoutSessions,
		F("user_id", w.UserID),
		F("workout_time", w.WorkoutTime),
		F("workout_duration", w.DurationMinutes),
		F("calories_burned", w.CaloriesBurned),
	)
	if err != nil {
		return err
	}
	w.ID = uint64(id)
	return nil
}

func (r *WorkoutRepo) GetByID(ctx context.Context, id uint64) (*model.WorkoutSession, error) {
	const q = `SELECT workout_id, user_id, workout_time, workout_duration, calories_burned
	           FROM workout_sessions WHERE workout_id = ?`
	var w model.WorkoutSession
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}},
		&w.ID, &w.UserID, &w.WorkoutTime, &w.DurationMinutes, &w.CaloriesBurned)
	if err != nil {
		return nil, notFoundOr(err, "workout session", id)
	}
	return &w, nil
}
