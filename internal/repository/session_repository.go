package repository

import (
	"context"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

// SessionRepo stores trainer session schedules. TIME columns are read back
// as HH:MM:SS strings.
type SessionRepo struct{ gw *Gateway }

func NewSessionRepo(gw *Gateway) *SessionRepo { return &SessionRepo{gw: gw} }

func (r *SessionRepo) Create(ctx context.Context, s *model.SessionSchedule) error {
	id, err := r.gw.Insert(ctx, database.TableSessions,
		F("trainer_id", s.TrainerID),
		F("user_id", s.UserID),
		F("session_date", s.SessionDate),
		F("start_time", s.StartTime),
		F("end_time", s.EndTime),
	)
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

func (r *SessionRepo) GetByID(ctx context.Context, id uint64) (*model.SessionSchedule, error) {
	const q = `SELECT session_id, trainer_id, user_id, session_date, start_time, end_time
	           FROM session_schedules WHERE session_id = ?`
	var s model.SessionSchedule
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}},
		&s.ID, &s.TrainerID, &s.UserID, &s.SessionDate, &s.StartTime, &s.EndTime)
	if err != nil {
		return nil, notFoundOr(err, "session", id)
	}
	return &s, nil
}
