package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

type AttendanceRepo struct{ gw *Gateway }

func NewAttendanceRepo(gw *Gateway) *AttendanceRepo { return &AttendanceRepo{gw: gw} }

func (r *AttendanceRepo) Create(ctx context.Context, a *model.AttendanceLog) error {
	id, err := r.gw.Insert(ctx, database.TableAttendanceLogs,
		F("user_id", a.UserID),
		F("check_in_time", a.CheckInTime),
		F("check_out_time", a.CheckOutTime),
	)
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

func (r *AttendanceRepo) GetByID(ctx context.Context, id uint64) (*model.AttendanceLog, error) {
	const q = `SELECT log_id, user_id, check_in_time, check_out_time FROM attendance_logs WHERE log_id = ?`
	var (
		a   model.AttendanceLog
		out sql.NullTime
	)
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}}, &a.ID, &a.UserID, &a.CheckInTime, &out)
	if err != nil {
		return nil, notFoundOr(err, "attendance log", id)
	}
	a.CheckOutTime = timePtr(out)
	return &a, nil
}
