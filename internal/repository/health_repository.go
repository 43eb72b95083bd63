package repository

import (
	"context"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

// HealthRepo stores user_status measurements.
type HealthRepo struct{ gw *Gateway }

func NewHealthRepo(gw *Gateway) *HealthRepo { return &HealthRepo{gw: gw} }

func (r *HealthRepo) Create(ctx context.Context, s *model.UserStatus) error {
	id, err := r.gw.Insert(ctx, database.TableUserStatus,
		F("user_id", s.UserID),
		F("weight", s.Weight),
		F("height", s.Height),
		F("fat_percentage", s.FatPercentage),
		F("bmi", s.BMI),
		F("time_measured", s.TimeMeasured),
	)
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

func (r *HealthRepo) GetByID(ctx context.Context, id uint64) (*model.UserStatus, error) {
	const q = `SELECT user_status_id, user_id, weight, height, fat_percentage, bmi, time_measured
	           FROM user_status WHERE user_status_id = ?`
	var s model.UserStatus
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}},
		&s.ID, &s.UserID, &s.Weight, &s.Height, &s.FatPercentage, &s.BMI, &s.TimeMeasured)
	if err != nil {
		return nil, notFoundOr(err, "health metrics", id)
	}
	return &s, nil
}
