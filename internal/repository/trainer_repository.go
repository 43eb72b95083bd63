package repository

import (
	"context"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

type TrainerRepo struct{ gw *Gateway }

func NewTrainerRepo(gw *Gateway) *TrainerRepo { return &TrainerRepo{gw: gw} }

func (r *TrainerRepo) Create(ctx context.Context, t *model.Trainer) error {
	id, err := r.gw.Insert(ctx, database.TableTrainers,
		F("trainer_name", t.Name),
		F("trainer_specialization", t.Specialization),
		F("trainer_phone_number", t.Phone),
		F("trainer_email", t.Email),
	)
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

func (r *TrainerRepo) GetByID(ctx context.Context, id uint64) (*model.Trainer, error) {
	const q = `SELECT trainer_id, trainer_name, trainer_specialization, trainer_phone_number, trainer_email
	           FROM trainers WHERE trainer_id = ?`
	var t model.Trainer
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}},
		&t.ID, &t.Name, &t.Specialization, &t.Phone, &t.Email)
	if err != nil {
		return nil, notFoundOr(err, "trainer", id)
	}
	return &t, nil
}
