package repository

import (
	"context"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

// PlanRepo stores personal training plans.
type PlanRepo struct{ gw *Gateway }

func NewPlanRepo(gw *Gateway) *PlanRepo { return &PlanRepo{gw: gw} }

func (r *PlanRepo) Create(ctx context.Context, p *model.TrainingPlan) error {
	id, err := r.gw.Insert(ctx, database.TableTrainingPlans,
		F("trainer_id", p.TrainerID),
		F("user_id", p.UserID),
		F("plan_details", p.Details),
		F("plan_start_date", p.StartDate),
		F("duration", p.DurationDays),
		F("progress_status", p.Status),
	)
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

func (r *PlanRepo) GetByID(ctx context.Context, id uint64) (*model.TrainingPlan, error) {
	const q = `SELECT plan_id, trainer_id, user_id, plan_details, plan_start_date, duration, progress_status
	           FROM personal_training_plans WHERE plan_id = ?`
	var p model.TrainingPlan
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}},
		&p.ID, &p.TrainerID, &p.UserID, &p.Details, &p.StartDate, &p.DurationDays, &p.Status)
	if err != nil {
		return nil, notFoundOr(err, "training plan", id)
	}
	return &p, nil
}
