package repository

import (
	"context"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

type FeedbackRepo struct{ gw *Gateway }

func NewFeedbackRepo(gw *Gateway) *FeedbackRepo { return &FeedbackRepo{gw: gw} }

func (r *FeedbackRepo) Create(ctx context.Context, f *model.Feedback) error {
	id, err := r.gw.Insert(ctx, database.TableFeedback,
		F("user_id", f.UserID),
		F("trainer_id", f.TrainerID),
		F("rating", f.Rating),
		F("comments", f.Comments),
		F("feedback_time", f.FeedbackTime),
	)
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

func (r *FeedbackRepo) GetByID(ctx context.Context, id uint64) (*model.Feedback, error) {
	const q = `SELECT feedback_id, user_id, trainer_id, rating, comments, feedback_time
	           FROM feedback WHERE feedback_id = ?`
	var f model.Feedback
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}},
		&f.ID, &f.UserID, &f.TrainerID, &f.Rating, &f.Comments, &f.FeedbackTime)
	if err != nil {
		return nil, notFoundOr(err, "feedback", id)
	}
	return &f, nil
}
