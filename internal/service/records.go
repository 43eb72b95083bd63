package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/model"
)

// maxBMI is the first value the DECIMAL(5,2) bmi column cannot hold.
const maxBMI = 1000

func (s *Service) RecordPayment(ctx context.Context, in PaymentInput) (*model.Payment, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "payment", 0, nil, err)
	}

	p := model.Payment{
		UserID:      in.UserID,
		Amount:      in.Amount,
		PaymentDate: s.stamp(in.PaymentDate),
		Method:      in.Method,
	}
	err := s.repos.Payments.Create(ctx, &p)
	attrs := map[string]any{"user_id": p.UserID, "amount": p.Amount}
	if err := s.done(ctx, "payment", p.ID, attrs, err); err != nil {
		return nil, err
	}
	return &p, nil
}

// AssignTrainingPlan stores a plan. Start date defaults to today and status
// to In Progress.
func (s *Service) AssignTrainingPlan(ctx context.Context, in TrainingPlanInput) (*model.TrainingPlan, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "training_plan", 0, nil, err)
	}
	start, err := parseDate("plan_start_date", in.StartDate)
	if err != nil {
		return nil, s.done(ctx, "training_plan", 0, nil, err)
	}
	if start == nil {
		today := s.today()
		start = &today
	}
	status := in.Status
	if status == "" {
		status = model.PlanInProgress
	}

	p := model.TrainingPlan{
		TrainerID:    in.TrainerID,
		UserID:       in.UserID,
		Details:      in.Details,
		StartDate:    *start,
		DurationDays: in.DurationDays,
		Status:       status,
	}
	err = s.repos.Plans.Create(ctx, &p)
	attrs := map[string]any{"trainer_id": p.TrainerID, "user_id": p.UserID}
	if err := s.done(ctx, "training_plan", p.ID, attrs, err); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) SubmitFeedback(ctx context.Context, in FeedbackInput) (*model.Feedback, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "feedback", 0, nil, err)
	}

	f := model.Feedback{
		UserID:       in.UserID,
		TrainerID:    in.TrainerID,
		Rating:       in.Rating,
		Comments:     in.Comments,
		FeedbackTime: s.stamp(in.FeedbackTime),
	}
	err := s.repos.Feedback.Create(ctx, &f)
	attrs := map[string]any{"trainer_id": f.TrainerID, "rating": f.Rating}
	if err := s.done(ctx, "feedback", f.ID, attrs, err); err != nil {
		return nil, err
	}
	return &f, nil
}

// RecordHealthMetrics stores a measurement with its BMI derived from
// weight and height.
func (s *Service) RecordHealthMetrics(ctx context.Context, in HealthMetricsInput) (*model.UserStatus, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "health_metrics", 0, nil, err)
	}

	bmi := model.BMI(in.Weight, in.Height)
	if bmi >= maxBMI {
		err := apperr.NewValidationError("validation failed", fmt.Sprintf("bmi %.2f derived from weight and height must be less than %d", bmi, maxBMI))
		return nil, s.done(ctx, "health_metrics", 0, nil, err)
	}

	st := model.UserStatus{
		UserID:        in.UserID,
		Weight:        in.Weight,
		Height:        in.Height,
		FatPercentage: in.FatPercentage,
		BMI:           bmi,
		TimeMeasured:  s.stamp(in.TimeMeasured),
	}
	err := s.repos.Health.Create(ctx, &st)
	attrs := map[string]any{"user_id": st.UserID, "bmi": st.BMI}
	if err := s.done(ctx, "health_metrics", st.ID, attrs, err); err != nil {
		return nil, err
	}
	return &st, nil
}
