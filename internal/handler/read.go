package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gym-management/internal/model"
)

// Records are rendered through these views so the JSON names match the
// write forms.

type membershipView struct {
	ID              uint64             `json:"membership_id"`
	Type            string             `json:"membership_type"`
	Price           float64            `json:"price"`
	ValidPeriodDays int                `json:"valid_period"`
	DiscountAmount  float64            `json:"discount_amount"`
	Tier            model.Tier         `json:"tier"`
	VIP             *model.VIPPerks    `json:"vip,omitempty"`
	Basic           *model.BasicLimits `json:"basic,omitempty"`
}

func (h *GymHandler) GetMembership(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		m, err := h.Repos.Memberships.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return membershipView{
			ID: m.ID, Type: m.Type, Price: m.Price, ValidPeriodDays: m.ValidPeriodDays,
			DiscountAmount: m.DiscountAmount, Tier: m.Tier, VIP: m.VIP, Basic: m.Basic,
		}, nil
	})
}

func (h *GymHandler) GetUser(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		u, err := h.Repos.Users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"user_id":           u.ID,
			"membership_id":     u.MembershipID,
			"user_name":         u.Name,
			"user_email":        u.Email,
			"user_phone_number": u.Phone,
			"date_of_birth":     dateString(u.DateOfBirth),
			"registration_date": u.RegistrationDate,
		}, nil
	})
}

func (h *GymHandler) GetTrainer(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		t, err := h.Repos.Trainers.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"trainer_id":             t.ID,
			"trainer_name":           t.Name,
			"trainer_specialization": t.Specialization,
			"trainer_phone_number":   t.Phone,
			"trainer_email":          t.Email,
		}, nil
	})
}

func (h *GymHandler) GetAttendance(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		a, err := h.Repos.Attendance.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"log_id":         a.ID,
			"user_id":        a.UserID,
			"check_in_time":  a.CheckInTime,
			"check_out_time": a.CheckOutTime,
		}, nil
	})
}

func (h *GymHandler) GetWorkout(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		w, err := h.Repos.Workouts.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"workout_id":       w.ID,
			"user_id":          w.UserID,
			"workout_time":     w.WorkoutTime,
			"workout_duration": w.DurationMinutes,
			"calories_burned":  w.CaloriesBurned,
		}, nil
	})
}

func (h *GymHandler) GetEquipment(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		e, err := h.Repos.Equipment.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"equipment_id":          e.ID,
			"equipment_name":        e.Name,
			"equipment_category":    e.Category,
			"last_maintenance_date": dateString(e.LastMaintenanceDate),
		}, nil
	})
}

// GetEquipmentUsage handles GET /v1/equipment-usage/:equipment_id/:workout_id.
func (h *GymHandler) GetEquipmentUsage(c echo.Context) error {
	equipmentID, err := parseID(c, "equipment_id")
	if err != nil {
		return fail(c, err)
	}
	workoutID, err := parseID(c, "workout_id")
	if err != nil {
		return fail(c, err)
	}
	u, err := h.Repos.Equipment.GetUsage(c.Request().Context(), equipmentID, workoutID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"equipment_id":   u.EquipmentID,
		"workout_id":     u.WorkoutID,
		"usage_duration": u.UsageDurationMinutes,
	})
}

func (h *GymHandler) GetPayment(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		p, err := h.Repos.Payments.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"payment_id":     p.ID,
			"user_id":        p.UserID,
			"amount":         p.Amount,
			"payment_date":   p.PaymentDate,
			"payment_method": p.Method,
		}, nil
	})
}

func (h *GymHandler) GetSession(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		s, err := h.Repos.Sessions.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"session_id":   s.ID,
			"trainer_id":   s.TrainerID,
			"user_id":      s.UserID,
			"session_date": dateString(&s.SessionDate),
			"start_time":   s.StartTime,
			"end_time":     s.EndTime,
		}, nil
	})
}

func (h *GymHandler) GetTrainingPlan(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		p, err := h.Repos.Plans.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"plan_id":         p.ID,
			"trainer_id":      p.TrainerID,
			"user_id":         p.UserID,
			"plan_details":    p.Details,
			"plan_start_date": dateString(&p.StartDate),
			"duration":        p.DurationDays,
			"progress_status": p.Status,
		}, nil
	})
}

func (h *GymHandler) GetFeedback(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		f, err := h.Repos.Feedback.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"feedback_id":   f.ID,
			"user_id":       f.UserID,
			"trainer_id":    f.TrainerID,
			"rating":        f.Rating,
			"comments":      f.Comments,
			"feedback_time": f.FeedbackTime,
		}, nil
	})
}

func (h *GymHandler) GetHealthMetrics(c echo.Context) error {
	return get(c, func(ctx context.Context, id uint64) (any, error) {
		s, err := h.Repos.Health.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"user_status_id": s.ID,
			"user_id":        s.UserID,
			"weight":         s.Weight,
			"height":         s.Height,
			"fat_percentage": s.FatPercentage,
			"bmi":            s.BMI,
			"time_measured":  s.TimeMeasured,
		}, nil
	})
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
