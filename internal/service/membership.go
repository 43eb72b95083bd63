package service

import (
	"context"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/model"
)

// CreateMembership stores a Standard, VIP or Basic membership. Supplying
// both VIP and Basic fields is rejected.
func (s *Service) CreateMembership(ctx context.Context, in MembershipInput) (*model.Membership, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "membership", 0, nil, err)
	}
	if in.VIP != nil && in.Basic != nil {
		err := apperr.NewValidationError("validation failed", "a membership is either vip or basic, not both")
		return nil, s.done(ctx, "membership", 0, nil, err)
	}

	var m model.Membership
	switch {
	case in.VIP != nil:
		m = model.VIPMembership(in.Type, in.Price, in.ValidPeriodDays, in.DiscountAmount, model.VIPPerks{
			SpaAccess:               in.VIP.SpaAccess,
			FreeGuestPasses:         in.VIP.FreeGuestPasses,
			PersonalTrainerDiscount: in.VIP.PersonalTrainerDiscount,
		})
	case in.Basic != nil:
		m = model.BasicMembership(in.Type, in.Price, in.ValidPeriodDays, in.DiscountAmount, model.BasicLimits{
			MaxSessionsPerMonth: in.Basic.MaxSessionsPerMonth,
			GymAccessHours:      in.Basic.GymAccessHours,
		})
	default:
		m = model.StandardMembership(in.Type, in.Price, in.ValidPeriodDays, in.DiscountAmount)
	}

	err := s.repos.Memberships.Create(ctx, &m)
	if err := s.done(ctx, "membership", m.ID, map[string]any{"tier": string(m.Tier)}, err); err != nil {
		return nil, err
	}
	return &m, nil
}
