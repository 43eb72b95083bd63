package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/gym-management/internal/apperr"
	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

// MembershipRepo persists memberships together with their specialization.
type MembershipRepo struct {
	gw *Gateway
}

func NewMembershipRepo(gw *Gateway) *MembershipRepo {
	return &MembershipRepo{gw: gw}
}

// Create inserts the membership row and, for VIP and Basic tiers, the
// specialization row in the same transaction. On success m.ID is set.
func (r *MembershipRepo) Create(ctx context.Context, m *model.Membership) error {
	if !m.Consistent() {
		return apperr.NewValidationError("membership tier does not match its specialization", string(m.Tier))
	}

	return r.gw.Do(ctx, func(s *Session) error {
		id, err := s.Insert(ctx, database.TableMemberships,
			F("membership_type", m.Type),
			F("price", m.Price),
			F("valid_period", m.ValidPeriodDays),
			F("discount_amount", m.DiscountAmount),
			F("tier", string(m.Tier)),
		)
		if err != nil {
			return err
		}

		switch m.Tier {
		case model.TierVIP:
			_, err = s.Insert(ctx, database.TableVIPMemberships,
				F("membership_id", id),
				F("tier", string(model.TierVIP)),
				F("spa_access", m.VIP.SpaAccess),
				F("free_guest_passes", m.VIP.FreeGuestPasses),
				F("personal_trainer_discount", m.VIP.PersonalTrainerDiscount),
			)
		case model.TierBasic:
			_, err = s.Insert(ctx, database.TableBasicMembership,
				F("membership_id", id),
				F("tier", string(model.TierBasic)),
				F("max_sessions_per_month", m.Basic.MaxSessionsPerMonth),
				F("gym_access_hours", m.Basic.GymAccessHours),
			)
		}
		if err != nil {
			return err
		}
		m.ID = uint64(id)
		return nil
	})
}

// GetByID loads a membership and whichever specialization it has.
func (r *MembershipRepo) GetByID(ctx context.Context, id uint64) (*model.Membership, error) {
	const q = `SELECT m.membership_id, m.membership_type, m.price, m.valid_period, m.discount_amount, m.tier,
	                  v.spa_access, v.free_guest_passes, v.personal_trainer_discount,
	                  b.max_sessions_per_month, b.gym_access_hours
	           FROM memberships m
	           LEFT JOIN vip_memberships v ON v.membership_id = m.membership_id
	           LEFT JOIN basic_memberships b ON b.membership_id = m.membership_id
	           WHERE m.membership_id = ?`

	var (
		m           model.Membership
		tier        string
		spa         sql.NullBool
		guestPasses sql.NullInt64
		ptDiscount  sql.NullFloat64
		maxSessions sql.NullInt64
		accessHours sql.NullInt64
	)
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}},
		&m.ID, &m.Type, &m.Price, &m.ValidPeriodDays, &m.DiscountAmount, &tier,
		&spa, &guestPasses, &ptDiscount, &maxSessions, &accessHours)
	if err != nil {
		return nil, notFoundOr(err, "membership", id)
	}

	m.Tier = model.Tier(tier)
	if spa.Valid {
		m.VIP = &model.VIPPerks{
			SpaAccess:               spa.Bool,
			FreeGuestPasses:         int(guestPasses.Int64),
			PersonalTrainerDiscount: ptDiscount.Float64,
		}
	}
	if maxSessions.Valid {
		m.Basic = &model.BasicLimits{
			MaxSessionsPerMonth: int(maxSessions.Int64),
			GymAccessHours:      int(accessHours.Int64),
		}
	}
	return &m, nil
}
