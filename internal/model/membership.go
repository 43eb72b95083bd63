package model

// Tier tags the specialization of a Membership.
type Tier string

const (
	TierStandard Tier = "STANDARD"
	TierVIP      Tier = "VIP"
	TierBasic    Tier = "BASIC"
)

// Membership is a plan a user subscribes to. It is a tagged variant: Tier
// says which of VIP or Basic (if any) is populated, and the store holds at
// most one specialization row per membership.
//
// Fields:
//
//	ID              – memberships.membership_id
//	Type            – display name, e.g. "Gold" (memberships.membership_type)
//	Price           – memberships.price
//	ValidPeriodDays – memberships.valid_period
//	DiscountAmount  – memberships.discount_amount
type Membership struct {
	ID              uint64
	Type            string
	Price           float64
	ValidPeriodDays int
	DiscountAmount  float64
	Tier            Tier
	VIP             *VIPPerks
	Basic           *BasicLimits
}

// VIPPerks mirrors a vip_memberships row.
type VIPPerks struct {
	SpaAccess               bool    `json:"spa_access"`
	FreeGuestPasses         int     `json:"free_guest_passes"`
	PersonalTrainerDiscount float64 `json:"personal_trainer_discount"`
}

// BasicLimits mirrors a basic_memberships row.
type BasicLimits struct {
	MaxSessionsPerMonth int `json:"max_sessions_per_month"`
	GymAccessHours      int `json:"gym_access_hours"`
}

// StandardMembership builds an unspecialized membership.
func StandardMembership(typ string, price float64, validDays int, discount float64) Membership {
	return Membership{Type: typ, Price: price, ValidPeriodDays: validDays, DiscountAmount: discount, Tier: TierStandard}
}

// VIPMembership builds a membership specialized with VIP perks.
func VIPMembership(typ string, price float64, validDays int, discount float64, perks VIPPerks) Membership {
	m := StandardMembership(typ, price, validDays, discount)
	m.Tier = TierVIP
	m.VIP = &perks
	return m
}

// BasicMembership builds a membership specialized with Basic limits.
func BasicMembership(typ string, price float64, validDays int, discount float64, limits BasicLimits) Membership {
	m := StandardMembership(typ, price, validDays, discount)
	m.Tier = TierBasic
	m.Basic = &limits
	return m
}

// Consistent reports whether Tier agrees with the populated specialization.
func (m Membership) Consistent() bool {
	switch m.Tier {
	case TierStandard:
		return m.VIP == nil && m.Basic == nil
	case TierVIP:
		return m.VIP != nil && m.Basic == nil
	case TierBasic:
		return m.Basic != nil && m.VIP == nil
	}
	return false
}
