package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

type UserRepo struct{ gw *Gateway }

func NewUserRepo(gw *Gateway) *UserRepo { return &UserRepo{gw: gw} }

// Create inserts u and sets u.ID. A membership_id that does not exist is
// rejected by the store as a constraint violation.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	id, err := r.gw.Insert(ctx, database.TableUsers,
		F("membership_id", u.MembershipID),
		F("user_name", u.Name),
		F("user_email", u.Email),
		F("user_phone_number", u.Phone),
		F("date_of_birth", u.DateOfBirth),
		F("registration_date", u.RegistrationDate),
	)
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT user_id, membership_id, user_name, user_email, user_phone_number, date_of_birth, registration_date
	           FROM users WHERE user_id = ?`
	var (
		u   model.User
		dob sql.NullTime
	)
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}},
		&u.ID, &u.MembershipID, &u.Name, &u.Email, &u.Phone, &dob, &u.RegistrationDate)
	if err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	u.DateOfBirth = timePtr(dob)
	return &u, nil
}
