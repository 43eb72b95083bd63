package service

import (
	"context"

	"github.com/iliyamo/gym-management/internal/model"
)

// RegisterUser stores a member. The membership must exist; the store
// enforces that.
func (s *Service) RegisterUser(ctx context.Context, in UserInput) (*model.User, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "user", 0, nil, err)
	}
	dob, err := parseDate("date_of_birth", in.DateOfBirth)
	if err == nil {
		err = s.notInFuture("date_of_birth", dob)
	}
	if err != nil {
		return nil, s.done(ctx, "user", 0, nil, err)
	}

	u := model.User{
		MembershipID:     in.MembershipID,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		DateOfBirth:      dob,
		RegistrationDate: s.stamp(in.RegistrationDate),
	}
	err = s.repos.Users.Create(ctx, &u)
	if err := s.done(ctx, "user", u.ID, map[string]any{"membership_id": u.MembershipID}, err); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) CreateTrainer(ctx context.Context, in TrainerInput) (*model.Trainer, error) {
	if err := validateStruct(in); err != nil {
		return nil, s.done(ctx, "trainer", 0, nil, err)
	}

	t := model.Trainer{Name: in.Name, Specialization: in.Specialization, Phone: in.Phone, Email: in.Email}
	err := s.repos.Trainers.Create(ctx, &t)
	if err := s.done(ctx, "trainer", t.ID, nil, err); err != nil {
		return nil, err
	}
	return &t, nil
}
