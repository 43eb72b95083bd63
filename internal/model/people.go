package model

import "time"

// User is a gym member. Every user references one membership.
type User struct {
	ID               uint64     // users.user_id
	MembershipID     uint64     // users.membership_id
	Name             string     // users.user_name
	Email            string     // users.user_email
	Phone            string     // users.user_phone_number
	DateOfBirth      *time.Time // users.date_of_birth (nullable)
	RegistrationDate time.Time  // users.registration_date
}

// Trainer is referenced by schedules, plans and feedback.
type Trainer struct {
	ID             uint64 // trainers.trainer_id
	Name           string // trainers.trainer_name
	Specialization string // trainers.trainer_specialization
	Phone          string // trainers.trainer_phone_number
	Email          string // trainers.trainer_email
}
