package repository

// Repos groups one repository per entity over a shared Gateway.
type Repos struct {
	Memberships *MembershipRepo
	Users       *UserRepo
	Trainers    *TrainerRepo
	Workouts    *WorkoutRepo
	Equipment   *EquipmentRepo
	Attendance  *AttendanceRepo
	Health      *HealthRepo
	Payments    *PaymentRepo
	Sessions    *SessionRepo
	Plans       *PlanRepo
	Feedback    *FeedbackRepo
}

func NewRepos(gw *Gateway) *Repos {
	return &Repos{
		Memberships: NewMembershipRepo(gw),
		Users:       NewUserRepo(gw),
		Trainers:    NewTrainerRepo(gw),
		Workouts:    NewWorkoutRepo(gw),
		Equipment:   NewEquipmentRepo(gw),
		Attendance:  NewAttendanceRepo(gw),
		Health:      NewHealthRepo(gw),
		Payments:    NewPaymentRepo(gw),
		Sessions:    NewSessionRepo(gw),
		Plans:       NewPlanRepo(gw),
		Feedback:    NewFeedbackRepo(gw),
	}
}
