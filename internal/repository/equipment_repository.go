package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/gym-management/internal/database"
	"github.com/iliyamo/gym-management/internal/model"
)

// EquipmentRepo stores equipment and the equipment/workout association.
type EquipmentRepo struct{ gw *Gateway }

func NewEquipmentRepo(gw *Gateway) *EquipmentRepo { return &EquipmentRepo{gw: gw} }

func (r *EquipmentRepo) Create(ctx context.Context, e *model.Equipment) error {
	id, err := r.gw.Insert(ctx, database.TableEquipment,
		F("equipment_name", e.Name),
		F("equipment_category", e.Category),
		F("last_maintenance_date", e.LastMaintenanceDate),
	)
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

func (r *EquipmentRepo) GetByID(ctx context.Context, id uint64) (*model.Equipment, error) {
	const q = `SELECT equipment_id, equipment_name, equipment_category, last_maintenance_date
	           FROM workout_equipment WHERE equipment_id = ?`
	var (
		e     model.Equipment
		maint sql.NullTime
	)
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{id}}, &e.ID, &e.Name, &e.Category, &maint)
	if err != nil {
		return nil, notFoundOr(err, "equipment", id)
	}
	e.LastMaintenanceDate = timePtr(maint)
	return &e, nil
}

// CreateUsage links equipment to a workout. The pair is the key, so a
// second usage row for the same pair is a constraint violation.
func (r *EquipmentRepo) CreateUsage(ctx context.Context, u *model.EquipmentUsage) error {
	_, err := r.gw.Insert(ctx, database.TableEquipmentUsage,
		F("equipment_id", u.EquipmentID),
		F("workout_id", u.WorkoutID),
		F("usage_duration", u.UsageDurationMinutes),
	)
	return err
}

func (r *EquipmentRepo) GetUsage(ctx context.Context, equipmentID, workoutID uint64) (*model.EquipmentUsage, error) {
	const q = `SELECT equipment_id, workout_id, usage_duration
	           FROM workout_equipment_usage WHERE equipment_id = ? AND workout_id = ?`
	var u model.EquipmentUsage
	err := r.gw.QueryRow(ctx, Statement{SQL: q, Args: []any{equipmentID, workoutID}},
		&u.EquipmentID, &u.WorkoutID, &u.UsageDurationMinutes)
	if err != nil {
		return nil, notFoundOr(err, "equipment usage", equipmentID, workoutID)
	}
	return &u, nil
}
