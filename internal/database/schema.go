// Package database owns the MySQL connection and the physical schema. The
// Tables registry is the single description of every entity: its table
// name, generated key and writable columns. The persistence gateway only
// accepts identifiers found here.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
)

// Table names.
const (
	TableMemberships     = "memberships"
	TableVIPMemberships  = "vip_memberships"
	TableBasicMembership = "basic_memberships"
	TableUsers           = "users"
	TableTrainers        = "trainers"
	TableWorkoutSessions = "workout_sessions"
	TableEquipment       = "workout_equipment"
	TableEquipmentUsage  = "workout_equipment_usage"
	TableAttendanceLogs  = "attendance_logs"
	TableUserStatus      = "user_status"
	TablePayments        = "payments"
	TableSessions        = "session_schedules"
	TableTrainingPlans   = "personal_training_plans"
	TableFeedback        = "feedback"
)

// Table describes one entity. Key is the auto-generated primary key column,
// empty for tables whose key is supplied by the caller.
type Table struct {
	Name    string
	Key     string
	Columns []string
	DDL     string
}

// HasColumn reports whether col is a writable column of t.
func (t Table) HasColumn(col string) bool {
	return slices.Contains(t.Columns, col)
}

// Tables lists every entity in creation order: referenced tables come
// before the tables that reference them.
var Tables = []Table{
	{
		Name:    TableMemberships,
		Key:     "membership_id",
		Columns: []string{"membership_type", "price", "valid_period", "discount_amount", "tier"},
		DDL: `CREATE TABLE IF NOT EXISTS memberships (
  membership_id   BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  membership_type VARCHAR(50)     NOT NULL,
  price           DECIMAL(10,2)   NOT NULL DEFAULT 0,
  valid_period    INT             NOT NULL,
  discount_amount DECIMAL(10,2)   NOT NULL DEFAULT 0,
  tier            VARCHAR(10)     NOT NULL DEFAULT 'STANDARD',
  PRIMARY KEY (membership_id),
  UNIQUE KEY uq_memberships_id_tier (membership_id, tier),
  CONSTRAINT ck_memberships_tier CHECK (tier IN ('STANDARD','VIP','BASIC')),
  CONSTRAINT ck_memberships_period CHECK (valid_period >= 1)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		// tier is pinned to VIP, and the composite FK only matches a VIP
		// membership, so a membership cannot carry both specializations.
		Name:    TableVIPMemberships,
		Columns: []string{"membership_id", "tier", "spa_access", "free_guest_passes", "personal_trainer_discount"},
		DDL: `CREATE TABLE IF NOT EXISTS vip_memberships (
  membership_id             BIGINT UNSIGNED NOT NULL,
  tier                      VARCHAR(10)     NOT NULL DEFAULT 'VIP',
  spa_access                TINYINT(1)      NOT NULL DEFAULT 0,
  free_guest_passes         INT             NOT NULL DEFAULT 0,
  personal_trainer_discount DECIMAL(10,2)   NOT NULL DEFAULT 0,
  PRIMARY KEY (membership_id),
  CONSTRAINT ck_vip_tier CHECK (tier = 'VIP'),
  CONSTRAINT fk_vip_membership FOREIGN KEY (membership_id, tier)
    REFERENCES memberships (membership_id, tier)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableBasicMembership,
		Columns: []string{"membership_id", "tier", "max_sessions_per_month", "gym_access_hours"},
		DDL: `CREATE TABLE IF NOT EXISTS basic_memberships (
  membership_id          BIGINT UNSIGNED NOT NULL,
  tier                   VARCHAR(10)     NOT NULL DEFAULT 'BASIC',
  max_sessions_per_month INT             NOT NULL,
  gym_access_hours       INT             NOT NULL,
  PRIMARY KEY (membership_id),
  CONSTRAINT ck_basic_tier CHECK (tier = 'BASIC'),
  CONSTRAINT fk_basic_membership FOREIGN KEY (membership_id, tier)
    REFERENCES memberships (membership_id, tier)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableUsers,
		Key:     "user_id",
		Columns: []string{"membership_id", "user_name", "user_email", "user_phone_number", "date_of_birth", "registration_date"},
		DDL: `CREATE TABLE IF NOT EXISTS users (
  user_id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  membership_id     BIGINT UNSIGNED NOT NULL,
  user_name         VARCHAR(100)    NOT NULL,
  user_email        VARCHAR(100)    NOT NULL DEFAULT '',
  user_phone_number VARCHAR(20)     NOT NULL DEFAULT '',
  date_of_birth     DATE            NULL,
  registration_date DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (user_id),
  CONSTRAINT fk_users_membership FOREIGN KEY (membership_id) REFERENCES memberships (membership_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableTrainers,
		Key:     "trainer_id",
		Columns: []string{"trainer_name", "trainer_specialization", "trainer_phone_number", "trainer_email"},
		DDL: `CREATE TABLE IF NOT EXISTS trainers (
  trainer_id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  trainer_name           VARCHAR(100)    NOT NULL,
  trainer_specialization VARCHAR(100)    NOT NULL DEFAULT '',
  trainer_phone_number   VARCHAR(20)     NOT NULL DEFAULT '',
  trainer_email          VARCHAR(100)    NOT NULL DEFAULT '',
  PRIMARY KEY (trainer_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableWorkoutSessions,
		Key:     "workout_id",
		Columns: []string{"user_id", "workout_time", "workout_duration", "calories_burned"},
		DDL: `CREATE TABLE IF NOT EXISTS workout_sessions (
  workout_id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  user_id          BIGINT UNSIGNED NOT NULL,
  workout_time     DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
  workout_duration INT             NOT NULL,
  calories_burned  DECIMAL(10,2)   NOT NULL DEFAULT 0,
  PRIMARY KEY (workout_id),
  KEY idx_workout_sessions_time (workout_time),
  CONSTRAINT ck_workout_duration CHECK (workout_duration >= 1),
  CONSTRAINT fk_workout_sessions_user FOREIGN KEY (user_id) REFERENCES users (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableEquipment,
		Key:     "equipment_id",
		Columns: []string{"equipment_name", "equipment_category", "last_maintenance_date"},
		DDL: `CREATE TABLE IF NOT EXISTS workout_equipment (
  equipment_id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  equipment_name        VARCHAR(100)    NOT NULL,
  equipment_category    VARCHAR(50)     NOT NULL DEFAULT '',
  last_maintenance_date DATE            NULL,
  PRIMARY KEY (equipment_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableEquipmentUsage,
		Columns: []string{"equipment_id", "workout_id", "usage_duration"},
		DDL: `CREATE TABLE IF NOT EXISTS workout_equipment_usage (
  equipment_id   BIGINT UNSIGNED NOT NULL,
  workout_id     BIGINT UNSIGNED NOT NULL,
  usage_duration INT             NOT NULL,
  PRIMARY KEY (equipment_id, workout_id),
  KEY idx_equipment_usage_workout (workout_id),
  CONSTRAINT ck_usage_duration CHECK (usage_duration >= 1),
  CONSTRAINT fk_usage_equipment FOREIGN KEY (equipment_id) REFERENCES workout_equipment (equipment_id),
  CONSTRAINT fk_usage_workout FOREIGN KEY (workout_id) REFERENCES workout_sessions (workout_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableAttendanceLogs,
		Key:     "log_id",
		Columns: []string{"user_id", "check_in_time", "check_out_time"},
		DDL: `CREATE TABLE IF NOT EXISTS attendance_logs (
  log_id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  user_id        BIGINT UNSIGNED NOT NULL,
  check_in_time  DATETIME        NOT NULL,
  check_out_time DATETIME        NULL,
  PRIMARY KEY (log_id),
  KEY idx_attendance_check_in (check_in_time),
  KEY idx_attendance_user_check_in (user_id, check_in_time),
  CONSTRAINT fk_attendance_user FOREIGN KEY (user_id) REFERENCES users (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableUserStatus,
		Key:     "user_status_id",
		Columns: []string{"user_id", "weight", "height", "fat_percentage", "bmi", "time_measured"},
		DDL: `CREATE TABLE IF NOT EXISTS user_status (
  user_status_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  user_id        BIGINT UNSIGNED NOT NULL,
  weight         DECIMAL(5,2)    NOT NULL,
  height         DECIMAL(5,2)    NOT NULL,
  fat_percentage DECIMAL(5,2)    NOT NULL DEFAULT 0,
  bmi            DECIMAL(5,2)    NOT NULL,
  time_measured  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (user_status_id),
  KEY idx_user_status_time (time_measured),
  CONSTRAINT ck_user_status_height CHECK (height > 0),
  CONSTRAINT fk_user_status_user FOREIGN KEY (user_id) REFERENCES users (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TablePayments,
		Key:     "payment_id",
		Columns: []string{"user_id", "amount", "payment_date", "payment_method"},
		DDL: `CREATE TABLE IF NOT EXISTS payments (
  payment_id     BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  user_id        BIGINT UNSIGNED NOT NULL,
  amount         DECIMAL(10,2)   NOT NULL,
  payment_date   DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
  payment_method VARCHAR(50)     NOT NULL,
  PRIMARY KEY (payment_id),
  KEY idx_payments_date (payment_date),
  CONSTRAINT fk_payments_user FOREIGN KEY (user_id) REFERENCES users (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableSessions,
		Key:     "session_id",
		Columns: []string{"trainer_id", "user_id", "session_date", "start_time", "end_time"},
		DDL: `CREATE TABLE IF NOT EXISTS session_schedules (
  session_id   BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  trainer_id   BIGINT UNSIGNED NOT NULL,
  user_id      BIGINT UNSIGNED NOT NULL,
  session_date DATE            NOT NULL,
  start_time   TIME            NOT NULL,
  end_time     TIME            NOT NULL,
  PRIMARY KEY (session_id),
  CONSTRAINT fk_sessions_trainer FOREIGN KEY (trainer_id) REFERENCES trainers (trainer_id),
  CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableTrainingPlans,
		Key:     "plan_id",
		Columns: []string{"trainer_id", "user_id", "plan_details", "plan_start_date", "duration", "progress_status"},
		DDL: `CREATE TABLE IF NOT EXISTS personal_training_plans (
  plan_id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  trainer_id      BIGINT UNSIGNED NOT NULL,
  user_id         BIGINT UNSIGNED NOT NULL,
  plan_details    TEXT            NOT NULL,
  plan_start_date DATE            NOT NULL,
  duration        INT             NOT NULL,
  progress_status VARCHAR(50)     NOT NULL,
  PRIMARY KEY (plan_id),
  CONSTRAINT ck_plans_duration CHECK (duration >= 1),
  CONSTRAINT fk_plans_trainer FOREIGN KEY (trainer_id) REFERENCES trainers (trainer_id),
  CONSTRAINT fk_plans_user FOREIGN KEY (user_id) REFERENCES users (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name:    TableFeedback,
		Key:     "feedback_id",
		Columns: []string{"user_id", "trainer_id", "rating", "comments", "feedback_time"},
		DDL: `CREATE TABLE IF NOT EXISTS feedback (
  feedback_id   BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  user_id       BIGINT UNSIGNED NOT NULL,
  trainer_id    BIGINT UNSIGNED NOT NULL,
  rating        DECIMAL(3,2)    NOT NULL,
  comments      TEXT            NOT NULL,
  feedback_time DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (feedback_id),
  CONSTRAINT ck_feedback_rating CHECK (rating BETWEEN 1 AND 5),
  CONSTRAINT fk_feedback_user FOREIGN KEY (user_id) REFERENCES users (user_id),
  CONSTRAINT fk_feedback_trainer FOREIGN KEY (trainer_id) REFERENCES trainers (trainer_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
}

// Lookup returns the registered table with the given name.
func Lookup(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Execer is the subset of *sql.DB that EnsureSchema needs.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// EnsureSchema creates every missing table. Existing tables are left
// untouched, so running it against an initialised store is a no-op.
func EnsureSchema(ctx context.Context, db Execer, log *slog.Logger) error {
	for _, t := range Tables {
		if _, err := db.ExecContext(ctx, t.DDL); err != nil {
			return fmt.Errorf("ensure table %s: %w", t.Name, err)
		}
		log.Debug("table ensured", "table", t.Name)
	}
	log.Info("schema ready", "tables", len(Tables))
	return nil
}
