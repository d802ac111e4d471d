package repository

import (
	"roomhub/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates the schema. On Postgres it also installs the exclusion
// constraint rejecting overlapping confirmed bookings per room and date,
// which backstops the in-transaction conflict check under concurrency.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Organization{},
		&domain.Room{},
		&bookingModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS idx_no_confirmed_overlap`,
		`ALTER TABLE bookings ADD CONSTRAINT idx_no_confirmed_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				date WITH =,
				tsrange(
					(date || ' ' || start_time)::timestamp,
					(date || ' ' || end_time)::timestamp
				) WITH &&
			) WHERE (status = 'confirmed')`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
