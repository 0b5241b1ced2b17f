package postgres

import (
	"context"

	"mahalla/internal/errors"
	"mahalla/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables owned by this service.
// The citizens table belongs to the citizen registry and is left alone.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.EmergencySmsModel{},
		&model.SmsLogModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate emergency tables")
	}

	return nil
}
