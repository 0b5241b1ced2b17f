package repository

import (
	"context"

	"mahalla/internal/domain/entity"
)

// CitizenRepository is the read-only view of the citizen registry used for recipient selection.
type CitizenRepository interface {
	// CountActive counts active citizens.
	CountActive(ctx context.Context) (int64, error)

	// CountActiveWithPhone counts active citizens with a non-empty phone.
	CountActiveWithPhone(ctx context.Context) (int64, error)

	// ListActiveWithPhone lists active citizens with a non-empty phone, ordered by full name.
	ListActiveWithPhone(ctx context.Context) ([]*entity.Citizen, error)
}
