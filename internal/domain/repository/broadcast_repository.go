// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"mahalla/internal/domain/entity"
)

// ErrBroadcastNotFound is returned when a broadcast is not found.
var ErrBroadcastNotFound = errors.New("broadcast not found")

// BroadcastRepository defines the interface for emergency broadcast database operations.
type BroadcastRepository interface {
	// CreateBroadcast persists a new broadcast and fills its ID and CreatedAt.
	CreateBroadcast(ctx context.Context, broadcast *entity.EmergencyBroadcast) error

	// BatchCreateSmsLogs persists the delivery-log rows of a broadcast in batches.
	BatchCreateSmsLogs(ctx context.Context, logs []*entity.SmsLogEntry) error

	// FindBroadcastByID retrieves a broadcast by its ID.
	FindBroadcastByID(ctx context.Context, id int64) (*entity.EmergencyBroadcast, error)

	// ListRecent returns the newest broadcasts first, read from the primary.
	ListRecent(ctx context.Context, limit int) ([]*entity.EmergencyBroadcast, error)

	// ListHistory returns broadcasts matching every set predicate of the filter, newest first.
	ListHistory(ctx context.Context, filter entity.HistoryFilter) ([]*entity.EmergencyBroadcast, error)

	// CountBroadcasts counts broadcasts created at or after since; nil counts all of them.
	CountBroadcasts(ctx context.Context, since *time.Time) (int64, error)

	// CountSmsLogs counts delivery-log rows; a nil campaign counts every row ever recorded.
	CountSmsLogs(ctx context.Context, campaignID *int64) (int64, error)

	// CountByType groups broadcasts by emergency type, ordered by type.
	CountByType(ctx context.Context) ([]entity.TypeCount, error)

	// CountByPriority groups broadcasts by priority, ordered by priority.
	CountByPriority(ctx context.Context) ([]entity.PriorityCount, error)
}
