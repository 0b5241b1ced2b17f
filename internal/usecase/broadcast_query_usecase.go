package usecase

import (
	"context"

	"mahalla/internal/domain/entity"
)

// HistoryQuery carries the raw history filter values; labels and codes are both accepted.
type HistoryQuery struct {
	Period   string `query:"period"`
	Type     string `query:"type"`
	Priority string `query:"priority"`
}

// HistoryResult is the filtered history with the filter actually applied.
type HistoryResult struct {
	Period     entity.HistoryPeriod         `json:"period"`
	Filter     entity.HistoryFilter         `json:"filter"`
	Broadcasts []*entity.EmergencyBroadcast `json:"broadcasts"`
}

// BroadcastQueryUsecase defines the read-side use cases of the emergency page.
type BroadcastQueryUsecase interface {
	// RecentBroadcasts returns the newest broadcasts for the dashboard.
	RecentBroadcasts(ctx context.Context) ([]*entity.EmergencyBroadcast, error)

	// History returns broadcasts matching every filter, newest first.
	History(ctx context.Context, query HistoryQuery) (*HistoryResult, error)

	// Statistics aggregates the statistics panel.
	Statistics(ctx context.Context) (*entity.BroadcastStats, error)
}
