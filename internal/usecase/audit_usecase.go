package usecase

import (
	"context"

	"mahalla/internal/domain/service"
)

// AuditResult compares a broadcast's recorded sent count with its delivery-log rows.
type AuditResult struct {
	BroadcastID int64 `json:"broadcast_id"`
	SentCount   int   `json:"sent_count"`
	LogRows     int64 `json:"log_rows"`
}

// Consistent reports whether the count invariant holds.
func (r AuditResult) Consistent() bool {
	return int64(r.SentCount) == r.LogRows
}

// AuditUsecase verifies committed broadcasts on behalf of the audit worker.
type AuditUsecase interface {
	// VerifyBroadcast checks the sent count of the broadcast named by the event.
	VerifyBroadcast(ctx context.Context, event *service.BroadcastSentEvent) (*AuditResult, error)
}
