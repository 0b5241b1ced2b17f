package impl

import (
	"context"
	"log/slog"

	deliverycontext "mahalla/internal/delivery/context"
	"mahalla/internal/domain/repository"
	"mahalla/internal/domain/service"
	"mahalla/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type auditService struct {
	broadcastRepo repository.BroadcastRepository
	logger        *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	BroadcastRepo repository.BroadcastRepository
	Logger        *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		broadcastRepo: params.BroadcastRepo,
		logger:        params.Logger,
	}
}

func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyBroadcast compares the stored sent count with the number of delivery-log rows.
// A mismatch is reported in the result and logged; it is not an error.
func (srv *auditService) VerifyBroadcast(ctx context.Context, event *service.BroadcastSentEvent) (*usecase.AuditResult, error) {
	if event == nil || event.BroadcastID <= 0 {
		return nil, errors.New("broadcast event without broadcast id")
	}

	broadcast, err := srv.broadcastRepo.FindBroadcastByID(ctx, event.BroadcastID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load broadcast %d", event.BroadcastID)
	}

	rows, err := srv.broadcastRepo.CountSmsLogs(ctx, &broadcast.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count sms logs of broadcast %d", broadcast.ID)
	}

	result := &usecase.AuditResult{
		BroadcastID: broadcast.ID,
		SentCount:   broadcast.SentCount,
		LogRows:     rows,
	}

	logger := srv.log(ctx).With(
		slog.Int64("broadcastId", result.BroadcastID),
		slog.Int("sentCount", result.SentCount),
		slog.Int64("logRows", result.LogRows),
	)
	if !result.Consistent() {
		logger.Warn("Broadcast sent count does not match delivery logs")

		return result, nil
	}

	logger.Info("Broadcast audit passed")

	return result, nil
}
