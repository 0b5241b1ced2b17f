package impl

import (
	"context"
	"log/slog"
	"time"

	"mahalla/config"
	deliverycontext "mahalla/internal/delivery/context"
	"mahalla/internal/domain/entity"
	"mahalla/internal/domain/repository"
	"mahalla/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type broadcastQueryService struct {
	broadcastRepo repository.BroadcastRepository
	cfg           *config.EmergencyConfig
	location      *time.Location
	logger        *slog.Logger
	now           func() time.Time
}

// BroadcastQueryServiceParams holds dependencies for BroadcastQueryService, injected by Fx.
type BroadcastQueryServiceParams struct {
	fx.In

	BroadcastRepo repository.BroadcastRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewBroadcastQueryService is the constructor for broadcastQueryService.
func NewBroadcastQueryService(params BroadcastQueryServiceParams) usecase.BroadcastQueryUsecase {
	return newBroadcastQueryService(params, time.Now)
}

func newBroadcastQueryService(params BroadcastQueryServiceParams, now func() time.Time) *broadcastQueryService {
	cfg := params.Config.Emergency

	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		params.Logger.Warn("Unknown time zone, falling back to local time",
			slog.String("timeZone", cfg.TimeZone),
			slog.Any("error", err),
		)
		location = time.Local
	}

	return &broadcastQueryService{
		broadcastRepo: params.BroadcastRepo,
		cfg:           cfg,
		location:      location,
		logger:        params.Logger,
		now:           now,
	}
}

func (srv *broadcastQueryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *broadcastQueryService) localNow() time.Time {
	return srv.now().In(srv.location)
}

// RecentBroadcasts returns the newest broadcasts for the dashboard.
func (srv *broadcastQueryService) RecentBroadcasts(ctx context.Context) ([]*entity.EmergencyBroadcast, error) {
	broadcasts, err := srv.broadcastRepo.ListRecent(ctx, srv.cfg.RecentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent broadcasts")
	}

	return broadcasts, nil
}

// History translates the period, type and priority selectors into a filter. Unknown or
// "all" selectors leave the corresponding predicate unset.
func (srv *broadcastQueryService) History(ctx context.Context, query usecase.HistoryQuery) (*usecase.HistoryResult, error) {
	period := entity.ParseHistoryPeriod(query.Period)

	filter := entity.HistoryFilter{
		Since: entity.StartOfWindow(srv.localNow(), period.Days()),
	}
	if emergencyType, ok := entity.ParseEmergencyTypeLabel(query.Type); ok {
		filter.EmergencyType = &emergencyType
	}
	if priority, ok := entity.ParsePriorityLabel(query.Priority); ok {
		filter.Priority = &priority
	}

	broadcasts, err := srv.broadcastRepo.ListHistory(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list broadcast history")
	}

	srv.log(ctx).Debug("Broadcast history loaded",
		slog.String("period", string(period)),
		slog.Int("count", len(broadcasts)),
	)

	return &usecase.HistoryResult{
		Period:     period,
		Filter:     filter,
		Broadcasts: broadcasts,
	}, nil
}

// Statistics aggregates the statistics panel. The average response time is a configured
// constant, not a measurement.
func (srv *broadcastQueryService) Statistics(ctx context.Context) (*entity.BroadcastStats, error) {
	total, err := srv.broadcastRepo.CountBroadcasts(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count broadcasts")
	}

	recent, err := srv.broadcastRepo.CountBroadcasts(ctx, entity.StartOfWindow(srv.localNow(), srv.cfg.StatsWindowDays))
	if err != nil {
		return nil, errors.Wrap(err, "failed to count recent broadcasts")
	}

	logs, err := srv.broadcastRepo.CountSmsLogs(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sms logs")
	}

	byType, err := srv.broadcastRepo.CountByType(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group broadcasts by type")
	}

	byPriority, err := srv.broadcastRepo.CountByPriority(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group broadcasts by priority")
	}

	return &entity.BroadcastStats{
		TotalBroadcasts:    total,
		RecentBroadcasts:   recent,
		TotalSmsLogs:       logs,
		AvgResponseMinutes: srv.cfg.AvgResponseMinutes,
		ByType:             byType,
		ByPriority:         byPriority,
	}, nil
}
