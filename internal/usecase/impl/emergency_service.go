// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mahalla/config"
	deliverycontext "mahalla/internal/delivery/context"
	"mahalla/internal/domain/entity"
	domainerrors "mahalla/internal/domain/errors"
	"mahalla/internal/domain/repository"
	"mahalla/internal/domain/service"
	"mahalla/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// emergencyService implements the EmergencyUsecase interface.
type emergencyService struct {
	txManager   repository.TransactionManager
	citizenRepo repository.CitizenRepository
	publisher   service.EventPublisher
	cfg         *config.EmergencyConfig
	logger      *slog.Logger
	now         func() time.Time
}

// EmergencyServiceParams holds dependencies for EmergencyService, injected by Fx.
type EmergencyServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CitizenRepo repository.CitizenRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewEmergencyService is the constructor for emergencyService.
func NewEmergencyService(params EmergencyServiceParams) usecase.EmergencyUsecase {
	return newEmergencyService(params, time.Now)
}

func newEmergencyService(params EmergencyServiceParams, now func() time.Time) *emergencyService {
	return &emergencyService{
		txManager:   params.TxManager,
		citizenRepo: params.CitizenRepo,
		publisher:   params.Publisher,
		cfg:         params.Config.Emergency,
		logger:      params.Logger,
		now:         now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *emergencyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EstimateRecipients returns count(active) for "all", count(active with phone) for phone
// scopes, and half of it for area and age scopes. The halving is only a display estimate.
func (srv *emergencyService) EstimateRecipients(ctx context.Context, scope entity.RecipientScope) (int64, error) {
	if scope == entity.ScopeAll {
		count, err := srv.citizenRepo.CountActive(ctx)
		if err != nil {
			return 0, errors.Wrap(err, "failed to estimate recipients")
		}

		return count, nil
	}

	withPhone, err := srv.citizenRepo.CountActiveWithPhone(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to estimate recipients")
	}

	switch scope {
	case entity.ScopeByArea, entity.ScopeByAge:
		return withPhone / 2, nil
	default:
		return withPhone, nil
	}
}

// RecipientSummary returns the sidebar overview of the citizen registry.
func (srv *emergencyService) RecipientSummary(ctx context.Context) (entity.RecipientSummary, error) {
	total, err := srv.citizenRepo.CountActive(ctx)
	if err != nil {
		return entity.RecipientSummary{}, errors.Wrap(err, "failed to count active citizens")
	}

	withPhone, err := srv.citizenRepo.CountActiveWithPhone(ctx)
	if err != nil {
		return entity.RecipientSummary{}, errors.Wrap(err, "failed to count citizens with phone")
	}

	return entity.NewRecipientSummary(total, withPhone), nil
}

// Counter describes the live character counter for a message body.
func (srv *emergencyService) Counter(text string) entity.CharCounter {
	return entity.NewCharCounter(text, srv.cfg.CounterWarnAt, srv.cfg.CounterLimitAt)
}

// SendQuick validates a quick-send form and sends it with the catalog entry's type and priority.
func (srv *emergencyService) SendQuick(ctx context.Context, input usecase.QuickSendInput) (*usecase.SendResult, error) {
	if err := validateSendFields(input.Title, input.MessageText); err != nil {
		return nil, err
	}

	tpl := entity.ResolveQuickTemplate(input.EmergencyType)
	if len(input.Areas) > 0 {
		srv.log(ctx).Info("Selected areas are recorded but not used for targeting",
			slog.Any("areas", input.Areas),
		)
	}

	return srv.send(ctx, sendRequest{
		title:         strings.TrimSpace(input.Title),
		messageText:   input.Placeholders.Fill(input.MessageText),
		emergencyType: tpl.Type,
		priority:      tpl.Priority,
		scope:         input.Scope,
		sendAt:        input.SendAt,
		operatorID:    input.OperatorID,
	})
}

// SendCustom validates a custom-send form and sends it.
func (srv *emergencyService) SendCustom(ctx context.Context, input usecase.CustomSendInput) (*usecase.SendResult, error) {
	if err := validateSendFields(input.Title, input.MessageText); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == 0 {
		priority = entity.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("priority must be 1, 2 or 3")
	}

	if len(input.AgeGroups) > 0 {
		srv.log(ctx).Info("Selected age groups are recorded but not used for targeting",
			slog.Any("ageGroups", input.AgeGroups),
		)
	}

	var affectedArea *string
	if area := strings.TrimSpace(input.AffectedArea); area != "" {
		affectedArea = &area
	}

	return srv.send(ctx, sendRequest{
		title:         strings.TrimSpace(input.Title),
		messageText:   strings.TrimSpace(input.MessageText),
		emergencyType: resolveCategory(input.Category),
		priority:      priority,
		scope:         input.Scope,
		affectedArea:  affectedArea,
		sendAt:        input.SendAt,
		operatorID:    input.OperatorID,
	})
}

type sendRequest struct {
	title         string
	messageText   string
	emergencyType entity.EmergencyType
	priority      entity.Priority
	scope         entity.RecipientScope
	affectedArea  *string
	sendAt        *time.Time
	operatorID    *int64
}

// send writes the broadcast and one SENT log row per active citizen with a phone in a
// single transaction. The scope only affects the estimate returned to the operator.
func (srv *emergencyService) send(ctx context.Context, req sendRequest) (*usecase.SendResult, error) {
	logger := srv.log(ctx)

	if req.scope != entity.ScopeAll {
		logger.Warn("Recipient scope is not applied; sending to every active citizen with a phone",
			slog.String("scope", string(req.scope)),
		)
	}
	if req.sendAt != nil && req.sendAt.After(srv.now()) {
		logger.Warn("Scheduled sending is not supported; sending immediately",
			slog.Time("sendAt", *req.sendAt),
		)
	}

	estimated, err := srv.EstimateRecipients(ctx, req.scope)
	if err != nil {
		logger.Warn("Failed to estimate recipients", slog.Any("error", err))
		estimated = -1
	}

	var (
		broadcast *entity.EmergencyBroadcast
		delivered int
	)
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		recipients, err := factory.NewCitizenRepository().ListActiveWithPhone(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list recipients")
		}

		recipients = withPhone(recipients)
		if len(recipients) == 0 {
			return domainerrors.ErrNoRecipients
		}

		sentAt := srv.now()
		broadcast = &entity.EmergencyBroadcast{
			Title:         req.title,
			MessageText:   req.messageText,
			EmergencyType: req.emergencyType,
			Priority:      req.priority,
			AffectedArea:  req.affectedArea,
			SentCount:     len(recipients),
			CreatedBy:     req.operatorID,
			CreatedAt:     sentAt,
		}

		broadcastRepo := factory.NewBroadcastRepository()
		if err := broadcastRepo.CreateBroadcast(ctx, broadcast); err != nil {
			return errors.Wrap(err, "failed to create broadcast")
		}

		logs := make([]*entity.SmsLogEntry, 0, len(recipients))
		for _, citizen := range recipients {
			logs = append(logs, &entity.SmsLogEntry{
				CampaignID:  broadcast.ID,
				CitizenID:   citizen.ID,
				Phone:       citizen.Phone,
				MessageText: req.messageText,
				Status:      entity.SmsStatusSent,
				SentAt:      sentAt,
			})
		}
		if err := broadcastRepo.BatchCreateSmsLogs(ctx, logs); err != nil {
			return errors.Wrap(err, "failed to create sms logs")
		}

		delivered = len(logs)

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoRecipients) {
			logger.Warn("Emergency broadcast not sent: no recipients")

			return nil, domainerrors.ErrNoRecipients
		}

		logger.Error("Failed to send emergency broadcast",
			slog.String("emergencyType", string(req.emergencyType)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSendFailed
	}

	if estimated < 0 {
		estimated = int64(delivered)
	}

	logger.Info("Emergency broadcast sent",
		slog.Int64("broadcastId", broadcast.ID),
		slog.String("emergencyType", string(broadcast.EmergencyType)),
		slog.Int("priority", int(broadcast.Priority)),
		slog.Int("delivered", delivered),
	)

	srv.publishSent(ctx, broadcast)

	return &usecase.SendResult{
		Broadcast: broadcast,
		Delivered: delivered,
		Estimated: estimated,
	}, nil
}

// publishSent notifies the audit worker; the broadcast is already committed, so a
// publish failure is only logged.
func (srv *emergencyService) publishSent(ctx context.Context, broadcast *entity.EmergencyBroadcast) {
	if srv.publisher == nil {
		return
	}

	event := &service.BroadcastSentEvent{
		EventID:       uuid.NewString(),
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		BroadcastID:   broadcast.ID,
		EmergencyType: string(broadcast.EmergencyType),
		Priority:      int(broadcast.Priority),
		SentCount:     broadcast.SentCount,
		CreatedBy:     broadcast.CreatedBy,
		CreatedAt:     broadcast.CreatedAt,
	}
	if err := srv.publisher.PublishBroadcastSent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish broadcast event",
			slog.Int64("broadcastId", broadcast.ID),
			slog.Any("error", err),
		)
	}
}

func validateSendFields(title, message string) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if strings.TrimSpace(message) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("message text is required")
	}

	return nil
}

// resolveCategory maps a custom-form category (name, Russian title or code) to the stored type.
func resolveCategory(category string) entity.EmergencyType {
	category = strings.TrimSpace(category)
	if category == "" {
		return entity.EmergencyTypeGeneral
	}

	for _, c := range entity.CustomCategories {
		if strings.EqualFold(category, c.Name) || category == c.Title || entity.EmergencyType(category) == c.Code() {
			return c.Code()
		}
	}

	return entity.CategoryCode(category)
}

func withPhone(citizens []*entity.Citizen) []*entity.Citizen {
	out := citizens[:0:0]
	for _, citizen := range citizens {
		if citizen != nil && citizen.HasPhone() {
			out = append(out, citizen)
		}
	}

	return out
}
