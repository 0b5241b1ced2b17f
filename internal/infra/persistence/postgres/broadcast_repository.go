// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mahalla/internal/domain/entity"
	domainerrors "mahalla/internal/domain/errors"
	"mahalla/internal/domain/repository"
	"mahalla/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const smsLogBatchSize = 100

// broadcastRepository implements the repository.BroadcastRepository interface.
type broadcastRepository struct {
	db *gorm.DB
}

// NewBroadcastRepository is the constructor for broadcastRepository.
func NewBroadcastRepository(db *gorm.DB) repository.BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// CreateBroadcast persists a new broadcast.
func (repo *broadcastRepository) CreateBroadcast(ctx context.Context, broadcast *entity.EmergencyBroadcast) error {
	broadcastM := fromBroadcastDomain(broadcast)

	if err := repo.db.WithContext(ctx).Create(broadcastM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("priority must be 1, 2 or 3")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required broadcast information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create broadcast")
	}

	broadcast.ID = broadcastM.ID
	broadcast.CreatedAt = broadcastM.CreatedAt

	return nil
}

// BatchCreateSmsLogs persists the delivery-log rows in batches.
func (repo *broadcastRepository) BatchCreateSmsLogs(ctx context.Context, logs []*entity.SmsLogEntry) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.SmsLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromSmsLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, smsLogBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid campaign or citizen reference in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create sms logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// FindBroadcastByID retrieves a broadcast by its ID.
func (repo *broadcastRepository) FindBroadcastByID(ctx context.Context, id int64) (*entity.EmergencyBroadcast, error) {
	var broadcastM model.EmergencySmsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&broadcastM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBroadcastNotFound
		}

		return nil, errors.Wrap(err, "failed to find broadcast by ID")
	}

	return toBroadcastDomain(&broadcastM), nil
}

// ListRecent returns the newest broadcasts. It reads from the primary so a broadcast
// appears on the dashboard right after it was sent.
func (repo *broadcastRepository) ListRecent(ctx context.Context, limit int) ([]*entity.EmergencyBroadcast, error) {
	var broadcastModels []*model.EmergencySmsModel

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&broadcastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent broadcasts")
	}

	return toBroadcastDomains(broadcastModels), nil
}

// ListHistory returns broadcasts matching every set predicate of the filter.
func (repo *broadcastRepository) ListHistory(ctx context.Context, filter entity.HistoryFilter) ([]*entity.EmergencyBroadcast, error) {
	var broadcastModels []*model.EmergencySmsModel

	query := repo.db.WithContext(ctx).Model(&model.EmergencySmsModel{})
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}
	if filter.EmergencyType != nil {
		query = query.Where("emergency_type = ?", string(*filter.EmergencyType))
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", int(*filter.Priority))
	}

	if err := query.Order("created_at DESC").Find(&broadcastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list broadcast history")
	}

	return toBroadcastDomains(broadcastModels), nil
}

// CountBroadcasts counts broadcasts created at or after since.
func (repo *broadcastRepository) CountBroadcasts(ctx context.Context, since *time.Time) (int64, error) {
	var count int64

	query := repo.db.WithContext(ctx).Model(&model.EmergencySmsModel{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count broadcasts")
	}

	return count, nil
}

// CountSmsLogs counts delivery-log rows, optionally for one campaign.
func (repo *broadcastRepository) CountSmsLogs(ctx context.Context, campaignID *int64) (int64, error) {
	var count int64

	query := repo.db.WithContext(ctx).Model(&model.SmsLogModel{})
	if campaignID != nil {
		query = query.Where("campaign_id = ?", *campaignID)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sms logs")
	}

	return count, nil
}

type typeCountRow struct {
	EmergencyType string
	Count         int64
}

// CountByType groups broadcasts by emergency type.
func (repo *broadcastRepository) CountByType(ctx context.Context) ([]entity.TypeCount, error) {
	var rows []typeCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.EmergencySmsModel{}).
		Select("emergency_type, COUNT(*) AS count").
		Group("emergency_type").
		Order("emergency_type").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count broadcasts by type")
	}

	counts := make([]entity.TypeCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.TypeCount{
			EmergencyType: entity.EmergencyType(row.EmergencyType),
			Count:         row.Count,
		})
	}

	return counts, nil
}

type priorityCountRow struct {
	Priority int
	Count    int64
}

// CountByPriority groups broadcasts by priority.
func (repo *broadcastRepository) CountByPriority(ctx context.Context) ([]entity.PriorityCount, error) {
	var rows []priorityCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.EmergencySmsModel{}).
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Order("priority").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count broadcasts by priority")
	}

	counts := make([]entity.PriorityCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.PriorityCount{
			Priority: entity.Priority(row.Priority),
			Count:    row.Count,
		})
	}

	return counts, nil
}

// --- Mapper Functions ---

func toBroadcastDomain(data *model.EmergencySmsModel) *entity.EmergencyBroadcast {
	if data == nil {
		return nil
	}

	return &entity.EmergencyBroadcast{
		ID:            data.ID,
		Title:         data.Title,
		MessageText:   data.MessageText,
		EmergencyType: entity.EmergencyType(data.EmergencyType),
		Priority:      entity.Priority(data.Priority),
		AffectedArea:  data.AffectedArea,
		SentCount:     data.SentCount,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
	}
}

func toBroadcastDomains(models []*model.EmergencySmsModel) []*entity.EmergencyBroadcast {
	broadcasts := make([]*entity.EmergencyBroadcast, 0, len(models))
	for _, broadcastM := range models {
		broadcasts = append(broadcasts, toBroadcastDomain(broadcastM))
	}

	return broadcasts
}

func fromBroadcastDomain(data *entity.EmergencyBroadcast) *model.EmergencySmsModel {
	if data == nil {
		return nil
	}

	return &model.EmergencySmsModel{
		ID:            data.ID,
		Title:         data.Title,
		MessageText:   data.MessageText,
		EmergencyType: string(data.EmergencyType),
		Priority:      int(data.Priority),
		AffectedArea:  data.AffectedArea,
		SentCount:     data.SentCount,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
	}
}

func fromSmsLogDomain(data *entity.SmsLogEntry) *model.SmsLogModel {
	campaignID := data.CampaignID
	citizenID := data.CitizenID
	sentAt := data.SentAt

	return &model.SmsLogModel{
		ID:          data.ID,
		CampaignID:  &campaignID,
		CitizenID:   &citizenID,
		Phone:       data.Phone,
		MessageText: data.MessageText,
		Status:      string(data.Status),
		SentAt:      &sentAt,
		CreatedAt:   data.SentAt,
	}
}
