package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"mahalla/internal/domain/entity"
	domainerrors "mahalla/internal/domain/errors"
	"mahalla/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var broadcastColumns = []string{
	"id", "title", "message_text", "emergency_type", "priority",
	"affected_area", "sent_count", "created_by", "created_at",
}

func TestBroadcastRepository_CreateBroadcast(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)

	createdAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	operatorID := int64(7)
	broadcast := &entity.EmergencyBroadcast{
		Title:         "💧 Отключение воды",
		MessageText:   "Отключение воды с 09:00 до 18:00",
		EmergencyType: entity.EmergencyTypeWater,
		Priority:      entity.PriorityMedium,
		SentCount:     3,
		CreatedBy:     &operatorID,
		CreatedAt:     createdAt,
	}

	mock.ExpectQuery(`INSERT INTO "emergency_sms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	err := repo.CreateBroadcast(context.Background(), broadcast)

	require.NoError(t, err)
	assert.Equal(t, int64(42), broadcast.ID)
	assert.Equal(t, createdAt, broadcast.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_CreateBroadcast_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)

	mock.ExpectQuery(`INSERT INTO "emergency_sms"`).
		WillReturnError(errors.New("connection reset"))

	err := repo.CreateBroadcast(context.Background(), &entity.EmergencyBroadcast{
		Title:       "t",
		MessageText: "m",
		Priority:    entity.PriorityLow,
		CreatedAt:   time.Now(),
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestBroadcastRepository_BatchCreateSmsLogs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)

	sentAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	logs := []*entity.SmsLogEntry{
		{CampaignID: 42, CitizenID: 1, Phone: "+998901111111", MessageText: "m", Status: entity.SmsStatusSent, SentAt: sentAt},
		{CampaignID: 42, CitizenID: 2, Phone: "+998902222222", MessageText: "m", Status: entity.SmsStatusSent, SentAt: sentAt},
	}

	mock.ExpectQuery(`INSERT INTO "sms_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100).AddRow(101))

	err := repo.BatchCreateSmsLogs(context.Background(), logs)

	require.NoError(t, err)
	assert.Equal(t, int64(100), logs[0].ID)
	assert.Equal(t, int64(101), logs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_BatchCreateSmsLogs_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)

	require.NoError(t, repo.BatchCreateSmsLogs(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_ListHistory_AllPredicatesAnded(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)

	since := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	waterType := entity.EmergencyTypeWater
	high := entity.PriorityHigh
	createdAt := since.Add(48 * time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "emergency_sms" WHERE created_at >= \$1 AND emergency_type = \$2 AND priority = \$3 ORDER BY created_at DESC`).
		WithArgs(since, "water", 3).
		WillReturnRows(sqlmock.NewRows(broadcastColumns).
			AddRow(5, "Вода", "Отключение воды", "water", 3, nil, 12, nil, createdAt))

	broadcasts, err := repo.ListHistory(context.Background(), entity.HistoryFilter{
		Since:         &since,
		EmergencyType: &waterType,
		Priority:      &high,
	})

	require.NoError(t, err)
	require.Len(t, broadcasts, 1)
	assert.Equal(t, int64(5), broadcasts[0].ID)
	assert.Equal(t, entity.EmergencyTypeWater, broadcasts[0].EmergencyType)
	assert.Equal(t, entity.PriorityHigh, broadcasts[0].Priority)
	assert.Equal(t, 12, broadcasts[0].SentCount)
	assert.Nil(t, broadcasts[0].AffectedArea)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_ListHistory_NoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "emergency_sms" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(broadcastColumns))

	broadcasts, err := repo.ListHistory(context.Background(), entity.HistoryFilter{})

	require.NoError(t, err)
	assert.Empty(t, broadcasts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_ListRecent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)

	area := "ул. Навои"
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "emergency_sms" ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(broadcastColumns).
			AddRow(2, "b", "second", "gas", 3, area, 4, 7, now).
			AddRow(1, "a", "first", "water", 2, nil, 4, 7, now.Add(-time.Hour)))

	broadcasts, err := repo.ListRecent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, broadcasts, 2)
	assert.Equal(t, "ул. Навои", broadcasts[0].AffectedAreaOrEmpty())
	assert.Equal(t, int64(1), broadcasts[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_FindBroadcastByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "emergency_sms" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(broadcastColumns))

	_, err := repo.FindBroadcastByID(context.Background(), 99)

	assert.ErrorIs(t, err, repository.ErrBroadcastNotFound)
}

func TestBroadcastRepository_Counts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)
	ctx := context.Background()
	since := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	campaignID := int64(42)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "emergency_sms"$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "emergency_sms" WHERE created_at >= \$1`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "sms_logs"$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(120))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "sms_logs" WHERE campaign_id = \$1`).
		WithArgs(campaignID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	total, err := repo.CountBroadcasts(ctx, nil)
	require.NoError(t, err)
	recent, err := repo.CountBroadcasts(ctx, &since)
	require.NoError(t, err)
	logs, err := repo.CountSmsLogs(ctx, nil)
	require.NoError(t, err)
	campaignLogs, err := repo.CountSmsLogs(ctx, &campaignID)
	require.NoError(t, err)

	assert.Equal(t, int64(9), total)
	assert.Equal(t, int64(4), recent)
	assert.Equal(t, int64(120), logs)
	assert.Equal(t, int64(12), campaignLogs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepository_Breakdowns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBroadcastRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT emergency_type, COUNT\(\*\) AS count FROM "emergency_sms" GROUP BY .*emergency_type.* ORDER BY emergency_type`).
		WillReturnRows(sqlmock.NewRows([]string{"emergency_type", "count"}).
			AddRow("gas", 2).
			AddRow("water", 5))
	mock.ExpectQuery(`SELECT priority, COUNT\(\*\) AS count FROM "emergency_sms" GROUP BY .*priority.* ORDER BY priority`).
		WillReturnRows(sqlmock.NewRows([]string{"priority", "count"}).
			AddRow(1, 1).
			AddRow(3, 6))

	byType, err := repo.CountByType(ctx)
	require.NoError(t, err)
	byPriority, err := repo.CountByPriority(ctx)
	require.NoError(t, err)

	assert.Equal(t, []entity.TypeCount{
		{EmergencyType: entity.EmergencyTypeGas, Count: 2},
		{EmergencyType: entity.EmergencyTypeWater, Count: 5},
	}, byType)
	assert.Equal(t, []entity.PriorityCount{
		{Priority: entity.PriorityLow, Count: 1},
		{Priority: entity.PriorityHigh, Count: 6},
	}, byPriority)
	assert.NoError(t, mock.ExpectationsWereMet())
}
