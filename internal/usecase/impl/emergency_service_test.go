package impl

import (
	"context"
	"strings"
	"testing"

	"mahalla/internal/domain/entity"
	domainerrors "mahalla/internal/domain/errors"
	"mahalla/internal/domain/service"
	"mahalla/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func citizensWithPhones(n int) []*entity.Citizen {
	citizens := make([]*entity.Citizen, 0, n)
	for i := 1; i <= n; i++ {
		citizens = append(citizens, &entity.Citizen{
			ID:       int64(i),
			FullName: "Citizen",
			Phone:    "+99890000000" + string(rune('0'+i%10)),
			IsActive: true,
		})
	}

	return citizens
}

func TestEmergencyService_EstimateRecipients(t *testing.T) {
	tests := []struct {
		name      string
		scope     entity.RecipientScope
		setup     func(env *emergencyServiceFixture)
		wantCount int64
	}{
		{
			name:  "all counts every active citizen",
			scope: entity.ScopeAll,
			setup: func(env *emergencyServiceFixture) {
				env.citizenRepo.EXPECT().CountActive(mock.Anything).Return(int64(250), nil)
			},
			wantCount: 250,
		},
		{
			name:  "phones only counts citizens with phone",
			scope: entity.ScopePhonesOnly,
			setup: func(env *emergencyServiceFixture) {
				env.citizenRepo.EXPECT().CountActiveWithPhone(mock.Anything).Return(int64(181), nil)
			},
			wantCount: 181,
		},
		{
			name:  "selective counts citizens with phone",
			scope: entity.ScopeSelective,
			setup: func(env *emergencyServiceFixture) {
				env.citizenRepo.EXPECT().CountActiveWithPhone(mock.Anything).Return(int64(181), nil)
			},
			wantCount: 181,
		},
		{
			name:  "by area halves citizens with phone",
			scope: entity.ScopeByArea,
			setup: func(env *emergencyServiceFixture) {
				env.citizenRepo.EXPECT().CountActiveWithPhone(mock.Anything).Return(int64(181), nil)
			},
			wantCount: 90,
		},
		{
			name:  "by age halves citizens with phone",
			scope: entity.ScopeByAge,
			setup: func(env *emergencyServiceFixture) {
				env.citizenRepo.EXPECT().CountActiveWithPhone(mock.Anything).Return(int64(10), nil)
			},
			wantCount: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := createTestEmergencyService(t)
			tt.setup(env)

			count, err := env.service.EstimateRecipients(context.Background(), tt.scope)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestEmergencyService_EstimateRecipients_Error(t *testing.T) {
	env := createTestEmergencyService(t)

	env.citizenRepo.EXPECT().CountActive(mock.Anything).Return(int64(0), errors.New("db error"))

	count, err := env.service.EstimateRecipients(context.Background(), entity.ScopeAll)
	assert.Error(t, err)
	assert.Zero(t, count)
	assert.Contains(t, err.Error(), "failed to estimate recipients")
}

func TestEmergencyService_RecipientSummary(t *testing.T) {
	env := createTestEmergencyService(t)

	env.citizenRepo.EXPECT().CountActive(mock.Anything).Return(int64(200), nil)
	env.citizenRepo.EXPECT().CountActiveWithPhone(mock.Anything).Return(int64(150), nil)

	summary, err := env.service.RecipientSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(200), summary.TotalActive)
	assert.Equal(t, int64(150), summary.WithPhone)
	assert.InDelta(t, 75.0, summary.CoveragePercent, 0.001)
}

func TestEmergencyService_Counter(t *testing.T) {
	env := createTestEmergencyService(t)

	assert.Equal(t, entity.CounterGreen, env.service.Counter(strings.Repeat("a", 119)).Color)
	assert.Equal(t, entity.CounterOrange, env.service.Counter(strings.Repeat("a", 120)).Color)
	assert.Equal(t, entity.CounterRed, env.service.Counter(strings.Repeat("я", 160)).Color)
	assert.Equal(t, 160, env.service.Counter("").Limit)
}

func TestEmergencyService_SendQuick_FillsPlaceholders(t *testing.T) {
	env := createTestEmergencyService(t)
	ctx := context.Background()
	tpl := entity.ResolveQuickTemplate(entity.EmergencyTypeWater)

	env.citizenRepo.EXPECT().CountActive(mock.Anything).Return(int64(4), nil)
	env.expectTransaction()
	env.txCitizens.EXPECT().ListActiveWithPhone(mock.Anything).Return(citizensWithPhones(3), nil)

	var stored *entity.EmergencyBroadcast
	env.txBroadcast.EXPECT().
		CreateBroadcast(mock.Anything, mock.AnythingOfType("*entity.EmergencyBroadcast")).
		Run(func(_ context.Context, broadcast *entity.EmergencyBroadcast) {
			broadcast.ID = 42
			stored = broadcast
		}).
		Return(nil)

	var logs []*entity.SmsLogEntry
	env.txBroadcast.EXPECT().
		BatchCreateSmsLogs(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entries []*entity.SmsLogEntry) { logs = entries }).
		Return(nil)

	env.publisher.EXPECT().
		PublishBroadcastSent(mock.Anything, mock.MatchedBy(func(event *service.BroadcastSentEvent) bool {
			return event.BroadcastID == 42 && event.SentCount == 3 && event.EventID != ""
		})).
		Return(nil)

	result, err := env.service.SendQuick(ctx, usecase.QuickSendInput{
		EmergencyType: entity.EmergencyTypeWater,
		Title:         tpl.Title,
		MessageText:   tpl.Template + "\nМесто: {location}",
		Placeholders: entity.PlaceholderValues{
			StartTime: "09:00",
			EndTime:   "18:00",
			Location:  "ул. Навои, дома 1-50",
		},
		Scope: entity.ScopeAll,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, 3, result.Delivered)
	assert.Equal(t, int64(4), result.Estimated)
	assert.Equal(t, entity.EmergencyTypeWater, stored.EmergencyType)
	assert.Equal(t, tpl.Priority, stored.Priority)
	assert.Equal(t, 3, stored.SentCount)
	assert.Equal(t, testNow, stored.CreatedAt)
	assert.Nil(t, stored.AffectedArea)

	assert.Contains(t, stored.MessageText, "09:00")
	assert.Contains(t, stored.MessageText, "18:00")
	assert.Contains(t, stored.MessageText, "ул. Навои, дома 1-50")
	assert.NotContains(t, stored.MessageText, entity.PlaceholderStartTime)
	assert.NotContains(t, stored.MessageText, entity.PlaceholderEndTime)
	assert.NotContains(t, stored.MessageText, entity.PlaceholderLocation)

	require.Len(t, logs, 3)
	for _, entry := range logs {
		assert.Equal(t, int64(42), entry.CampaignID)
		assert.Equal(t, entity.SmsStatusSent, entry.Status)
		assert.Equal(t, stored.MessageText, entry.MessageText)
		assert.Equal(t, testNow, entry.SentAt)
	}
}

func TestEmergencyService_SendQuick_ScopeDoesNotChangeRecipients(t *testing.T) {
	for _, scope := range []entity.RecipientScope{entity.ScopeByArea, entity.ScopeSelective} {
		t.Run(string(scope), func(t *testing.T) {
			env := createTestEmergencyService(t)

			env.citizenRepo.EXPECT().CountActiveWithPhone(mock.Anything).Return(int64(5), nil)
			env.expectTransaction()
			env.txCitizens.EXPECT().ListActiveWithPhone(mock.Anything).Return(citizensWithPhones(5), nil)
			env.txBroadcast.EXPECT().CreateBroadcast(mock.Anything, mock.Anything).Return(nil)
			env.txBroadcast.EXPECT().
				BatchCreateSmsLogs(mock.Anything, mock.MatchedBy(func(entries []*entity.SmsLogEntry) bool {
					return len(entries) == 5
				})).
				Return(nil)
			env.publisher.EXPECT().PublishBroadcastSent(mock.Anything, mock.Anything).Return(nil)

			result, err := env.service.SendQuick(context.Background(), usecase.QuickSendInput{
				EmergencyType: entity.EmergencyTypeGas,
				Title:         "Газ",
				MessageText:   "Отключение газа",
				Scope:         scope,
				Areas:         []string{"ул. Навои"},
			})
			require.NoError(t, err)
			assert.Equal(t, 5, result.Delivered)
			assert.Equal(t, 5, result.Broadcast.SentCount)
		})
	}
}

func TestEmergencyService_SendQuick_SkipsCitizensWithoutPhone(t *testing.T) {
	env := createTestEmergencyService(t)

	citizens := citizensWithPhones(2)
	citizens = append(citizens, &entity.Citizen{ID: 9, FullName: "No phone", IsActive: true})

	env.citizenRepo.EXPECT().CountActive(mock.Anything).Return(int64(3), nil)
	env.expectTransaction()
	env.txCitizens.EXPECT().ListActiveWithPhone(mock.Anything).Return(citizens, nil)
	env.txBroadcast.EXPECT().CreateBroadcast(mock.Anything, mock.Anything).Return(nil)
	env.txBroadcast.EXPECT().BatchCreateSmsLogs(mock.Anything, mock.Anything).Return(nil)
	env.publisher.EXPECT().PublishBroadcastSent(mock.Anything, mock.Anything).Return(nil)

	result, err := env.service.SendQuick(context.Background(), usecase.QuickSendInput{
		EmergencyType: entity.EmergencyTypeAnnouncement,
		Title:         "Объявление",
		MessageText:   "Собрание в 18:00",
		Scope:         entity.ScopeAll,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Delivered)
}

func TestEmergencyService_Send_ValidationBlocksBeforeAnyQuery(t *testing.T) {
	tests := []struct {
		name string
		send func(env *emergencyServiceFixture) (*usecase.SendResult, error)
	}{
		{
			name: "quick empty title",
			send: func(env *emergencyServiceFixture) (*usecase.SendResult, error) {
				return env.service.SendQuick(context.Background(), usecase.QuickSendInput{
					EmergencyType: entity.EmergencyTypeWater,
					Title:         "   ",
					MessageText:   "Отключение воды",
				})
			},
		},
		{
			name: "quick empty message",
			send: func(env *emergencyServiceFixture) (*usecase.SendResult, error) {
				return env.service.SendQuick(context.Background(), usecase.QuickSendInput{
					EmergencyType: entity.EmergencyTypeWater,
					Title:         "Вода",
				})
			},
		},
		{
			name: "custom empty message",
			send: func(env *emergencyServiceFixture) (*usecase.SendResult, error) {
				return env.service.SendCustom(context.Background(), usecase.CustomSendInput{
					Title:       "Заголовок",
					MessageText: "\n\t",
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any repository or transaction call fails the test.
			env := createTestEmergencyService(t)

			result, err := tt.send(env)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestEmergencyService_SendCustom(t *testing.T) {
	env := createTestEmergencyService(t)

	env.citizenRepo.EXPECT().CountActiveWithPhone(mock.Anything).Return(int64(2), nil)
	env.expectTransaction()
	env.txCitizens.EXPECT().ListActiveWithPhone(mock.Anything).Return(citizensWithPhones(2), nil)

	var stored *entity.EmergencyBroadcast
	env.txBroadcast.EXPECT().
		CreateBroadcast(mock.Anything, mock.Anything).
		Run(func(_ context.Context, broadcast *entity.EmergencyBroadcast) { stored = broadcast }).
		Return(nil)
	env.txBroadcast.EXPECT().BatchCreateSmsLogs(mock.Anything, mock.Anything).Return(nil)
	env.publisher.EXPECT().PublishBroadcastSent(mock.Anything, mock.Anything).Return(nil)

	operatorID := int64(7)
	_, err := env.service.SendCustom(context.Background(), usecase.CustomSendInput{
		Title:        " Ремонт дороги ",
		MessageText:  " Объезд по ул. Бунёдкор ",
		Category:     "Road works",
		Priority:     entity.PriorityHigh,
		Scope:        entity.ScopePhonesOnly,
		AffectedArea: "  ул. Навои ",
		OperatorID:   &operatorID,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "Ремонт дороги", stored.Title)
	assert.Equal(t, "Объезд по ул. Бунёдкор", stored.MessageText)
	assert.Equal(t, entity.EmergencyTypeRoadWorks, stored.EmergencyType)
	assert.Equal(t, entity.PriorityHigh, stored.Priority)
	require.NotNil(t, stored.AffectedArea)
	assert.Equal(t, "ул. Навои", *stored.AffectedArea)
	assert.Equal(t, &operatorID, stored.CreatedBy)
}

func TestEmergencyService_SendCustom_InvalidPriority(t *testing.T) {
	env := createTestEmergencyService(t)

	result, err := env.service.SendCustom(context.Background(), usecase.CustomSendInput{
		Title:       "Заголовок",
		MessageText: "Текст",
		Priority:    entity.Priority(5),
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEmergencyService_Send_NoRecipients(t *testing.T) {
	env := createTestEmergencyService(t)

	env.citizenRepo.EXPECT().CountActive(mock.Anything).Return(int64(0), nil)
	env.expectTransaction()
	env.txCitizens.EXPECT().ListActiveWithPhone(mock.Anything).Return([]*entity.Citizen{}, nil)

	result, err := env.service.SendQuick(context.Background(), usecase.QuickSendInput{
		EmergencyType: entity.EmergencyTypeWater,
		Title:         "Вода",
		MessageText:   "Отключение",
		Scope:         entity.ScopeAll,
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrNoRecipients)
}

func TestEmergencyService_Send_LogInsertFailure(t *testing.T) {
	env := createTestEmergencyService(t)

	env.citizenRepo.EXPECT().CountActive(mock.Anything).Return(int64(2), nil)
	env.expectTransaction()
	env.txCitizens.EXPECT().ListActiveWithPhone(mock.Anything).Return(citizensWithPhones(2), nil)
	env.txBroadcast.EXPECT().CreateBroadcast(mock.Anything, mock.Anything).Return(nil)
	env.txBroadcast.EXPECT().BatchCreateSmsLogs(mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	result, err := env.service.SendQuick(context.Background(), usecase.QuickSendInput{
		EmergencyType: entity.EmergencyTypeWater,
		Title:         "Вода",
		MessageText:   "Отключение",
		Scope:         entity.ScopeAll,
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrSendFailed)
	env.publisher.AssertNotCalled(t, "PublishBroadcastSent", mock.Anything, mock.Anything)
}

func TestEmergencyService_Send_EstimateFailureFallsBackToDelivered(t *testing.T) {
	env := createTestEmergencyService(t)

	env.citizenRepo.EXPECT().CountActive(mock.Anything).Return(int64(0), errors.New("db error"))
	env.expectTransaction()
	env.txCitizens.EXPECT().ListActiveWithPhone(mock.Anything).Return(citizensWithPhones(3), nil)
	env.txBroadcast.EXPECT().CreateBroadcast(mock.Anything, mock.Anything).Return(nil)
	env.txBroadcast.EXPECT().BatchCreateSmsLogs(mock.Anything, mock.Anything).Return(nil)
	env.publisher.EXPECT().PublishBroadcastSent(mock.Anything, mock.Anything).Return(errors.New("topic down"))

	result, err := env.service.SendQuick(context.Background(), usecase.QuickSendInput{
		EmergencyType: entity.EmergencyTypeElectricity,
		Title:         "Свет",
		MessageText:   "Отключение",
		Scope:         entity.ScopeAll,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Estimated)
}

func TestResolveCategory(t *testing.T) {
	assert.Equal(t, entity.EmergencyTypeGeneral, resolveCategory(""))
	assert.Equal(t, entity.EmergencyTypeUtilities, resolveCategory("Utilities"))
	assert.Equal(t, entity.EmergencyTypeRoadWorks, resolveCategory("road_works"))
	assert.Equal(t, entity.EmergencyType("street_lights"), resolveCategory("Street Lights"))
}
