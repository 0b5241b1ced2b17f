package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mahalla/config"
	"mahalla/internal/domain/repository"
	mockRepo "mahalla/internal/mocks/repository"
	mockSvc "mahalla/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, 3, 31, 14, 30, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	return &config.Config{
		Emergency: &config.EmergencyConfig{
			SmsMaxLength:       160,
			CounterWarnAt:      120,
			CounterLimitAt:     160,
			RecentLimit:        10,
			PreviewLength:      80,
			AvgResponseMinutes: 3.5,
			StatsWindowDays:    30,
			TimeZone:           "UTC",
		},
	}
}

type emergencyServiceFixture struct {
	service     *emergencyService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	citizenRepo *mockRepo.MockCitizenRepository
	txCitizens  *mockRepo.MockCitizenRepository
	txBroadcast *mockRepo.MockBroadcastRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestEmergencyService(t *testing.T) *emergencyServiceFixture {
	env := &emergencyServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		citizenRepo: mockRepo.NewMockCitizenRepository(t),
		txCitizens:  mockRepo.NewMockCitizenRepository(t),
		txBroadcast: mockRepo.NewMockBroadcastRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	env.service = newEmergencyService(EmergencyServiceParams{
		TxManager:   env.txManager,
		CitizenRepo: env.citizenRepo,
		Publisher:   env.publisher,
		Config:      testConfig(),
		Logger:      testLogger(),
	}, func() time.Time { return testNow })

	return env
}

// expectTransaction runs the transaction body against the tx-bound mocks.
func (env *emergencyServiceFixture) expectTransaction() {
	env.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(env.factory)
		})
	env.factory.EXPECT().NewCitizenRepository().Return(env.txCitizens).Maybe()
	env.factory.EXPECT().NewBroadcastRepository().Return(env.txBroadcast).Maybe()
}
