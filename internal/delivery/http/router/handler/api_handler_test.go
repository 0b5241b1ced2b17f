package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mahalla/internal/domain/entity"
	domainerrors "mahalla/internal/domain/errors"
	"mahalla/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func registerAPI(env *handlerFixture) {
	g := env.echo.Group("/api/v1/emergency")
	g.GET("/recipients", env.api.Recipients)
	g.GET("/counter", env.api.Counter)
	g.POST("/broadcasts", env.api.SendBroadcast)
	g.GET("/broadcasts", env.api.ListBroadcasts)
	g.GET("/broadcasts/recent", env.api.RecentBroadcasts)
	g.GET("/statistics", env.api.Statistics)
}

func TestAPIHandler_Recipients(t *testing.T) {
	env := newHandlerFixture(t)
	registerAPI(env)
	env.emergency.EXPECT().EstimateRecipients(mock.Anything, entity.ScopeByAge).Return(int64(40), nil)
	env.emergency.EXPECT().RecipientSummary(mock.Anything).Return(entity.NewRecipientSummary(100, 80), nil)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/api/v1/emergency/recipients?scope=by_age", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"estimated":40`)
	assert.Contains(t, rec.Body.String(), `"with_phone":80`)
}

func TestAPIHandler_SendBroadcast(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(env *handlerFixture)
		wantStatus int
		wantBody   string
	}{
		{
			name: "quick",
			body: `{"mode":"quick","emergency_type":"water","title":"Вода","message_text":"с {start_time}","start_time":"09:00"}`,
			setup: func(env *handlerFixture) {
				env.emergency.EXPECT().SendQuick(mock.Anything, mock.MatchedBy(func(in usecase.QuickSendInput) bool {
					return in.EmergencyType == entity.EmergencyTypeWater && in.Placeholders.StartTime == "09:00" && in.Scope == entity.ScopeAll
				})).Return(&usecase.SendResult{Broadcast: &entity.EmergencyBroadcast{ID: 5}, Delivered: 80, Estimated: 100}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"delivered":80`,
		},
		{
			name: "custom",
			body: `{"mode":"custom","title":"Внимание","message_text":"текст","category":"Medical","priority":3,"scope":"phones_only"}`,
			setup: func(env *handlerFixture) {
				env.emergency.EXPECT().SendCustom(mock.Anything, mock.MatchedBy(func(in usecase.CustomSendInput) bool {
					return in.Category == "Medical" && in.Priority == entity.PriorityHigh && in.Scope == entity.ScopePhonesOnly
				})).Return(&usecase.SendResult{Broadcast: &entity.EmergencyBroadcast{ID: 6}, Delivered: 80, Estimated: 80}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"estimated":80`,
		},
		{
			name:       "unknown mode",
			body:       `{"mode":"later","title":"x","message_text":"y"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"VALIDATION_FAILED"`,
		},
		{
			name:       "quick without type",
			body:       `{"mode":"quick","title":"x","message_text":"y"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "emergency_type: required_if",
		},
		{
			name:       "missing title",
			body:       `{"mode":"custom","message_text":"y"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "title: required",
		},
		{
			name:       "priority out of range",
			body:       `{"mode":"custom","title":"x","message_text":"y","priority":7}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "priority: max=3",
		},
		{
			name:       "malformed json",
			body:       `{"mode":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"INVALID_INPUT"`,
		},
		{
			name: "no recipients",
			body: `{"mode":"custom","title":"x","message_text":"y"}`,
			setup: func(env *handlerFixture) {
				env.emergency.EXPECT().SendCustom(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoRecipients)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"NO_RECIPIENTS"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newHandlerFixture(t)
			registerAPI(env)
			if tt.setup != nil {
				tt.setup(env)
			}

			rec := env.serve(newJSONRequest(http.MethodPost, "/api/v1/emergency/broadcasts", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAPIHandler_ListBroadcasts(t *testing.T) {
	env := newHandlerFixture(t)
	registerAPI(env)
	env.queries.EXPECT().History(mock.Anything, usecase.HistoryQuery{Period: "За месяц", Type: "Вода", Priority: "Высокий"}).
		Return(&usecase.HistoryResult{Period: entity.PeriodMonth}, nil)

	rec := env.serve(httptest.NewRequest(http.MethodGet,
		"/api/v1/emergency/broadcasts?period=%D0%97%D0%B0+%D0%BC%D0%B5%D1%81%D1%8F%D1%86&type=%D0%92%D0%BE%D0%B4%D0%B0&priority=%D0%92%D1%8B%D1%81%D0%BE%D0%BA%D0%B8%D0%B9", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"period":"month"`)
}

func TestAPIHandler_RecentBroadcasts(t *testing.T) {
	env := newHandlerFixture(t)
	registerAPI(env)
	env.queries.EXPECT().RecentBroadcasts(mock.Anything).Return([]*entity.EmergencyBroadcast{{ID: 9, Title: "Газ"}}, nil)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/api/v1/emergency/broadcasts/recent", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":9`)
}

func TestAPIHandler_Statistics(t *testing.T) {
	env := newHandlerFixture(t)
	registerAPI(env)
	env.queries.EXPECT().Statistics(mock.Anything).Return(&entity.BroadcastStats{TotalBroadcasts: 4, AvgResponseMinutes: 3.5}, nil)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/api/v1/emergency/statistics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"avg_response_minutes":3.5`)
}

func TestAPIHandler_StatisticsFailed(t *testing.T) {
	env := newHandlerFixture(t)
	registerAPI(env)
	env.queries.EXPECT().Statistics(mock.Anything).Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "count"))

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/api/v1/emergency/statistics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"DATABASE_EXECUTE_FAILED"`)
	assert.NotContains(t, rec.Body.String(), "details")
}

func TestHealthCheck(t *testing.T) {
	env := newHandlerFixture(t)
	env.echo.GET("/health", HealthCheck)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
