package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mahalla/config"
	"mahalla/internal/delivery/http/middleware"
	"mahalla/internal/delivery/http/validator"
	"mahalla/internal/delivery/http/view"
	"mahalla/internal/domain/entity"
	mockUC "mahalla/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
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
			Areas:              []string{"ул. Навои", "ул. Амира Темура"},
			AgeGroups:          []string{"18-30 лет", "31-50 лет"},
			TimeZone:           "UTC",
		},
	}
}

type handlerFixture struct {
	echo      *echo.Echo
	emergency *mockUC.MockEmergencyUsecase
	queries   *mockUC.MockBroadcastQueryUsecase
	pages     *PageHandler
	api       *APIHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	cfg := testConfig()
	logger := testLogger()

	renderer, err := view.NewRenderer(cfg, logger)
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	env := &handlerFixture{
		echo:      e,
		emergency: mockUC.NewMockEmergencyUsecase(t),
		queries:   mockUC.NewMockBroadcastQueryUsecase(t),
	}
	env.pages = NewPageHandler(PageHandlerParams{
		Emergency: env.emergency,
		Queries:   env.queries,
		Renderer:  renderer,
		Config:    cfg,
		Logger:    logger,
	})
	env.api = NewAPIHandler(APIHandlerParams{
		Emergency: env.emergency,
		Queries:   env.queries,
		Logger:    logger,
	})

	return env
}

// expectPageChrome stubs the sidebar, counter and estimate every form page loads.
func (env *handlerFixture) expectPageChrome() {
	env.emergency.EXPECT().RecipientSummary(mock.Anything).Return(entity.NewRecipientSummary(100, 80), nil).Maybe()
	env.emergency.EXPECT().EstimateRecipients(mock.Anything, mock.Anything).Return(int64(80), nil).Maybe()
	env.emergency.EXPECT().Counter(mock.Anything).RunAndReturn(func(text string) entity.CharCounter {
		return entity.NewCharCounter(text, 120, 160)
	}).Maybe()
}

func (env *handlerFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	return rec
}

func newFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}
