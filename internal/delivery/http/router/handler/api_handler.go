package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mahalla/internal/delivery/http/response"
	"mahalla/internal/domain/entity"
	domainerrors "mahalla/internal/domain/errors"
	"mahalla/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	sendModeQuick  = "quick"
	sendModeCustom = "custom"
)

// APIHandlerParams holds dependencies for the JSON API, injected by Fx.
type APIHandlerParams struct {
	fx.In

	Emergency usecase.EmergencyUsecase
	Queries   usecase.BroadcastQueryUsecase
	Logger    *slog.Logger
}

// APIHandler holds dependencies for the /api/v1/emergency handlers
type APIHandler struct {
	emergency usecase.EmergencyUsecase
	queries   usecase.BroadcastQueryUsecase
	logger    *slog.Logger
}

// NewAPIHandler is the constructor for APIHandler
func NewAPIHandler(params APIHandlerParams) *APIHandler {
	return &APIHandler{
		emergency: params.Emergency,
		queries:   params.Queries,
		logger:    params.Logger,
	}
}

// SendBroadcastRequest represents the request body for sending a broadcast
type SendBroadcastRequest struct {
	Mode          string     `json:"mode" validate:"required,oneof=quick custom"`
	EmergencyType string     `json:"emergency_type" validate:"required_if=Mode quick"`
	Title         string     `json:"title" validate:"required,max=200"`
	MessageText   string     `json:"message_text" validate:"required"`
	StartTime     string     `json:"start_time,omitempty"`
	EndTime       string     `json:"end_time,omitempty"`
	Location      string     `json:"location,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	Category      string     `json:"category,omitempty"`
	Priority      int        `json:"priority,omitempty" validate:"omitempty,min=1,max=3"`
	Scope         string     `json:"scope,omitempty"`
	Areas         []string   `json:"areas,omitempty"`
	AgeGroups     []string   `json:"age_groups,omitempty"`
	AffectedArea  string     `json:"affected_area,omitempty"`
	SendAt        *time.Time `json:"send_at,omitempty"`
}

// RecipientsResponse is the recipient estimate for a scope plus the registry overview.
type RecipientsResponse struct {
	Scope     entity.RecipientScope   `json:"scope"`
	Estimated int64                   `json:"estimated"`
	Summary   entity.RecipientSummary `json:"summary"`
}

// Recipients handles GET /recipients?scope=
func (h *APIHandler) Recipients(c echo.Context) error {
	ctx := c.Request().Context()
	scope := entity.ResolveRecipientScope(c.QueryParam("scope"), entity.RecipientScopes)

	estimated, err := h.emergency.EstimateRecipients(ctx, scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.emergency.RecipientSummary(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RecipientsResponse{Scope: scope, Estimated: estimated, Summary: summary})
}

// Counter handles GET /counter?text=
func (h *APIHandler) Counter(c echo.Context) error {
	return counterResponse(c, h.emergency)
}

// SendBroadcast handles POST /broadcasts in quick or custom mode
func (h *APIHandler) SendBroadcast(c echo.Context) error {
	var req SendBroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	operatorID := operatorID(c)
	scope := entity.ResolveRecipientScope(req.Scope, entity.RecipientScopes)

	var (
		result *usecase.SendResult
		err    error
	)
	switch req.Mode {
	case sendModeQuick:
		result, err = h.emergency.SendQuick(c.Request().Context(), usecase.QuickSendInput{
			EmergencyType: entity.EmergencyType(req.EmergencyType),
			Title:         req.Title,
			MessageText:   req.MessageText,
			Placeholders: entity.PlaceholderValues{
				StartTime: req.StartTime,
				EndTime:   req.EndTime,
				Location:  req.Location,
				Reason:    req.Reason,
			},
			Scope:      scope,
			Areas:      req.Areas,
			SendAt:     req.SendAt,
			OperatorID: operatorID,
		})
	case sendModeCustom:
		result, err = h.emergency.SendCustom(c.Request().Context(), usecase.CustomSendInput{
			Title:        req.Title,
			MessageText:  req.MessageText,
			Category:     req.Category,
			Priority:     entity.Priority(req.Priority),
			Scope:        scope,
			AgeGroups:    req.AgeGroups,
			AffectedArea: req.AffectedArea,
			SendAt:       req.SendAt,
			OperatorID:   operatorID,
		})
	default:
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("mode: oneof=quick custom"))
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ListBroadcasts handles GET /broadcasts?period=&type=&priority=
func (h *APIHandler) ListBroadcasts(c echo.Context) error {
	var query usecase.HistoryQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid history filter")
	}

	result, err := h.queries.History(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RecentBroadcasts handles GET /broadcasts/recent
func (h *APIHandler) RecentBroadcasts(c echo.Context) error {
	broadcasts, err := h.queries.RecentBroadcasts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, broadcasts)
}

// Statistics handles GET /statistics
func (h *APIHandler) Statistics(c echo.Context) error {
	stats, err := h.queries.Statistics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func counterResponse(c echo.Context, uc usecase.EmergencyUsecase) error {
	return response.Success(c, http.StatusOK, uc.Counter(c.QueryParam("text")))
}
