package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mahalla/config"
	deliverycontext "mahalla/internal/delivery/context"
	"mahalla/internal/delivery/http/middleware"
	"mahalla/internal/delivery/http/view"
	"mahalla/internal/domain/entity"
	domainerrors "mahalla/internal/domain/errors"
	"mahalla/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// sendAtLayout is the value format of <input type="datetime-local">.
	sendAtLayout = "2006-01-02T15:04"

	pagePath = "/emergency"
)

var quickCatalog = append(append([]entity.EmergencyType{}, entity.SidebarQuickTypes...), entity.EmergencyTypeUtilities)

var mainTiles = []view.Tile{
	{
		Icon:        "💧",
		Title:       "Коммунальные услуги",
		Description: "Уведомления об отключении воды, газа, электричества",
		Href:        pagePath + "/quick/" + string(entity.EmergencyTypeUtilities),
	},
	{
		Icon:        "🚧",
		Title:       "Дорожные работы",
		Description: "Информация о ремонтах, перекрытиях дорог",
		Href:        pagePath + "/quick/" + string(entity.EmergencyTypeRoadWorks),
	},
	{
		Icon:        "📢",
		Title:       "Произвольное",
		Description: "Создать собственное экстренное уведомление",
		Href:        pagePath + "/custom",
	},
}

// PageHandlerParams holds dependencies for the emergency pages, injected by Fx.
type PageHandlerParams struct {
	fx.In

	Emergency usecase.EmergencyUsecase
	Queries   usecase.BroadcastQueryUsecase
	Renderer  *view.Renderer
	Config    *config.Config
	Logger    *slog.Logger
}

// PageHandler serves the server-rendered emergency pages.
type PageHandler struct {
	emergency usecase.EmergencyUsecase
	queries   usecase.BroadcastQueryUsecase
	help      template.HTML
	cfg       *config.EmergencyConfig
	location  *time.Location
	logger    *slog.Logger
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	location, err := time.LoadLocation(params.Config.Emergency.TimeZone)
	if err != nil {
		location = time.Local
	}

	return &PageHandler{
		emergency: params.Emergency,
		queries:   params.Queries,
		help:      params.Renderer.Help(),
		cfg:       params.Config.Emergency,
		location:  location,
		logger:    params.Logger,
	}
}

func (h *PageHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// Index dispatches on ?view= to one of the sub-pages; the main view is the default.
func (h *PageHandler) Index(c echo.Context) error {
	switch view.ParseView(c.QueryParam("view")) {
	case view.ViewQuick:
		return h.renderQuick(c, http.StatusOK, entity.EmergencyType(c.QueryParam("type")), nil, "")
	case view.ViewCustom:
		return h.renderCustom(c, http.StatusOK, nil, "")
	case view.ViewHistory:
		return h.History(c)
	case view.ViewStats:
		return h.Stats(c)
	default:
		return h.Main(c)
	}
}

// Main renders the dashboard. ?sent=N shows the confirmation of a completed send.
func (h *PageHandler) Main(c echo.Context) error {
	recent, err := h.queries.RecentBroadcasts(c.Request().Context())
	if err != nil {
		return err
	}

	page := h.page(c, view.ViewMain, "🚨 Экстренные уведомления", view.MainContent{
		Tiles:  mainTiles,
		Recent: recent,
		Help:   h.help,
	})
	if sent, convErr := strconv.ParseInt(c.QueryParam("sent"), 10, 64); convErr == nil && sent >= 0 {
		page.Flash = "✅ Экстренное уведомление отправлено " + strconv.FormatInt(sent, 10) + " получателям!"
	}

	return c.Render(http.StatusOK, string(view.ViewMain), page)
}

// QuickForm renders the quick-send form of the type in the path.
func (h *PageHandler) QuickForm(c echo.Context) error {
	return h.renderQuick(c, http.StatusOK, entity.EmergencyType(c.Param("type")), nil, "")
}

// SendQuick handles a quick-send submission and redirects to the dashboard on success.
func (h *PageHandler) SendQuick(c echo.Context) error {
	emergencyType := entity.EmergencyType(c.Param("type"))

	var form view.QuickForm
	if err := c.Bind(&form); err != nil {
		return h.renderQuick(c, http.StatusBadRequest, emergencyType, &form, domainerrors.ErrValidationFailed.Message())
	}

	sendAt, err := h.parseSendAt(form.SendNow, form.SendAt)
	if err != nil {
		return h.renderQuick(c, http.StatusBadRequest, emergencyType, &form, err.Error())
	}

	result, err := h.emergency.SendQuick(c.Request().Context(), usecase.QuickSendInput{
		EmergencyType: emergencyType,
		Title:         form.Title,
		MessageText:   form.Message,
		Placeholders: entity.PlaceholderValues{
			StartTime: form.StartTime,
			EndTime:   form.EndTime,
			Location:  form.Location,
			Reason:    form.Reason,
		},
		Scope:      entity.ResolveRecipientScope(form.Scope, entity.QuickScopes),
		Areas:      form.Areas,
		SendAt:     sendAt,
		OperatorID: operatorID(c),
	})
	if err != nil {
		status, message, ok := formFailure(err)
		if !ok {
			return err
		}

		return h.renderQuick(c, status, emergencyType, &form, message)
	}

	return redirectSent(c, result)
}

// CustomForm renders the free-form send form.
func (h *PageHandler) CustomForm(c echo.Context) error {
	return h.renderCustom(c, http.StatusOK, nil, "")
}

// SendCustom handles a custom-send submission and redirects to the dashboard on success.
func (h *PageHandler) SendCustom(c echo.Context) error {
	var form view.CustomForm
	if err := c.Bind(&form); err != nil {
		return h.renderCustom(c, http.StatusBadRequest, &form, domainerrors.ErrValidationFailed.Message())
	}

	sendAt, err := h.parseSendAt(form.SendNow, form.SendAt)
	if err != nil {
		return h.renderCustom(c, http.StatusBadRequest, &form, err.Error())
	}

	result, err := h.emergency.SendCustom(c.Request().Context(), usecase.CustomSendInput{
		Title:        form.Title,
		MessageText:  form.Message,
		Category:     form.Category,
		Priority:     entity.Priority(form.Priority),
		Scope:        entity.ResolveRecipientScope(form.Scope, entity.CustomScopes),
		AgeGroups:    form.AgeGroups,
		AffectedArea: form.AffectedArea,
		SendAt:       sendAt,
		OperatorID:   operatorID(c),
	})
	if err != nil {
		status, message, ok := formFailure(err)
		if !ok {
			return err
		}

		return h.renderCustom(c, status, &form, message)
	}

	return redirectSent(c, result)
}

// History renders the filtered broadcast history.
func (h *PageHandler) History(c echo.Context) error {
	var query usecase.HistoryQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid history filter")
	}

	result, err := h.queries.History(c.Request().Context(), query)
	if err != nil {
		return err
	}

	periods, types, priorities := view.HistoryFilterOptions(result.Period, result.Filter)

	return c.Render(http.StatusOK, string(view.ViewHistory), h.page(c, view.ViewHistory, "📋 История экстренных уведомлений", view.HistoryContent{
		Periods:    periods,
		Types:      types,
		Priorities: priorities,
		Result:     result,
	}))
}

// Stats renders the statistics panel.
func (h *PageHandler) Stats(c echo.Context) error {
	stats, err := h.queries.Statistics(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, string(view.ViewStats), h.page(c, view.ViewStats, "📊 Статистика экстренных уведомлений", view.NewStatsContent(stats)))
}

// Counter returns the live character counter for the message body being typed.
func (h *PageHandler) Counter(c echo.Context) error {
	return counterResponse(c, h.emergency)
}

func (h *PageHandler) renderQuick(c echo.Context, status int, emergencyType entity.EmergencyType, form *view.QuickForm, errMessage string) error {
	tpl := entity.ResolveQuickTemplate(emergencyType)
	if form == nil {
		form = &view.QuickForm{Title: tpl.Title, Message: tpl.Template, SendNow: true}
	}

	catalog := make([]entity.QuickTemplate, 0, len(quickCatalog))
	for _, t := range quickCatalog {
		catalog = append(catalog, entity.ResolveQuickTemplate(t))
	}

	scope := entity.ResolveRecipientScope(form.Scope, entity.QuickScopes)
	page := h.page(c, view.ViewQuick, tpl.Title, view.QuickContent{
		Catalog:       catalog,
		Template:      tpl,
		Form:          *form,
		Counter:       h.emergency.Counter(form.Message),
		MaxLength:     h.cfg.SmsMaxLength,
		Scopes:        view.ScopeOptions(entity.QuickScopes, string(scope)),
		Areas:         view.MultiOptions(h.cfg.Areas, form.Areas),
		Estimated:     h.estimate(c.Request().Context(), scope),
		ShowTimeRange: tpl.NeedsTimeRange(),
		ShowLocation:  tpl.HasPlaceholder(entity.PlaceholderLocation),
		ShowReason:    tpl.HasPlaceholder(entity.PlaceholderReason),
	})
	page.Error = errMessage

	return c.Render(status, string(view.ViewQuick), page)
}

func (h *PageHandler) renderCustom(c echo.Context, status int, form *view.CustomForm, errMessage string) error {
	if form == nil {
		form = &view.CustomForm{Priority: int(entity.PriorityMedium), SendNow: true}
	}

	scope := entity.ResolveRecipientScope(form.Scope, entity.CustomScopes)
	page := h.page(c, view.ViewCustom, "📢 Произвольное экстренное уведомление", view.CustomContent{
		Form:       *form,
		Counter:    h.emergency.Counter(form.Message),
		MaxLength:  h.cfg.SmsMaxLength,
		Categories: view.CategoryOptions(form.Category),
		Priorities: view.PriorityOptions(form.Priority),
		Scopes:     view.ScopeOptions(entity.CustomScopes, string(scope)),
		AgeGroups:  view.MultiOptions(h.cfg.AgeGroups, form.AgeGroups),
		Estimated:  h.estimate(c.Request().Context(), scope),
	})
	page.Error = errMessage

	return c.Render(status, string(view.ViewCustom), page)
}

// page assembles the layout data shared by every sub-page.
func (h *PageHandler) page(c echo.Context, v view.View, title string, content any) *view.Page {
	ctx := c.Request().Context()

	sidebar := &view.Sidebar{QuickActions: make([]entity.QuickTemplate, 0, len(entity.SidebarQuickTypes))}
	for _, t := range entity.SidebarQuickTypes {
		sidebar.QuickActions = append(sidebar.QuickActions, entity.ResolveQuickTemplate(t))
	}

	summary, err := h.emergency.RecipientSummary(ctx)
	if err != nil {
		h.log(ctx).Warn("Failed to load recipient summary", slog.Any("error", err))
		sidebar.SummaryError = true
	}
	sidebar.Summary = summary

	return &view.Page{
		View:      v,
		Title:     title,
		CSRFToken: middleware.CSRFToken(c),
		Operator:  deliverycontext.GetOperator(c),
		Sidebar:   sidebar,
		Content:   content,
	}
}

// estimate returns the displayed recipient count; a failed count shows as zero.
func (h *PageHandler) estimate(ctx context.Context, scope entity.RecipientScope) int64 {
	count, err := h.emergency.EstimateRecipients(ctx, scope)
	if err != nil {
		h.log(ctx).Warn("Failed to estimate recipients",
			slog.String("scope", string(scope)),
			slog.Any("error", err),
		)

		return 0
	}

	return count
}

// parseSendAt reads the optional send-later timestamp in the configured time zone.
func (h *PageHandler) parseSendAt(sendNow bool, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if sendNow || value == "" {
		return nil, nil
	}

	sendAt, err := time.ParseInLocation(sendAtLayout, value, h.location)
	if err != nil {
		return nil, errors.New("❌ Неверное время отправки")
	}

	return &sendAt, nil
}

// formFailure maps a send error to the status and banner of a re-rendered form.
func formFailure(err error) (int, string, bool) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return 0, "", false
	}

	return appErr.HTTPCode(), appErr.Message(), true
}

func redirectSent(c echo.Context, result *usecase.SendResult) error {
	return c.Redirect(http.StatusSeeOther, pagePath+"?sent="+strconv.FormatInt(result.Estimated, 10))
}

func operatorID(c echo.Context) *int64 {
	operator := deliverycontext.GetOperator(c)
	if operator == nil {
		return nil
	}

	id := operator.ID

	return &id
}
