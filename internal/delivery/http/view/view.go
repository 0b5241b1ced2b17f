// Package view renders the emergency pages from embedded templates.
package view

import (
	"html/template"

	"mahalla/internal/domain/entity"
	"mahalla/internal/usecase"
)

// View selects one of the sub-pages of the emergency page.
type View string

const (
	ViewMain    View = "main"
	ViewQuick   View = "quick"
	ViewCustom  View = "custom"
	ViewHistory View = "history"
	ViewStats   View = "stats"

	// ViewError is the page rendered by the error handler.
	ViewError View = "error"
)

// ParseView maps a ?view= value to a View; unknown or missing values select the main view.
func ParseView(value string) View {
	switch View(value) {
	case ViewQuick, ViewCustom, ViewHistory, ViewStats:
		return View(value)
	default:
		return ViewMain
	}
}

// Page is the data passed to the layout.
type Page struct {
	View      View
	Title     string
	CSRFToken string
	Operator  *entity.Operator
	Flash     string
	Error     string
	Sidebar   *Sidebar
	Content   any
}

// Sidebar is shown next to every sub-page.
type Sidebar struct {
	QuickActions []entity.QuickTemplate
	Summary      entity.RecipientSummary
	SummaryError bool
}

// Tile is a promotional action on the main view.
type Tile struct {
	Icon        string
	Title       string
	Description string
	Href        string
}

// MainContent is the dashboard.
type MainContent struct {
	Tiles  []Tile
	Recent []*entity.EmergencyBroadcast
	Help   template.HTML
}

// Option is one entry of a select or radio group.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// QuickForm is the quick-send form as submitted.
type QuickForm struct {
	Title     string   `form:"title"`
	Message   string   `form:"message"`
	StartTime string   `form:"start_time"`
	EndTime   string   `form:"end_time"`
	Location  string   `form:"location"`
	Reason    string   `form:"reason"`
	Scope     string   `form:"scope"`
	Areas     []string `form:"areas"`
	SendNow   bool     `form:"send_now"`
	SendAt    string   `form:"send_at"`
}

// QuickContent is the quick-send page.
type QuickContent struct {
	Catalog       []entity.QuickTemplate
	Template      entity.QuickTemplate
	Form          QuickForm
	Counter       entity.CharCounter
	MaxLength     int
	Scopes        []Option
	Areas         []Option
	Estimated     int64
	ShowTimeRange bool
	ShowLocation  bool
	ShowReason    bool
}

// CustomForm is the custom-send form as submitted.
type CustomForm struct {
	Title        string   `form:"title"`
	Message      string   `form:"message"`
	Category     string   `form:"category"`
	Priority     int      `form:"priority"`
	Scope        string   `form:"scope"`
	AgeGroups    []string `form:"age_groups"`
	AffectedArea string   `form:"affected_area"`
	SendNow      bool     `form:"send_now"`
	SendAt       string   `form:"send_at"`
}

// CustomContent is the custom-send page.
type CustomContent struct {
	Form       CustomForm
	Counter    entity.CharCounter
	MaxLength  int
	Categories []Option
	Priorities []Option
	Scopes     []Option
	AgeGroups  []Option
	Estimated  int64
}

// HistoryContent is the history page.
type HistoryContent struct {
	Periods    []Option
	Types      []Option
	Priorities []Option
	Result     *usecase.HistoryResult
}

// Slice is one segment of the per-type pie chart.
type Slice struct {
	Label   string
	Count   int64
	Percent float64
	Color   string
}

// Bar is one bar of the per-priority chart.
type Bar struct {
	Label   string
	Count   int64
	Percent float64
	Color   string
}

// StatsContent is the statistics page.
type StatsContent struct {
	Stats       *entity.BroadcastStats
	Slices      []Slice
	PieGradient template.CSS
	Bars        []Bar
}

// ErrorContent is the error page.
type ErrorContent struct {
	Status  int
	Message string
}
