package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"log/slog"
	"strings"
	"time"

	"mahalla/config"
	"mahalla/internal/domain/entity"
	"mahalla/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html help.md
var files embed.FS

// Renderer implements echo.Renderer with one template set per View.
type Renderer struct {
	pages map[View]*template.Template
	help  template.HTML
}

// NewRenderer parses every page against the shared layout and renders the help panel once.
func NewRenderer(cfg *config.Config, logger *slog.Logger) (*Renderer, error) {
	location, err := time.LoadLocation(cfg.Emergency.TimeZone)
	if err != nil {
		logger.Warn("Unknown time zone, rendering in local time",
			slog.String("timeZone", cfg.Emergency.TimeZone),
			slog.Any("error", err),
		)
		location = time.Local
	}

	funcs := templateFuncs(location, cfg.Emergency.PreviewLength)

	pages := make(map[View]*template.Template)
	for _, v := range []View{ViewMain, ViewQuick, ViewCustom, ViewHistory, ViewStats, ViewError} {
		tpl, err := template.New("layout.html").Funcs(funcs).ParseFS(files,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+string(v)+".html",
		)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s template", v)
		}
		pages[v] = tpl
	}

	help, err := renderMarkdown(files, "help.md")
	if err != nil {
		return nil, err
	}

	return &Renderer{pages: pages, help: help}, nil
}

// Render executes the layout of the named view.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tpl, ok := r.pages[View(name)]
	if !ok {
		return errors.Errorf("unknown view %q", name)
	}

	return errors.WithStack(tpl.Execute(w, data))
}

// Help returns the rendered help panel.
func (r *Renderer) Help() template.HTML {
	return r.help
}

var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func renderMarkdown(fsys embed.FS, name string) (template.HTML, error) {
	src, err := fsys.ReadFile(name)
	if err != nil {
		return "", errors.WithStack(err)
	}

	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}

	return template.HTML(buf.String()), nil //nolint:gosec // embedded, raw HTML is escaped by goldmark
}

func templateFuncs(location *time.Location, previewLength int) template.FuncMap {
	return template.FuncMap{
		"datetime": func(t time.Time) string { return util.FormatDateTime(t, location) },
		"preview":  func(text string) string { return entity.Preview(text, previewLength) },
		"percent":  util.FormatPercent,
		"count":    util.FormatCount,
		"minutes":  util.FormatMinutes,
		"lines":    func(text string) []string { return strings.Split(text, "\n") },
	}
}

func cssGradient(stops []string) template.CSS {
	return template.CSS("conic-gradient(" + strings.Join(stops, ", ") + ")") //nolint:gosec // built from fixed colors and numbers
}
