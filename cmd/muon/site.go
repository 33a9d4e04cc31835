package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sortiz4/muon"
	"github.com/sortiz4/muon/el"
	"github.com/sortiz4/muon/internal/config"
	"github.com/sortiz4/muon/pkg/markup"
	"github.com/sortiz4/muon/pkg/middleware"
)

// newEngine builds an engine with the middleware enabled in cfg. Metrics are
// registered on reg when it is non-nil and metrics are enabled.
func newEngine(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) *muon.Engine {
	var mw []muon.Middleware
	if cfg.Tracing.Enabled {
		mw = append(mw, middleware.OpenTelemetry(middleware.WithTracerName(cfg.Tracing.TracerName)))
	}
	if cfg.Metrics.Enabled && reg != nil {
		mw = append(mw, middleware.Prometheus(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(reg),
		))
	}
	return muon.New(muon.Config{Logger: logger, Middleware: mw})
}

// examplePage is the bundled sample document.
func examplePage(doc config.DocumentConfig) markup.Element {
	title := doc.Title
	if title == "" {
		title = "Example"
	}

	head := []any{
		el.Meta(el.Charset("utf-8")),
		el.Meta(el.Attribute("http_equiv", "x-ua-compatible"), el.Content("ie=edge")),
		el.Meta(el.Name("viewport"), el.Content("width=device-width, initial-scale=1")),
		el.Title(title),
	}
	body := []any{
		el.Heading(1, el.Classes("heading", "large"), title),
		el.Paragraph("Rendered by muon ", version, "."),
		el.Input(
			el.Class("input", "large"),
			el.StyleAttr(el.Prop("font_family", "Courier"), el.Prop("font_size", "20px")),
			el.Value("This is a value"),
			el.MaxLength(30),
			el.Required(),
		),
	}

	if doc.DocType == "" || doc.DocType == markup.HTML5 {
		return muon.Document(head, body, el.Lang(doc.Lang))
	}
	return markup.ElementFunc(func() (markup.Renderable, error) {
		return markup.Join(
			el.DocType(doc.DocType),
			el.HTML(el.Lang(doc.Lang), el.Head(head), el.Body(body)),
		), nil
	})
}
