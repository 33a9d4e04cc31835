package middleware

import (
	"context"
	"time"

	"github.com/sortiz4/muon"
	"github.com/sortiz4/muon/pkg/markup"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for muon renders.
const defaultTracerName = "muon"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "muon").
	TracerName string

	// TracerProvider supplies the tracer. If nil, the global provider is used.
	TracerProvider trace.TracerProvider

	// Filter determines which elements to trace.
	// Return true to trace the render, false to skip.
	// If nil, all renders are traced.
	Filter func(el markup.Element) bool

	// AttributeExtractor adds custom attributes to each span.
	AttributeExtractor func(ctx context.Context, el markup.Element) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithFilter sets a filter function for elements.
func WithFilter(filter func(el markup.Element) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ctx context.Context, el markup.Element) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates middleware that traces every render.
//
// Each span is named "muon.render <element>" and carries the element name
// and output size. Failures are recorded on the span with an error status.
// The span's context is passed to the rest of the chain.
func OpenTelemetry(opts ...OTelOption) muon.Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(config.TracerName)

	return func(next muon.RenderFunc) muon.RenderFunc {
		return func(ctx context.Context, el markup.Element) (string, error) {
			if config.Filter != nil && !config.Filter(el) {
				return next(ctx, el)
			}

			element := muon.ElementName(el)
			attrs := []attribute.KeyValue{
				attribute.String("muon.element", element),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(ctx, el)...)
			}

			spanCtx, span := tracer.Start(ctx, "muon.render "+element,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attrs...),
				trace.WithTimestamp(time.Now()),
			)
			defer span.End()

			out, err := next(spanCtx, el)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return out, err
			}

			span.SetAttributes(attribute.Int("muon.bytes", len(out)))
			span.SetStatus(codes.Ok, "")
			return out, nil
		}
	}
}
