package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"todotrack/internal/core/port"
)

const tracerName = "todotrack"

// OTelProbe emits repository and service telemetry through OpenTelemetry.
type OTelProbe struct {
	logger *slog.Logger
}

func NewOTelProbe(logger *slog.Logger) port.Telemetry {
	return &OTelProbe{logger: logger}
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) End() {
	s.span.End()
}

func (s *otelSpan) SetAttributes(attrs map[string]interface{}) {
	s.span.SetAttributes(toOTelAttributes(attrs)...)
}

func (s *otelSpan) SetStatus(code string, message string) {
	var statusCode codes.Code

	switch code {
	case "ok":
		statusCode = codes.Ok
	case "error":
		statusCode = codes.Error
	default:
		statusCode = codes.Unset
	}

	s.span.SetStatus(statusCode, message)
}

func (s *otelSpan) RecordError(err error) {
	s.span.RecordError(err)
}

func toOTelAttributes(attrs map[string]interface{}) []attribute.KeyValue {
	var out []attribute.KeyValue

	for key, value := range attrs {
		switch v := value.(type) {
		case string:
			out = append(out, attribute.String(key, v))
		case int:
			out = append(out, attribute.Int(key, v))
		case int64:
			out = append(out, attribute.Int64(key, v))
		case float64:
			out = append(out, attribute.Float64(key, v))
		case bool:
			out = append(out, attribute.Bool(key, v))
		default:
			out = append(out, attribute.String(key, fmt.Sprintf("%v", v)))
		}
	}

	return out
}

func (p *OTelProbe) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs map[string]interface{}) (context.Context, port.Span) {
	spanName := fmt.Sprintf("repository.%s.%s", entity, operation)

	standard := []attribute.KeyValue{
		attribute.String("repository.entity", entity),
		attribute.String("repository.operation", operation),
		attribute.String("component", "repository"),
	}
	standard = append(standard, toOTelAttributes(attrs)...)

	ctx, span := otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(standard...))
	return ctx, &otelSpan{span: span}
}

func (p *OTelProbe) StartServiceSpan(ctx context.Context, service string, operation string, userID int, attrs map[string]interface{}) (context.Context, port.Span) {
	spanName := fmt.Sprintf("service.%s.%s", service, operation)

	standard := []attribute.KeyValue{
		attribute.String("service.name", service),
		attribute.String("service.operation", operation),
		attribute.Int("user.id", userID),
		attribute.String("component", "service"),
	}
	standard = append(standard, toOTelAttributes(attrs)...)

	ctx, span := otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(standard...))
	return ctx, &otelSpan{span: span}
}

func (p *OTelProbe) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
	span := trace.SpanFromContext(ctx)

	span.AddEvent("repository.operation", trace.WithAttributes(
		attribute.String("repository.entity", entity),
		attribute.String("repository.operation", operation),
		attribute.Int64("duration_ns", duration.Nanoseconds()),
		attribute.Bool("error", err != nil),
	))

	if err != nil && p.logger != nil {
		p.logger.Error("repository operation failed",
			"entity", entity,
			"operation", operation,
			"duration", duration,
			"error", err,
		)
	}
}

func (p *OTelProbe) RecordRepositoryQuery(ctx context.Context, operation string, entity string, query string, args []interface{}) {
	span := trace.SpanFromContext(ctx)

	span.AddEvent("repository.query", trace.WithAttributes(
		attribute.String("db.statement", query),
		attribute.String("repository.entity", entity),
		attribute.String("repository.operation", operation),
		attribute.Int("db.args_count", len(args)),
	))
}

func (p *OTelProbe) RecordBusinessEvent(ctx context.Context, event string, entity string, entityID string, userID int, metadata map[string]interface{}) {
	span := trace.SpanFromContext(ctx)

	attrs := []attribute.KeyValue{
		attribute.String("business.event", event),
		attribute.String("business.entity", entity),
		attribute.String("business.entity_id", entityID),
		attribute.Int("user.id", userID),
	}
	attrs = append(attrs, toOTelAttributes(metadata)...)

	span.AddEvent(fmt.Sprintf("business.%s.%s", entity, event), trace.WithAttributes(attrs...))
}

// Operation measures a repository operation from start to End.
type Operation struct {
	probe     port.Telemetry
	ctx       context.Context
	startTime time.Time
	operation string
	entity    string
}

func StartOperation(probe port.Telemetry, ctx context.Context, operation, entity string) *Operation {
	return &Operation{
		probe:     probe,
		ctx:       ctx,
		startTime: time.Now(),
		operation: operation,
		entity:    entity,
	}
}

func (op *Operation) End(err error) {
	if op.probe != nil {
		op.probe.RecordRepositoryOperation(op.ctx, op.operation, op.entity, time.Since(op.startTime), err)
	}
}
