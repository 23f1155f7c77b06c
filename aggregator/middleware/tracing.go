package middleware

import (
	"context"

	"github.com/absmach/fedavg/aggregator"
	"github.com/absmach/fedavg/pkg/fl"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ aggregator.Service = (*tracing)(nil)

type tracing struct {
	tracer trace.Tracer
	svc    aggregator.Service
}

func Tracing(tracer trace.Tracer, svc aggregator.Service) aggregator.Service {
	return &tracing{tracer, svc}
}

func (tm *tracing) Aggregate(ctx context.Context, roundID string, updates []fl.Update) (model fl.Model, err error) {
	ctx, span := tm.tracer.Start(ctx, "aggregate", trace.WithAttributes(
		attribute.String("round_id", roundID),
		attribute.Int("participants", len(updates)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return tm.svc.Aggregate(ctx, roundID, updates)
}
