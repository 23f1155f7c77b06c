package middleware

import (
	"context"
	"time"

	"github.com/absmach/fedavg/aggregator"
	"github.com/absmach/fedavg/pkg/fl"
	"github.com/go-kit/kit/metrics"
)

var _ aggregator.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     aggregator.Service
}

func Metrics(counter metrics.Counter, latency metrics.Histogram, svc aggregator.Service) aggregator.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsMiddleware) Aggregate(ctx context.Context, roundID string, updates []fl.Update) (fl.Model, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "aggregate").Add(1)
		mm.latency.With("method", "aggregate").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Aggregate(ctx, roundID, updates)
}
