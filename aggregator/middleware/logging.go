package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/fedavg/aggregator"
	"github.com/absmach/fedavg/pkg/fl"
)

var _ aggregator.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    aggregator.Service
}

func Logging(logger *slog.Logger, svc aggregator.Service) aggregator.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm *loggingMiddleware) Aggregate(ctx context.Context, roundID string, updates []fl.Update) (model fl.Model, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("round",
				slog.String("id", roundID),
				slog.Int("participants", len(updates)),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Aggregate round failed", args...)

			return
		}
		args = append(args, slog.Group("model",
			slog.Any("round_id", model.Metadata["round_id"]),
			slog.Int("parameters", len(model.Data)),
		))
		lm.logger.Info("Aggregate round completed successfully", args...)
	}(time.Now())

	return lm.svc.Aggregate(ctx, roundID, updates)
}
