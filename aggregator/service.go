package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absmach/fedavg/pkg/fl"
	"github.com/google/uuid"
)

var _ Service = (*service)(nil)

type service struct {
	aggregator fl.Aggregator
	logger     *slog.Logger
}

func NewService(aggregator fl.Aggregator, logger *slog.Logger) Service {
	return &service{
		aggregator: aggregator,
		logger:     logger,
	}
}

func (svc *service) Aggregate(ctx context.Context, roundID string, updates []fl.Update) (fl.Model, error) {
	if len(updates) == 0 {
		return fl.Model{}, fl.ErrNoUpdates
	}
	if roundID == "" {
		roundID = uuid.NewString()
	}

	now := time.Now().UTC()
	stamped := make([]fl.Update, len(updates))
	for i, u := range updates {
		switch u.RoundID {
		case "":
			u.RoundID = roundID
		case roundID:
		default:
			return fl.Model{}, fmt.Errorf("%w: update %d has round %q, expected %q", fl.ErrRoundMismatch, i, u.RoundID, roundID)
		}
		if u.ReceivedAt.IsZero() {
			u.ReceivedAt = now
		}
		stamped[i] = u
	}

	model, err := svc.aggregator.Aggregate(stamped)
	if err != nil {
		return fl.Model{}, err
	}
	if model.Metadata == nil {
		model.Metadata = map[string]any{}
	}
	model.Metadata["round_id"] = roundID
	model.Metadata["aggregated_at"] = now

	svc.logger.DebugContext(ctx, "Aggregated round",
		slog.String("round_id", roundID),
		slog.Int("participants", len(updates)),
		slog.Int("parameters", len(model.Data)))

	return model, nil
}
