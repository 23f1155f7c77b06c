package aggregator

import (
	"context"

	"github.com/absmach/fedavg/pkg/fl"
)

type Service interface {
	// Aggregate averages the parameters of the given updates into a new
	// global model. An empty roundID is replaced with a generated one.
	Aggregate(ctx context.Context, roundID string, updates []fl.Update) (fl.Model, error)
}
