package fl

import "fmt"

var _ Aggregator = (*FedAvgAggregator)(nil)

// FedAvgAggregator averages participant parameters with uniform weights.
type FedAvgAggregator struct{}

func NewFedAvgAggregator() Aggregator {
	return &FedAvgAggregator{}
}

func (f *FedAvgAggregator) Aggregate(updates []Update) (Model, error) {
	if len(updates) == 0 {
		return Model{}, ErrNoUpdates
	}

	roundID := updates[0].RoundID
	params := make([]ParameterSet[float64], 0, len(updates))
	for i, update := range updates {
		if update.Parameters == nil {
			return Model{}, fmt.Errorf("%w: update %d from %q has no parameters", ErrInvalidInput, i, update.ParticipantID)
		}
		if update.RoundID != roundID {
			return Model{}, fmt.Errorf("%w: update %d has round %q, expected %q", ErrRoundMismatch, i, update.RoundID, roundID)
		}
		params = append(params, update.Parameters)
	}

	data, err := Average(params)
	if err != nil {
		return Model{}, err
	}

	metadata := map[string]any{
		"num_updates": len(updates),
		"algorithm":   AlgorithmFedAvg,
	}
	if roundID != "" {
		metadata["round_id"] = roundID
	}

	return Model{
		Data:     data,
		Metadata: metadata,
	}, nil
}
