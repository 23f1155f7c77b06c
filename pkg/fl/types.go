package fl

import "time"

const AlgorithmFedAvg = "FedAvg"

// Update is a single participant's contribution to an aggregation round.
type Update struct {
	RoundID       string                `json:"round_id,omitempty"`
	ParticipantID string                `json:"participant_id,omitempty"`
	Parameters    ParameterSet[float64] `json:"parameters"`
	ReceivedAt    time.Time             `json:"received_at,omitempty"`
}

// Model is the global parameter set produced by an aggregation round.
type Model struct {
	Data     ParameterSet[float64] `json:"data"`
	Metadata map[string]any        `json:"metadata,omitempty"`
}

type Aggregator interface {
	Aggregate(updates []Update) (Model, error)
}
