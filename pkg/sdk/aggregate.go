package sdk

import (
	"encoding/json"
	"net/http"

	"github.com/absmach/fedavg/pkg/fl"
)

const aggregateEndpoint = "/aggregate"

type Update struct {
	ParticipantID string                   `json:"participant_id,omitempty"`
	Parameters    fl.ParameterSet[float64] `json:"parameters"`
}

type Model struct {
	RoundID    string                   `json:"round_id"`
	Parameters fl.ParameterSet[float64] `json:"parameters"`
	Metadata   map[string]any           `json:"metadata,omitempty"`
}

type aggregateReq struct {
	RoundID string   `json:"round_id,omitempty"`
	Updates []Update `json:"updates"`
}

func (sdk *aggSDK) Aggregate(roundID string, updates []Update) (Model, error) {
	data, err := json.Marshal(aggregateReq{RoundID: roundID, Updates: updates})
	if err != nil {
		return Model{}, err
	}

	url := sdk.aggregatorURL + aggregateEndpoint

	body, err := sdk.processRequest(http.MethodPost, url, data, http.StatusOK)
	if err != nil {
		return Model{}, err
	}

	var m Model
	if err := json.Unmarshal(body, &m); err != nil {
		return Model{}, err
	}

	return m, nil
}
