package api

import (
	"net/http"

	"github.com/absmach/fedavg/pkg/fl"
	"github.com/absmach/supermq"
)

var _ supermq.Response = (*aggregateRes)(nil)

type aggregateRes struct {
	RoundID    string                   `json:"round_id"`
	Parameters fl.ParameterSet[float64] `json:"parameters"`
	Metadata   map[string]any           `json:"metadata,omitempty"`
}

func (res aggregateRes) Code() int {
	return http.StatusOK
}

func (res aggregateRes) Headers() map[string]string {
	return map[string]string{}
}

func (res aggregateRes) Empty() bool {
	return false
}
