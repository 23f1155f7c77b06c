package api

import (
	"fmt"

	"github.com/absmach/fedavg/pkg/fl"
)

const maxUpdates = 10_000

type aggregateReq struct {
	RoundID string      `json:"round_id,omitempty"`
	Updates []fl.Update `json:"updates"`
}

func (req *aggregateReq) validate() error {
	if len(req.Updates) == 0 {
		return fl.ErrNoUpdates
	}
	if len(req.Updates) > maxUpdates {
		return fmt.Errorf("too many updates: %d, limit is %d", len(req.Updates), maxUpdates)
	}

	return nil
}
