package api

import (
	"context"
	"errors"

	"github.com/absmach/fedavg/aggregator"
	pkgerrors "github.com/absmach/fedavg/pkg/errors"
	apiutil "github.com/absmach/supermq/api/http/util"
	"github.com/go-kit/kit/endpoint"
)

func aggregateEndpoint(svc aggregator.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req, ok := request.(aggregateReq)
		if !ok {
			return aggregateRes{}, errors.Join(apiutil.ErrValidation, pkgerrors.ErrInvalidData)
		}
		if err := req.validate(); err != nil {
			return aggregateRes{}, errors.Join(apiutil.ErrValidation, err)
		}

		model, err := svc.Aggregate(ctx, req.RoundID, req.Updates)
		if err != nil {
			return aggregateRes{}, err
		}
		roundID, _ := model.Metadata["round_id"].(string)

		return aggregateRes{
			RoundID:    roundID,
			Parameters: model.Data,
			Metadata:   model.Metadata,
		}, nil
	}
}
