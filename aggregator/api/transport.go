package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/absmach/fedavg/aggregator"
	"github.com/absmach/fedavg/pkg/api"
	"github.com/absmach/supermq"
	apiutil "github.com/absmach/supermq/api/http/util"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var maxBodySize int64 = 1024 * 1024 * 256

func MakeHandler(svc aggregator.Service, logger *slog.Logger, instanceID string) http.Handler {
	mux := chi.NewRouter()

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux.With(limitBody).Post("/aggregate", otelhttp.NewHandler(kithttp.NewServer(
		aggregateEndpoint(svc),
		decodeAggregateReq,
		api.EncodeResponse,
		opts...,
	), "aggregate").ServeHTTP)

	mux.Get("/health", supermq.Health("aggregator", instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeAggregateReq(_ context.Context, r *http.Request) (any, error) {
	var req aggregateReq
	switch ct := r.Header.Get("Content-Type"); {
	case strings.Contains(ct, api.ContentType):
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, decodeError(err)
		}
	case strings.Contains(ct, api.CBORContentType):
		if err := cbor.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, decodeError(err)
		}
	default:
		return nil, errors.Join(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	return req, nil
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		next.ServeHTTP(w, r)
	})
}

func decodeError(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return errors.Join(apiutil.ErrValidation, api.ErrRequestTooLarge, err)
	}

	return errors.Join(apiutil.ErrValidation, err)
}
