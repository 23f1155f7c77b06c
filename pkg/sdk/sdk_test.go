package sdk_test

import (
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/absmach/fedavg/aggregator"
	"github.com/absmach/fedavg/aggregator/api"
	"github.com/absmach/fedavg/pkg/fl"
	"github.com/absmach/fedavg/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregatorServer() *httptest.Server {
	logger := slog.New(slog.DiscardHandler)
	svc := aggregator.NewService(fl.NewFedAvgAggregator(), logger)

	return httptest.NewServer(api.MakeHandler(svc, logger, "test"))
}

func TestAggregate(t *testing.T) {
	ts := newAggregatorServer()
	defer ts.Close()

	s := sdk.NewSDK(sdk.Config{AggregatorURL: ts.URL})

	cases := []struct {
		desc    string
		roundID string
		updates []sdk.Update
		want    fl.ParameterSet[float64]
		errMsg  string
	}{
		{
			desc:    "average",
			roundID: "round-1",
			updates: []sdk.Update{
				{ParticipantID: "p1", Parameters: fl.ParameterSet[float64]{"w": fl.Vector(1.0, 2.0)}},
				{ParticipantID: "p2", Parameters: fl.ParameterSet[float64]{"w": fl.Vector(3.0, 4.0)}},
			},
			want: fl.ParameterSet[float64]{"w": fl.Vector(2.0, 3.0)},
		},
		{
			desc:    "key mismatch",
			roundID: "round-2",
			updates: []sdk.Update{
				{Parameters: fl.ParameterSet[float64]{"w": fl.Vector(1.0)}},
				{Parameters: fl.ParameterSet[float64]{"w": fl.Vector(1.0), "v": fl.Vector(1.0)}},
			},
			errMsg: "422",
		},
		{
			desc:    "sum overflows float64",
			roundID: "round-4",
			updates: []sdk.Update{
				{Parameters: fl.ParameterSet[float64]{"w": fl.Vector(1.7e308)}},
				{Parameters: fl.ParameterSet[float64]{"w": fl.Vector(1.7e308)}},
			},
			errMsg: "422",
		},
		{
			desc:    "no updates",
			roundID: "round-3",
			errMsg:  "422",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			m, err := s.Aggregate(tc.roundID, tc.updates)
			if tc.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.roundID, m.RoundID)
			assert.Equal(t, tc.want, m.Parameters)
			assert.Equal(t, fl.AlgorithmFedAvg, m.Metadata["algorithm"])
		})
	}
}

func TestAggregateUnreachable(t *testing.T) {
	ts := newAggregatorServer()
	url := ts.URL
	ts.Close()

	s := sdk.NewSDK(sdk.Config{AggregatorURL: url})
	_, err := s.Aggregate("", []sdk.Update{{Parameters: fl.ParameterSet[float64]{"b": fl.Scalar(1.0)}}})
	assert.Error(t, err)
}
