package fl_test

import (
	"testing"

	"github.com/absmach/fedavg/pkg/fl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFedAvgAggregator(t *testing.T) {
	t.Parallel()

	agg := fl.NewFedAvgAggregator()

	cases := []struct {
		desc    string
		updates []fl.Update
		want    fl.ParameterSet[float64]
		meta    map[string]any
		err     error
	}{
		{
			desc: "uniform mean ignores participant order",
			updates: []fl.Update{
				{RoundID: "r1", ParticipantID: "p1", Parameters: fl.ParameterSet[float64]{"w": fl.Vector(1.0, 2.0), "b": fl.Scalar(1.0)}},
				{RoundID: "r1", ParticipantID: "p2", Parameters: fl.ParameterSet[float64]{"w": fl.Vector(3.0, 4.0), "b": fl.Scalar(3.0)}},
			},
			want: fl.ParameterSet[float64]{"w": fl.Vector(2.0, 3.0), "b": fl.Scalar(2.0)},
			meta: map[string]any{"num_updates": 2, "algorithm": fl.AlgorithmFedAvg, "round_id": "r1"},
		},
		{
			desc: "no round id",
			updates: []fl.Update{
				{Parameters: fl.ParameterSet[float64]{"b": fl.Scalar(4.0)}},
			},
			want: fl.ParameterSet[float64]{"b": fl.Scalar(4.0)},
			meta: map[string]any{"num_updates": 1, "algorithm": fl.AlgorithmFedAvg},
		},
		{
			desc:    "no updates",
			updates: nil,
			err:     fl.ErrNoUpdates,
		},
		{
			desc: "missing parameters",
			updates: []fl.Update{
				{RoundID: "r1", Parameters: fl.ParameterSet[float64]{"b": fl.Scalar(4.0)}},
				{RoundID: "r1"},
			},
			err: fl.ErrInvalidInput,
		},
		{
			desc: "mixed rounds",
			updates: []fl.Update{
				{RoundID: "r1", Parameters: fl.ParameterSet[float64]{"b": fl.Scalar(4.0)}},
				{RoundID: "r2", Parameters: fl.ParameterSet[float64]{"b": fl.Scalar(4.0)}},
			},
			err: fl.ErrRoundMismatch,
		},
		{
			desc: "key mismatch",
			updates: []fl.Update{
				{Parameters: fl.ParameterSet[float64]{"w": fl.Vector(1.0)}},
				{Parameters: fl.ParameterSet[float64]{"w": fl.Vector(1.0), "v": fl.Vector(1.0)}},
			},
			err: fl.ErrKeyMismatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			model, err := agg.Aggregate(tc.updates)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, model.Data)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, model.Data)
			assert.Equal(t, tc.meta, model.Metadata)
		})
	}
}

func TestNoUpdatesIsInvalidInput(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, fl.ErrNoUpdates, fl.ErrInvalidInput)
}
