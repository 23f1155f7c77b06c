package cli

import (
	"github.com/absmach/fedavg/pkg/fl"
	"github.com/absmach/fedavg/pkg/sdk"
	"github.com/spf13/cobra"
)

var fsdk sdk.SDK

func SetSDK(s sdk.SDK) {
	fsdk = s
}

func NewAverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "average <file>...",
		Short: "Average parameter sets locally",
		Long: `Average JSON parameter set files element-wise without contacting the aggregator.

Each file holds one participant's parameters, e.g. {"w": [1.0, 2.0], "b": 0.5}.

Examples:
  fedavg-cli average client1.json client2.json`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				logUsageCmd(*cmd, cmd.Use)

				return
			}

			sets, err := readParameterSets(args)
			if err != nil {
				logErrorCmd(*cmd, err)

				return
			}

			avg, err := fl.Average(sets)
			if err != nil {
				logErrorCmd(*cmd, err)

				return
			}
			logJSONCmd(*cmd, avg)
		},
	}
}

func NewAggregateCmd() *cobra.Command {
	var roundID string

	cmd := &cobra.Command{
		Use:   "aggregate <file>...",
		Short: "Aggregate parameter sets on the aggregator service",
		Long: `Send JSON parameter set files to the aggregator service as one round.

Participant IDs are taken from the file paths.

Examples:
  fedavg-cli aggregate --round-id round-1 client1.json client2.json`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				logUsageCmd(*cmd, cmd.Use)

				return
			}

			sets, err := readParameterSets(args)
			if err != nil {
				logErrorCmd(*cmd, err)

				return
			}

			updates := make([]sdk.Update, len(sets))
			for i, ps := range sets {
				updates[i] = sdk.Update{ParticipantID: args[i], Parameters: ps}
			}

			m, err := fsdk.Aggregate(roundID, updates)
			if err != nil {
				logErrorCmd(*cmd, err)

				return
			}
			logJSONCmd(*cmd, m)
		},
	}

	cmd.Flags().StringVar(&roundID, "round-id", "", "Aggregation round ID (generated by the service when empty)")

	return cmd
}
