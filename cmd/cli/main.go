package main

import (
	"log"

	"github.com/absmach/fedavg"
	"github.com/absmach/fedavg/cli"
	"github.com/absmach/fedavg/pkg/sdk"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "fedavg-cli",
		Short: "FedAvg CLI",
		Long:  `FedAvg CLI averages federated learning parameter sets locally or through the aggregator service.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg := fedavg.DefaultConfig()
			if configPath != "" {
				loaded, err := fedavg.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = *loaded
			}
			s := sdk.NewSDK(sdk.Config{
				AggregatorURL:   cfg.Aggregator.URL,
				TLSVerification: cfg.Aggregator.TLSVerification,
			})
			cli.SetSDK(s)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to TOML config file")

	rootCmd.AddCommand(cli.NewAverageCmd())
	rootCmd.AddCommand(cli.NewAggregateCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
