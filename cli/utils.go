package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/absmach/fedavg/pkg/fl"
	"github.com/fatih/color"
	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

func logJSONCmd(cmd cobra.Command, iList ...any) {
	for _, i := range iList {
		m, err := prettyjson.Marshal(i)
		if err != nil {
			logErrorCmd(cmd, err)

			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(m))
	}
}

func logUsageCmd(cmd cobra.Command, u string) {
	fmt.Fprintf(cmd.OutOrStdout(), color.YellowString("\nusage: %s\n\n"), u)
}

func logErrorCmd(cmd cobra.Command, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}

// readParameterSets loads one JSON parameter set per file, keeping argument order.
func readParameterSets(paths []string) ([]fl.ParameterSet[float64], error) {
	sets := make([]fl.ParameterSet[float64], 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		var ps fl.ParameterSet[float64]
		if err := json.Unmarshal(data, &ps); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", p, err)
		}
		sets = append(sets, ps)
	}

	return sets, nil
}
