package commands

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Print a full from-scratch orbit-count matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildFacade()
		if err != nil {
			return err
		}

		counts, err := f.CalculateOrbitCounts()
		if err != nil {
			return errors.Wrap(err, "calculate_orbit_counts")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	},
}
