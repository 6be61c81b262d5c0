package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var flipSpec string

var deltaCmd = &cobra.Command{
	Use:   "delta",
	Short: "Report the orbit-count delta a single edge toggle would produce",
	RunE: func(cmd *cobra.Command, args []string) error {
		i, j, err := parsePair(flipSpec)
		if err != nil {
			return err
		}

		f, err := buildFacade()
		if err != nil {
			return err
		}

		res, err := f.CalculateDelta(i, j)
		if err != nil {
			return errors.Wrap(err, "calculate_delta")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	deltaCmd.Flags().StringVar(&flipSpec, "flip", "", "edge to evaluate, as i,j (1-based)")
	_ = deltaCmd.MarkFlagRequired("flip")
}

func parsePair(spec string) (int, int, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("--flip must be of the form i,j, got %q", spec)
	}
	i, errI := strconv.Atoi(strings.TrimSpace(parts[0]))
	j, errJ := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errI != nil || errJ != nil {
		return 0, 0, fmt.Errorf("--flip must be of the form i,j, got %q", spec)
	}
	return i, j, nil
}
