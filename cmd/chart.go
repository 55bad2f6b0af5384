package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/internal/report"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute and render the full birth chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, cfg, err := computeFromFlags(cmd)
		if err != nil {
			return err
		}

		if cfg.JSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(k)
		}

		report.New(cmd.OutOrStdout()).Render(k)
		return nil
	},
}

func init() {
	addBirthFlags(chartCmd)
	rootCmd.AddCommand(chartCmd)
}
