package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/internal/report"
)

var panchangaCmd = &cobra.Command{
	Use:   "panchanga",
	Short: "Show the five limbs of the birth day",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, cfg, err := computeFromFlags(cmd)
		if err != nil {
			return err
		}

		if cfg.JSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(k.Panchanga)
		}

		report.New(cmd.OutOrStdout()).Panchanga(k)
		return nil
	},
}

func init() {
	addBirthFlags(panchangaCmd)
	rootCmd.AddCommand(panchangaCmd)
}
